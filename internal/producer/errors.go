package producer

import (
	"errors"
	"fmt"
)

// Exit codes reported by the command-line tool.
const (
	CodeOK         = 0
	CodeUsage      = 1
	CodeImageRead  = 2
	CodeConfig     = 3
	CodeTransition = 4
	CodeEncoder    = 5
	CodeOther      = 10
)

// ErrOutputLocked is returned when another run holds the output lock.
var ErrOutputLocked = errors.New("producer: output is locked by another run")

// Error tags a failure with the exit code of the stage that produced it.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// fail wraps err with code and a stage message.
func fail(code int, format string, args ...any) *Error {
	return &Error{Code: code, Err: fmt.Errorf(format, args...)}
}

// ExitCode returns the exit code for err: 0 for nil, the tagged code for
// an *Error and CodeOther for anything else.
func ExitCode(err error) int {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeOther
}
