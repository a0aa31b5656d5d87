package transition

import (
	"errors"

	"github.com/gogpu/transition/internal/blend"
)

var (
	// ErrInvalidDuration is returned when a transition is configured with a
	// non-positive duration.
	ErrInvalidDuration = errors.New("transition: duration must be > 0")

	// ErrUnknownKind is returned for transition type names that match no
	// effect. The error text names the offending string.
	ErrUnknownKind = errors.New("unknown transition type")

	// ErrInvalidParam is returned when a parameter string (direction, axis,
	// order, mode) is not a member of its enumeration.
	ErrInvalidParam = errors.New("transition: invalid parameter")

	// ErrFrameIndex is returned by RenderFrame for an index outside
	// [0, FrameCount).
	ErrFrameIndex = errors.New("transition: frame index out of range")

	// ErrNilFrame is returned when a source frame is nil.
	ErrNilFrame = errors.New("transition: nil frame")

	// ErrSizeMismatch is returned when the two source frames differ in size
	// or pixel format.
	ErrSizeMismatch = blend.ErrSizeMismatch
)
