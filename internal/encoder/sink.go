// Package encoder writes rendered frames to their destination: a video
// file encoded by an ffmpeg child process, or a numbered PNG or JPEG
// sequence.
package encoder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	intImage "github.com/gogpu/transition/internal/image"
)

var (
	// ErrFrameSize is returned when a frame does not match the sink size.
	ErrFrameSize = errors.New("encoder: frame size mismatch")

	// ErrClosed is returned when writing to a closed sink.
	ErrClosed = errors.New("encoder: sink closed")
)

// Sink receives frames in presentation order.
type Sink interface {
	WriteFrame(f *intImage.ImageBuf) error

	// Close flushes the output. It must be called exactly once, also after
	// a write error.
	Close() error
}

// Options describe an output.
type Options struct {
	// Path is the output file. A path containing '%' is a printf pattern
	// for an image sequence, JPEG when it ends in .jpg or .jpeg and PNG
	// otherwise; an existing directory receives frame_NNNNN.png.
	Path string

	Width, Height int
	FPS           float64

	// Codec is the four-character code of the video encoder.
	Codec string

	// FFmpeg is the ffmpeg executable; empty means "ffmpeg" on PATH.
	FFmpeg string
}

// IsSequence reports whether path names an image sequence rather than a
// video file.
func IsSequence(path string) bool {
	if strings.Contains(path, "%") {
		return true
	}
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// Open creates the sink described by opts.
func Open(ctx context.Context, opts Options) (Sink, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrFrameSize, opts.Width, opts.Height)
	}
	if IsSequence(opts.Path) {
		return newImageSequence(opts), nil
	}
	return startFFmpeg(ctx, opts)
}

func checkFrame(f *intImage.ImageBuf, width, height int) error {
	if f == nil || f.Width() != width || f.Height() != height {
		var w, h int
		if f != nil {
			w, h = f.Width(), f.Height()
		}
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrFrameSize, w, h, width, height)
	}
	return nil
}
