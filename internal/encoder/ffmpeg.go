package encoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	intImage "github.com/gogpu/transition/internal/image"
)

// ffmpegSink pipes raw RGBA frames into an ffmpeg process.
type ffmpegSink struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
	width  int
	height int
	closed bool
}

// ffmpegArgs returns the command line that encodes rawvideo RGBA frames
// from stdin into opts.Path with the given ffmpeg encoder.
func ffmpegArgs(opts Options, codec string) []string {
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"-framerate", strconv.FormatFloat(opts.FPS, 'f', -1, 64),
		"-i", "pipe:0",
		"-an",
		"-c:v", codec,
		"-pix_fmt", outputPixFmt(codec),
	}
	switch codec {
	case "mjpeg", "mpeg4":
		args = append(args, "-q:v", "2")
	case "libx264":
		args = append(args, "-crf", "18")
	}
	return append(args, opts.Path)
}

func startFFmpeg(ctx context.Context, opts Options) (*ffmpegSink, error) {
	codec, err := FFmpegCodec(opts.Codec)
	if err != nil {
		return nil, err
	}
	bin := opts.FFmpeg
	if bin == "" {
		bin = "ffmpeg"
	}

	s := &ffmpegSink{width: opts.Width, height: opts.Height}
	s.cmd = exec.CommandContext(ctx, bin, ffmpegArgs(opts, codec)...) //nolint:gosec
	s.cmd.Stderr = &s.stderr
	s.stdin, err = s.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("encoder: stdin pipe: %w", err)
	}
	if err := s.cmd.Start(); err != nil {
		return nil, fmt.Errorf("encoder: start %s: %w", bin, err)
	}
	return s, nil
}

func (s *ffmpegSink) WriteFrame(f *intImage.ImageBuf) error {
	if s.closed {
		return ErrClosed
	}
	if err := checkFrame(f, s.width, s.height); err != nil {
		return err
	}
	rgba, err := f.ToFormat(intImage.FormatRGBA8)
	if err != nil {
		return fmt.Errorf("encoder: %w", err)
	}
	for y := range rgba.Height() {
		if _, err := s.stdin.Write(rgba.RowBytes(y)); err != nil {
			return fmt.Errorf("encoder: write frame: %w", err)
		}
	}
	return nil
}

func (s *ffmpegSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	errs := []error{}
	if err := s.stdin.Close(); err != nil && !errors.Is(err, io.ErrClosedPipe) {
		errs = append(errs, fmt.Errorf("close stdin: %w", err))
	}
	if err := s.cmd.Wait(); err != nil {
		errs = append(errs, fmt.Errorf("ffmpeg: %w%s", err, s.detail()))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("encoder: %w", err)
	}
	return nil
}

// detail returns ffmpeg's error output, if any, for inclusion in errors.
// Only valid after Wait.
func (s *ffmpegSink) detail() string {
	msg := strings.TrimSpace(s.stderr.String())
	if msg == "" {
		return ""
	}
	return ": " + msg
}
