package encoder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	intImage "github.com/gogpu/transition/internal/image"
)

// jpegQuality is the quality of JPEG sequence frames.
const jpegQuality = 95

// imageSequence writes each frame to its own numbered image file. The
// pattern's extension picks the format: .jpg and .jpeg write JPEG,
// anything else PNG.
type imageSequence struct {
	pattern string
	jpeg    bool
	width   int
	height  int
	index   int
	closed  bool
}

func newImageSequence(opts Options) *imageSequence {
	pattern := opts.Path
	if !strings.Contains(pattern, "%") {
		pattern = filepath.Join(pattern, "frame_%05d.png")
	}
	ext := strings.ToLower(filepath.Ext(pattern))
	return &imageSequence{
		pattern: pattern,
		jpeg:    ext == ".jpg" || ext == ".jpeg",
		width:   opts.Width,
		height:  opts.Height,
	}
}

// path returns the file name of frame i.
func (s *imageSequence) path(i int) string {
	return fmt.Sprintf(s.pattern, i)
}

func (s *imageSequence) WriteFrame(f *intImage.ImageBuf) error {
	if s.closed {
		return ErrClosed
	}
	if err := checkFrame(f, s.width, s.height); err != nil {
		return err
	}
	if err := s.save(f, s.path(s.index)); err != nil {
		return fmt.Errorf("encoder: frame %d: %w", s.index, err)
	}
	s.index++
	return nil
}

func (s *imageSequence) save(f *intImage.ImageBuf, path string) error {
	if !s.jpeg {
		return f.SavePNG(path)
	}
	out, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := f.EncodeJPEG(out, jpegQuality); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func (s *imageSequence) Close() error {
	s.closed = true
	return nil
}
