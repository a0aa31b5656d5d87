package transition

import (
	intImage "github.com/gogpu/transition/internal/image"
)

// Frame is an 8-bit-per-channel pixel buffer. Source frames are never
// modified; every rendered frame is a fresh buffer owned by the caller.
type Frame = intImage.ImageBuf

// Format is the pixel layout of a Frame.
type Format = intImage.Format

// Pixel formats.
const (
	FormatGray8 = intImage.FormatGray8
	FormatRGB8  = intImage.FormatRGB8
	FormatRGBA8 = intImage.FormatRGBA8
)

// NewFrame allocates a zeroed frame.
func NewFrame(width, height int, format Format) (*Frame, error) {
	return intImage.NewImageBuf(width, height, format)
}

// LoadFrame decodes an image file (PNG, JPEG, GIF, BMP, TIFF or WebP) into
// an RGBA8 frame.
func LoadFrame(path string) (*Frame, error) {
	return intImage.LoadImage(path)
}

// ResizeFrame returns f scaled to width×height with bilinear filtering.
func ResizeFrame(f *Frame, width, height int) (*Frame, error) {
	return intImage.Resize(f, width, height)
}
