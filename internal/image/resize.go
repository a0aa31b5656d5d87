package image

import (
	"image"

	"golang.org/x/image/draw"
)

// Resize returns a copy of src scaled to width×height with bilinear
// filtering. The result is RGBA8 regardless of the source format. When the
// size already matches, Resize returns a clone.
func Resize(src *ImageBuf, width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if src.width == width && src.height == height {
		return src.ToFormat(FormatRGBA8)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src.ToStdImage(), image.Rect(0, 0, src.width, src.height), draw.Src, nil)

	return FromRaw(dst.Pix, width, height, FormatRGBA8)
}
