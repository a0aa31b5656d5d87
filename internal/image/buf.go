package image

import (
	"errors"
	"fmt"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrSizeMismatch is returned when two buffers that must share
	// dimensions and format do not.
	ErrSizeMismatch = errors.New("image: size mismatch")
)

// ImageBuf is a tightly packed 8-bit-per-channel pixel buffer.
//
// Thread safety: ImageBuf is safe for concurrent read access. Writes
// require external synchronization. The transition engine never writes
// to its source buffers.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewImageBuf creates a new zeroed image buffer.
// Returns an error if dimensions are invalid or format is unknown.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw wraps existing packed pixel data without copying.
// The caller must not modify data while the ImageBuf is in use.
func FromRaw(data []byte, width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	if len(data) < stride*height {
		return nil, ErrDataTooSmall
	}

	return &ImageBuf{
		data:   data[:stride*height],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// NewLike allocates a zeroed buffer with the same size and format as b.
func (b *ImageBuf) NewLike() *ImageBuf {
	return &ImageBuf{
		data:   make([]byte, len(b.data)),
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
	}
}

// Clone creates a deep copy of the image buffer.
func (b *ImageBuf) Clone() *ImageBuf {
	out := b.NewLike()
	copy(out.data, b.data)
	return out
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *ImageBuf) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *ImageBuf) Format() Format {
	return b.format
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// PixelBytes returns a slice of the raw bytes for pixel (x, y).
// Returns nil if coordinates are out of bounds.
func (b *ImageBuf) PixelBytes(x, y int) []byte {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	return b.data[offset : offset+b.format.BytesPerPixel()]
}

// GetRGBA returns the color at (x, y) as (r, g, b, a) in 0-255 range.
// For grayscale formats, r=g=b=gray and a=255.
// Returns (0,0,0,0) if coordinates are out of bounds.
func (b *ImageBuf) GetRGBA(x, y int) (r, g, bl, a uint8) {
	pixel := b.PixelBytes(x, y)
	if pixel == nil {
		return 0, 0, 0, 0
	}

	switch b.format {
	case FormatGray8:
		v := pixel[0]
		return v, v, v, 255
	case FormatRGB8:
		return pixel[0], pixel[1], pixel[2], 255
	default:
		return pixel[0], pixel[1], pixel[2], pixel[3]
	}
}

// SetRGBA sets the color at (x, y).
// For grayscale formats, uses standard luminance weights.
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *ImageBuf) SetRGBA(x, y int, r, g, bl, a uint8) error {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}

	switch b.format {
	case FormatGray8:
		b.data[offset] = byte((int(r)*299 + int(g)*587 + int(bl)*114) / 1000)
	case FormatRGB8:
		b.data[offset] = r
		b.data[offset+1] = g
		b.data[offset+2] = bl
	case FormatRGBA8:
		b.data[offset] = r
		b.data[offset+1] = g
		b.data[offset+2] = bl
		b.data[offset+3] = a
	}
	return nil
}

// Fill sets all pixels to the given RGBA color.
func (b *ImageBuf) Fill(r, g, bl, a uint8) {
	for y := range b.height {
		for x := range b.width {
			_ = b.SetRGBA(x, y, r, g, bl, a)
		}
	}
}

// CopyRect copies the w×h block of src at (sx, sy) into b at (dx, dy).
// Both buffers must share a format. The block is clipped to both buffers.
func (b *ImageBuf) CopyRect(src *ImageBuf, sx, sy, dx, dy, w, h int) error {
	if src.format != b.format {
		return fmt.Errorf("%w: %v into %v", ErrSizeMismatch, src.format, b.format)
	}
	if sx < 0 {
		w += sx
		dx -= sx
		sx = 0
	}
	if sy < 0 {
		h += sy
		dy -= sy
		sy = 0
	}
	if dx < 0 {
		w += dx
		sx -= dx
		dx = 0
	}
	if dy < 0 {
		h += dy
		sy -= dy
		dy = 0
	}
	w = min(w, src.width-sx, b.width-dx)
	h = min(h, src.height-sy, b.height-dy)
	if w <= 0 || h <= 0 {
		return nil
	}

	bpp := b.format.BytesPerPixel()
	for row := range h {
		so := (sy+row)*src.stride + sx*bpp
		do := (dy+row)*b.stride + dx*bpp
		copy(b.data[do:do+w*bpp], src.data[so:so+w*bpp])
	}
	return nil
}

// SameShape reports whether b and other have identical dimensions and format.
func (b *ImageBuf) SameShape(other *ImageBuf) bool {
	return other != nil && b.width == other.width && b.height == other.height && b.format == other.format
}

// Equal reports whether b and other have the same shape and pixels.
func (b *ImageBuf) Equal(other *ImageBuf) bool {
	if !b.SameShape(other) {
		return false
	}
	for y := range b.height {
		r0, r1 := b.RowBytes(y), other.RowBytes(y)
		for i := range r0 {
			if r0[i] != r1[i] {
				return false
			}
		}
	}
	return true
}
