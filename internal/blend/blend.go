package blend

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	intImage "github.com/gogpu/transition/internal/image"
)

// ErrSizeMismatch is returned when the operands differ in size or layout.
var ErrSizeMismatch = errors.New("blend: size mismatch")

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("blend: unknown mode")

// Mode selects how the two operands are combined before interpolation.
type Mode uint8

const (
	// Normal interpolates linearly from A to B.
	Normal Mode = iota
	// Add interpolates from A toward min(A+B, 255).
	Add
	// Screen interpolates from A toward 1−(1−A)(1−B) in normalized space.
	Screen
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Add:
		return "add"
	case Screen:
		return "screen"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// ParseMode decodes a mode name, case-insensitively. "additive" is
// accepted for Add.
func ParseMode(name string) (Mode, error) {
	switch cases.Fold().String(strings.TrimSpace(name)) {
	case "normal", "":
		return Normal, nil
	case "add", "additive":
		return Add, nil
	case "screen":
		return Screen, nil
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Apply blends a and b into a new buffer. alpha is clamped to [0, 1] and
// every channel is computed as (1−alpha)·a + alpha·t rounded once, where t
// is b in Normal mode and the Add or Screen combination otherwise. alpha 0
// yields a copy of a and, in Normal mode, alpha 1 a copy of b.
func Apply(a, b *intImage.ImageBuf, alpha float64, mode Mode) (*intImage.ImageBuf, error) {
	if !a.SameShape(b) {
		return nil, fmt.Errorf("%w: %dx%d %v vs %dx%d %v", ErrSizeMismatch,
			a.Width(), a.Height(), a.Format(), b.Width(), b.Height(), b.Format())
	}

	t := clamp01(alpha)
	out := a.NewLike()
	src, dst, ops := a.Data(), out.Data(), b.Data()

	switch mode {
	case Add:
		for i := range dst {
			dst[i] = lerpf(src[i], addClamp(src[i], ops[i]), t)
		}
	case Screen:
		for i := range dst {
			dst[i] = lerpf(src[i], screen(src[i], ops[i]), t)
		}
	default:
		switch t {
		case 0:
			copy(dst, src)
		case 1:
			copy(dst, ops)
		default:
			for i := range dst {
				dst[i] = lerpf(src[i], ops[i], t)
			}
		}
	}
	return out, nil
}

// Masked interpolates a toward b per pixel using m as the weight plane:
// out = a·(1−m/255) + b·(m/255), applied to every channel. m holds one
// byte per pixel in row-major order.
func Masked(a, b *intImage.ImageBuf, m []byte) (*intImage.ImageBuf, error) {
	if !a.SameShape(b) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch,
			a.Width(), a.Height(), b.Width(), b.Height())
	}
	if len(m) != a.Width()*a.Height() {
		return nil, fmt.Errorf("%w: mask has %d values for %dx%d", ErrSizeMismatch,
			len(m), a.Width(), a.Height())
	}

	out := a.NewLike()
	bpp := a.Format().BytesPerPixel()
	src, dst, ops := a.Data(), out.Data(), b.Data()
	for p, w := range m {
		o := p * bpp
		switch w {
		case 0:
			copy(dst[o:o+bpp], src[o:o+bpp])
		case 255:
			copy(dst[o:o+bpp], ops[o:o+bpp])
		default:
			for c := o; c < o+bpp; c++ {
				dst[c] = lerp255(src[c], ops[c], w)
			}
		}
	}
	return out, nil
}
