package mask

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/transition/internal/filter"
)

// ErrUnknownBlurKind is returned by ParseBlurKind for unrecognized names.
var ErrUnknownBlurKind = errors.New("mask: unknown blur kind")

// BlurKind selects the smoothing filter applied to a mask.
type BlurKind uint8

const (
	// BlurNone leaves the mask untouched.
	BlurNone BlurKind = iota
	// BlurBox applies a normalized box filter.
	BlurBox
	// BlurGaussian applies a Gaussian filter.
	BlurGaussian
	// BlurMedian applies a median filter.
	BlurMedian
)

// String returns the canonical name of the kind.
func (k BlurKind) String() string {
	switch k {
	case BlurNone:
		return "none"
	case BlurBox:
		return "box"
	case BlurGaussian:
		return "gaussian"
	case BlurMedian:
		return "median"
	default:
		return fmt.Sprintf("BlurKind(%d)", k)
	}
}

// ParseBlurKind decodes a blur kind name, case-insensitively. Accepted
// spellings: none or empty, blur or box, gaussian or gaussianblur,
// median or medianblur.
func ParseBlurKind(name string) (BlurKind, error) {
	switch cases.Fold().String(strings.TrimSpace(name)) {
	case "", "none":
		return BlurNone, nil
	case "blur", "box":
		return BlurBox, nil
	case "gaussian", "gaussianblur":
		return BlurGaussian, nil
	case "median", "medianblur":
		return BlurMedian, nil
	}
	return BlurNone, fmt.Errorf("%w: %q", ErrUnknownBlurKind, name)
}

// Blur holds the mask post-processing options of a transition.
type Blur struct {
	Kind BlurKind

	// KSize is the kernel size; even sizes are rounded up to the next odd.
	KSize int

	// Sigma is the Gaussian standard deviation; ≤ 0 derives it from KSize.
	Sigma float64

	// OpacityRamp scales the fill value of ramp-aware variants by progress.
	OpacityRamp bool
}

// Enabled reports whether the options smooth the mask.
func (b Blur) Enabled() bool {
	return b.Kind != BlurNone && b.KSize > 0
}

// Fill returns the value ramp-aware variants paint their shapes with:
// round(255·t) with t clamped to [0, 1] when OpacityRamp is set, else 255.
func (b Blur) Fill(t float64) uint8 {
	if !b.OpacityRamp {
		return 255
	}
	if !(t > 0) {
		return 0
	}
	return uint8(math.Round(255 * min(t, 1)))
}

// Apply smooths m in place. It is a no-op when the options are disabled.
func (b Blur) Apply(m *Mask) error {
	if !b.Enabled() {
		return nil
	}

	var (
		out filter.Plane
		err error
	)
	switch b.Kind {
	case BlurBox:
		out, err = filter.BoxBlur(m.plane(), b.KSize)
	case BlurGaussian:
		out, err = filter.GaussianBlur(m.plane(), b.KSize, b.Sigma)
	case BlurMedian:
		out, err = filter.MedianBlur(m.plane(), b.KSize)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownBlurKind, b.Kind)
	}
	if err != nil {
		return fmt.Errorf("mask: blur: %w", err)
	}
	copy(m.data, out.Data)
	return nil
}
