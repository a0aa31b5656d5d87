package transition

import (
	"github.com/gogpu/transition/easing"
	"github.com/gogpu/transition/internal/blend"
	"github.com/gogpu/transition/internal/mask"
)

// MaskBlur holds the mask post-processing options: blur kind, kernel
// size, Gaussian sigma and the opacity ramp policy.
type MaskBlur = mask.Blur

// BlurKind selects the smoothing filter applied to masks.
type BlurKind = mask.BlurKind

// Mask blur kinds.
const (
	BlurNone     = mask.BlurNone
	BlurBox      = mask.BlurBox
	BlurGaussian = mask.BlurGaussian
	BlurMedian   = mask.BlurMedian
)

// ParseBlurKind decodes a mask blur name ("blur", "gaussian", "median" or
// "none"), case-insensitively.
func ParseBlurKind(name string) (BlurKind, error) {
	return mask.ParseBlurKind(name)
}

// BlendMode selects how the cross-dissolving effects combine A and B.
type BlendMode = blend.Mode

// Blend modes.
const (
	BlendNormal = blend.Normal
	BlendAdd    = blend.Add
	BlendScreen = blend.Screen
)

// ParseBlendMode decodes "normal", "add" (or "additive") or "screen",
// case-insensitively. An empty name is BlendNormal.
func ParseBlendMode(name string) (BlendMode, error) {
	return blend.ParseMode(name)
}

// DefaultFPS is the frame rate used when Config.FPS is not positive.
const DefaultFPS = 30.0

// DefaultDuration is the duration the factory uses when a document omits it.
const DefaultDuration = 3.0

// Config describes a transition to build with New.
type Config struct {
	Kind Kind

	// Duration in seconds. Must be > 0.
	Duration float64

	// FPS is the frame rate; ≤ 0 uses DefaultFPS.
	FPS float64

	Easing   easing.Type
	MaskBlur MaskBlur

	// Params carries the effect settings. Start from DefaultParams(Kind).
	Params Params
}
