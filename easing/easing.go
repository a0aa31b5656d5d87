// Package easing provides the time-warping curves applied to transition
// progress before any geometry or blending is computed.
//
// Every curve takes a progress value t, clamps it to [0, 1] and returns the
// warped value. The bounce and elastic curves are allowed to leave [0, 1]
// and do not land exactly on 1 at t = 1; callers must not rely on them
// hitting the endpoints.
package easing

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
)

// Type identifies an easing curve.
type Type uint8

const (
	// Linear returns t unchanged.
	Linear Type = iota
	// EaseIn is a cubic ease-in (t³).
	EaseIn
	// EaseOut is a cubic ease-out.
	EaseOut
	// EaseInOut is a cubic ease-in-out.
	EaseInOut
	// EaseInBounce is an exponentially damped sine bounce.
	EaseInBounce
	// EaseOutBounce mirrors EaseInBounce.
	EaseOutBounce
	// EaseInElastic is a quartic-enveloped sine.
	EaseInElastic
	// EaseOutElastic mirrors EaseInElastic.
	EaseOutElastic
	// EaseInCirc is a circular ease-in.
	EaseInCirc
	// EaseOutCirc is a circular ease-out.
	EaseOutCirc
	// EaseInOutCirc is a circular ease-in-out.
	EaseInOutCirc
	// EaseInQuint is a quintic ease-in.
	EaseInQuint
	// EaseOutQuint is a quintic ease-out.
	EaseOutQuint
	// EaseInOutQuint is a quintic ease-in-out.
	EaseInOutQuint

	typeCount
)

var typeNames = [typeCount]string{
	Linear:         "linear",
	EaseIn:         "ease-in",
	EaseOut:        "ease-out",
	EaseInOut:      "ease-in-out",
	EaseInBounce:   "ease-in-bounce",
	EaseOutBounce:  "ease-out-bounce",
	EaseInElastic:  "ease-in-elastic",
	EaseOutElastic: "ease-out-elastic",
	EaseInCirc:     "ease-in-circ",
	EaseOutCirc:    "ease-out-circ",
	EaseInOutCirc:  "ease-inout-circ",
	EaseInQuint:    "ease-in-quint",
	EaseOutQuint:   "ease-out-quint",
	EaseInOutQuint: "ease-inout-quint",
}

// String returns the canonical configuration name of the curve.
func (t Type) String() string {
	if t >= typeCount {
		return typeNames[Linear]
	}
	return typeNames[t]
}

// Types returns every supported curve in declaration order.
func Types() []Type {
	out := make([]Type, 0, typeCount)
	for t := Linear; t < typeCount; t++ {
		out = append(out, t)
	}
	return out
}

// Parse resolves a curve name. Matching ignores case and accepts both the
// dashed form ("ease-in-out") and the compact form ("easeinout").
// Unknown names resolve to Linear; this is not an error.
func Parse(name string) Type {
	key := strings.ReplaceAll(cases.Fold().String(strings.TrimSpace(name)), "-", "")
	for t := Linear; t < typeCount; t++ {
		if strings.ReplaceAll(typeNames[t], "-", "") == key {
			return t
		}
	}
	return Linear
}

// Apply warps progress t with the given curve.
func Apply(typ Type, t float64) float64 {
	t = clamp01(t)
	switch typ {
	case EaseIn:
		return t * t * t
	case EaseOut:
		u := 1 - t
		return 1 - u*u*u
	case EaseInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	case EaseInBounce:
		return math.Pow(2, 6*(t-1)) * math.Abs(math.Sin(t*math.Pi*3.5))
	case EaseOutBounce:
		return 1 - math.Pow(2, -6*t)*math.Abs(math.Cos(t*math.Pi*3.5))
	case EaseInElastic:
		t2 := t * t
		return t2 * t2 * math.Sin(t*math.Pi*4.5)
	case EaseOutElastic:
		t2 := (t - 1) * (t - 1)
		return 1 - t2*t2*math.Cos(t*math.Pi*4.5)
	case EaseInCirc:
		return 1 - math.Sqrt(1-t)
	case EaseOutCirc:
		return math.Sqrt(t)
	case EaseInOutCirc:
		if t < 0.5 {
			return (1 - math.Sqrt(1-2*t)) * 0.5
		}
		return (1 + math.Sqrt(2*t-1)) * 0.5
	case EaseInQuint:
		t2 := t * t
		return t * t2 * t2
	case EaseOutQuint:
		u := t - 1
		u2 := u * u
		return 1 + u*u2*u2
	case EaseInOutQuint:
		if t < 0.5 {
			t2 := t * t
			return 16 * t * t2 * t2
		}
		u := t - 1
		u2 := u * u
		return 1 + 16*u*u2*u2
	default:
		return t
	}
}

// Apply warps t with the receiver curve.
func (t Type) Apply(v float64) float64 {
	return Apply(t, v)
}

func clamp01(t float64) float64 {
	if t < 0 || math.IsNaN(t) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
