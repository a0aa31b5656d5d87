package transition

import (
	"fmt"
	"iter"
	"log/slog"
	"math"

	"github.com/gogpu/transition/easing"
)

// variant is the per-effect compositing strategy. Implementations keep
// only state computed at construction and must be safe for concurrent use.
type variant interface {
	composite(te float64, a, b *Frame) (*Frame, error)
}

// Transition renders the frames of one configured effect.
//
// A Transition is immutable after New and safe for concurrent use; frames
// may be rendered in any order.
type Transition struct {
	kind       Kind
	duration   float64
	fps        float64
	frameCount int
	easing     easing.Type
	blur       MaskBlur
	variant    variant
}

// New builds a transition from cfg. It fails with ErrInvalidDuration for a
// non-positive duration and with ErrUnknownKind for an undefined Kind.
// Counts below their minimum are raised to it.
func New(cfg Config) (*Transition, error) {
	if !(cfg.Duration > 0) || math.IsInf(cfg.Duration, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDuration, cfg.Duration)
	}
	fps := cfg.FPS
	if !(fps > 0) || math.IsInf(fps, 0) {
		fps = DefaultFPS
	}

	t := &Transition{
		kind:       cfg.Kind,
		duration:   cfg.Duration,
		fps:        fps,
		frameCount: frameCount(cfg.Duration, fps),
		easing:     cfg.Easing,
		blur:       cfg.MaskBlur,
	}

	v, err := newVariant(cfg.Kind, cfg.Params, cfg.MaskBlur)
	if err != nil {
		return nil, err
	}
	t.variant = v

	Logger().Debug("transition built",
		slog.String("kind", t.kind.String()),
		slog.Float64("duration", t.duration),
		slog.Float64("fps", t.fps),
		slog.Int("frames", t.frameCount),
		slog.String("easing", t.easing.String()),
		slog.String("mask_blur", t.blur.Kind.String()))
	return t, nil
}

// frameCount returns max(1, round(duration·fps)).
func frameCount(duration, fps float64) int {
	n := int(math.Round(duration * fps))
	return max(1, n)
}

func newVariant(k Kind, p Params, blur MaskBlur) (variant, error) {
	switch k {
	case KindSlider:
		return newSlider(p.Direction), nil
	case KindFade:
		return fade{mode: p.Blend}, nil
	case KindAppearRight:
		return appearRight{blur: blur}, nil
	case KindWipe:
		return wipe{dir: p.Direction, blur: blur}, nil
	case KindBarndoor:
		return barndoor{axis: p.Axis, blur: blur}, nil
	case KindRadial:
		return radial{center: p.Center, blur: blur}, nil
	case KindPie:
		return newPie(p, blur, false), nil
	case KindPieAdvanced:
		return newPie(p, blur, true), nil
	case KindZoom:
		return zoom{mode: p.Zoom, blend: p.Blend}, nil
	case KindBlur:
		return blurFade{mode: p.Blend}, nil
	case KindCheckerboard:
		return newCheckerboard(p, blur), nil
	case KindCheckerboardAnimated:
		return newAnimatedCheckerboard(p, blur), nil
	case KindMovingBars:
		return newMovingBars(p, blur), nil
	case KindInterleave:
		return interleave{bands: max(2, p.Bands), blur: blur}, nil
	case KindRandomCircles:
		return newRandomShapes(p, blur, shapeCircle), nil
	case KindRandomSquares:
		return newRandomShapes(p, blur, shapeSquare), nil
	case KindBlinds:
		return newBlinds(p, blur), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
}

// Kind returns the effect.
func (t *Transition) Kind() Kind { return t.kind }

// Duration returns the duration in seconds.
func (t *Transition) Duration() float64 { return t.duration }

// FPS returns the effective frame rate.
func (t *Transition) FPS() float64 { return t.fps }

// FrameCount returns the number of frames, max(1, round(duration·fps)).
func (t *Transition) FrameCount() int { return t.frameCount }

// Easing returns the easing curve.
func (t *Transition) Easing() easing.Type { return t.easing }

// MaskBlur returns the mask post-processing options.
func (t *Transition) MaskBlur() MaskBlur { return t.blur }

// Progress returns the un-eased progress of frame i: i/(n−1), or 1 when
// the transition has a single frame.
func (t *Transition) Progress(i int) (float64, error) {
	if i < 0 || i >= t.frameCount {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrFrameIndex, i, t.frameCount)
	}
	if t.frameCount == 1 {
		return 1, nil
	}
	return float64(i) / float64(t.frameCount-1), nil
}

// RenderFrame renders frame i of the transition from a to b. Both frames
// must have the same size and format; neither is modified.
func (t *Transition) RenderFrame(i int, a, b *Frame) (*Frame, error) {
	p, err := t.Progress(i)
	if err != nil {
		return nil, err
	}
	return t.Composite(easing.Apply(t.easing, p), a, b)
}

// Composite renders the frame for eased progress te. RenderFrame calls it
// after easing; it is exported for callers that drive progress themselves.
func (t *Transition) Composite(te float64, a, b *Frame) (*Frame, error) {
	if a == nil || b == nil {
		return nil, ErrNilFrame
	}
	if !a.SameShape(b) {
		return nil, fmt.Errorf("%w: %dx%d %s vs %dx%d %s", ErrSizeMismatch,
			a.Width(), a.Height(), a.Format(), b.Width(), b.Height(), b.Format())
	}
	out, err := t.variant.composite(te, a, b)
	if err != nil {
		return nil, fmt.Errorf("transition: %s: %w", t.kind, err)
	}
	return out, nil
}

// Frames returns the rendered frames in order. Iteration stops after the
// first error.
func (t *Transition) Frames(a, b *Frame) iter.Seq2[*Frame, error] {
	return func(yield func(*Frame, error) bool) {
		for i := range t.frameCount {
			f, err := t.RenderFrame(i, a, b)
			if !yield(f, err) || err != nil {
				return
			}
		}
	}
}
