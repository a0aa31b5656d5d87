package transition

import (
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/gogpu/transition/easing"
	"github.com/gogpu/transition/internal/config"
)

// defaultKind is used when a document has no type key.
const defaultKind = KindFade

// FromDocument builds a transition from a configuration document for
// frames of size width×height. defaultFPS applies when the document has no
// fps key; a non-positive value falls back to DefaultFPS.
//
// Absent keys take the effect defaults of DefaultParams. Unknown easing
// names degrade to linear; every other unrecognized value is an error.
func FromDocument(doc *config.Document, defaultFPS float64, width, height int) (*Transition, error) {
	if doc == nil {
		doc = &config.Document{}
	}

	kind := defaultKind
	if strings.TrimSpace(doc.Type) != "" {
		k, err := ParseKind(doc.Type)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	cfg := Config{
		Kind:     kind,
		Duration: DefaultDuration,
		FPS:      defaultFPS,
		Easing:   parseEasing(doc.Easing),
	}
	if !(cfg.FPS > 0) {
		cfg.FPS = DefaultFPS
	}
	if doc.Duration != nil {
		cfg.Duration = *doc.Duration
	}
	if doc.FPS != nil {
		cfg.FPS = *doc.FPS
	}

	blur, err := maskBlurFromDocument(doc.MaskBlur)
	if err != nil {
		return nil, err
	}
	cfg.MaskBlur = blur

	params, err := paramsFromDocument(kind, doc, width, height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	if doc.BlendMode != "" {
		if params.Blend, err = ParseBlendMode(doc.BlendMode); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", kind, ErrInvalidParam, err)
		}
	}
	cfg.Params = params

	return New(cfg)
}

// parseEasing resolves an easing name, logging names that fall back to
// linear.
func parseEasing(name string) easing.Type {
	typ := easing.Parse(name)
	if typ == easing.Linear && name != "" && fold(name) != easing.Linear.String() {
		Logger().Warn("unknown easing, using linear", slog.String("easing", name))
	}
	return typ
}

func maskBlurFromDocument(mb *config.MaskBlur) (MaskBlur, error) {
	var out MaskBlur
	if mb == nil {
		return out, nil
	}
	kind, err := ParseBlurKind(mb.Type)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrInvalidParam, err)
	}
	out.Kind = kind
	if mb.KSize != nil {
		out.KSize = *mb.KSize
	}
	if mb.Sigma != nil {
		out.Sigma = *mb.Sigma
	}
	if mb.OpacityChange != nil {
		out.OpacityRamp = *mb.OpacityChange
	}
	return out, nil
}

func paramsFromDocument(kind Kind, doc *config.Document, width, height int) (Params, error) {
	p := DefaultParams(kind)
	var err error

	switch kind {
	case KindSlider:
		if doc.Direction != "" && fold(doc.Type) != "slideright" {
			p.Direction, err = ParseDirection(doc.Direction)
		}
	case KindWipe:
		if doc.Direction != "" {
			p.Direction, err = ParseDirection(doc.Direction)
		}
	case KindBarndoor:
		if doc.Orientation != "" {
			p.Axis, err = ParseAxis(doc.Orientation)
		}
	case KindRadial:
		p.Center = centerFromDocument(doc, width, height)
	case KindPie, KindPieAdvanced:
		p.Center = centerFromDocument(doc, width, height)
		setFloat(&p.StartAngle, doc.StartAngle)
		setFloat(&p.SweepDeg, doc.SweepDeg)
		setFloat(&p.R0Frac, doc.R0Frac)
		setFloat(&p.R1Frac, doc.R1Frac)
		if doc.Direction != "" {
			p.Rotation, err = ParseRotation(doc.Direction)
		}
	case KindZoom:
		if doc.Mode != "" {
			p.Zoom, err = ParseZoomMode(doc.Mode)
		}
	case KindCheckerboard, KindCheckerboardAnimated:
		if doc.Squares != nil {
			p.Rows, p.Cols = *doc.Squares, *doc.Squares
		}
		setInt(&p.Rows, doc.Rows)
		setInt(&p.Cols, doc.Cols)
		if doc.Stepwise != nil {
			p.Stepwise = *doc.Stepwise
		}
		if doc.Seed != nil {
			p.Seed = *doc.Seed
		}
		if kind == KindCheckerboardAnimated && doc.Order != "" {
			p.Order, err = ParseOrder(doc.Order)
		}
	case KindMovingBars:
		setInt(&p.Count, doc.Count)
		setFloat(&p.SpeedMin, doc.SpeedMin)
		setFloat(&p.SpeedMax, doc.SpeedMax)
		if doc.Seed != nil {
			p.Seed = *doc.Seed
		}
		if doc.Axis != "" {
			if p.Axis, err = ParseAxis(doc.Axis); err != nil {
				return p, err
			}
		}
		if doc.Direction != "" {
			p.Direction, err = ParseBarDirection(doc.Direction)
		}
	case KindInterleave:
		setInt(&p.Bands, doc.Bands)
	case KindRandomCircles, KindRandomSquares:
		setInt(&p.Count, doc.Count)
		if doc.Seed != nil {
			p.Seed = *doc.Seed
		}
	case KindBlinds:
		setInt(&p.Count, doc.Count)
		setFloat(&p.WaveAmplitude, doc.WaveAmplitude)
		setFloat(&p.WavePhase, doc.WavePhase)
		if doc.Axis != "" {
			if p.Axis, err = ParseAxis(doc.Axis); err != nil {
				return p, err
			}
		}
		if doc.Direction != "" {
			p.Direction, err = ParseDirection(doc.Direction)
		}
	}
	return p, err
}

// centerFromDocument returns the configured centre, defaulting each
// coordinate to the middle of the frame.
func centerFromDocument(doc *config.Document, width, height int) *image.Point {
	c := image.Pt(width/2, height/2)
	if doc.CenterX != nil {
		c.X = *doc.CenterX
	}
	if doc.CenterY != nil {
		c.Y = *doc.CenterY
	}
	return &c
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
