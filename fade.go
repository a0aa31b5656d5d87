package transition

import (
	"fmt"

	"github.com/gogpu/transition/internal/blend"
	"github.com/gogpu/transition/internal/filter"
	intImage "github.com/gogpu/transition/internal/image"
)

// fade cross-dissolves with weight te.
type fade struct {
	mode BlendMode
}

func (v fade) composite(te float64, a, b *Frame) (*Frame, error) {
	return blend.Apply(a, b, te, v.mode)
}

// zoom scales B about the frame centre while fading it in.
type zoom struct {
	mode  ZoomMode
	blend BlendMode
}

func (z zoom) composite(te float64, a, b *Frame) (*Frame, error) {
	s := 0.5 + 0.5*te
	if z.mode == ZoomOut {
		s = 1.5 - 0.5*te
	}
	m := intImage.ScaleAt(s, s, float64(b.Width())/2, float64(b.Height())/2)
	scaled, err := intImage.Warp(b, m)
	if err != nil {
		return nil, fmt.Errorf("zoom: %w", err)
	}
	return blend.Apply(a, scaled, te, z.blend)
}

// blurMaxSteps and blurStep set the blur kernel schedule: a progress of p
// blurs with a kernel of int(p·blurMaxSteps)·blurStep+1 pixels.
const (
	blurMaxSteps = 15
	blurStep     = 8
)

// blurFade blurs A out and B in while cross-dissolving.
type blurFade struct {
	mode BlendMode
}

func (v blurFade) composite(te float64, a, b *Frame) (*Frame, error) {
	te = min(max(te, 0), 1)
	k1 := int(te*blurMaxSteps)*blurStep + 1
	k2 := int((1-te)*blurMaxSteps)*blurStep + 1

	ba, err := filter.GaussianBlurImage(a, k1, 0)
	if err != nil {
		return nil, fmt.Errorf("blur: %w", err)
	}
	bb, err := filter.GaussianBlurImage(b, k2, 0)
	if err != nil {
		return nil, fmt.Errorf("blur: %w", err)
	}
	return blend.Apply(ba, bb, te, v.mode)
}
