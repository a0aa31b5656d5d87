package transition

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gogpu/transition/internal/mask"
)

type shapeKind uint8

const (
	shapeCircle shapeKind = iota
	shapeSquare
)

// maxErodeRadius is the erosion radius applied at te = 0; it shrinks to
// zero as te^1.5 approaches 1.
const maxErodeRadius = 6

// randomShapes reveals B through count shapes at seeded positions that
// grow with te. Positions are redrawn from the seed on every frame, so
// each frame is reproducible on its own.
type randomShapes struct {
	shape shapeKind
	count int
	seed  uint64
	blur  MaskBlur
}

func newRandomShapes(p Params, blur MaskBlur, shape shapeKind) randomShapes {
	return randomShapes{shape: shape, count: max(1, p.Count), seed: p.Seed, blur: blur}
}

func (v randomShapes) composite(te float64, a, b *Frame) (*Frame, error) {
	w, h := a.Width(), a.Height()
	m := mask.New(w, h)
	fill := v.blur.Fill(te)

	rng := newRand(v.seed)
	maxR := math.Hypot(float64(w), float64(h))
	r := 0.05*maxR + 0.95*maxR*te

	for range v.count {
		cx := rng.IntN(w)
		cy := rng.IntN(h)
		switch v.shape {
		case shapeCircle:
			m.FillCircle(cx, cy, int(math.Round(r*0.25)), fill)
		case shapeSquare:
			ri := int(math.Round(r * 0.30))
			if ri > 0 {
				m.FillRect(cx-ri/2, cy-ri/2, cx+ri/2+1, cy+ri/2+1, fill)
			}
		}
	}

	if scale := math.Pow(min(max(te, 0), 1), 1.5); scale < 1 {
		if k := int(math.Round((1 - scale) * maxErodeRadius)); k > 0 {
			if err := m.Erode(k); err != nil {
				return nil, fmt.Errorf("erode: %w", err)
			}
		}
	}
	return maskComposite(a, b, m, v.blur)
}

// newRand returns a deterministic generator for seed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
