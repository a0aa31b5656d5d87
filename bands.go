package transition

import (
	"math"

	"github.com/gogpu/transition/internal/mask"
)

// band returns the extent [lo, hi) of band i when n bands split size. The
// last band absorbs the remainder.
func band(i, n, size int) (lo, hi int) {
	bw := max(1, size/n)
	lo = i * bw
	hi = lo + bw
	if i == n-1 {
		hi = size
	}
	return lo, min(hi, size)
}

// interleave reveals vertical bands that grow alternately from their left
// edge (even bands) and their right edge (odd bands).
type interleave struct {
	bands int
	blur  MaskBlur
}

func (v interleave) composite(te float64, a, b *Frame) (*Frame, error) {
	w, h := a.Width(), a.Height()
	m := mask.New(w, h)
	fill := v.blur.Fill(te)

	for i := range v.bands {
		x0, x1 := band(i, v.bands, w)
		n := min(int(math.Round(float64(x1-x0)*te)), x1-x0)
		if i%2 == 0 {
			m.FillRect(x0, 0, x0+n, h, fill)
		} else {
			m.FillRect(x1-n, 0, x1, h, fill)
		}
	}
	return maskComposite(a, b, m, v.blur)
}

// blinds reveals bands that each grow from one of their edges. A non-zero
// wave amplitude shifts each band's progress by a sinusoid of its index.
type blinds struct {
	axis      Axis
	dir       Direction
	count     int
	amplitude float64
	phase     float64
	blur      MaskBlur
}

// maxWaveAmplitude bounds the per-band progress offset of blinds.
const maxWaveAmplitude = 0.49

func newBlinds(p Params, blur MaskBlur) blinds {
	return blinds{
		axis:      p.Axis,
		dir:       p.Direction,
		count:     max(1, p.Count),
		amplitude: min(max(p.WaveAmplitude, 0), maxWaveAmplitude),
		phase:     p.WavePhase,
		blur:      blur,
	}
}

// progress returns the local progress of band i.
func (v blinds) progress(te float64, i int) float64 {
	if v.amplitude <= 0 {
		return te
	}
	phase := v.phase + 2*math.Pi*float64(i)/float64(v.count)
	return min(max(te+v.amplitude*math.Sin(phase), 0), 1)
}

func (v blinds) composite(te float64, a, b *Frame) (*Frame, error) {
	w, h := a.Width(), a.Height()
	m := mask.New(w, h)
	fill := v.blur.Fill(te)

	for i := range v.count {
		ti := v.progress(te, i)
		if v.axis == Vertical {
			x0, x1 := band(i, v.count, w)
			n := min(int(math.Round(float64(x1-x0)*ti)), x1-x0)
			if v.dir == LeftToRight {
				m.FillRect(x0, 0, x0+n, h, fill)
			} else {
				m.FillRect(x1-n, 0, x1, h, fill)
			}
			continue
		}
		y0, y1 := band(i, v.count, h)
		n := min(int(math.Round(float64(y1-y0)*ti)), y1-y0)
		if v.dir == TopToBottom {
			m.FillRect(0, y0, w, y0+n, fill)
		} else {
			m.FillRect(0, y1-n, w, y1, fill)
		}
	}
	return maskComposite(a, b, m, v.blur)
}

// movingBars reveals bands that each advance at their own speed, drawn
// once from the seed at construction. Vertical bars are columns growing
// along y; horizontal bars are rows growing along x.
type movingBars struct {
	axis   Axis
	dir    Direction
	speeds []float64
	blur   MaskBlur
}

// minBarSpeed is the slowest a bar may advance relative to te. Every bar
// therefore completes by te = 1.
const minBarSpeed = 1.0

func newMovingBars(p Params, blur MaskBlur) movingBars {
	dir := p.Direction
	if p.Axis == Vertical && dir.horizontal() {
		dir = TopToBottom
	} else if p.Axis == Horizontal && !dir.horizontal() {
		dir = LeftToRight
	}

	lo := max(minBarSpeed, p.SpeedMin)
	hi := max(lo, p.SpeedMax)
	speeds := make([]float64, max(1, p.Count))
	rng := newRand(p.Seed)
	for i := range speeds {
		speeds[i] = lo + (hi-lo)*rng.Float64()
	}
	return movingBars{axis: p.Axis, dir: dir, speeds: speeds, blur: blur}
}

func (v movingBars) composite(te float64, a, b *Frame) (*Frame, error) {
	w, h := a.Width(), a.Height()
	m := mask.New(w, h)
	fill := v.blur.Fill(te)
	n := len(v.speeds)

	for i, speed := range v.speeds {
		local := min(max(te*speed, 0), 1)
		if v.axis == Vertical {
			x0, x1 := band(i, n, w)
			ext := int(math.Round(local * float64(h)))
			if v.dir == TopToBottom {
				m.FillRect(x0, 0, x1, ext, fill)
			} else {
				m.FillRect(x0, h-ext, x1, h, fill)
			}
			continue
		}
		y0, y1 := band(i, n, h)
		ext := int(math.Round(local * float64(w)))
		if v.dir == LeftToRight {
			m.FillRect(0, y0, ext, y1, fill)
		} else {
			m.FillRect(w-ext, y0, w, y1, fill)
		}
	}
	return maskComposite(a, b, m, v.blur)
}
