package transition

import (
	"image"
	"math"

	"github.com/gogpu/transition/internal/mask"
	"github.com/gogpu/transition/internal/raster"
)

// center resolves an optional centre against a w×h frame.
func center(c *image.Point, w, h int) image.Point {
	if c != nil {
		return *c
	}
	return image.Pt(w/2, h/2)
}

// cornerDistance returns the distance from c to the farthest frame corner.
func cornerDistance(c image.Point, w, h int) float64 {
	x0, y0 := float64(c.X), float64(c.Y)
	x1, y1 := float64(w-c.X), float64(h-c.Y)
	return max(math.Hypot(x0, y0), math.Hypot(x1, y0), math.Hypot(x0, y1), math.Hypot(x1, y1))
}

// radial reveals B inside a circle growing from the centre.
type radial struct {
	center *image.Point
	blur   MaskBlur
}

func (v radial) composite(te float64, a, b *Frame) (*Frame, error) {
	w, h := a.Width(), a.Height()
	c := center(v.center, w, h)
	r := int(math.Ceil(te * cornerDistance(c, w, h)))

	m := mask.New(w, h)
	m.FillCircle(c.X, c.Y, r, 255)
	return maskComposite(a, b, m, v.blur)
}

// pie reveals B inside a circular sector sweeping around the centre. The
// advanced form also grows the sector radius and limits the total sweep.
type pie struct {
	center     *image.Point
	startAngle float64
	sign       float64
	sweep      float64
	r0, r1     float64
	blur       MaskBlur
}

func newPie(p Params, blur MaskBlur, advanced bool) pie {
	v := pie{
		center:     p.Center,
		startAngle: p.StartAngle,
		sign:       p.Rotation.sign(),
		sweep:      360,
		r0:         1,
		r1:         1,
		blur:       blur,
	}
	if advanced {
		v.sweep = p.SweepDeg
		v.r0, v.r1 = p.R0Frac, p.R1Frac
	}
	return v
}

func (v pie) composite(te float64, a, b *Frame) (*Frame, error) {
	w, h := a.Width(), a.Height()
	c := center(v.center, w, h)
	r := (v.r0 + (v.r1-v.r0)*te) * cornerDistance(c, w, h)
	sweep := v.sweep * te * v.sign

	m := mask.New(w, h)
	m.FillPolygon(sectorPolygon(c, r, v.startAngle, sweep), v.blur.Fill(te))
	return maskComposite(a, b, m, v.blur)
}

// sectorPolygon approximates a circular sector by its centre followed by
// arc points spaced at most two degrees apart. Angles are in degrees.
func sectorPolygon(c image.Point, r, start, sweep float64) []raster.Point {
	steps := max(2, int(math.Abs(sweep)/2)+1)
	cx, cy := float64(c.X), float64(c.Y)

	pts := make([]raster.Point, 0, steps+2)
	pts = append(pts, raster.Point{X: cx, Y: cy})
	for k := 0; k <= steps; k++ {
		ang := (start + sweep*float64(k)/float64(steps)) * math.Pi / 180
		pts = append(pts, raster.Point{X: cx + r*math.Cos(ang), Y: cy + r*math.Sin(ang)})
	}
	return pts
}
