// Package mask builds the single-channel weight planes that drive
// mask-based transitions and composites two frames through them.
//
// A mask value of 0 selects the first frame, 255 the second; values in
// between interpolate linearly.
package mask

import (
	"math"

	"github.com/gogpu/transition/internal/filter"
	"github.com/gogpu/transition/internal/raster"
)

// Mask represents a single-channel weight plane.
// Values range from 0 (first frame) to 255 (second frame).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// New creates a new empty mask with the given dimensions.
// All values are initialized to 0.
func New(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := New(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying mask data slice in row-major order.
func (m *Mask) Data() []uint8 {
	return m.data
}

// Area returns the number of non-zero values.
func (m *Mask) Area() int {
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// FillRect sets the half-open rectangle [x0, x1)×[y0, y1) to value.
// The rectangle is clipped to the mask; an empty rectangle is a no-op.
func (m *Mask) FillRect(x0, y0, x1, y1 int, value uint8) {
	x0, x1 = max(x0, 0), min(x1, m.width)
	y0, y1 = max(y0, 0), min(y1, m.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for y := y0; y < y1; y++ {
		row := m.data[y*m.width : (y+1)*m.width]
		for x := x0; x < x1; x++ {
			row[x] = value
		}
	}
}

// FillCircle sets every pixel within distance r of (cx, cy) to value.
// A radius ≤ 0 draws nothing.
func (m *Mask) FillCircle(cx, cy, r int, value uint8) {
	if r <= 0 {
		return
	}
	rr := r * r
	for y := max(cy-r, 0); y <= min(cy+r, m.height-1); y++ {
		dy := y - cy
		dx := int(math.Sqrt(float64(rr - dy*dy)))
		m.FillRect(cx-dx, y, cx+dx+1, y+1, value)
	}
}

// FillPolygon fills the closed polygon through pts using the non-zero
// winding rule. A pixel is covered when its centre is inside.
func (m *Mask) FillPolygon(pts []raster.Point, value uint8) {
	r := raster.NewRasterizer(m.width, m.height)
	r.Fill(spanWriter{m: m, value: value}, pts)
}

// spanWriter adapts a Mask to raster.SpanFiller.
type spanWriter struct {
	m     *Mask
	value uint8
}

func (s spanWriter) FillSpan(x1, x2, y int) {
	row := s.m.data[y*s.m.width : (y+1)*s.m.width]
	for x := x1; x < x2; x++ {
		row[x] = s.value
	}
}

// Erode shrinks the filled regions with an elliptical structuring element
// of radius r (size 2r+1). A radius ≤ 0 is a no-op.
func (m *Mask) Erode(r int) error {
	if r <= 0 {
		return nil
	}
	out, err := filter.Erode(m.plane(), r)
	if err != nil {
		return err
	}
	copy(m.data, out.Data)
	return nil
}

func (m *Mask) plane() filter.Plane {
	return filter.MaskPlane(m.data, m.width, m.height)
}
