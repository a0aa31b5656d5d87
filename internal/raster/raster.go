// Package raster provides scanline rasterization of closed polygons.
//
// Coverage is binary: a pixel is inside when its centre is inside the
// polygon under the non-zero winding rule.
package raster

import "math"

// SpanFiller receives the covered spans of a rasterized polygon.
// Spans are half-open, [x1, x2), already clipped to the target bounds.
type SpanFiller interface {
	FillSpan(x1, x2, y int)
}

// Rasterizer performs scanline rasterization into a width×height target.
// A Rasterizer is not safe for concurrent use; create one per goroutine.
type Rasterizer struct {
	width  int
	height int
	aet    *ActiveEdgeTable
}

// NewRasterizer creates a new rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		aet:    NewActiveEdgeTable(),
	}
}

// Fill rasterizes the polygon through points. The polygon is closed
// implicitly: the last point connects back to the first. Overlapping
// parts with the same orientation stay filled.
func (r *Rasterizer) Fill(dst SpanFiller, points []Point) {
	if len(points) < 3 {
		return
	}

	// Build edge list
	edges := make([]Edge, 0, len(points))
	for i, p0 := range points {
		p1 := points[(i+1)%len(points)]

		// Skip horizontal edges
		if math.Abs(p1.Y-p0.Y) < 1e-9 {
			continue
		}

		edges = append(edges, NewEdge(p0, p1))
	}

	if len(edges) == 0 {
		return
	}

	// Find y bounds
	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}

	// Clamp to target bounds
	yMinInt := max(int(math.Floor(yMin)), 0)
	yMaxInt := min(int(math.Ceil(yMax)), r.height)

	// Scanline rasterization at pixel centres
	for y := yMinInt; y < yMaxInt; y++ {
		r.scanline(dst, edges, float64(y)+0.5, y)
	}
}

// scanline processes a single scanline.
func (r *Rasterizer) scanline(dst SpanFiller, edges []Edge, scanY float64, y int) {
	r.aet.Clear()

	// Add edges that intersect this scanline
	for _, edge := range edges {
		if edge.y0 <= scanY && scanY < edge.y1 {
			r.aet.AddAtY(edge, scanY)
		}
	}

	if len(r.aet.Edges()) == 0 {
		return
	}

	r.aet.Sort()
	r.fillNonZero(dst, r.aet.Edges(), y)
}

// fillNonZero fills using the non-zero winding rule.
func (r *Rasterizer) fillNonZero(dst SpanFiller, edges []ActiveEdge, y int) {
	winding := 0
	var x1 float64

	for _, edge := range edges {
		if winding == 0 {
			x1 = edge.x
		}

		winding += edge.dir

		if winding == 0 {
			r.fillSpan(dst, x1, edge.x, y)
		}
	}
}

// fillSpan emits the pixels whose centres lie in [x1, x2).
func (r *Rasterizer) fillSpan(dst SpanFiller, x1, x2 float64, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}

	start := max(int(math.Ceil(x1-0.5)), 0)
	end := min(int(math.Ceil(x2-0.5)), r.width)
	if start >= end {
		return
	}
	dst.FillSpan(start, end, y)
}
