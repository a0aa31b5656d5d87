package image

import "errors"

// ErrSingularTransform is returned when a transform has no inverse.
var ErrSingularTransform = errors.New("image: singular transform")

// Affine represents a 2D affine transformation matrix.
//
// The transformation is represented as a 3x3 matrix:
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
type Affine struct {
	a, b, c float64 // x' = ax + by + c
	d, e, f float64 // y' = dx + ey + f
}

// Translate returns a translation that shifts points by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{a: 1, c: tx, e: 1, f: ty}
}

// Scale returns a scaling transformation around the origin.
func Scale(sx, sy float64) Affine {
	return Affine{a: sx, e: sy}
}

// Multiply returns the composition a·other: other is applied first.
func (a Affine) Multiply(other Affine) Affine {
	return Affine{
		a: a.a*other.a + a.b*other.d,
		b: a.a*other.b + a.b*other.e,
		c: a.a*other.c + a.b*other.f + a.c,
		d: a.d*other.a + a.e*other.d,
		e: a.d*other.b + a.e*other.e,
		f: a.d*other.c + a.e*other.f + a.f,
	}
}

// Invert returns the inverse transformation and false if the matrix is
// singular.
func (a Affine) Invert() (Affine, bool) {
	det := a.a*a.e - a.b*a.d
	if det == 0 {
		return Affine{}, false
	}
	inv := 1 / det
	return Affine{
		a: a.e * inv,
		b: -a.b * inv,
		c: (a.b*a.f - a.e*a.c) * inv,
		d: -a.d * inv,
		e: a.a * inv,
		f: (a.d*a.c - a.a*a.f) * inv,
	}, true
}

// TransformPoint applies the transformation to (x, y).
func (a Affine) TransformPoint(x, y float64) (float64, float64) {
	return a.a*x + a.b*y + a.c, a.d*x + a.e*y + a.f
}

// ScaleAt returns a scaling around the point (cx, cy).
func ScaleAt(sx, sy, cx, cy float64) Affine {
	return Translate(cx, cy).Multiply(Scale(sx, sy)).Multiply(Translate(-cx, -cy))
}

// Warp renders src through the forward transform m into a new buffer of
// the same size and format. Each destination pixel samples src at the
// inverse-mapped position with bilinear interpolation; samples outside
// src replicate the nearest edge pixel.
func Warp(src *ImageBuf, m Affine) (*ImageBuf, error) {
	inv, ok := m.Invert()
	if !ok {
		return nil, ErrSingularTransform
	}
	dst := src.NewLike()
	bpp := src.format.BytesPerPixel()
	px := make([]byte, bpp)
	for y := range dst.height {
		row := dst.RowBytes(y)
		for x := range dst.width {
			sx, sy := inv.TransformPoint(float64(x), float64(y))
			SampleBilinear(src, sx, sy, px)
			copy(row[x*bpp:], px)
		}
	}
	return dst, nil
}
