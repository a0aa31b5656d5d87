package filter

import "math"

// EllipseElement returns the half-width of every row of an elliptical
// structuring element that fits a (2r+1)×(2r+1) box. Row i (dy = i−r)
// covers columns [−w[i], w[i]]. Radius 0 yields the single pixel element.
func EllipseElement(r int) []int {
	if r <= 0 {
		return []int{0}
	}
	size := 2*r + 1
	rows := make([]int, size)
	rr := float64(r * r)
	for i := range size {
		dy := float64(i - r)
		rows[i] = int(math.Round(float64(r) * math.Sqrt((rr-dy*dy)/rr)))
	}
	return rows
}

// Erode replaces every sample with the minimum over the elliptical
// structuring element of radius r centred on it. Samples outside the plane
// do not take part. A radius ≤ 0 returns a copy.
func Erode(src Plane, r int) (Plane, error) {
	if !src.valid() {
		return Plane{}, ErrInvalidPlane
	}
	dst := src.like()
	if r <= 0 {
		copy(dst.Data, src.Data)
		return dst, nil
	}

	elem := EllipseElement(r)
	ch := src.Channels
	rowLen := src.Width * ch

	// rowMin[w] holds, for every sample, the minimum over the horizontal
	// run [x−w, x+w] of its row, clipped to the plane.
	rowMin := make([][]byte, r+1)
	rowMin[0] = src.Data
	for w := 1; w <= r; w++ {
		prev, cur := rowMin[w-1], make([]byte, len(src.Data))
		for y := range src.Height {
			base := y * rowLen
			for x := range src.Width {
				for c := range ch {
					v := prev[base+x*ch+c]
					if x-w >= 0 {
						v = min(v, src.Data[base+(x-w)*ch+c])
					}
					if x+w < src.Width {
						v = min(v, src.Data[base+(x+w)*ch+c])
					}
					cur[base+x*ch+c] = v
				}
			}
		}
		rowMin[w] = cur
	}

	for i := range dst.Data {
		dst.Data[i] = 255
	}
	for y := range src.Height {
		out := dst.Data[y*rowLen : (y+1)*rowLen]
		for i, w := range elem {
			sy := y + i - r
			if sy < 0 || sy >= src.Height {
				continue
			}
			run := rowMin[w][sy*rowLen : (sy+1)*rowLen]
			for k, v := range run {
				out[k] = min(out[k], v)
			}
		}
	}
	return dst, nil
}
