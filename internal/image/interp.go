package image

import "math"

// SampleBilinear samples img at pixel-space position (x, y) with bilinear
// interpolation and writes one value per channel into out, which must hold
// at least BytesPerPixel bytes. Pixel centres sit at integer coordinates.
// Positions outside the image replicate the nearest edge pixel.
func SampleBilinear(img *ImageBuf, x, y float64, out []byte) {
	bpp := img.format.BytesPerPixel()

	x = clampFloat(x, 0, float64(img.width-1))
	y = clampFloat(y, 0, float64(img.height-1))

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := min(x0+1, img.width-1)
	y1 := min(y0+1, img.height-1)
	tx := x - float64(x0)
	ty := y - float64(y0)

	o00 := y0*img.stride + x0*bpp
	o10 := y0*img.stride + x1*bpp
	o01 := y1*img.stride + x0*bpp
	o11 := y1*img.stride + x1*bpp

	for c := range bpp {
		v := lerp2D(
			float64(img.data[o00+c]), float64(img.data[o10+c]),
			float64(img.data[o01+c]), float64(img.data[o11+c]),
			tx, ty,
		)
		out[c] = byte(clampFloat(math.Round(v), 0, 255))
	}
}

func clampFloat(val, minVal, maxVal float64) float64 {
	if val < minVal || math.IsNaN(val) {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	return lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
}
