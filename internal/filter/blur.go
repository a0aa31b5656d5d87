package filter

import (
	"fmt"
	"sync"

	intImage "github.com/gogpu/transition/internal/image"
)

// Convolve applies the separable kernel pair (kx along rows, ky along
// columns) to src and returns the filtered plane. Both kernels must have
// odd length. Samples outside the plane replicate the nearest edge.
func Convolve(src Plane, kx, ky []float32) (Plane, error) {
	if !src.valid() {
		return Plane{}, ErrInvalidPlane
	}
	if len(kx)%2 == 0 || len(ky)%2 == 0 {
		return Plane{}, fmt.Errorf("filter: kernel length must be odd (%d, %d)", len(kx), len(ky))
	}

	dst := src.like()
	if len(kx) == 1 && len(ky) == 1 {
		copy(dst.Data, src.Data)
		return dst, nil
	}

	temp := getTempBuffer(len(src.Data))
	defer putTempBuffer(temp)

	// Pass 1: Horizontal blur (src -> temp)
	blurHorizontal(src, temp, kx)

	// Pass 2: Vertical blur (temp -> dst)
	blurVertical(temp, dst, ky)

	return dst, nil
}

// BoxBlur applies a normalized ksize×ksize box filter.
func BoxBlur(src Plane, ksize int) (Plane, error) {
	k := BoxKernel(ksize)
	return Convolve(src, k, k)
}

// GaussianBlur applies a ksize×ksize Gaussian filter. A sigma ≤ 0 is
// derived from the kernel size.
func GaussianBlur(src Plane, ksize int, sigma float64) (Plane, error) {
	k := CachedGaussianKernel(ksize, sigma)
	return Convolve(src, k, k)
}

// GaussianBlurImage returns a Gaussian-blurred copy of img.
func GaussianBlurImage(img *intImage.ImageBuf, ksize int, sigma float64) (*intImage.ImageBuf, error) {
	return applyImage(img, func(p Plane) (Plane, error) {
		return GaussianBlur(p, ksize, sigma)
	})
}

// blurHorizontal applies 1D horizontal convolution.
// Reads from src, writes to temp buffer.
func blurHorizontal(src Plane, temp []float32, kernel []float32) {
	half := len(kernel) / 2
	ch := src.Channels
	rowLen := src.Width * ch

	for y := range src.Height {
		row := src.Data[y*rowLen : (y+1)*rowLen]
		out := temp[y*rowLen : (y+1)*rowLen]
		for x := range src.Width {
			for c := range ch {
				var acc float32
				for k, weight := range kernel {
					kx := clampInt(x+k-half, 0, src.Width-1)
					acc += float32(row[kx*ch+c]) * weight
				}
				out[x*ch+c] = acc
			}
		}
	}
}

// blurVertical applies 1D vertical convolution.
// Reads from temp buffer, writes to dst.
func blurVertical(temp []float32, dst Plane, kernel []float32) {
	half := len(kernel) / 2
	rowLen := dst.Width * dst.Channels

	for y := range dst.Height {
		out := dst.Data[y*rowLen : (y+1)*rowLen]
		for i := range rowLen {
			var acc float32
			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, dst.Height-1)
				acc += temp[ky*rowLen+i] * weight
			}
			out[i] = clampUint8(acc)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool for blur operations.
var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{}
	},
}

// getTempBuffer retrieves a temporary buffer with at least size elements.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if cap(wrapper.data) < size {
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float32) {
	// Only pool reasonably-sized buffers
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}
