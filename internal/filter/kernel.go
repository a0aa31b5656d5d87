package filter

import (
	"math"
	"sync"
)

// OddKernelSize forces a kernel size to be odd by rounding even sizes up.
// Sizes below 1 become 1.
func OddKernelSize(ksize int) int {
	if ksize < 1 {
		return 1
	}
	if ksize%2 == 0 {
		return ksize + 1
	}
	return ksize
}

// SigmaForSize returns the standard deviation used when a Gaussian kernel
// of the given size is requested without an explicit sigma:
// 0.3·((ksize−1)·0.5 − 1) + 0.8.
func SigmaForSize(ksize int) float64 {
	return 0.3*(float64(ksize-1)*0.5-1) + 0.8
}

// GaussianKernel generates a normalized 1D Gaussian kernel of the given
// size. The size is forced odd. A sigma ≤ 0 is derived from the size with
// SigmaForSize.
func GaussianKernel(ksize int, sigma float64) []float32 {
	ksize = OddKernelSize(ksize)
	if ksize == 1 {
		return []float32{1.0}
	}
	if sigma <= 0 {
		sigma = SigmaForSize(ksize)
	}

	half := ksize / 2
	kernel := make([]float32, ksize)

	// G(x) = exp(-x²/(2σ²)); the constant factor cancels on normalization.
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)
	vals := make([]float64, ksize)
	for i := range ksize {
		x := float64(i - half)
		vals[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += vals[i]
	}
	for i, v := range vals {
		kernel[i] = float32(v / sum)
	}

	return kernel
}

// BoxKernel generates a 1D box (uniform) kernel of the given size.
// The size is forced odd; all values are 1/ksize.
func BoxKernel(ksize int) []float32 {
	ksize = OddKernelSize(ksize)
	kernel := make([]float32, ksize)
	val := float32(1.0) / float32(ksize)
	for i := range kernel {
		kernel[i] = val
	}
	return kernel
}

type gaussianKey struct {
	ksize int
	sigma float64
}

// kernelCache caches computed Gaussian kernels. Frames of a blur
// transition request the same handful of sizes repeatedly.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[gaussianKey][]float32
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

// newKernelCache creates a kernel cache with the given maximum entries.
func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[gaussianKey][]float32),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(ksize int, sigma float64) []float32 {
	key := gaussianKey{ksize: OddKernelSize(ksize), sigma: sigma}
	if sigma <= 0 {
		key.sigma = 0
	}

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(key.ksize, key.sigma)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: clear half the cache
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns a cached Gaussian kernel. Callers must not
// modify the returned slice.
func CachedGaussianKernel(ksize int, sigma float64) []float32 {
	return defaultKernelCache.get(ksize, sigma)
}
