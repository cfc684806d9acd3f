package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates a normalized 1D Gaussian kernel for the given
// radius. The radius is used as sigma; the kernel spans 3 sigma on each side.
//
// For radius <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	sigma := radius
	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1

	kernel := make([]float32, size)

	// G(x) = exp(-x²/(2σ²)), normalized below
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	if sum > 0 {
		invSum := float32(1.0 / sum)
		for i := range kernel {
			kernel[i] *= invSum
		}
	}

	return kernel
}

// kernelCache caches Gaussian kernels keyed by radius*100.
// Effects are re-evaluated every frame with the same radius.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultKernelCache = newKernelCache(32)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float32),
		maxLen: maxLen,
	}
}

func (c *kernelCache) get(radius float64) []float32 {
	key := int(radius * 100)

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(radius)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Drop everything; radii rarely change once a view is set up.
		clear(c.cache)
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns a cached Gaussian kernel for the radius.
func CachedGaussianKernel(radius float64) []float32 {
	return defaultKernelCache.get(radius)
}
