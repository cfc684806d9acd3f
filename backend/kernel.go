// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/blurview/canvas"
	"github.com/gogpu/gputypes"
)

// KernelFunc blurs src and returns a new image of the same size.
type KernelFunc func(src image.Image, radius float64) *image.RGBA

// KernelOption configures a Kernel.
type KernelOption func(*Kernel)

// WithKernelFunc replaces the blur kernel. The default is bild's separable
// Gaussian.
func WithKernelFunc(f KernelFunc) KernelOption {
	return func(k *Kernel) {
		if f != nil {
			k.kernel = f
		}
	}
}

// Kernel blurs eagerly on every Blur call. The blurred pixels are written
// back into the bitmap it receives.
type Kernel struct {
	kernel KernelFunc

	// snapshot holds the input of the kernel, which must not read from the
	// bitmap it writes back to. Reused while the bitmap size stays the same.
	snapshot   *image.RGBA
	lastWidth  int
	lastHeight int

	allocations int
	destroyed   bool
}

var _ Backend = (*Kernel)(nil)

// NewKernel creates a kernel backend.
func NewKernel(opts ...KernelOption) *Kernel {
	k := &Kernel{
		kernel:     blur.Gaussian,
		lastWidth:  -1,
		lastHeight: -1,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func (k *Kernel) canReuseAllocation(bmp *image.RGBA) bool {
	return k.snapshot != nil && bmp.Rect.Dx() == k.lastWidth && bmp.Rect.Dy() == k.lastHeight
}

// Blur blurs bmp in place and returns it. The radius is clamped to
// MinKernelRadius..MaxKernelRadius.
func (k *Kernel) Blur(bmp *image.RGBA, radius float64) *image.RGBA {
	if k.destroyed || bmp == nil || bmp.Rect.Empty() {
		return bmp
	}

	if !k.canReuseAllocation(bmp) {
		k.snapshot = image.NewRGBA(image.Rect(0, 0, bmp.Rect.Dx(), bmp.Rect.Dy()))
		k.lastWidth = bmp.Rect.Dx()
		k.lastHeight = bmp.Rect.Dy()
		k.allocations++
		Logger().Debug("kernel blur allocation", "width", k.lastWidth, "height", k.lastHeight)
	}
	xdraw.Draw(k.snapshot, k.snapshot.Rect, bmp, bmp.Rect.Min, xdraw.Src)

	blurred := k.kernel(k.snapshot, k.ClampRadius(radius))
	xdraw.Draw(bmp, bmp.Rect, blurred, blurred.Rect.Min, xdraw.Src)
	return bmp
}

// Render draws bmp with bilinear filtering.
func (k *Kernel) Render(c *canvas.Canvas, bmp *image.RGBA) {
	c.DrawImage(bmp, 0, 0, canvas.FilterBilinear)
}

// Destroy releases the snapshot allocation.
func (k *Kernel) Destroy() {
	if k.destroyed {
		return
	}
	k.destroyed = true
	k.snapshot = nil
	k.lastWidth, k.lastHeight = -1, -1
}

// CanModifyInPlace returns true.
func (k *Kernel) CanModifyInPlace() bool { return true }

// SupportedFormat returns RGBA8.
func (k *Kernel) SupportedFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// ScaleFactor returns DefaultScaleFactor.
func (k *Kernel) ScaleFactor() float64 { return DefaultScaleFactor }

// ClampRadius limits radius to MinKernelRadius..MaxKernelRadius.
func (k *Kernel) ClampRadius(radius float64) float64 {
	return min(max(radius, MinKernelRadius), MaxKernelRadius)
}
