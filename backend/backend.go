// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"image"

	"github.com/gogpu/blurview/canvas"
	"github.com/gogpu/gputypes"
)

const (
	// DefaultScaleFactor is the downscale factor of the built-in backends.
	DefaultScaleFactor = 10.0

	// MinKernelRadius and MaxKernelRadius bound the radius Kernel accepts.
	MinKernelRadius = 1.0
	MaxKernelRadius = 25.0
)

// Backend is a blur implementation.
//
// Blur and Render are called once per frame from the host's draw sequence.
// Implementations are not safe for concurrent use.
type Backend interface {
	// Blur blurs bmp with the given radius and returns the bitmap holding
	// the result. Backends may defer the actual blur to Render.
	Blur(bmp *image.RGBA, radius float64) *image.RGBA

	// Render draws the bitmap returned by Blur onto c at the origin, under
	// the canvas transform.
	Render(c *canvas.Canvas, bmp *image.RGBA)

	// Destroy releases backend resources. It is safe to call more than once.
	Destroy()

	// CanModifyInPlace reports whether Blur returns the bitmap it was given.
	// When false the caller must rebind its drawing target to the returned
	// bitmap.
	CanModifyInPlace() bool

	// SupportedFormat returns the pixel format bitmaps passed to Blur must use.
	SupportedFormat() gputypes.TextureFormat

	// ScaleFactor returns the downscale factor the backend was tuned for.
	ScaleFactor() float64
}

// RadiusClamper is implemented by backends that accept a limited radius range.
type RadiusClamper interface {
	ClampRadius(radius float64) float64
}

// ClampRadius returns radius limited to the range b accepts.
// Negative radii are always raised to zero.
func ClampRadius(b Backend, radius float64) float64 {
	if rc, ok := b.(RadiusClamper); ok {
		return rc.ClampRadius(radius)
	}
	return max(radius, 0)
}

// Select returns the preferred backend for a host: Compositor when device
// exposes a GPU, Kernel otherwise.
func Select(device canvas.DeviceHandle) Backend {
	if canvas.HasDevice(device) {
		Logger().Debug("blur backend selected", "backend", "compositor")
		return NewCompositor()
	}
	Logger().Debug("blur backend selected", "backend", "kernel")
	return NewKernel()
}
