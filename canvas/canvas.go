// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Filter selects the sampling used when a bitmap is drawn scaled.
type Filter uint8

const (
	// FilterNearest picks the nearest source pixel.
	FilterNearest Filter = iota

	// FilterBilinear interpolates between the four nearest source pixels.
	FilterBilinear
)

func (f Filter) interpolator() xdraw.Interpolator {
	if f == FilterBilinear {
		return xdraw.BiLinear
	}
	return xdraw.NearestNeighbor
}

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	device DeviceHandle
}

// WithDevice attaches the host's GPU device to the canvas. The canvas is
// hardware accelerated when the handle exposes a non-nil device.
func WithDevice(h DeviceHandle) Option {
	return func(o *options) {
		o.device = h
	}
}

// Canvas draws into an *image.RGBA through an affine transform stack.
type Canvas struct {
	img    *image.RGBA
	matrix Matrix
	stack  []Matrix
	device DeviceHandle

	blurSurface bool
}

// New creates a canvas drawing into img.
func New(img *image.RGBA, opts ...Option) *Canvas {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		img:    img,
		matrix: Identity(),
		device: o.device,
	}
}

// NewBlurCanvas creates the canvas a blur controller captures background
// content into. Blur surfaces are never hardware accelerated.
func NewBlurCanvas(img *image.RGBA) *Canvas {
	c := New(img)
	c.blurSurface = true
	return c
}

// IsBlurSurface reports whether c draws into a blur's scratch bitmap.
func (c *Canvas) IsBlurSurface() bool {
	return c.blurSurface
}

// IsHardwareAccelerated reports whether the canvas composites through the
// host's GPU pipeline.
func (c *Canvas) IsHardwareAccelerated() bool {
	return !c.blurSurface && HasDevice(c.device)
}

// Device returns the device handle given to WithDevice, or nil.
func (c *Canvas) Device() DeviceHandle {
	return c.device
}

// Image returns the bitmap the canvas draws into.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// SetImage rebinds the canvas to another bitmap and resets its transform
// state.
func (c *Canvas) SetImage(img *image.RGBA) {
	c.img = img
	c.matrix = Identity()
	c.stack = c.stack[:0]
}

// Width returns the bitmap width in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the bitmap height in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Save pushes the current transform.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.matrix)
}

// Restore pops the transform pushed by the matching Save.
// Restore without a pending Save does nothing.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.matrix = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// SaveCount returns the number of pending Save calls.
func (c *Canvas) SaveCount() int {
	return len(c.stack)
}

// Matrix returns the current transform.
func (c *Canvas) Matrix() Matrix {
	return c.matrix
}

// Concat pre-multiplies the current transform by m.
func (c *Canvas) Concat(m Matrix) {
	c.matrix = c.matrix.Multiply(m)
}

// Translate pre-multiplies the current transform by a translation.
func (c *Canvas) Translate(x, y float64) {
	c.Concat(Translate(x, y))
}

// Scale pre-multiplies the current transform by a scale.
func (c *Canvas) Scale(x, y float64) {
	c.Concat(Scale(x, y))
}

// Rotate pre-multiplies the current transform by a rotation in radians.
func (c *Canvas) Rotate(angle float64) {
	c.Concat(Rotate(angle))
}

// Clear replaces every pixel with col, ignoring the transform.
func (c *Canvas) Clear(col color.Color) {
	xdraw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, xdraw.Src)
}

// FillRect composites a rectangle, given in local coordinates, over the
// bitmap.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	m := c.matrix.Multiply(Translate(x, y)).Multiply(Scale(w, h))
	src := image.NewUniform(col)

	if m.B == 0 && m.D == 0 {
		p0 := m.TransformPoint(Point{0, 0})
		p1 := m.TransformPoint(Point{1, 1})
		r := image.Rect(
			int(math.Round(p0.X)), int(math.Round(p0.Y)),
			int(math.Round(p1.X)), int(math.Round(p1.Y)),
		).Intersect(c.img.Rect)
		xdraw.Draw(c.img, r, src, image.Point{}, xdraw.Over)
		return
	}
	xdraw.NearestNeighbor.Transform(c.img, m.aff3(), src, image.Rect(0, 0, 1, 1), xdraw.Over, nil)
}

// DrawImage composites src with its top-left corner at (x, y) in local
// coordinates. Scaled or rotated draws are resampled with filter.
func (c *Canvas) DrawImage(src image.Image, x, y float64, filter Filter) {
	b := src.Bounds()
	m := c.matrix.Multiply(Translate(x, y)).Multiply(Translate(-float64(b.Min.X), -float64(b.Min.Y)))

	if m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1 && m.C == math.Trunc(m.C) && m.F == math.Trunc(m.F) {
		dp := image.Pt(int(m.C), int(m.F))
		r := image.Rectangle{Min: b.Min.Add(dp), Max: b.Max.Add(dp)}
		xdraw.Draw(c.img, r, src, b.Min, xdraw.Over)
		return
	}
	filter.interpolator().Transform(c.img, m.aff3(), src, b, xdraw.Over, nil)
}
