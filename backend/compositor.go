// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/blurview/canvas"
	"github.com/gogpu/gputypes"
)

// CompositorOption configures a Compositor.
type CompositorOption func(*Compositor)

// WithFallback sets the constructor of the backend used when rendering onto
// a software canvas. The default builds a Kernel.
func WithFallback(newFallback func() Backend) CompositorOption {
	return func(b *Compositor) {
		if newFallback != nil {
			b.newFallback = newFallback
		}
	}
}

// Compositor records the bitmap into a render node with a blur effect
// attached. The host's GPU pipeline evaluates the effect when the node is
// drawn; Blur never touches the pixels.
type Compositor struct {
	node       *canvas.RenderNode
	width      int
	height     int
	lastRadius float64

	newFallback func() Backend
	fallback    Backend

	// fallbackSrc is the copy of the bitmap the fallback blurs, so that
	// repeated software renders of one capture do not blur it twice.
	fallbackSrc *image.RGBA

	destroyed bool
}

var _ Backend = (*Compositor)(nil)

// NewCompositor creates a compositor backend.
func NewCompositor(opts ...CompositorOption) *Compositor {
	b := &Compositor{
		node:        canvas.NewRenderNode("BlurViewNode"),
		lastRadius:  MinKernelRadius,
		newFallback: func() Backend { return NewKernel() },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Blur records bmp and attaches a mirrored blur effect. It returns bmp
// unchanged.
func (b *Compositor) Blur(bmp *image.RGBA, radius float64) *image.RGBA {
	if b.destroyed || bmp == nil {
		return bmp
	}
	b.lastRadius = radius

	w, h := bmp.Rect.Dx(), bmp.Rect.Dy()
	if w != b.width || h != b.height {
		b.width, b.height = w, h
		b.node.SetPosition(0, 0, w, h)
	}

	rc := b.node.BeginRecording()
	rc.DrawImage(bmp, 0, 0, canvas.FilterNearest)
	b.node.EndRecording()
	b.node.SetRenderEffect(canvas.NewBlurEffect(radius, radius, canvas.TileMirror))

	return bmp
}

// Render draws the node when c is hardware accelerated. Otherwise the
// fallback backend blurs a copy of bmp with the last radius; bmp itself is
// left unblurred.
func (b *Compositor) Render(c *canvas.Canvas, bmp *image.RGBA) {
	if b.destroyed {
		return
	}
	if c.IsHardwareAccelerated() {
		if err := c.DrawRenderNode(b.node); err != nil {
			Logger().Warn("blur node draw failed", "err", err)
		}
		return
	}

	fb := b.Fallback()
	out := fb.Blur(b.fallbackCopy(bmp), ClampRadius(fb, b.lastRadius))
	fb.Render(c, out)
}

func (b *Compositor) fallbackCopy(bmp *image.RGBA) *image.RGBA {
	if b.fallbackSrc == nil || !canvas.SameSize(b.fallbackSrc, bmp) {
		b.fallbackSrc = clone.AsRGBA(bmp)
		return b.fallbackSrc
	}
	xdraw.Draw(b.fallbackSrc, b.fallbackSrc.Rect, bmp, bmp.Rect.Min, xdraw.Src)
	return b.fallbackSrc
}

// Fallback returns the software fallback backend, creating it on first use.
func (b *Compositor) Fallback() Backend {
	if b.fallback == nil {
		Logger().Warn("canvas is not hardware accelerated, falling back to kernel blur")
		b.fallback = b.newFallback()
	}
	return b.fallback
}

// Node returns the render node holding the recorded bitmap.
func (b *Compositor) Node() *canvas.RenderNode {
	return b.node
}

// Destroy discards the node and destroys the fallback, if any.
func (b *Compositor) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.node.DiscardDisplayList()
	if b.fallback != nil {
		b.fallback.Destroy()
	}
	b.fallbackSrc = nil
}

// CanModifyInPlace returns true: Blur produces no separate bitmap.
func (b *Compositor) CanModifyInPlace() bool { return true }

// SupportedFormat returns RGBA8.
func (b *Compositor) SupportedFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// ScaleFactor returns DefaultScaleFactor.
func (b *Compositor) ScaleFactor() float64 { return DefaultScaleFactor }
