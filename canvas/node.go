// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"errors"
	"image"

	"github.com/gogpu/blurview/internal/filter"
)

// ErrNotAccelerated is returned when a render node is drawn onto a software
// canvas.
var ErrNotAccelerated = errors.New("canvas: render nodes require a hardware-accelerated canvas")

// TileMode selects how a blur effect samples beyond the node bounds.
type TileMode = filter.TileMode

// Tile modes for NewBlurEffect.
const (
	TileClamp  = filter.TileClamp
	TileMirror = filter.TileMirror
)

// RenderEffect is an image filter attached to a RenderNode.
// Attaching it only records parameters; the filter runs when the node is
// composited.
type RenderEffect struct {
	blur *filter.Blur
}

// NewBlurEffect creates a Gaussian blur effect with per-axis radii.
func NewBlurEffect(radiusX, radiusY float64, tile TileMode) *RenderEffect {
	return &RenderEffect{blur: filter.NewBlur(radiusX, radiusY, tile)}
}

// RadiusX returns the horizontal radius.
func (e *RenderEffect) RadiusX() float64 { return e.blur.RadiusX }

// RadiusY returns the vertical radius.
func (e *RenderEffect) RadiusY() float64 { return e.blur.RadiusY }

// TileMode returns the edge mode.
func (e *RenderEffect) TileMode() TileMode { return e.blur.Tile }

// RenderNode is a retained drawing: content recorded once and composited,
// with its effect, every time the node is drawn.
type RenderNode struct {
	name    string
	bounds  image.Rectangle
	content *image.RGBA
	output  *image.RGBA
	effect  *RenderEffect

	recording  bool
	hasContent bool
	dirty      bool
}

// NewRenderNode creates an empty node. The name is for debugging only.
func NewRenderNode(name string) *RenderNode {
	return &RenderNode{name: name}
}

// Name returns the debug name.
func (n *RenderNode) Name() string {
	return n.name
}

// Bounds returns the node position set by SetPosition.
func (n *RenderNode) Bounds() image.Rectangle {
	return n.bounds
}

// SetPosition sets the node bounds. Recorded content is dropped when the
// size changes.
func (n *RenderNode) SetPosition(left, top, right, bottom int) {
	r := image.Rect(left, top, right, bottom)
	if r.Dx() != n.bounds.Dx() || r.Dy() != n.bounds.Dy() {
		n.content = nil
		n.output = nil
		n.hasContent = false
	}
	n.bounds = r
}

// BeginRecording returns a canvas, sized to the node bounds, that replaces
// the node content. Call EndRecording when done.
func (n *RenderNode) BeginRecording() *Canvas {
	w, h := n.bounds.Dx(), n.bounds.Dy()
	if n.content == nil || n.content.Rect.Dx() != w || n.content.Rect.Dy() != h {
		n.content = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		clear(n.content.Pix)
	}
	n.recording = true
	return New(n.content)
}

// EndRecording finishes the recording started by BeginRecording.
func (n *RenderNode) EndRecording() {
	if !n.recording {
		return
	}
	n.recording = false
	n.hasContent = true
	n.dirty = true
}

// SetRenderEffect attaches e, replacing any previous effect. Nil removes it.
func (n *RenderNode) SetRenderEffect(e *RenderEffect) {
	n.effect = e
	n.dirty = true
}

// RenderEffect returns the attached effect, or nil.
func (n *RenderNode) RenderEffect() *RenderEffect {
	return n.effect
}

// HasDisplayList reports whether the node has recorded content.
func (n *RenderNode) HasDisplayList() bool {
	return n.hasContent
}

// DiscardDisplayList releases recorded content and effect output.
func (n *RenderNode) DiscardDisplayList() {
	n.content = nil
	n.output = nil
	n.hasContent = false
	n.recording = false
}

// composite returns the node content with the effect applied.
func (n *RenderNode) composite() *image.RGBA {
	if n.effect == nil {
		return n.content
	}
	if !n.dirty && n.output != nil {
		return n.output
	}
	if n.output == nil || !SameSize(n.output, n.content) {
		n.output = image.NewRGBA(n.content.Rect)
	}
	n.effect.blur.Apply(n.content, n.output)
	n.dirty = false
	return n.output
}

// DrawRenderNode composites n at its position under the current transform.
// Nodes without content draw nothing.
func (c *Canvas) DrawRenderNode(n *RenderNode) error {
	if !c.IsHardwareAccelerated() {
		return ErrNotAccelerated
	}
	if !n.HasDisplayList() {
		return nil
	}
	c.DrawImage(n.composite(), float64(n.bounds.Min.X), float64(n.bounds.Min.Y), FilterBilinear)
	return nil
}
