// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package canvas provides the drawing targets used by the blur pipeline.
//
// A [Canvas] draws into an *image.RGBA through a save/restore stack of affine
// transforms. A canvas created with [WithDevice] and a provider that exposes
// a GPU device is hardware accelerated and can draw retained [RenderNode]s;
// their [RenderEffect] is evaluated when the node is composited, not when it
// is recorded.
//
// Canvases created with [NewBlurCanvas] wrap a blur's own scratch bitmap.
// They are what a blur controller captures the background into, and
// [Canvas.IsBlurSurface] lets every blur view refuse to draw into one.
//
// # Usage
//
//	bmp, err := canvas.NewBitmap(64, 48, gputypes.TextureFormatRGBA8Unorm)
//	if err != nil {
//	    return err
//	}
//	c := canvas.New(bmp)
//	c.Save()
//	c.Scale(0.1, 0.1)
//	c.FillRect(0, 0, 640, 480, color.RGBA{0, 0, 255, 255})
//	c.Restore()
//
// Canvases are NOT safe for concurrent use.
package canvas
