// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend provides the interchangeable blur implementations used by
// blurview controllers.
//
//   - [Compositor] records the scratch bitmap into a [canvas.RenderNode] and
//     attaches a GPU blur effect. The blur itself runs when the host
//     composites the node. On a software canvas it falls back to a [Kernel],
//     built lazily once.
//   - [Kernel] blurs a copy of the bitmap eagerly with a separable Gaussian
//     kernel and writes the result back. It works everywhere but costs CPU
//     time on every frame. Radii are limited to [MinKernelRadius]..[MaxKernelRadius].
//
// Use [Select] to pick the right backend for a host.
package backend
