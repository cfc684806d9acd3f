// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scaler computes the downsampled working resolution used to capture
// and blur the content behind a view.
//
// The working width is always a multiple of [RoundingValue] so that blur
// kernels with row-stride requirements can use the buffer without an extra
// copy. The height is only rounded up, never aligned.
//
// Example:
//
//	s := scaler.New(10)
//	if s.IsZeroSized(w, h) {
//	    return // nothing to blur yet
//	}
//	size := s.Scale(w, h) // 100x50 -> 64x32, ScaleFactor 1.5625
package scaler

import (
	"fmt"
	"math"
)

// RoundingValue is the stride alignment applied to the working width.
// Usually 16 is enough, some drivers require 64.
const RoundingValue = 64

// Size is a working resolution derived from a measured view size.
type Size struct {
	Width  int
	Height int

	// ScaleFactor is the effective ratio between the measured width and
	// Width. It differs from the requested factor because of alignment.
	ScaleFactor float64
}

// String implements fmt.Stringer.
func (s Size) String() string {
	return fmt.Sprintf("Size{width=%d, height=%d, scaleFactor=%g}", s.Width, s.Height, s.ScaleFactor)
}

// Scaler downsamples measured sizes by a fixed factor.
// The zero value is not useful; use New.
type Scaler struct {
	factor float64
}

// New returns a Scaler for the given downscale factor. Factors <= 0 are
// treated as 1 (no downscaling).
func New(factor float64) Scaler {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		factor = 1
	}
	return Scaler{factor: factor}
}

// Factor returns the requested downscale factor.
func (s Scaler) Factor() float64 {
	return s.factor
}

// Scale computes the working resolution for a measured width and height.
func (s Scaler) Scale(width, height int) Size {
	scaledWidth := roundSize(s.downscale(float64(width)))
	// Only the width is aligned.
	factor := float64(width) / float64(scaledWidth)
	// Ceiling: rounding down would leave empty rows at the bottom of the view.
	scaledHeight := int(math.Ceil(float64(height) / factor))

	return Size{
		Width:       scaledWidth,
		Height:      scaledHeight,
		ScaleFactor: factor,
	}
}

// IsZeroSized reports whether either dimension downscales to zero.
// No blur work may happen for such sizes.
func (s Scaler) IsZeroSized(width, height int) bool {
	return s.downscale(float64(width)) <= 0 || s.downscale(float64(height)) <= 0
}

func (s Scaler) downscale(v float64) int {
	return int(math.Ceil(v / s.factor))
}

// roundSize rounds v up to the next multiple of RoundingValue.
func roundSize(v int) int {
	if v%RoundingValue == 0 {
		return v
	}
	return v - v%RoundingValue + RoundingValue
}
