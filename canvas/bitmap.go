// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
)

// MaxBitmapDimension is the largest width or height NewBitmap allocates.
// It matches the common GPU texture size limit.
const MaxBitmapDimension = 16384

var (
	// ErrInvalidBitmapSize is returned for non-positive bitmap dimensions.
	ErrInvalidBitmapSize = errors.New("canvas: invalid bitmap size")

	// ErrBitmapTooLarge is returned when a dimension exceeds MaxBitmapDimension.
	ErrBitmapTooLarge = errors.New("canvas: bitmap too large")

	// ErrUnsupportedFormat is returned for pixel formats NewBitmap cannot back.
	ErrUnsupportedFormat = errors.New("canvas: unsupported pixel format")
)

// NewBitmap allocates a zeroed (fully transparent) bitmap.
// Only gputypes.TextureFormatRGBA8Unorm is supported; its memory layout is
// the one of *image.RGBA.
func NewBitmap(width, height int, format gputypes.TextureFormat) (*image.RGBA, error) {
	if format != gputypes.TextureFormatRGBA8Unorm {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBitmapSize, width, height)
	}
	if width > MaxBitmapDimension || height > MaxBitmapDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrBitmapTooLarge, width, height, MaxBitmapDimension)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

// SameSize reports whether a and b have identical dimensions.
// A nil bitmap never matches.
func SameSize(a, b *image.RGBA) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Rect.Dx() == b.Rect.Dx() && a.Rect.Dy() == b.Rect.Dy()
}
