// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scaler

import (
	"math"
	"testing"
)

func TestScale(t *testing.T) {
	tests := []struct {
		name       string
		factor     float64
		w, h       int
		wantWidth  int
		wantHeight int
		wantFactor float64
	}{
		{"100x50 factor 10", 10, 100, 50, 64, 32, 1.5625},
		{"640x640 factor 10", 10, 640, 640, 64, 64, 10},
		{"already aligned", 1, 128, 30, 128, 30, 1},
		{"width rounds up", 10, 641, 100, 128, 20, 641.0 / 128},
		{"factor 1 small", 1, 10, 10, 64, 64, 10.0 / 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.factor).Scale(tt.w, tt.h)
			if got.Width != tt.wantWidth {
				t.Errorf("Width = %d, want %d", got.Width, tt.wantWidth)
			}
			if got.Height != tt.wantHeight {
				t.Errorf("Height = %d, want %d", got.Height, tt.wantHeight)
			}
			if math.Abs(got.ScaleFactor-tt.wantFactor) > 1e-9 {
				t.Errorf("ScaleFactor = %v, want %v", got.ScaleFactor, tt.wantFactor)
			}
		})
	}
}

func TestScaleInvariants(t *testing.T) {
	for _, factor := range []float64{1, 2.5, 8, 10, 16, 33} {
		s := New(factor)
		for w := 1; w <= 2000; w += 37 {
			for h := 1; h <= 2000; h += 53 {
				if s.IsZeroSized(w, h) {
					continue
				}
				got := s.Scale(w, h)
				if got.Width%RoundingValue != 0 {
					t.Fatalf("factor %v: Scale(%d, %d).Width = %d, not aligned to %d",
						factor, w, h, got.Width, RoundingValue)
				}
				if float64(got.Height)*got.ScaleFactor < float64(h)-1e-6 {
					t.Fatalf("factor %v: Scale(%d, %d) = %v under-covers height",
						factor, w, h, got)
				}
			}
		}
	}
}

func TestScaleDeterministic(t *testing.T) {
	s := New(10)
	a := s.Scale(333, 777)
	b := s.Scale(333, 777)
	if a != b {
		t.Errorf("Scale not deterministic: %v != %v", a, b)
	}
}

func TestIsZeroSized(t *testing.T) {
	tests := []struct {
		factor float64
		w, h   int
		want   bool
	}{
		{10, 0, 100, true},
		{10, 100, 0, true},
		{1, 0, 0, true},
		{0.5, 0, 100, true},
		{10, 640, 640, false},
		{10, 1, 1, false},
		{10, -5, 10, true},
	}
	for _, tt := range tests {
		if got := New(tt.factor).IsZeroSized(tt.w, tt.h); got != tt.want {
			t.Errorf("New(%v).IsZeroSized(%d, %d) = %v, want %v", tt.factor, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestNewInvalidFactor(t *testing.T) {
	for _, f := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		if got := New(f).Factor(); got != 1 {
			t.Errorf("New(%v).Factor() = %v, want 1", f, got)
		}
	}
}

func TestSizeString(t *testing.T) {
	got := Size{Width: 64, Height: 32, ScaleFactor: 1.5625}.String()
	want := "Size{width=64, height=32, scaleFactor=1.5625}"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
