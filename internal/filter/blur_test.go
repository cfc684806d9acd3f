package filter

import (
	"image"
	"image/color"
	"testing"
)

func filled(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestTileModeResolve(t *testing.T) {
	tests := []struct {
		mode TileMode
		i, n int
		want int
	}{
		{TileClamp, -3, 5, 0},
		{TileClamp, 7, 5, 4},
		{TileClamp, 2, 5, 2},
		{TileMirror, -1, 5, 1},
		{TileMirror, -2, 5, 2},
		{TileMirror, 5, 5, 3},
		{TileMirror, 6, 5, 2},
		{TileMirror, 9, 5, 1},
		{TileMirror, -1, 1, 0},
		{TileMirror, 3, 1, 0},
	}
	for _, tt := range tests {
		if got := tt.mode.resolve(tt.i, tt.n); got != tt.want {
			t.Errorf("%v.resolve(%d, %d) = %d, want %d", tt.mode, tt.i, tt.n, got, tt.want)
		}
	}
}

func TestTileModeString(t *testing.T) {
	if TileClamp.String() != "clamp" || TileMirror.String() != "mirror" || TileMode(9).String() != "unknown" {
		t.Error("unexpected TileMode names")
	}
}

func TestBlurZeroRadiusCopies(t *testing.T) {
	src := filled(8, 8, color.RGBA{255, 0, 0, 255})
	src.SetRGBA(3, 3, color.RGBA{0, 0, 255, 255})
	dst := image.NewRGBA(src.Rect)

	NewBlur(0, 0, TileMirror).Apply(src, dst)

	if dst.RGBAAt(3, 3) != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("pixel (3,3) = %v, want blue", dst.RGBAAt(3, 3))
	}
	if dst.RGBAAt(0, 0) != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel (0,0) = %v, want red", dst.RGBAAt(0, 0))
	}
}

func TestBlurUniformStaysUniform(t *testing.T) {
	for _, mode := range []TileMode{TileClamp, TileMirror} {
		c := color.RGBA{40, 80, 120, 255}
		src := filled(16, 12, c)
		dst := image.NewRGBA(src.Rect)

		NewBlur(3, 5, mode).Apply(src, dst)

		for _, p := range []image.Point{{0, 0}, {15, 11}, {8, 6}} {
			got := dst.RGBAAt(p.X, p.Y)
			if !near(got.R, c.R, 1) || !near(got.G, c.G, 1) || !near(got.B, c.B, 1) || !near(got.A, c.A, 1) {
				t.Errorf("%v: pixel %v = %v, want ~%v", mode, p, got, c)
			}
		}
	}
}

func TestBlurSpreadsPoint(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 21, 21))
	src.SetRGBA(10, 10, color.RGBA{255, 255, 255, 255})
	dst := image.NewRGBA(src.Rect)

	NewBlur(2, 2, TileClamp).Apply(src, dst)

	center := dst.RGBAAt(10, 10)
	side := dst.RGBAAt(12, 10)
	if center.A == 255 || center.A == 0 {
		t.Errorf("center alpha = %d, want partially spread", center.A)
	}
	if side.A == 0 || side.A >= center.A {
		t.Errorf("side alpha = %d, want 0 < side < center (%d)", side.A, center.A)
	}
	if dst.RGBAAt(0, 0).A != 0 {
		t.Errorf("corner alpha = %d, want 0", dst.RGBAAt(0, 0).A)
	}
}

func TestBlurMismatchedSizeIsNoop(t *testing.T) {
	src := filled(4, 4, color.RGBA{255, 255, 255, 255})
	dst := image.NewRGBA(image.Rect(0, 0, 3, 3))
	NewBlur(2, 2, TileMirror).Apply(src, dst)
	if dst.RGBAAt(0, 0).A != 0 {
		t.Error("Apply wrote into a destination of a different size")
	}
	NewBlur(2, 2, TileMirror).Apply(nil, dst)
}

func TestGaussianKernelNormalized(t *testing.T) {
	for _, r := range []float64{0.5, 1, 2.5, 10} {
		k := GaussianKernel(r)
		if len(k)%2 != 1 {
			t.Errorf("radius %v: kernel length %d is even", r, len(k))
		}
		var sum float32
		for _, v := range k {
			sum += v
		}
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("radius %v: kernel sum = %v, want 1", r, sum)
		}
	}
	if k := GaussianKernel(0); len(k) != 1 || k[0] != 1 {
		t.Errorf("GaussianKernel(0) = %v, want [1]", k)
	}
}

func TestCachedGaussianKernel(t *testing.T) {
	a := CachedGaussianKernel(4)
	b := CachedGaussianKernel(4)
	if &a[0] != &b[0] {
		t.Error("CachedGaussianKernel returned a new kernel for the same radius")
	}
}

func TestKernelCacheEviction(t *testing.T) {
	c := newKernelCache(2)
	c.get(1)
	c.get(2)
	c.get(3)
	if len(c.cache) > 2 {
		t.Errorf("cache size = %d, want <= 2", len(c.cache))
	}
}
