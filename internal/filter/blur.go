package filter

import (
	"image"
	"sync"
)

// TileMode selects how samples outside the source are resolved.
type TileMode uint8

const (
	// TileClamp repeats the edge pixel.
	TileClamp TileMode = iota

	// TileMirror reflects the image at its edges, so a blurred border keeps
	// the colors of the content next to it instead of smearing one pixel.
	TileMirror
)

// String returns the tile mode name.
func (m TileMode) String() string {
	switch m {
	case TileClamp:
		return "clamp"
	case TileMirror:
		return "mirror"
	default:
		return "unknown"
	}
}

// resolve maps an out-of-range index into [0, n).
func (m TileMode) resolve(i, n int) int {
	if i >= 0 && i < n {
		return i
	}
	if n == 1 {
		return 0
	}
	if m == TileClamp {
		if i < 0 {
			return 0
		}
		return n - 1
	}
	// Mirror without repeating the edge pixel: -1 -> 1, n -> n-2.
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}

// Blur is a separable Gaussian blur with independent X and Y radii.
// The passes process rows then columns, O(w*h*(rx+ry)).
type Blur struct {
	RadiusX float64
	RadiusY float64
	Tile    TileMode
}

// NewBlur creates a blur with the given radii and tile mode.
func NewBlur(radiusX, radiusY float64, tile TileMode) *Blur {
	return &Blur{RadiusX: radiusX, RadiusY: radiusY, Tile: tile}
}

// Apply blurs src into dst. Both images must have the same size; dst may not
// alias src. Pixels are processed in the premultiplied form *image.RGBA uses.
func (f *Blur) Apply(src, dst *image.RGBA) {
	if src == nil || dst == nil {
		return
	}
	width := src.Rect.Dx()
	height := src.Rect.Dy()
	if width == 0 || height == 0 || dst.Rect.Dx() != width || dst.Rect.Dy() != height {
		return
	}

	if f.RadiusX <= 0 && f.RadiusY <= 0 {
		copyRGBA(src, dst)
		return
	}

	temp := getTempBuffer(width, height)
	defer putTempBuffer(temp)

	blurHorizontal(src, temp, width, height, CachedGaussianKernel(f.RadiusX), f.Tile)
	blurVertical(temp, dst, width, height, CachedGaussianKernel(f.RadiusY), f.Tile)
}

// blurHorizontal convolves each row of src into the float temp buffer.
func blurHorizontal(src *image.RGBA, temp []float32, width, height int, kernel []float32, tile TileMode) {
	half := len(kernel) / 2

	for y := 0; y < height; y++ {
		row := src.Pix[src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y):]

		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k, weight := range kernel {
				kx := tile.resolve(x+k-half, width)
				i := kx * 4
				r += float32(row[i+0]) * weight
				g += float32(row[i+1]) * weight
				b += float32(row[i+2]) * weight
				a += float32(row[i+3]) * weight
			}

			ti := (y*width + x) * 4
			temp[ti+0] = r
			temp[ti+1] = g
			temp[ti+2] = b
			temp[ti+3] = a
		}
	}
}

// blurVertical convolves each column of temp into dst.
func blurVertical(temp []float32, dst *image.RGBA, width, height int, kernel []float32, tile TileMode) {
	half := len(kernel) / 2

	for y := 0; y < height; y++ {
		row := dst.Pix[dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y):]

		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k, weight := range kernel {
				ky := tile.resolve(y+k-half, height)
				ti := (ky*width + x) * 4
				r += temp[ti+0] * weight
				g += temp[ti+1] * weight
				b += temp[ti+2] * weight
				a += temp[ti+3] * weight
			}

			i := x * 4
			row[i+0] = clampUint8(r)
			row[i+1] = clampUint8(g)
			row[i+2] = clampUint8(b)
			row[i+3] = clampUint8(a)
		}
	}
}

func copyRGBA(src, dst *image.RGBA) {
	rowLen := src.Rect.Dx() * 4
	for y := 0; y < src.Rect.Dy(); y++ {
		si := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		di := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)
		copy(dst.Pix[di:di+rowLen], src.Pix[si:si+rowLen])
	}
}

// floatBuffer wraps a slice for sync.Pool.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		// 256x256 RGBA covers the default working size of most views.
		return &floatBuffer{data: make([]float32, 256*256*4)}
	},
}

// getTempBuffer returns a buffer with at least width*height*4 elements.
// Every element is overwritten by blurHorizontal, so it is not cleared.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}

	return wrapper.data[:size]
}

func putTempBuffer(buf []float32) {
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps a float32 to [0, 255] and rounds to nearest.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
