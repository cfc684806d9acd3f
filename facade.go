package blurview

import "github.com/gogpu/blurview/canvas"

// DefaultBlurRadius is the radius a new controller starts with.
const DefaultBlurRadius = 2.0

// Facade is the configuration surface of a blurred view.
// Every setter returns the facade so calls can be chained.
type Facade interface {
	// SetBlurEnabled turns blurring on or off. Enabled by default.
	SetBlurEnabled(enabled bool) Facade

	// SetBlurAutoUpdate controls whether the background is captured again
	// before every repaint. Enabled by default.
	SetBlurAutoUpdate(enabled bool) Facade

	// SetFrameClearDrawable sets what is painted into the scratch bitmap
	// before the background is captured, for example a window background
	// the root does not draw. Nil clears to transparent.
	SetFrameClearDrawable(d canvas.Drawable) Facade

	// SetBlurRadius sets the blur radius in backend units.
	SetBlurRadius(radius float64) Facade

	// SetOverlayColor sets the 0xAARRGGBB color painted over the blurred
	// content.
	SetOverlayColor(argb uint32) Facade
}

// Controller drives the blur of one view.
type Controller interface {
	Facade

	// Draw draws blurred content onto c and reports whether the view should
	// go on to draw itself and its children.
	Draw(c *canvas.Canvas) bool

	// UpdateViewSize must be called when the view's size changes.
	UpdateViewSize() error

	// Destroy releases all resources. It is safe to call more than once.
	Destroy()
}
