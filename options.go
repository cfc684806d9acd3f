package blurview

import "github.com/gogpu/blurview/canvas"

// Option configures a PreDrawController during creation.
type Option func(*PreDrawController)

// WithBlurRadius sets the initial blur radius.
func WithBlurRadius(radius float64) Option {
	return func(c *PreDrawController) {
		c.radius = radius
	}
}

// WithOverlayColor sets the initial 0xAARRGGBB overlay color.
func WithOverlayColor(argb uint32) Option {
	return func(c *PreDrawController) {
		c.overlay = argb
	}
}

// WithFrameClearDrawable sets the initial frame-clear drawable.
func WithFrameClearDrawable(d canvas.Drawable) Option {
	return func(c *PreDrawController) {
		c.frameClear = d
	}
}

// WithAutoUpdate sets whether the controller starts with auto update on.
func WithAutoUpdate(enabled bool) Option {
	return func(c *PreDrawController) {
		c.autoUpdate = enabled
	}
}
