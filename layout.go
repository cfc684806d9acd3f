package blurview

import (
	"github.com/gogpu/blurview/backend"
	"github.com/gogpu/blurview/canvas"
)

// Layout is the glue between a host view and its blur controller. The host
// forwards its draw, size and window callbacks to it.
//
// Until AttachTo is called the layout uses a NoOpController.
type Layout struct {
	view       View
	controller Controller

	overlayColor uint32
	autoUpdate   bool
}

// NewLayout creates the blur glue for view.
func NewLayout(view View) *Layout {
	return &Layout{
		view:       view,
		controller: NoOpController{},
		autoUpdate: true,
	}
}

// AttachTo starts blurring root behind the view with b, or with the backend
// Select picks for the view's device when b is nil. Any previous controller
// is destroyed first.
//
// The returned Facade is usable even when err is non-nil: the controller
// stays uninitialized until the next successful OnSizeChanged.
func (l *Layout) AttachTo(root Root, b backend.Backend) (Facade, error) {
	l.controller.Destroy()

	c := NewPreDrawController(l.view, root, b,
		WithOverlayColor(l.overlayColor),
		WithAutoUpdate(l.autoUpdate),
	)
	l.controller = c
	return c, c.UpdateViewSize()
}

// Controller returns the current controller.
func (l *Layout) Controller() Controller {
	return l.controller
}

// Draw draws the blurred background onto c, then calls drawSelf unless the
// controller asks the view to skip its own content.
func (l *Layout) Draw(c *canvas.Canvas, drawSelf func(*canvas.Canvas)) {
	if l.controller.Draw(c) && drawSelf != nil {
		drawSelf(c)
	}
}

// OnSizeChanged must be called after the view is measured with a new size.
func (l *Layout) OnSizeChanged() error {
	return l.controller.UpdateViewSize()
}

// OnAttachedToWindow restores auto update when the view joins a window.
// On a software-drawn window the current setting is kept.
func (l *Layout) OnAttachedToWindow() {
	if !canvas.HasDevice(l.view.Device()) {
		Logger().Warn("blurview: blur view attached to a window that is not hardware accelerated")
		return
	}
	l.controller.SetBlurAutoUpdate(l.autoUpdate)
}

// OnDetachedFromWindow stops auto update while the view is off screen.
func (l *Layout) OnDetachedFromWindow() {
	l.controller.SetBlurAutoUpdate(false)
}

// Destroy releases the controller and reverts to a NoOpController.
func (l *Layout) Destroy() {
	l.controller.Destroy()
	l.controller = NoOpController{}
}

// SetBlurRadius forwards to the controller.
func (l *Layout) SetBlurRadius(radius float64) Facade {
	return l.controller.SetBlurRadius(radius)
}

// SetOverlayColor forwards to the controller and is remembered for the next
// AttachTo.
func (l *Layout) SetOverlayColor(argb uint32) Facade {
	l.overlayColor = argb
	return l.controller.SetOverlayColor(argb)
}

// SetBlurAutoUpdate forwards to the controller and is remembered for the
// next AttachTo and window attach.
func (l *Layout) SetBlurAutoUpdate(enabled bool) Facade {
	l.autoUpdate = enabled
	return l.controller.SetBlurAutoUpdate(enabled)
}

// SetBlurEnabled forwards to the controller.
func (l *Layout) SetBlurEnabled(enabled bool) Facade {
	return l.controller.SetBlurEnabled(enabled)
}

// SetFrameClearDrawable forwards to the controller.
func (l *Layout) SetFrameClearDrawable(d canvas.Drawable) Facade {
	return l.controller.SetFrameClearDrawable(d)
}
