package blurview

import (
	"image"

	"github.com/gogpu/blurview/canvas"
)

// View is the host widget that shows blurred content.
type View interface {
	// MeasuredSize returns the laid-out size in pixels.
	MeasuredSize() (width, height int)

	// LocationOnScreen returns the top-left corner in screen coordinates.
	LocationOnScreen() image.Point

	// WindowID identifies the top-level surface the view is attached to.
	WindowID() int

	// Observer returns the pre-draw observer of the view's surface.
	Observer() *Observer

	// SetWillNotDraw tells the host to skip the view's own painting.
	SetWillNotDraw(willNotDraw bool)

	// Invalidate schedules a repaint of the view.
	Invalidate()

	// Device returns the GPU device of the view's surface, or nil when the
	// surface is drawn in software.
	Device() canvas.DeviceHandle
}

// Root is the background subtree captured behind a blurred view.
type Root interface {
	LocationOnScreen() image.Point
	WindowID() int
	Observer() *Observer

	// Draw paints the subtree onto c. The blurred view itself is part of
	// the subtree; it must draw through its controller so that the capture
	// canvas is recognized.
	Draw(c *canvas.Canvas)
}

// PreDrawListener is notified right before a surface repaints.
type PreDrawListener interface {
	// OnPreDraw returns false to ask the host to cancel the current frame.
	OnPreDraw() bool
}

// Observer holds the pre-draw listeners of one top-level surface. The host
// calls DispatchOnPreDraw synchronously before each repaint.
//
// The zero value is ready to use.
type Observer struct {
	listeners []PreDrawListener
}

// AddPreDrawListener registers l. Adding a listener twice notifies it twice.
func (o *Observer) AddPreDrawListener(l PreDrawListener) {
	o.listeners = append(o.listeners, l)
}

// RemovePreDrawListener unregisters one registration of l, if present.
func (o *Observer) RemovePreDrawListener(l PreDrawListener) {
	for i, cur := range o.listeners {
		if cur == l {
			o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners.
func (o *Observer) Len() int {
	return len(o.listeners)
}

// DispatchOnPreDraw notifies every listener and reports whether the frame
// should proceed. Listeners may unregister themselves while being notified.
func (o *Observer) DispatchOnPreDraw() bool {
	proceed := true
	snapshot := append([]PreDrawListener(nil), o.listeners...)
	for _, l := range snapshot {
		if !l.OnPreDraw() {
			proceed = false
		}
	}
	return proceed
}
