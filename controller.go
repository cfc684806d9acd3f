package blurview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/blurview/backend"
	"github.com/gogpu/blurview/canvas"
	"github.com/gogpu/blurview/scaler"
)

// State is the lifecycle state of a PreDrawController.
type State uint8

const (
	// StateUninitialized: no scratch bitmap, the view is not measured yet
	// or too small to blur.
	StateUninitialized State = iota

	// StateInitialized: the scratch bitmap matches the current view size.
	StateInitialized

	// StateDisabled: blur was turned off with SetBlurEnabled(false).
	StateDisabled

	// StateDestroyed: Destroy was called. Terminal.
	StateDestroyed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateDisabled:
		return "disabled"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// PreDrawController blurs the content of a root behind a view, capturing
// once per pre-draw tick of the root's surface.
//
// The controller is not safe for concurrent use; call it from the host's
// draw thread only.
type PreDrawController struct {
	view    View
	root    Root
	backend backend.Backend
	scaler  scaler.Scaler

	radius     float64
	overlay    uint32
	frameClear canvas.Drawable

	enabled     bool
	autoUpdate  bool
	initialized bool
	destroyed   bool

	bitmap   *image.RGBA
	internal *canvas.Canvas
	size     scaler.Size

	// Measured view size the bitmap was allocated for.
	viewWidth, viewHeight int

	// View size divided by bitmap size, per axis. Computed once per
	// allocation and used by both capture and draw.
	ratioX, ratioY float64

	subscribed []*Observer
}

var _ Controller = (*PreDrawController)(nil)

// NewPreDrawController creates a controller blurring root behind view with
// b. A nil backend selects one for the view's device.
//
// The controller starts uninitialized; call UpdateViewSize once the view is
// measured.
func NewPreDrawController(view View, root Root, b backend.Backend, opts ...Option) *PreDrawController {
	if b == nil {
		b = backend.Select(view.Device())
	}
	c := &PreDrawController{
		view:       view,
		root:       root,
		backend:    b,
		scaler:     scaler.New(b.ScaleFactor()),
		radius:     DefaultBlurRadius,
		enabled:    true,
		autoUpdate: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UpdateViewSize re-reads the view's measured size, reallocates the scratch
// bitmap if its working size changed and captures one frame.
//
// A view too small to blur leaves the controller uninitialized and tells
// the view not to draw. Allocation failures are returned; the controller is
// then uninitialized and the call can be retried.
func (c *PreDrawController) UpdateViewSize() error {
	if c.destroyed {
		return nil
	}
	w, h := c.view.MeasuredSize()
	return c.init(w, h)
}

func (c *PreDrawController) init(width, height int) error {
	c.resubscribe()

	if c.scaler.IsZeroSized(width, height) {
		// Initialized again on the next size change.
		c.initialized = false
		c.view.SetWillNotDraw(true)
		return nil
	}

	size := c.scaler.Scale(width, height)
	if c.bitmap == nil || c.bitmap.Rect.Dx() != size.Width || c.bitmap.Rect.Dy() != size.Height {
		bmp, err := canvas.NewBitmap(size.Width, size.Height, c.backend.SupportedFormat())
		if err != nil {
			c.initialized = false
			c.bitmap, c.internal = nil, nil
			c.view.SetWillNotDraw(true)
			return fmt.Errorf("blurview: allocate scratch bitmap for %dx%d view: %w", width, height, err)
		}
		c.bitmap = bmp
		if c.internal == nil {
			c.internal = canvas.NewBlurCanvas(bmp)
		} else {
			c.internal.SetImage(bmp)
		}
		Logger().Debug("blurview: scratch bitmap allocated",
			"view_width", width, "view_height", height, "size", size)
	}

	c.view.SetWillNotDraw(false)
	c.size = size
	c.viewWidth, c.viewHeight = width, height
	c.ratioX = float64(width) / float64(size.Width)
	c.ratioY = float64(height) / float64(size.Height)
	c.initialized = true

	// The pre-draw tick usually does this, but not when the view and the
	// root live on different surfaces and only the view repaints.
	c.UpdateBlur()
	return nil
}

// OnPreDraw implements PreDrawListener.
func (c *PreDrawController) OnPreDraw() bool {
	c.UpdateBlur()
	return true
}

// UpdateBlur captures the root into the scratch bitmap and blurs it.
// It does nothing while disabled or uninitialized.
func (c *PreDrawController) UpdateBlur() {
	if !c.enabled || !c.initialized || c.destroyed {
		return
	}

	if c.frameClear == nil {
		c.internal.Clear(color.Transparent)
	} else {
		c.frameClear.Draw(c.internal)
	}

	c.internal.Save()
	c.setupInternalMatrix()
	c.root.Draw(c.internal)
	c.internal.Restore()

	c.blurAndSave()
}

// setupInternalMatrix maps root coordinates to the scratch bitmap, starting
// at the view's position.
func (c *PreDrawController) setupInternalMatrix() {
	rootLoc := c.root.LocationOnScreen()
	viewLoc := c.view.LocationOnScreen()

	left := float64(viewLoc.X - rootLoc.X)
	top := float64(viewLoc.Y - rootLoc.Y)

	c.internal.Translate(-left/c.ratioX, -top/c.ratioY)
	c.internal.Scale(1/c.ratioX, 1/c.ratioY)
}

func (c *PreDrawController) blurAndSave() {
	bmp := c.backend.Blur(c.bitmap, backend.ClampRadius(c.backend, c.radius))
	if bmp == nil {
		return
	}
	c.bitmap = bmp
	if !c.backend.CanModifyInPlace() {
		c.internal.SetImage(bmp)
	}
}

// Draw draws the blurred content scaled to the view size, then the overlay
// color. It returns false when target is a blur capture canvas: blur views
// never draw into another blur's capture, and the host must not draw its
// children there either.
func (c *PreDrawController) Draw(target *canvas.Canvas) bool {
	if !c.enabled || !c.initialized || c.destroyed {
		return true
	}
	if target.IsBlurSurface() {
		if target == c.internal {
			Logger().Debug("blurview: skipping own capture")
		} else {
			Logger().Warn("blurview: refusing to draw into another blur's capture")
		}
		return false
	}

	target.Save()
	target.Scale(c.ratioX, c.ratioY)
	c.backend.Render(target, c.bitmap)
	target.Restore()

	// The target is the host's canvas translated to the view; only the
	// view's rect is tinted.
	if canvas.Alpha(c.overlay) != 0 {
		target.FillRect(0, 0, float64(c.viewWidth), float64(c.viewHeight), canvas.ColorFromARGB(c.overlay))
	}
	return true
}

// Destroy stops auto update and releases the backend and the scratch bitmap.
func (c *PreDrawController) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.resubscribe()
	c.backend.Destroy()
	c.initialized = false
	c.bitmap, c.internal = nil, nil
}

// SetBlurRadius implements Facade.
func (c *PreDrawController) SetBlurRadius(radius float64) Facade {
	c.radius = radius
	return c
}

// SetFrameClearDrawable implements Facade.
func (c *PreDrawController) SetFrameClearDrawable(d canvas.Drawable) Facade {
	c.frameClear = d
	return c
}

// SetBlurEnabled implements Facade. Re-enabling captures a fresh frame.
func (c *PreDrawController) SetBlurEnabled(enabled bool) Facade {
	if c.enabled == enabled {
		return c
	}
	c.enabled = enabled
	c.resubscribe()
	if enabled {
		c.UpdateBlur()
	}
	c.view.Invalidate()
	return c
}

// SetBlurAutoUpdate implements Facade.
func (c *PreDrawController) SetBlurAutoUpdate(enabled bool) Facade {
	c.autoUpdate = enabled
	c.resubscribe()
	return c
}

// SetOverlayColor implements Facade.
func (c *PreDrawController) SetOverlayColor(argb uint32) Facade {
	if c.overlay != argb {
		c.overlay = argb
		c.view.Invalidate()
	}
	return c
}

// resubscribe drops every pre-draw registration and registers again if
// the controller should update automatically: on the root's surface, and on
// the view's surface when it is a different one (a dialog over the root).
func (c *PreDrawController) resubscribe() {
	for _, o := range c.subscribed {
		o.RemovePreDrawListener(c)
	}
	c.subscribed = c.subscribed[:0]

	if c.destroyed || !c.enabled || !c.autoUpdate {
		return
	}
	c.subscribe(c.root.Observer())
	if c.root.WindowID() != c.view.WindowID() {
		c.subscribe(c.view.Observer())
	}
}

func (c *PreDrawController) subscribe(o *Observer) {
	if o == nil {
		return
	}
	o.AddPreDrawListener(c)
	c.subscribed = append(c.subscribed, o)
}

// State returns the lifecycle state.
func (c *PreDrawController) State() State {
	switch {
	case c.destroyed:
		return StateDestroyed
	case !c.enabled:
		return StateDisabled
	case !c.initialized:
		return StateUninitialized
	default:
		return StateInitialized
	}
}

// WorkingSize returns the scratch bitmap size. ok is false while the
// controller is not initialized.
func (c *PreDrawController) WorkingSize() (size scaler.Size, ok bool) {
	if !c.initialized {
		return scaler.Size{}, false
	}
	return c.size, true
}

// Bitmap returns the scratch bitmap holding the last blurred frame, or nil.
func (c *PreDrawController) Bitmap() *image.RGBA {
	return c.bitmap
}

// Backend returns the blur backend.
func (c *PreDrawController) Backend() backend.Backend {
	return c.backend
}

// BlurRadius returns the configured radius, before backend clamping.
func (c *PreDrawController) BlurRadius() float64 {
	return c.radius
}

// OverlayColor returns the 0xAARRGGBB overlay color.
func (c *PreDrawController) OverlayColor() uint32 {
	return c.overlay
}

// AutoUpdate reports whether auto update is requested.
func (c *PreDrawController) AutoUpdate() bool {
	return c.autoUpdate
}
