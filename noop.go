package blurview

import "github.com/gogpu/blurview/canvas"

// NoOpController is the controller of a view that has no background to blur.
type NoOpController struct{}

var _ Controller = NoOpController{}

// Draw always lets the view draw itself.
func (NoOpController) Draw(*canvas.Canvas) bool { return true }

func (NoOpController) UpdateViewSize() error { return nil }
func (NoOpController) Destroy()              {}

func (n NoOpController) SetBlurEnabled(bool) Facade                   { return n }
func (n NoOpController) SetBlurAutoUpdate(bool) Facade                { return n }
func (n NoOpController) SetFrameClearDrawable(canvas.Drawable) Facade { return n }
func (n NoOpController) SetBlurRadius(float64) Facade                 { return n }
func (n NoOpController) SetOverlayColor(uint32) Facade                { return n }
