package canvas

import "image/color"

// Drawable paints itself onto a canvas. Blur controllers use one as the
// frame-clear step before capturing the background, for example to paint a
// window background that the captured root does not draw.
type Drawable interface {
	Draw(c *Canvas)
}

// DrawableFunc adapts a function to Drawable.
type DrawableFunc func(c *Canvas)

// Draw calls f(c).
func (f DrawableFunc) Draw(c *Canvas) { f(c) }

// ColorDrawable fills the whole canvas with a solid color, replacing what
// was there.
type ColorDrawable struct {
	Color color.Color
}

// Draw implements Drawable.
func (d ColorDrawable) Draw(c *Canvas) {
	c.Clear(d.Color)
}
