package main

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/blurview"
	"github.com/gogpu/blurview/canvas"
)

// window is a single top-level surface: a gradient background, a few
// shapes and the blurred card on top.
type window struct {
	width, height int
	observer      blurview.Observer
	cards         []*card
}

func newWindow(width, height int) *window {
	return &window{width: width, height: height}
}

func (w *window) LocationOnScreen() image.Point { return image.Point{} }
func (w *window) WindowID() int                 { return 1 }
func (w *window) Observer() *blurview.Observer  { return &w.observer }

// Draw paints the whole window, cards included.
func (w *window) Draw(c *canvas.Canvas) {
	drawGradientBackground(c, w.width, w.height)
	drawShapes(c, w.width, w.height)

	for _, cd := range w.cards {
		c.Save()
		c.Translate(float64(cd.bounds.Min.X), float64(cd.bounds.Min.Y))
		cd.layout.Draw(c, cd.drawSelf)
		c.Restore()
	}
}

func (w *window) addCard(bounds image.Rectangle) *card {
	cd := &card{window: w, bounds: bounds}
	cd.layout = blurview.NewLayout(cd)
	w.cards = append(w.cards, cd)
	return cd
}

// render runs one frame: pre-draw listeners, then the window.
func (w *window) render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w.width, w.height))
	w.observer.DispatchOnPreDraw()
	w.Draw(canvas.New(img))
	return img
}

// card is a blurred view inside the window.
type card struct {
	window *window
	bounds image.Rectangle
	layout *blurview.Layout

	willNotDraw bool
}

func (cd *card) MeasuredSize() (int, int)        { return cd.bounds.Dx(), cd.bounds.Dy() }
func (cd *card) LocationOnScreen() image.Point   { return cd.bounds.Min }
func (cd *card) WindowID() int                   { return cd.window.WindowID() }
func (cd *card) Observer() *blurview.Observer    { return &cd.window.observer }
func (cd *card) SetWillNotDraw(willNotDraw bool) { cd.willNotDraw = willNotDraw }
func (cd *card) Invalidate()                     {}
func (cd *card) Device() canvas.DeviceHandle     { return nil }

// drawSelf paints a thin frame around the card.
func (cd *card) drawSelf(c *canvas.Canvas) {
	frame := colorful.Color{R: 1, G: 1, B: 1}
	w, h := float64(cd.bounds.Dx()), float64(cd.bounds.Dy())
	c.FillRect(0, 0, w, 2, frame)
	c.FillRect(0, h-2, w, 2, frame)
	c.FillRect(0, 0, 2, h, frame)
	c.FillRect(w-2, 0, 2, h, frame)
}

func drawGradientBackground(c *canvas.Canvas, w, h int) {
	top, _ := colorful.Hex("#1a2a6c")
	bottom, _ := colorful.Hex("#fdbb2d")

	steps := 100
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		y := float64(h) * t
		c.FillRect(0, y, float64(w), float64(h)/float64(steps)+1, top.BlendLab(bottom, t).Clamped())
	}
}

func drawShapes(c *canvas.Canvas, w, h int) {
	// Rotated squares along the middle.
	for i := 0; i < 8; i++ {
		c.Save()
		c.Translate(float64(w)*(float64(i)+0.5)/8, float64(h)/2)
		c.Rotate(float64(i) * math.Pi / 16)
		c.FillRect(-30, -30, 60, 60, colorful.Hcl(float64(i)*45, 0.8, 0.6).Clamped())
		c.Restore()
	}

	// Stripes crossing the card edges.
	for i := 0; i < 6; i++ {
		x := float64(w) * float64(i) / 6
		c.FillRect(x, 0, 12, float64(h), colorful.Hsv(float64(i)*60, 0.7, 1))
	}
}
