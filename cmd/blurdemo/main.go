// Command blurdemo renders a frosted card over a synthetic scene and saves
// it as PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/blurview"
	"github.com/gogpu/blurview/backend"
	"github.com/gogpu/blurview/canvas"
)

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		output   = flag.String("output", "blurdemo.png", "output file")
		radius   = flag.Float64("radius", 10, "blur radius")
		overlay  = flag.String("overlay", "#ffffff", "overlay color")
		alpha    = flag.Float64("overlay-alpha", 0.3, "overlay opacity, 0..1")
		backendF = flag.String("backend", "auto", "blur backend: kernel, compositor or auto")
		debug    = flag.Bool("debug", false, "log at debug level")
	)
	flag.Parse()

	if *debug {
		blurview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	overlayColor, err := parseOverlay(*overlay, *alpha)
	if err != nil {
		log.Fatalf("Invalid overlay color %q: %v", *overlay, err)
	}

	var b backend.Backend
	switch *backendF {
	case "kernel":
		b = backend.NewKernel()
	case "compositor":
		b = backend.NewCompositor()
	case "auto":
		// Select picks one for the card's device.
	default:
		log.Fatalf("Unknown backend %q", *backendF)
	}

	w := newWindow(*width, *height)
	card := w.addCard(image.Rect(*width/6, *height/4, *width*5/6, *height*3/4))

	facade, err := card.layout.AttachTo(w, b)
	if err != nil {
		log.Fatalf("Failed to attach blur: %v", err)
	}
	facade.SetBlurRadius(*radius).SetOverlayColor(overlayColor)

	img := w.render()

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// parseOverlay turns a hex color and an opacity into 0xAARRGGBB.
func parseOverlay(hex string, alpha float64) (uint32, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, err
	}
	a := uint32(min(max(alpha, 0), 1)*255 + 0.5)
	return a<<24 | canvas.ARGB(c.Clamped())&0x00FFFFFF, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
