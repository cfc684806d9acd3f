// Package blurview implements a blur-behind view: a view that continuously
// captures the pixels behind it, blurs them and draws the result, optionally
// tinted with an overlay color, in step with the host's draw cycle.
//
// # Overview
//
// A [PreDrawController] owns a downscaled scratch bitmap. Before every
// repaint it captures the background root into the bitmap, hands it to a
// [backend.Backend] and keeps the result. When the blurred view draws, the
// controller scales the result back up onto the view's canvas, paints the
// overlay color and tells the view whether to draw its own children.
//
//	host pre-draw tick -> capture root -> backend Blur
//	host draw          -> backend Render (scaled up) -> overlay -> children
//
// The working resolution comes from [scaler.Scaler]: the view size divided by
// the backend scale factor, with the width aligned to 64 pixels.
//
// # Host integration
//
// The host implements [View] for the blurred widget and [Root] for the
// background subtree. Each top-level surface has an [Observer]; the host
// calls [Observer.DispatchOnPreDraw] before repainting it.
//
//	layout := blurview.NewLayout(view)
//	facade, err := layout.AttachTo(root, nil) // nil selects a backend
//	if err != nil {
//	    log.Printf("blur not ready: %v", err)
//	}
//	facade.SetBlurRadius(12).SetOverlayColor(0x40FFFFFF)
//
//	// in the view's draw method:
//	layout.Draw(c, view.drawChildren)
//
// # Threading
//
// Controllers are driven from the host's single draw thread and are NOT
// safe for concurrent use. A compositor backend's blur runs later on the
// host's render thread; the controller never waits for it.
package blurview
