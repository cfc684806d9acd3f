// Package filter evaluates the image effects attached to compositor nodes.
//
// The only effect is a two-axis separable Gaussian blur with a configurable
// edge tile mode. It runs when a node is drawn onto an accelerated canvas,
// never on the capture path.
package filter
