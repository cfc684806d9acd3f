package canvas

import "image/color"

// Transparent is the packed ARGB value of a fully transparent color.
const Transparent uint32 = 0

// ColorFromARGB unpacks a 0xAARRGGBB value into a non-premultiplied color.
func ColorFromARGB(argb uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	}
}

// ARGB packs any color into 0xAARRGGBB, non-premultiplied.
func ARGB(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

// Alpha returns the alpha byte of a packed ARGB value.
func Alpha(argb uint32) uint8 {
	return uint8(argb >> 24)
}
