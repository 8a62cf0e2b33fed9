// Package colorutil provides the small, value-returning colour
// conversions used by the DXT->ATITC converter: 565->888 expansion,
// 565->555 truncation, and the fixed-point luminance weighting used to
// order and compare endpoints.
package colorutil

// Color565To888 expands a 16-bit RGB565-packed colour to a 24-bit 888
// triple by replicating each channel's top bits into its low bits, the
// same bit-replication hardware uses so the result spans the full
// 0-255 range.
func Color565To888(color565 uint16) (r, g, b uint8) {
	r = uint8(((color565 & 0xF800) >> 8) | ((color565 & 0xE000) >> 13))
	g = uint8(((color565 & 0x07E0) >> 3) | ((color565 & 0x0600) >> 9))
	b = uint8(((color565 & 0x001F) << 3) | ((color565 & 0x001C) >> 2))
	return
}

// Color565To555 truncates an RGB565 colour to RGB555 by dropping the
// least-significant green bit.
func Color565To555(color565 uint16) uint16 {
	return (color565 & 0x001F) | ((color565 & 0xFFC0) >> 1)
}

// Luminance computes the hardware's fixed-point approximation to
// Rec.601 luminance: (19*r + 38*g + 7*b) >> 6. The weights sum to 64, so
// values lie in [0, 255] for r, g, b in [0, 255].
func Luminance(r, g, b uint8) uint32 {
	return (19*uint32(r) + 38*uint32(g) + 7*uint32(b)) >> 6
}
