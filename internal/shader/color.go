// internal/shader/color.go
package shader

import (
	"image/color"

	"go-solar-system/internal/utils"
)

// Color is a linear RGB colour with each channel nominally in [0, 1].
// A is coverage: zero means the shader did not cover the pixel.
type Color struct {
	R, G, B, A float32
}

// Opaque returns a fully covered colour.
func Opaque(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Covered reports whether the pixel should be written.
func (c Color) Covered() bool {
	return c.A > 0
}

// Func shades the pixel sampled at p.
type Func func(p utils.Vec2) Color

// PackRGB quantises (r, g, b) to 0x00RRGGBB, clamping each channel to [0, 1].
func PackRGB(r, g, b float32) uint32 {
	ri := uint32(utils.Clamp(r, 0, 1) * 255)
	gi := uint32(utils.Clamp(g, 0, 1) * 255)
	bi := uint32(utils.Clamp(b, 0, 1) * 255)
	return ri<<16 | gi<<8 | bi
}

// Pack quantises c, ignoring coverage.
func Pack(c Color) uint32 {
	return PackRGB(c.R, c.G, c.B)
}

// Unpack expands a packed pixel back to an opaque Color.
func Unpack(u uint32) Color {
	return Opaque(
		float32(u>>16&0xff)/255,
		float32(u>>8&0xff)/255,
		float32(u&0xff)/255,
	)
}

// ToRGBA converts a packed pixel to an opaque color.RGBA.
func ToRGBA(u uint32) color.RGBA {
	return color.RGBA{R: uint8(u >> 16), G: uint8(u >> 8), B: uint8(u), A: 0xff}
}
