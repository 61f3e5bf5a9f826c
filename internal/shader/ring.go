// internal/shader/ring.go
package shader

import (
	"github.com/chewxy/math32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"go-solar-system/internal/utils"
)

// Planetary ring geometry, in body radii.
const (
	RingInner      = 1.35
	RingOuter      = 2.1
	RingFlatten    = 0.32 // vertical squash of the ellipse
	RingStripeFreq = 38.0
	RingStripeLow  = 0.72
	RingTintMix    = 0.55
	RingShadow     = 0.8 // ring brightness where it crosses in front of the disc
)

var ringTint = colorful.Color{R: 0.92, G: 0.88, B: 0.78}

// RingExtent returns the half width and half height of the ring's bounding box.
func RingExtent(radius float32) (float32, float32) {
	return radius * RingOuter, radius * RingOuter * RingFlatten
}

// RingBand returns the normalised elliptical distance of offset d from a
// body of the given radius. The ring covers [RingInner, RingOuter].
func RingBand(d utils.Vec2, radius float32) float32 {
	ex := d.X / radius
	ey := d.Y / (radius * RingFlatten)
	return math32.Sqrt(ex*ex + ey*ey)
}

// Ring returns the shader for a flattened, striped ring around a body.
// The far half (above the centre) is hidden where the disc occludes it.
func Ring(b Body) Func {
	base := BasePalette(b.Gas, b.Palette)
	tint := toColorful(base).BlendRgb(ringTint, RingTintMix)
	return func(p utils.Vec2) Color {
		if !(b.Radius > 0) {
			return Color{}
		}
		d := p.Sub(b.Center)
		e := RingBand(d, b.Radius)
		if e < RingInner || e > RingOuter {
			return Color{}
		}
		overDisc := d.Len() <= b.Radius
		if overDisc && d.Y < 0 {
			return Color{}
		}
		stripe := utils.Mix(RingStripeLow, 1, math32.Sin(e*RingStripeFreq)*0.5+0.5)
		// fade toward both edges of the band
		u := (e - RingInner) / (RingOuter - RingInner)
		edge := utils.Smoothstep(0, 0.15, u) * utils.Smoothstep(1, 0.85, u)
		k := stripe * utils.Mix(0.6, 1, edge)
		if overDisc {
			k *= RingShadow
		}
		return Opaque(
			utils.Clamp(float32(tint.R)*k, 0, 1),
			utils.Clamp(float32(tint.G)*k, 0, 1),
			utils.Clamp(float32(tint.B)*k, 0, 1),
		)
	}
}
