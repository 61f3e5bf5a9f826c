// internal/shader/star.go
package shader

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"go-solar-system/internal/utils"
)

// GlowExtent is the outer edge of the star glow, in star radii.
// The glow contributes nothing past it.
const GlowExtent = 2.2

// GlowFalloff returns the glow weight at normalised distance t: 1 at the
// core edge, falling quadratically to 0 at GlowExtent.
func GlowFalloff(t float32) float32 {
	if t <= 1 {
		return 1
	}
	if t >= GlowExtent {
		return 0
	}
	k := 1 - (t-1)/(GlowExtent-1)
	return k * k
}

// Star returns the star shader: a flat core disc surrounded by a glow
// blended toward the background.
func Star(center utils.Vec2, radius float32, core, glow, background RGB) Func {
	glowC := toColorful(glow)
	bgC := toColorful(background)
	return func(p utils.Vec2) Color {
		if !(radius > 0) {
			return Color{}
		}
		t := p.Sub(center).Len() / radius
		if t <= 1 {
			return Opaque(core.R, core.G, core.B)
		}
		w := GlowFalloff(t)
		if w <= 0 {
			return Color{}
		}
		return fromColorful(bgC.BlendRgb(glowC, float64(w)))
	}
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

func fromColorful(c colorful.Color) Color {
	return Opaque(float32(c.R), float32(c.G), float32(c.B))
}
