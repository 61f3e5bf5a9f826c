// internal/shader/orbit.go
package shader

import (
	"github.com/chewxy/math32"

	"go-solar-system/internal/utils"
)

// Orbit returns a ring outline shader: pixels within thickness/2 of the
// circle are covered, the interior is left alone.
func Orbit(center utils.Vec2, radius, thickness float32, c RGB) Func {
	half := thickness / 2
	return func(p utils.Vec2) Color {
		if !(radius > 0) {
			return Color{}
		}
		if math32.Abs(p.Sub(center).Len()-radius) < half {
			return Opaque(c.R, c.G, c.B)
		}
		return Color{}
	}
}
