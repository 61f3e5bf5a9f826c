// pkg/render/color.go
package render

import (
	"image/color"

	"go-solar-system/internal/config"
	"go-solar-system/internal/shader"
)

// SceneColors holds the fixed colours used by the star and orbit draws.
type SceneColors struct {
	StarCore       shader.RGB
	StarGlow       shader.RGB
	Orbit          shader.RGB
	OrbitThickness float32
}

// DefaultColors returns the colours from config.
func DefaultColors() SceneColors {
	return SceneColors{
		StarCore:       config.StarCoreColor,
		StarGlow:       config.StarGlowColor,
		Orbit:          config.OrbitColor,
		OrbitThickness: config.OrbitThickness,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// RGBToColor converts a palette entry to an opaque color.RGBA.
func RGBToColor(c shader.RGB) color.RGBA {
	return shader.ToRGBA(shader.PackRGB(c.R, c.G, c.B))
}
