// internal/scene/render.go
package scene

import (
	"go-solar-system/internal/shader"
	"go-solar-system/pkg/render"
)

// NewFramebuffer allocates a buffer sized and filled for s, with the
// scene's star and orbit colours applied.
func (s *Scene) NewFramebuffer() *render.Framebuffer {
	bg := shader.PackRGB(s.Background[0], s.Background[1], s.Background[2])
	fb := render.NewFramebuffer(s.Width, s.Height, bg)
	fb.SetColors(s.SceneColors())
	return fb
}

// SceneColors merges the scene's colour overrides into the defaults.
func (s *Scene) SceneColors() render.SceneColors {
	c := render.DefaultColors()
	if s.Colors == nil {
		return c
	}
	rgb := func(dst *shader.RGB, v *[3]float32) {
		if v != nil {
			*dst = shader.RGB{R: v[0], G: v[1], B: v[2]}
		}
	}
	rgb(&c.StarCore, s.Colors.StarCore)
	rgb(&c.StarGlow, s.Colors.StarGlow)
	rgb(&c.Orbit, s.Colors.Orbit)
	if s.Colors.OrbitThickness > 0 {
		c.OrbitThickness = s.Colors.OrbitThickness
	}
	return c
}

// Render draws the star, then the orbits, then every body in order.
// Later bodies overwrite earlier ones where they overlap.
func (s *Scene) Render(fb *render.Framebuffer) {
	sun := s.StarCenter()
	fb.DrawStar(sun, s.Star.Radius)
	for _, r := range s.Orbits {
		fb.DrawOrbit(sun, r)
	}
	for _, b := range s.Bodies {
		fb.DrawBody(s.BodyCenter(b), b.Radius, b.Palette, b.Gas, b.Ring)
	}
}
