// internal/scene/types.go
package scene

import "go-solar-system/internal/utils"

// Scene describes everything drawn into one frame. Body offsets are
// relative to the star centre.
type Scene struct {
	Name       string     `yaml:"name,omitempty"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background [3]float32 `yaml:"background"`
	Star       StarSpec   `yaml:"star"`
	Orbits     []float32  `yaml:"orbits"`
	Bodies     []BodySpec `yaml:"bodies"`
	Colors     *ColorSpec `yaml:"colors,omitempty"`
}

// ColorSpec overrides the star and orbit colours. Unset fields keep the
// built-in values.
type ColorSpec struct {
	StarCore       *[3]float32 `yaml:"star_core,omitempty"`
	StarGlow       *[3]float32 `yaml:"star_glow,omitempty"`
	Orbit          *[3]float32 `yaml:"orbit,omitempty"`
	OrbitThickness float32     `yaml:"orbit_thickness,omitempty"`
}

// StarSpec places the star. A nil Center means the middle of the canvas.
type StarSpec struct {
	Center *[2]float32 `yaml:"center,omitempty"`
	Radius float32     `yaml:"radius"`
}

// BodySpec is one planet or moon.
type BodySpec struct {
	Name    string     `yaml:"name,omitempty"`
	Offset  [2]float32 `yaml:"offset"`
	Radius  float32    `yaml:"radius"`
	Palette uint       `yaml:"palette"`
	Gas     bool       `yaml:"gas"`
	Ring    bool       `yaml:"ring"`
}

// StarCenter returns the star position in pixels.
func (s *Scene) StarCenter() utils.Vec2 {
	if s.Star.Center != nil {
		return utils.V2(s.Star.Center[0], s.Star.Center[1])
	}
	return utils.V2(float32(s.Width)*0.5, float32(s.Height)*0.5)
}

// BodyCenter returns the absolute position of b.
func (s *Scene) BodyCenter(b BodySpec) utils.Vec2 {
	return s.StarCenter().Add(utils.V2(b.Offset[0], b.Offset[1]))
}
