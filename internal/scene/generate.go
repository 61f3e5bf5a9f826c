// internal/scene/generate.go
package scene

import (
	"fmt"

	"github.com/chewxy/math32"

	"go-solar-system/internal/config"
	"go-solar-system/internal/shader"
	"go-solar-system/internal/utils"
)

// GenerateOptions controls seeded layout generation.
// Seed == 0 uses a time-based seed.
type GenerateOptions struct {
	Width, Height int
	Seed          int64
	Orbits        int
	GasFrom       int     // orbits at or beyond this index hold gas giants
	RingChance    float32 // per gas giant
	MoonChance    float32 // per rocky body
}

// DefaultGenerateOptions matches the built-in canvas.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Width:      config.ScreenWidth,
		Height:     config.ScreenHeight,
		Orbits:     5,
		GasFrom:    3,
		RingChance: 0.4,
		MoonChance: 0.3,
	}
}

// paletteWeights biases rocky bodies toward earth tones and gas giants
// away from the grey fallback.
var (
	rockyWeights = []int{4, 3, 2, 3}
	gasWeights   = []int{4, 4, 3, 1}
)

// Generate builds a random but reproducible scene: one body per orbit at a
// random angle, small rocky bodies inside, gas giants outside.
func Generate(opts GenerateOptions) (*Scene, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	if opts.Orbits <= 0 {
		opts.Orbits = 1
	}
	rng := utils.NewPRNGService(opts.Seed)

	short := float32(min(opts.Width, opts.Height))
	long := float32(max(opts.Width, opts.Height))
	s := &Scene{
		Name:       fmt.Sprintf("generated-%d", opts.Seed),
		Width:      opts.Width,
		Height:     opts.Height,
		Background: [3]float32{config.BackgroundColor.R, config.BackgroundColor.G, config.BackgroundColor.B},
		Star:       StarSpec{Radius: short * 0.14},
	}

	inner := s.Star.Radius * 1.75
	outer := long * 0.48
	step := (outer - inner) / float32(max(opts.Orbits-1, 1))
	for i := 0; i < opts.Orbits; i++ {
		r := utils.Lerp(inner, outer, float32(i)/float32(max(opts.Orbits-1, 1)))
		if opts.Orbits == 1 {
			r = inner
		}
		s.Orbits = append(s.Orbits, r)

		gas := i >= opts.GasFrom
		angle := rng.Range(0, 2*math32.Pi)
		pos := utils.V2(0, 0).Polar(r, angle)

		var radius float32
		var palette int
		if gas {
			radius = rng.Range(0.3, 0.45) * step
			palette = rng.ChooseWeighted(gasWeights)
		} else {
			radius = rng.Range(0.1, 0.2) * step
			palette = rng.ChooseWeighted(rockyWeights)
		}
		b := BodySpec{
			Name:    fmt.Sprintf("body-%d", i+1),
			Offset:  [2]float32{pos.X, pos.Y},
			Radius:  radius,
			Palette: uint(palette),
			Gas:     gas,
			Ring:    gas && rng.Chance(opts.RingChance),
		}
		s.Bodies = append(s.Bodies, b)

		if !gas && rng.Chance(opts.MoonChance) {
			moon := pos.Polar(radius*2.2, rng.Range(0, 2*math32.Pi))
			s.Bodies = append(s.Bodies, BodySpec{
				Name:    b.Name + "-moon",
				Offset:  [2]float32{moon.X, moon.Y},
				Radius:  radius * 0.4,
				Palette: uint(rng.Intn(shader.PaletteSize)),
			})
		}
	}
	return s, nil
}
