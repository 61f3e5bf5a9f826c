// internal/shader/planet.go
package shader

import (
	"github.com/chewxy/math32"

	"go-solar-system/internal/noise"
	"go-solar-system/internal/utils"
)

// Shared surface terms.
const (
	LimbDarkening = 0.5  // baseLight = 1 - LimbDarkening*t
	LocalScale    = 2.0  // nx, ny = p/radius * LocalScale
	StormFreq     = 3.0  // storm = fbm(nx*StormFreq, ny*StormFreq)
	RimStart      = 0.85 // rim = smoothstep(RimStart, 1, t)
	RimEnd        = 1.0
)

// Gas giant terms.
const (
	GasBandLow     = 0.5
	GasBandHigh    = 1.0
	GasBandWeight  = 0.8
	GasStormWeight = 0.2
	GasGreenMix    = 0.7 // g *= mix(bandT, 1, GasGreenMix)
	GasBlueMix     = 0.7 // b *= mix(1, bandT, GasBlueMix)
	SwirlFreq      = 1.5
	SwirlWarp      = 2.0
)

// Swirl lightening per channel: mix(c, c*gain+bias, swirl*strength).
var (
	swirlGain     = [3]float32{1.2, 1.1, 1.05}
	swirlBias     = [3]float32{0.10, 0.08, 0.05}
	swirlStrength = [3]float32{0.3, 0.2, 0.15}
)

// Rocky body terms.
const (
	StrataSlope   = 3.2
	StrataFreq    = 2.2
	StrataEdge    = 0.7 // smoothstep(-StrataEdge, StrataEdge, ...)
	StrataRedLow  = 0.85
	StrataRedHigh = 1.25
	StrataGrnLow  = 0.92
	StrataGrnHigh = 1.15
	StrataBluLow  = 0.82
	StrataBluHigh = 1.08
	StrataBluBias = 0.8
	CraterFreq    = 6.5
	CraterLow     = 0.58
	CraterHigh    = 0.64
	CraterFloor   = 0.45
	CraterDepth   = 0.95
)

// Lighting applied to both classes.
const (
	RimStrength = 0.8
	EdgeDark    = 0.72
	EdgeReach   = 0.85
	Saturation  = 1.08
)

// Rim highlight weight per channel (warm limb).
var rimWeight = [3]float32{0.38, 0.28, 0.18}

// Body describes one planetary body for the duration of a draw call.
type Body struct {
	Center  utils.Vec2
	Radius  float32
	Palette uint
	Gas     bool
}

// Shade is the planet surface shader. It is pure: pixels outside the disc
// (t > 1), and degenerate radii, come back with zero coverage.
func Shade(pos, center utils.Vec2, radius float32, palette uint, gas bool) Color {
	if !(radius > 0) {
		return Color{}
	}
	p := pos.Sub(center)
	t := p.Len() / radius
	if !(t <= 1) {
		return Color{}
	}

	base := BasePalette(gas, palette)
	baseLight := 1 - LimbDarkening*t
	angle := (p.Y / radius) * math32.Pi
	bands := math32.Sin(angle)*0.5 + 0.5
	nx := p.X / radius * LocalScale
	ny := p.Y / radius * LocalScale
	storm := noise.FBM(nx*StormFreq, ny*StormFreq)
	rim := utils.Smoothstep(RimStart, RimEnd, t)

	c := [3]float32{base.R, base.G, base.B}
	if gas {
		shadeGas(&c, bands, storm, baseLight, nx, ny)
	} else {
		shadeRocky(&c, p.X/radius, baseLight, nx, ny)
	}

	rimStrength := rim * RimStrength
	edge := utils.Mix(1, EdgeDark, t*EdgeReach)
	for i := range c {
		c[i] = utils.Mix(c[i], 1, rimStrength*rimWeight[i])
		c[i] *= edge
		c[i] = utils.Clamp(c[i]*Saturation, 0, 1)
	}
	return Opaque(c[0], c[1], c[2])
}

// shadeGas applies soft latitudinal bands and a warped swirl layer.
func shadeGas(c *[3]float32, bands, storm, baseLight, nx, ny float32) {
	bandT := utils.Mix(GasBandLow, GasBandHigh, bands*GasBandWeight+GasStormWeight*storm)
	c[0] *= bandT * baseLight
	c[1] *= utils.Mix(bandT, 1, GasGreenMix) * baseLight
	c[2] *= utils.Mix(1, bandT, GasBlueMix) * baseLight

	// unfused, like noise.Noise2
	warp := float32(storm * SwirlWarp)
	swirl := noise.FBM(float32(nx*SwirlFreq)+warp, float32(ny*SwirlFreq)-warp)
	for i := range c {
		c[i] = utils.Mix(c[i], c[i]*swirlGain[i]+swirlBias[i], swirl*swirlStrength[i])
	}
}

// shadeRocky applies longitudinal strata and a thresholded crater mask.
// u is the horizontal offset in body radii.
func shadeRocky(c *[3]float32, u, baseLight, nx, ny float32) {
	strata := utils.Smoothstep(-StrataEdge, StrataEdge, u*StrataSlope+noise.FBM(nx*StrataFreq, ny*StrataFreq))
	c[0] *= utils.Mix(StrataRedLow, StrataRedHigh, strata) * baseLight
	c[1] *= utils.Mix(StrataGrnLow, StrataGrnHigh, strata) * baseLight
	c[2] *= utils.Mix(StrataBluLow, StrataBluHigh, strata*StrataBluBias) * baseLight

	craterMask := utils.Smoothstep(CraterLow, CraterHigh, noise.FBM(nx*CraterFreq, ny*CraterFreq))
	for i := range c {
		c[i] = utils.Mix(c[i], c[i]*CraterFloor, craterMask*CraterDepth)
	}
}

// Planet returns the planet shader bound to b.
func Planet(b Body) Func {
	return func(p utils.Vec2) Color {
		return Shade(p, b.Center, b.Radius, b.Palette, b.Gas)
	}
}
