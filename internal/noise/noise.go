// internal/noise/noise.go

// Package noise is the deterministic value-noise source behind every
// procedural texture. All functions are pure and safe for concurrent use.
package noise

import (
	"math"

	"github.com/chewxy/math32"
)

// Hash and Noise2 constants. The texture thresholds in the shader are tuned
// against the distribution these produce.
const (
	HashFreq  = 12345.6789
	HashScale = 43758.5453
	FoldX     = 12.9898
	FoldY     = 78.233
)

// fBm accumulation parameters.
const (
	Octaves       = 5
	BaseAmplitude = 0.5
	BaseFrequency = 1.0
	Gain          = 0.5
	Lacunarity    = 2.0
)

// Hash returns the fractional part of sin(seed*HashFreq)*HashScale.
// Nominally in [0, 1); rounding may push it marginally outside.
//
// The argument reaches 1e7 and beyond, where math32.Sin loses precision,
// so the sine is taken in float64 and rounded once.
func Hash(seed float32) float32 {
	x := float32(math.Sin(float64(seed*HashFreq))) * HashScale
	return x - math32.Floor(x)
}

// Noise2 folds (x, y) into a scalar seed and hashes it.
// The conversions keep the fold from being fused into an FMA; a one-ulp
// change in the seed gives an unrelated hash.
func Noise2(x, y float32) float32 {
	return Hash(float32(x*FoldX) + float32(y*FoldY))
}

// FBM sums Octaves layers of Noise2. The sum is not normalised.
func FBM(x, y float32) float32 {
	return FBMOctaves(x, y, Octaves)
}

// FBMOctaves is FBM with a caller-chosen octave count.
func FBMOctaves(x, y float32, octaves int) float32 {
	var sum float32
	amp := float32(BaseAmplitude)
	freq := float32(BaseFrequency)
	for i := 0; i < octaves; i++ {
		sum += float32(amp * Noise2(x*freq, y*freq))
		amp *= Gain
		freq *= Lacunarity
	}
	return sum
}
