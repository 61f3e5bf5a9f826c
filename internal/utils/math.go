// internal/utils/math.go
package utils

import "github.com/chewxy/math32"

// Clamp restricts v to [lo, hi]. The caller guarantees lo <= hi.
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}

// Mix blends a and b as a*(1-t) + b*t. t outside [0, 1] extrapolates.
func Mix(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Smoothstep maps x into [0, 1] over [e0, e1] with a cubic Hermite ease.
func Smoothstep(e0, e1, x float32) float32 {
	t := Clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}
