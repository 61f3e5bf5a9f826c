// internal/utils/vec.go
package utils

import "github.com/chewxy/math32"

// Vec2 is a point or offset in pixel space.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{x, y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Polar returns the point at distance r and angle a (radians) from v.
func (v Vec2) Polar(r, a float32) Vec2 {
	return Vec2{v.X + r*math32.Cos(a), v.Y + r*math32.Sin(a)}
}
