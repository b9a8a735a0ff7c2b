// Package component holds the standard component payloads shipped with
// the engine. They are plain data; register the ones a game needs with
// ecs.RegisterComponent and attach via the world facade.
package component

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float32
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

func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Transform places an entity in the world.
type Transform struct {
	Position    Vec2
	Scale       Vec2
	Orientation float32 // radians
}

// NewTransform returns a transform at (x, y) with unit scale.
func NewTransform(x, y float32) Transform {
	return Transform{
		Position: Vec2{x, y},
		Scale:    Vec2{1, 1},
	}
}
