package ecs_test

import "github.com/plus3/grit/ecs"

// Common test component types

type Vec2 struct {
	X, Y float32
}

type Transform struct {
	Position    Vec2
	Scale       Vec2
	Orientation Vec2
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current int
	Max     int
}

type Name struct {
	Value string
}

type Tile struct {
	Occupant ecs.Entity
	Enabled  bool
}

func (t Tile) Active() bool { return t.Enabled }

type Scriptable struct {
	Script  string
	Enabled bool
}

func (s Scriptable) Active() bool { return s.Enabled }

func newTestWorld() *ecs.World {
	w := ecs.NewWorld(ecs.Config{})
	ecs.RegisterComponent[Transform](w, "Transform")
	ecs.RegisterComponent[Velocity](w, "Velocity")
	ecs.RegisterComponent[Health](w, "Health")
	ecs.RegisterComponent[Name](w, "Name")
	ecs.RegisterComponent[Tile](w, "Tile")
	ecs.RegisterComponent[Scriptable](w, "Scriptable")
	return w
}
