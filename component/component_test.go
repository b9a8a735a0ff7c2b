package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/grit/component"
	"github.com/plus3/grit/ecs"
)

func TestColorSatisfiesColorColor(t *testing.T) {
	r, g, b, a := component.Color{R: 255, G: 128, B: 0, A: 255}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(128*0x101), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestNewTileIsEmptyAndActive(t *testing.T) {
	tile := component.NewTile(3, 7)
	assert.True(t, tile.Active())
	assert.True(t, tile.Walkable)
	assert.False(t, tile.Occupied())
	assert.Equal(t, ecs.None, tile.Occupant)
}

func TestUnitImplementsActivatable(t *testing.T) {
	var _ ecs.Activatable = component.Unit{}
	var _ ecs.Activatable = component.Tile{}

	unit := component.NewUnit(2.5)
	assert.True(t, unit.Active())
	unit.Enabled = false
	assert.False(t, unit.Active())
}

func TestForceApplyLinear(t *testing.T) {
	body := component.RigidBody{Mass: 2}
	component.LinearForce(10, 0).Apply(&body, 0.5)

	assert.InDelta(t, 2.5, body.Velocity.X, 1e-6)
	assert.Zero(t, body.Velocity.Y)
	assert.Zero(t, body.AngularVelocity)
}

func TestForceApplyRotational(t *testing.T) {
	body := component.RigidBody{Mass: 1}
	component.RotationalForce(4).Apply(&body, 0.25)

	assert.InDelta(t, 1.0, body.AngularVelocity, 1e-6)
	assert.Zero(t, body.Velocity.X)
}

func TestForceApplyGeneric(t *testing.T) {
	body := component.RigidBody{Mass: 1}
	component.GenericForce(2, 4, 6).Apply(&body, 1)

	assert.InDelta(t, 2.0, body.Velocity.X, 1e-6)
	assert.InDelta(t, 4.0, body.Velocity.Y, 1e-6)
	assert.InDelta(t, 6.0, body.AngularVelocity, 1e-6)
}

func TestForceApplyZeroMassFallsBackToUnit(t *testing.T) {
	body := component.RigidBody{}
	component.LinearForce(3, 0).Apply(&body, 1)
	assert.InDelta(t, 3.0, body.Velocity.X, 1e-6)
}

func TestForceKindString(t *testing.T) {
	assert.Equal(t, "linear", component.ForceLinear.String())
	assert.Equal(t, "rotational", component.ForceRotational.String())
	assert.Equal(t, "generic", component.ForceGeneric.String())
}

func TestComponentsRegisterWithWorld(t *testing.T) {
	w := ecs.NewWorld(ecs.Config{MaxEntities: 16})
	ecs.RegisterComponent[component.Transform](w, "Transform")
	ecs.RegisterComponent[component.Tile](w, "TileComponent")
	ecs.RegisterComponent[component.Unit](w, "UnitComponent")

	tile := w.CreateEntity()
	unit := w.CreateEntity()
	ecs.Add(w, tile, component.NewTile(0, 0))
	ecs.Add(w, unit, component.NewUnit(1))

	ecs.Get[component.Tile](w, tile).Occupant = unit
	ecs.Get[component.Unit](w, unit).OccupiedTile = tile

	require.True(t, ecs.Get[component.Tile](w, tile).Occupied())
	assert.Equal(t, tile, ecs.Get[component.Unit](w, unit).OccupiedTile)

	// Disabled tiles drop out of name-keyed queries.
	ecs.Get[component.Tile](w, tile).Enabled = false
	assert.Empty(t, w.EntitiesWithComponent("TileComponent"))
	assert.Equal(t, []ecs.Entity{unit}, w.EntitiesWithComponent("UnitComponent"))
}

func TestVec2Helpers(t *testing.T) {
	v := component.Vec2{X: 3, Y: 4}
	assert.InDelta(t, 5.0, v.Length(), 1e-6)
	assert.Equal(t, component.Vec2{X: 6, Y: 8}, v.Scale(2))
	assert.Equal(t, component.Vec2{X: 4, Y: 6}, v.Add(component.Vec2{X: 1, Y: 2}))
	assert.Equal(t, component.Vec2{X: 2, Y: 2}, v.Sub(component.Vec2{X: 1, Y: 2}))
}
