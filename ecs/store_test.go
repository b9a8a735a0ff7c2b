package ecs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/plus3/grit/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGetRemove(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	ecs.Add(w, e, Health{Current: 80, Max: 100})

	assert.True(t, ecs.Has[Health](w, e))
	assert.Equal(t, Health{Current: 80, Max: 100}, *ecs.Get[Health](w, e))

	ecs.Remove[Health](w, e)
	assert.False(t, ecs.Has[Health](w, e))
}

func TestAddDuplicatePanics(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	ecs.Add(w, e, Health{Current: 1, Max: 1})
	assert.Panics(t, func() { ecs.Add(w, e, Health{Current: 2, Max: 2}) })
}

func TestRemoveAbsentPanics(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	assert.Panics(t, func() { ecs.Remove[Health](w, e) })
}

func TestGetAbsentPanics(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	assert.Panics(t, func() { ecs.Get[Health](w, e) })
}

func TestLookupAbsent(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	ptr, ok := ecs.Lookup[Health](w, e)
	assert.False(t, ok)
	assert.Nil(t, ptr)
}

func TestUnregisteredTypePanics(t *testing.T) {
	type Unregistered struct{ V int }

	w := newTestWorld()
	e := w.CreateEntity()

	assert.Panics(t, func() { ecs.Add(w, e, Unregistered{V: 1}) })
	assert.Panics(t, func() { ecs.Has[Unregistered](w, e) })
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	w := newTestWorld()

	assert.Panics(t, func() { ecs.RegisterComponent[Health](w, "Health2") })

	type Other struct{ V int }
	assert.Panics(t, func() { ecs.RegisterComponent[Other](w, "Health") })
}

func TestComponentTypeLimit(t *testing.T) {
	type A struct{ V int }
	type B struct{ V int }
	type C struct{ V int }

	w := ecs.NewWorld(ecs.Config{MaxComponentTypes: 2})
	ecs.RegisterComponent[A](w, "A")
	ecs.RegisterComponent[B](w, "B")
	assert.Panics(t, func() { ecs.RegisterComponent[C](w, "C") })
}

func TestGetReturnsMutablePointer(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	ecs.Add(w, e, Health{Current: 50, Max: 100})
	ecs.Get[Health](w, e).Current = 75
	assert.Equal(t, 75, ecs.Get[Health](w, e).Current)
}

// Storage packing: after any sequence of adds and removes, iterating
// the store visits exactly the entities currently holding the
// component, with no gaps.
func TestStorePackingUnderChurn(t *testing.T) {
	w := newTestWorld()
	rng := rand.New(rand.NewSource(7))

	expected := make(map[ecs.Entity]int)
	var holders []ecs.Entity

	for i := 0; i < 500; i++ {
		if len(holders) == 0 || rng.Intn(3) != 0 {
			e := w.CreateEntity()
			ecs.Add(w, e, Health{Current: i, Max: i})
			expected[e] = i
			holders = append(holders, e)
		} else {
			idx := rng.Intn(len(holders))
			e := holders[idx]
			holders[idx] = holders[len(holders)-1]
			holders = holders[:len(holders)-1]
			ecs.Remove[Health](w, e)
			delete(expected, e)
			w.DestroyEntity(e)
		}
	}

	store := ecs.StoreOf[Health](w)
	require.Equal(t, len(expected), store.Len())

	visited := make(map[ecs.Entity]int)
	for e, h := range store.All() {
		visited[e] = h.Current
	}
	assert.Equal(t, expected, visited)
}

func TestSwapAndPopKeepsMovedEntityMapped(t *testing.T) {
	w := newTestWorld()

	entities := make([]ecs.Entity, 5)
	for i := range entities {
		entities[i] = w.CreateEntity()
		ecs.Add(w, entities[i], Health{Current: i, Max: 100})
	}

	// Removing a middle element moves the last element into its slot.
	ecs.Remove[Health](w, entities[1])

	for i, e := range entities {
		if i == 1 {
			assert.False(t, ecs.Has[Health](w, e))
			continue
		}
		require.True(t, ecs.Has[Health](w, e))
		assert.Equal(t, i, ecs.Get[Health](w, e).Current, "entity %d value survived relocation", e)
	}
}

func TestEntityOf(t *testing.T) {
	w := newTestWorld()

	a := w.CreateEntity()
	b := w.CreateEntity()
	ecs.Add(w, a, Name{Value: "a"})
	ecs.Add(w, b, Name{Value: "b"})

	ptr := ecs.Get[Name](w, b)
	owner, ok := ecs.EntityOf(w, ptr)
	require.True(t, ok)
	assert.Equal(t, b, owner)

	var stray Name
	_, ok = ecs.EntityOf(w, &stray)
	assert.False(t, ok)
}

func TestStoreAllOrderIsPacked(t *testing.T) {
	w := newTestWorld()

	for i := 0; i < 10; i++ {
		e := w.CreateEntity()
		ecs.Add(w, e, Velocity{DX: float32(i)})
	}

	count := 0
	for range ecs.StoreOf[Velocity](w).All() {
		count++
	}
	assert.Equal(t, 10, count)
}

func TestScenarioTransformRoundTrip(t *testing.T) {
	w := newTestWorld()

	e := w.CreateEntity()
	ecs.Add(w, e, Transform{
		Scale:       Vec2{1, 1},
		Orientation: Vec2{0, 0},
		Position:    Vec2{5, 5},
	})

	got := ecs.Get[Transform](w, e)
	assert.Equal(t, Vec2{5, 5}, got.Position)

	ecs.Remove[Transform](w, e)
	assert.False(t, ecs.Has[Transform](w, e))
}

func TestManyComponentsPerEntity(t *testing.T) {
	w := newTestWorld()

	for i := 0; i < 20; i++ {
		t.Run(fmt.Sprintf("entity=%d", i), func(t *testing.T) {
			e := w.CreateEntity()
			ecs.Add(w, e, Transform{Position: Vec2{float32(i), 0}})
			ecs.Add(w, e, Velocity{DX: float32(i)})
			ecs.Add(w, e, Health{Current: i, Max: 100})

			assert.Len(t, w.ComponentsOf(e), 3)
		})
	}
}
