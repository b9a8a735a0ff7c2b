package ecs_test

import (
	"testing"

	"github.com/plus3/grit/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitiesWithBothComponents(t *testing.T) {
	w := newTestWorld()

	both1 := w.CreateEntity()
	onlyT := w.CreateEntity()
	both2 := w.CreateEntity()
	onlyV := w.CreateEntity()

	// Insertion order deliberately differs per entity.
	ecs.Add(w, both1, Transform{})
	ecs.Add(w, both1, Velocity{})
	ecs.Add(w, onlyT, Transform{})
	ecs.Add(w, both2, Velocity{})
	ecs.Add(w, both2, Transform{})
	ecs.Add(w, onlyV, Velocity{})

	sig := ecs.NewSignature(ecs.Bit[Transform](w), ecs.Bit[Velocity](w))
	got := w.EntitiesWith(sig)

	assert.Equal(t, []ecs.Entity{both1, both2}, got, "ascending id order, both components only")
}

func TestEntitiesWithEmptySignatureReturnsAllLive(t *testing.T) {
	w := newTestWorld()

	a := w.CreateEntity()
	b := w.CreateEntity()
	c := w.CreateEntity()
	w.DestroyEntity(b)

	got := w.EntitiesWith(ecs.Signature(0))
	assert.Equal(t, []ecs.Entity{a, c}, got)
}

func TestSignatureFor(t *testing.T) {
	w := newTestWorld()

	sig, ok := w.SignatureFor("Transform", "Velocity")
	require.True(t, ok)
	assert.Equal(t, ecs.NewSignature(ecs.Bit[Transform](w), ecs.Bit[Velocity](w)), sig)

	_, ok = w.SignatureFor("Transform", "NoSuch")
	assert.False(t, ok)
}

func TestDestroyDropsAllComponents(t *testing.T) {
	w := newTestWorld()

	e := w.CreateEntity()
	ecs.Add(w, e, Transform{})
	ecs.Add(w, e, Velocity{})
	ecs.Add(w, e, Health{Current: 10, Max: 10})

	w.DestroyEntity(e)

	assert.False(t, ecs.StoreOf[Transform](w).Has(e))
	assert.False(t, ecs.StoreOf[Velocity](w).Has(e))
	assert.False(t, ecs.StoreOf[Health](w).Has(e))
}

func TestLiveCount(t *testing.T) {
	w := newTestWorld()

	assert.Equal(t, 0, w.LiveCount())
	a := w.CreateEntity()
	w.CreateEntity()
	assert.Equal(t, 2, w.LiveCount())
	w.DestroyEntity(a)
	assert.Equal(t, 1, w.LiveCount())
}

// Name-keyed dynamic access: the scripting-facing surface must degrade
// gracefully on unregistered names and absent components.

func TestNamedAccessUnregisteredName(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	assert.False(t, w.AddComponentNamed(e, "NoSuch"))
	assert.False(t, w.RemoveComponentNamed(e, "NoSuch"))
	assert.Nil(t, w.ComponentNamed(e, "NoSuch"))
	assert.False(t, w.HasComponentNamed(e, "NoSuch"))
	assert.Empty(t, w.EntitiesWithComponent("NoSuch"))
}

func TestNamedAccessAbsentComponent(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	assert.Nil(t, w.ComponentNamed(e, "Health"))
	assert.False(t, w.HasComponentNamed(e, "Health"))
	assert.False(t, w.RemoveComponentNamed(e, "Health"))
}

func TestNamedAddDefaultConstructs(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	require.True(t, w.AddComponentNamed(e, "Health"))
	assert.True(t, ecs.Has[Health](w, e))
	assert.Equal(t, Health{}, *ecs.Get[Health](w, e))

	// The typed and named views are the same storage.
	got := w.ComponentNamed(e, "Health")
	require.NotNil(t, got)
	got.(*Health).Current = 42
	assert.Equal(t, 42, ecs.Get[Health](w, e).Current)
}

func TestNamedAddUpdatesSignature(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	bit, ok := w.ComponentTypeNamed("Health")
	require.True(t, ok)

	w.AddComponentNamed(e, "Health")
	assert.True(t, w.Signature(e).Test(bit))

	w.RemoveComponentNamed(e, "Health")
	assert.False(t, w.Signature(e).Test(bit))
}

func TestNamedAddDuplicatePanics(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	w.AddComponentNamed(e, "Health")
	assert.Panics(t, func() { w.AddComponentNamed(e, "Health") })
}

func TestEntitiesWithComponentActiveFilter(t *testing.T) {
	w := newTestWorld()

	on := w.CreateEntity()
	off := w.CreateEntity()
	plain := w.CreateEntity()

	ecs.Add(w, on, Tile{Enabled: true})
	ecs.Add(w, off, Tile{Enabled: false})
	ecs.Add(w, plain, Health{Current: 1, Max: 1})

	assert.Equal(t, []ecs.Entity{on}, w.EntitiesWithComponent("Tile"))

	// Components without an Active method are always included.
	assert.Equal(t, []ecs.Entity{plain}, w.EntitiesWithComponent("Health"))
}

func TestEntitiesWithComponentAscending(t *testing.T) {
	w := newTestWorld()

	var created []ecs.Entity
	for i := 0; i < 6; i++ {
		created = append(created, w.CreateEntity())
	}
	// Attach in scrambled order; storage order follows attachment.
	for _, idx := range []int{3, 0, 5, 1, 4, 2} {
		ecs.Add(w, created[idx], Scriptable{Enabled: true})
	}

	assert.Equal(t, created, w.EntitiesWithComponent("Scriptable"))
}

func TestComponentsOf(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	ecs.Add(w, e, Velocity{})
	ecs.Add(w, e, Transform{})

	// Type-id order, not attachment order.
	assert.Equal(t, []string{"Transform", "Velocity"}, w.ComponentsOf(e))
}

func TestCollectStats(t *testing.T) {
	w := newTestWorld()

	e := w.CreateEntity()
	ecs.Add(w, e, Transform{})
	ecs.Add(w, e, Velocity{})
	w.CreateEntity()

	stats := w.CollectStats()
	assert.Equal(t, 2, stats.LiveEntities)
	assert.Equal(t, 6, stats.ComponentTypes)

	byName := make(map[string]int)
	for _, st := range stats.Stores {
		byName[st.Name] = st.Count
	}
	assert.Equal(t, 1, byName["Transform"])
	assert.Equal(t, 1, byName["Velocity"])
	assert.Equal(t, 0, byName["Health"])
}

func TestSentinelNeverCollides(t *testing.T) {
	w := ecs.NewWorld(ecs.Config{MaxEntities: 64})

	// Every issued id is distinct from None, so relation fields can use
	// None as "no occupant" safely.
	for i := 0; i < 63; i++ {
		assert.NotEqual(t, ecs.None, w.CreateEntity())
	}
}
