package ecs_test

import (
	"testing"

	"github.com/plus3/grit/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNeverIssuesZero(t *testing.T) {
	w := ecs.NewWorld(ecs.Config{MaxEntities: 16})

	for i := 0; i < 15; i++ {
		e := w.CreateEntity()
		assert.NotEqual(t, ecs.None, e)
	}
}

func TestCreateUniqueIds(t *testing.T) {
	w := ecs.NewWorld(ecs.Config{MaxEntities: 256})

	seen := make(map[ecs.Entity]bool)
	live := make([]ecs.Entity, 0, 255)

	// Interleave creates and destroys; no two simultaneously-live
	// entities may ever share an id.
	for round := 0; round < 10; round++ {
		for i := 0; i < 20; i++ {
			e := w.CreateEntity()
			require.False(t, seen[e], "id %d issued while still live", e)
			seen[e] = true
			live = append(live, e)
		}
		for i := 0; i < 10; i++ {
			e := live[len(live)-1]
			live = live[:len(live)-1]
			w.DestroyEntity(e)
			delete(seen, e)
		}
	}
}

func TestCreatePoolExhausted(t *testing.T) {
	const max = 8
	w := ecs.NewWorld(ecs.Config{MaxEntities: max})

	// Pool holds ids [1, max).
	for i := 0; i < max-1; i++ {
		w.CreateEntity()
	}
	assert.Panics(t, func() { w.CreateEntity() })
}

func TestDestroyedIdIsReissued(t *testing.T) {
	w := ecs.NewWorld(ecs.Config{MaxEntities: 4})

	a := w.CreateEntity()
	b := w.CreateEntity()
	c := w.CreateEntity()
	assert.Panics(t, func() { w.CreateEntity() })

	w.DestroyEntity(b)
	d := w.CreateEntity()
	assert.Equal(t, b, d, "freed id should be reissued")
	assert.True(t, w.Alive(a))
	assert.True(t, w.Alive(c))
}

func TestDestroyOutOfRange(t *testing.T) {
	w := ecs.NewWorld(ecs.Config{MaxEntities: 8})

	assert.Panics(t, func() { w.DestroyEntity(ecs.None) })
	assert.Panics(t, func() { w.DestroyEntity(ecs.Entity(8)) })
	assert.Panics(t, func() { w.DestroyEntity(ecs.Entity(9999)) })
}

func TestDoubleDestroyPanics(t *testing.T) {
	w := ecs.NewWorld(ecs.Config{MaxEntities: 8})

	e := w.CreateEntity()
	w.DestroyEntity(e)
	assert.Panics(t, func() { w.DestroyEntity(e) })
}

func TestAliveIsNonFatal(t *testing.T) {
	w := ecs.NewWorld(ecs.Config{MaxEntities: 8})

	assert.False(t, w.Alive(ecs.None))
	assert.False(t, w.Alive(ecs.Entity(7)))
	assert.False(t, w.Alive(ecs.Entity(10000)))

	e := w.CreateEntity()
	assert.True(t, w.Alive(e))
	w.DestroyEntity(e)
	assert.False(t, w.Alive(e))
}

func TestDestroyResetsSignature(t *testing.T) {
	w := newTestWorld()

	e := w.CreateEntity()
	ecs.Add(w, e, Transform{Position: Vec2{1, 2}})
	ecs.Add(w, e, Velocity{DX: 1})
	assert.NotEqual(t, ecs.Signature(0), w.Signature(e))

	w.DestroyEntity(e)

	// The id comes back with a clean signature.
	reused := w.CreateEntity()
	assert.Equal(t, e, reused)
	assert.Equal(t, ecs.Signature(0), w.Signature(reused))
}
