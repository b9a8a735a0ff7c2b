package ecs

import (
	"fmt"
	"iter"

	"github.com/kamstrup/intmap"
)

// Activatable is implemented by component types that carry an enabled
// flag. Name-keyed entity queries skip entities whose component reports
// inactive; this applies uniformly to every component kind that opts in.
type Activatable interface {
	Active() bool
}

// componentStore is the type-erased face of a Store. The component
// registry holds one per registered type for name-keyed dynamic access
// and destroy broadcasts.
type componentStore interface {
	componentName() string
	componentBit() ComponentType

	addDefault(e Entity)
	addValue(e Entity, value any)
	removeEntity(e Entity) bool
	get(e Entity) any
	has(e Entity) bool
	active(e Entity) bool
	owners() []Entity
	count() int
}

// Store holds every component of type T in a packed array with
// entity<->slot indirection. The packed array never has holes: removal
// moves the last live element into the vacated slot (swap-and-pop), so
// iteration is O(live count) and cache-dense.
type Store[T any] struct {
	name  string
	bit   ComponentType
	dense []T
	owner []Entity // slot -> entity, parallel to dense
	slots *intmap.Map[Entity, uint32]
}

func newStore[T any](name string, bit ComponentType, capacity int) *Store[T] {
	return &Store[T]{
		name:  name,
		bit:   bit,
		dense: make([]T, 0, capacity),
		owner: make([]Entity, 0, capacity),
		slots: intmap.New[Entity, uint32](capacity),
	}
}

// Add appends the value at the next packed slot. Adding to an entity
// that already holds a T is a programmer error; remove first to
// overwrite.
func (s *Store[T]) Add(e Entity, value T) {
	if _, ok := s.slots.Get(e); ok {
		panic(fmt.Sprintf("entity %d already has component %s", e, s.name))
	}
	s.slots.Put(e, uint32(len(s.dense)))
	s.dense = append(s.dense, value)
	s.owner = append(s.owner, e)
}

// Remove drops e's component. Panics if e holds no T.
func (s *Store[T]) Remove(e Entity) {
	if !s.removeEntity(e) {
		panic(fmt.Sprintf("entity %d has no component %s to remove", e, s.name))
	}
}

// Get returns a pointer to e's component. Panics if e holds no T; use
// Lookup when absence is an expected condition.
func (s *Store[T]) Get(e Entity) *T {
	ptr, ok := s.Lookup(e)
	if !ok {
		panic(fmt.Sprintf("entity %d has no component %s", e, s.name))
	}
	return ptr
}

// Lookup returns a pointer to e's component, or (nil, false) when e
// holds none. The pointer stays valid only until the next Add or Remove
// on this store.
func (s *Store[T]) Lookup(e Entity) (*T, bool) {
	slot, ok := s.slots.Get(e)
	if !ok {
		return nil, false
	}
	return &s.dense[slot], true
}

// Has reports whether e holds a T.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.slots.Get(e)
	return ok
}

// Len returns the number of live components.
func (s *Store[T]) Len() int {
	return len(s.dense)
}

// All iterates the packed array in slot order, yielding each owning
// entity and a pointer to its component. Do not add or remove T
// components during iteration; defer structural changes via Commands.
func (s *Store[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for i := range s.dense {
			if !yield(s.owner[i], &s.dense[i]) {
				return
			}
		}
	}
}

// EntityOf resolves a component pointer back to its owning entity by
// comparing addresses against the packed array. Only valid while the
// pointer is current: any Add or Remove of T may relocate components.
func (s *Store[T]) EntityOf(ptr *T) (Entity, bool) {
	for i := range s.dense {
		if &s.dense[i] == ptr {
			return s.owner[i], true
		}
	}
	return None, false
}

// componentStore implementation (the name-keyed dynamic path).

func (s *Store[T]) componentName() string       { return s.name }
func (s *Store[T]) componentBit() ComponentType { return s.bit }

func (s *Store[T]) addDefault(e Entity) {
	var zero T
	s.Add(e, zero)
}

func (s *Store[T]) addValue(e Entity, value any) {
	v, ok := value.(T)
	if !ok {
		panic(fmt.Sprintf("component %s: value has wrong type %T", s.name, value))
	}
	s.Add(e, v)
}

// removeEntity drops e's component if present and reports whether it
// did; used by the destroy broadcast where absence is a no-op.
func (s *Store[T]) removeEntity(e Entity) bool {
	slot, ok := s.slots.Get(e)
	if !ok {
		return false
	}
	last := uint32(len(s.dense) - 1)
	if slot != last {
		s.dense[slot] = s.dense[last]
		moved := s.owner[last]
		s.owner[slot] = moved
		s.slots.Put(moved, slot)
	}
	s.dense = s.dense[:last]
	s.owner = s.owner[:last]
	s.slots.Del(e)
	return true
}

func (s *Store[T]) get(e Entity) any {
	ptr, ok := s.Lookup(e)
	if !ok {
		return nil
	}
	return ptr
}

func (s *Store[T]) has(e Entity) bool { return s.Has(e) }

func (s *Store[T]) active(e Entity) bool {
	ptr, ok := s.Lookup(e)
	if !ok {
		return false
	}
	if a, ok := any(ptr).(Activatable); ok {
		return a.Active()
	}
	return true
}

func (s *Store[T]) owners() []Entity { return s.owner }
func (s *Store[T]) count() int       { return len(s.dense) }
