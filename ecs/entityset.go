package ecs

import "github.com/kamstrup/intmap"

// entitySet is a dense set of entities: a packed slice for iteration
// plus an entity->position index for O(1) insert and erase. Erase is
// swap-and-pop, same as component storage, so membership churn never
// fragments the slice. System registries use one per system for the
// matched-entity set.
type entitySet struct {
	dense []Entity
	index *intmap.Map[Entity, uint32]
}

func newEntitySet(capacity int) *entitySet {
	return &entitySet{
		dense: make([]Entity, 0, capacity),
		index: intmap.New[Entity, uint32](capacity),
	}
}

// add inserts e, reporting whether it was absent.
func (s *entitySet) add(e Entity) bool {
	if _, ok := s.index.Get(e); ok {
		return false
	}
	s.index.Put(e, uint32(len(s.dense)))
	s.dense = append(s.dense, e)
	return true
}

// remove erases e, reporting whether it was present.
func (s *entitySet) remove(e Entity) bool {
	pos, ok := s.index.Get(e)
	if !ok {
		return false
	}
	last := uint32(len(s.dense) - 1)
	if pos != last {
		moved := s.dense[last]
		s.dense[pos] = moved
		s.index.Put(moved, pos)
	}
	s.dense = s.dense[:last]
	s.index.Del(e)
	return true
}

func (s *entitySet) has(e Entity) bool {
	_, ok := s.index.Get(e)
	return ok
}

func (s *entitySet) len() int { return len(s.dense) }
