package ecs

import "fmt"

// entityRegistry issues and recycles entity handles and tracks each
// entity's component signature. Handle 0 is permanently reserved as
// None: the free pool is seeded with ids [1, max) only.
type entityRegistry struct {
	max        int
	free       []Entity
	signatures []Signature
	live       []bool
	liveCount  int
}

func newEntityRegistry(max int) *entityRegistry {
	r := &entityRegistry{
		max:        max,
		free:       make([]Entity, 0, max-1),
		signatures: make([]Signature, max),
		live:       make([]bool, max),
	}
	// Seed descending so ids pop in ascending order.
	for id := max - 1; id >= 1; id-- {
		r.free = append(r.free, Entity(id))
	}
	return r
}

// create pops the next free id. Exhausting the pool is a fatal
// programmer error: the caller has exceeded the configured maximum of
// simultaneously live entities.
func (r *entityRegistry) create() Entity {
	if len(r.free) == 0 {
		panic(fmt.Sprintf("entity pool exhausted: %d live entities (max %d)", r.liveCount, r.max-1))
	}
	e := r.free[len(r.free)-1]
	r.free = r.free[:len(r.free)-1]
	r.live[e] = true
	r.liveCount++
	return e
}

// destroy resets the entity's signature and returns its id to the free
// pool. Destroying an out-of-range or already-dead id panics; silently
// accepting a double destroy would put a duplicate id into the pool and
// break the uniqueness guarantee for every later create.
func (r *entityRegistry) destroy(e Entity) {
	r.checkRange(e)
	if !r.live[e] {
		panic(fmt.Sprintf("destroy of dead entity %d", e))
	}
	r.signatures[e] = 0
	r.live[e] = false
	r.liveCount--
	r.free = append(r.free, e)
}

func (r *entityRegistry) signature(e Entity) Signature {
	r.checkRange(e)
	return r.signatures[e]
}

func (r *entityRegistry) setSignature(e Entity, sig Signature) {
	r.checkRange(e)
	r.signatures[e] = sig
}

// alive is the non-fatal liveness check used by queries and the debug
// UI. Unlike the mutating operations it tolerates any id.
func (r *entityRegistry) alive(e Entity) bool {
	if e == None || int(e) >= r.max {
		return false
	}
	return r.live[e]
}

func (r *entityRegistry) checkRange(e Entity) {
	if e == None || int(e) >= r.max {
		panic(fmt.Sprintf("entity %d out of range [1, %d)", e, r.max))
	}
}
