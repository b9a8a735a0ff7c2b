package ecs

// Entity is an opaque handle identifying one game object. Handles are
// small integers drawn from a bounded pool and may be reused after
// DestroyEntity; there is no generation counter, so holding a handle
// across a destroy is the caller's responsibility.
type Entity uint32

// None is the reserved "no entity" sentinel. The pool never issues 0,
// so components can use None freely in relations (tile occupant,
// occupied tile and the like) without colliding with a live handle.
const None Entity = 0

const (
	// DefaultMaxEntities bounds the number of simultaneously live
	// entities when Config.MaxEntities is zero.
	DefaultMaxEntities = 3000

	// DefaultMaxComponentTypes bounds the number of distinct component
	// types when Config.MaxComponentTypes is zero.
	DefaultMaxComponentTypes = 20
)

// Config sizes a World. Zero fields take the package defaults.
type Config struct {
	MaxEntities       int
	MaxComponentTypes int
}

func (c Config) withDefaults() Config {
	if c.MaxEntities <= 0 {
		c.MaxEntities = DefaultMaxEntities
	}
	if c.MaxComponentTypes <= 0 {
		c.MaxComponentTypes = DefaultMaxComponentTypes
	}
	return c
}
