package ecs

// Commands buffers structural mutations queued during system execution
// and applies them after all systems have run. Systems iterate snapshot
// slices, so deferring spawns, destroys and component changes keeps the
// frame free of mid-iteration storage relocation.
type Commands struct {
	spawns   []spawnCommand
	destroys []Entity
	adds     []addCommand
	removes  []removeCommand
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	components []any
}

type addCommand struct {
	entity Entity
	value  any
}

type removeCommand struct {
	entity Entity
	bit    ComponentType
}

// Spawn queues creation of a new entity holding the given component
// values. The values must be of registered component types.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Destroy queues an entity destruction.
func (c *Commands) Destroy(e Entity) {
	c.destroys = append(c.destroys, e)
}

// Add queues a component addition. The value must be of a registered
// component type.
func (c *Commands) Add(e Entity, value any) {
	c.adds = append(c.adds, addCommand{entity: e, value: value})
}

// Remove queues a component removal by type id.
func (c *Commands) Remove(e Entity, t ComponentType) {
	c.removes = append(c.removes, removeCommand{entity: e, bit: t})
}

// Defer queues an arbitrary function to run after the structural
// commands have been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// flush applies all queued commands against the world and resets the
// buffer. Destroys apply first; later commands against a destroyed
// entity are dropped rather than touching a reissued handle.
func (c *Commands) flush(w *World) {
	destroyed := make(map[Entity]bool, len(c.destroys))

	for _, e := range c.destroys {
		// Several systems may queue the same entity in one frame.
		if destroyed[e] {
			continue
		}
		w.DestroyEntity(e)
		destroyed[e] = true
	}

	for _, cmd := range c.removes {
		if destroyed[cmd.entity] {
			continue
		}
		w.removeComponentBit(cmd.entity, cmd.bit)
	}

	for _, cmd := range c.adds {
		if destroyed[cmd.entity] {
			continue
		}
		w.addComponentValue(cmd.entity, cmd.value)
	}

	for _, cmd := range c.spawns {
		e := w.CreateEntity()
		for _, value := range cmd.components {
			w.addComponentValue(e, value)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.destroys = c.destroys[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
