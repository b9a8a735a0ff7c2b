package ecs

import (
	"fmt"
	"reflect"
)

// storeRecord binds one registered component type to its id, its
// registration name and its storage.
type storeRecord struct {
	name  string
	bit   ComponentType
	typ   reflect.Type
	store componentStore
}

// componentRegistry maps component type identity to small integer ids
// and to storage. Types are keyed two ways: by reflect.Type for the
// generic API and by the stable name chosen at registration time for
// the dynamic (scripting-facing) API.
type componentRegistry struct {
	maxTypes int
	capacity int
	byType   map[reflect.Type]*storeRecord
	byName   map[string]*storeRecord
	ordered  []*storeRecord // indexed by ComponentType
}

func newComponentRegistry(maxTypes, capacity int) *componentRegistry {
	if maxTypes > signatureWidth {
		panic(fmt.Sprintf("max component types %d exceeds signature width %d", maxTypes, signatureWidth))
	}
	return &componentRegistry{
		maxTypes: maxTypes,
		capacity: capacity,
		byType:   make(map[reflect.Type]*storeRecord, maxTypes),
		byName:   make(map[string]*storeRecord, maxTypes),
		ordered:  make([]*storeRecord, 0, maxTypes),
	}
}

// RegisterComponent assigns the next sequential type id to T, keyed by
// the given stable name, and creates its storage. Each type receives
// exactly one id for the process lifetime; registering a type or name
// twice, or exceeding the configured type limit, is a programmer error.
func RegisterComponent[T any](w *World, name string) ComponentType {
	r := w.components
	t := reflect.TypeFor[T]()
	if _, ok := r.byType[t]; ok {
		panic("component type " + t.String() + " registered twice")
	}
	if _, ok := r.byName[name]; ok {
		panic("component name " + name + " registered twice")
	}
	if len(r.ordered) >= r.maxTypes {
		panic(fmt.Sprintf("component type limit %d reached registering %s", r.maxTypes, name))
	}

	bit := ComponentType(len(r.ordered))
	rec := &storeRecord{
		name:  name,
		bit:   bit,
		typ:   t,
		store: newStore[T](name, bit, r.capacity),
	}
	r.byType[t] = rec
	r.byName[name] = rec
	r.ordered = append(r.ordered, rec)
	return bit
}

// StoreOf returns the storage for T. Panics if T was never registered.
func StoreOf[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()
	rec, ok := w.components.byType[t]
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return rec.store.(*Store[T])
}

// Bit returns the type id assigned to T at registration. Panics if T
// was never registered.
func Bit[T any](w *World) ComponentType {
	t := reflect.TypeFor[T]()
	rec, ok := w.components.byType[t]
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return rec.bit
}

// recordOf is the non-panicking lookup used by the dynamic API.
func (r *componentRegistry) recordOf(name string) (*storeRecord, bool) {
	rec, ok := r.byName[name]
	return rec, ok
}

func (r *componentRegistry) recordOfValue(value any) *storeRecord {
	t := reflect.TypeOf(value)
	rec, ok := r.byType[t]
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return rec
}

// entityDestroyed tells every storage to drop the entity's component.
// Storages without one treat it as a no-op.
func (r *componentRegistry) entityDestroyed(e Entity) {
	for _, rec := range r.ordered {
		rec.store.removeEntity(e)
	}
}

// names returns all registered component names in type-id order.
func (r *componentRegistry) names() []string {
	out := make([]string, len(r.ordered))
	for i, rec := range r.ordered {
		out[i] = rec.name
	}
	return out
}
