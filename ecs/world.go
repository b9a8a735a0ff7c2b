// Package ecs is the runtime core of the engine: a bounded entity pool,
// packed per-type component storage with entity<->slot indirection, and
// signature-based system dispatch. All operations are single-threaded;
// the package does no locking and expects to run on the game loop.
package ecs

import (
	"reflect"
	"slices"
)

// World is the composition root binding the entity registry, the
// component type registry and the system registry. It is the only entry
// point game code needs; construct one per independent simulation and
// pass it explicitly to whoever needs it.
type World struct {
	cfg        Config
	entities   *entityRegistry
	components *componentRegistry
	systems    *systemRegistry
}

// NewWorld builds an empty world sized by cfg.
func NewWorld(cfg Config) *World {
	cfg = cfg.withDefaults()
	return &World{
		cfg:        cfg,
		entities:   newEntityRegistry(cfg.MaxEntities),
		components: newComponentRegistry(cfg.MaxComponentTypes, cfg.MaxEntities),
		systems:    newSystemRegistry(cfg.MaxEntities),
	}
}

// Config returns the world's effective configuration.
func (w *World) Config() Config { return w.cfg }

// CreateEntity allocates a fresh entity handle. Panics when the pool is
// exhausted.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity reclaims the handle, drops every component the entity
// holds and removes it from every system's matched set, in that order:
// by the time systems are notified the components are already gone.
func (w *World) DestroyEntity(e Entity) {
	w.entities.destroy(e)
	w.components.entityDestroyed(e)
	w.systems.entityDestroyed(e)
}

// Alive reports whether e is a currently live handle.
func (w *World) Alive(e Entity) bool {
	return w.entities.alive(e)
}

// LiveCount returns the number of live entities.
func (w *World) LiveCount() int {
	return w.entities.liveCount
}

// Add attaches a component value to e. This runs the three-step
// protocol that keeps the world consistent: storage mutation, signature
// read-modify-write, then system membership re-evaluation.
func Add[T any](w *World, e Entity, value T) {
	st := StoreOf[T](w)
	st.Add(e, value)
	w.signatureChanged(e, st.bit, true)
}

// Remove detaches e's T component. Panics if e holds none.
func Remove[T any](w *World, e Entity) {
	st := StoreOf[T](w)
	st.Remove(e)
	w.signatureChanged(e, st.bit, false)
}

// Get returns a pointer to e's T component, panicking when absent.
func Get[T any](w *World, e Entity) *T {
	return StoreOf[T](w).Get(e)
}

// Lookup returns a pointer to e's T component, or (nil, false).
func Lookup[T any](w *World, e Entity) (*T, bool) {
	return StoreOf[T](w).Lookup(e)
}

// Has reports whether e holds a T component.
func Has[T any](w *World, e Entity) bool {
	return StoreOf[T](w).Has(e)
}

// EntityOf resolves a component pointer back to its owning entity.
// Valid only while the pointer is current: any later Add or Remove of T
// may relocate storage.
func EntityOf[T any](w *World, ptr *T) (Entity, bool) {
	return StoreOf[T](w).EntityOf(ptr)
}

// signatureChanged applies one bit flip to e's signature and pushes the
// new signature through system membership.
func (w *World) signatureChanged(e Entity, bit ComponentType, set bool) {
	sig := w.entities.signature(e)
	if set {
		sig = sig.Set(bit)
	} else {
		sig = sig.Clear(bit)
	}
	w.entities.setSignature(e, sig)
	w.systems.entitySignatureChanged(e, sig)
}

// addComponentValue is the type-erased add used by Commands. Pointer
// values are dereferenced so callers may hand either T or *T.
func (w *World) addComponentValue(e Entity, value any) {
	if v := reflect.ValueOf(value); v.Kind() == reflect.Pointer && !v.IsNil() {
		value = v.Elem().Interface()
	}
	rec := w.components.recordOfValue(value)
	rec.store.addValue(e, value)
	w.signatureChanged(e, rec.bit, true)
}

// removeComponentBit is the type-erased remove used by Commands.
// Removal of a component the entity no longer holds is a no-op: the
// entity may have lost it between queueing and flush.
func (w *World) removeComponentBit(e Entity, bit ComponentType) {
	rec := w.components.ordered[bit]
	if !rec.store.removeEntity(e) {
		return
	}
	w.signatureChanged(e, rec.bit, false)
}

// Signature returns e's current component signature.
func (w *World) Signature(e Entity) Signature {
	return w.entities.signature(e)
}

// Name-keyed dynamic access. This is the scripting-facing surface: it
// never panics on unregistered names or absent components, it returns
// sentinels instead.

// AddComponentNamed default-constructs the named component on e and
// reports whether the name was registered. Adding a duplicate component
// remains a programmer error, exactly as in the typed API.
func (w *World) AddComponentNamed(e Entity, name string) bool {
	rec, ok := w.components.recordOf(name)
	if !ok {
		return false
	}
	rec.store.addDefault(e)
	w.signatureChanged(e, rec.bit, true)
	return true
}

// RemoveComponentNamed removes the named component from e, reporting
// whether anything was removed. Unregistered names and absent
// components are non-fatal.
func (w *World) RemoveComponentNamed(e Entity, name string) bool {
	rec, ok := w.components.recordOf(name)
	if !ok {
		return false
	}
	if !rec.store.removeEntity(e) {
		return false
	}
	w.signatureChanged(e, rec.bit, false)
	return true
}

// ComponentNamed returns a pointer to e's named component as an untyped
// value, or nil when the name is unregistered or the entity holds none.
// Callers must nil-check.
func (w *World) ComponentNamed(e Entity, name string) any {
	rec, ok := w.components.recordOf(name)
	if !ok {
		return nil
	}
	return rec.store.get(e)
}

// HasComponentNamed reports whether e holds the named component; false
// for unregistered names.
func (w *World) HasComponentNamed(e Entity, name string) bool {
	rec, ok := w.components.recordOf(name)
	if !ok {
		return false
	}
	return rec.store.has(e)
}

// ComponentTypeNamed returns the type id registered under name.
func (w *World) ComponentTypeNamed(name string) (ComponentType, bool) {
	rec, ok := w.components.recordOf(name)
	if !ok {
		return 0, false
	}
	return rec.bit, true
}

// ComponentNames returns all registered component names in type-id
// order.
func (w *World) ComponentNames() []string {
	return w.components.names()
}

// ComponentsOf returns the names of the components e currently holds,
// in type-id order.
func (w *World) ComponentsOf(e Entity) []string {
	var out []string
	for _, rec := range w.components.ordered {
		if rec.store.has(e) {
			out = append(out, rec.name)
		}
	}
	return out
}

// SignatureFor builds a signature from component names. The second
// result is false when any name is unregistered.
func (w *World) SignatureFor(names ...string) (Signature, bool) {
	var sig Signature
	for _, name := range names {
		rec, ok := w.components.recordOf(name)
		if !ok {
			return 0, false
		}
		sig = sig.Set(rec.bit)
	}
	return sig, true
}

// EntitiesWith returns every live entity whose signature contains all
// of sig's bits, in ascending id order. This is a linear scan over the
// bounded entity range, not a signature index; the pool is small enough
// that the scan is cheap and always current.
func (w *World) EntitiesWith(sig Signature) []Entity {
	out := make([]Entity, 0, 64)
	for e := Entity(1); int(e) < w.cfg.MaxEntities; e++ {
		if !w.entities.alive(e) {
			continue
		}
		if w.entities.signature(e).ContainsAll(sig) {
			out = append(out, e)
		}
	}
	return out
}

// EntitiesWithComponent returns the entities holding the named
// component, in ascending id order, skipping entities whose component
// reports inactive (see Activatable). Unregistered names yield an empty
// result.
func (w *World) EntitiesWithComponent(name string) []Entity {
	rec, ok := w.components.recordOf(name)
	if !ok {
		return nil
	}
	owners := rec.store.owners()
	out := make([]Entity, 0, len(owners))
	for _, e := range owners {
		if rec.store.active(e) {
			out = append(out, e)
		}
	}
	slices.Sort(out)
	return out
}

// SystemEntities returns a copy of the system's current matched set.
func (w *World) SystemEntities(sys System) []Entity {
	matched, err := w.systems.matchedOf(sys)
	if err != nil {
		panic(err.Error())
	}
	return slices.Clone(matched.dense)
}

// Update executes all registered systems once in registration order,
// then flushes the commands they deferred.
func (w *World) Update(dt float64) {
	w.systems.run(w, dt)
}

// SystemStatsSnapshot returns execution statistics for every registered
// system, in registration order.
func (w *World) SystemStatsSnapshot() []SystemStats {
	return w.systems.stats()
}
