package ecs

import (
	"fmt"
	"reflect"
	"time"
)

// System is a behavior that operates on all entities matching a
// required signature. Systems receive their matched entities through
// the Frame each update.
type System interface {
	Execute(frame *Frame)
}

// Frame carries per-update context into a system: the delta time, the
// world, the system's matched entities and the deferred command buffer.
// Entities is a snapshot taken before the system runs, so structural
// changes queued on Commands cannot invalidate the iteration.
type Frame struct {
	DeltaTime float64
	World     *World
	Entities  []Entity
	Commands  *Commands
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	MatchedCount   int
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemRecord struct {
	sys       System
	typ       reflect.Type
	name      string
	signature Signature
	matched   *entitySet
	scratch   []Entity

	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	lastDuration   time.Duration
	totalDuration  time.Duration
}

// systemRegistry owns system instances, their required signatures and
// their matched-entity sets. Membership is maintained incrementally on
// every signature change, never by rescanning.
type systemRegistry struct {
	capacity int
	records  []*systemRecord
	byType   map[reflect.Type]*systemRecord
}

func newSystemRegistry(capacity int) *systemRegistry {
	return &systemRegistry{
		capacity: capacity,
		byType:   make(map[reflect.Type]*systemRecord),
	}
}

// RegisterSystem stores the system instance. Systems run in
// registration order; registering the same system type twice is a
// programmer error.
func RegisterSystem(w *World, sys System) {
	r := w.systems
	t := reflect.TypeOf(sys)
	if _, ok := r.byType[t]; ok {
		panic("system type " + t.String() + " registered twice")
	}

	nameType := t
	if nameType.Kind() == reflect.Ptr {
		nameType = nameType.Elem()
	}

	rec := &systemRecord{
		sys:         sys,
		typ:         t,
		name:        nameType.Name(),
		matched:     newEntitySet(r.capacity),
		minDuration: time.Duration(1<<63 - 1),
	}
	r.byType[t] = rec
	r.records = append(r.records, rec)
}

// SetSystemSignature associates the required signature with system type
// S and rebuilds its matched set against the current world state.
// Panics if S was never registered.
func SetSystemSignature[S System](w *World, sig Signature) {
	t := reflect.TypeFor[S]()
	rec, ok := w.systems.byType[t]
	if !ok {
		panic("system type " + t.String() + " not registered")
	}
	rec.signature = sig

	// One explicit rescan so the membership invariant holds even when
	// the signature is set after entities already exist. From here on
	// the set is maintained incrementally.
	for e := Entity(1); int(e) < w.cfg.MaxEntities; e++ {
		if !w.entities.alive(e) {
			continue
		}
		if w.entities.signature(e).ContainsAll(sig) {
			rec.matched.add(e)
		} else {
			rec.matched.remove(e)
		}
	}
}

// GetSystem returns the registered instance of system type S.
func GetSystem[S System](w *World) S {
	t := reflect.TypeFor[S]()
	rec, ok := w.systems.byType[t]
	if !ok {
		panic("system type " + t.String() + " not registered")
	}
	return rec.sys.(S)
}

// entitySignatureChanged re-evaluates the entity against every system.
// This is the sole mechanism keeping matched sets current; the facade
// calls it after every component add and remove.
func (r *systemRegistry) entitySignatureChanged(e Entity, sig Signature) {
	for _, rec := range r.records {
		if sig.ContainsAll(rec.signature) {
			rec.matched.add(e)
		} else {
			rec.matched.remove(e)
		}
	}
}

// entityDestroyed drops the entity from every matched set, present or
// not.
func (r *systemRegistry) entityDestroyed(e Entity) {
	for _, rec := range r.records {
		rec.matched.remove(e)
	}
}

// run executes all systems once in registration order, then flushes the
// deferred commands the systems queued.
func (r *systemRegistry) run(w *World, dt float64) {
	frame := &Frame{
		DeltaTime: dt,
		World:     w,
		Commands:  newCommands(),
	}

	for _, rec := range r.records {
		rec.scratch = append(rec.scratch[:0], rec.matched.dense...)
		frame.Entities = rec.scratch

		start := time.Now()
		rec.sys.Execute(frame)
		duration := time.Since(start)

		rec.executionCount++
		rec.lastDuration = duration
		rec.totalDuration += duration
		if duration < rec.minDuration {
			rec.minDuration = duration
		}
		if duration > rec.maxDuration {
			rec.maxDuration = duration
		}
	}

	frame.Commands.flush(w)
}

func (r *systemRegistry) stats() []SystemStats {
	out := make([]SystemStats, len(r.records))
	for i, rec := range r.records {
		avg := time.Duration(0)
		if rec.executionCount > 0 {
			avg = rec.totalDuration / time.Duration(rec.executionCount)
		}
		out[i] = SystemStats{
			Name:           rec.name,
			MatchedCount:   rec.matched.len(),
			ExecutionCount: rec.executionCount,
			MinDuration:    rec.minDuration,
			MaxDuration:    rec.maxDuration,
			AvgDuration:    avg,
			LastDuration:   rec.lastDuration,
			TotalDuration:  rec.totalDuration,
		}
	}
	return out
}

func (r *systemRegistry) matchedOf(sys System) (*entitySet, error) {
	rec, ok := r.byType[reflect.TypeOf(sys)]
	if !ok {
		return nil, fmt.Errorf("system type %T not registered", sys)
	}
	return rec.matched, nil
}
