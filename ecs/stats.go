package ecs

// StoreStats describes one component storage.
type StoreStats struct {
	Name  string
	Bit   ComponentType
	Count int
}

// WorldStats is a point-in-time summary of the world, collected for
// diagnostics and the debug UI.
type WorldStats struct {
	LiveEntities   int
	MaxEntities    int
	ComponentTypes int
	SystemCount    int
	Stores         []StoreStats
}

// CollectStats gathers a summary of the world's current population.
func (w *World) CollectStats() WorldStats {
	stats := WorldStats{
		LiveEntities:   w.entities.liveCount,
		MaxEntities:    w.cfg.MaxEntities,
		ComponentTypes: len(w.components.ordered),
		SystemCount:    len(w.systems.records),
		Stores:         make([]StoreStats, 0, len(w.components.ordered)),
	}
	for _, rec := range w.components.ordered {
		stats.Stores = append(stats.Stores, StoreStats{
			Name:  rec.name,
			Bit:   rec.bit,
			Count: rec.store.count(),
		})
	}
	return stats
}
