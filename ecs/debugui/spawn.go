package debugui

import "github.com/plus3/grit/ecs"

// Spawn creates one entity per inspection panel. Each panel lives in an
// ImguiItem closure; destroying the returned entities removes the UI.
func Spawn(w *ecs.World) []ecs.Entity {
	browser := NewEntityBrowser(100)
	inspector := NewComponentInspector()
	stores := NewStoreViewer()
	sigs := NewSignatureDebugger()
	perf := NewPerformanceStats(120)

	panels := []func(){
		func() { browser.Render(w) },
		func() { inspector.Render(w, browser.Selected()) },
		func() { stores.Render(w) },
		func() { sigs.Render(w) },
		func() { perf.Render(w) },
	}

	entities := make([]ecs.Entity, 0, len(panels))
	for _, render := range panels {
		e := w.CreateEntity()
		ecs.Add(w, e, ImguiItem{Render: render})
		entities = append(entities, e)
	}
	return entities
}
