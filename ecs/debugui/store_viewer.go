package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/grit/ecs"
)

// StoreViewer tables the registered component stores with their bit and
// live component count, with a bar visualizing relative occupancy.
type StoreViewer struct {
	sortColumn    int
	sortAscending bool
}

func NewStoreViewer() *StoreViewer {
	return &StoreViewer{sortColumn: 2, sortAscending: false}
}

func (sv *StoreViewer) Render(w *ecs.World) {
	if !imgui.BeginV("Store Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := w.CollectStats()
	stores := stats.Stores

	maxCount := 0
	for _, s := range stores {
		if s.Count > maxCount {
			maxCount = s.Count
		}
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("StoreTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component")
		imgui.TableSetupColumn("Bit")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sv.sortColumn = int(spec.ColumnIndex())
			sv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		sv.sortStores(stores)

		for _, s := range stores {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(s.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", s.Bit))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", s.Count))

			if maxCount > 0 {
				barWidth := float32(s.Count) / float32(maxCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				clr := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), clr)
			}
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Live entities: %d / %d", stats.LiveEntities, stats.MaxEntities))

	imgui.End()
}

func (sv *StoreViewer) sortStores(stores []ecs.StoreStats) {
	sort.Slice(stores, func(i, j int) bool {
		a, b := stores[i], stores[j]
		var less bool

		switch sv.sortColumn {
		case 0:
			less = a.Name < b.Name
		case 1:
			less = a.Bit < b.Bit
		default:
			less = a.Count < b.Count
		}

		if !sv.sortAscending {
			return !less
		}
		return less
	})
}
