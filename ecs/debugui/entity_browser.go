package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/grit/ecs"
)

type entityInfo struct {
	ID             ecs.Entity
	Signature      ecs.Signature
	ComponentNames []string
	ComponentCount int
}

// EntityBrowser lists live entities with their signature and component
// names, with text filtering and paging.
type EntityBrowser struct {
	entities      []entityInfo
	lastLiveCount int
	sortColumn    int
	sortAscending bool

	selected       ecs.Entity
	filterText     string
	perPage        int
	page           int
}

func NewEntityBrowser(perPage int) *EntityBrowser {
	return &EntityBrowser{
		perPage:       perPage,
		sortAscending: true,
	}
}

// Selected returns the entity picked in the table, or ecs.None.
func (eb *EntityBrowser) Selected() ecs.Entity {
	return eb.selected
}

func (eb *EntityBrowser) Render(w *ecs.World) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildIfNeeded(w)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Signature")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		filtered := eb.filteredEntities()

		start := eb.page * eb.perPage
		if start > len(filtered) {
			start = len(filtered)
			eb.page = start / eb.perPage
		}
		end := start + eb.perPage
		if end > len(filtered) {
			end = len(filtered)
		}

		for _, info := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selected == info.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", info.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = info.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", uint32(info.Signature)))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(info.ComponentNames, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.ComponentCount))
		}

		imgui.EndTable()
	}

	filtered := eb.filteredEntities()
	if len(filtered) > eb.perPage {
		totalPages := (len(filtered) + eb.perPage - 1) / eb.perPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.page+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.page > 0 {
			eb.page--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.page < totalPages-1 {
			eb.page++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

func (eb *EntityBrowser) rebuildIfNeeded(w *ecs.World) {
	if eb.entities != nil && eb.lastLiveCount == w.LiveCount() {
		return
	}
	eb.lastLiveCount = w.LiveCount()

	eb.entities = make([]entityInfo, 0, w.LiveCount())
	for _, e := range w.EntitiesWith(0) {
		names := w.ComponentsOf(e)
		eb.entities = append(eb.entities, entityInfo{
			ID:             e,
			Signature:      w.Signature(e),
			ComponentNames: names,
			ComponentCount: len(names),
		})
	}
	eb.sortEntities()
}

func (eb *EntityBrowser) sortEntities() {
	sort.Slice(eb.entities, func(i, j int) bool {
		a, b := eb.entities[i], eb.entities[j]
		var less bool

		switch eb.sortColumn {
		case 1:
			less = a.Signature < b.Signature
		case 2:
			less = strings.Join(a.ComponentNames, ",") < strings.Join(b.ComponentNames, ",")
		case 3:
			less = a.ComponentCount < b.ComponentCount
		default:
			less = a.ID < b.ID
		}

		if !eb.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowser) filteredEntities() []entityInfo {
	if eb.filterText == "" {
		return eb.entities
	}

	filter := strings.ToLower(eb.filterText)
	filtered := make([]entityInfo, 0, len(eb.entities))
	for _, info := range eb.entities {
		idStr := fmt.Sprintf("%d", info.ID)
		sigStr := fmt.Sprintf("0x%x", uint32(info.Signature))
		namesStr := strings.ToLower(strings.Join(info.ComponentNames, " "))

		if strings.Contains(idStr, filter) ||
			strings.Contains(sigStr, filter) ||
			strings.Contains(namesStr, filter) {
			filtered = append(filtered, info)
		}
	}
	return filtered
}
