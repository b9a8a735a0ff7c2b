package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/grit/ecs"
)

// SignatureDebugger builds a signature from checkbox-selected component
// types and lists the entities matching it, the same query a system
// with that signature would receive.
type SignatureDebugger struct {
	selected map[string]bool
}

func NewSignatureDebugger() *SignatureDebugger {
	return &SignatureDebugger{selected: make(map[string]bool)}
}

func (sd *SignatureDebugger) Render(w *ecs.World) {
	if !imgui.BeginV("Signature Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		sd.selected = make(map[string]bool)
	}

	names := w.ComponentNames()
	for _, name := range names {
		checked := sd.selected[name]
		if imgui.Checkbox(name, &checked) {
			if checked {
				sd.selected[name] = true
			} else {
				delete(sd.selected, name)
			}
		}
	}

	imgui.Separator()

	var picked []string
	for _, name := range names {
		if sd.selected[name] {
			picked = append(picked, name)
		}
	}

	if len(picked) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	sig, ok := w.SignatureFor(picked...)
	if !ok {
		imgui.Text("Signature contains unregistered components")
		imgui.End()
		return
	}

	matches := w.EntitiesWith(sig)
	imgui.Text(fmt.Sprintf("Signature: 0x%X", uint32(sig)))
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matches)))

	if imgui.TreeNodeStr("Matches") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SigMatchTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Entity ID")
			imgui.TableSetupColumn("All Components")
			imgui.TableHeadersRow()

			for _, e := range matches {
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(fmt.Sprintf("%d", e))

				imgui.TableSetColumnIndex(1)
				imgui.Text(fmt.Sprintf("%v", w.ComponentsOf(e)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
