package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/grit/ecs"
)

// PerformanceStats plots frame times and tables world and per-system
// timing statistics.
type PerformanceStats struct {
	timer        FrameTimer
	frameHistory []float32
	frameIndex   int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		timer:        NewFrameTimer(),
		frameHistory: make([]float32, historyFrames),
	}
}

func (ps *PerformanceStats) Render(w *ecs.World) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	dt := ps.timer.DeltaTime()
	ps.frameHistory[ps.frameIndex] = dt * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % len(ps.frameHistory)

	stats := w.CollectStats()
	imgui.Text(fmt.Sprintf("Live Entities: %d / %d", stats.LiveEntities, stats.MaxEntities))
	imgui.Text(fmt.Sprintf("Component Types: %d", stats.ComponentTypes))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))

	var avg float32
	for _, ft := range ps.frameHistory {
		avg += ft
	}
	avg /= float32(len(ps.frameHistory))
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("System Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Matched")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, s := range w.SystemStatsSnapshot() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(s.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", s.MatchedCount))
				imgui.TableNextColumn()
				imgui.Text(durationMs(s.LastDuration))
				imgui.TableNextColumn()
				imgui.Text(durationMs(s.AvgDuration))
				imgui.TableNextColumn()
				imgui.Text(durationMs(s.MaxDuration))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func durationMs(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}

// FrameTimer measures wall time between successive DeltaTime calls.
type FrameTimer struct {
	last time.Time
}

func NewFrameTimer() FrameTimer {
	return FrameTimer{last: time.Now()}
}

func (ft *FrameTimer) DeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.last).Seconds())
	ft.last = now
	return delta
}
