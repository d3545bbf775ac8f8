package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/yock/ecs"
	"github.com/plus3/yock/sim"
)

// SimulationPanel shows the sprite count and step statistics and exposes the
// spawn interval slider plus pause, step, spawn and clear controls. The last
// sprite spawned from the panel is tracked until it expires.
func SimulationPanel(world *sim.World, step *sim.StepSystem) ImguiItem {
	var tracked ecs.EntityId
	var tracking bool

	return ImguiItem{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))

			if !imgui.BeginV("Debug Info", nil, imgui.WindowFlagsAlwaysAutoResize) {
				imgui.End()
				return
			}

			imgui.Text(fmt.Sprintf("Sprite Count: %d", world.Len()))

			interval := int32(world.SpawnInterval())
			if imgui.SliderInt("Spawn Interval", &interval, 0, sim.MaxSpawnInterval) {
				world.SetSpawnInterval(int(interval))
			}
			imgui.Text(fmt.Sprintf("Spawn Timer: %d", world.SpawnTimer()))

			imgui.Separator()
			last := step.Last
			imgui.Text(fmt.Sprintf("Last Step: %d spawned, %d bounces, %d collisions, %d expired",
				last.Spawned, last.Bounces, last.Collisions, last.Expired))

			totals := world.Totals()
			imgui.Text(fmt.Sprintf("Totals: %d spawned, %d bounces, %d collisions, %d expired",
				totals.Spawned, totals.Bounces, totals.Collisions, totals.Expired))

			imgui.Separator()
			if step.Paused {
				if imgui.Button("Resume") {
					step.Paused = false
				}
				imgui.SameLine()
				if imgui.Button("Step") {
					step.StepOnce()
				}
				imgui.SameLine()
				imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
			} else {
				if imgui.Button("Pause") {
					step.Paused = true
				}
				imgui.SameLine()
				imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
			}

			if imgui.Button("Spawn") {
				tracked, tracking = world.Spawn().Id, true
			}
			imgui.SameLine()
			if imgui.Button("Clear") {
				world.Clear()
				tracking = false
			}

			if tracking {
				if s, ok := world.Sprite(tracked); ok {
					imgui.Text(fmt.Sprintf("Tracked #%d: pos (%d, %d) vel (%d, %d) life %d",
						tracked.Index(), s.Bounds.X, s.Bounds.Y, s.Velocity.X, s.Velocity.Y, s.Lifetime))
				} else {
					tracking = false
				}
			}

			imgui.End()
		},
	}
}
