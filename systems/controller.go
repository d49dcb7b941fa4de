package systems

import (
	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/controller"
	"github.com/automoto/platformer-controller/sim"
	"github.com/automoto/platformer-controller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateController advances the world by one fixed tick: platforms move,
// the clock advances and every player runs the controller pipeline. Input
// comes from the live action state, or from the replay being played back.
func UpdateController(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	spawn := components.Level.Get(levelEntry).Spawn
	clock := components.Clock.Get(clockEntry)
	rs := getOrCreateReplay(e)

	dt := cfg.Physics.TickDuration()
	var src controller.InputSource = controller.ActionSource{In: getOrCreateInput(e)}
	if rs.Playback != nil {
		if step, ok := rs.Playback.Next(); ok {
			src, dt = rs.Playback, step
		} else {
			rs.Playback = nil
			rs.Status = "live"
		}
	}

	updatePlatforms(e, dt)

	params := controller.DefaultParams()
	tick := controller.Tick{
		Dt:       dt,
		Now:      clock.Advance(dt),
		GravityY: cfg.Physics.GravityY,
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		res := controller.Step(
			components.Motion.Get(entry),
			components.SlideTimers.Get(entry),
			obj.Object,
			src,
			&params,
			tick,
		)
		rs.Recorder.Record(res.Input, dt)

		if obj.Y < -sim.FallMargin {
			respawn(entry, spawn)
			components.Player.Get(entry).Respawns++
		}
	})
}
