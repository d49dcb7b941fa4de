// Package sim runs the character controller against a level without a
// window. The playground and the headless command both drive it.
package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/controller"
	"github.com/automoto/platformer-controller/leveldata"
	"github.com/automoto/platformer-controller/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
)

// FallMargin is how far below the level's floor the body may drop before it
// is put back at the spawn point.
const FallMargin = 8.0

// Options are the values a Simulation is built from.
type Options struct {
	Params  controller.Params
	Physics cfg.PhysicsConfig
	Player  cfg.PlayerConfig
	World   cfg.WorldConfig
}

// DefaultOptions builds Options from the global configuration.
func DefaultOptions() Options {
	return Options{
		Params:  controller.DefaultParams(),
		Physics: cfg.Physics,
		Player:  cfg.Player,
		World:   cfg.World,
	}
}

type movingPlatform struct {
	obj   *resolv.Object
	baseY float64
	seq   *gween.Sequence
}

// Simulation owns one character body in one level's collision space.
type Simulation struct {
	Level  *leveldata.Level
	Space  *resolv.Space
	Body   *resolv.Object
	Motion components.MotionData
	Timers components.SlideTimerData
	Clock  components.ClockData
	Params controller.Params

	gravityY  float64
	spawn     leveldata.Point
	platforms []movingPlatform
	respawns  int
}

// New builds the collision space for level and places the body at the
// level's spawn point.
func New(level *leveldata.Level, opts Options) (*Simulation, error) {
	if level == nil {
		return nil, errors.New("sim: nil level")
	}
	w := opts.World
	if w.CellSize <= 0 {
		return nil, fmt.Errorf("sim: cell size %d", w.CellSize)
	}
	width := max(w.Width, int(math.Ceil(level.Width)))
	height := max(w.Height, int(math.Ceil(level.Height)))

	space := resolv.NewSpace(width, height, w.CellSize, w.CellSize)
	for _, r := range level.Solids {
		space.Add(controller.NewCollider(r.X, r.Y, r.W, r.H, tags.ResolvSolid))
	}

	s := &Simulation{
		Level:    level,
		Space:    space,
		Params:   opts.Params,
		gravityY: opts.Physics.GravityY,
		spawn: level.Spawn(leveldata.Point{
			X: opts.Player.SpawnX,
			Y: opts.Player.SpawnY,
		}),
	}

	for _, p := range level.Platforms {
		obj := controller.NewCollider(p.X, p.Y, p.W, p.H, tags.ResolvSolid, tags.ResolvPlatform)
		space.Add(obj)
		s.platforms = append(s.platforms, movingPlatform{obj: obj, baseY: obj.Y, seq: p.NewSequence()})
	}

	s.Body = resolv.NewObject(s.spawn.X, s.spawn.Y, opts.Player.CollisionWidth, opts.Player.CollisionHeight, tags.ResolvPlayer)
	space.Add(s.Body)

	return s, nil
}

// Tick advances moving platforms, then runs one controller pass with input
// from src. A dt that is negative or not finite is ignored.
func (s *Simulation) Tick(src controller.InputSource, dt float64) controller.Result {
	if !(dt >= 0) || math.IsInf(dt, 0) {
		return controller.Result{}
	}

	s.movePlatforms(dt)

	now := s.Clock.Advance(dt)
	res := controller.Step(&s.Motion, &s.Timers, s.Body, src, &s.Params, controller.Tick{
		Dt:       dt,
		Now:      now,
		GravityY: s.gravityY,
	})

	if s.Body.Y < -FallMargin {
		s.Respawn()
	}
	return res
}

func (s *Simulation) movePlatforms(dt float64) {
	for i := range s.platforms {
		p := &s.platforms[i]
		if p.seq == nil {
			continue
		}
		p.obj.Y = p.baseY + leveldata.AdvanceOffset(p.seq, dt)
		p.obj.Update()
	}
}

// Respawn puts the body back at the spawn point at rest and drops any
// pending slide stops.
func (s *Simulation) Respawn() {
	s.Body.X, s.Body.Y = s.spawn.X, s.spawn.Y
	s.Body.Update()
	s.Motion = components.MotionData{Facing: s.Motion.Facing}
	controller.CancelSlideStops(&s.Timers)
	s.respawns++
}

// Reset restarts the simulation from its initial state: body at spawn,
// clock at zero, platforms at rest.
func (s *Simulation) Reset() {
	s.Respawn()
	s.Motion.Facing = 0
	s.Clock = components.ClockData{}
	s.respawns = 0
	for i := range s.platforms {
		p := &s.platforms[i]
		if p.seq != nil {
			p.seq.Reset()
		}
		p.obj.Y = p.baseY
		p.obj.Update()
	}
}

// Platforms returns the colliders of the level's floating platforms.
func (s *Simulation) Platforms() []*resolv.Object {
	out := make([]*resolv.Object, len(s.platforms))
	for i, p := range s.platforms {
		out[i] = p.obj
	}
	return out
}

// State is a read-only summary of the body after the last tick.
type State struct {
	Tick     uint64
	Elapsed  float64
	X, Y     float64
	VX, VY   float64
	Grounded bool
	Sliding  bool
	Label    controller.StateID
	Respawns int
}

func (s *Simulation) State() State {
	return State{
		Tick:     s.Clock.Tick,
		Elapsed:  s.Clock.Elapsed,
		X:        s.Body.X,
		Y:        s.Body.Y,
		VX:       s.Motion.Velocity.X,
		VY:       s.Motion.Velocity.Y,
		Grounded: s.Motion.Grounded,
		Sliding:  s.Motion.Sliding,
		Label:    controller.DeriveState(&s.Motion),
		Respawns: s.respawns,
	}
}

func (st State) String() string {
	return fmt.Sprintf("tick=%d t=%.2fs pos=(%.3f, %.3f) vel=(%.3f, %.3f) grounded=%t state=%s",
		st.Tick, st.Elapsed, st.X, st.Y, st.VX, st.VY, st.Grounded, st.Label)
}
