package sim

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/automoto/platformer-controller/controller"
	"github.com/automoto/platformer-controller/leveldata"
	"github.com/automoto/platformer-controller/levels"
	"github.com/automoto/platformer-controller/replay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func newDemo(t *testing.T) *Simulation {
	t.Helper()
	level, err := leveldata.Load(levels.FS, "demo.tmx")
	require.NoError(t, err)
	s, err := New(level, DefaultOptions())
	require.NoError(t, err)
	return s
}

func newFlat(t *testing.T, level *leveldata.Level) *Simulation {
	t.Helper()
	s, err := New(level, DefaultOptions())
	require.NoError(t, err)
	return s
}

func idle(n int) TickSource {
	return func() (controller.InputSource, float64, bool) {
		if n <= 0 {
			return nil, 0, false
		}
		n--
		return controller.SnapshotSource{}, dt, true
	}
}

func TestNewRejects(t *testing.T) {
	_, err := New(nil, DefaultOptions())
	assert.Error(t, err)

	opts := DefaultOptions()
	opts.World.CellSize = 0
	_, err = New(&leveldata.Level{}, opts)
	assert.Error(t, err)
}

func TestSpawnAndSettle(t *testing.T) {
	s := newDemo(t)
	assert.Equal(t, 2.0, s.Body.X)
	assert.Equal(t, 2.0, s.Body.Y)

	RunFor(s, idle(10), 10)

	st := s.State()
	assert.True(t, st.Grounded)
	assert.Equal(t, 2.0, st.Y)
	assert.Equal(t, controller.Idle, st.Label)
	assert.Equal(t, uint64(10), st.Tick)
}

func TestWalkIntoWall(t *testing.T) {
	s := newDemo(t)

	RunFor(s, FixedInput(controller.SnapshotSource{MoveAxis: -1}, dt), 60)

	assert.InDelta(t, 1.0, s.Body.X, 1e-9, "stopped by the boundary wall")
	assert.True(t, s.Motion.Grounded)
	assert.Equal(t, -1.0, s.Motion.Facing)
}

func TestFallingOutRespawns(t *testing.T) {
	s := newFlat(t, &leveldata.Level{
		Width: 16, Height: 16,
		Solids: []leveldata.Rect{{X: 0, Y: 0, W: 4, H: 1}},
		Spawns: []leveldata.Point{{X: 1, Y: 1}},
	})

	for i := 0; i < 600 && s.State().Respawns == 0; i++ {
		s.Tick(controller.SnapshotSource{MoveAxis: 1}, dt)
	}

	st := s.State()
	require.Equal(t, 1, st.Respawns)
	assert.Equal(t, 1.0, st.X)
	assert.Equal(t, 1.0, st.Y)
	assert.Equal(t, 0.0, st.VY)
	assert.Empty(t, s.Timers.Pending)
}

func TestFloatingPlatformLiftsBody(t *testing.T) {
	s := newFlat(t, &leveldata.Level{
		Width: 16, Height: 16,
		Spawns: []leveldata.Point{{X: 1, Y: 2.5}},
		Platforms: []leveldata.Platform{
			{Rect: leveldata.Rect{X: 0, Y: 2, W: 4, H: 0.5}, Travel: 2, Period: 2},
		},
	})
	platform := s.Platforms()[0]

	// The half unit platform is thickened downward; its top stays at 2.5.
	assert.Equal(t, 1.5, platform.Y)
	assert.Equal(t, 2.5, platform.Y+platform.H)

	RunFor(s, idle(60), 60)

	assert.Greater(t, platform.Y+platform.H, 4.4)
	assert.InDelta(t, platform.Y+platform.H, s.Body.Y, 1e-6)
	assert.True(t, s.Motion.Grounded)

	s.Reset()
	assert.Equal(t, 1.5, platform.Y)
	assert.Equal(t, uint64(0), s.Clock.Tick)
}

func TestThinPlatformCarriesBodyThroughCycle(t *testing.T) {
	s := newDemo(t)
	platform := s.Platforms()[0]
	top := func() float64 { return platform.Y + platform.H }
	require.Equal(t, 3.5, top())

	s.Body.X, s.Body.Y = 21.5, top()
	s.Body.Update()

	// Two full cycles. The platform rises during the first half of each.
	for tick := 1; tick <= 480; tick++ {
		s.Tick(controller.SnapshotSource{}, dt)

		require.GreaterOrEqual(t, s.Body.Y, top()-1e-9, "tick %d: body below platform", tick)
		if tick%240 >= 1 && tick%240 < 118 {
			require.True(t, s.Motion.Grounded, "tick %d: rising platform lost the body", tick)
			require.InDelta(t, top(), s.Body.Y, 1e-9, "tick %d", tick)
		}
	}
	assert.Equal(t, 0, s.State().Respawns)
	assert.Equal(t, 21.5, s.Body.X)
}

func TestTickIgnoresBadDt(t *testing.T) {
	s := newDemo(t)
	for _, bad := range []float64{math.NaN(), math.Inf(1), -dt} {
		s.Tick(controller.SnapshotSource{MoveAxis: 1}, bad)
	}
	assert.Equal(t, uint64(0), s.Clock.Tick)
	assert.Equal(t, 0.0, s.Clock.Elapsed)
	assert.Equal(t, 2.0, s.Body.X)
}

// script is a fixed sequence of inputs exercising walking, jumping, the air
// jump and sliding.
func script(tick int) controller.SnapshotSource {
	in := controller.SnapshotSource{MoveAxis: 1}
	switch tick {
	case 30, 50:
		in.JumpPressed = true
	case 120:
		in.SlidePressed = true
	}
	if tick > 200 {
		in.MoveAxis = -0.5
	}
	return in
}

func TestReplayReproducesRun(t *testing.T) {
	s := newDemo(t)
	rec := replay.NewRecorder(60, s.Level.Name)
	for tick := 0; tick < 300; tick++ {
		res := s.Tick(script(tick), dt)
		rec.Record(res.Input, dt)
	}
	want := s.State()

	data, err := replay.Encode(rec.Recording())
	require.NoError(t, err)
	decoded, err := replay.Decode(data)
	require.NoError(t, err)

	s.Reset()
	player := replay.NewPlayer(decoded)
	ticks := RunFor(s, func() (controller.InputSource, float64, bool) {
		step, ok := player.Next()
		return player, step, ok
	}, math.MaxInt)

	assert.Equal(t, 300, ticks)
	assert.Equal(t, want, s.State())
}

func TestGameLoopRunsUntilSourceEnds(t *testing.T) {
	s := newDemo(t)
	loop := NewGameLoop(s, idle(5), 1000)
	calls := 0
	loop.OnTick = func(State, controller.Result) { calls++ }

	go loop.Run()
	select {
	case <-loop.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not finish")
	}

	assert.Equal(t, 5, calls)
	assert.Equal(t, uint64(5), s.Clock.Tick)
}

func TestGameLoopStop(t *testing.T) {
	s := newDemo(t)
	loop := NewGameLoop(s, FixedInput(controller.SnapshotSource{}, dt), 1000)

	go loop.Run()
	time.Sleep(10 * time.Millisecond)
	loop.Stop()
	loop.Stop()

	select {
	case <-loop.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestGameLoopConcurrentStop(t *testing.T) {
	s := newDemo(t)
	loop := NewGameLoop(s, FixedInput(controller.SnapshotSource{}, dt), 1000)
	go loop.Run()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NotPanics(t, loop.Stop)
		}()
	}
	wg.Wait()

	select {
	case <-loop.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestGameLoopRejectsZeroTickRate(t *testing.T) {
	loop := NewGameLoop(newDemo(t), idle(1), 0)
	loop.Run()

	select {
	case <-loop.Done():
	default:
		t.Fatal("Run should return immediately")
	}
}
