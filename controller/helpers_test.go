package controller

import (
	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/solarlune/resolv"
)

const testDt = 1.0 / 64 // exact in binary, so clock sums stay exact

func testParams() *Params {
	return &Params{
		Motion:        cfg.DefaultMotion(),
		SlideDuration: 0.5,
		SlidePolicy:   cfg.SlideTimerOverlap,
	}
}

func testTick(now float64) Tick {
	return Tick{Dt: testDt, Now: now, GravityY: -20}
}

// newTestSpace returns a space with a flat floor whose top is at y=4.
func newTestSpace() (*resolv.Space, *resolv.Object) {
	space := resolv.NewSpace(64, 32, 2, 2)
	floor := resolv.NewObject(0, 0, 64, 4, "solid")
	space.Add(floor)
	return space, floor
}

func newTestBody(space *resolv.Space, x, y float64) *resolv.Object {
	body := resolv.NewObject(x, y, 1, 2, "player")
	if space != nil {
		space.Add(body)
	}
	return body
}

// heldInput turns level-triggered button states into edges the way the
// engine's input layer does.
type heldInput struct {
	axis                float64
	jump, slide         bool
	prevJump, prevSlide bool
	curJump, curSlide   bool
}

func (h *heldInput) poll() {
	h.prevJump, h.prevSlide = h.curJump, h.curSlide
	h.curJump, h.curSlide = h.jump, h.slide
}

func (h *heldInput) Axis(name string) float64 {
	if name != AxisHorizontal {
		return 0
	}
	return h.axis
}

func (h *heldInput) KeyJustPressed(key string) bool {
	return key == KeySlide && h.curSlide && !h.prevSlide
}

func (h *heldInput) ButtonJustPressed(action string) bool {
	return action == ButtonJump && h.curJump && !h.prevJump
}

// runner drives the full pipeline against a clock.
type runner struct {
	m      components.MotionData
	timers components.SlideTimerData
	body   *resolv.Object
	params *Params
	clock  components.ClockData
}

func (r *runner) step(src InputSource) Result {
	now := r.clock.Advance(testDt)
	return Step(&r.m, &r.timers, r.body, src, r.params, testTick(now))
}
