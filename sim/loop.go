package sim

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/platformer-controller/controller"
)

// TickSource supplies the input for each loop tick. Returning false stops the
// loop.
type TickSource func() (controller.InputSource, float64, bool)

// GameLoop runs a Simulation at a fixed tick rate until stopped or until its
// source runs out.
type GameLoop struct {
	sim      *Simulation
	source   TickSource
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	// OnTick, when set, runs after every tick.
	OnTick func(State, controller.Result)
}

func NewGameLoop(sim *Simulation, source TickSource, tickRate int) *GameLoop {
	return &GameLoop{
		sim:      sim,
		source:   source,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run blocks, ticking on a time.Ticker, until Stop is called or the source
// reports it is finished.
func (g *GameLoop) Run() {
	defer close(g.done)
	if g.tickRate <= 0 {
		log.Printf("Game loop not started: tick rate %d", g.tickRate)
		return
	}
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			if !g.tick() {
				log.Println("Game loop finished")
				return
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once and from several
// goroutines.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

// Done is closed once Run has returned.
func (g *GameLoop) Done() <-chan struct{} {
	return g.done
}

func (g *GameLoop) tick() bool {
	src, dt, ok := g.source()
	if !ok {
		return false
	}
	res := g.sim.Tick(src, dt)
	if g.OnTick != nil {
		g.OnTick(g.sim.State(), res)
	}
	return true
}

// RunFor ticks the simulation n times as fast as possible with the same
// source. It is the loop without the clock, for tests and batch runs.
func RunFor(s *Simulation, source TickSource, n int) int {
	ticks := 0
	for ; ticks < n; ticks++ {
		src, dt, ok := source()
		if !ok {
			break
		}
		s.Tick(src, dt)
	}
	return ticks
}

// FixedInput is a TickSource that always returns src with step dt.
func FixedInput(src controller.InputSource, dt float64) TickSource {
	return func() (controller.InputSource, float64, bool) {
		return src, dt, true
	}
}
