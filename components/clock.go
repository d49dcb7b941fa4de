package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock. Slide stops are scheduled against
// Elapsed, which advances by the same step the integrator uses.
type ClockData struct {
	Elapsed float64
	Tick    uint64
}

var Clock = donburi.NewComponentType[ClockData]()

// Advance moves the clock forward one tick of dt seconds and returns the new
// elapsed time.
func (c *ClockData) Advance(dt float64) float64 {
	c.Tick++
	c.Elapsed += dt
	return c.Elapsed
}
