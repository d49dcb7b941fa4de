package replay

import "github.com/automoto/platformer-controller/controller"

// Player feeds a recording back to the controller one frame per tick. Call
// Next before each tick; the InputSource methods answer for the current frame.
type Player struct {
	rec *Recording
	pos int
	cur Frame
}

var _ controller.InputSource = (*Player)(nil)

func NewPlayer(rec *Recording) *Player {
	return &Player{rec: rec}
}

// Next moves to the next frame and returns the dt it was recorded with. It
// returns false when the recording is exhausted.
func (p *Player) Next() (float64, bool) {
	if p.Done() {
		p.cur = Frame{}
		return 0, false
	}
	p.cur = p.rec.Frames[p.pos]
	p.pos++
	return p.cur.Dt, true
}

func (p *Player) Done() bool {
	return p.rec == nil || p.pos >= len(p.rec.Frames)
}

// Remaining is the number of frames not yet played.
func (p *Player) Remaining() int {
	if p.rec == nil {
		return 0
	}
	return len(p.rec.Frames) - p.pos
}

func (p *Player) Rewind() {
	p.pos = 0
	p.cur = Frame{}
}

func (p *Player) Axis(name string) float64 {
	if name != controller.AxisHorizontal {
		return 0
	}
	return p.cur.Axis
}

func (p *Player) KeyJustPressed(key string) bool {
	return key == controller.KeySlide && p.cur.Slide
}

func (p *Player) ButtonJustPressed(action string) bool {
	return action == controller.ButtonJump && p.cur.Jump
}
