package replay

import "github.com/automoto/platformer-controller/controller"

// DefaultMaxFrames bounds a recording to ten minutes at 60 ticks per second.
const DefaultMaxFrames = 60 * 60 * 10

// Recorder appends one frame per simulated tick until it is full.
type Recorder struct {
	rec       Recording
	MaxFrames int
}

func NewRecorder(tickRate int, level string) *Recorder {
	return &Recorder{
		rec:       Recording{Version: Version, TickRate: tickRate, Level: level},
		MaxFrames: DefaultMaxFrames,
	}
}

// Record stores the input that drove one tick. It reports false once the
// recorder is full; later ticks are dropped.
func (r *Recorder) Record(in controller.Snapshot, dt float64) bool {
	if r.Full() {
		return false
	}
	r.rec.Frames = append(r.rec.Frames, Frame{
		Axis:  in.MoveAxis,
		Jump:  in.JumpPressed,
		Slide: in.SlidePressed,
		Dt:    dt,
	})
	return true
}

func (r *Recorder) Len() int { return len(r.rec.Frames) }

func (r *Recorder) Full() bool {
	return r.MaxFrames > 0 && len(r.rec.Frames) >= r.MaxFrames
}

// Recording returns a copy of everything recorded so far.
func (r *Recorder) Recording() *Recording {
	out := r.rec
	out.Frames = append([]Frame(nil), r.rec.Frames...)
	return &out
}

// Reset drops all frames and starts a new recording for level.
func (r *Recorder) Reset(level string) {
	r.rec.Level = level
	r.rec.Frames = r.rec.Frames[:0]
}
