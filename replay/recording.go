// Package replay records the controller's per-tick input and plays it back
// as an input source. Because the pipeline is deterministic, replaying a
// recording from the same spawn reproduces the same motion.
package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Version is the recording format written by Encode.
const Version = 1

var (
	ErrVersion  = errors.New("unsupported replay version")
	ErrBadFrame = errors.New("invalid replay frame")
	ErrNoReplay = errors.New("no saved replay")

	ErrLevelMismatch = errors.New("replay recorded on another level")
)

// Frame is one tick of sampled input and the step it was simulated with.
type Frame struct {
	Axis  float64 `json:"axis"`
	Jump  bool    `json:"jump,omitempty"`
	Slide bool    `json:"slide,omitempty"`
	Dt    float64 `json:"dt"`
}

// Recording is a run of frames starting from a level's spawn point.
type Recording struct {
	Version  int     `json:"version"`
	TickRate int     `json:"tickRate"`
	Level    string  `json:"level,omitempty"`
	Frames   []Frame `json:"frames"`
}

// Duration is the simulated time covered by the recording.
func (r *Recording) Duration() float64 {
	total := 0.0
	for _, f := range r.Frames {
		total += f.Dt
	}
	return total
}

// CheckLevel reports whether the recording can be played on the named level.
// Recordings that do not name a level are accepted anywhere.
func (r *Recording) CheckLevel(level string) error {
	if r.Level == "" || r.Level == level {
		return nil
	}
	return fmt.Errorf("%w: recorded on %q, loaded %q", ErrLevelMismatch, r.Level, level)
}

func Encode(r *Recording) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode replay: %w", err)
	}
	return data, nil
}

// Decode parses a recording and rejects unknown versions and frames that
// could not have come from a valid tick.
func Decode(data []byte) (*Recording, error) {
	var r Recording
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	if r.Version != Version {
		return nil, fmt.Errorf("decode replay: version %d: %w", r.Version, ErrVersion)
	}
	for i, f := range r.Frames {
		if !(f.Dt >= 0) || math.IsInf(f.Dt, 0) || f.Axis < -1 || f.Axis > 1 {
			return nil, fmt.Errorf("decode replay: frame %d: %w", i, ErrBadFrame)
		}
	}
	return &r, nil
}
