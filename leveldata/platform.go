package leveldata

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Moving reports whether the platform has a usable cycle.
func (p Platform) Moving() bool {
	return p.Travel != 0 && p.Period > 0
}

// NewSequence builds the platform's vertical offset tween: up by Travel over
// half the period, then back down. It returns nil for static platforms.
func (p Platform) NewSequence() *gween.Sequence {
	if !p.Moving() {
		return nil
	}
	half := float32(p.Period / 2)
	travel := float32(p.Travel)
	return gween.NewSequence(
		gween.New(0, travel, half, ease.InOutSine),
		gween.New(travel, 0, half, ease.InOutSine),
	)
}

// AdvanceOffset steps seq by dt seconds and returns the platform's offset
// above its resting position. The sequence restarts once it completes. A nil
// sequence always yields 0.
func AdvanceOffset(seq *gween.Sequence, dt float64) float64 {
	if seq == nil {
		return 0
	}
	value, _, done := seq.Update(float32(dt))
	if done {
		seq.Reset()
	}
	return float64(value)
}
