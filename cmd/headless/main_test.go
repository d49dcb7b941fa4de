package main

import (
	"testing"

	"github.com/automoto/platformer-controller/controller"
	"github.com/automoto/platformer-controller/replay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFile(t *testing.T) {
	rec := &replay.Recording{Level: "caves"}

	assert.Equal(t, "demo.tmx", levelFile("", "demo.tmx", nil))
	assert.Equal(t, "caves.tmx", levelFile("", "demo.tmx", rec))
	assert.Equal(t, "other.tmx", levelFile("other.tmx", "demo.tmx", rec))
	assert.Equal(t, "demo.tmx", levelFile("", "demo.tmx", &replay.Recording{}))
}

func TestScriptedSourceCadence(t *testing.T) {
	for _, tickRate := range []int{30, 60, 144} {
		source := scriptedSource(tickRate*8, tickRate)

		var jumps, slides []int
		for tick := 1; ; tick++ {
			src, dt, ok := source()
			if !ok {
				assert.Equal(t, tickRate*8+1, tick)
				break
			}
			require.Equal(t, 1/float64(tickRate), dt)
			in := controller.Sample(src)
			assert.Equal(t, 1.0, in.MoveAxis)
			if in.JumpPressed {
				jumps = append(jumps, tick)
			}
			if in.SlidePressed {
				slides = append(slides, tick)
			}
		}

		assert.Len(t, jumps, 5, "tick rate %d", tickRate)
		assert.Equal(t, tickRate*3/2, jumps[0], "tick rate %d", tickRate)
		assert.Equal(t, []int{tickRate * 4, tickRate * 8}, slides, "tick rate %d", tickRate)
	}
}
