package controller

import (
	"testing"

	"github.com/automoto/platformer-controller/components"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeparate(t *testing.T) {
	t.Run("touching is not overlapped", func(t *testing.T) {
		other := resolv.NewObject(0, 0, 4, 4)
		body := resolv.NewObject(1, 4, 1, 2)

		sep := Separate(other, body)
		assert.False(t, sep.Overlapped)
		assert.Equal(t, 0.0, sep.Distance)
		assert.Equal(t, 0.0, sep.Push().X())
		assert.Equal(t, 0.0, sep.Push().Y())
	})

	t.Run("gap distance", func(t *testing.T) {
		other := resolv.NewObject(0, 0, 4, 4)
		body := resolv.NewObject(7, 8, 1, 2)

		sep := Separate(other, body)
		assert.False(t, sep.Overlapped)
		assert.InDelta(t, 5.0, sep.Distance, 1e-12)
	})

	t.Run("shallow from above pushes up", func(t *testing.T) {
		other := resolv.NewObject(0, 0, 4, 4)
		body := resolv.NewObject(1, 3.75, 1, 2)

		sep := Separate(other, body)
		require.True(t, sep.Overlapped)
		assert.Equal(t, 0.0, sep.Normal.X())
		assert.Equal(t, 1.0, sep.Normal.Y())
		assert.Equal(t, -0.25, sep.Distance)
		assert.Equal(t, 0.0, sep.Push().X())
		assert.Equal(t, 0.25, sep.Push().Y())
	})

	t.Run("side overlap pushes sideways", func(t *testing.T) {
		wall := resolv.NewObject(5, 0, 1, 8)
		body := resolv.NewObject(4.5, 2, 1, 2)

		sep := Separate(wall, body)
		require.True(t, sep.Overlapped)
		assert.Equal(t, -1.0, sep.Normal.X())
		assert.Equal(t, -0.5, sep.Push().X())
		assert.Equal(t, 0.0, sep.Push().Y())
	})

	t.Run("contained body takes the shortest exit", func(t *testing.T) {
		other := resolv.NewObject(0, 0, 10, 10)
		body := resolv.NewObject(8.5, 4, 1, 2)

		sep := Separate(other, body)
		require.True(t, sep.Overlapped)
		assert.Equal(t, 1.0, sep.Normal.X())
		assert.Equal(t, 1.5, sep.Push().X())
	})

	t.Run("tie prefers up over down", func(t *testing.T) {
		other := resolv.NewObject(0, 0, 2, 2)
		body := resolv.NewObject(0, 0.5, 2, 1)

		sep := Separate(other, body)
		require.True(t, sep.Overlapped)
		assert.Equal(t, 1.0, sep.Normal.Y())
	})

	t.Run("tie prefers right over left", func(t *testing.T) {
		other := resolv.NewObject(0, 0, 3, 4)
		body := resolv.NewObject(1, 1, 1, 2)

		sep := Separate(other, body)
		require.True(t, sep.Overlapped)
		assert.Equal(t, 1.0, sep.Normal.X())
	})
}

func TestResolveLanding(t *testing.T) {
	space, _ := newTestSpace()
	body := newTestBody(space, 10, 3.9)
	m := components.MotionData{Velocity: components.Vector{Y: -5}}

	contacts := ResolveCollisions(&m, body, testDt)

	assert.Equal(t, 1, contacts)
	assert.True(t, m.Grounded)
	assert.Equal(t, 4.0, body.Y)
	assert.Equal(t, 10.0, body.X)
	assert.Equal(t, -5.0, m.Velocity.Y, "resolution moves the body, not the velocity")

	// Resting exactly on the floor is a touch, not a contact.
	contacts = ResolveCollisions(&m, body, 0)
	assert.Equal(t, 0, contacts)
	assert.False(t, m.Grounded)
	assert.Equal(t, 4.0, body.Y)
}

func TestResolveRisingThroughFloorTopIsNotGrounded(t *testing.T) {
	space, _ := newTestSpace()
	body := newTestBody(space, 10, 3.95)
	m := components.MotionData{Grounded: true, Velocity: components.Vector{Y: 1}}

	contacts := ResolveCollisions(&m, body, testDt)

	assert.Equal(t, 1, contacts)
	assert.Equal(t, 4.0, body.Y)
	assert.False(t, m.Grounded)
}

func TestResolveCeilingHit(t *testing.T) {
	space, _ := newTestSpace()
	ceiling := resolv.NewObject(0, 10, 64, 1, "solid")
	space.Add(ceiling)
	body := newTestBody(space, 5, 7.95)
	m := components.MotionData{Velocity: components.Vector{Y: 10}}

	contacts := ResolveCollisions(&m, body, testDt)

	assert.Equal(t, 1, contacts)
	assert.InDelta(t, 8.0, body.Y, 1e-9)
	assert.False(t, m.Grounded)
}

func TestResolveWallIsNotGround(t *testing.T) {
	space, _ := newTestSpace()
	wall := resolv.NewObject(20, 4, 2, 10, "solid")
	space.Add(wall)
	body := newTestBody(space, 18.9, 6)
	m := components.MotionData{Velocity: components.Vector{X: 12.8}}

	contacts := ResolveCollisions(&m, body, testDt)

	assert.Equal(t, 1, contacts)
	assert.InDelta(t, 19.0, body.X, 1e-12)
	assert.Equal(t, 6.0, body.Y)
	assert.False(t, m.Grounded)
}

func TestResolveCornerContactsInOrder(t *testing.T) {
	space := resolv.NewSpace(16, 8, 2, 2)
	ground := resolv.NewObject(0, 0, 10, 1, "solid")
	wall := resolv.NewObject(5, 1, 1, 4, "solid")
	space.Add(ground, wall)
	body := newTestBody(space, 4.2, 0.9)
	m := components.MotionData{}

	contacts := ResolveCollisions(&m, body, testDt)

	assert.Equal(t, 2, contacts)
	assert.True(t, m.Grounded, "ground contact keeps grounded set after the wall contact")
	assert.InDelta(t, 4.0, body.X, 1e-9)
	assert.InDelta(t, 1.0, body.Y, 1e-9)
}

func TestResolveSequentialPushSkipsClearedContact(t *testing.T) {
	space := resolv.NewSpace(16, 16, 2, 2)
	ground := resolv.NewObject(0, 4, 10, 1, "solid")
	ledge := resolv.NewObject(4, 3, 2, 2.05, "solid")
	space.Add(ground, ledge)
	body := newTestBody(space, 3.5, 4.9)
	m := components.MotionData{}

	contacts := ResolveCollisions(&m, body, testDt)

	// The ledge sits lower in the sweep, so it resolves first and lifts the
	// body clear of the ground.
	assert.Equal(t, 1, contacts)
	assert.True(t, m.Grounded)
	assert.InDelta(t, 5.05, body.Y, 1e-9)
}

func TestResolveWithoutSpace(t *testing.T) {
	body := newTestBody(nil, 1, 1)
	m := components.MotionData{Grounded: true, Velocity: components.Vector{X: 64, Y: -64}}

	contacts := ResolveCollisions(&m, body, testDt)

	assert.Equal(t, 0, contacts)
	assert.False(t, m.Grounded)
	assert.Equal(t, 2.0, body.X)
	assert.Equal(t, 0.0, body.Y)
}

func TestResolveIgnoresSelf(t *testing.T) {
	space := resolv.NewSpace(16, 16, 2, 2)
	body := newTestBody(space, 4, 4)
	m := components.MotionData{}

	assert.Equal(t, 0, ResolveCollisions(&m, body, testDt))
	assert.False(t, m.Grounded)
}
