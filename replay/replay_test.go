package replay

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/platformer-controller/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func TestRecorderAndPlayer(t *testing.T) {
	rec := NewRecorder(60, "demo")
	inputs := []controller.Snapshot{
		{MoveAxis: 1},
		{MoveAxis: 1, JumpPressed: true},
		{MoveAxis: -0.5, SlidePressed: true},
		{},
	}
	for _, in := range inputs {
		require.True(t, rec.Record(in, dt))
	}
	require.Equal(t, len(inputs), rec.Len())

	p := NewPlayer(rec.Recording())
	for i, want := range inputs {
		step, ok := p.Next()
		require.True(t, ok, "frame %d", i)
		assert.Equal(t, dt, step)
		assert.Equal(t, want, controller.Sample(p), "frame %d", i)
	}

	_, ok := p.Next()
	assert.False(t, ok)
	assert.True(t, p.Done())
	assert.Equal(t, controller.Snapshot{}, controller.Sample(p), "exhausted player reads as idle")

	p.Rewind()
	assert.Equal(t, len(inputs), p.Remaining())
}

func TestRecordingIsACopy(t *testing.T) {
	rec := NewRecorder(60, "demo")
	rec.Record(controller.Snapshot{MoveAxis: 1}, dt)
	snap := rec.Recording()

	rec.Reset("other")
	rec.Record(controller.Snapshot{MoveAxis: -1}, dt)

	require.Len(t, snap.Frames, 1)
	assert.Equal(t, 1.0, snap.Frames[0].Axis)
	assert.Equal(t, "demo", snap.Level)
	assert.Equal(t, "other", rec.Recording().Level)
}

func TestRecorderStopsWhenFull(t *testing.T) {
	rec := NewRecorder(60, "demo")
	rec.MaxFrames = 2

	assert.True(t, rec.Record(controller.Snapshot{}, dt))
	assert.True(t, rec.Record(controller.Snapshot{}, dt))
	assert.False(t, rec.Record(controller.Snapshot{}, dt))
	assert.True(t, rec.Full())
	assert.Equal(t, 2, rec.Len())
}

func TestPlayerIgnoresOtherNames(t *testing.T) {
	p := NewPlayer(&Recording{Frames: []Frame{{Axis: 1, Jump: true, Slide: true, Dt: dt}}})
	p.Next()

	assert.Equal(t, 0.0, p.Axis("Vertical"))
	assert.False(t, p.KeyJustPressed("Space"))
	assert.False(t, p.ButtonJustPressed("Fire1"))
}

func TestNilPlayer(t *testing.T) {
	p := NewPlayer(nil)
	assert.True(t, p.Done())
	assert.Equal(t, 0, p.Remaining())
	_, ok := p.Next()
	assert.False(t, ok)
}

func TestEncodeDecode(t *testing.T) {
	in := &Recording{
		Version:  Version,
		TickRate: 60,
		Level:    "demo",
		Frames:   []Frame{{Axis: 0.25, Jump: true, Dt: dt}, {Slide: true, Dt: dt}},
	}

	data, err := Encode(in)
	require.NoError(t, err)
	out, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, in, out)
	assert.InDelta(t, 2*dt, out.Duration(), 1e-12)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{"wrong version", `{"version":2,"frames":[]}`, ErrVersion},
		{"missing version", `{"frames":[]}`, ErrVersion},
		{"negative dt", `{"version":1,"frames":[{"axis":0,"dt":-0.1}]}`, ErrBadFrame},
		{"axis out of range", `{"version":1,"frames":[{"axis":2,"dt":0.1}]}`, ErrBadFrame},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.data))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := Decode([]byte("{"))
	assert.Error(t, err)
}

func TestEncodeRejectsNaN(t *testing.T) {
	_, err := Encode(&Recording{Version: Version, Frames: []Frame{{Axis: math.NaN()}}})
	assert.Error(t, err)
}

type memStore struct {
	items map[string][]byte
	err   error
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	if m.items == nil {
		m.items = make(map[string][]byte)
	}
	m.items[key] = data
	return nil
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func TestStore(t *testing.T) {
	s := &memStore{}

	_, err := Load(s)
	assert.ErrorIs(t, err, ErrNoReplay)

	rec := &Recording{Version: Version, TickRate: 60, Frames: []Frame{{Axis: -1, Dt: dt}}}
	require.NoError(t, Save(s, rec))
	assert.Contains(t, s.items, ItemKey)

	got, err := Load(s)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestStoreErrors(t *testing.T) {
	boom := errors.New("disk full")
	s := &memStore{err: boom}

	assert.ErrorIs(t, Save(s, &Recording{Version: Version}), boom)
	_, err := Load(s)
	assert.ErrorIs(t, err, boom)
}

func TestCheckLevel(t *testing.T) {
	rec := &Recording{Version: Version, Level: "demo"}
	assert.NoError(t, rec.CheckLevel("demo"))

	err := rec.CheckLevel("caves")
	assert.ErrorIs(t, err, ErrLevelMismatch)
	assert.Contains(t, err.Error(), `"demo"`)

	unnamed := &Recording{Version: Version}
	assert.NoError(t, unnamed.CheckLevel("caves"))
}
