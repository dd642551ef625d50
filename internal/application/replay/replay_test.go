package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/relicescape/internal/application/system"
)

func TestFrameInput_JSONOmitsIdleFrames(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":7}`, string(data))

	held := system.InputState(0).With(system.ActionRight, system.ActionAttack)
	data, err = json.Marshal(FrameInput{F: 8, A: uint64(held)})
	require.NoError(t, err)

	var decoded FrameInput
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.State().Down(system.ActionRight))
	assert.True(t, decoded.State().Down(system.ActionAttack))
	assert.False(t, decoded.State().Down(system.ActionLeft))
}

func TestReplayer_Next(t *testing.T) {
	right := system.InputState(0).With(system.ActionRight)
	attack := system.InputState(0).With(system.ActionAttack)
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Frames: []FrameInput{
			{F: 0, A: uint64(right)},
			{F: 1, A: uint64(attack)},
			{F: 2},
		},
	}

	replayer := NewReplayer(data)

	cur, prev, ok := replayer.Next()
	require.True(t, ok)
	assert.Equal(t, right, cur)
	assert.Zero(t, prev)

	cur, prev, ok = replayer.Next()
	require.True(t, ok)
	assert.Equal(t, attack, cur)
	assert.Equal(t, right, prev)

	cur, prev, ok = replayer.Next()
	require.True(t, ok)
	assert.Zero(t, cur)
	assert.Equal(t, attack, prev)

	_, _, ok = replayer.Next()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.Next()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.Next()
	replayer.Next()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_TotalFramesAndSeed(t *testing.T) {
	replayer := NewReplayer(ReplayData{Seed: 99999, Frames: make([]FrameInput, 10)})

	assert.Equal(t, 10, replayer.TotalFrames())
	assert.Equal(t, int64(99999), replayer.Seed())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3, system.ActionUp))

	for i := 0; i < 3; i++ {
		replayer.Next()
	}
	_, _, ok := replayer.Next()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	cur, prev, ok := replayer.Next()
	assert.True(t, ok)
	assert.True(t, cur.Down(system.ActionUp))
	assert.Zero(t, prev, "previous is cleared too")
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, system.ActionLeft)

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Len(t, data.Frames, 60)

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.True(t, frame.State().Down(system.ActionLeft))
	}
}

func TestLoadReplay(t *testing.T) {
	dir := t.TempDir()

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(dir, "run.json")
		want := CreateTestReplayData(4, system.ActionInteract)
		raw, err := json.Marshal(want)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		got, err := LoadReplay(path)
		require.NoError(t, err)
		assert.Equal(t, want, *got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(dir, "absent.json"))
		assert.ErrorContains(t, err, "failed to open file")
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{frames"), 0o644))

		_, err := LoadReplay(path)
		assert.ErrorContains(t, err, "failed to decode replay")
	})
}
