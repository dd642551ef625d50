package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/relicescape/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data     ReplayData
	frame    int
	previous system.InputState
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns this frame's actions together with the previous frame's and
// advances. ok is false once every frame has been played.
func (r *Replayer) Next() (current, previous system.InputState, ok bool) {
	if r.frame >= len(r.data.Frames) {
		return 0, r.previous, false
	}

	current = r.data.Frames[r.frame].State()
	previous = r.previous
	r.previous = current
	r.frame++
	return current, previous, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.previous = 0
}

// CreateTestReplayData creates replay data holding the same actions on
// every frame.
func CreateTestReplayData(frames int, actions ...system.Action) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	held := uint64(system.InputState(0).With(actions...))
	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, A: held}
	}

	return data
}
