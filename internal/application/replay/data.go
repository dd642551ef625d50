// Package replay stores recorded input so a seeded run can be played back
// frame for frame.
package replay

import "github.com/younwookim/relicescape/internal/application/system"

// Version is written into every replay file.
const Version = "2.0"

// FrameInput records the held actions of a single frame
type FrameInput struct {
	F int    `json:"f"`           // Frame number
	A uint64 `json:"a,omitempty"` // Held action bitset
}

// State returns the recorded actions as an input snapshot.
func (fi FrameInput) State() system.InputState {
	return system.InputState(fi.A)
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Config    string       `json:"config,omitempty"` // settings directory the run used
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
