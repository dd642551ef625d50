package state

// GameState represents the current state of the game progression
type GameState int

const (
	StateTutorial GameState = iota
	StateTransition
	StateLevel1
	StateLevel2Transition
	StateLevel2
	StateLevel3Transition
	StateLevel3
	StateCutscene
	StateVictory
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateTutorial:
		return "Tutorial"
	case StateTransition:
		return "Transition"
	case StateLevel1:
		return "Level1"
	case StateLevel2Transition:
		return "Level2Transition"
	case StateLevel2:
		return "Level2"
	case StateLevel3Transition:
		return "Level3Transition"
	case StateLevel3:
		return "Level3"
	case StateCutscene:
		return "Cutscene"
	case StateVictory:
		return "Victory"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// IsPlaying reports whether a level is simulated in this state.
func (s GameState) IsPlaying() bool {
	switch s {
	case StateTutorial, StateLevel1, StateLevel2, StateLevel3:
		return true
	}
	return false
}

// IsTransition reports whether this state is a timed hand-off between levels.
func (s GameState) IsTransition() bool {
	switch s {
	case StateTransition, StateLevel2Transition, StateLevel3Transition:
		return true
	}
	return false
}

// Destination returns the playing state a transition state leads to.
func (s GameState) Destination() (GameState, bool) {
	switch s {
	case StateTransition:
		return StateLevel1, true
	case StateLevel2Transition:
		return StateLevel2, true
	case StateLevel3Transition:
		return StateLevel3, true
	}
	return s, false
}
