package system

// SpawnTimer fires once every Delay seconds of accumulated time.
type SpawnTimer struct {
	Delay   float64
	Elapsed float64
}

// NewSpawnTimer creates a timer firing every delay seconds.
func NewSpawnTimer(delay float64) *SpawnTimer {
	return &SpawnTimer{Delay: delay}
}

// Tick advances the timer by dt and reports whether it fired. Firing resets
// the accumulator to zero, so leftover time is dropped.
func (t *SpawnTimer) Tick(dt float64) bool {
	t.Elapsed += dt
	if t.Elapsed < t.Delay {
		return false
	}
	t.Elapsed = 0
	return true
}

// Reset clears the accumulated time.
func (t *SpawnTimer) Reset() {
	t.Elapsed = 0
}
