package sim

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Typewriter reveals narration one grapheme cluster at a time and then holds
// the full text for a pause.
type Typewriter struct {
	graphemes []string
	shown     int

	delay float64
	pause float64
	timer float64
	held  float64
	done  bool
}

// NewTypewriter splits text into grapheme clusters. delay is the time per
// cluster, pause the hold after the last one.
func NewTypewriter(text string, delay, pause float64) *Typewriter {
	t := &Typewriter{delay: delay, pause: pause}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		t.graphemes = append(t.graphemes, g.Str())
	}
	if delay <= 0 {
		t.shown = len(t.graphemes)
	}
	return t
}

// Update advances the reveal by dt and reports whether the pause after the
// full text has elapsed.
func (t *Typewriter) Update(dt float64) bool {
	if t.done {
		return true
	}

	if t.shown < len(t.graphemes) {
		t.timer += dt
		for t.timer >= t.delay && t.shown < len(t.graphemes) {
			t.timer -= t.delay
			t.shown++
		}
		return false
	}

	t.held += dt
	if t.held >= t.pause {
		t.done = true
	}
	return t.done
}

// Text returns the revealed part of the narration.
func (t *Typewriter) Text() string {
	return strings.Join(t.graphemes[:t.shown], "")
}

// Revealed returns how many clusters are visible.
func (t *Typewriter) Revealed() int { return t.shown }

// Len returns the total number of clusters.
func (t *Typewriter) Len() int { return len(t.graphemes) }

// Complete reports whether every cluster is visible.
func (t *Typewriter) Complete() bool { return t.shown == len(t.graphemes) }

// Done reports whether the hold after the full text has elapsed.
func (t *Typewriter) Done() bool { return t.done }
