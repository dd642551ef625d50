package system

import (
	"fmt"

	"github.com/younwookim/relicescape/internal/application/state"
)

// Event is something the simulation asks its host to show or do.
type Event interface {
	isEvent()
}

// MessageEvent shows a short notice.
type MessageEvent struct {
	Text string
}

func (MessageEvent) isEvent() {}

// DialogueEvent shows a line spoken by an NPC.
type DialogueEvent struct {
	Speaker string
	Text    string
}

func (DialogueEvent) isEvent() {}

// DamageFeedbackEvent reports that the player lost health this frame.
type DamageFeedbackEvent struct {
	Amount int
}

func (DamageFeedbackEvent) isEvent() {}

// TransitionEvent requests a progression change. Text is the narration
// shown by Cutscene and Victory.
type TransitionEvent struct {
	To   state.GameState
	Text string
}

func (TransitionEvent) isEvent() {}

// EventQueue collects the events of one frame in emission order.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Message queues a formatted MessageEvent.
func (q *EventQueue) Message(format string, args ...any) {
	q.Push(MessageEvent{Text: fmt.Sprintf(format, args...)})
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns the queued events and empties the queue.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}
