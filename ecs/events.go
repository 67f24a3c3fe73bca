package ecs

import "github.com/milk9111/slingshot/ecs/component"

// EventType identifies world events.
type EventType string

const (
	// EventCue carries a component.Cue for the audio collaborator.
	EventCue EventType = "cue"
	// EventCombat carries a component.CombatEvent.
	EventCombat EventType = "combat"
	// EventStageCleared carries the cleared component.StageID.
	EventStageCleared EventType = "stage_cleared"
	// EventPlayerDied is pushed once when player HP reaches zero.
	EventPlayerDied EventType = "player_died"
	// EventRestart is pushed when the start/restart target is shot.
	EventRestart EventType = "restart"
)

// Event is a world event payload.
type Event struct {
	Type EventType
	Data any
}

// CueEvent builds an EventCue.
func CueEvent(c component.Cue) Event {
	return Event{Type: EventCue, Data: c}
}

// EventQueue is a simple FIFO queue. Events live for one tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns the events pushed this tick without consuming them.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
