package system

import (
	"fmt"

	"github.com/milk9111/armageddon/obj"
)

// EventType identifies a gameplay event.
type EventType string

const (
	EventEnemyKilled     EventType = "enemy_killed"
	EventEnemyEscaped    EventType = "enemy_escaped"
	EventPlayerRammed    EventType = "player_rammed"
	EventPlayerResurrect EventType = "player_resurrected"
	EventWaveSpawned     EventType = "wave_spawned"
	EventSessionLost     EventType = "session_lost"
	EventSessionEnded    EventType = "session_ended"
	EventEnemyFired      EventType = "enemy_fired"
	EventPlayerFired     EventType = "player_fired"
)

// Event is a gameplay occurrence recorded during a frame.
type Event struct {
	Type  EventType
	Frame int
	Kind  obj.Kind
	X, Y  float64
	Value int
}

func (e Event) String() string {
	switch e.Type {
	case EventWaveSpawned:
		return fmt.Sprintf("frame %d: %s level=%d", e.Frame, e.Type, e.Value)
	case EventEnemyKilled, EventEnemyEscaped, EventPlayerRammed, EventEnemyFired:
		return fmt.Sprintf("frame %d: %s %s at (%.0f, %.0f)", e.Frame, e.Type, e.Kind, e.X, e.Y)
	default:
		return fmt.Sprintf("frame %d: %s %d", e.Frame, e.Type, e.Value)
	}
}

// EventQueue is a simple FIFO queue.
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

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
