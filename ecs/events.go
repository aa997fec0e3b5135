package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// EventPlayerOutOfBounds is raised when the hopper drops below the visible
// area. Data carries the hopper's y position.
const EventPlayerOutOfBounds = "player_out_of_bounds"

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

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
