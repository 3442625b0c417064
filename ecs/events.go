package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// EventAnimationStopped is pushed by systems that report animation stops.
const EventAnimationStopped = "animation_stopped"

// EventQueue is a simple FIFO queue. The world clears it after every update,
// so consumers drain it from a system.
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

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
