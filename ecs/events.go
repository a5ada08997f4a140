package ecs

import "github.com/milk9111/spritewalk/ecs/component"

// EventQueue is a FIFO of raw input events gathered between ticks.
type EventQueue struct {
	items []component.InputEvent
}

// Push adds events in arrival order.
func (q *EventQueue) Push(evts ...component.InputEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evts...)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []component.InputEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

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
