package event

import (
	"sync"

	"github.com/lixenwraith/pixel-racer/parameter"
)

// EventQueue buffers the cosmetic events of a tick until the frame sink
// drains them
// The ring is bounded: a push into a full ring overwrites the oldest event
// and counts it as dropped
type EventQueue struct {
	mu      sync.Mutex
	ring    [parameter.EventQueueSize]GameEvent
	start   int
	n       int
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.n == len(eq.ring) {
		eq.ring[eq.start] = ev
		eq.start = (eq.start + 1) % len(eq.ring)
		eq.dropped++
		return
	}
	eq.ring[(eq.start+eq.n)%len(eq.ring)] = ev
	eq.n++
}

// Consume returns the pending events oldest first and empties the ring
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.n == 0 {
		return nil
	}
	out := make([]GameEvent, eq.n)
	for i := range out {
		out[i] = eq.ring[(eq.start+i)%len(eq.ring)]
	}
	eq.start, eq.n = 0, 0
	return out
}

func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.n
}

// Dropped counts events lost to overflow since creation
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
