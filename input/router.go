package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pixel-racer/engine"
)

// Router turns terminal key events into held controls and queued commands
// HandleEvent runs on the event goroutine, Intents and Drain on the game loop
type Router struct {
	mu       sync.Mutex
	table    *KeyTable
	window   time.Duration
	held     [2][controlCount]time.Time
	commands []Command
	now      func() time.Time
}

// NewRouter creates a router releasing controls window after their last key event
func NewRouter(table *KeyTable, window time.Duration) *Router {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Router{table: table, window: window, now: time.Now}
}

// HandleEvent records a key event, reports whether the event was bound
func (r *Router) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	b, ok := r.table.Lookup(key)
	if !ok {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if b.Command != CommandNone {
		r.commands = append(r.commands, b.Command)
		return true
	}
	if b.Player < 0 || b.Player >= len(r.held) || b.Control == ControlNone {
		return false
	}
	r.held[b.Player][b.Control] = r.now()
	return true
}

// Intents returns the controls still inside the hold window
func (r *Router) Intents() engine.Intents {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	active := func(p int, c Control) bool {
		at := r.held[p][c]
		return !at.IsZero() && now.Sub(at) < r.window
	}

	var out engine.Intents
	for p := range out {
		out[p] = engine.Intent{
			Left:       active(p, ControlLeft),
			Right:      active(p, ControlRight),
			Accelerate: active(p, ControlAccelerate),
			Brake:      active(p, ControlBrake),
			Fire:       active(p, ControlFire),
		}
	}
	return out
}

// Drain returns and clears the queued commands
func (r *Router) Drain() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.commands
	r.commands = nil
	return out
}

// Release drops every held control, used after pause and restart
func (r *Router) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.held = [2][controlCount]time.Time{}
}
