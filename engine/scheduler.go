package engine

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/parameter"
)

// ErrStopped is returned by a FrameSink to end the loop without failure
var ErrStopped = errors.New("scheduler stopped")

// FrameSink receives a snapshot and the drained cosmetic events after every tick
// A non-nil error stops the scheduler
type FrameSink interface {
	Frame(snap Snapshot, events []event.GameEvent, res TickResult) error
}

// FrameFunc adapts a function to FrameSink
type FrameFunc func(snap Snapshot, events []event.GameEvent, res TickResult) error

func (f FrameFunc) Frame(snap Snapshot, events []event.GameEvent, res TickResult) error {
	return f(snap, events, res)
}

// Scheduler drives Session.Tick on a fixed ticker
// Each tick runs to completion before the next intents are read
type Scheduler struct {
	session  *Session
	source   IntentSource
	sink     FrameSink
	interval time.Duration
}

// NewScheduler creates a 60 Hz scheduler for the session
func NewScheduler(s *Session, source IntentSource, sink FrameSink) *Scheduler {
	return &Scheduler{
		session:  s,
		source:   source,
		sink:     sink,
		interval: parameter.TickInterval,
	}
}

// Run ticks until ctx is cancelled or the sink stops the loop
// ErrStopped from the sink is reported as a nil error
func (sc *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(sc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := sc.Step(); err != nil {
				if errors.Is(err, ErrStopped) {
					return nil
				}
				return err
			}
		}
	}
}

// Step runs one tick, skipped while the session clock is paused, and hands
// the frame to the sink
func (sc *Scheduler) Step() error {
	intents := sc.source.Intents()

	var res TickResult
	if sc.session.Paused() {
		res = TickResult{Phase: sc.session.Phase(), Frame: sc.session.Frame()}
	} else {
		res = sc.session.Tick(intents)
		if res.Outcome != OutcomeNone {
			sc.session.Log.Debug("tick outcome", zap.Uint64("frame", res.Frame), zap.Stringer("outcome", res.Outcome))
		}
	}
	return sc.sink.Frame(sc.session.Snapshot(), sc.session.Events.Consume(), res)
}

// RunHeadless ticks as fast as possible advancing a mock clock by one tick
// interval per step until the race finishes or maxTicks is reached
func RunHeadless(ctx context.Context, s *Session, clock *MockTimeProvider, source IntentSource, maxTicks int) (TickResult, error) {
	var res TickResult
	for i := 0; i < maxTicks; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		clock.Step()
		res = s.Tick(source.Intents())
		_ = s.Events.Consume()
		if res.Phase == PhaseFinished {
			return res, nil
		}
	}
	return res, nil
}
