package system

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/config"
	"github.com/lixenwraith/pixel-racer/engine"
	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/status"
	"github.com/lixenwraith/pixel-racer/track"
	"github.com/lixenwraith/pixel-racer/vmath"
)

var (
	speedway  = track.GenerateOval(track.Speedway())
	superoval = track.GenerateOval(track.Superoval())

	// Middle of the finish strip on the speedway top straight
	onFinish = vmath.V(float64(speedway.FinishPos.X)+3, 200)
)

// newRace builds a started race on the speedway with power-ups off and no countdown
func newRace(t *testing.T, mutate func(*config.RaceConfig), systems ...engine.System) (*engine.Session, *engine.MockTimeProvider) {
	t.Helper()
	cfg := config.Default()
	cfg.Countdown = 0
	cfg.PowerUps = false
	if mutate != nil {
		mutate(&cfg)
	}
	if len(systems) == 0 {
		systems = Default()
	}
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s, err := engine.NewSession(cfg, []*track.Geometry{speedway, superoval},
		engine.WithClock(clock),
		engine.WithSystems(systems...),
		engine.WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	require.NoError(t, err)

	res := s.Tick(engine.Intents{})
	require.Equal(t, engine.PhaseRacing, res.Phase)
	return s, clock
}

func eventsOf(s *engine.Session, typ event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range s.Events.Consume() {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

// lap teleports a car through the checkpoint and onto the finish line
func lap(s *engine.Session, clock *engine.MockTimeProvider, b *component.Body, after time.Duration) engine.TickResult {
	b.Pos = speedway.Checkpoint
	clock.Step()
	s.Tick(engine.Intents{})

	b.Pos = onFinish
	b.Heading = -90
	clock.Advance(after)
	return s.Tick(engine.Intents{})
}

func TestDriveAcceleratesAlongHeading(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) { c.AIEnabled = false })
	h := s.Humans[0]
	start := h.Pos

	clock.Step()
	s.Tick(engine.Intents{{Accelerate: true}})
	assert.InDelta(t, 0.1, h.Velocity, 1e-9)
	assert.InDelta(t, start.X+0.1, h.Pos.X, 1e-9)

	// Opposite turns cancel, brake has no effect while accelerating
	clock.Step()
	s.Tick(engine.Intents{{Accelerate: true, Brake: true, Left: true, Right: true}})
	assert.InDelta(t, 0.2, h.Velocity, 1e-9)
	assert.Equal(t, -90.0, h.Heading)

	clock.Step()
	s.Tick(engine.Intents{{Left: true}})
	assert.Equal(t, -86.0, h.Heading)
	assert.InDelta(t, 0.0, h.Velocity, 1e-9)
}

func TestStunnedHumanCoasts(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) { c.AIEnabled = false })
	h := s.Humans[0]
	h.Velocity = 1
	h.StunUntil = clock.Now().Add(time.Second)

	clock.Step()
	s.Tick(engine.Intents{{Accelerate: true, Left: true}})
	assert.InDelta(t, 0.8, h.Velocity, 1e-9)
	assert.Equal(t, -90.0, h.Heading)
}

func TestWallBounce(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) { c.AIEnabled = false })
	h := s.Humans[0]
	h.Pos = vmath.V(420, 166)
	h.Heading = 0
	h.Velocity = 4
	s.Events.Consume()

	clock.Step()
	s.Tick(engine.Intents{{Accelerate: true}})
	assert.Equal(t, -2.0, h.Velocity, "bounce is capped at reverse max")
	assert.InDelta(t, 164, h.Pos.Y, 1e-9)
	assert.Len(t, eventsOf(s, event.EventWallSpark), 1)
	assert.Equal(t, int64(1), s.Status.Int(status.MetricWallHits))

	// Coasting away from the wall never exceeds the reverse cap
	for i := 0; i < 6; i++ {
		clock.Step()
		s.Tick(engine.Intents{})
		require.GreaterOrEqual(t, h.Velocity, -h.MaxVelocity*parameter.CarReverseFactor)
	}
}

func TestWallPushOutWhileBoosted(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) { c.AIEnabled = false })
	h := s.Humans[0]
	ApplyEffect(h, component.PowerSpeedBoost, clock.Now())
	h.Pos = vmath.V(420, 166)
	h.Heading = 0
	h.Velocity = 4

	clock.Step()
	s.Tick(engine.Intents{{Accelerate: true}})
	mask, origin := h.Silhouette()
	_, hit := speedway.Walls.Overlap(mask, origin.X, origin.Y)
	assert.False(t, hit)
	assert.InDelta(t, 2.05, h.Velocity, 1e-9)
	assert.Equal(t, int64(1), s.Status.Int(status.MetricPushOuts))
}

func TestSprintTwoLaps(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) {
		c.AIEnabled = false
		c.Mode = config.ModeSprint
		c.LapsToWin = 2
	})
	h := s.Humans[0]

	res := lap(s, clock, &h.Body, 10*time.Second)
	assert.Equal(t, engine.OutcomeP1LapWin, res.Outcome)
	assert.Equal(t, engine.PhaseRacing, res.Phase)
	assert.Equal(t, 1, h.Lap.Count)
	assert.Equal(t, speedway.P1Start.Pos, h.Pos, "sprint lap resets to start")
	assert.Len(t, eventsOf(s, event.EventLapCelebration), 1)

	res = lap(s, clock, &h.Body, 10*time.Second)
	assert.Equal(t, engine.OutcomeWin, res.Outcome)
	assert.Equal(t, engine.PhaseFinished, res.Phase)
	assert.Equal(t, 2, h.Lap.Count)

	r, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, component.Player1, r.Winner)
	assert.Equal(t, h.Lap.Elapsed(clock.Now()), r.Time)
}

func TestLapCooldownOnTrack(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) { c.AIEnabled = false })
	h := s.Humans[0]

	require.Equal(t, engine.OutcomeNone, lap(s, clock, &h.Body, 10*time.Second).Outcome)
	require.Equal(t, 1, h.Lap.Count)

	// Second crossing one second later is ignored, the flag survives
	lap(s, clock, &h.Body, time.Second)
	assert.Equal(t, 1, h.Lap.Count)
	assert.True(t, h.Lap.Checkpoint)

	// Staying on the line past the cooldown counts it
	clock.Advance(time.Second)
	s.Tick(engine.Intents{})
	assert.Equal(t, 2, h.Lap.Count)
}

func TestWrongWayWithoutCheckpoint(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) { c.AIEnabled = false })
	h := s.Humans[0]
	s.Events.Consume()

	h.Pos = onFinish
	clock.Advance(20 * time.Second)
	s.Tick(engine.Intents{})
	clock.Step()
	s.Tick(engine.Intents{})

	assert.Len(t, eventsOf(s, event.EventWrongWay), 1, "edge triggered")
	assert.Zero(t, h.Lap.Count)
}

func TestAIWinMeansLose(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) { c.LapsToWin = 1 })
	a := s.AI
	a.Velocity = 0

	res := lap(s, clock, &a.Body, 10*time.Second)
	assert.Equal(t, engine.OutcomeLose, res.Outcome)
	assert.Equal(t, engine.OutcomeLose, s.Outcome())
}

func TestTwoPlayerFinalWin(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) {
		c.Players = 2
		c.AIEnabled = false
		c.LapsToWin = 1
	})
	res := lap(s, clock, &s.Humans[1].Body, 10*time.Second)
	assert.Equal(t, engine.OutcomeP2Win, res.Outcome)

	// The race is over, later crossings change nothing
	res = lap(s, clock, &s.Humans[0].Body, 10*time.Second)
	assert.Equal(t, engine.OutcomeNone, res.Outcome)
	assert.Zero(t, s.Humans[0].Lap.Count)
}

func TestContinuousPerLapChangesMap(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) {
		c.AIEnabled = false
		c.Rotation = config.RotationPerLap
	})
	res := lap(s, clock, &s.Humans[0].Body, 10*time.Second)
	assert.Equal(t, engine.OutcomeChangeMap, res.Outcome)
	assert.Equal(t, "superoval", s.Track.Name)
	assert.Equal(t, superoval.P1Start.Pos, s.Humans[0].Pos)
	assert.Equal(t, 1, s.Humans[0].Lap.Count, "laps carry over")
}

func TestSprintSingleLapWinsOutright(t *testing.T) {
	s, clock := newRace(t, func(c *config.RaceConfig) {
		c.AIEnabled = false
		c.Mode = config.ModeSprint
		c.LapsToWin = 1
	})
	res := lap(s, clock, &s.Humans[0].Body, 10*time.Second)
	assert.Equal(t, engine.OutcomeWin, res.Outcome)
}
