package engine

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/pixel-racer/component"
	"github.com/lixenwraith/pixel-racer/config"
	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/status"
	"github.com/lixenwraith/pixel-racer/track"
)

// Car colors, HUD and event hints
var (
	PlayerColors = [2]component.RGB{{R: 230, G: 50, B: 50}, {R: 50, G: 130, B: 255}}
	AIColor      = component.RGB{R: 255, G: 200, B: 0}
)

// Option configures a session at construction
type Option func(*Session)

// WithLogger sets the session logger, default is a no-op logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.Log = l
		}
	}
}

// WithClock injects the time source, default is the monotonic system clock
func WithClock(c TimeProvider) Option {
	return func(s *Session) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithRand injects the random source used for spawn sampling
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.Rand = r
		}
	}
}

// WithSystems registers the tick pipeline
func WithSystems(systems ...System) Option {
	return func(s *Session) {
		s.systems = append(s.systems, systems...)
	}
}

// TickResult is what the presentation layer learns from one tick
type TickResult struct {
	Outcome   Outcome
	Phase     Phase
	Frame     uint64
	Countdown time.Duration // remaining countdown, zero once racing
}

// Session is the aggregate owned by the tick loop: cars, track, collectibles,
// projectiles and race progress
// Systems receive it on every Update; presentation reads Snapshot between ticks
type Session struct {
	ID     uuid.UUID
	Config config.RaceConfig

	Track      *track.Geometry
	tracks     []*track.Geometry
	trackIndex int

	Humans []*component.HumanCar
	AI     *component.AICar // nil when the AI is disabled

	PowerUps    []component.PowerUp
	Projectiles []component.Projectile

	// Intents of the running tick and the previous one, for edge triggers
	Intents     Intents
	PrevIntents Intents

	// PowerUpRefill asks the power-up system to fill the track to the spawn count
	PowerUpRefill bool
	LastSpawn     time.Time

	Events *event.EventQueue
	Status *status.Registry
	Log    *zap.Logger
	Rand   *rand.Rand

	clock   TimeProvider
	systems []System

	phase        Phase
	frame        uint64
	countdownEnd time.Time

	outcome      Outcome // signal of the running tick
	final        Outcome
	winner       component.CarID
	finishedAt   time.Time
	resetPending bool
	trackPending bool
}

// NewSession builds a session for the given rule set and track rotation pool
func NewSession(cfg config.RaceConfig, tracks []*track.Geometry, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if len(tracks) == 0 || slices.Contains(tracks, nil) {
		return nil, fmt.Errorf("new session: %w", config.ErrNoTracks)
	}
	if cfg.Rotation == config.RotationPerLap && distinctTracks(tracks) < 2 {
		return nil, fmt.Errorf("new session: %w", config.ErrRotationPool)
	}

	seed := uint64(time.Now().UnixNano())
	s := &Session{
		Config: cfg,
		tracks: tracks,
		Events: event.NewEventQueue(),
		Log:    zap.NewNop(),
		Rand:   rand.New(rand.NewPCG(seed, seed>>1)),
		clock:  NewMonotonicTimeProvider(),
	}
	for _, opt := range opts {
		opt(s)
	}
	slices.SortStableFunc(s.systems, func(a, b System) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})

	s.Reset()
	return s, nil
}

func distinctTracks(tracks []*track.Geometry) int {
	names := make(map[string]struct{}, len(tracks))
	for _, g := range tracks {
		names[g.Name] = struct{}{}
	}
	return len(names)
}

// Reset discards all per-race state and rebuilds it from the config and the current track
func (s *Session) Reset() {
	now := s.clock.Now()
	cfg := s.Config

	s.ID = uuid.New()
	s.Track = s.tracks[s.trackIndex]
	s.Status = status.NewRegistry()

	s.Humans = make([]*component.HumanCar, 0, cfg.Players)
	for i := 0; i < cfg.Players; i++ {
		s.Humans = append(s.Humans, s.newHuman(component.CarID(i)))
	}
	s.AI = nil
	if cfg.AIEnabled {
		s.AI = s.newAI()
	}

	s.PowerUps = nil
	s.Projectiles = nil
	s.Intents = Intents{}
	s.PrevIntents = Intents{}
	s.PowerUpRefill = false
	s.LastSpawn = now
	_ = s.Events.Consume()

	s.phase = PhaseCountdown
	s.frame = 0
	s.countdownEnd = now.Add(cfg.Countdown)
	s.outcome = OutcomeNone
	s.final = OutcomeNone
	s.finishedAt = time.Time{}
	s.resetPending = false
	s.trackPending = false

	s.Status.Strings.Get(status.LabelTrack).Store(s.Track.Name)
	s.Log.Info("race reset",
		zap.String("session", s.ID.String()),
		zap.String("track", s.Track.Name),
		zap.Stringer("mode", cfg.Mode),
		zap.Stringer("rotation", cfg.Rotation),
		zap.Int("laps", cfg.LapsToWin),
		zap.Int("players", cfg.Players),
		zap.Bool("ai", cfg.AIEnabled),
	)
}

func (s *Session) startFor(id component.CarID) track.Start {
	switch id {
	case component.Player1:
		return s.Track.P1Start
	case component.Player2:
		return s.Track.P2Start
	default:
		return s.Track.AIStart
	}
}

func (s *Session) newHuman(id component.CarID) *component.HumanCar {
	body := component.NewBody(s.startFor(id),
		parameter.PlayerMaxVelocity, parameter.PlayerRotationRate, parameter.CarAcceleration,
		parameter.CarMaskWidth, parameter.CarMaskHeight)
	return &component.HumanCar{Body: body, Slot: id, Color: PlayerColors[id]}
}

func (s *Session) newAI() *component.AICar {
	maxVelocity, rotationRate := s.Config.Difficulty.AIProfile()
	body := component.NewBody(s.Track.AIStart,
		maxVelocity, rotationRate, parameter.CarAcceleration,
		parameter.CarMaskWidth, parameter.CarMaskHeight)
	body.Velocity = maxVelocity
	return &component.AICar{Body: body, Color: AIColor, Waypoints: s.Track.Waypoints}
}

// Tick advances the race by one fixed step
func (s *Session) Tick(intents Intents) TickResult {
	now := s.clock.Now()
	s.frame++
	s.outcome = OutcomeNone
	s.Status.Inc(status.MetricTicks)

	switch s.phase {
	case PhaseCountdown:
		s.PrevIntents = intents
		if now.Before(s.countdownEnd) {
			return s.result(now)
		}
		s.startRace(now)
	case PhaseFinished:
		return s.result(now)
	}

	s.Intents = intents
	for _, sys := range s.systems {
		sys.Update(s, now)
		if s.phase == PhaseFinished {
			break
		}
	}
	s.PrevIntents = intents

	if s.phase == PhaseRacing {
		switch {
		case s.trackPending:
			s.changeTrack(now)
		case s.resetPending:
			s.resetPositions(now)
		}
	}
	s.trackPending = false
	s.resetPending = false

	return s.result(now)
}

func (s *Session) result(now time.Time) TickResult {
	r := TickResult{Outcome: s.outcome, Phase: s.phase, Frame: s.frame}
	if s.phase == PhaseCountdown {
		r.Countdown = s.countdownEnd.Sub(now)
	}
	return r
}

func (s *Session) startRace(now time.Time) {
	s.phase = PhaseRacing
	for _, c := range s.Cars() {
		c.Laps().Begin(now)
	}
	s.LastSpawn = now
	s.PowerUpRefill = s.Config.PowerUps
	s.Log.Info("race started", zap.String("session", s.ID.String()))
}

// Signal records a race outcome for the running tick
// The first final outcome ends the race and freezes every lap clock; later
// signals are ignored
func (s *Session) Signal(o Outcome, car component.CarID, now time.Time) {
	if o == OutcomeNone || s.phase == PhaseFinished {
		return
	}
	if !o.Final() {
		if s.outcome == OutcomeNone {
			s.outcome = o
		}
		s.Log.Debug("lap outcome", zap.Stringer("outcome", o), zap.Stringer("car", car))
		return
	}

	s.outcome = o
	s.final = o
	s.winner = car
	s.finishedAt = now
	s.phase = PhaseFinished
	for _, c := range s.Cars() {
		c.Laps().Freeze(now)
	}
	s.Status.Strings.Get(status.LabelOutcome).Store(o.String())
	s.Log.Info("race finished",
		zap.String("session", s.ID.String()),
		zap.Stringer("outcome", o),
		zap.Stringer("car", car),
		zap.Duration("elapsed", s.raceTime(car, now)),
	)
}

// RequestPositionReset returns every car to its start after the running tick
func (s *Session) RequestPositionReset() {
	s.resetPending = true
}

// RequestTrackChange switches to the next track after the running tick
func (s *Session) RequestTrackChange() {
	s.trackPending = true
}

// NextTrack switches track immediately, used for manual rotation between races
func (s *Session) NextTrack() {
	s.changeTrack(s.clock.Now())
}

func (s *Session) changeTrack(now time.Time) {
	s.trackIndex = (s.trackIndex + 1) % len(s.tracks)
	s.Track = s.tracks[s.trackIndex]

	for _, h := range s.Humans {
		h.Start = s.startFor(h.Slot)
	}
	if s.AI != nil {
		s.AI.Start = s.Track.AIStart
		s.AI.Waypoints = s.Track.Waypoints
	}
	s.PowerUps = nil
	s.PowerUpRefill = s.Config.PowerUps && s.phase == PhaseRacing
	s.LastSpawn = now
	s.resetPositions(now)

	s.Status.Inc(status.MetricTrackChange)
	s.Status.Strings.Get(status.LabelTrack).Store(s.Track.Name)
	s.Log.Info("track changed", zap.String("session", s.ID.String()), zap.String("track", s.Track.Name))
}

func (s *Session) resetPositions(now time.Time) {
	for _, h := range s.Humans {
		h.ResetToStart()
		h.StunUntil = time.Time{}
		h.Lap.RestartLap(now)
	}
	if a := s.AI; a != nil {
		a.ResetToStart()
		a.Velocity = a.MaxVelocity
		a.WaypointIndex = 0
		a.StunUntil = time.Time{}
		a.Stalled = false
		a.Lap.RestartLap(now)
	}
	s.Projectiles = nil
	s.Log.Debug("positions reset", zap.String("session", s.ID.String()))
}

// Emit queues a cosmetic event stamped with the current frame
func (s *Session) Emit(ev event.GameEvent) {
	ev.Frame = s.frame
	s.Events.Push(ev)
}

// Cars returns humans in slot order followed by the AI
func (s *Session) Cars() []component.Car {
	cars := make([]component.Car, 0, len(s.Humans)+1)
	for _, h := range s.Humans {
		cars = append(cars, h)
	}
	if s.AI != nil {
		cars = append(cars, s.AI)
	}
	return cars
}

// Human returns the car in a player slot or nil
func (s *Session) Human(id component.CarID) *component.HumanCar {
	for _, h := range s.Humans {
		if h.Slot == id {
			return h
		}
	}
	return nil
}

func (s *Session) Phase() Phase        { return s.phase }
func (s *Session) Frame() uint64       { return s.frame }
func (s *Session) Clock() TimeProvider { return s.clock }
func (s *Session) Now() time.Time      { return s.clock.Now() }
func (s *Session) Outcome() Outcome    { return s.final }

// Paused reports whether the injected clock is a paused PausableClock
func (s *Session) Paused() bool {
	p, ok := s.clock.(interface{ IsPaused() bool })
	return ok && p.IsPaused()
}

// Systems returns the registered pipeline in run order
func (s *Session) Systems() []System {
	return slices.Clone(s.systems)
}
