package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lixenwraith/pixel-racer/audio"
	"github.com/lixenwraith/pixel-racer/config"
	"github.com/lixenwraith/pixel-racer/core"
	"github.com/lixenwraith/pixel-racer/engine"
	"github.com/lixenwraith/pixel-racer/event"
	"github.com/lixenwraith/pixel-racer/input"
	"github.com/lixenwraith/pixel-racer/leaderboard"
	rlog "github.com/lixenwraith/pixel-racer/log"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/render"
	"github.com/lixenwraith/pixel-racer/system"
)

const defaultPlayLog = "racer.log"

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Race in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mute, _ := cmd.Flags().GetBool("mute")
			return runPlay(cmd.Context(), viper.GetViper(), mute)
		},
	}
	cmd.Flags().StringSlice(config.KeyName, []string{"PLAYER1", "PLAYER2"}, "names recorded on the leaderboard")
	cmd.Flags().Bool("mute", false, "disable sound")
	return cmd
}

func runPlay(ctx context.Context, v *viper.Viper, mute bool) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logFile := v.GetString(config.KeyLogFile)
	if logFile == "" {
		logFile = defaultPlayLog
	}
	logger, err := rlog.New(v.GetString(config.KeyLogLevel), logFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tracks, err := resolveTracks(v, &cfg, logger)
	if err != nil {
		return err
	}

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	session, err := engine.NewSession(cfg, tracks,
		engine.WithLogger(logger),
		engine.WithClock(clock),
		engine.WithSystems(system.Default()...),
	)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashRestore(screen.Fini)
	defer func() {
		core.SetCrashRestore(nil)
		screen.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = !mute
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable", zap.Error(err))
	}
	defer sound.Cleanup()

	router := input.NewRouter(nil, parameter.InputHoldWindow)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			router.HandleEvent(ev)
		}
	})

	loop := &playLoop{
		session:  session,
		clock:    clock,
		router:   router,
		sound:    sound,
		renderer: render.NewRenderer(screen),
		board:    leaderboard.NewStore(v.GetString(config.KeyBoardFile)),
		names:    playerNames(v.GetStringSlice(config.KeyName)),
		log:      logger,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = engine.NewScheduler(session, router, loop).Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	logger.Info("race closed", zap.Stringer("outcome", session.Outcome()), zap.Strings("status", session.Status.Report()))
	return err
}

func playerNames(names []string) [2]string {
	out := [2]string{"PLAYER1", "PLAYER2"}
	for i := 0; i < len(out) && i < len(names); i++ {
		out[i] = names[i]
	}
	return out
}

// playLoop is the interactive frame sink: it applies queued key commands,
// plays cues, records the finished race and draws the frame
type playLoop struct {
	session  *engine.Session
	clock    *engine.PausableClock
	router   *input.Router
	sound    *audio.SoundManager
	renderer engine.FrameSink
	board    *leaderboard.Store
	names    [2]string
	log      *zap.Logger

	recorded bool
}

func (p *playLoop) Frame(snap engine.Snapshot, events []event.GameEvent, res engine.TickResult) error {
	for _, c := range p.router.Drain() {
		switch c {
		case input.CommandQuit:
			return engine.ErrStopped
		case input.CommandPause:
			if p.session.Phase() != engine.PhaseFinished {
				p.clock.Toggle()
				p.router.Release()
			}
		case input.CommandRestart:
			p.restart()
		case input.CommandNextTrack:
			p.session.NextTrack()
			p.restart()
		}
	}

	p.sound.Handle(events)

	if p.session.Phase() == engine.PhaseFinished && !p.recorded {
		p.recorded = true
		p.record()
	}
	return p.renderer.Frame(snap, events, res)
}

func (p *playLoop) restart() {
	p.clock.Resume()
	p.session.Reset()
	p.router.Release()
	p.recorded = false
	p.log.Info("race restarted", zap.String("track", p.session.Track.Name))
}

func (p *playLoop) record() {
	res, ok := p.session.Result()
	if !ok {
		return
	}
	saved, err := p.board.Record(res, p.names)
	if err != nil {
		p.log.Warn("leaderboard not saved", zap.String("path", p.board.Path()), zap.Error(err))
		return
	}
	p.log.Info("race finished",
		zap.Stringer("outcome", res.Outcome),
		zap.Duration("time", res.Time),
		zap.Bool("recorded", saved),
	)
}
