package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/pixel-racer/config"
	"github.com/lixenwraith/pixel-racer/engine"
	rlog "github.com/lixenwraith/pixel-racer/log"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/system"
)

// simEpoch keeps headless runs reproducible
var simEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type simOptions struct {
	maxTicks int
	seed     uint64
}

func newSimCmd() *cobra.Command {
	var opts simOptions
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run an AI-only race headless and print the session metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSim(cmd.Context(), viper.GetViper(), opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&opts.maxTicks, "max-ticks", int(10*time.Minute/parameter.TickInterval), "tick limit")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "random seed for power-up spawns")
	return cmd
}

func runSim(ctx context.Context, v *viper.Viper, opts simOptions, out io.Writer) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg.Players = 0
	cfg.AIEnabled = true
	cfg.Countdown = 0

	logger, err := rlog.New(v.GetString(config.KeyLogLevel), v.GetString(config.KeyLogFile))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tracks, err := resolveTracks(v, &cfg, logger)
	if err != nil {
		return err
	}

	clock := engine.NewMockTimeProvider(simEpoch)
	session, err := engine.NewSession(cfg, tracks,
		engine.WithLogger(logger),
		engine.WithClock(clock),
		engine.WithRand(rand.New(rand.NewPCG(opts.seed, opts.seed))),
		engine.WithSystems(system.Default()...),
	)
	if err != nil {
		return err
	}

	idle := engine.IntentFunc(func() engine.Intents { return engine.Intents{} })
	res, err := engine.RunHeadless(ctx, session, clock, idle, opts.maxTicks)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "session %s\n", session.ID)
	fmt.Fprintf(out, "track %s\n", session.Track.Name)
	fmt.Fprintf(out, "phase %s\n", res.Phase)
	fmt.Fprintf(out, "outcome %s\n", session.Outcome())
	fmt.Fprintf(out, "frames %d\n", res.Frame)
	if result, ok := session.Result(); ok {
		fmt.Fprintf(out, "time %s\n", result.Time)
	}
	for _, line := range session.Status.Report() {
		fmt.Fprintln(out, line)
	}
	return nil
}
