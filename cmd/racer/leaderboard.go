package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/pixel-racer/config"
	"github.com/lixenwraith/pixel-racer/leaderboard"
	"github.com/lixenwraith/pixel-racer/render"
)

type boardOptions struct {
	limit int
	multi bool
	all   bool
}

func newLeaderboardCmd() *cobra.Command {
	var opts boardOptions
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the fastest recorded races",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := viper.GetViper()
			difficulty := ""
			if !opts.all {
				d, err := config.ParseDifficulty(v.GetString(config.KeyDifficulty))
				if err != nil {
					return err
				}
				difficulty = d.String()
			}
			store := leaderboard.NewStore(v.GetString(config.KeyBoardFile))
			return printBoard(store, opts, difficulty, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&opts.limit, "limit", leaderboard.MaxRecords, "records to show")
	cmd.Flags().BoolVar(&opts.multi, "multi", false, "show two player races")
	cmd.Flags().BoolVar(&opts.all, "all", false, "show single player races of every difficulty")
	return cmd
}

func printBoard(store *leaderboard.Store, opts boardOptions, difficulty string, out io.Writer) error {
	board, err := store.Load()
	if err != nil && !errors.Is(err, leaderboard.ErrCorrupt) {
		return err
	}
	if err != nil {
		fmt.Fprintf(out, "%s is unreadable, showing an empty board\n", store.Path())
	}

	if opts.multi {
		records := board.TopMulti(opts.limit)
		if len(records) == 0 {
			fmt.Fprintln(out, "no two player races recorded")
		}
		for i, r := range records {
			fmt.Fprintf(out, "%2d. %-10s beat %-10s %s  %s  %d laps  %s\n",
				i+1, r.Winner, r.Loser, render.FormatDuration(secondsToDuration(r.Time)), r.Map, r.Laps, r.Date)
		}
		return nil
	}

	records := board.TopSingle(opts.limit, difficulty)
	if len(records) == 0 {
		fmt.Fprintln(out, "no single player races recorded")
	}
	for i, r := range records {
		fmt.Fprintf(out, "%2d. %-10s %s  %s  %s  %d laps  %s\n",
			i+1, r.Name, render.FormatDuration(secondsToDuration(r.Time)), r.Map, r.Difficulty, r.Laps, r.Date)
	}
	return nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
