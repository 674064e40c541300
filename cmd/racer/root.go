package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/pixel-racer/config"
	"github.com/lixenwraith/pixel-racer/leaderboard"
)

const envPrefix = "RACER"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

// Execute adds all child commands to the root command and runs it
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "racer",
		Short:        "Top-down pixel racing in the terminal",
		SilenceUsage: true,
	}

	d := config.Default()
	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.racer.yaml)")
	pf.Int(config.KeyLaps, d.LapsToWin, "laps needed to win")
	pf.String(config.KeyMode, d.Mode.String(), "race mode: continuous or sprint")
	pf.String(config.KeyRotation, d.Rotation.String(), "track rotation: manual or per-lap")
	pf.Bool(config.KeyPowerUps, d.PowerUps, "spawn power-ups on the track")
	pf.String(config.KeyDifficulty, d.Difficulty.String(), "AI difficulty: easy, medium or hard")
	pf.Int(config.KeyPlayers, d.Players, "human players, 0 to 2")
	pf.Bool(config.KeyAI, d.AIEnabled, "race against the AI car")
	pf.Duration(config.KeyCountdown, d.Countdown, "countdown before the start")
	pf.StringSlice(config.KeyTracks, d.Tracks, "track rotation pool in race order")
	pf.String(config.KeyTrackDir, "", "directory with exported track manifests")
	pf.String(config.KeyLogLevel, "info", "log level: debug, info, warn or error")
	pf.String(config.KeyLogFile, "", "log file (play defaults to racer.log)")
	pf.String(config.KeyBoardFile, leaderboard.FileName, "leaderboard file")

	cmd.AddCommand(newPlayCmd())
	cmd.AddCommand(newSimCmd())
	cmd.AddCommand(newTracksCmd())
	cmd.AddCommand(newLeaderboardCmd())
	return cmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home and working directory with name ".racer" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".racer")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindCommandTree(rootCmd, viper.GetViper())
}

func bindCommandTree(cmd *cobra.Command, v *viper.Viper) {
	bindFlags(cmd, v)
	for _, sub := range cmd.Commands() {
		bindCommandTree(sub, v)
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --track-dir to RACER_TRACK_DIR
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v\n", f.Name, err)
			}
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			fmt.Fprintf(os.Stderr, "Could not bind flag %s: %v\n", f.Name, err)
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value, slices are read back through viper directly
		if !f.Changed && v.IsSet(f.Name) && !strings.HasSuffix(f.Value.Type(), "Slice") {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not set flag value for %s: %v\n", f.Name, err)
			}
		}
	})
}
