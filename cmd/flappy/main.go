// flappy is a fixed-tick Flappy Bird game for the terminal and the desktop.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy window            - Play in a desktop window
//	flappy simulate          - Run a headless simulation
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible pipes
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird on a fixed tick",
	Long: `Flappy Bird driven by two fixed-interval ticks: one for bird physics
and one for the pipes.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  simulate  - Run a headless simulation
  config    - Print the effective configuration

Examples:
  flappy play
  flappy window --scale 1.5
  flappy simulate --ticks 3000 --autopilot --seed 42
  flappy config > my-flappy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, or time based)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration and applies the --seed override.
func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	return cfg, nil
}

// newLogger builds the logger. Without --log-file it writes to fallback;
// pass io.Discard when the terminal belongs to the game. The returned
// closer must be called when done.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closer, nil
}
