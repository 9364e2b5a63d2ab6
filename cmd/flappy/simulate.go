package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	flagFrames    int
	flagAutopilot bool
	flagRestart   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a frontend, as fast as possible, and print
the result. Each frame advances both tick sources by the shorter of the
two configured intervals. Use --seed for reproducible runs.

Examples:
  flappy simulate --frames 500
  flappy simulate --frames 5000 --autopilot --seed 42
  flappy simulate --frames 5000 --restart --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 1000, "Number of frames to run")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Flap automatically")
	simulateCmd.Flags().BoolVar(&flagRestart, "restart", false, "Start a new attempt after each crash")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	sim := flappy.New(cfg, nil)
	res := engine.RunHeadless(sim, engine.HeadlessOptions{
		Frames:    flagFrames,
		Autopilot: flagAutopilot,
		Restart:   flagRestart,
	}, logger)

	state := "crashed"
	if res.Running {
		state = "alive"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "frames=%d attempts=%d score=%d best=%d state=%s\n",
		res.Frames, res.Attempts, res.Score, res.Best, state)
	return nil
}
