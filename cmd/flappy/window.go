package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/gui"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a window sized to the play field.

Controls:
  Space / Click   - Flap
  Enter           - Start (or click the Start Game button)
  Q / Esc         - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per field unit")
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	return gui.Run(gui.Options{
		Config: cfg,
		Scale:  flagScale,
		Logger: logger,
	})
}
