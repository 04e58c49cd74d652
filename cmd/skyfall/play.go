package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/platform/tui"
)

var flagAutopilot bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Left/A, Right/D  - Lean left/right (each press tilts a little further)
  Space            - Shoot a web at the nearest bird
  Mouse click      - Shoot a web at that spot
  P/Esc            - Pause
  R                - Restart
  Q/Ctrl+C         - Quit

Examples:
  skyfall play
  skyfall play --autopilot
  skyfall play --seed 42 --log-file skyfall.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer with Perlin noise until the first arrow key")

	// The root command plays too
	rootCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer with Perlin noise until the first arrow key")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "skyfall")

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger:    logger,
		Autopilot: flagAutopilot,
	}

	logger.Info("starting game", "width", width, "height", height, "seed", flagSeed)
	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
