// skyfall is an endless falling game for the terminal: drop past a
// skyscraper, dodge the birds and knock them out of the sky with webs.
//
// Usage:
//
//	skyfall                  - Play (same as skyfall play)
//	skyfall play             - Play in this terminal
//	skyfall serve            - Start SSH server for remote play
//	skyfall config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom game config YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file while playing
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfall/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyfall",
	Short: "Skyfall - fall past a skyscraper in your terminal",
	Long: `Skyfall is an endless falling game for the terminal.

The hero drops down the side of a skyscraper. Birds cross the sky; touching
one sends the hero tumbling. Shoot webs to knock them down.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  skyfall
  skyfall play --autopilot
  skyfall serve --ssh :2222 --metrics :9090
  skyfall config --config ./my-skyfall.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game configuration named by --config.
func loadConfig() config.SkyfallConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// logLevel parses --log-level.
func logLevel() log.Level {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return level
}

// newLogger creates a logger writing to w at the --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           logLevel(),
	})
}
