package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfall/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetrics     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the skyfall SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Sessions start on autopilot; the
first arrow key hands over control.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.skyfall/host_key

Examples:
  skyfall serve                           # Listen on :23234 with auto-generated key
  skyfall serve --ssh :2222               # Listen on port 2222
  skyfall serve --host-key ./my_host_key  # Use specific host key
  skyfall serve --metrics :9090           # Expose Prometheus metrics

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetrics, "metrics", "", "Serve Prometheus metrics on this address (e.g. :9090)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:        flagSSHAddr,
		HostKeyPath:    flagHostKey,
		IdleTimeout:    time.Duration(flagIdleTimeout) * time.Minute,
		MetricsAddress: flagMetrics,
		Game:           loadConfig(),
		TickRate:       flagFPS,
		LogLevel:       logLevel(),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting skyfall SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
