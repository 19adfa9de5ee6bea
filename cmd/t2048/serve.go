package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the t2048 SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a variant menu.
Scores are stored per-server (all users share the same scoreboard).

Host key handling:
  - If --host-key (or ssh.host_key_path) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.t2048/host_key

Examples:
  t2048 serve                           # Listen on :23234 with auto-generated key
  t2048 serve --ssh :2222               # Listen on port 2222
  t2048 serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	sshCfg := cfg.SSH
	if cmd.Flags().Changed("ssh") {
		sshCfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		sshCfg.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		sshCfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     sshCfg.Address,
		HostKeyPath: sshCfg.HostKeyPath,
		DBPath:      cfg.DBPath,
		IdleTimeout: sshCfg.IdleTimeout,
		Seed:        cfg.Seed,
	}, logger.WithPrefix("t2048-ssh"))
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting t2048 SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
