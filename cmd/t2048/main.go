// t2048 plays 2048 in the terminal, locally or over SSH.
//
// Usage:
//
//	t2048 list                 - List available variants
//	t2048 play [variant]       - Play a variant
//	t2048 menu                 - Pick a variant interactively
//	t2048 serve                - Start SSH server for remote play
//	t2048 scores [variant]     - Show the scoreboard for a variant
//	t2048 sim [variant]        - Play a headless game and print the result
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.t2048/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Resolved before every command runs.
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the sliding tile game 2048 for the terminal.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View the scoreboard
  sim      - Play a headless game

Examples:
  t2048 play
  t2048 play 2048_vehicles
  t2048 serve --ssh :2222
  t2048 sim --seed 42 --yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		loaded.Seed = flagSeed
	}
	if flags.Changed("db") {
		loaded.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		loaded.Log.Level = flagLogLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: cfg.Log.Timestamps,
		Prefix:          "t2048",
		Level:           cfg.LogLevel(),
	})
	return nil
}

// openStore opens the scores database. A failure is logged and the
// caller continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", cfg.DBPath, "error", err)
		return nil
	}
	return store
}
