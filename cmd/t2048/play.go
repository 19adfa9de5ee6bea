package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/platform/tui"
	"github.com/vovakirdan/t2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant, or the configured default.

Controls:
  Arrows/WASD/hjkl  - Slide tiles
  Mouse drag        - Swipe
  R/N               - New game
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Examples:
  t2048 play
  t2048 play 2048_vehicles
  t2048 play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	variantID := cfg.Variant
	if len(args) == 1 {
		variantID = args[0]
	}

	variant, err := registry.Get(variantID)
	if err != nil {
		return fmt.Errorf("%w (run 't2048 list' to see variants)", err)
	}

	width, height := terminalSize()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	uiLog, closeLog := uiLogger()
	defer closeLog()

	if err := tui.Run(variant, store, tui.GameOptions{
		Seed:   cfg.Seed,
		Logger: uiLog,
		Width:  width,
		Height: height,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
