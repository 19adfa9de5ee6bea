package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/platform/tui"
	"github.com/vovakirdan/t2048/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After quitting a game, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Scoreboard
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	uiLog, closeLog := uiLogger()
	defer closeLog()

	width, height := terminalSize()

	for {
		result, err := tui.RunMenu(store, width, height)
		if err != nil {
			return err
		}
		if result.Width > 0 {
			width, height = result.Width, result.Height
		}

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		variant, err := registry.Get(result.VariantID)
		if err != nil {
			return err
		}

		if err := tui.Run(variant, store, tui.GameOptions{
			Seed:   cfg.Seed,
			Logger: uiLog,
			Width:  width,
			Height: height,
		}); err != nil {
			logger.Error("game failed", "variant", variant.ID, "error", err)
		}
		// Loop back to menu
	}
}
