package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/registry"
	"github.com/vovakirdan/t2048/internal/storage"
)

var (
	flagScoresLimit int
	flagReset       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the scoreboard for a variant",
	Long: `Display the best score and the top finished games for a variant.

Examples:
  t2048 scores
  t2048 scores 2048_vehicles --limit 20
  t2048 scores 2048 --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the best score and game history")
}

func runScores(_ *cobra.Command, args []string) error {
	variantID := cfg.Variant
	if len(args) == 1 {
		variantID = args[0]
	}

	variant, err := registry.Get(variantID)
	if err != nil {
		return fmt.Errorf("%w (run 't2048 list' to see variants)", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagReset {
		if err := store.ResetBestScore(variant.BestKey); err != nil {
			return err
		}
		if err := store.ClearScores(variant.ID); err != nil {
			return err
		}
		logger.Info("scores reset", "variant", variant.ID)
		return nil
	}

	return printScores(store, variant)
}

func printScores(store *storage.Store, variant registry.Variant) error {
	best, err := store.BestScore(variant.BestKey)
	if err != nil {
		return err
	}
	scores, err := store.TopScores(variant.ID, flagScoresLimit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(variant.ID)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", variant.Title)
	fmt.Printf("Best: %d\n", best)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first score!\n", variant.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Tile", "Moves", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %s\n",
			i+1, entry.Score, entry.MaxTile, entry.Moves, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("%d games, average %.0f, best tile %d\n", stats.Games, stats.AvgScore, stats.BestTile)
	return nil
}
