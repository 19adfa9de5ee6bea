package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered 2048 variant.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Title", "Theme")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, v := range variants {
		marker := ""
		if v.ID == cfg.Variant {
			marker = "  (default)"
		}
		fmt.Printf("  %-*s  %-16s  %s%s\n", maxIDLen, v.ID, v.Title, v.Theme, marker)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a variant.")
}
