package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kemono/internal/games/kemono"
	"github.com/vovakirdan/kemono/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available packs",
	Long:  `Shows the built-in packs and any pack files found in --pack-dir.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No packs available.")
		return
	}

	fmt.Println("Available packs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "ID", "Items", "Pets", "Title")
	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "--", "-----", "----", "-----")

	for _, info := range games {
		pets := "?"
		items := "?"
		if g, err := registry.Create(info.ID); err == nil {
			if kg, ok := g.(*kemono.Game); ok {
				ni, base, hidden := kg.Pack().Counts()
				items = fmt.Sprintf("%d", ni)
				pets = fmt.Sprintf("%d+%d", base, hidden)
			}
		}
		fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, info.ID, items, pets, info.Title)
	}

	fmt.Println()
	fmt.Println("Run 'kemono play <id>' to play a pack.")
}
