package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kemono/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start kemono with a pack picker menu",
	Long: `Start kemono in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a pack, Tab to open the
records board. Press B during a session to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play pack
  Tab/R        - Records
  Q            - Quit

Examples:
  kemono menu
  kemono menu --fps 20
  kemono menu --db ./history.db`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	setup, err := applyGameFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer setup.close()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(setup.tuiOptions(store), runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
