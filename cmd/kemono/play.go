package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kemono/internal/games/kemono"
	"github.com/vovakirdan/kemono/internal/platform/tui"
	"github.com/vovakirdan/kemono/internal/registry"
)

var flagPackFile string

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a content pack",
	Long: `Start a session with the given pack (default: classic).

Controls:
  1-0          - Pick the item in that tray slot
  [ / ]        - Previous / next item
  Enter/Space  - Give the held item to the creature
  Tab          - Switch creature
  Esc          - Put the item down
  C            - Open or close the collection
  Left/Right   - Collection pages
  ?            - All keys
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Mouse: left-click a tray slot to pick it, left-click elsewhere to give
the held item, right-click to switch creature.

Pace presets:
  relaxed  - Collected at 25, evolved at 50
  classic  - Collected at 50, evolved at 100
  devoted  - Alternate forms need twice as many special items

Examples:
  kemono play
  kemono play starter
  kemono play --pace relaxed --seed 42
  kemono play --pack-file ./my-pack.yaml --strict
  kemono play --config ./my-kemono.yaml --log ./kemono.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPackFile, "pack-file", "", "Play a pack file instead of an installed pack")
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) {
	packID := "classic"
	if len(args) == 1 {
		packID = args[0]
	}

	setup, err := applyGameFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer setup.close()

	var game registry.Game
	if flagPackFile != "" {
		game, err = kemono.NewFromFile(flagPackFile)
	} else if !registry.Exists(packID) {
		fmt.Fprintf(os.Stderr, "Error: unknown pack %q\n", packID)
		fmt.Fprintln(os.Stderr, "Run 'kemono list' to see available packs.")
		os.Exit(1)
	} else {
		game, err = registry.Create(packID)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := tui.Run(game, setup.tuiOptions(store), runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		setup.close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
