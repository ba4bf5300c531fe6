// kemono is a terminal virtual pet: feed and play with creatures until
// they join your collection and evolve.
//
// Usage:
//
//	kemono list              - List available content packs
//	kemono play [pack]       - Play a pack (default: classic)
//	kemono menu              - Start menu to pick packs interactively
//	kemono records [pack]    - Show session history
//	kemono validate <file>   - Check a pack file
//	kemono serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible sparkles
//	--db <path>        - Set database path (default: ~/.kemono/history.db)
//	--pack-dir <path>  - Extra pack files (default: ~/.kemono/packs)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kemono/internal/games/kemono"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagPackDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kemono",
	Short: "Kemono Collection - befriend creatures in your terminal",
	Long: `Kemono Collection is a terminal virtual pet. Give each creature its
favourite food and toy until it joins your collection, keep going until it
evolves, and collect every base creature to meet the hidden ones.

Available commands:
  list      - Show all available packs
  play      - Play a pack directly
  menu      - Interactive pack picker
  records   - View session history
  validate  - Check a pack file for mistakes
  serve     - Start SSH server for remote play

Examples:
  kemono play
  kemono play starter --pace relaxed
  kemono play --pack-file ./my-pack.yaml
  kemono validate ./my-pack.toml
  kemono serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		ids, err := kemono.RegisterDir(expandHome(flagPackDir))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load packs from %s: %v\n", flagPackDir, err)
		}
		if len(ids) > 0 && cmd.Name() == "list" {
			fmt.Fprintf(os.Stderr, "Loaded %d pack(s) from %s\n", len(ids), flagPackDir)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", envDefaults.FPS, "Tick rate (frames per second) [KEMONO_FPS]")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", envDefaults.Seed, "RNG seed (0 = random based on time) [KEMONO_SEED]")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envDefaults.DB, "Path to history database [KEMONO_DB]")
	rootCmd.PersistentFlags().StringVar(&flagPackDir, "pack-dir", envDefaults.PackDir, "Directory of extra pack files [KEMONO_PACK_DIR]")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}
