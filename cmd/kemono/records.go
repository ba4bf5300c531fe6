package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/kemono/internal/platform/tui"
	"github.com/vovakirdan/kemono/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var recordsCmd = &cobra.Command{
	Use:   "records [pack]",
	Short: "Show session history",
	Long: `Browse past sessions: how many creatures were collected and evolved,
whether the hidden creatures appeared, and which forms were reached.

Without --plain an interactive board opens. With --plain the history is
printed, optionally for one pack.

Examples:
  kemono records
  kemono records classic --plain
  kemono records --plain --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the history instead of opening the board")
	recordsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to print")
}

func runRecords(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagPlain {
		cfg := runtimeConfig()
		if _, err := tui.RunRecords(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	packID := ""
	if len(args) == 1 {
		packID = args[0]
	}
	if err := printRecords(store, packID, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}
}

func printRecords(store *storage.Store, packID string, limit int) error {
	stats, err := store.AllPackStats()
	if err != nil {
		return err
	}
	sessions, err := store.RecentSessions(packID, limit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	if packID != "" {
		if ps := stats[packID]; ps != nil {
			fmt.Printf("%s: %d sessions, best %d collected, %d evolutions, hidden unlocked %d times\n\n",
				packID, ps.Sessions, ps.BestCollected, ps.Evolutions, ps.Unlocks)
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Date", "Collected", "Evolved", "Hidden", "Player", "Pack")
	for i, row := range tui.SessionRows(sessions) {
		t.Row(append(row, sessions[i].PackID)...)
	}
	fmt.Println(t.String())

	if packID != "" {
		forms, err := store.DiscoveredForms(packID)
		if err != nil {
			return err
		}
		if len(forms) > 0 {
			fmt.Println()
			fmt.Println("Forms reached:")
			names := make([]string, 0, len(forms))
			for form := range forms {
				names = append(names, form)
			}
			sort.Strings(names)
			for _, form := range names {
				fmt.Printf("  %-20s %d\n", form, forms[form])
			}
		}
	}
	return nil
}
