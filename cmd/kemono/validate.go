package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kemono/internal/games/kemono/packs"
	"github.com/vovakirdan/kemono/internal/games/kemono/packs/formats"
)

var (
	flagPrint          bool
	flagWarningsAsErrs bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a pack file",
	Long: `Load a YAML or TOML pack file and report problems.

Errors stop a session from starting (no creatures, duplicate names,
missing forms). Warnings are favourites that name no item in the pack;
they play, but that favourite can never be given. Near matches are
suggested.

With --print the pack is written back as YAML with defaults filled in,
which also converts TOML packs to YAML.

Examples:
  kemono validate ./my-pack.yaml
  kemono validate ./my-pack.toml --print > my-pack.yaml
  kemono validate ./my-pack.yaml --warnings-as-errors`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the normalized pack as YAML")
	validateCmd.Flags().BoolVar(&flagWarningsAsErrs, "warnings-as-errors", false, "Fail on warnings too")
}

func runValidate(_ *cobra.Command, args []string) {
	p, err := packs.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	issues := packs.Validate(p)
	for _, is := range issues {
		fmt.Fprintln(os.Stderr, is)
	}

	if flagPrint {
		out, err := formats.MarshalYAML(p.Raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
	}

	if packs.HasErrors(issues) || (flagWarningsAsErrs && len(issues) > 0) {
		os.Exit(1)
	}
	if !flagPrint {
		items, base, hidden := p.Counts()
		fmt.Printf("%s: ok (%d items, %d creatures, %d hidden, %d warnings)\n",
			p.ID, items, base, hidden, len(issues))
	}
}
