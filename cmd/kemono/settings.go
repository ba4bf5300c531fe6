package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kemono/internal/config"
	"github.com/vovakirdan/kemono/internal/core"
	"github.com/vovakirdan/kemono/internal/games/kemono"
	"github.com/vovakirdan/kemono/internal/platform/tui"
	"github.com/vovakirdan/kemono/internal/storage"
)

// Flags shared by every command that starts sessions.
var (
	flagConfig  string
	flagPace    string
	flagStrict  bool
	flagNoBell  bool
	flagLogPath string
	flagArtDir  string
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom kemono config YAML")
	cmd.Flags().StringVar(&flagPace, "pace", "", "Pace preset: relaxed, classic, devoted")
	cmd.Flags().BoolVar(&flagStrict, "strict", false, "Refuse packs whose favourites name unknown items")
	cmd.Flags().BoolVar(&flagNoBell, "no-bell", false, "Do not ring the terminal bell for cues")
	cmd.Flags().StringVar(&flagLogPath, "log", envDefaults.Log, "Write the session log to this file [KEMONO_LOG]")
	cmd.Flags().StringVar(&flagArtDir, "art-dir", "", "Directory of <asset>.txt files overriding the built-in art")
}

// gameSetup is what a command needs after the game flags are applied.
type gameSetup struct {
	cfg    config.KemonoConfig
	logger *log.Logger
	close  func()
}

// applyGameFlags configures the kemono package and opens the log file.
func applyGameFlags() (gameSetup, error) {
	pace, err := config.ParsePace(flagPace)
	if err != nil {
		return gameSetup{}, err
	}

	logger := log.New(io.Discard)
	closeLog := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(expandHome(flagLogPath), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return gameSetup{}, fmt.Errorf("cannot open log file: %w", err)
		}
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "kemono",
		})
		closeLog = func() { f.Close() }
	}

	cfg, err := config.LoadKemono(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultKemonoConfig()
	}
	if pace != "" {
		config.ApplyPace(&cfg, pace)
	}

	kemono.SetConfigPath(flagConfig)
	kemono.SetPace(pace)
	kemono.SetStrictFavorites(flagStrict)
	kemono.SetArtDir(flagArtDir)
	kemono.SetLogger(logger)

	return gameSetup{cfg: cfg, logger: logger, close: closeLog}, nil
}

// tuiOptions builds the platform options for a local terminal.
func (s gameSetup) tuiOptions(store *storage.Store) tui.Options {
	var cues tui.CuePlayer = tui.NopCuePlayer{}
	if s.cfg.Audio.Bell && !flagNoBell {
		cues = tui.NewBellCuePlayer(os.Stdout, s.cfg.Audio.EnabledCues())
	}
	return tui.Options{
		Store:  store,
		Cues:   cues,
		Theme:  tui.ThemeByName(s.cfg.Display.Theme),
		Logger: s.logger,
		Player: os.Getenv("USER"),
	}
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the ledger, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return nil
	}
	return store
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
