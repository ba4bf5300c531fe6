package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kemono/internal/core"
	"github.com/vovakirdan/kemono/internal/registry"
	"github.com/vovakirdan/kemono/internal/storage"
)

// flashTicks is how long a cue label stays in the help bar.
const flashTicks = 20

// Options wires the platform services into a game model.
// Every field is optional.
type Options struct {
	Store         *storage.Store // History ledger; nil disables it
	Cues          CuePlayer
	Theme         Theme
	Logger        *log.Logger
	Player        string // Recorded in the ledger
	ScreenshotDir string // Defaults to ~/.kemono/screenshots
	AllowBack     bool   // Enables the back-to-menu key
}

func (o Options) withDefaults() Options {
	if o.Cues == nil {
		o.Cues = NopCuePlayer{}
	}
	if o.Theme.styles == nil {
		o.Theme = DefaultTheme()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Model is the Bubble Tea model that runs one kemono session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	sessionID  string // Ledger session, empty without a store
	flash      string
	flashTTL   int
	quitting   bool
	backToMenu bool
}

// NewModel resets the game and opens a ledger session for it.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) (Model, error) {
	opts = opts.withDefaults()

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	keys := DefaultKeyMap()
	keys.Back.SetEnabled(opts.AllowBack)

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       keys,
		help:       help.New(),
	}
	m.help.Width = cfg.ScreenW
	m.fitScreen()

	if err := game.Reset(m.gameConfig()); err != nil {
		return Model{}, err
	}
	m.gameState = game.State()

	if opts.Store != nil {
		id, err := opts.Store.BeginSession(game.ID(), opts.Player)
		if err != nil {
			opts.Logger.Warn("history disabled for this session", "err", err)
		} else {
			m.sessionID = id
		}
	}

	opts.Logger.Info("session started", "pack", game.ID(), "seed", cfg.Seed)
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToFrame(msg, &m.inputFrame) {
	case KeyQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case KeyBack:
		m.finish()
		m.backToMenu = true
		return m, nil
	case KeyHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
	case KeyScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "err", err)
		} else {
			m.setFlash("saved " + filepath.Base(path))
		}
	}
	return m, nil
}

// handleResize keeps the session; the game re-lays itself out on render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, c := range result.Cues {
		m.opts.Cues.Play(c)
		m.setFlash(cueLabel(c))
	}
	for _, ev := range result.Events {
		m.record(ev)
	}
	if m.flashTTL > 0 {
		m.flashTTL--
		if m.flashTTL == 0 {
			m.flash = ""
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// record writes a milestone to the ledger. Failures only log.
func (m *Model) record(ev core.Event) {
	m.opts.Logger.Info("milestone", "kind", ev.Kind, "creature", ev.Creature, "form", ev.Form)
	if m.opts.Store == nil || m.sessionID == "" {
		return
	}
	if err := m.opts.Store.RecordMilestone(m.sessionID, ev); err != nil {
		m.opts.Logger.Warn("could not record milestone", "err", err)
	}
}

// finish closes the ledger session once.
func (m *Model) finish() {
	if m.opts.Store == nil || m.sessionID == "" {
		return
	}
	if err := m.opts.Store.EndSession(m.sessionID, m.game.State()); err != nil {
		m.opts.Logger.Warn("could not end session", "err", err)
	}
	m.opts.Logger.Info("session ended", "pack", m.game.ID(), "collected", m.gameState.Collected)
	m.sessionID = ""
}

func (m *Model) setFlash(s string) {
	m.flash = s
	m.flashTTL = flashTicks
}

// fitScreen sizes the game screen to the window minus the help bar.
func (m *Model) fitScreen() {
	h := m.config.ScreenH - lipgloss.Height(m.help.View(m.keys))
	if h < 1 {
		h = 1
	}
	if m.screen.Width() != m.config.ScreenW || m.screen.Height() != h {
		m.screen.Resize(m.config.ScreenW, h)
	}
}

// gameConfig is the runtime config as seen by the game.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenW = m.screen.Width()
	cfg.ScreenH = m.screen.Height()
	return cfg
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".kemono", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	bar := m.help.View(m.keys)
	if m.flash != "" {
		bar += "  " + m.opts.Theme.Style(core.ColorPink).Render(m.flash)
	}
	return RenderScreen(m.screen, m.opts.Theme) + "\n" + bar
}

// State returns the last collection summary.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model, err := NewModel(game, opts, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		// Interrupted programs skip the quit key
		m.finish()
	}
	return err
}
