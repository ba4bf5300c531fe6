package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kemono/internal/core"
	"github.com/vovakirdan/kemono/internal/registry"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenRecords
)

// SessionModel manages the full flow: menu -> game or records -> menu.
// It is the top-level model for `kemono menu` and for SSH connections.
type SessionModel struct {
	opts     Options
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	game     *Model
	records  RecordsModel
	notice   string // Shown above the menu, e.g. a pack that failed to start
	quitting bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(opts Options, cfg core.RuntimeConfig) SessionModel {
	opts = opts.withDefaults()
	opts.AllowBack = true
	return SessionModel{
		opts:   opts,
		config: cfg,
		menu:   NewMenuModel(opts.Store, cfg, opts.Theme),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenRecords:
		return m.updateRecords(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsRecords() {
		m.records = NewRecordsModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenRecords
		return m, m.records.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		return m.startGame(selected.PackID)
	}

	return m, cmd
}

func (m SessionModel) startGame(packID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(packID)
	if err == nil {
		var gm Model
		gm, err = NewModel(game, m.opts, m.config)
		if err == nil {
			m.game = &gm
			m.screen = screenGame
			m.notice = ""
			return m, m.game.Init()
		}
	}

	m.opts.Logger.Error("could not start pack", "pack", packID, "err", err)
	m.notice = err.Error()
	return m.backToMenu()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateRecords handles updates when the records board is open.
func (m SessionModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.records.Update(msg)
	if rm, ok := newModel.(RecordsModel); ok {
		m.records = rm
	}

	if m.records.IsGoingBack() {
		return m.backToMenu()
	}
	if m.records.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.game = nil
	m.menu = NewMenuModel(m.opts.Store, m.config, m.opts.Theme)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenRecords:
		return m.records.View()
	}

	if m.notice != "" {
		return m.opts.Theme.Style(core.ColorRed).Render(m.notice) + "\n" + m.menu.View()
	}
	return m.menu.View()
}

// Finish closes any running game session in the ledger.
func (m SessionModel) Finish() {
	if m.game != nil {
		m.game.finish()
	}
}

// RunSession runs the menu flow locally until the player quits.
func RunSession(opts Options, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(opts, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if m, ok := final.(SessionModel); ok {
		m.Finish()
	}
	return err
}
