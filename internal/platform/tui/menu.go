package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kemono/internal/core"
	"github.com/vovakirdan/kemono/internal/registry"
	"github.com/vovakirdan/kemono/internal/storage"
)

// MenuItem represents a selectable pack in the menu.
type MenuItem struct {
	PackID string
	Title  string
	Best   int // Best collected count from the ledger, 0 if never played
	Plays  int
}

// MenuModel is the Bubble Tea model for the title screen and pack picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	theme       Theme
	quitting    bool
	selected    *MenuItem // Set when user selects a pack
	openRecords bool      // True if user asked for the records board
}

// NewMenuModel creates a new menu model listing every registered pack.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, theme Theme) MenuModel {
	var stats map[string]*storage.PackStats
	if store != nil {
		// Stats are decoration; a broken ledger just hides them.
		stats, _ = store.AllPackStats()
	}

	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{PackID: g.ID, Title: g.Title}
		if ps, ok := stats[g.ID]; ok {
			item.Best = ps.BestCollected
			item.Plays = ps.Sessions
		}
		items = append(items, item)
	}

	if theme.styles == nil {
		theme = DefaultTheme()
	}
	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		theme:  theme,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionRecords:
		m.openRecords = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := m.theme.Style(core.ColorGold).Render("  K E M O N O  ")
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a content pack", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("No packs installed.", m.width))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		cursor := "  "
		style := m.theme.Style(core.ColorDefault)
		if i == m.cursor {
			cursor = "> "
			style = m.theme.Style(core.ColorCyan)
		}

		line := cursor + item.Title
		if item.Plays > 0 {
			line += fmt.Sprintf("  (best %d collected, %d plays)", item.Best, item.Plays)
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Records  |  Q: Quit"
	b.WriteString(centerText(m.theme.Style(core.ColorGray).Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsRecords returns true if user requested the records board.
func (m MenuModel) WantsRecords() bool {
	return m.openRecords
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
