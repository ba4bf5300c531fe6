package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kemono/internal/core"
)

// KeyMap holds the in-game key bindings. It doubles as the help.KeyMap
// for the help bar.
type KeyMap struct {
	Slots      key.Binding
	PrevItem   key.Binding
	NextItem   key.Binding
	Apply      key.Binding
	Deselect   key.Binding
	Switch     key.Binding
	Collection key.Binding
	PagePrev   key.Binding
	PageNext   key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings. Back is disabled until the
// model runs under the menu.
func DefaultKeyMap() KeyMap {
	back := key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "menu"),
	)
	back.SetEnabled(false)

	return KeyMap{
		Slots: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-0", "pick item"),
		),
		PrevItem: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev item"),
		),
		NextItem: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next item"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "give"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "drop item"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch creature"),
		),
		Collection: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "collection"),
		),
		PagePrev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		PageNext: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: back,
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Slots, k.Apply, k.Switch, k.Collection, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Slots, k.PrevItem, k.NextItem, k.Apply, k.Deselect},
		{k.Switch, k.Collection, k.PagePrev, k.PageNext},
		{k.Screenshot, k.Help, k.Back, k.Quit},
	}
}

// KeyCommand is a platform-level request derived from a key, as opposed
// to game actions which go into the input frame.
type KeyCommand int

const (
	KeyNone KeyCommand = iota
	KeyGame            // Queued into the frame
	KeyQuit
	KeyBack
	KeyHelp
	KeyScreenshot
)

// slotForKey maps "1".."9" to slots 0..8 and "0" to slot 9.
func slotForKey(s string) int {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return -1
	}
	if s[0] == '0' {
		return 9
	}
	return int(s[0] - '1')
}

// MapKeyToFrame queues the game action for a key, or returns the platform
// command it stands for.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) KeyCommand {
	switch {
	case key.Matches(msg, k.Quit):
		return KeyQuit
	case key.Matches(msg, k.Back):
		return KeyBack
	case key.Matches(msg, k.Help):
		return KeyHelp
	case key.Matches(msg, k.Screenshot):
		return KeyScreenshot
	case key.Matches(msg, k.Slots):
		frame.PickSlot(slotForKey(msg.String()))
	case key.Matches(msg, k.PrevItem):
		frame.Set(core.ActionPrevItem)
	case key.Matches(msg, k.NextItem):
		frame.Set(core.ActionNextItem)
	case key.Matches(msg, k.Apply):
		frame.Set(core.ActionApply)
	case key.Matches(msg, k.Deselect):
		frame.Set(core.ActionDeselect)
	case key.Matches(msg, k.Switch):
		frame.Set(core.ActionSwitch)
	case key.Matches(msg, k.Collection):
		frame.Set(core.ActionToggleCollection)
	case key.Matches(msg, k.PagePrev):
		frame.Set(core.ActionPagePrev)
	case key.Matches(msg, k.PageNext):
		frame.Set(core.ActionPageNext)
	default:
		return KeyNone
	}
	return KeyGame
}

// MapMouseToFrame queues a pointer press. Only left and right button
// presses count; motion, release and the wheel are ignored.
func MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	var button core.PointerButton
	switch msg.Button {
	case tea.MouseButtonLeft:
		button = core.PointerLeft
	case tea.MouseButtonRight:
		button = core.PointerRight
	default:
		return false
	}
	frame.Press(core.Pointer{X: msg.X, Y: msg.Y, Button: button})
	return true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionRecords
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab", "r":
		return MenuActionRecords
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
