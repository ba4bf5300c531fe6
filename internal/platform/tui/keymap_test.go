package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kemono/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSlotForKey(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"1", 0},
		{"5", 4},
		{"9", 8},
		{"0", 9},
		{"a", -1},
		{"10", -1},
	}
	for _, tt := range tests {
		if got := slotForKey(tt.key); got != tt.want {
			t.Errorf("slotForKey(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
	}{
		{"prev item", runeKey('['), core.ActionPrevItem},
		{"next item", runeKey(']'), core.ActionNextItem},
		{"enter applies", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionApply},
		{"space applies", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionApply},
		{"esc deselects", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionDeselect},
		{"tab switches", tea.KeyMsg{Type: tea.KeyTab}, core.ActionSwitch},
		{"c toggles", runeKey('c'), core.ActionToggleCollection},
		{"left pages back", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionPagePrev},
		{"right pages on", tea.KeyMsg{Type: tea.KeyRight}, core.ActionPageNext},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			if cmd := keys.MapKeyToFrame(tt.msg, &frame); cmd != KeyGame {
				t.Fatalf("command = %v, want KeyGame", cmd)
			}
			if len(frame.Inputs) != 1 || frame.Inputs[0].Action != tt.action {
				t.Errorf("inputs = %+v, want %v", frame.Inputs, tt.action)
			}
		})
	}
}

func TestMapKeyDigitsPickSlots(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	keys.MapKeyToFrame(runeKey('3'), &frame)
	keys.MapKeyToFrame(runeKey('0'), &frame)

	if len(frame.Inputs) != 2 {
		t.Fatalf("got %d inputs", len(frame.Inputs))
	}
	if frame.Inputs[0].Action != core.ActionPickItem || frame.Inputs[0].Slot != 2 {
		t.Errorf("'3' = %+v", frame.Inputs[0])
	}
	if frame.Inputs[1].Slot != 9 {
		t.Errorf("'0' slot = %d, want 9", frame.Inputs[1].Slot)
	}
}

func TestMapKeyPlatformCommands(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want KeyCommand
	}{
		{runeKey('q'), KeyQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, KeyQuit},
		{runeKey('?'), KeyHelp},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, KeyScreenshot},
		{runeKey('z'), KeyNone},
		{runeKey('b'), KeyNone}, // Back is off outside the menu
	}
	for _, tt := range tests {
		frame := core.NewInputFrame()
		if got := keys.MapKeyToFrame(tt.msg, &frame); got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.msg.String(), got, tt.want)
		}
		if !frame.Empty() {
			t.Errorf("%q queued %+v", tt.msg.String(), frame.Inputs)
		}
	}

	keys.Back.SetEnabled(true)
	frame := core.NewInputFrame()
	if got := keys.MapKeyToFrame(runeKey('b'), &frame); got != KeyBack {
		t.Errorf("enabled back: got %v", got)
	}
}

func TestMapMouseToFrame(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		queued bool
		button core.PointerButton
	}{
		{"left press", tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true, core.PointerLeft},
		{"right press", tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, true, core.PointerRight},
		{"release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false, 0},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, false, 0},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			if got := MapMouseToFrame(tt.msg, &frame); got != tt.queued {
				t.Fatalf("queued = %v, want %v", got, tt.queued)
			}
			if !tt.queued {
				return
			}
			in := frame.Inputs[0]
			if in.Action != core.ActionPointer || in.Pointer.Button != tt.button {
				t.Errorf("input = %+v", in)
			}
			if in.Pointer.X != tt.msg.X || in.Pointer.Y != tt.msg.Y {
				t.Errorf("pointer at %d,%d", in.Pointer.X, in.Pointer.Y)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionRecords},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
