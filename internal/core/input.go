package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with intents rather than raw keys or mouse buttons.
type Action int

const (
	ActionNone             Action = iota
	ActionPickItem                // 1..0 - select the item in InputFrame.Slot
	ActionPrevItem                // [ - select the previous item in the tray
	ActionNextItem                // ] - select the next item in the tray
	ActionApply                   // Enter, Space - use the selected item on the creature
	ActionDeselect                // Esc - clear the selected item
	ActionSwitch                  // Tab - switch to the next creature
	ActionToggleCollection        // C - show or hide the collection browser
	ActionPageNext                // Right - next collection page
	ActionPagePrev                // Left - previous collection page
	ActionPointer                 // Mouse press, see InputFrame.Pointer
	ActionQuit                    // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPickItem:
		return "PickItem"
	case ActionPrevItem:
		return "PrevItem"
	case ActionNextItem:
		return "NextItem"
	case ActionApply:
		return "Apply"
	case ActionDeselect:
		return "Deselect"
	case ActionSwitch:
		return "Switch"
	case ActionToggleCollection:
		return "ToggleCollection"
	case ActionPageNext:
		return "PageNext"
	case ActionPagePrev:
		return "PagePrev"
	case ActionPointer:
		return "Pointer"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerButton identifies a mouse button.
type PointerButton int

const (
	PointerLeft PointerButton = iota
	PointerRight
)

// Pointer is a mouse press in screen cells.
type Pointer struct {
	X, Y   int
	Button PointerButton
}

// Input is one queued action. Slot is only meaningful for ActionPickItem and
// Pointer only for ActionPointer.
type Input struct {
	Action  Action
	Slot    int
	Pointer Pointer
}

// InputFrame holds the inputs a player queued for one simulation tick.
//
// Inputs are kept in arrival order: each one maps to exactly one state
// mutation, so a pick followed by an apply must stay in that order.
type InputFrame struct {
	Inputs []Input
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set queues an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Inputs = append(f.Inputs, Input{Action: a, Slot: -1})
}

// PickSlot queues ActionPickItem for the given tray slot.
func (f *InputFrame) PickSlot(slot int) {
	f.Inputs = append(f.Inputs, Input{Action: ActionPickItem, Slot: slot})
}

// Press queues ActionPointer for a mouse press.
func (f *InputFrame) Press(p Pointer) {
	f.Inputs = append(f.Inputs, Input{Action: ActionPointer, Slot: -1, Pointer: p})
}

// Has returns true if the given action was queued this frame.
func (f InputFrame) Has(a Action) bool {
	for _, in := range f.Inputs {
		if in.Action == a {
			return true
		}
	}
	return false
}

// Empty reports whether nothing was queued.
func (f InputFrame) Empty() bool {
	return len(f.Inputs) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Inputs = f.Inputs[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{Inputs: append([]Input(nil), f.Inputs...)}
}
