package pet

import (
	"fmt"

	"github.com/vovakirdan/kemono/internal/core"
)

// Roster holds every creature of a session and the player's current selection.
//
// The active list starts as the base creatures. Hidden creatures are appended
// once, the first time CheckUnlock sees every base creature collected.
type Roster struct {
	base   []*Creature
	hidden []*Creature
	active []*Creature
	byName map[string]*Creature

	hiddenUnlocked bool
	selected       int
	selectedItem   *Item
}

// NewRoster builds a roster. Base must not be empty and names must be unique
// across base and hidden creatures.
func NewRoster(base, hidden []*Creature) (*Roster, error) {
	if len(base) == 0 {
		return nil, fmt.Errorf("pet: %w: roster needs at least one base creature", ErrInvalidArgument)
	}

	r := &Roster{
		base:   append([]*Creature(nil), base...),
		hidden: append([]*Creature(nil), hidden...),
		byName: make(map[string]*Creature, len(base)+len(hidden)),
	}
	for _, c := range append(append([]*Creature(nil), base...), hidden...) {
		if c == nil {
			return nil, fmt.Errorf("pet: %w: nil creature in roster", ErrInvalidArgument)
		}
		if _, dup := r.byName[c.name]; dup {
			return nil, fmt.Errorf("pet: %w: duplicate creature %q", ErrInvalidArgument, c.name)
		}
		r.byName[c.name] = c
	}
	r.active = append([]*Creature(nil), r.base...)
	return r, nil
}

// Selected returns the creature that receives items.
func (r *Roster) Selected() *Creature {
	return r.active[r.selected]
}

// SelectedIndex returns the position of the selected creature in the active list.
func (r *Roster) SelectedIndex() int {
	return r.selected
}

// CycleSelection moves to the next active creature, wrapping around.
func (r *Roster) CycleSelection() core.Cue {
	r.selected = (r.selected + 1) % len(r.active)
	return core.CueSwitch
}

// Select makes the named active creature the selected one.
func (r *Roster) Select(name string) error {
	for i, c := range r.active {
		if c.name == name {
			r.selected = i
			return nil
		}
	}
	return unknownName(ErrUnknownCreature, name, r.activeNames())
}

// SelectItem remembers the item the player is holding.
func (r *Roster) SelectItem(item Item) {
	r.selectedItem = &item
}

// DeselectItem drops the held item.
func (r *Roster) DeselectItem() {
	r.selectedItem = nil
}

// SelectedItem returns the held item, if any.
func (r *Roster) SelectedItem() (Item, bool) {
	if r.selectedItem == nil {
		return Item{}, false
	}
	return *r.selectedItem, true
}

// CheckUnlock appends the hidden creatures once every base creature is
// collected. It returns true only on the call that performs the unlock.
// A roster without hidden creatures never unlocks.
func (r *Roster) CheckUnlock() bool {
	if r.hiddenUnlocked || len(r.hidden) == 0 {
		return false
	}
	for _, c := range r.base {
		if !c.collected {
			return false
		}
	}
	r.hiddenUnlocked = true
	r.active = append(r.active, r.hidden...)
	return true
}

// Creature looks up any creature of the roster by name, hidden ones included.
func (r *Roster) Creature(name string) (*Creature, error) {
	c, ok := r.byName[name]
	if !ok {
		return nil, unknownName(ErrUnknownCreature, name, r.allNames())
	}
	return c, nil
}

// Active returns the creatures that can currently be selected, in order.
func (r *Roster) Active() []*Creature {
	return append([]*Creature(nil), r.active...)
}

func (r *Roster) Base() []*Creature    { return append([]*Creature(nil), r.base...) }
func (r *Roster) Hidden() []*Creature  { return append([]*Creature(nil), r.hidden...) }
func (r *Roster) HiddenUnlocked() bool { return r.hiddenUnlocked }

// CollectedCount counts collected active creatures.
func (r *Roster) CollectedCount() int {
	n := 0
	for _, c := range r.active {
		if c.collected {
			n++
		}
	}
	return n
}

// EvolvedCount counts evolved active creatures.
func (r *Roster) EvolvedCount() int {
	n := 0
	for _, c := range r.active {
		if c.evolved {
			n++
		}
	}
	return n
}

// Tick advances every creature's animation.
func (r *Roster) Tick() {
	for _, c := range r.active {
		c.Tick()
	}
}

func (r *Roster) activeNames() []string {
	names := make([]string, len(r.active))
	for i, c := range r.active {
		names[i] = c.name
	}
	return names
}

func (r *Roster) allNames() []string {
	names := make([]string, 0, len(r.byName))
	for _, c := range append(append([]*Creature(nil), r.base...), r.hidden...) {
		names = append(names, c.name)
	}
	return names
}
