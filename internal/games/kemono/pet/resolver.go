package pet

import (
	"fmt"

	"github.com/vovakirdan/kemono/internal/core"
)

// OutcomeKind classifies the result of using an item.
type OutcomeKind int

const (
	OutcomeNoItemSelected OutcomeKind = iota
	OutcomeFavorite
	OutcomeMismatch
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNoItemSelected:
		return "no item selected"
	case OutcomeFavorite:
		return "favorite"
	case OutcomeMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Outcome is the full report of one item use.
type Outcome struct {
	Kind       OutcomeKind
	Creature   string
	Item       string
	Cues       []core.Cue
	Unlocked   bool       // The hidden creatures joined the active list
	Transition Transition // Lifecycle steps caused by the use
	Delta      int        // Affection actually gained after clamping
}

// Events converts the outcome into platform events for the step result.
func (o Outcome) Events() []core.Event {
	var evs []core.Event
	if o.Transition.Collected {
		evs = append(evs, core.Event{Kind: core.EventCollected, Creature: o.Creature})
	}
	if o.Transition.Evolved {
		evs = append(evs, core.Event{Kind: core.EventEvolved, Creature: o.Creature, Form: o.Transition.Form})
	}
	if o.Unlocked {
		evs = append(evs, core.Event{Kind: core.EventUnlocked})
	}
	return evs
}

// IsFavorite reports whether item is the creature's favourite of its category.
func IsFavorite(c *Creature, item Item) bool {
	return c.Likes(item)
}

// ResolveUse applies item to creature and reports what happened. A nil item
// yields OutcomeNoItemSelected. A mismatch never mutates anything.
//
// For a favourite use of Fire or Sun the usage counter is bumped before the
// affection, so the use that triggers evolution counts towards the form.
func ResolveUse(r *Roster, c *Creature, item *Item) (Outcome, error) {
	if item == nil {
		return Outcome{Kind: OutcomeNoItemSelected, Creature: c.name}, nil
	}

	out := Outcome{Creature: c.name, Item: item.name}
	if !IsFavorite(c, *item) {
		out.Kind = OutcomeMismatch
		if item.category == CategoryFood {
			out.Cues = []core.Cue{core.CueFoodMismatch}
		} else {
			out.Cues = []core.Cue{core.CueToyMismatch}
		}
		return out, nil
	}

	// Counted before affection so the use that evolves also picks the form.
	if tag, ok := SpecialTag(item.name); ok {
		if err := c.RecordSpecialUse(tag); err != nil {
			return Outcome{}, err
		}
	}

	before := c.affection
	tr, err := c.ApplyAffection(item.potency)
	if err != nil {
		return Outcome{}, fmt.Errorf("pet: use %s on %s: %w", item.name, c.name, err)
	}

	out.Kind = OutcomeFavorite
	out.Transition = tr
	out.Delta = c.affection - before
	out.Cues = []core.Cue{core.CueHappy}

	if r != nil && r.CheckUnlock() {
		out.Unlocked = true
		out.Cues = append(out.Cues, core.CueHappy)
	}
	return out, nil
}
