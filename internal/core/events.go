package core

// EventKind names a lifecycle milestone reported by a game.
type EventKind string

const (
	EventCollected EventKind = "collected"
	EventEvolved   EventKind = "evolved"
	EventUnlocked  EventKind = "unlocked"
)

// Event is a milestone that happened during one tick.
// Form is only set for EventEvolved.
type Event struct {
	Kind     EventKind
	Creature string
	Form     string
}
