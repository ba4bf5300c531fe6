package kemono

import "github.com/vovakirdan/kemono/internal/games/kemono/pet"

// Snapshot is a plain-data view of the whole game, used by replay tests
// and the debug dump. It is never loaded back into a session.
type Snapshot struct {
	Tick           uint64
	Pack           string
	Selected       string
	HeldItem       string
	HiddenUnlocked bool
	CollectionOpen bool
	Page           int
	Creatures      []CreatureSnapshot
}

// CreatureSnapshot is one active creature.
type CreatureSnapshot struct {
	Name      string
	Affection int
	Collected bool
	Evolved   bool
	Form      string
	Fire      int
	Sun       int
	Sparkles  []pet.Sparkle
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Pack: g.pack.ID}
	}

	s := g.session
	snap := Snapshot{
		Tick:           g.tick,
		Pack:           g.pack.ID,
		Selected:       s.SelectedCreature().Name(),
		HiddenUnlocked: s.IsHiddenUnlocked(),
		CollectionOpen: s.Browser().Visible(),
		Page:           s.Browser().Page(),
	}
	if it, ok := s.SelectedItem(); ok {
		snap.HeldItem = it.Name()
	}

	for _, c := range s.ActiveCreatures() {
		form, _ := c.EvolvedForm()
		snap.Creatures = append(snap.Creatures, CreatureSnapshot{
			Name:      c.Name(),
			Affection: c.Affection(),
			Collected: c.Collected(),
			Evolved:   c.Evolved(),
			Form:      form,
			Fire:      c.Counter(pet.TagFire),
			Sun:       c.Counter(pet.TagSun),
			Sparkles:  c.Sparkles(),
		})
	}
	return snap
}
