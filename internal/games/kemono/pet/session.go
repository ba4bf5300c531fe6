package pet

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kemono/internal/core"
)

// Definition is the static content a session is built from.
type Definition struct {
	Items  []Item
	Base   []CreatureDef
	Hidden []CreatureDef
}

// FavoriteIssue is a creature favourite that no catalog item can satisfy.
type FavoriteIssue struct {
	Creature   string
	Category   Category
	Name       string
	Suggestion string // Closest item name of the right category, if any
}

func (f FavoriteIssue) String() string {
	msg := fmt.Sprintf("%s: favourite %s %q is not in the catalog", f.Creature, f.Category, f.Name)
	if f.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", f.Suggestion)
	}
	return msg
}

// CheckFavorites lists favourites that do not name an item of the right category.
func CheckFavorites(cat *Catalog, defs ...CreatureDef) []FavoriteIssue {
	foods, toys := namesOf(cat, CategoryFood), namesOf(cat, CategoryToy)

	var issues []FavoriteIssue
	for _, d := range defs {
		if !cat.Has(d.FavoriteFood, CategoryFood) {
			issues = append(issues, FavoriteIssue{
				Creature: d.Name, Category: CategoryFood, Name: d.FavoriteFood,
				Suggestion: Suggest(d.FavoriteFood, foods),
			})
		}
		if !cat.Has(d.FavoriteToy, CategoryToy) {
			issues = append(issues, FavoriteIssue{
				Creature: d.Name, Category: CategoryToy, Name: d.FavoriteToy,
				Suggestion: Suggest(d.FavoriteToy, toys),
			})
		}
	}
	return issues
}

func namesOf(cat *Catalog, category Category) []string {
	var out []string
	for _, it := range cat.items {
		if it.category == category {
			out = append(out, it.name)
		}
	}
	return out
}

type sessionOptions struct {
	rules  Rules
	seed   int64
	logger *log.Logger
	strict bool
}

// Option configures a Session.
type Option func(*sessionOptions)

// WithRules overrides the default lifecycle rules.
func WithRules(r Rules) Option {
	return func(o *sessionOptions) { o.rules = r }
}

// WithSeed fixes the RNG seed. Zero picks a time-based seed.
func WithSeed(seed int64) Option {
	return func(o *sessionOptions) { o.seed = seed }
}

// WithLogger sets the logger milestones and warnings are written to.
func WithLogger(l *log.Logger) Option {
	return func(o *sessionOptions) { o.logger = l }
}

// WithStrictFavorites rejects definitions with unreachable favourites.
func WithStrictFavorites() Option {
	return func(o *sessionOptions) { o.strict = true }
}

// Session is the entry point the presentation layer drives.
// It is not safe for concurrent use; run one per player.
type Session struct {
	catalog *Catalog
	roster  *Roster
	browser *Browser
	rules   Rules
	log     *log.Logger
	issues  []FavoriteIssue
}

// NewSession validates a definition and builds a fresh session.
func NewSession(def Definition, opts ...Option) (*Session, error) {
	o := sessionOptions{rules: DefaultRules()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	if err := o.rules.Validate(); err != nil {
		return nil, err
	}

	cat, err := NewCatalog(def.Items...)
	if err != nil {
		return nil, err
	}

	issues := CheckFavorites(cat, append(append([]CreatureDef(nil), def.Base...), def.Hidden...)...)
	if len(issues) > 0 && o.strict {
		errs := make([]error, len(issues))
		for i, is := range issues {
			errs[i] = fmt.Errorf("pet: %w: %s", ErrUnknownItem, is)
		}
		return nil, errors.Join(errs...)
	}
	for _, is := range issues {
		o.logger.Warn("unreachable favourite", "creature", is.Creature, "category", is.Category, "item", is.Name, "suggest", is.Suggestion)
	}

	rng := rand.New(rand.NewSource(o.seed))
	build := func(defs []CreatureDef) ([]*Creature, error) {
		out := make([]*Creature, 0, len(defs))
		for _, d := range defs {
			c, err := NewCreature(d, o.rules, rng)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
		return out, nil
	}
	base, err := build(def.Base)
	if err != nil {
		return nil, err
	}
	hidden, err := build(def.Hidden)
	if err != nil {
		return nil, err
	}

	roster, err := NewRoster(base, hidden)
	if err != nil {
		return nil, err
	}

	return &Session{
		catalog: cat,
		roster:  roster,
		browser: NewBrowser(o.rules.PageSize, len(roster.active)),
		rules:   o.rules,
		log:     o.logger,
		issues:  issues,
	}, nil
}

// ApplyItemToSelected selects the named item and uses it on the selected creature.
func (s *Session) ApplyItemToSelected(itemID string) (Outcome, error) {
	item, err := s.catalog.Lookup(itemID)
	if err != nil {
		return Outcome{}, err
	}
	s.roster.SelectItem(item)
	return s.use(&item)
}

// ApplySelectedItem uses the held item on the selected creature.
// Without a held item it reports OutcomeNoItemSelected.
func (s *Session) ApplySelectedItem() Outcome {
	var held *Item
	if it, ok := s.roster.SelectedItem(); ok {
		held = &it
	}
	out, err := s.use(held)
	if err != nil {
		// Only reachable if the roster breaks its own invariants.
		s.log.Error("use failed", "err", err)
	}
	return out
}

func (s *Session) use(item *Item) (Outcome, error) {
	c := s.roster.Selected()
	out, err := ResolveUse(s.roster, c, item)
	if err != nil {
		return Outcome{}, err
	}
	if out.Kind == OutcomeFavorite {
		s.log.Debug("favourite", "creature", c.name, "item", out.Item, "affection", c.affection)
	}
	if out.Transition.Collected {
		s.log.Info("collected", "creature", c.name)
	}
	if out.Transition.Evolved {
		s.log.Info("evolved", "creature", c.name, "form", out.Transition.Form)
	}
	if out.Unlocked {
		s.browser.Sync(len(s.roster.active))
		s.log.Info("hidden creatures unlocked", "count", len(s.roster.hidden))
	}
	return out, nil
}

// SelectItem holds the named item.
func (s *Session) SelectItem(itemID string) error {
	item, err := s.catalog.Lookup(itemID)
	if err != nil {
		return err
	}
	s.roster.SelectItem(item)
	return nil
}

// DeselectItem drops the held item.
func (s *Session) DeselectItem() {
	s.roster.DeselectItem()
}

// CycleSelectedCreature switches to the next active creature.
func (s *Session) CycleSelectedCreature() core.Cue {
	return s.roster.CycleSelection()
}

// SelectCreature selects an active creature by name.
func (s *Session) SelectCreature(name string) error {
	return s.roster.Select(name)
}

func (s *Session) ToggleCollectionView() { s.browser.Toggle() }
func (s *Session) PageForward()          { s.browser.PageForward() }
func (s *Session) PageBackward()         { s.browser.PageBackward() }

// Tick advances animations by one frame.
func (s *Session) Tick() {
	s.roster.Tick()
}

func (s *Session) ActiveCreatures() []*Creature    { return s.roster.Active() }
func (s *Session) SelectedCreature() *Creature     { return s.roster.Selected() }
func (s *Session) SelectedItem() (Item, bool)      { return s.roster.SelectedItem() }
func (s *Session) IsHiddenUnlocked() bool          { return s.roster.HiddenUnlocked() }
func (s *Session) Catalog() *Catalog               { return s.catalog }
func (s *Session) Browser() *Browser               { return s.browser }
func (s *Session) Roster() *Roster                 { return s.roster }
func (s *Session) Rules() Rules                    { return s.rules }
func (s *Session) FavoriteIssues() []FavoriteIssue { return append([]FavoriteIssue(nil), s.issues...) }

// PageCreatures returns the active creatures on the current collection page.
func (s *Session) PageCreatures() []*Creature {
	return s.browser.Slice(s.roster.active)
}
