package pet

import (
	"fmt"
	"math/rand"
	"strings"
)

// Stage is the lifecycle position of a creature. Stages never go backwards.
type Stage int

const (
	StageNew Stage = iota
	StageBonding
	StageCollected
	StageEvolved
)

func (s Stage) String() string {
	switch s {
	case StageNew:
		return "new"
	case StageBonding:
		return "bonding"
	case StageCollected:
		return "collected"
	case StageEvolved:
		return "evolved"
	default:
		return "unknown"
	}
}

// CreatureDef is the static definition of a creature.
type CreatureDef struct {
	Name         string
	FavoriteFood string
	FavoriteToy  string
	BaseAsset    string
	Evolution    EvolutionSpec
}

// Animation is the transient bounce/fade timer. It has no game-logic meaning.
type Animation struct {
	Playing  bool
	Frame    int
	Duration int
}

// Progress returns how far the animation is, in [0, 1].
func (a Animation) Progress() float64 {
	if !a.Playing || a.Duration <= 0 {
		return 0
	}
	return float64(a.Frame) / float64(a.Duration)
}

// Sparkle is a decorative point on the logical canvas (CanvasW x CanvasH).
type Sparkle struct {
	X, Y int
}

// Transition reports which lifecycle steps a single affection change caused.
type Transition struct {
	Collected bool   // Became collected during this call
	Evolved   bool   // Evolved during this call
	Form      string // Resolved form when Evolved
}

// Creature is one species' mutable state for a session.
type Creature struct {
	name         string
	favoriteFood string
	favoriteToy  string
	baseAsset    string
	evolution    EvolutionSpec
	rules        Rules
	rng          *rand.Rand

	affection   int
	collected   bool
	evolved     bool
	counters    map[string]int
	evolvedForm string

	anim     Animation
	sparkles []Sparkle
}

// NewCreature builds a creature from its definition. rng seeds the evolution
// sparkles and may be nil, in which case none are produced.
func NewCreature(def CreatureDef, rules Rules, rng *rand.Rand) (*Creature, error) {
	if strings.TrimSpace(def.Name) == "" {
		return nil, fmt.Errorf("pet: %w: creature name is empty", ErrInvalidArgument)
	}
	if err := def.Evolution.validate(); err != nil {
		return nil, fmt.Errorf("pet: creature %q: %w", def.Name, err)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	counters := make(map[string]int, len(Tags))
	for _, tag := range Tags {
		counters[tag] = 0
	}

	return &Creature{
		name:         def.Name,
		favoriteFood: def.FavoriteFood,
		favoriteToy:  def.FavoriteToy,
		baseAsset:    def.BaseAsset,
		evolution:    def.Evolution,
		rules:        rules,
		rng:          rng,
		counters:     counters,
		anim:         Animation{Duration: rules.AnimationFrames},
	}, nil
}

// ApplyAffection raises affection by amount, capped at the maximum.
//
// Crossing the collect threshold marks the creature collected; reaching the
// evolve threshold evolves it. The animation restarts on every call.
func (c *Creature) ApplyAffection(amount int) (Transition, error) {
	if amount <= 0 {
		return Transition{}, fmt.Errorf("pet: %w: affection delta must be positive, got %d", ErrInvalidArgument, amount)
	}

	var tr Transition
	c.affection = min(c.rules.MaxAffection, c.affection+amount)

	if c.affection >= c.rules.CollectAt && !c.collected {
		c.collected = true
		tr.Collected = true
	}

	if !c.evolved && c.affection >= c.rules.EvolveAt {
		if err := c.evolve(); err != nil {
			return tr, err
		}
		tr.Evolved = true
		tr.Form = c.evolvedForm
	}

	c.anim.Playing = true
	c.anim.Frame = 0
	return tr, nil
}

// RecordSpecialUse counts one favourite use of a special item.
// It is a no-op for creatures with a fixed evolution.
func (c *Creature) RecordSpecialUse(tag string) error {
	if _, known := c.counters[tag]; !known {
		return fmt.Errorf("pet: %w: unknown usage tag %q", ErrInvalidArgument, tag)
	}
	if c.evolution.kind != EvolutionMultiForm {
		return nil
	}
	c.counters[tag]++
	return nil
}

// evolve freezes the evolved form. Only ApplyAffection calls it.
func (c *Creature) evolve() error {
	if c.evolved {
		return fmt.Errorf("pet: %w: %s has already evolved", ErrInvalidState, c.name)
	}
	if c.affection < c.rules.EvolveAt {
		return fmt.Errorf("pet: %w: %s cannot evolve at affection %d", ErrInvalidState, c.name, c.affection)
	}

	c.evolved = true
	c.evolvedForm = c.evolution.resolve(c.counters, c.rules.FormThreshold, c.baseAsset)
	c.anim.Playing = true
	c.anim.Frame = 0
	c.sparkles = c.seedSparkles()
	return nil
}

func (c *Creature) seedSparkles() []Sparkle {
	if c.rng == nil || c.rules.SparkleCount == 0 {
		return nil
	}
	spanX := CanvasW - 2*sparkleMargin + 1
	spanY := CanvasH - 2*sparkleMargin + 1
	out := make([]Sparkle, c.rules.SparkleCount)
	for i := range out {
		out[i] = Sparkle{
			X: sparkleMargin + c.rng.Intn(spanX),
			Y: sparkleMargin + c.rng.Intn(spanY),
		}
	}
	return out
}

// Tick advances the animation by one frame and stops it when it runs out.
func (c *Creature) Tick() {
	if !c.anim.Playing {
		return
	}
	c.anim.Frame++
	if c.anim.Frame >= c.anim.Duration {
		c.anim.Playing = false
		c.anim.Frame = 0
	}
}

// Likes reports whether item is this creature's favourite food or toy.
func (c *Creature) Likes(item Item) bool {
	switch item.category {
	case CategoryFood:
		return item.name == c.favoriteFood
	case CategoryToy:
		return item.name == c.favoriteToy
	}
	return false
}

func (c *Creature) Name() string                { return c.name }
func (c *Creature) FavoriteFood() string        { return c.favoriteFood }
func (c *Creature) FavoriteToy() string         { return c.favoriteToy }
func (c *Creature) BaseAsset() string           { return c.baseAsset }
func (c *Creature) Evolution() EvolutionSpec    { return c.evolution }
func (c *Creature) Affection() int              { return c.affection }
func (c *Creature) MaxAffection() int           { return c.rules.MaxAffection }
func (c *Creature) Collected() bool             { return c.collected }
func (c *Creature) Evolved() bool               { return c.evolved }
func (c *Creature) Animation() Animation        { return c.anim }
func (c *Creature) Counter(tag string) int      { return c.counters[tag] }
func (c *Creature) Sparkles() []Sparkle         { return append([]Sparkle(nil), c.sparkles...) }
func (c *Creature) EvolvedForm() (string, bool) { return c.evolvedForm, c.evolved }

// Counters returns a copy of the usage counters.
func (c *Creature) Counters() map[string]int {
	out := make(map[string]int, len(c.counters))
	for tag, n := range c.counters {
		out[tag] = n
	}
	return out
}

// Asset is the asset id to draw right now: the evolved form once evolved,
// the base appearance before.
func (c *Creature) Asset() string {
	if c.evolved {
		return c.evolvedForm
	}
	return c.baseAsset
}

// Stage derives the lifecycle stage from the flags.
func (c *Creature) Stage() Stage {
	switch {
	case c.evolved:
		return StageEvolved
	case c.collected:
		return StageCollected
	case c.affection > 0:
		return StageBonding
	default:
		return StageNew
	}
}
