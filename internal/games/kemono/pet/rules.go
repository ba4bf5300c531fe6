package pet

import "fmt"

// Multi-form evolution tags.
const (
	TagFire = "fire"
	TagSun  = "sun"
)

// Tags is the fixed set of usage counter tags every creature carries.
var Tags = []string{TagFire, TagSun}

// specialItems maps the reserved item names that feed usage counters to their tag.
// Only these two names count, regardless of what a creature likes.
var specialItems = map[string]string{
	"Fire": TagFire,
	"Sun":  TagSun,
}

// SpecialTag returns the usage counter tag fed by an item name, if any.
func SpecialTag(itemName string) (string, bool) {
	tag, ok := specialItems[itemName]
	return tag, ok
}

// Canvas is the logical size evolution sparkles are placed on.
// Renderers project it onto whatever area they have.
const (
	CanvasW = 800
	CanvasH = 600

	sparkleMargin = 50
)

// Rules are the tunable thresholds of the creature lifecycle.
type Rules struct {
	CollectAt       int // Affection at which a creature is collected
	EvolveAt        int // Affection at which a creature evolves
	MaxAffection    int // Affection cap
	FormThreshold   int // Minimum tag count for a multi-form evolution to pick that form
	AnimationFrames int // Length of the bounce/fade animation in ticks
	SparkleCount    int // Sparkles seeded on evolution
	PageSize        int // Creatures per collection page
}

// DefaultRules returns the standard game rules.
func DefaultRules() Rules {
	return Rules{
		CollectAt:       50,
		EvolveAt:        100,
		MaxAffection:    100,
		FormThreshold:   5,
		AnimationFrames: 30,
		SparkleCount:    50,
		PageSize:        8,
	}
}

// Validate checks that the thresholds keep the lifecycle ordered:
// a creature can only evolve after it has been collected.
func (r Rules) Validate() error {
	switch {
	case r.CollectAt <= 0:
		return fmt.Errorf("pet: %w: collect threshold must be positive, got %d", ErrInvalidArgument, r.CollectAt)
	case r.EvolveAt < r.CollectAt:
		return fmt.Errorf("pet: %w: evolve threshold %d is below collect threshold %d", ErrInvalidArgument, r.EvolveAt, r.CollectAt)
	case r.MaxAffection < r.EvolveAt:
		return fmt.Errorf("pet: %w: affection cap %d is below evolve threshold %d", ErrInvalidArgument, r.MaxAffection, r.EvolveAt)
	case r.FormThreshold <= 0:
		return fmt.Errorf("pet: %w: form threshold must be positive, got %d", ErrInvalidArgument, r.FormThreshold)
	case r.AnimationFrames <= 0:
		return fmt.Errorf("pet: %w: animation must last at least one frame", ErrInvalidArgument)
	case r.SparkleCount < 0:
		return fmt.Errorf("pet: %w: negative sparkle count %d", ErrInvalidArgument, r.SparkleCount)
	case r.PageSize <= 0:
		return fmt.Errorf("pet: %w: page size must be positive, got %d", ErrInvalidArgument, r.PageSize)
	}
	return nil
}
