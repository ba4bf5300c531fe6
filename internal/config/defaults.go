package config

import (
	_ "embed"

	"github.com/vovakirdan/kemono/internal/games/kemono/pet"
)

//go:embed defaults/kemono.yaml
var defaultKemonoYAML []byte

// DefaultKemonoConfig returns the default kemono configuration.
func DefaultKemonoConfig() KemonoConfig {
	r := pet.DefaultRules()
	return KemonoConfig{
		Rules: RulesConfig{
			CollectAt:       r.CollectAt,
			EvolveAt:        r.EvolveAt,
			MaxAffection:    r.MaxAffection,
			FormThreshold:   r.FormThreshold,
			AnimationFrames: r.AnimationFrames,
			SparkleCount:    r.SparkleCount,
			PageSize:        r.PageSize,
		},
		Display: DisplayConfig{
			MessageTicks: 90,
			Sparkles:     true,
			Theme:        "default",
		},
		Audio: AudioConfig{
			Bell: true,
			Cues: []string{"happy", "foodMismatch", "toyMismatch", "switch"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultKemonoYAML
}
