// Package config provides YAML-based gameplay configuration loading and
// pace presets for kemono.
package config

import (
	"github.com/vovakirdan/kemono/internal/core"
	"github.com/vovakirdan/kemono/internal/games/kemono/pet"
)

// KemonoConfig contains all configuration for a kemono session.
type KemonoConfig struct {
	Rules   RulesConfig   `yaml:"rules" envPrefix:"RULES_"`
	Display DisplayConfig `yaml:"display" envPrefix:"DISPLAY_"`
	Audio   AudioConfig   `yaml:"audio" envPrefix:"AUDIO_"`
}

// RulesConfig mirrors pet.Rules in YAML form.
type RulesConfig struct {
	CollectAt       int `yaml:"collect_at" env:"COLLECT_AT"`
	EvolveAt        int `yaml:"evolve_at" env:"EVOLVE_AT"`
	MaxAffection    int `yaml:"max_affection" env:"MAX_AFFECTION"`
	FormThreshold   int `yaml:"form_threshold" env:"FORM_THRESHOLD"`
	AnimationFrames int `yaml:"animation_frames" env:"ANIMATION_FRAMES"`
	SparkleCount    int `yaml:"sparkle_count" env:"SPARKLE_COUNT"`
	PageSize        int `yaml:"page_size" env:"PAGE_SIZE"`
}

// DisplayConfig tunes the terminal presentation.
type DisplayConfig struct {
	MessageTicks int    `yaml:"message_ticks" env:"MESSAGE_TICKS"` // How long status messages stay up
	Sparkles     bool   `yaml:"sparkles" env:"SPARKLES"`
	Theme        string `yaml:"theme" env:"THEME"` // "default" or "mono"
}

// AudioConfig selects which cues are played.
type AudioConfig struct {
	Bell bool     `yaml:"bell" env:"BELL"`
	Cues []string `yaml:"cues" env:"CUES"`
}

// ToRules converts the YAML rules to domain rules.
func (r RulesConfig) ToRules() pet.Rules {
	return pet.Rules{
		CollectAt:       r.CollectAt,
		EvolveAt:        r.EvolveAt,
		MaxAffection:    r.MaxAffection,
		FormThreshold:   r.FormThreshold,
		AnimationFrames: r.AnimationFrames,
		SparkleCount:    r.SparkleCount,
		PageSize:        r.PageSize,
	}
}

// EnabledCues returns the configured cues, skipping unknown names.
// It returns nil when no cue list is set, and an empty set for an empty list.
func (a AudioConfig) EnabledCues() map[core.Cue]bool {
	if a.Cues == nil {
		return nil
	}
	out := make(map[core.Cue]bool, len(a.Cues))
	for _, name := range a.Cues {
		if c := core.Cue(name); c.Valid() {
			out[c] = true
		}
	}
	return out
}

// Validate checks the rules are usable.
func (c KemonoConfig) Validate() error {
	return c.Rules.ToRules().Validate()
}
