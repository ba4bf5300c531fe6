package config

import (
	"fmt"
	"strings"
)

// PacePreset represents a named rules preset.
type PacePreset string

const (
	PaceRelaxed PacePreset = "relaxed" // Bonds form twice as fast
	PaceClassic PacePreset = "classic" // The standard thresholds
	PaceDevoted PacePreset = "devoted" // Alternate forms need twice the care
)

// ParsePace parses a preset name. The empty string means no preset.
func ParsePace(s string) (PacePreset, error) {
	switch p := PacePreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", PaceRelaxed, PaceClassic, PaceDevoted:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown pace %q (relaxed, classic, devoted)", s)
}

// ApplyPace modifies the config based on a pace preset.
func ApplyPace(cfg *KemonoConfig, preset PacePreset) {
	switch preset {
	case PaceRelaxed:
		cfg.Rules.CollectAt = 25
		cfg.Rules.EvolveAt = 50
	case PaceClassic:
		def := DefaultKemonoConfig().Rules
		cfg.Rules.CollectAt = def.CollectAt
		cfg.Rules.EvolveAt = def.EvolveAt
		cfg.Rules.FormThreshold = def.FormThreshold
	case PaceDevoted:
		cfg.Rules.FormThreshold *= 2
	}
	cfg.Rules.MaxAffection = max(cfg.Rules.MaxAffection, cfg.Rules.EvolveAt)
}
