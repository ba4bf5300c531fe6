package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// LoadKemono loads kemono configuration.
// Search order: customPath -> ~/.kemono/configs/kemono.yaml -> ./configs/kemono.yaml -> embedded default.
// Fields missing from a file keep their default values. KEMONO_* environment
// variables override whatever was loaded.
func LoadKemono(customPath string) (KemonoConfig, error) {
	cfg := DefaultKemonoConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return finish(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("kemono.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return finish(cfg)
			}
			cfg = DefaultKemonoConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "kemono.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return finish(cfg)
		}
		cfg = DefaultKemonoConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultKemonoYAML, &cfg); err != nil {
		cfg = DefaultKemonoConfig() // Fallback to hardcoded if embed fails
	}
	return finish(cfg)
}

func finish(cfg KemonoConfig) (KemonoConfig, error) {
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from KEMONO_* environment variables, e.g.
// KEMONO_RULES_COLLECT_AT or KEMONO_AUDIO_BELL. Unset variables leave
// fields untouched.
func ApplyEnv(cfg *KemonoConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "KEMONO_"}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kemono", "configs", filename)
}
