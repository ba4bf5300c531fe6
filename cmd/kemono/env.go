package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// envConfig holds the flag defaults that can come from the environment.
type envConfig struct {
	FPS     int    `env:"FPS" envDefault:"30"`
	Seed    int64  `env:"SEED" envDefault:"0"`
	DB      string `env:"DB" envDefault:"~/.kemono/history.db"`
	PackDir string `env:"PACK_DIR" envDefault:"~/.kemono/packs"`
	Log     string `env:"LOG"`
}

// envDefaults is read before flags are declared.
var envDefaults = loadEnvDefaults()

func loadEnvDefaults() envConfig {
	var cfg envConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "KEMONO_"}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring KEMONO_* environment: %v\n", err)
		cfg = envConfig{FPS: 30, DB: "~/.kemono/history.db", PackDir: "~/.kemono/packs"}
	}
	return cfg
}
