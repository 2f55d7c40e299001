package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings that can be read from a TOML file. Command line
// flags take precedence over the file.
type Config struct {
	// Precision is the maximum number of digits after the decimal point in
	// printed path data. Zero prints the shortest exact form.
	Precision int `toml:"precision"`
	// Transform is an SVG transform list applied to every path.
	Transform string `toml:"transform"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`
	// Stripes prints the cubic stripes of every path.
	Stripes bool `toml:"stripes"`
}

func loadConfig(name string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(name)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", name, err)
	}
	if cfg.Precision < 0 {
		return cfg, fmt.Errorf("config %s: negative precision %d", name, cfg.Precision)
	}
	return cfg, nil
}

func (cfg Config) level() (slog.Level, error) {
	var l slog.Level
	if cfg.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := l.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, err
	}
	return l, nil
}
