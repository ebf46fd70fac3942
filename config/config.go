// SPDX-License-Identifier: MIT

// Package config loads the borderpath YAML configuration.
//
// Omitted keys keep their Default values; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/borderpath/atlas"
	"github.com/katalvlaran/borderpath/puzzle"
)

// ErrInvalidConfig wraps every parse or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var configValidate = validator.New(validator.WithRequiredStructEnabled())

// Config is the root of the configuration file.
type Config struct {
	// Atlas is the path of an atlas file; empty selects the embedded demo.
	Atlas   string  `yaml:"atlas"`
	Puzzle  Puzzle  `yaml:"puzzle"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

// Puzzle configures generation.
type Puzzle struct {
	BandMin     int      `yaml:"band_min" validate:"gte=3"`
	BandMax     int      `yaml:"band_max" validate:"gtefield=BandMin"`
	MaxAttempts int      `yaml:"max_attempts" validate:"gte=1"`
	MaxPaths    int      `yaml:"max_paths" validate:"gte=0"`
	// Seed 0 lets the CLI pick a clock-derived seed.
	Seed        int64    `yaml:"seed"`
	Exclude     []string `yaml:"exclude" validate:"dive,required,alphanum,uppercase"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Metrics configures the Prometheus endpoint.
type Metrics struct {
	// Addr is a listen address such as ":9090"; empty disables the endpoint.
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Puzzle: Puzzle{
			BandMin:     puzzle.DefaultBandMin,
			BandMax:     puzzle.DefaultBandMax,
			MaxAttempts: puzzle.DefaultMaxAttempts,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// SlogLevel maps Log.Level to a slog.Level; unknown values map to Info.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// PuzzleOptions translates the puzzle section into generator options.
// Seed is passed through as is.
func (c Config) PuzzleOptions() []puzzle.Option {
	excluded := make([]atlas.Node, len(c.Puzzle.Exclude))
	for i, code := range c.Puzzle.Exclude {
		excluded[i] = atlas.Node(code)
	}

	return []puzzle.Option{
		puzzle.WithBand(c.Puzzle.BandMin, c.Puzzle.BandMax),
		puzzle.WithMaxAttempts(c.Puzzle.MaxAttempts),
		puzzle.WithMaxPaths(c.Puzzle.MaxPaths),
		puzzle.WithExcluded(excluded...),
		puzzle.WithSeed(c.Puzzle.Seed),
	}
}
