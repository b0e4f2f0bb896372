// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/djkoloski/aoc-2025/cover"
	"github.com/djkoloski/aoc-2025/joltage"
	"github.com/djkoloski/aoc-2025/machine"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the solver configuration, read from an optional YAML file and
// overridden by command-line flags.
type Config struct {
	Workers         int     `yaml:"workers"`
	Parallelism     int     `yaml:"parallelism"`
	MaxButtons      int     `yaml:"max_buttons"`
	MaxCombinations uint64  `yaml:"max_combinations"`
	Tolerance       float64 `yaml:"tolerance"`
	Verbose         bool    `yaml:"verbose"`
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		Workers:         joltage.DefaultWorkers,
		Parallelism:     machine.DefaultParallelism,
		MaxButtons:      cover.DefaultMaxButtons,
		MaxCombinations: joltage.DefaultMaxCombinations,
		Tolerance:       joltage.DefaultTolerance,
	}
}

// loadConfig decodes path over the defaults. Unknown keys are rejected;
// an empty file yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the solver options would panic on.
func (c Config) Validate() error {
	switch {
	case c.Workers < 1:
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	case c.Parallelism < 1:
		return fmt.Errorf("parallelism must be >= 1, got %d", c.Parallelism)
	case c.MaxButtons < 0 || c.MaxButtons > cover.HardMaxButtons:
		return fmt.Errorf("max_buttons must be in [0, %d], got %d", cover.HardMaxButtons, c.MaxButtons)
	case c.MaxCombinations == 0:
		return errors.New("max_combinations must be > 0")
	case math.IsNaN(c.Tolerance) || c.Tolerance < 0 || c.Tolerance >= 0.5:
		return fmt.Errorf("tolerance must be in [0, 0.5), got %g", c.Tolerance)
	}

	return nil
}

// Options translates c into solver options.
func (c Config) Options() []machine.Option {
	return []machine.Option{
		machine.WithParallelism(c.Parallelism),
		machine.WithCoverOptions(cover.WithMaxButtons(c.MaxButtons)),
		machine.WithJoltageOptions(
			joltage.WithWorkers(c.Workers),
			joltage.WithMaxCombinations(c.MaxCombinations),
			joltage.WithTolerance(c.Tolerance),
		),
	}
}

func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"workers":          c.Workers,
		"parallelism":      c.Parallelism,
		"max_buttons":      c.MaxButtons,
		"max_combinations": c.MaxCombinations,
		"tolerance":        c.Tolerance,
	}
}
