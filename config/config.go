//
// Copyright 2026 The StatisticsVisualizer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config holds the settings of statviz, layered from defaults, a
// yaml file, STATVIZ_ environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vladcheck/StatisticsVisualizer/checks"
	"github.com/vladcheck/StatisticsVisualizer/descstat"
	"github.com/vladcheck/StatisticsVisualizer/display"
	"github.com/vladcheck/StatisticsVisualizer/grid"
)

// Weight modes select where the weights of the weighted mean come from.
const (
	WeightsNone   = "none"
	WeightsColumn = "column"
	WeightsAuto   = "auto"
	WeightsRow    = "row"
)

// Defaults.
const (
	DefaultRow           = 0
	DefaultFormat        = string(display.FormatTable)
	DefaultWeightsMode   = WeightsNone
	DefaultWatchDebounce = 100 * time.Millisecond
)

var (
	// ErrMissingInput is returned when no grid file is configured.
	ErrMissingInput = errors.New("no input grid file configured")
	// ErrInvalidWeightsMode is returned for an unknown weights.mode.
	ErrInvalidWeightsMode = errors.New("weights.mode must be one of none, column, auto or row")
	// ErrInvalidDelimiter is returned when the delimiter is not a single
	// character.
	ErrInvalidDelimiter = errors.New("delimiter must be a single character")
	// ErrInvalidDebounce is returned for a negative watch.debounce.
	ErrInvalidDebounce = errors.New("watch.debounce cannot be negative")
)

// Config is the top-level configuration of statviz.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Input          string        `mapstructure:"input"`
	Row            int           `mapstructure:"row"`
	Delimiter      string        `mapstructure:"delimiter"`
	Format         string        `mapstructure:"format"`
	Precision      int           `mapstructure:"precision"`
	Placeholder    string        `mapstructure:"placeholder"`
	TrimPercentage float64       `mapstructure:"trim_percentage"`
	NoTrim         bool          `mapstructure:"no_trim"`
	Weights        WeightsConfig `mapstructure:"weights"`
	Watch          WatchConfig   `mapstructure:"watch"`
}

// WeightsConfig selects the weight source.
type WeightsConfig struct {
	Mode   string `mapstructure:"mode"`
	Column int    `mapstructure:"column"`
	Row    int    `mapstructure:"row"`
}

// WatchConfig holds the settings of the watch command.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// Validate checks every setting, except Input which only commands that
// read a grid require (see RequireInput).
func (c *Config) Validate() error {
	if err := checks.CheckIndex(c.Row, "row"); err != nil {
		return err
	}
	if _, err := c.DelimiterRune(); err != nil {
		return err
	}
	if _, err := display.ParseFormat(c.Format); err != nil {
		return err
	}
	if err := checks.CheckPrecision(c.Precision); err != nil {
		return err
	}
	if !c.NoTrim {
		if err := checks.CheckTrimPercentage(c.TrimPercentage); err != nil {
			return err
		}
	}
	if err := c.validateWeights(); err != nil {
		return err
	}
	if c.Watch.Debounce < 0 {
		return ErrInvalidDebounce
	}
	return nil
}

func (c *Config) validateWeights() error {
	switch c.Weights.Mode {
	case WeightsNone, WeightsAuto:
		return nil
	case WeightsColumn:
		return checks.CheckIndex(c.Weights.Column, "weights.column")
	case WeightsRow:
		return checks.CheckIndex(c.Weights.Row, "weights.row")
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidWeightsMode, c.Weights.Mode)
	}
}

// RequireInput returns ErrMissingInput if no grid file is configured.
func (c *Config) RequireInput() error {
	if c.Input == "" {
		return ErrMissingInput
	}
	return nil
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c *Config) DelimiterRune() (rune, error) {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidDelimiter, c.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if err := checks.CheckDelimiter(r); err != nil {
		return 0, err
	}
	return r, nil
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() (display.Format, error) {
	return display.ParseFormat(c.Format)
}

// Formatter returns the display.Formatter described by c.
func (c *Config) Formatter() (display.Formatter, error) {
	return display.NewFormatter(c.Precision, c.Placeholder)
}

// SummaryOptions returns the options passed to descstat.Summarize, without
// weights. A configured trim percentage of 0 disables trimming.
func (c *Config) SummaryOptions() *descstat.SummaryOptions {
	return &descstat.SummaryOptions{
		TrimPercentage: c.TrimPercentage,
		NoTrim:         c.NoTrim || c.TrimPercentage == 0,
	}
}

// WeightSource returns the source of weights for table, or nil when weights
// are disabled.
func (c *Config) WeightSource(table grid.Table) grid.WeightSource {
	switch c.Weights.Mode {
	case WeightsColumn:
		return grid.ColumnWeights{Table: table, Column: c.Weights.Column}
	case WeightsAuto:
		return grid.AutoWeights{Table: table}
	case WeightsRow:
		return grid.RowWeights{Table: table, Row: c.Weights.Row}
	default:
		return nil
	}
}
