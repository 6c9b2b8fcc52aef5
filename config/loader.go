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

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/golang/glog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vladcheck/StatisticsVisualizer/descstat"
	"github.com/vladcheck/StatisticsVisualizer/display"
	"github.com/vladcheck/StatisticsVisualizer/grid"
)

const (
	// configName is the config file name without extension.
	configName = ".statviz"
	configType = "yaml"
	envPrefix  = "STATVIZ"
	// envKeySeparator replaces the nested key separator in environment
	// variable names.
	envKeySeparator = "_"
)

// Flag names registered by RegisterFlags.
const (
	FlagInput          = "input"
	FlagRow            = "row"
	FlagDelimiter      = "delimiter"
	FlagFormat         = "format"
	FlagPrecision      = "precision"
	FlagPlaceholder    = "placeholder"
	FlagTrimPercentage = "trim"
	FlagNoTrim         = "no-trim"
	FlagWeights        = "weights"
	FlagWeightsColumn  = "weights-column"
	FlagWeightsRow     = "weights-row"
	FlagDebounce       = "debounce"
)

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	FlagInput:          "input",
	FlagRow:            "row",
	FlagDelimiter:      "delimiter",
	FlagFormat:         "format",
	FlagPrecision:      "precision",
	FlagPlaceholder:    "placeholder",
	FlagTrimPercentage: "trim_percentage",
	FlagNoTrim:         "no_trim",
	FlagWeights:        "weights.mode",
	FlagWeightsColumn:  "weights.column",
	FlagWeightsRow:     "weights.row",
	FlagDebounce:       "watch.debounce",
}

// RegisterFlags defines the command-line flags that LoadConfig binds.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP(FlagInput, "i", "", "grid file to analyze (.csv, .tsv or text)")
	flags.IntP(FlagRow, "r", DefaultRow, "index of the grid row holding the sample")
	flags.String(FlagDelimiter, string(grid.DefaultDelimiter), "field delimiter of .csv grids")
	flags.StringP(FlagFormat, "o", DefaultFormat, "output format: table, markdown, csv, json or yaml")
	flags.Int(FlagPrecision, display.DefaultPrecision, "fractional digits of formatted statistics")
	flags.String(FlagPlaceholder, display.DefaultPlaceholder, "text shown for undefined statistics")
	flags.Float64(FlagTrimPercentage, descstat.DefaultTrimPercentage, "percentage trimmed from each tail by the trimmed mean")
	flags.Bool(FlagNoTrim, false, "compute the trimmed mean without trimming")
	flags.String(FlagWeights, DefaultWeightsMode, "weights source: none, column, auto or row")
	flags.Int(FlagWeightsColumn, grid.DefaultWeightColumn, "grid column holding the weights in column mode")
	flags.Int(FlagWeightsRow, 1, "grid row holding the weights in row mode")
	flags.Duration(FlagDebounce, DefaultWatchDebounce, "quiet period before the watch command recomputes")
}

// LoadConfig loads configuration from defaults, the config file, env vars
// and flags, in increasing order of precedence.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
// flags may be nil; otherwise every flag of RegisterFlags it contains is
// bound.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	if err := bindFlags(viperCfg, flags); err != nil {
		return nil, err
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
		log.V(1).Infof("LoadConfig: no config file found, using defaults")
	} else {
		log.V(1).Infof("LoadConfig: using config file %s", viperCfg.ConfigFileUsed())
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func bindFlags(viperCfg *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := viperCfg.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("input", "")
	viperCfg.SetDefault("row", DefaultRow)
	viperCfg.SetDefault("delimiter", string(grid.DefaultDelimiter))
	viperCfg.SetDefault("format", DefaultFormat)
	viperCfg.SetDefault("precision", display.DefaultPrecision)
	viperCfg.SetDefault("placeholder", display.DefaultPlaceholder)
	viperCfg.SetDefault("trim_percentage", descstat.DefaultTrimPercentage)
	viperCfg.SetDefault("no_trim", false)

	viperCfg.SetDefault("weights.mode", DefaultWeightsMode)
	viperCfg.SetDefault("weights.column", grid.DefaultWeightColumn)
	viperCfg.SetDefault("weights.row", 1)

	viperCfg.SetDefault("watch.debounce", DefaultWatchDebounce)
}
