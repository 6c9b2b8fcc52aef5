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

package main

import (
	"flag"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/vladcheck/StatisticsVisualizer/config"
	"github.com/vladcheck/StatisticsVisualizer/pipeline"
)

const flagConfig = "config"

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "statviz",
		Short: "Descriptive statistics of one row of a grid",
		Long: `statviz computes descriptive statistics of one row of a grid file.

Commands:
  analyze   Print the statistics report once
  watch     Print the report again whenever the grid file changes`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagConfig, "", "config file (default .statviz.yaml in the working or home directory)")
	config.RegisterFlags(flags)
	flags.AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newWatchCommand())
	return rootCmd
}

// loadPipeline resolves the configuration of cmd and builds the pipeline.
// A positional argument, if any, is the grid file.
func loadPipeline(cmd *cobra.Command, args []string) (*pipeline.Pipeline, *config.Config, error) {
	if len(args) == 1 {
		if err := cmd.Flags().Set(config.FlagInput, args[0]); err != nil {
			return nil, nil, err
		}
	}
	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.LoadConfig(configPath, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	p, err := pipeline.FromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	log.V(1).Infof("%s: input=%q row=%d format=%s weights=%s", cmd.Name(), cfg.Input, cfg.Row, cfg.Format, cfg.Weights.Mode)
	return p, cfg, nil
}

func newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [grid file]",
		Short: "Print the statistics report of one grid row",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := loadPipeline(cmd, args)
			if err != nil {
				return err
			}
			return p.Run(cmd.OutOrStdout())
		},
	}
}

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [grid file]",
		Short: "Print the statistics report again on every change of the grid file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := loadPipeline(cmd, args)
			if err != nil {
				return err
			}
			return p.Watch(cmd.Context(), cmd.OutOrStdout(), cfg.Watch.Debounce)
		},
	}
}
