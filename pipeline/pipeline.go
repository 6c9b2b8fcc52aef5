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

// Package pipeline connects a grid file to a rendered report: the grid is
// read, one row becomes a sample, the sample is summarized and the summary
// is formatted and written out. Watch repeats this whenever the file
// changes.
package pipeline

import (
	"fmt"
	"io"

	log "github.com/golang/glog"

	"github.com/vladcheck/StatisticsVisualizer/config"
	"github.com/vladcheck/StatisticsVisualizer/descstat"
	"github.com/vladcheck/StatisticsVisualizer/display"
	"github.com/vladcheck/StatisticsVisualizer/grid"
)

// Pipeline holds everything needed to turn a grid file into a report.
type Pipeline struct {
	Path      string
	Delimiter rune
	Row       int
	// Summary options without weights; may be nil.
	Summary *descstat.SummaryOptions
	// Weights returns the weight source for a freshly read table, or nil
	// for an unweighted summary. May be nil.
	Weights   func(grid.Table) grid.WeightSource
	Formatter display.Formatter
	Format    display.Format
}

// FromConfig builds a Pipeline from a validated configuration.
func FromConfig(cfg *config.Config) (*Pipeline, error) {
	if err := cfg.RequireInput(); err != nil {
		return nil, err
	}
	delimiter, err := cfg.DelimiterRune()
	if err != nil {
		return nil, err
	}
	format, err := cfg.OutputFormat()
	if err != nil {
		return nil, err
	}
	formatter, err := cfg.Formatter()
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		Path:      cfg.Input,
		Delimiter: delimiter,
		Row:       cfg.Row,
		Summary:   cfg.SummaryOptions(),
		Weights:   cfg.WeightSource,
		Formatter: formatter,
		Format:    format,
	}, nil
}

// Summarize turns one row of table into a summary, weighted when the
// pipeline has a weight source. Weights of an AlignedWeightSource are paired
// with the row column by column; other weights are paired by position.
func (p *Pipeline) Summarize(table grid.Table) (descstat.Summary, error) {
	sample, err := table.Sample(p.Row)
	if err != nil {
		return descstat.Summary{}, fmt.Errorf("sample: %w", err)
	}

	var opt descstat.SummaryOptions
	if p.Summary != nil {
		opt = *p.Summary
	}
	opt.Weights, opt.WeightedValues = nil, nil
	if p.Weights != nil {
		switch source := p.Weights(table).(type) {
		case nil:
		case grid.AlignedWeightSource:
			values, weights, err := source.WeightedSample(p.Row)
			if err != nil {
				return descstat.Summary{}, fmt.Errorf("weights: %w", err)
			}
			opt.Weights, opt.WeightedValues = weights, values
		default:
			weights, err := source.Weights()
			if err != nil {
				return descstat.Summary{}, fmt.Errorf("weights: %w", err)
			}
			opt.Weights = weights
		}
	}
	log.V(1).Infof("Summarize: row %d has %d values, %d weights", p.Row, len(sample), len(opt.Weights))
	return descstat.Summarize(sample, &opt), nil
}

// Report reads the grid file and returns the formatted report of the
// configured row.
func (p *Pipeline) Report() (display.Report, error) {
	table, err := grid.ReadFile(p.Path, p.Delimiter)
	if err != nil {
		return display.Report{}, err
	}
	summary, err := p.Summarize(table)
	if err != nil {
		return display.Report{}, fmt.Errorf("%q: %w", p.Path, err)
	}
	return display.NewReport(summary, p.Formatter), nil
}

// Run computes the report once and writes it to w.
func (p *Pipeline) Run(w io.Writer) error {
	report, err := p.Report()
	if err != nil {
		return err
	}
	return report.Render(w, p.Format)
}
