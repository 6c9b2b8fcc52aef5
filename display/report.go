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

package display

import "github.com/vladcheck/StatisticsVisualizer/descstat"

// Entry is one formatted statistic of a Report.
type Entry struct {
	Key     string `json:"key" yaml:"key"`
	Label   string `json:"label" yaml:"label"`
	Value   string `json:"value" yaml:"value"`
	Defined bool   `json:"defined" yaml:"defined"`
}

// Section groups related entries under a title.
type Section struct {
	Title   string  `json:"title" yaml:"title"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Report is the formatted form of a descstat.Summary.
type Report struct {
	Sections []Section `json:"sections" yaml:"sections"`
}

// Lookup returns the entry with the given key.
func (r Report) Lookup(key string) (Entry, bool) {
	for _, s := range r.Sections {
		for _, e := range s.Entries {
			if e.Key == key {
				return e, true
			}
		}
	}
	return Entry{}, false
}

type row struct {
	key, label string
	stat       descstat.Statistic
	count      bool
}

// NewReport lays out every statistic of s in five sections: basic metrics,
// means, distribution, goodness of fit and extremes. When the sample is
// empty every entry, including the count, shows the placeholder.
func NewReport(s descstat.Summary, f Formatter) Report {
	empty := s.Count.OrElse(0) == 0
	build := func(title string, rows ...row) Section {
		section := Section{Title: title, Entries: make([]Entry, 0, len(rows))}
		for _, r := range rows {
			e := Entry{Key: r.key, Label: r.label, Value: f.Placeholder}
			if !empty && r.stat.Defined() {
				e.Defined = true
				if r.count {
					e.Value = f.FormatCount(r.stat)
				} else {
					e.Value = f.Format(r.stat)
				}
			}
			section.Entries = append(section.Entries, e)
		}
		return section
	}

	return Report{Sections: []Section{
		build("Basic metrics",
			row{"count", "Count", s.Count, true},
			row{"sum", "Sum", s.Sum, false},
			row{"mean", "Mean", s.Mean, false},
		),
		build("Means",
			row{"geometric_mean", "Geometric mean", s.GeometricMean, false},
			row{"harmonic_mean", "Harmonic mean", s.HarmonicMean, false},
			row{"root_mean_square", "Root mean square", s.RootMeanSquare, false},
			row{"trimmed_mean", "Trimmed mean", s.TrimmedMean, false},
			row{"weighted_mean", "Weighted mean", s.WeightedMean, false},
		),
		build("Distribution",
			row{"median", "Median", s.Median, false},
			row{"mode", "Mode", s.Mode, false},
			row{"standard_deviation", "Standard deviation", s.StandardDeviation, false},
			row{"variance", "Variance", s.Variance, false},
			row{"skewness", "Skewness", s.Skewness, false},
			row{"kurtosis", "Kurtosis", s.Kurtosis, false},
			row{"median_absolute_deviation", "Median absolute deviation", s.MedianAbsoluteDeviation, false},
			row{"robust_standard_deviation", "Robust standard deviation", s.RobustStandardDeviation, false},
		),
		build("Goodness of fit",
			row{"shapiro_wilk", "Shapiro-Wilk W", s.ShapiroWilk.Statistic, false},
			row{"shapiro_wilk_p", "Shapiro-Wilk p-value", s.ShapiroWilk.PValue, false},
			row{"density", "Density at the mean", s.Density, false},
			row{"chi_square", "χ²", s.ChiSquare.Statistic, false},
			row{"chi_square_p", "χ² p-value", s.ChiSquare.PValue, false},
			row{"kolmogorov_smirnov", "Kolmogorov-Smirnov D", s.KolmogorovSmirnov.Statistic, false},
			row{"kolmogorov_smirnov_p", "Kolmogorov-Smirnov p-value", s.KolmogorovSmirnov.PValue, false},
		),
		build("Extremes",
			row{"min", "Minimum", s.Min, false},
			row{"max", "Maximum", s.Max, false},
			row{"range", "Range", s.Range, false},
		),
	}}
}
