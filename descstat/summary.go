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

package descstat

import log "github.com/golang/glog"

// Summary holds every statistic computed for one sample.
type Summary struct {
	// Basic metrics
	Count Statistic
	Sum   Statistic
	Mean  Statistic

	// Means
	GeometricMean  Statistic
	HarmonicMean   Statistic
	RootMeanSquare Statistic
	TrimmedMean    Statistic
	WeightedMean   Statistic // Undefined unless weights were supplied.

	// Distribution
	Median                  Statistic
	Mode                    Statistic
	StandardDeviation       Statistic
	Variance                Statistic
	Skewness                Statistic
	Kurtosis                Statistic
	MedianAbsoluteDeviation Statistic
	RobustStandardDeviation Statistic

	// Goodness of fit to a normal distribution
	ShapiroWilk       TestResult
	Density           Statistic // Kernel density estimate at the mean.
	ChiSquare         TestResult
	KolmogorovSmirnov TestResult

	// Extremes
	Min   Statistic
	Max   Statistic
	Range Statistic
}

// SummaryOptions contains the options of Summarize.
type SummaryOptions struct {
	// TrimPercentage is the percentage trimmed from each tail by
	// TrimmedMean. Defaults to DefaultTrimPercentage when zero; set
	// NoTrim to compute an untrimmed mean.
	TrimPercentage float64
	NoTrim         bool
	// Weights, if non-nil, are paired positionally with the sample to
	// compute WeightedMean.
	Weights []float64
	// WeightedValues, if non-nil, replaces the sample as the values paired
	// with Weights. The other statistics still use the whole sample.
	WeightedValues []float64
}

// Summarize computes every statistic of the sample xs.
//
// The mean and standard deviation are computed once and reused by the
// statistics that depend on them; if either is Undefined, so is every
// statistic derived from it. xs is not modified.
func Summarize(xs []float64, opt *SummaryOptions) Summary {
	if opt == nil {
		opt = &SummaryOptions{}
	}
	trim := opt.TrimPercentage
	switch {
	case opt.NoTrim:
		trim = 0
	case trim == 0:
		trim = DefaultTrimPercentage
	}

	s := Summary{
		Count:                   Count(xs),
		Sum:                     Sum(xs),
		Mean:                    Mean(xs),
		GeometricMean:           GeometricMean(xs),
		HarmonicMean:            HarmonicMean(xs),
		RootMeanSquare:          RootMeanSquare(xs),
		TrimmedMean:             TrimmedMean(xs, trim),
		WeightedMean:            Undefined(),
		Median:                  Median(xs),
		Mode:                    Mode(xs),
		StandardDeviation:       Undefined(),
		Variance:                Undefined(),
		Skewness:                Undefined(),
		Kurtosis:                Undefined(),
		MedianAbsoluteDeviation: MedianAbsoluteDeviation(xs),
		RobustStandardDeviation: RobustStandardDeviation(xs),
		ShapiroWilk:             ShapiroWilkTest(xs),
		Density:                 Undefined(),
		ChiSquare:               ChiSquareTest(xs),
		KolmogorovSmirnov:       KolmogorovSmirnovTest(xs),
		Min:                     Min(xs),
		Max:                     Max(xs),
		Range:                   Range(xs),
	}
	if opt.Weights != nil {
		values := xs
		if opt.WeightedValues != nil {
			values = opt.WeightedValues
		}
		s.WeightedMean = WeightedMean(values, opt.Weights)
	}

	mean, ok := s.Mean.Value()
	if !ok {
		log.V(1).Infof("Summarize: empty sample, dependent statistics are undefined")
		return s
	}
	s.Density = Density(xs, mean)
	s.Variance = Variance(xs, mean)
	s.StandardDeviation = StandardDeviation(xs, mean)
	stdDev, ok := s.StandardDeviation.Value()
	if !ok {
		return s
	}
	s.Skewness = Skewness(xs, mean, stdDev)
	s.Kurtosis = Kurtosis(xs, mean, stdDev)
	return s
}
