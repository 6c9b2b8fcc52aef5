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

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func allUndefined() Summary {
	return Summary{
		ShapiroWilk:       undefinedTest(),
		ChiSquare:         undefinedTest(),
		KolmogorovSmirnov: undefinedTest(),
	}
}

func TestSummarizeEmptySample(t *testing.T) {
	want := allUndefined()
	want.Count = Of(0)
	want.Sum = Of(0)
	for _, input := range [][]float64{nil, {}} {
		got := Summarize(input, &SummaryOptions{Weights: []float64{}})
		if diff := cmp.Diff(want, got, statComparer(0)); diff != "" {
			t.Errorf("Summarize(%v): unexpected summary (-want +got):\n%s", input, diff)
		}
	}
}

func TestSummarizeSingleValue(t *testing.T) {
	want := allUndefined()
	want.Count = Of(1)
	want.Sum = Of(5)
	want.Mean = Of(5)
	want.GeometricMean = Of(5)
	want.HarmonicMean = Of(5)
	want.RootMeanSquare = Of(5)
	want.TrimmedMean = Of(5)
	want.Median = Of(5)
	want.MedianAbsoluteDeviation = Of(0)
	want.Min = Of(5)
	want.Max = Of(5)
	want.Range = Of(0)

	got := Summarize([]float64{5}, nil)
	if diff := cmp.Diff(want, got, statComparer(tenten)); diff != "" {
		t.Errorf("Summarize([5]): unexpected summary (-want +got):\n%s", diff)
	}
}

func TestSummarizeTextbook(t *testing.T) {
	want := Summary{
		Count:                   Of(8),
		Sum:                     Of(40),
		Mean:                    Of(5),
		GeometricMean:           Of(math.Pow(2*4*4*4*5*5*7*9, 1.0/8)),
		HarmonicMean:            Of(8 / (1.0/2 + 3.0/4 + 2.0/5 + 1.0/7 + 1.0/9)),
		RootMeanSquare:          Of(math.Sqrt(232.0 / 8)),
		TrimmedMean:             Of(5), // 10% of 8 values trims nothing.
		WeightedMean:            Undefined(),
		Median:                  Of(4.5),
		Mode:                    Of(4),
		StandardDeviation:       Of(textbookSD),
		Variance:                Of(32.0 / 7),
		Skewness:                Of(0.8184875533567996),
		Kurtosis:                Of(0.940625),
		MedianAbsoluteDeviation: Of(0.5),
		RobustStandardDeviation: Of(0.7413),
		ShapiroWilk:             TestResult{Of(0.9166338306921498), Of(0.40314961126571924)},
		Density:                 Of(0.16572550120633514),
		ChiSquare:               ChiSquareTest(textbook),
		KolmogorovSmirnov:       TestResult{Of(0.25), Of(0.6325065973281)},
		Min:                     Of(2),
		Max:                     Of(9),
		Range:                   Of(7),
	}
	got := Summarize(textbook, nil)
	if diff := cmp.Diff(want, got, statComparer(tensix)); diff != "" {
		t.Errorf("Summarize(textbook): unexpected summary (-want +got):\n%s", diff)
	}
}

func TestSummarizeOptions(t *testing.T) {
	input := []float64{100, 1, 2, 3, 4, 5, 6, 7, 8, -50}
	for _, tc := range []struct {
		desc             string
		opt              *SummaryOptions
		wantTrimmedMean  Statistic
		wantWeightedMean Statistic
	}{
		{"nil options use the default trim", nil, Of(4.5), Undefined()},
		{"zero trim uses the default", &SummaryOptions{}, Of(4.5), Undefined()},
		{"explicit trim", &SummaryOptions{TrimPercentage: 40}, Of(4.5), Undefined()},
		{"no trim", &SummaryOptions{NoTrim: true, TrimPercentage: 25}, Of(8.6), Undefined()},
		{"invalid trim", &SummaryOptions{TrimPercentage: 75}, Undefined(), Undefined()},
		{
			"weights",
			&SummaryOptions{Weights: []float64{0, 1, 1, 1, 1, 1, 1, 1, 1, 0}},
			Of(4.5),
			Of(4.5),
		},
		{"mismatched weights", &SummaryOptions{Weights: []float64{1, 1}}, Of(4.5), Undefined()},
		{
			"weighted values replace the sample",
			&SummaryOptions{Weights: []float64{1, 3}, WeightedValues: []float64{10, 20}},
			Of(4.5),
			Of(17.5),
		},
		{
			"weighted values of another length than the sample",
			&SummaryOptions{Weights: []float64{2}, WeightedValues: []float64{3}},
			Of(4.5),
			Of(3),
		},
		{"weighted values without weights", &SummaryOptions{WeightedValues: []float64{3}}, Of(4.5), Undefined()},
	} {
		got := Summarize(input, tc.opt)
		if !approxStat(got.TrimmedMean, tc.wantTrimmedMean) {
			t.Errorf("Summarize: when %s got TrimmedMean %v, want %v", tc.desc, got.TrimmedMean, tc.wantTrimmedMean)
		}
		if !approxStat(got.WeightedMean, tc.wantWeightedMean) {
			t.Errorf("Summarize: when %s got WeightedMean %v, want %v", tc.desc, got.WeightedMean, tc.wantWeightedMean)
		}
		// The rest of the summary does not depend on the options.
		if !approxStat(got.Mean, Of(8.6)) {
			t.Errorf("Summarize: when %s got Mean %v, want 8.6", tc.desc, got.Mean)
		}
	}
}

func TestSummarizeConstantSample(t *testing.T) {
	got := Summarize([]float64{3, 3, 3, 3, 3}, nil)
	for _, tc := range []struct {
		name string
		got  Statistic
		want Statistic
	}{
		{"Mean", got.Mean, Of(3)},
		{"Mode", got.Mode, Of(3)},
		{"StandardDeviation", got.StandardDeviation, Of(0)},
		{"Variance", got.Variance, Of(0)},
		{"Skewness", got.Skewness, Undefined()},
		{"Kurtosis", got.Kurtosis, Undefined()},
		{"Density", got.Density, Undefined()},
		{"ShapiroWilk", got.ShapiroWilk.Statistic, Undefined()},
		{"ChiSquare", got.ChiSquare.Statistic, Undefined()},
		{"KolmogorovSmirnov", got.KolmogorovSmirnov.Statistic, Undefined()},
		{"RobustStandardDeviation", got.RobustStandardDeviation, Of(0)},
		{"Range", got.Range, Of(0)},
	} {
		if !approxStat(tc.got, tc.want) {
			t.Errorf("Summarize(constant): got %s %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}
