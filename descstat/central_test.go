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
	"github.com/grd/stat"
)

func TestCount(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		input []float64
		want  Statistic
	}{
		{"nil sample", nil, Of(0)},
		{"empty sample", []float64{}, Of(0)},
		{"three values", []float64{1, 2, 3}, Of(3)},
	} {
		if got := Count(tc.input); got != tc.want {
			t.Errorf("Count: when %s got %v, want %v", tc.desc, got, tc.want)
		}
	}
}

func TestSum(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		input []float64
		want  Statistic
	}{
		{"empty sample", []float64{}, Of(0)},
		{"single value", []float64{-2.5}, Of(-2.5)},
		{"mixed signs", []float64{1, -2, 3.5}, Of(2.5)},
		{"NaN propagates", []float64{1, math.NaN()}, Of(math.NaN())},
	} {
		if got := Sum(tc.input); !approxStat(got, tc.want) {
			t.Errorf("Sum: when %s got %v, want %v", tc.desc, got, tc.want)
		}
	}
}

func TestMean(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		input []float64
		want  Statistic
	}{
		{"nil sample", nil, Undefined()},
		{"empty sample", []float64{}, Undefined()},
		{"single value", []float64{4}, Of(4)},
		{"textbook", textbook, Of(5)},
		{"negative values", []float64{-1, -2, -3}, Of(-2)},
	} {
		if got := Mean(tc.input); !approxStat(got, tc.want) {
			t.Errorf("Mean: when %s got %v, want %v", tc.desc, got, tc.want)
		}
	}
}

func TestMeanMatchesSumOverCount(t *testing.T) {
	for _, input := range [][]float64{
		{1},
		{0.1, 0.2, 0.3},
		{1e10, -1e10, 3, 7},
		textbook,
	} {
		sum, _ := Sum(input).Value()
		want := Of(sum / float64(len(input)))
		if got := Mean(input); !approxStat(got, want) {
			t.Errorf("Mean(%v) = %v, want Sum/n = %v", input, got, want)
		}
		// Cross-check against an independent implementation.
		if got, want := Mean(input).OrElse(math.NaN()), stat.Mean(stat.Float64Slice(input)); !approxStat(Of(got), Of(want)) {
			t.Errorf("Mean(%v) = %f, want %f from grd/stat", input, got, want)
		}
	}
}

func TestMedian(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		input []float64
		want  Statistic
	}{
		{"empty sample is undefined", []float64{}, Undefined()},
		{"single value", []float64{7}, Of(7)},
		{"odd size", []float64{1, 2, 3}, Of(2)},
		{"even size", []float64{1, 2, 3, 4}, Of(2.5)},
		{"unsorted odd size", []float64{9, 1, 5}, Of(5)},
		{"unsorted even size", []float64{4, -1, 10, 2}, Of(3)},
	} {
		if got := Median(tc.input); !approxStat(got, tc.want) {
			t.Errorf("Median: when %s got %v, want %v", tc.desc, got, tc.want)
		}
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	input := []float64{5, 3, 9, 1, 7}
	original := copyOf(input)
	Median(input)
	if !cmp.Equal(input, original) {
		t.Errorf("Median reordered its input: got %v, want %v", input, original)
	}
}

func TestMode(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		input []float64
		want  Statistic
	}{
		{"empty sample", []float64{}, Undefined()},
		{"single value", []float64{1}, Undefined()},
		{"no repeats", []float64{1, 2, 3}, Undefined()},
		{"one repeat", []float64{1, 1, 2, 3}, Of(1)},
		{"repeat not first", []float64{3, 2, 7, 2}, Of(2)},
		{"highest frequency wins", []float64{5, 5, 1, 1, 1, 9}, Of(1)},
		{"tie goes to smallest value", []float64{9, 9, 4, 4, 6}, Of(4)},
		{"negative values", []float64{-3, -3, 0, 1}, Of(-3)},
	} {
		if got := Mode(tc.input); !approxStat(got, tc.want) {
			t.Errorf("Mode: when %s got %v, want %v", tc.desc, got, tc.want)
		}
	}
}

func TestGeometricMean(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		input []float64
		want  Statistic
	}{
		{"empty sample", []float64{}, Undefined()},
		{"powers of two", []float64{1, 2, 4}, Of(2)},
		{"single value", []float64{9}, Of(9)},
		{"zero value", []float64{1, 0, 4}, Undefined()},
		{"negative value", []float64{1, -2, 4}, Undefined()},
		{"NaN value", []float64{1, math.NaN()}, Undefined()},
		{"large values do not overflow", []float64{1e200, 1e200, 1e200}, Of(1e200)},
	} {
		if got := GeometricMean(tc.input); !approxStat(got, tc.want) {
			t.Errorf("GeometricMean: when %s got %v, want %v", tc.desc, got, tc.want)
		}
	}
}

func TestHarmonicMean(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		input []float64
		want  Statistic
	}{
		{"empty sample", []float64{}, Undefined()},
		{"powers of two", []float64{1, 2, 4}, Of(3 / 1.75)},
		{"equal values", []float64{3, 3, 3}, Of(3)},
		{"zero value", []float64{1, 0, 4}, Undefined()},
		{"negative value", []float64{1, -2, 4}, Undefined()},
	} {
		if got := HarmonicMean(tc.input); !approxStat(got, tc.want) {
			t.Errorf("HarmonicMean: when %s got %v, want %v", tc.desc, got, tc.want)
		}
	}
}

func TestRootMeanSquare(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		input []float64
		want  Statistic
	}{
		{"empty sample", []float64{}, Undefined()},
		{"single negative value", []float64{-3}, Of(3)},
		{"three four", []float64{3, 4}, Of(math.Sqrt(12.5))},
		{"zeros", []float64{0, 0}, Of(0)},
	} {
		if got := RootMeanSquare(tc.input); !approxStat(got, tc.want) {
			t.Errorf("RootMeanSquare: when %s got %v, want %v", tc.desc, got, tc.want)
		}
	}
}

func TestTrimmedMean(t *testing.T) {
	for _, tc := range []struct {
		desc       string
		input      []float64
		percentage float64
		want       Statistic
	}{
		{"empty sample", []float64{}, 10, Undefined()},
		{"no trimming equals mean", textbook, 0, Of(5)},
		{"too few values to trim", []float64{1, 2, 100}, 10, Of(103.0 / 3.0)},
		{"one from each tail", []float64{100, 1, 2, 3, 4, 5, 6, 7, 8, -50}, 10, Of(4.5)},
		{"two from each tail", []float64{100, 1, 2, 3, 4, 5, 6, 7, 8, -50}, 25, Of(4.5)},
		{"just below half keeps the middle", []float64{1, 2, 3, 4, 100}, 49, Of(3)},
		{"fifty percent", []float64{1, 2, 3}, 50, Undefined()},
		{"negative percentage", []float64{1, 2, 3}, -5, Undefined()},
		{"NaN percentage", []float64{1, 2, 3}, math.NaN(), Undefined()},
	} {
		if got := TrimmedMean(tc.input, tc.percentage); !approxStat(got, tc.want) {
			t.Errorf("TrimmedMean: when %s got %v, want %v", tc.desc, got, tc.want)
		}
	}
}

func TestSortingStatisticsDoNotMutateInput(t *testing.T) {
	input := []float64{9, 1, 8, 2, 7, 3, 3}
	original := copyOf(input)
	for _, f := range []struct {
		name string
		fn   func([]float64) Statistic
	}{
		{"Median", Median},
		{"Mode", Mode},
		{"TrimmedMean", func(xs []float64) Statistic { return TrimmedMean(xs, 20) }},
		{"MedianAbsoluteDeviation", MedianAbsoluteDeviation},
		{"ShapiroWilk", ShapiroWilk},
		{"KolmogorovSmirnov", KolmogorovSmirnov},
	} {
		f.fn(input)
		if !cmp.Equal(input, original) {
			t.Fatalf("%s modified its input: got %v, want %v", f.name, input, original)
		}
	}
}

func TestStatisticsAreIdempotent(t *testing.T) {
	input := []float64{2.5, 3.1, 9.9, 3.1, 0.4, 7.7}
	first := Summarize(input, nil)
	second := Summarize(input, nil)
	// Bit-identical, no tolerance.
	if !cmp.Equal(first, second, statComparer(0)) {
		t.Errorf("Summarize is not idempotent: %s", cmp.Diff(first, second, statComparer(0)))
	}
}
