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

	log "github.com/golang/glog"
	"github.com/vladcheck/StatisticsVisualizer/checks"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultTrimPercentage is the share of observations, in percent, that
// TrimmedMean discards from each tail when no other value is configured.
const DefaultTrimPercentage = 10.0

// Count returns the number of observations. It is always defined.
func Count(xs []float64) Statistic {
	return Of(float64(len(xs)))
}

// Sum returns the arithmetic sum of xs, 0 for an empty sample. Non-finite
// observations propagate into the result.
func Sum(xs []float64) Statistic {
	return Of(floats.Sum(xs))
}

// Mean returns Sum(xs)/len(xs). It is Undefined for an empty sample.
func Mean(xs []float64) Statistic {
	if len(xs) == 0 {
		return Undefined()
	}
	return Of(floats.Sum(xs) / float64(len(xs)))
}

// Median returns the middle value of xs, or the average of the two middle
// values if len(xs) is even. It is Undefined for an empty sample.
//
// The median is computed on a sorted copy; the order of xs is preserved.
func Median(xs []float64) Statistic {
	if len(xs) == 0 {
		return Undefined()
	}
	return Of(medianOfSorted(sortedCopy(xs)))
}

// Mode returns the value that occurs strictly more often than any other.
// When several values share the highest frequency, the smallest one wins.
// Mode is Undefined for an empty sample and when no value repeats.
func Mode(xs []float64) Statistic {
	s := sortedCopy(xs)
	mode, maxFrequency := 0.0, 1
	for i := 0; i < len(s); {
		j := i + 1
		for j < len(s) && s[j] == s[i] {
			j++
		}
		if frequency := j - i; frequency > maxFrequency {
			mode, maxFrequency = s[i], frequency
		}
		i = j
	}
	if maxFrequency <= 1 {
		return Undefined()
	}
	return Of(mode)
}

// allPositive reports whether every observation is strictly positive. NaN
// is not positive.
func allPositive(xs []float64) bool {
	for _, x := range xs {
		if !(x > 0) {
			return false
		}
	}
	return true
}

// GeometricMean returns the n-th root of the product of xs. It is Undefined
// for an empty sample or if any observation is zero, negative or NaN.
//
// The product is accumulated in the log domain so that long samples of large
// or small values neither overflow nor underflow.
func GeometricMean(xs []float64) Statistic {
	if len(xs) == 0 || !allPositive(xs) {
		return Undefined()
	}
	return Of(stat.GeometricMean(xs, nil))
}

// HarmonicMean returns n / Σ(1/xᵢ). It is Undefined under the same
// conditions as GeometricMean.
func HarmonicMean(xs []float64) Statistic {
	if len(xs) == 0 || !allPositive(xs) {
		return Undefined()
	}
	return Of(stat.HarmonicMean(xs, nil))
}

// RootMeanSquare returns sqrt(Σxᵢ²/n). It is Undefined for an empty sample.
func RootMeanSquare(xs []float64) Statistic {
	if len(xs) == 0 {
		return Undefined()
	}
	return Of(math.Sqrt(floats.Dot(xs, xs) / float64(len(xs))))
}

// TrimmedMean returns the mean of xs after discarding ⌊n·percentage/100⌋
// of the lowest and as many of the highest observations. It is Undefined for
// an empty sample or a percentage outside of [0, 50).
func TrimmedMean(xs []float64, percentage float64) Statistic {
	if err := checks.CheckTrimPercentage(percentage); err != nil {
		log.V(1).Infof("TrimmedMean: %v", err)
		return Undefined()
	}
	n := len(xs)
	if n == 0 {
		return Undefined()
	}
	k := int(math.Floor(float64(n) * percentage / 100))
	kept := sortedCopy(xs)[k : n-k]
	return Of(floats.Sum(kept) / float64(len(kept)))
}
