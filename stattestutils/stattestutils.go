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

// Package stattestutils provides naive reference implementations of sample
// statistics and deterministic sample generators.
//
// This package is not optimized for performance or speed and is only intended
// to be used in tests, as an oracle for the descstat package.
package stattestutils

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// SampleMean returns the mean of a slice, calculated as the average over the
// values in the slice.
func SampleMean(values []float64) float64 {
	var sum float64 = 0.0
	for _, v := range values {
		sum += v
	}
	return sum / math.Max(1, float64(len(values)))
}

// SampleVariance returns the variance of a slice, calculated as the sum of
// squares of the distance to the mean of each of the values, divided by the
// number of values.
func SampleVariance(values []float64) float64 {
	mean := SampleMean(values)
	var sumOfSquares float64 = 0.0
	for _, v := range values {
		sumOfSquares += math.Pow(v-mean, 2)
	}
	return sumOfSquares / math.Max(1, float64(len(values)))
}

// UnbiasedStandardDeviation returns the standard deviation of a slice with
// the n-1 denominator, or 0 if the slice has fewer than two values.
func UnbiasedStandardDeviation(values []float64) float64 {
	n := float64(len(values))
	if n < 2 {
		return 0
	}
	return math.Sqrt(SampleVariance(values) * n / (n - 1))
}

// NormalScores returns n ascending values placed at the (i-0.5)/n quantiles
// of the normal distribution with the given mean and standard deviation. The
// result is an idealized, deterministic normal sample.
func NormalScores(n int, mean, stdDev float64) []float64 {
	dist := distuv.Normal{Mu: mean, Sigma: stdDev}
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = dist.Quantile((float64(i) + 0.5) / float64(n))
	}
	return scores
}

// ExponentialScores returns n ascending values placed at the (i-0.5)/n
// quantiles of the exponential distribution with the given rate. The result
// is a deterministic, strongly right-skewed sample.
func ExponentialScores(n int, rate float64) []float64 {
	dist := distuv.Exponential{Rate: rate}
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = dist.Quantile((float64(i) + 0.5) / float64(n))
	}
	return scores
}
