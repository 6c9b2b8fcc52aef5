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

	"gonum.org/v1/gonum/floats"
)

// madToStdDev scales the median absolute deviation into a consistent
// estimator of the standard deviation of normally distributed data; it is
// 1/Φ⁻¹(3/4).
const madToStdDev = 1.4826

// Variance returns the unbiased sample variance Σ(xᵢ-mean)²/(n-1) around the
// caller-supplied mean. It is Undefined if len(xs) < 2.
func Variance(xs []float64, mean float64) Statistic {
	n := len(xs)
	if n < 2 {
		return Undefined()
	}
	return Of(sumOfSquaredDeviations(xs, mean) / float64(n-1))
}

// StandardDeviation returns the sample standard deviation around the
// caller-supplied mean, using the n-1 denominator. It is Undefined if
// len(xs) < 2.
func StandardDeviation(xs []float64, mean float64) Statistic {
	v, ok := Variance(xs, mean).Value()
	if !ok {
		return Undefined()
	}
	return Of(math.Sqrt(v))
}

// Min returns the smallest observation. It is Undefined for an empty sample.
func Min(xs []float64) Statistic {
	if len(xs) == 0 {
		return Undefined()
	}
	return Of(floats.Min(xs))
}

// Max returns the largest observation. It is Undefined for an empty sample.
func Max(xs []float64) Statistic {
	if len(xs) == 0 {
		return Undefined()
	}
	return Of(floats.Max(xs))
}

// Range returns Max(xs) - Min(xs). It is Undefined for an empty sample.
func Range(xs []float64) Statistic {
	if len(xs) == 0 {
		return Undefined()
	}
	return Of(floats.Max(xs) - floats.Min(xs))
}

// MedianAbsoluteDeviation returns median(|xᵢ - median(xs)|), without any
// consistency scaling. It is Undefined for an empty sample.
func MedianAbsoluteDeviation(xs []float64) Statistic {
	if len(xs) == 0 {
		return Undefined()
	}
	median := medianOfSorted(sortedCopy(xs))
	deviations := make([]float64, len(xs))
	for i, x := range xs {
		deviations[i] = math.Abs(x - median)
	}
	return Of(medianOfSorted(sortedCopy(deviations)))
}

// RobustStandardDeviation estimates the standard deviation as 1.4826·MAD,
// which is insensitive to outliers. Like StandardDeviation it is Undefined if
// len(xs) < 2.
func RobustStandardDeviation(xs []float64) Statistic {
	if len(xs) < 2 {
		return Undefined()
	}
	mad, _ := MedianAbsoluteDeviation(xs).Value()
	return Of(madToStdDev * mad)
}
