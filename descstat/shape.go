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

import "math"

// validStdDev reports whether stdDev can standardize a moment.
func validStdDev(stdDev float64) bool {
	return stdDev != 0 && !math.IsNaN(stdDev)
}

// Skewness returns the bias-corrected sample skewness
//
//	n/((n-1)(n-2)) · Σ(xᵢ-mean)³ / stdDev³
//
// for a previously computed mean and standard deviation. It is Undefined if
// len(xs) < 3 or if stdDev is 0 or NaN.
func Skewness(xs []float64, mean, stdDev float64) Statistic {
	n := len(xs)
	if n < 3 || !validStdDev(stdDev) {
		return Undefined()
	}
	var sumCubedDeviations float64
	for _, x := range xs {
		d := x - mean
		sumCubedDeviations += d * d * d
	}
	nf := float64(n)
	factor := nf / ((nf - 1) * (nf - 2))
	return Of(factor * sumCubedDeviations / math.Pow(stdDev, 3))
}

// Kurtosis returns the bias-corrected sample excess kurtosis
//
//	n(n+1)/((n-1)(n-2)(n-3)) · Σ(xᵢ-mean)⁴/stdDev⁴ - 3(n-1)²/((n-2)(n-3))
//
// for a previously computed mean and standard deviation. It is Undefined if
// len(xs) < 4 or if stdDev is 0 or NaN.
func Kurtosis(xs []float64, mean, stdDev float64) Statistic {
	n := len(xs)
	if n < 4 || !validStdDev(stdDev) {
		return Undefined()
	}
	var sumFourthDeviations float64
	for _, x := range xs {
		d := (x - mean) * (x - mean)
		sumFourthDeviations += d * d
	}
	nf := float64(n)
	biasCorrection := nf * (nf + 1) / ((nf - 1) * (nf - 2) * (nf - 3))
	term := sumFourthDeviations / math.Pow(stdDev, 4)
	return Of(biasCorrection*term - 3*(nf-1)*(nf-1)/((nf-2)*(nf-3)))
}
