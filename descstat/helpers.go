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
	"fmt"
	"sort"
)

// ClampFloat64 clamps e within lower and upper, such that lower is returned
// if e < lower, and upper is returned if e > upper. Otherwise, e is returned.
func ClampFloat64(e, lower, upper float64) (float64, error) {
	if lower > upper {
		return 0, fmt.Errorf("lower must be less than or equal to upper, got lower = %v, upper = %v", lower, upper)
	}

	if e > upper {
		return upper, nil
	}
	if e < lower {
		return lower, nil
	}
	return e, nil
}

// clampProbability clamps a p-value that drifted outside of [0, 1] through
// rounding in a series or polynomial approximation.
func clampProbability(p float64) float64 {
	// The bounds are constant and ordered, ClampFloat64 cannot fail here.
	clamped, _ := ClampFloat64(p, 0, 1)
	return clamped
}

// sortedCopy returns an ascending copy of xs. xs itself is left untouched.
func sortedCopy(xs []float64) []float64 {
	s := make([]float64, len(xs))
	copy(s, xs)
	sort.Float64s(s)
	return s
}

// medianOfSorted returns the median of an ascending, non-empty slice.
func medianOfSorted(s []float64) float64 {
	n := len(s)
	mid := n / 2
	if n%2 == 0 {
		return (s[mid-1] + s[mid]) / 2.0
	}
	return s[mid]
}

// sumOfSquaredDeviations returns Σ(xᵢ-center)².
func sumOfSquaredDeviations(xs []float64, center float64) float64 {
	var sum float64
	for _, x := range xs {
		d := x - center
		sum += d * d
	}
	return sum
}
