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

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// This file contains values and functions shared by the descstat tests.

var (
	tenten = math.Pow10(-10)
	tensix = math.Pow10(-6)

	// The textbook sample with mean 5 and population standard deviation 2.
	textbook = []float64{2, 4, 4, 4, 5, 5, 7, 9}
	// Sample standard deviation of textbook, √(32/7).
	textbookSD = math.Sqrt(32.0 / 7.0)
)

// statComparer compares two Statistics: both Undefined, or both defined
// with values within the given relative or absolute tolerance. NaN values
// compare equal to each other.
func statComparer(tolerance float64) cmp.Option {
	return cmp.Comparer(func(x, y Statistic) bool {
		if x.Defined() != y.Defined() {
			return false
		}
		return cmp.Equal(x.OrElse(0), y.OrElse(0), cmpopts.EquateApprox(tolerance, tolerance), cmpopts.EquateNaNs())
	})
}

func approxStat(got, want Statistic) bool {
	return cmpStat(got, want, tenten)
}

func cmpStat(got, want Statistic, tolerance float64) bool {
	return cmp.Equal(got, want, statComparer(tolerance))
}

func cmpTest(got, want TestResult, tolerance float64) bool {
	return cmp.Equal(got, want, statComparer(tolerance))
}

func copyOf(xs []float64) []float64 {
	return append([]float64(nil), xs...)
}
