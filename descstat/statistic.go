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

// Package descstat computes descriptive statistics over a single sample of
// float64 observations.
//
// Every function is pure: it never mutates its input, keeps no state between
// calls and is safe for concurrent use. A statistic that cannot be computed
// for a given input (empty sample, too few observations, non-positive values
// for a log-domain mean, zero variance feeding a standardized moment, ...) is
// reported as Undefined rather than as an error, a panic or a silent NaN.
package descstat

import "strconv"

// Statistic is the result of a descriptive statistic. It either holds a
// value or is Undefined, meaning that the statistic is not computable for the
// input it was given. The zero value is Undefined.
//
// Undefined is distinct from every float64, including NaN and ±∞: a defined
// Statistic may still hold a non-finite value when a non-finite observation
// propagates through a function that does not check for one.
type Statistic struct {
	value   float64
	defined bool
}

// Of returns a defined Statistic holding v.
func Of(v float64) Statistic {
	return Statistic{value: v, defined: true}
}

// Undefined returns a Statistic that holds no value.
func Undefined() Statistic {
	return Statistic{}
}

// Defined reports whether s holds a value.
func (s Statistic) Defined() bool {
	return s.defined
}

// Value returns the value held by s and whether s is defined. The returned
// value is 0 when s is Undefined.
func (s Statistic) Value() (float64, bool) {
	return s.value, s.defined
}

// OrElse returns the value held by s, or fallback if s is Undefined.
func (s Statistic) OrElse(fallback float64) float64 {
	if !s.defined {
		return fallback
	}
	return s.value
}

// String implements fmt.Stringer.
func (s Statistic) String() string {
	if !s.defined {
		return "undefined"
	}
	return strconv.FormatFloat(s.value, 'g', -1, 64)
}
