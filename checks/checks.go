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

// Package checks contains parameter checks for the statistics engine and the
// collaborators that feed and render it.
package checks

import (
	"fmt"
	"math"
	"unicode/utf8"

	log "github.com/golang/glog"
)

const (
	indexName  = "Index"
	weightName = "Weights"

	// MaxTrimPercentage is the exclusive upper bound of the trim percentage.
	// Trimming 50% from each tail would discard the whole sample.
	MaxTrimPercentage = 50.0
	// MaxPrecision is the largest number of fractional digits a statistic
	// may be rendered with. float64 carries no more than 17 significant digits.
	MaxPrecision = 17
)

func verifyName(defaultName string, nameSlice []string) (string, error) {
	var name string
	switch len(nameSlice) {
	case 0:
		name = defaultName
	case 1:
		name = nameSlice[0]
	default:
		return "", fmt.Errorf("There should be 0 or 1 'name' parameter, got %d", len(nameSlice))
	}
	return name, nil
}

// CheckTrimPercentage returns an error if the trim percentage is NaN or
// outside of [0, 50).
func CheckTrimPercentage(percentage float64) error {
	if math.IsNaN(percentage) {
		return fmt.Errorf("TrimPercentage cannot be NaN")
	}
	if percentage < 0 || percentage >= MaxTrimPercentage {
		return fmt.Errorf("TrimPercentage is %f, must be within [0, %g)", percentage, MaxTrimPercentage)
	}
	return nil
}

// CheckPrecision returns an error if precision is negative or larger than
// MaxPrecision.
func CheckPrecision(precision int) error {
	if precision < 0 || precision > MaxPrecision {
		return fmt.Errorf("Precision is %d, must be within [0, %d]", precision, MaxPrecision)
	}
	return nil
}

// CheckIndex returns an error if a row or column index is negative. A value
// of -1 is reserved by callers for "not set" and is rejected as well.
func CheckIndex(index int, name ...string) error {
	idxName, err := verifyName(indexName, name)
	if err != nil {
		return err
	}
	if index < 0 {
		return fmt.Errorf("%s is %d, must be nonnegative", idxName, index)
	}
	return nil
}

// CheckWeights returns an error if any weight is NaN, infinite or negative.
// An all-zero weight vector is accepted, but logged, since it leaves the
// weighted mean undefined.
func CheckWeights(weights []float64, name ...string) error {
	wName, err := verifyName(weightName, name)
	if err != nil {
		return err
	}
	var sum float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%s[%d] is %f, must be finite", wName, i, w)
		}
		if w < 0 {
			return fmt.Errorf("%s[%d] is %f, cannot be negative", wName, i, w)
		}
		sum += w
	}
	if len(weights) > 0 && sum == 0 {
		log.Warningf("%s: all %d weights are zero, the weighted mean will be undefined", wName, len(weights))
	}
	return nil
}

// CheckDelimiter returns an error if delimiter cannot separate the fields of
// a tabular text source.
func CheckDelimiter(delimiter rune) error {
	if delimiter == 0 {
		return fmt.Errorf("Delimiter must be set")
	}
	if !utf8.ValidRune(delimiter) || delimiter == utf8.RuneError {
		return fmt.Errorf("Delimiter %q is not a valid rune", delimiter)
	}
	if delimiter == '"' || delimiter == '\r' || delimiter == '\n' {
		return fmt.Errorf("Delimiter %q is reserved", delimiter)
	}
	return nil
}
