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

// Package display formats descriptive statistics for people: fixed precision
// numbers, a placeholder for undefined values, and a sectioned report that
// renders as a table, markdown, csv, json or yaml.
package display

import (
	"strconv"

	"github.com/vladcheck/StatisticsVisualizer/checks"
	"github.com/vladcheck/StatisticsVisualizer/descstat"
)

const (
	// DefaultPrecision is the number of fractional digits of a formatted
	// statistic.
	DefaultPrecision = 2
	// DefaultPlaceholder stands in for a statistic without a value.
	DefaultPlaceholder = "—"
)

// Formatter turns a Statistic into text.
type Formatter struct {
	Precision   int
	Placeholder string
}

// NewFormatter returns a Formatter after validating the precision.
func NewFormatter(precision int, placeholder string) (Formatter, error) {
	if err := checks.CheckPrecision(precision); err != nil {
		return Formatter{}, err
	}
	return Formatter{Precision: precision, Placeholder: placeholder}, nil
}

// DefaultFormatter returns a Formatter with DefaultPrecision and
// DefaultPlaceholder.
func DefaultFormatter() Formatter {
	return Formatter{Precision: DefaultPrecision, Placeholder: DefaultPlaceholder}
}

// Format returns the value of s with f.Precision fractional digits, or the
// placeholder if s is Undefined. An Undefined statistic is never shown as 0.
func (f Formatter) Format(s descstat.Statistic) string {
	v, ok := s.Value()
	if !ok {
		return f.Placeholder
	}
	return strconv.FormatFloat(v, 'f', f.Precision, 64)
}

// FormatCount returns s as a whole number, or the placeholder if s is
// Undefined.
func (f Formatter) FormatCount(s descstat.Statistic) string {
	v, ok := s.Value()
	if !ok {
		return f.Placeholder
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}
