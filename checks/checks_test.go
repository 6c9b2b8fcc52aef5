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

package checks

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCheckTrimPercentage(t *testing.T) {
	for _, tc := range []struct {
		desc       string
		percentage float64
		wantErr    bool
	}{
		{"zero percentage",
			0,
			false},
		{"typical percentage",
			10,
			false},
		{"just below fifty",
			49.999,
			false},
		{"fifty",
			50,
			true},
		{"negative percentage",
			-1,
			true},
		{"percentage is NaN",
			math.NaN(),
			true},
		{"percentage is positive infinity",
			math.Inf(1),
			true},
	} {
		if err := CheckTrimPercentage(tc.percentage); (err != nil) != tc.wantErr {
			t.Errorf("CheckTrimPercentage: when %s for err got %v, want %t", tc.desc, err, tc.wantErr)
		}
	}
}

func TestCheckPrecision(t *testing.T) {
	for _, tc := range []struct {
		desc      string
		precision int
		wantErr   bool
	}{
		{"zero precision", 0, false},
		{"default precision", 2, false},
		{"max precision", MaxPrecision, false},
		{"precision above max", MaxPrecision + 1, true},
		{"negative precision", -1, true},
	} {
		if err := CheckPrecision(tc.precision); (err != nil) != tc.wantErr {
			t.Errorf("CheckPrecision: when %s for err got %v, want %t", tc.desc, err, tc.wantErr)
		}
	}
}

func TestCheckIndex(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		index   int
		wantErr bool
	}{
		{"zero index", 0, false},
		{"positive index", 7, false},
		{"negative index", -1, true},
	} {
		if err := CheckIndex(tc.index); (err != nil) != tc.wantErr {
			t.Errorf("CheckIndex: when %s for err got %v, want %t", tc.desc, err, tc.wantErr)
		}
	}
}

func TestCheckIndexUsesName(t *testing.T) {
	err := CheckIndex(-3, "Row")
	if err == nil {
		t.Fatalf("CheckIndex(-3, \"Row\"): got nil error, want error")
	}
	if !strings.HasPrefix(err.Error(), "Row is -3") {
		t.Errorf("CheckIndex(-3, \"Row\"): got %q, want message starting with %q", err, "Row is -3")
	}
	if err := CheckIndex(0, "Row", "Column"); err == nil {
		t.Errorf("CheckIndex with two names: got nil error, want error")
	}
}

func TestCheckWeights(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		weights []float64
		wantErr bool
	}{
		{"nil weights", nil, false},
		{"positive weights", []float64{1, 2, 3}, false},
		{"zero weight among positive ones", []float64{1, 0, 3}, false},
		{"all zero weights", []float64{0, 0}, false},
		{"negative weight", []float64{1, -2, 3}, true},
		{"NaN weight", []float64{1, math.NaN()}, true},
		{"infinite weight", []float64{math.Inf(1)}, true},
	} {
		if err := CheckWeights(tc.weights); (err != nil) != tc.wantErr {
			t.Errorf("CheckWeights: when %s for err got %v, want %t", tc.desc, err, tc.wantErr)
		}
	}
}

func TestCheckDelimiter(t *testing.T) {
	for _, tc := range []struct {
		desc      string
		delimiter rune
		wantErr   bool
	}{
		{"comma", ',', false},
		{"semicolon", ';', false},
		{"tab", '\t', false},
		{"unset", 0, true},
		{"quote", '"', true},
		{"newline", '\n', true},
		{"invalid rune", utf8.RuneError, true},
	} {
		if err := CheckDelimiter(tc.delimiter); (err != nil) != tc.wantErr {
			t.Errorf("CheckDelimiter: when %s for err got %v, want %t", tc.desc, err, tc.wantErr)
		}
	}
}
