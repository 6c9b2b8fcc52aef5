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

package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	log "github.com/golang/glog"
)

// ParseCell parses the text of a single cell. Surrounding whitespace is
// ignored. It returns false for empty or unparseable text and for NaN and
// infinite values.
func ParseCell(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseRow converts a row of cells into a sample, keeping the cells that
// ParseCell accepts in their original order. The result is never nil.
func ParseRow(cells []string) []float64 {
	sample := make([]float64, 0, len(cells))
	for i, cell := range cells {
		v, ok := ParseCell(cell)
		if !ok {
			if strings.TrimSpace(cell) != "" {
				log.V(2).Infof("ParseRow: skipping cell %d = %q", i, cell)
			}
			continue
		}
		sample = append(sample, v)
	}
	return sample
}

// Sample returns the parsed sample of the row at index.
func (t Table) Sample(index int) ([]float64, error) {
	row, err := t.Row(index)
	if err != nil {
		return nil, err
	}
	return ParseRow(row), nil
}

// WeightedSample pairs the row at index with the row at weightIndex column
// by column. Only the columns in which both cells parse are kept, so
// values[i] and weights[i] always come from the same column.
func (t Table) WeightedSample(index, weightIndex int) (values, weights []float64, err error) {
	row, err := t.Row(index)
	if err != nil {
		return nil, nil, err
	}
	if _, err := t.Row(weightIndex); err != nil {
		return nil, nil, fmt.Errorf("weight row: %w", err)
	}
	values = make([]float64, 0, len(row))
	weights = make([]float64, 0, len(row))
	for column, cell := range row {
		v, ok := ParseCell(cell)
		if !ok {
			continue
		}
		w, ok := ParseCell(t.Cell(weightIndex, column))
		if !ok {
			log.V(2).Infof("WeightedSample: column %d has no weight, skipping %v", column, v)
			continue
		}
		values = append(values, v)
		weights = append(weights, w)
	}
	return values, weights, nil
}
