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

	log "github.com/golang/glog"
	"github.com/vladcheck/StatisticsVisualizer/checks"
)

// DefaultWeightColumn is the column read by ColumnWeights unless told
// otherwise.
const DefaultWeightColumn = 1

// WeightSource produces the weights paired positionally with a sample. An
// empty result means that no weights are available.
type WeightSource interface {
	Weights() ([]float64, error)
}

// AlignedWeightSource is a WeightSource whose weights belong to the columns
// of a sample row. WeightedSample returns the values of that row and their
// weights, aligned column by column.
type AlignedWeightSource interface {
	WeightSource
	WeightedSample(row int) (values, weights []float64, err error)
}

func nonNegative(text string) (float64, bool) {
	v, ok := ParseCell(text)
	if !ok || v < 0 {
		return 0, false
	}
	return v, true
}

// ColumnWeights reads the weights from one column of a grid: every cell of
// the column that holds a nonnegative number, top to bottom. Other cells are
// skipped.
type ColumnWeights struct {
	Table  Table
	Column int
}

// Weights implements WeightSource.
func (c ColumnWeights) Weights() ([]float64, error) {
	if err := checks.CheckIndex(c.Column, "weight column"); err != nil {
		return nil, err
	}
	weights := []float64{}
	if c.Column >= c.Table.Columns() {
		return weights, nil
	}
	for _, cell := range c.Table.Column(c.Column) {
		if w, ok := nonNegative(cell); ok {
			weights = append(weights, w)
		}
	}
	if err := checks.CheckWeights(weights, "column weights"); err != nil {
		return nil, err
	}
	return weights, nil
}

// AutoWeights looks for the first column of a grid in which every row holds a
// nonnegative number and uses it as weights.
type AutoWeights struct {
	Table Table
}

// Weights implements WeightSource. It returns an empty slice if no column
// qualifies.
func (a AutoWeights) Weights() ([]float64, error) {
	rows := a.Table.Rows()
	if rows == 0 {
		return []float64{}, nil
	}
	for column := 0; column < a.Table.Columns(); column++ {
		candidate := make([]float64, 0, rows)
		for row := 0; row < rows; row++ {
			w, ok := nonNegative(a.Table.Cell(row, column))
			if !ok {
				break
			}
			candidate = append(candidate, w)
		}
		if len(candidate) == rows {
			log.V(1).Infof("AutoWeights: found weights in column %d", column)
			if err := checks.CheckWeights(candidate, "auto weights"); err != nil {
				return nil, err
			}
			return candidate, nil
		}
	}
	log.V(1).Infof("AutoWeights: no valid weights column found")
	return []float64{}, nil
}

// RowWeights reads the weights from one row of a grid, parsed like a sample.
// Use WeightedSample to pair them with another row of the same grid.
type RowWeights struct {
	Table Table
	Row   int
}

// Weights implements WeightSource.
func (r RowWeights) Weights() ([]float64, error) {
	weights, err := r.Table.Sample(r.Row)
	if err != nil {
		return nil, fmt.Errorf("weight row: %w", err)
	}
	if err := checks.CheckWeights(weights, "row weights"); err != nil {
		return nil, err
	}
	return weights, nil
}

// WeightedSample implements AlignedWeightSource. A value is kept only if the
// weight row has a number in the same column.
func (r RowWeights) WeightedSample(row int) (values, weights []float64, err error) {
	values, weights, err = r.Table.WeightedSample(row, r.Row)
	if err != nil {
		return nil, nil, err
	}
	if err := checks.CheckWeights(weights, "row weights"); err != nil {
		return nil, nil, err
	}
	return values, weights, nil
}
