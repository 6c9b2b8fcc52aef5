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

// Package grid reads spreadsheet-like grids of text cells and turns their
// rows and columns into samples and weights for the descstat package.
package grid

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	log "github.com/golang/glog"
	"github.com/vladcheck/StatisticsVisualizer/checks"
)

// DefaultDelimiter is the field delimiter of CSV grids.
const DefaultDelimiter = ','

// textSeparator splits a line of pasted text into cells. Hyphens are not
// separators so that negative numbers survive.
var textSeparator = regexp.MustCompile(`[;,\s]+`)

// Table is a grid of text cells indexed by row then column. Rows may have
// different lengths; a missing cell reads as the empty string.
type Table [][]string

// Rows returns the number of rows of t.
func (t Table) Rows() int {
	return len(t)
}

// Columns returns the length of the longest row of t.
func (t Table) Columns() int {
	columns := 0
	for _, row := range t {
		if len(row) > columns {
			columns = len(row)
		}
	}
	return columns
}

// Cell returns the text at the given position, or "" if there is no such
// cell.
func (t Table) Cell(row, column int) string {
	if row < 0 || row >= len(t) || column < 0 || column >= len(t[row]) {
		return ""
	}
	return t[row][column]
}

// Row returns the cells of the row at index.
func (t Table) Row(index int) ([]string, error) {
	if err := checks.CheckIndex(index, "row"); err != nil {
		return nil, err
	}
	if index >= len(t) {
		return nil, fmt.Errorf("row %d out of range, the grid has %d rows", index, len(t))
	}
	return t[index], nil
}

// Column returns the cell of every row in the given column, with "" for rows
// that are too short.
func (t Table) Column(index int) []string {
	cells := make([]string, len(t))
	for row := range t {
		cells[row] = t.Cell(row, index)
	}
	return cells
}

// ReadCSV reads a delimited grid. Quoted fields follow RFC 4180 and rows may
// have any number of fields.
func ReadCSV(r io.Reader, delimiter rune) (Table, error) {
	if err := checks.CheckDelimiter(delimiter); err != nil {
		return nil, err
	}
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var table Table
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("couldn't read the csv grid: %w", err)
		}
		table = append(table, record)
	}
	log.V(1).Infof("ReadCSV: read %d rows", len(table))
	return table, nil
}

// ReadText reads a grid of pasted text: one row per line, cells separated by
// any run of semicolons, commas and whitespace. Blank lines are skipped.
func ReadText(r io.Reader) (Table, error) {
	var table Table
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		table = append(table, textSeparator.Split(line, -1))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("couldn't read the text grid: %w", err)
	}
	log.V(1).Infof("ReadText: read %d rows", len(table))
	return table, nil
}

// ReadFile reads the grid stored at path. Files ending in .csv are read with
// ReadCSV and the given delimiter, .tsv files with a tab delimiter, and any
// other file with ReadText.
func ReadFile(path string, delimiter rune) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the grid file %q: %w", path, err)
	}
	defer f.Close()

	var table Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		table, err = ReadCSV(f, delimiter)
	case ".tsv":
		table, err = ReadCSV(f, '\t')
	default:
		table, err = ReadText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return table, nil
}
