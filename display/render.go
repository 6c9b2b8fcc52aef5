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

package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Format selects how a Report is rendered.
type Format string

// Supported formats.
const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported Format.
var Formats = []Format{FormatTable, FormatMarkdown, FormatCSV, FormatJSON, FormatYAML}

// ParseFormat returns the Format named by s, ignoring case.
func ParseFormat(s string) (Format, error) {
	name := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, f := range Formats {
		if f == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q, want one of %v", s, Formats)
}

// Render writes r to w in the given format.
func (r Report) Render(w io.Writer, format Format) error {
	var out string
	switch format {
	case FormatTable:
		out = r.tableWriter(true).Render()
	case FormatMarkdown:
		out = r.tableWriter(false).RenderMarkdown()
	case FormatCSV:
		out = r.tableWriter(false).RenderCSV()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return fmt.Errorf("write %s report: %w", format, err)
	}
	return nil
}

// tableWriter lays the report out as rows of section, statistic and value.
// Sections are separated by a rule when separators is set.
func (r Report) tableWriter(separators bool) table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Section", "Statistic", "Value"})
	for i, s := range r.Sections {
		if separators && i > 0 {
			tbl.AppendSeparator()
		}
		for _, e := range s.Entries {
			tbl.AppendRow(table.Row{s.Title, e.Label, e.Value})
		}
	}
	return tbl
}
