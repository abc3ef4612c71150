// Package render writes lookup results as ASCII tables, Markdown tables,
// JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Format controls the output format.
type Format string

const (
	Table    Format = "table"    // Fixed-width terminal tables
	Markdown Format = "markdown" // GitHub-flavoured Markdown tables
	JSON     Format = "json"
	YAML     Format = "yaml"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case Table, Markdown, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", name)
	}
}

// Grid is the tabular form of a result.
type Grid struct {
	Title  string
	Header []string
	Rows   [][]string
	Footer []string
	// Right-aligned column numbers, 1-based.
	AlignRight []int
}

// Tabular is implemented by results that can be shown as a grid.
// JSON and YAML output marshal the result value itself.
type Tabular interface {
	Grid() Grid
}

// Write renders v to w in the given format.
func Write(w io.Writer, f Format, v Tabular) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case Table, Markdown:
		_, err := io.WriteString(w, renderGrid(f, v.Grid())+"\n")
		return err
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

func renderGrid(f Format, g Grid) string {
	tw := table.NewWriter()

	if f == Table {
		tw.SetStyle(table.StyleLight)
	}
	if g.Title != "" {
		tw.SetTitle(g.Title)
	}

	if len(g.Header) > 0 {
		tw.AppendHeader(toRow(g.Header))
	}
	for _, r := range g.Rows {
		tw.AppendRow(toRow(r))
	}
	if len(g.Footer) > 0 {
		tw.AppendFooter(toRow(g.Footer))
	}

	if len(g.AlignRight) > 0 {
		cfgs := make([]table.ColumnConfig, len(g.AlignRight))
		for i, n := range g.AlignRight {
			cfgs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight}
		}
		tw.SetColumnConfigs(cfgs)
	}

	if f == Markdown {
		return tw.RenderMarkdown()
	}
	return tw.Render()
}

func toRow(cols []string) table.Row {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	return row
}
