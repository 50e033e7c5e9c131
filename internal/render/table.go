// Package render prints rows as a plain, borderless, left-aligned table.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// minPadding is added to every header's width so headers never touch.
	minPadding = 2
	separator  = "  "
)

// Table is a fixed header row plus data rows. Rows shorter than the header
// are padded with empty cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable creates an empty table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// Append adds a row, converting each value with Cell.
func (t *Table) Append(values ...any) {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = Cell(v)
	}
	t.Rows = append(t.Rows, row)
}

// Cell converts a value to its cell text. Nil and nil pointers render empty.
func Cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case int:
		return strconv.Itoa(v)
	case *int:
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h) + minPadding
	}
	for _, row := range t.Rows {
		for i := range widths {
			if i < len(row) {
				widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
			}
		}
	}
	return widths
}

// Write renders the table to w. A table with no rows renders only the header.
func (t *Table) Write(w io.Writer) error {
	widths := t.widths()
	var b strings.Builder
	writeLine(&b, t.Headers, widths)
	for _, row := range t.Rows {
		writeLine(&b, row, widths)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeLine(b *strings.Builder, cells []string, widths []int) {
	var line strings.Builder
	for i, width := range widths {
		if i > 0 {
			line.WriteString(separator)
		}
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		line.WriteString(runewidth.FillRight(cell, width))
	}
	b.WriteString(strings.TrimRight(line.String(), " "))
	b.WriteByte('\n')
}
