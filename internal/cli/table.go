package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// table prints rows with a left-aligned label column and right-aligned value columns.
type table struct {
	w             io.Writer
	labelColWidth int
	valueColWidth int
	columns       []string
}

// newTable creates a table with the given column widths and value column titles.
func newTable(w io.Writer, labelColWidth, valueColWidth int, columns ...string) *table {
	return &table{
		w:             w,
		labelColWidth: labelColWidth,
		valueColWidth: valueColWidth,
		columns:       columns,
	}
}

// printHeader prints the column titles.
func (t *table) printHeader(labelTitle string) {
	fmt.Fprintf(t.w, "%-*s", t.labelColWidth, labelTitle)
	for _, col := range t.columns {
		fmt.Fprintf(t.w, "%*s", t.valueColWidth, col)
	}
	fmt.Fprintln(t.w)
}

// printSeparator prints a horizontal separator line.
func (t *table) printSeparator() {
	totalWidth := t.labelColWidth + t.valueColWidth*len(t.columns)
	fmt.Fprintln(t.w, strings.Repeat("-", totalWidth))
}

// printRow prints a label followed by one value per column.
// Empty values are displayed as "-".
func (t *table) printRow(label string, values ...string) {
	fmt.Fprintf(t.w, "%-*s", t.labelColWidth, label)
	for _, v := range values {
		if v == "" {
			v = "-"
		}
		fmt.Fprintf(t.w, "%*s", t.valueColWidth, v)
	}
	fmt.Fprintln(t.w)
}

// money formats a rounded amount with two decimals.
func money(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// km formats a distance with one decimal.
func km(distance float64) string {
	return decimal.NewFromFloat(distance).StringFixed(1)
}
