package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Cell is one value read from a tabular source. Raw always holds the textual
// representation as it appeared in the file; Number is only meaningful when
// Numeric is true.
type Cell struct {
	Raw     string
	Number  decimal.Decimal
	Numeric bool
}

// TextCell creates a text cell.
func TextCell(raw string) Cell {
	return Cell{Raw: raw}
}

// NumberCell creates a numeric cell, keeping the source's textual form.
func NumberCell(raw string, n decimal.Decimal) Cell {
	return Cell{Raw: raw, Number: n, Numeric: true}
}

// Empty reports whether the cell holds no value.
func (c Cell) Empty() bool {
	return strings.TrimSpace(c.Raw) == ""
}

// Row maps column name (as read from the header) to cell value.
type Row map[string]Cell

// Sheet is one logical table: an ordered header plus data rows. Readers
// produce it, the classifier consumes it; nothing mutates it in between.
type Sheet struct {
	Columns []string
	Rows    []Row
}
