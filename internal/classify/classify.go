// Package classify sums the entry and exit sides of one ledger sheet.
//
// Every CFOP code maps to a bucket by its leading digit: 1/2/3 are entries,
// 5/6/7 are exits, anything else is outside both and ignored.
package classify

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cfopsum-dev/cfopsum/internal/diag"
	"github.com/cfopsum-dev/cfopsum/internal/model"
)

// Columns names the two required columns of a sheet.
type Columns struct {
	Code   string // transaction-type code, kept as text
	Amount string // monetary value being summed
}

// DefaultColumns matches the fiscal spreadsheets this tool is built for.
func DefaultColumns() Columns {
	return Columns{Code: "CFOP", Amount: "Valor NF"}
}

type bucket int

const (
	bucketNone bucket = iota
	bucketIn
	bucketOut
)

// Classify produces the Record for one sheet. Missing required columns
// degrade to a zero-totals Record plus a warning on the sink; they never
// abort the run.
func Classify(sheet model.Sheet, file, sheetName string, cols Columns, sink diag.Sink) model.Record {
	rec := model.Record{File: file, Sheet: sheetName}

	codeKey, codeOK := resolveColumn(sheet.Columns, cols.Code)
	amountKey, amountOK := resolveColumn(sheet.Columns, cols.Amount)

	if !codeOK || !amountOK {
		var missing []string
		if !codeOK {
			missing = append(missing, cols.Code)
		}
		if !amountOK {
			missing = append(missing, cols.Amount)
		}
		sink.Emit(diag.Diagnostic{
			Severity: diag.SeverityWarning,
			File:     file,
			Sheet:    sheetName,
			Message:  fmt.Sprintf("missing required column(s): %s", strings.Join(missing, ", ")),
		})
		return rec
	}

	numeric := numericColumn(sheet.Rows, amountKey)

	for _, row := range sheet.Rows {
		amount := amountValue(row[amountKey], numeric)

		code := strings.TrimSpace(row[codeKey].Raw)
		switch bucketOf(code) {
		case bucketIn:
			rec.TotalIn = rec.TotalIn.Add(amount)
		case bucketOut:
			rec.TotalOut = rec.TotalOut.Add(amount)
		}
	}
	return rec
}

// resolveColumn finds the sheet column whose trimmed name matches want, and
// returns the name under which rows key it.
func resolveColumn(columns []string, want string) (string, bool) {
	for _, c := range columns {
		if strings.TrimSpace(c) == want {
			return c, true
		}
	}
	return "", false
}

// numericColumn reports whether every non-empty cell of the column already
// carries a number. One textual cell makes the whole column textual, so the
// normalization mode is fixed per sheet, never per cell.
func numericColumn(rows []model.Row, key string) bool {
	for _, row := range rows {
		cell := row[key]
		if cell.Empty() {
			continue
		}
		if !cell.Numeric {
			return false
		}
	}
	return true
}

func amountValue(cell model.Cell, numeric bool) decimal.Decimal {
	if numeric {
		// Missing values count as zero; the parsed number is used as-is.
		return cell.Number
	}
	return NormalizeAmount(cell.Raw)
}

// NormalizeAmount parses a Brazilian-formatted money string ("1.234,56").
// Periods are thousands separators and are stripped first, then the decimal
// comma becomes a period, then every character that is not a digit, period,
// or minus is dropped. Anything still unparseable is zero: malformed and
// blank cells must never abort aggregation.
func NormalizeAmount(raw string) decimal.Decimal {
	s := strings.ReplaceAll(raw, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// bucketOf classifies a code by its first character only.
func bucketOf(code string) bucket {
	if code == "" {
		return bucketNone
	}
	switch code[0] {
	case '1', '2', '3':
		return bucketIn
	case '5', '6', '7':
		return bucketOut
	default:
		return bucketNone
	}
}
