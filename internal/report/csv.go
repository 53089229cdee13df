// Package report serializes classification records to the consolidated CSV,
// the one artifact a run persists.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cfopsum-dev/cfopsum/internal/model"
)

// Header is the CSV header of the consolidated summary.
const Header = "arquivo,sheet,total_entrada,total_saida"

const (
	numFields = 4
	colFile   = 0
	colSheet  = 1
	colIn     = 2
	colOut    = 3
)

// ReadRecords reads a consolidated summary back into records.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading summary CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var recs []model.Record
	for i, rec := range records[1:] {
		rr, err := UnmarshalRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		recs = append(recs, rr)
	}
	return recs, nil
}

// WriteRecords writes records to a consolidated summary (including header).
func WriteRecords(w io.Writer, recs []model.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range recs {
		if err := cw.Write(MarshalRecord(r)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalRecord converts a Record to a CSV row. Amounts are written as plain
// decimals, no currency symbol or grouping, and without rounding.
func MarshalRecord(r model.Record) []string {
	row := make([]string, numFields)
	row[colFile] = r.File
	row[colSheet] = r.Sheet
	row[colIn] = r.TotalIn.String()
	row[colOut] = r.TotalOut.String()
	return row
}

// UnmarshalRecord converts a CSV row to a Record.
func UnmarshalRecord(record []string) (model.Record, error) {
	if len(record) != numFields {
		return model.Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	in, err := decimal.NewFromString(record[colIn])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing total_entrada %q: %w", record[colIn], err)
	}
	out, err := decimal.NewFromString(record[colOut])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing total_saida %q: %w", record[colOut], err)
	}

	return model.Record{
		File:     record[colFile],
		Sheet:    record[colSheet],
		TotalIn:  in,
		TotalOut: out,
	}, nil
}
