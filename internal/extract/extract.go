// Package extract turns buffered file bytes into raw sheets, selecting the
// reading strategy by filename extension.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cfopsum-dev/cfopsum/internal/model"
)

// SkipRows is how many leading rows every sheet carries before the header.
// The fiscal exports this tool reads put the header on row 18.
const SkipRows = 17

// ErrUnsupportedFormat indicates no reader is registered for the extension.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// NamedSheet pairs a sheet name with its parsed table.
type NamedSheet struct {
	Name  string
	Sheet model.Sheet
}

// Reader parses one fully buffered file into its sheets.
type Reader interface {
	Read(data []byte, skipRows int) ([]NamedSheet, error)
	Extensions() []string
}

// Registry holds readers keyed by lowercase extension.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate extension.
func (r *Registry) Register(rd Reader) {
	for _, ext := range rd.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.readers[key]; ok {
			panic("duplicate reader extension: " + key)
		}
		r.readers[key] = rd
	}
}

// Get returns the reader for ext, or nil.
func (r *Registry) Get(ext string) Reader {
	return r.readers[strings.ToLower(ext)]
}

// DefaultRegistry returns a registry with all built-in readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&WorkbookReader{})
	r.Register(&DelimitedReader{})
	return r
}

// Extract parses data using the reader registered for name's extension.
func (r *Registry) Extract(name string, data []byte, skipRows int) ([]NamedSheet, error) {
	ext := strings.ToLower(filepath.Ext(name))
	rd := r.Get(ext)
	if rd == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return rd.Read(data, skipRows)
}

// tableFromRows builds a Sheet from string rows, dropping skipRows leading
// rows and taking the next one as the header.
func tableFromRows(rows [][]string, skipRows int) model.Sheet {
	if skipRows < 0 {
		skipRows = 0
	}
	if len(rows) <= skipRows {
		return model.Sheet{}
	}

	header := rows[skipRows]
	sheet := model.Sheet{Columns: header}

	for _, raw := range rows[skipRows+1:] {
		row := make(model.Row, len(header))
		for i, col := range header {
			var v string
			if i < len(raw) {
				v = raw[i]
			}
			row[col] = typedCell(v)
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}

// typedCell keeps the raw text and marks the cell numeric when it parses as
// a plain decimal. Codes are consumed from the raw text either way, so a
// numeric-looking code keeps its exact digits.
func typedCell(raw string) model.Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return model.TextCell(raw)
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return model.NumberCell(raw, d)
	}
	return model.TextCell(raw)
}
