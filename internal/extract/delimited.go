package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// DelimitedSheetName is the synthetic sheet name for flat delimited files.
const DelimitedSheetName = "CSV"

// DelimitedReader reads a flat delimited text file as a single sheet,
// sniffing the field delimiter from the header line.
type DelimitedReader struct{}

// Extensions returns the delimited-text extensions.
func (r *DelimitedReader) Extensions() []string {
	return []string{".csv", ".txt"}
}

// Read skips skipRows leading lines, detects the delimiter on the header
// line, and parses the remainder as one table.
func (r *DelimitedReader) Read(data []byte, skipRows int) ([]NamedSheet, error) {
	rest := data
	for i := 0; i < skipRows; i++ {
		idx := bytes.IndexByte(rest, '\n')
		if idx < 0 {
			rest = nil
			break
		}
		rest = rest[idx+1:]
	}
	if len(rest) == 0 {
		return []NamedSheet{{Name: DelimitedSheetName}}, nil
	}

	header := rest
	if idx := bytes.IndexByte(header, '\n'); idx >= 0 {
		header = header[:idx]
	}

	cr := csv.NewReader(bytes.NewReader(rest))
	cr.Comma = sniffDelimiter(string(header))
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing delimited file: %w", err)
	}
	return []NamedSheet{{Name: DelimitedSheetName, Sheet: tableFromRows(records, 0)}}, nil
}

// sniffDelimiter picks the candidate that occurs most often on the header
// line, defaulting to comma.
func sniffDelimiter(header string) rune {
	best := ','
	bestCount := 0
	for _, c := range []rune{',', ';', '\t', '|'} {
		if n := strings.Count(header, string(c)); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}
