// Package runlog keeps a CSV audit trail of the diagnostics a run emitted.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cfopsum-dev/cfopsum/internal/diag"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp time.Time
	Severity  diag.Severity
	File      string
	Sheet     string
	Message   string
}

// Header is the CSV header for the run log.
const Header = "timestamp,severity,file,sheet,message"

const (
	numFields    = 5
	colTimestamp = 0
	colSeverity  = 1
	colFile      = 2
	colSheet     = 3
	colMessage   = 4
)

// FromDiagnostic converts a diagnostic to a log entry stamped at ts.
func FromDiagnostic(d diag.Diagnostic, ts time.Time) Entry {
	return Entry{
		Timestamp: ts,
		Severity:  d.Severity,
		File:      d.File,
		Sheet:     d.Sheet,
		Message:   d.Message,
	}
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSeverity] = string(e.Severity)
	row[colFile] = e.File
	row[colSheet] = e.Sheet
	row[colMessage] = e.Message
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp: ts,
		Severity:  diag.Severity(record[colSeverity]),
		File:      record[colFile],
		Sheet:     record[colSheet],
		Message:   record[colMessage],
	}, nil
}

// Append writes entries to path, creating the file and header if needed.
func Append(path string, entries []Entry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log dir: %w", err)
		}
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from path.
// Returns an empty slice if the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
