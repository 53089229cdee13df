// Package diag carries processing diagnostics out of the core without
// coupling it to any output surface.
package diag

import (
	"fmt"
	"io"
)

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic is one processing anomaly. File and Sheet are empty when the
// diagnostic is not tied to a particular input.
type Diagnostic struct {
	Severity Severity
	File     string
	Sheet    string
	Message  string
}

func (d Diagnostic) String() string {
	switch {
	case d.File != "" && d.Sheet != "":
		return fmt.Sprintf("%s: %s [sheet %s]: %s", d.Severity, d.File, d.Sheet, d.Message)
	case d.File != "":
		return fmt.Sprintf("%s: %s: %s", d.Severity, d.File, d.Message)
	default:
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
}

// Sink receives diagnostics as they are emitted.
type Sink interface {
	Emit(d Diagnostic)
}

// Recorder is a Sink that keeps every diagnostic in order.
type Recorder struct {
	diags []Diagnostic
}

// Emit appends d.
func (r *Recorder) Emit(d Diagnostic) {
	r.diags = append(r.diags, d)
}

// All returns the recorded diagnostics in emission order.
func (r *Recorder) All() []Diagnostic {
	return r.diags
}

// Writer is a Sink that prints one line per diagnostic.
type Writer struct {
	W io.Writer
}

// Emit writes d to the underlying writer. Write errors are dropped; a
// diagnostic surface must never abort processing.
func (w Writer) Emit(d Diagnostic) {
	fmt.Fprintln(w.W, d.String())
}

// Tee fans one diagnostic out to several sinks.
type Tee []Sink

// Emit forwards d to every sink.
func (t Tee) Emit(d Diagnostic) {
	for _, s := range t {
		s.Emit(d)
	}
}
