package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			"run-level",
			Diagnostic{Severity: SeverityInfo, Message: "no files supplied"},
			"info: no files supplied",
		},
		{
			"file-level",
			Diagnostic{Severity: SeverityError, File: "a.xls", Message: "unsupported"},
			"error: a.xls: unsupported",
		},
		{
			"sheet-level",
			Diagnostic{Severity: SeverityWarning, File: "a.xlsx", Sheet: "Jan", Message: "missing column"},
			"warning: a.xlsx [sheet Jan]: missing column",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestRecorderKeepsOrder(t *testing.T) {
	var r Recorder
	r.Emit(Diagnostic{Severity: SeverityError, Message: "first"})
	r.Emit(Diagnostic{Severity: SeverityWarning, Message: "second"})

	all := r.All()
	assert.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Message)
	assert.Equal(t, "second", all[1].Message)
}

func TestTeeFansOut(t *testing.T) {
	var r Recorder
	var buf bytes.Buffer
	sink := Tee{&r, Writer{W: &buf}}

	sink.Emit(Diagnostic{Severity: SeverityInfo, Message: "hello"})

	assert.Len(t, r.All(), 1)
	assert.Equal(t, "info: hello\n", buf.String())
}
