// Package aggregate drives classification across files and sheets and folds
// the results into the three report levels.
package aggregate

import (
	"github.com/cfopsum-dev/cfopsum/internal/classify"
	"github.com/cfopsum-dev/cfopsum/internal/diag"
	"github.com/cfopsum-dev/cfopsum/internal/extract"
	"github.com/cfopsum-dev/cfopsum/internal/model"
)

// Input is one uploaded file, fully buffered. Name carries the extension
// that selects the reading strategy.
type Input struct {
	Name string
	Data []byte
}

// Options configures a run. Zero values are filled from the defaults.
type Options struct {
	Columns  classify.Columns
	SkipRows int
	Registry *extract.Registry
}

// DefaultOptions matches the fiscal exports this tool reads: CFOP/Valor NF
// columns, header on row 18, built-in readers.
func DefaultOptions() Options {
	return Options{
		Columns:  classify.DefaultColumns(),
		SkipRows: extract.SkipRows,
		Registry: extract.DefaultRegistry(),
	}
}

// Result holds the three report levels of one run.
type Result struct {
	Records []model.Record
	Files   []model.FileTotal
	Grand   model.GrandTotal
}

// Run processes inputs strictly in order, one file at a time, and never
// fails: every anomaly degrades to zero-valued data plus a diagnostic.
func Run(inputs []Input, opts Options, sink diag.Sink) Result {
	if opts.Registry == nil {
		opts.Registry = extract.DefaultRegistry()
	}
	if opts.Columns == (classify.Columns{}) {
		opts.Columns = classify.DefaultColumns()
	}

	if len(inputs) == 0 {
		sink.Emit(diag.Diagnostic{
			Severity: diag.SeverityInfo,
			Message:  "no files supplied",
		})
		return Result{}
	}

	var records []model.Record
	for _, in := range inputs {
		sheets, err := opts.Registry.Extract(in.Name, in.Data, opts.SkipRows)
		if err != nil {
			sink.Emit(diag.Diagnostic{
				Severity: diag.SeverityError,
				File:     in.Name,
				Message:  err.Error(),
			})
			continue
		}
		for _, ns := range sheets {
			records = append(records, classify.Classify(ns.Sheet, in.Name, ns.Name, opts.Columns, sink))
		}
	}

	if len(records) == 0 {
		sink.Emit(diag.Diagnostic{
			Severity: diag.SeverityWarning,
			Message:  "no records to aggregate",
		})
		return Result{}
	}

	return Result{
		Records: records,
		Files:   TotalsByFile(records),
		Grand:   Grand(records),
	}
}

// TotalsByFile groups records by file label, in first-seen order.
func TotalsByFile(records []model.Record) []model.FileTotal {
	byFile := make(map[string]int)
	var totals []model.FileTotal
	for _, r := range records {
		i, seen := byFile[r.File]
		if !seen {
			i = len(totals)
			byFile[r.File] = i
			totals = append(totals, model.FileTotal{File: r.File})
		}
		totals[i].SumIn = totals[i].SumIn.Add(r.TotalIn)
		totals[i].SumOut = totals[i].SumOut.Add(r.TotalOut)
	}
	return totals
}

// Grand sums every record of the run.
func Grand(records []model.Record) model.GrandTotal {
	var g model.GrandTotal
	for _, r := range records {
		g.SumIn = g.SumIn.Add(r.TotalIn)
		g.SumOut = g.SumOut.Add(r.TotalOut)
	}
	return g
}
