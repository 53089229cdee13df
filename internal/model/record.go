package model

import "github.com/shopspring/decimal"

// Record holds the entry/exit sums for one (file, sheet) pair. A sheet that
// is missing required columns still yields a Record, with both totals zero.
type Record struct {
	File     string
	Sheet    string
	TotalIn  decimal.Decimal // CFOP 1xx/2xx/3xx
	TotalOut decimal.Decimal // CFOP 5xx/6xx/7xx
}

// FileTotal is the per-file roll-up over all of a file's Records.
type FileTotal struct {
	File   string
	SumIn  decimal.Decimal
	SumOut decimal.Decimal
}

// GrandTotal is the sum over every Record of a run.
type GrandTotal struct {
	SumIn  decimal.Decimal
	SumOut decimal.Decimal
}
