package output

import (
	"treesift/pkg/parser"
)

// Formatter renders per-item records and the final report in a specific
// format. Records arrive in processing order; WriteReport is called once
// at end of run.
type Formatter interface {
	// WriteHeader emits the section header before any records.
	WriteHeader(title string) error

	// WriteItem emits one record for a parsed item.
	WriteItem(item *parser.Item) error

	// WriteReport emits the final statistics.
	WriteReport(report *Report) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose includes the raw source line in each record.
	Verbose bool

	// Quiet suppresses per-item records, leaving only the final report.
	Quiet bool
}
