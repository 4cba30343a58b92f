// Package output provides record formatting and final-statistics
// reporting for tree-dump runs.
package output

import (
	"time"

	"treesift/pkg/stats"
)

// Report is the complete output of one processing run.
type Report struct {
	// Summary provides the aggregate counters.
	Summary Summary `json:"summary"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// TotalLines is the number of raw lines read, blanks included.
	TotalLines int `json:"total_lines"`

	// FilesFound is the number of items classified as files.
	FilesFound int `json:"files_found"`

	// Extensions is the per-extension file tally, highest count first.
	Extensions []stats.ExtensionCount `json:"extensions,omitempty"`
}

// Metadata provides context about the run.
type Metadata struct {
	// Sources lists the tree files that were processed.
	Sources []string `json:"sources"`

	// FilesOnly reports whether directory records were suppressed.
	FilesOnly bool `json:"files_only"`

	// Interrupted reports whether the run stopped early on a cancel
	// request; the counters then cover only the work completed.
	Interrupted bool `json:"interrupted,omitempty"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration_ns"`
}

// NewReport builds a Report from run statistics.
func NewReport(st *stats.RunStats, meta Metadata) *Report {
	return &Report{
		Summary: Summary{
			TotalLines: st.TotalLines,
			FilesFound: st.FilesFound,
			Extensions: st.TopExtensions(),
		},
		Metadata: meta,
	}
}
