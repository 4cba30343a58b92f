// Package stats accumulates per-run counters for a tree-dump pass.
package stats

import "sort"

// RunStats holds the counters for one processing run. A fresh instance
// is required per run; counters only ever increase.
type RunStats struct {
	// TotalLines counts every raw line read, blank and decoration-only
	// lines included.
	TotalLines int

	// FilesFound counts items classified as files.
	FilesFound int

	// Extensions maps a lowercase extension (no leading dot) to the
	// number of files seen with it.
	Extensions map[string]int
}

// New returns an empty RunStats.
func New() *RunStats {
	return &RunStats{Extensions: make(map[string]int)}
}

// ObserveLine records one raw line read from the source.
func (s *RunStats) ObserveLine() {
	s.TotalLines++
}

// RecordFile records one item classified as a file. When the name had a
// detectable extension, ext holds it and hasExt is true.
func (s *RunStats) RecordFile(ext string, hasExt bool) {
	s.FilesFound++
	if hasExt {
		s.Extensions[ext]++
	}
}

// ExtensionCount pairs an extension with its file count.
type ExtensionCount struct {
	Extension string `json:"extension"`
	Count     int    `json:"count"`
}

// TopExtensions returns the tally sorted by count descending, ties
// broken alphabetically for stable output.
func (s *RunStats) TopExtensions() []ExtensionCount {
	out := make([]ExtensionCount, 0, len(s.Extensions))
	for ext, count := range s.Extensions {
		out = append(out, ExtensionCount{Extension: ext, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Extension < out[j].Extension
	})
	return out
}
