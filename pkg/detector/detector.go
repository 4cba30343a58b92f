package detector

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"treesift/pkg/parser"
)

// DefaultSampleSize is the number of lines examined when not configured.
const DefaultSampleSize = 100

// Detector identifies the decoration dialect of a tree dump.
type Detector struct {
	sampleSize int
	dialects   []*Dialect
}

// Option configures detector behavior.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample.
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a detector with the built-in dialects.
func New(opts ...Option) *Detector {
	d := &Detector{
		sampleSize: DefaultSampleSize,
		dialects:   DefaultDialects(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DialectMatch is one dialect's score against the sample.
type DialectMatch struct {
	Dialect    *Dialect
	MatchCount int
	Confidence float64 // matched lines / non-blank sampled lines
	SampleLine string  // first line that matched
}

// DetectionResult holds the outcome of sampling a file.
type DetectionResult struct {
	// SampledLines is the number of non-blank lines examined.
	SampledLines int

	// DecoratedLines is the number of sampled lines starting with a
	// decoration character.
	DecoratedLines int

	// IndentUnit is the smallest positive content offset seen, an
	// estimate of the dump's characters-per-level width. Zero when no
	// indented line was sampled.
	IndentUnit int

	// Matches lists scored dialects, best first. Unmatched dialects are
	// omitted.
	Matches []DialectMatch
}

// HasMatch reports whether any dialect matched.
func (r *DetectionResult) HasMatch() bool {
	return len(r.Matches) > 0
}

// BestMatch returns the highest-scoring dialect match.
// Call HasMatch first.
func (r *DetectionResult) BestMatch() *DialectMatch {
	return &r.Matches[0]
}

// DetectFromFile samples the first lines of a tree dump and scores each
// known dialect against them.
func (d *Detector) DetectFromFile(ctx context.Context, path string) (*DetectionResult, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening tree file %s: %w", path, err)
	}
	defer f.Close()

	result := &DetectionResult{}
	counts := make([]int, len(d.dialects))
	samples := make([]string, len(d.dialects))

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for result.SampledLines < d.sampleSize && scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		result.SampledLines++

		first, _ := firstRune(line)
		if parser.IsDecoration(first) {
			result.DecoratedLines++
		}
		if unit := contentOffset(line); unit > 0 && (result.IndentUnit == 0 || unit < result.IndentUnit) {
			result.IndentUnit = unit
		}

		for i, dialect := range d.dialects {
			if matchesDialect(line, dialect) {
				counts[i]++
				if samples[i] == "" {
					samples[i] = line
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	for i, dialect := range d.dialects {
		if counts[i] == 0 {
			continue
		}
		confidence := 0.0
		if result.SampledLines > 0 {
			confidence = float64(counts[i]) / float64(result.SampledLines)
		}
		result.Matches = append(result.Matches, DialectMatch{
			Dialect:    dialect,
			MatchCount: counts[i],
			Confidence: confidence,
			SampleLine: samples[i],
		})
	}

	sort.SliceStable(result.Matches, func(i, j int) bool {
		return result.Matches[i].MatchCount > result.Matches[j].MatchCount
	})

	return result, nil
}

// matchesDialect reports whether line carries any of the dialect's
// markers before its content starts.
func matchesDialect(line string, dialect *Dialect) bool {
	for _, marker := range dialect.Markers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// contentOffset returns the rune offset of the first non-decoration
// character, or 0 when the line starts with content or has none.
func contentOffset(line string) int {
	offset := 0
	for _, r := range line {
		if !parser.IsDecoration(r) {
			return offset
		}
		offset++
	}
	return 0
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
