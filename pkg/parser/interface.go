package parser

import (
	"context"
)

// LineSource provides an iterator over raw tree-output lines.
// Implementations must be safe for sequential access (not concurrent).
type LineSource interface {
	// Next returns the next raw line, blank lines included.
	// Returns io.EOF when no more lines are available.
	Next(ctx context.Context) (*RawLine, error)

	// Close releases any resources held by the source.
	Close() error
}
