// Package parser provides tree-dump reading, line parsing, and path
// reconstruction.
package parser

// RawLine is a single line of tree output before parsing.
type RawLine struct {
	// Text is the line content with the trailing newline removed.
	Text string

	// Source is the file path this line came from.
	Source string

	// LineNum is the 1-based line number in the source file.
	LineNum int
}

// Item is one parsed tree entry.
type Item struct {
	// LineNum is the 1-based line number of the originating line.
	LineNum int

	// Raw is the original line content.
	Raw string

	// IndentLevel is the nesting depth inferred from the leading
	// decoration width.
	IndentLevel int

	// Name is the cleaned display text: decoration stripped, internal
	// whitespace runs collapsed, surrounding whitespace trimmed.
	Name string

	// FullPath is the slash-joined ancestor chain ending at this item.
	// Assigned by PathStack.Advance, empty until then.
	FullPath string
}
