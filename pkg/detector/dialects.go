// Package detector samples a tree dump and identifies its decoration
// dialect before a full processing run.
package detector

// Dialect represents a known tree-output decoration convention.
type Dialect struct {
	Name        string   // Human-readable name
	Markers     []string // Branch markers that identify the dialect
	Parseable   bool     // True if the streaming parser understands it
	Description string
	Examples    []string
}

// DefaultDialects returns the built-in dialects to detect.
// Ordered by specificity: dialects with more distinctive markers first.
func DefaultDialects() []*Dialect {
	return []*Dialect{
		{
			Name:        "Unicode box-drawing",
			Markers:     []string{"├──", "└──", "│"},
			Parseable:   true,
			Description: "GNU tree default output with box-drawing glyphs",
			Examples:    []string{"├── src", "│   └── main.go"},
		},
		{
			Name:        "ASCII pipes",
			Markers:     []string{"|--", "`--", "+--"},
			Parseable:   false,
			Description: "tree --charset=ascii or hand-written listings",
			Examples:    []string{"|-- src", "`-- main.go"},
		},
		{
			Name:        "Plain indentation",
			Markers:     []string{"    "},
			Parseable:   true,
			Description: "space-indented listing with no branch glyphs",
			Examples:    []string{"src", "    main.go"},
		},
	}
}
