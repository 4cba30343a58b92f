package parser

import (
	"testing"
)

func TestParseLine_IndentLevels(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantLevel int
		wantName  string
	}{
		{"root entry", "Root", 0, "Root"},
		{"level one spaces", "    fileA.txt", 1, "fileA.txt"},
		{"level two spaces", "        fileB.py", 2, "fileB.py"},
		{"branch glyph level one", "├── src", 1, "src"},
		{"corner glyph level one", "└── main.go", 1, "main.go"},
		{"nested glyphs level two", "│   ├── util.go", 2, "util.go"},
		{"nested glyphs level three", "│   │   └── deep.txt", 3, "deep.txt"},
		{"non-breaking spaces", "    notes.md", 1, "notes.md"},
		{"offset not multiple of four floors", "      partial.txt", 1, "partial.txt"},
		{"offset below four is level zero", "  shallow.txt", 0, "shallow.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := ParseLine(1, tt.raw)
			if !ok {
				t.Fatalf("ParseLine(%q) returned no item", tt.raw)
			}
			if item.IndentLevel != tt.wantLevel {
				t.Errorf("IndentLevel = %d, want %d", item.IndentLevel, tt.wantLevel)
			}
			if item.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", item.Name, tt.wantName)
			}
		})
	}
}

func TestParseLine_Absent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty line", ""},
		{"spaces only", "     "},
		{"glyphs only", "│   │"},
		{"mixed decoration", "├──   ─┴"},
		{"full glyph set", "│─└├┬┴┘┌┐┼ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if item, ok := ParseLine(1, tt.raw); ok {
				t.Errorf("ParseLine(%q) = %+v, want absent", tt.raw, item)
			}
		})
	}
}

func TestParseLine_WhitespaceNormalization(t *testing.T) {
	item, ok := ParseLine(1, "├── my   spaced\t\tname  ")
	if !ok {
		t.Fatal("ParseLine returned no item")
	}
	if item.Name != "my spaced name" {
		t.Errorf("Name = %q, want %q", item.Name, "my spaced name")
	}
}

func TestParseLine_TrailingWhitespaceDoesNotChangeLevel(t *testing.T) {
	base, ok := ParseLine(1, "│   ├── file.txt")
	if !ok {
		t.Fatal("ParseLine returned no item")
	}
	padded, ok := ParseLine(1, "│   ├── file.txt        ")
	if !ok {
		t.Fatal("ParseLine returned no item")
	}
	if base.IndentLevel != padded.IndentLevel {
		t.Errorf("IndentLevel changed with trailing whitespace: %d vs %d",
			base.IndentLevel, padded.IndentLevel)
	}
	if base.Name != padded.Name {
		t.Errorf("Name changed with trailing whitespace: %q vs %q", base.Name, padded.Name)
	}
}

func TestParseLine_DecorationAfterContentKept(t *testing.T) {
	// Decoration glyphs past the content start are ordinary content
	item, ok := ParseLine(1, "├── weird─name")
	if !ok {
		t.Fatal("ParseLine returned no item")
	}
	if item.Name != "weird─name" {
		t.Errorf("Name = %q, want %q", item.Name, "weird─name")
	}
}

func TestParseLine_PreservesLineNumber(t *testing.T) {
	item, ok := ParseLine(42, "Root")
	if !ok {
		t.Fatal("ParseLine returned no item")
	}
	if item.LineNum != 42 {
		t.Errorf("LineNum = %d, want 42", item.LineNum)
	}
	if item.Raw != "Root" {
		t.Errorf("Raw = %q, want %q", item.Raw, "Root")
	}
	if item.FullPath != "" {
		t.Errorf("FullPath = %q, want empty before path reconstruction", item.FullPath)
	}
}
