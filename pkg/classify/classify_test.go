package classify

import (
	"testing"
)

func TestClassifier_IsFile(t *testing.T) {
	c := New([]string{"txt", "py", "gz", "GO"})

	tests := []struct {
		name   string
		input  string
		isFile bool
	}{
		{"known extension", "notes.txt", true},
		{"uppercase name lowercased", "NOTES.TXT", true},
		{"extension normalized at construction", "main.go", true},
		{"size annotation stripped", "fileA.txt (10 KB)", true},
		{"multi-dot uses final extension", "archive.tar.gz", true},
		{"no dot is a directory", "SubDir", false},
		{"dotted name with unknown extension", "node.modules", false},
		{"hidden-file style unknown extension", "v1.2", false},
		{"trailing dot", "weird.", false},
		{"annotation only", "(10 KB)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsFile(tt.input); got != tt.isFile {
				t.Errorf("IsFile(%q) = %v, want %v", tt.input, got, tt.isFile)
			}
		})
	}
}

func TestClassifier_IsFileStateless(t *testing.T) {
	c := New([]string{"txt"})
	// Classification depends only on the name
	for i := 0; i < 3; i++ {
		if !c.IsFile("a.txt") {
			t.Fatal("IsFile changed across calls")
		}
		if c.IsFile("a.dir") {
			t.Fatal("IsFile changed across calls")
		}
	}
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantExt string
		wantOK  bool
	}{
		{"simple", "notes.txt", "txt", true},
		{"lowercased", "REPORT.PDF", "pdf", true},
		{"multi-dot final wins", "archive.tar.gz", "gz", true},
		{"annotation stripped first", "archive.tar.gz (1.2 MB)", "gz", true},
		{"no dot", "SubDir", "", false},
		{"dot only in annotation", "SubDir (v1.2)", "", false},
		{"trailing dot yields empty extension", "name.", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, ok := ExtensionOf(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ExtensionOf(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ext != tt.wantExt {
				t.Errorf("ExtensionOf(%q) = %q, want %q", tt.input, ext, tt.wantExt)
			}
		})
	}
}

func TestStripAnnotation(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"fileA.txt (10 KB)", "fileA.txt"},
		{"archive.tar.gz (1.2 MB)", "archive.tar.gz"},
		{"no annotation", "no annotation"},
		{"(group) in middle stays", "(group) in middle stays"},
		{"nested (a) (b)", "nested (a)"},
		{"tight(suffix)", "tight"},
	}

	for _, tt := range tests {
		if got := StripAnnotation(tt.input); got != tt.want {
			t.Errorf("StripAnnotation(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNew_NormalizesExtensions(t *testing.T) {
	c := New([]string{".TXT", "py", ".Go", ""})
	if c.Size() != 3 {
		t.Errorf("Size() = %d, want 3 (empty entry dropped)", c.Size())
	}
	if !c.IsFile("a.txt") || !c.IsFile("b.go") {
		t.Error("leading dot / case not normalized at construction")
	}
}
