package parser

import (
	"testing"
)

func advance(t *testing.T, stack *PathStack, level int, name string) string {
	t.Helper()
	item := &Item{IndentLevel: level, Name: name}
	path := stack.Advance(item)
	if stack.Depth() != level+1 {
		t.Fatalf("Depth() = %d after level %d, want %d", stack.Depth(), level, level+1)
	}
	if item.FullPath != path {
		t.Fatalf("item.FullPath = %q, Advance returned %q", item.FullPath, path)
	}
	return path
}

func TestPathStack_BasicLineage(t *testing.T) {
	stack := NewPathStack()

	steps := []struct {
		level    int
		name     string
		wantPath string
	}{
		{0, "Root", "Root"},
		{1, "fileA.txt (10 KB)", "Root/fileA.txt (10 KB)"},
		{1, "SubDir", "Root/SubDir"},
		{2, "fileB.py", "Root/SubDir/fileB.py"},
	}

	for _, step := range steps {
		got := advance(t, stack, step.level, step.name)
		if got != step.wantPath {
			t.Errorf("Advance(level=%d, %q) = %q, want %q",
				step.level, step.name, got, step.wantPath)
		}
	}
}

func TestPathStack_SiblingReplacesLevel(t *testing.T) {
	stack := NewPathStack()
	advance(t, stack, 0, "Root")
	advance(t, stack, 1, "first")
	got := advance(t, stack, 1, "second")
	if got != "Root/second" {
		t.Errorf("sibling path = %q, want %q", got, "Root/second")
	}
}

func TestPathStack_ReturnToShallowerLevel(t *testing.T) {
	stack := NewPathStack()
	advance(t, stack, 0, "Root")
	advance(t, stack, 1, "a")
	advance(t, stack, 2, "b")
	advance(t, stack, 3, "c")
	got := advance(t, stack, 1, "d")
	if got != "Root/d" {
		t.Errorf("path after pop = %q, want %q", got, "Root/d")
	}
}

func TestPathStack_SkippedLevelPadsEmptySegment(t *testing.T) {
	stack := NewPathStack()
	advance(t, stack, 0, "Root")
	// Level 2 directly after level 0: the missing ancestor is padded,
	// not invented
	got := advance(t, stack, 2, "Deep")
	if got != "Root//Deep" {
		t.Errorf("skipped-level path = %q, want %q", got, "Root//Deep")
	}
}

func TestPathStack_SkipFromEmptyStack(t *testing.T) {
	stack := NewPathStack()
	got := advance(t, stack, 2, "Orphan")
	if got != "//Orphan" {
		t.Errorf("path = %q, want %q", got, "//Orphan")
	}
}

func TestPathStack_Reset(t *testing.T) {
	stack := NewPathStack()
	advance(t, stack, 0, "Root")
	advance(t, stack, 1, "child")
	stack.Reset()
	if stack.Depth() != 0 {
		t.Errorf("Depth() after Reset = %d, want 0", stack.Depth())
	}
	got := advance(t, stack, 0, "Other")
	if got != "Other" {
		t.Errorf("path after Reset = %q, want %q", got, "Other")
	}
}

func TestPathStack_InvariantAcrossRandomLevels(t *testing.T) {
	stack := NewPathStack()
	levels := []int{0, 1, 2, 2, 5, 1, 0, 3, 3, 2, 4, 0}
	for _, level := range levels {
		advance(t, stack, level, "n")
	}
}
