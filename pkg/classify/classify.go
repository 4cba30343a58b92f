// Package classify decides whether a tree entry is a file or a directory
// based on a fixed extension allow-list.
package classify

import (
	"regexp"
	"strings"
)

// annotationPattern matches a trailing parenthesized annotation such as a
// size suffix: "fileA.txt (10 KB)". Only the last group, anchored at the
// end of the name, is stripped.
var annotationPattern = regexp.MustCompile(`\s*\([^)]*\)$`)

// Classifier tests names against an extension allow-list.
// A name with dots that match no known extension is a directory;
// the classifier never guesses from a bare dot.
type Classifier struct {
	allowed map[string]bool
}

// New creates a Classifier from the given extensions. Extensions are
// normalized to lowercase with any leading dot removed.
func New(extensions []string) *Classifier {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))
		if ext != "" {
			allowed[ext] = true
		}
	}
	return &Classifier{allowed: allowed}
}

// Size returns the number of extensions in the allow-list.
func (c *Classifier) Size() int {
	return len(c.allowed)
}

// IsFile reports whether name is a file: after stripping a trailing
// annotation it must contain a dot, and the final extension must be in
// the allow-list. Classification depends only on the name itself.
func (c *Classifier) IsFile(name string) bool {
	ext, ok := ExtensionOf(name)
	return ok && c.allowed[ext]
}

// ExtensionOf returns the lowercased text after the last dot of the
// annotation-stripped name. The second return value is false when the
// name contains no dot. Names with multiple dots use only the final
// extension ("archive.tar.gz" yields "gz").
func ExtensionOf(name string) (string, bool) {
	clean := StripAnnotation(name)
	idx := strings.LastIndexByte(clean, '.')
	if idx < 0 {
		return "", false
	}
	return strings.ToLower(clean[idx+1:]), true
}

// StripAnnotation removes a trailing parenthesized annotation from name,
// returning the name unchanged when none is present.
func StripAnnotation(name string) string {
	return annotationPattern.ReplaceAllString(name, "")
}
