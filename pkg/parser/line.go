package parser

import (
	"strings"
)

// IndentWidth is the number of decoration characters per nesting level.
// The tree convention this parser targets pads each level to 4 columns;
// offsets that are not a multiple of 4 are floor-divided.
const IndentWidth = 4

// decoration holds the glyphs that carry no semantic content: branch and
// connector characters, the non-breaking space, and the plain space.
var decoration = map[rune]bool{
	' ':      true,
	' ': true,
	'│':      true,
	'─':      true,
	'└':      true,
	'├':      true,
	'┬':      true,
	'┴':      true,
	'┘':      true,
	'┌':      true,
	'┐':      true,
	'┼':      true,
}

// IsDecoration reports whether r is a tree decoration character.
func IsDecoration(r rune) bool {
	return decoration[r]
}

// ParseLine converts one raw tree-output line into an Item.
// The second return value is false when the line holds no content
// (empty, whitespace-only, or decoration-only); such lines produce no
// item and must be skipped by the caller.
//
// Parsing never fails: decoration characters appearing after the first
// content character are kept as ordinary content.
func ParseLine(lineNum int, raw string) (*Item, bool) {
	contentStart := -1
	runeIndex := 0
	byteStart := 0
	for i, r := range raw {
		if !decoration[r] {
			contentStart = runeIndex
			byteStart = i
			break
		}
		runeIndex++
	}
	if contentStart < 0 {
		return nil, false
	}

	name := collapseWhitespace(raw[byteStart:])
	if name == "" {
		return nil, false
	}

	return &Item{
		LineNum:     lineNum,
		Raw:         raw,
		IndentLevel: contentStart / IndentWidth,
		Name:        name,
	}, true
}

// collapseWhitespace reduces every internal whitespace run to a single
// space and trims the ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
