package parser

import (
	"strings"
)

// PathStack holds the ancestor name at each indentation level for the
// item most recently advanced through it. One instance serves one
// processing run; it is strictly sequential and must not be shared.
type PathStack struct {
	names []string
}

// NewPathStack returns an empty path stack.
func NewPathStack() *PathStack {
	return &PathStack{}
}

// Advance updates the stack for item and returns the item's full
// slash-joined path, also storing it on item.FullPath.
//
// Items must arrive in source order. When the input skips levels
// (an item indented more than one level past its predecessor) the
// missing ancestors are padded with empty names, so the resulting path
// contains empty segments. That is a documented lossy recovery, not a
// repair; callers needing strict structure must check for "//" in paths.
//
// After every call len(stack) == item.IndentLevel + 1.
func (p *PathStack) Advance(item *Item) string {
	level := item.IndentLevel

	if len(p.names) > level {
		p.names = p.names[:level]
	}
	for len(p.names) < level {
		p.names = append(p.names, "")
	}
	p.names = append(p.names, item.Name)

	item.FullPath = strings.Join(p.names, "/")
	return item.FullPath
}

// Depth returns the current stack depth.
func (p *PathStack) Depth() int {
	return len(p.names)
}

// Reset empties the stack. Used at source-file boundaries so separate
// dumps never share lineage.
func (p *PathStack) Reset() {
	p.names = p.names[:0]
}
