// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package jsondoc

import (
	"cmp"
	"fmt"
)

// A Location describes a position in source text, both as a raw byte offset
// and as an apparent line and column. Locations are ordered by offset only;
// the line and column are diagnostic.
type Location struct {
	Line   int   // line number, 1-based
	Column int   // column count within the line, 0-based
	Offset int64 // byte offset, 0-based
}

// Compare orders locations by byte offset. It returns -1, 0, or +1.
func (l Location) Compare(o Location) int { return cmp.Compare(l.Offset, o.Offset) }

// Before reports whether l occurs strictly before o.
func (l Location) Before(o Location) bool { return l.Offset < o.Offset }

func (l Location) String() string {
	return fmt.Sprintf("%d:%d (offset %d)", l.Line, l.Column, l.Offset)
}

// tabWidth is the number of columns a tab character advances.
const tabWidth = 4

// A tracker maintains the apparent location of the next unread byte.
type tracker struct{ loc Location }

func newTracker(offset int64) tracker {
	return tracker{loc: Location{Line: 1, Offset: offset}}
}

// step records the consumption of one byte as part of a token.
func (t *tracker) step() {
	t.loc.Offset++
	t.loc.Column++
}

// space records the consumption of b as whitespace between tokens.
//
// A tab advances the column by tabWidth and also counts as a line break;
// existing diagnostics depend on this.
func (t *tracker) space(b byte) {
	t.loc.Offset++
	switch b {
	case '\n':
		t.loc.Line++
		t.loc.Column = 0
	case '\t':
		t.loc.Line++
		t.loc.Column += tabWidth
	default:
		t.loc.Column++
	}
}
