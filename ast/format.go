// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package ast

import (
	"bufio"
	"io"
	"strings"
)

// indentStep is the number of spaces per nesting level in formatted output.
const indentStep = 2

// Format writes v to w in indented multi-line form. Each element of an array
// and each member of an object is written on its own line, indented two
// spaces past its container, and the closing bracket appears on its own line
// at the container's indent. Empty containers are written as "[ ]" and "{ }".
// No trailing newline is written.
//
// Parsing the output of Format yields a value equal to v, and formatting that
// value again produces the same text.
func Format(w io.Writer, v Value) error { return FormatIndent(w, v, 0) }

// FormatIndent is as Format, but indents the output as if v were nested depth
// levels deep. The first line is indented as well.
func FormatIndent(w io.Writer, v Value, depth int) error {
	f := &formatter{w: bufio.NewWriter(w)}
	f.value(v, depth, false)
	return f.w.Flush()
}

// Colors holds optional functions to decorate the elements of formatted
// output, for example with terminal color escapes. Each function is called
// with the format "%s" and the text of one element. A nil function leaves
// its elements undecorated.
type Colors struct {
	Key     func(string, ...any) string // object member keys
	String  func(string, ...any) string
	Number  func(string, ...any) string
	Keyword func(string, ...any) string // true, false, and null
	Punct   func(string, ...any) string // brackets, braces, and separators
}

// FormatColors is as Format, but decorates the output using c.
// Indentation and line breaks are never decorated.
func FormatColors(w io.Writer, v Value, c Colors) error {
	f := &formatter{w: bufio.NewWriter(w), c: c}
	f.value(v, 0, false)
	return f.w.Flush()
}

// FormatString returns the formatted text of v as a string.
func FormatString(v Value) string {
	var sb strings.Builder
	Format(&sb, v) // writes to a strings.Builder do not fail
	return sb.String()
}

type formatter struct {
	w *bufio.Writer
	c Colors
}

func (f *formatter) indent(depth int) {
	for range depth * indentStep {
		f.w.WriteByte(' ')
	}
}

// put writes text, decorated by dec if it is not nil.
func (f *formatter) put(dec func(string, ...any) string, text string) {
	if dec != nil {
		text = dec("%s", text)
	}
	f.w.WriteString(text)
}

// value writes v at the given depth. If inline is true, v follows a key on the
// same line and its first line is not indented.
func (f *formatter) value(v Value, depth int, inline bool) {
	if !inline {
		f.indent(depth)
	}
	switch t := v.(type) {
	case Array:
		if len(t) == 0 {
			f.put(f.c.Punct, "[ ]")
			return
		}
		f.put(f.c.Punct, "[")
		f.w.WriteByte('\n')
		for i, elt := range t {
			if i > 0 {
				f.put(f.c.Punct, ",")
				f.w.WriteByte('\n')
			}
			f.value(elt, depth+1, false)
		}
		f.w.WriteByte('\n')
		f.indent(depth)
		f.put(f.c.Punct, "]")

	case *Object:
		if t.Len() == 0 {
			f.put(f.c.Punct, "{ }")
			return
		}
		f.put(f.c.Punct, "{")
		f.w.WriteByte('\n')
		for i, m := range t.list() {
			if i > 0 {
				f.put(f.c.Punct, ",")
				f.w.WriteByte('\n')
			}
			f.indent(depth + 1)
			f.put(f.c.Key, String(m.Key).JSON())
			f.w.WriteByte(' ')
			f.put(f.c.Punct, ":")
			f.w.WriteByte(' ')
			f.value(m.Value, depth+1, true)
		}
		f.w.WriteByte('\n')
		f.indent(depth)
		f.put(f.c.Punct, "}")

	case String:
		f.put(f.c.String, t.JSON())
	case Number:
		f.put(f.c.Number, t.JSON())
	default:
		f.put(f.c.Keyword, v.JSON())
	}
}
