// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

// Package escape handles quoting and unescaping of string bodies.
//
// The escape rules are deliberately narrow: a backslash followed by n, r, or
// t denotes a newline, carriage return, or tab; a backslash followed by any
// other byte denotes that byte. There are no numeric or Unicode escapes.
package escape

import (
	"errors"

	"go4.org/mem"
)

// ErrIncomplete is reported by Unescape for a trailing backslash.
var ErrIncomplete = errors.New("incomplete escape sequence")

// Unescape decodes the body of a quoted string. The input must have the
// enclosing quotation marks already removed.
func Unescape(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}
	for i >= 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, ErrIncomplete
		}
		dec = append(dec, Resolve(src.At(0)))
		src = src.SliceFrom(1)
		i = mem.IndexByte(src, '\\')
	}
	return mem.Append(dec, src), nil
}

// Resolve returns the byte denoted by a backslash followed by b.
func Resolve(b byte) byte {
	switch b {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default:
		return b
	}
}
