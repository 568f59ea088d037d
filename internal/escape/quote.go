// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package escape

import "go4.org/mem"

// escapes maps each byte that Quote escapes to the letter following the
// backslash. Unmapped bytes are copied verbatim.
var escapes = [256]byte{
	'"':  '"',
	'\\': '\\',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

// Quote encodes src as the body of a quoted string, escaping exactly the
// bytes that Unescape restores. All other bytes, including other control
// characters and non-ASCII text, are copied unchanged.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if e := escapes[b]; e != 0 {
			buf = append(buf, '\\', e)
		} else {
			buf = append(buf, b)
		}
	}
	return append(buf, '"')
}

// NeedsQuote reports whether Quote would escape any byte of src.
func NeedsQuote(src mem.RO) bool {
	for i := 0; i < src.Len(); i++ {
		if escapes[src.At(i)] != 0 {
			return true
		}
	}
	return false
}
