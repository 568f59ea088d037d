// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package jsondoc

import (
	"errors"
	"strings"

	"github.com/jsondoc/jsondoc/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a quoted string token. Double quotation marks are
// added, and the quotation mark, backslash, newline, carriage return and tab
// are escaped. The result scans back to a string token with contents src.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unquote decodes a quoted string token. Double quotation marks are removed,
// and escape sequences are replaced by the bytes they denote. Unquote reports
// an error for an incomplete escape sequence.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	dec, err := escape.Unescape(mem.S(src[1 : len(src)-1]))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
