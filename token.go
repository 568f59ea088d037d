// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package jsondoc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsondoc/jsondoc/internal/escape"

	"go4.org/mem"
)

// Kind is the classification of a lexical token.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // the zero Token
	String              // quoted string
	Number              // number
	Keyword             // constant: true, false, null
	Punct               // punctuator: { } [ ] : ,
)

var kindStr = [...]string{
	Invalid: "invalid token",
	String:  "string",
	Number:  "number",
	Keyword: "keyword",
	Punct:   "punctuator",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// KeywordKind identifies one of the three JSON constants.
type KeywordKind byte

// Constants defining the valid KeywordKind values.
const (
	True KeywordKind = iota + 1
	False
	Null
)

func (k KeywordKind) String() string {
	switch k {
	case True:
		return "true"
	case False:
		return "false"
	case Null:
		return "null"
	}
	return "invalid keyword"
}

// A Token is a single lexical token. Tokens are immutable values, and two
// tokens are equal under == exactly when they have the same kind and the
// same payload.
type Token struct {
	kind  Kind
	text  string      // String: decoded contents
	num   float64     // Number
	kw    KeywordKind // Keyword
	punct byte        // Punct
}

// StringToken returns a string token with the given decoded contents.
func StringToken(text string) Token { return Token{kind: String, text: text} }

// NumberToken returns a number token with value v.
func NumberToken(v float64) Token { return Token{kind: Number, num: v} }

// KeywordToken returns a keyword token for k.
func KeywordToken(k KeywordKind) Token { return Token{kind: Keyword, kw: k} }

// PunctToken returns a punctuator token for b.
// It panics if b is not one of { } [ ] : ,
func PunctToken(b byte) Token {
	if !IsPunct(b) {
		panic(fmt.Sprintf("invalid punctuator %q", b))
	}
	return Token{kind: Punct, punct: b}
}

// IsPunct reports whether b is a punctuator byte.
func IsPunct(b byte) bool { return strings.IndexByte("{}[]:,", b) >= 0 }

// Kind returns the classification of t.
func (t Token) Kind() Kind { return t.kind }

// Text returns the decoded contents of a string token, or "".
func (t Token) Text() string { return t.text }

// Float64 returns the value of a number token, or 0.
func (t Token) Float64() float64 { return t.num }

// Keyword returns the constant of a keyword token, or 0.
func (t Token) Keyword() KeywordKind { return t.kw }

// Punct returns the byte of a punctuator token, or 0.
func (t Token) Punct() byte { return t.punct }

// Is reports whether t is the punctuator b.
func (t Token) Is(b byte) bool { return t.kind == Punct && t.punct == b }

// Equal reports whether t and u are structurally equal.
func (t Token) Equal(u Token) bool { return t == u }

// String renders t as source text: strings are quoted, numbers are in their
// shortest form, and keywords and punctuators are written as-is.
func (t Token) String() string {
	switch t.kind {
	case String:
		return string(escape.Quote(mem.S(t.text)))
	case Number:
		return FormatNumber(t.num)
	case Keyword:
		return t.kw.String()
	case Punct:
		return string(t.punct)
	}
	return t.kind.String()
}

// FormatNumber renders v in the shortest form that scans back to v.
// Integral values below 1e21 are written without an exponent. Infinities are
// written as an out-of-range literal that scans back to the same infinity.
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "1e999"
	case math.IsInf(v, -1):
		return "-1e999"
	case v == math.Trunc(v) && math.Abs(v) < 1e21:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
