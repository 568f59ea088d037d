// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

// Package jsondoc implements a lexical scanner for JSON text.
//
// # Sources
//
// A Source is a byte-oriented input with one byte of lookahead and random
// repositioning. Two implementations are provided: FileSource reads a file
// opened with OpenFile, and BufferSource reads an in-memory string or byte
// slice constructed with NewBuffer or NewBytes. Failures other than the end of
// input are reported as errors of concrete type *SourceError.
//
// # Scanning
//
// The Scanner type reads Token values from a Source. Tokens are scanned
// lazily, and Peek gives one token of lookahead without consuming it:
//
//	s := jsondoc.NewScanner(jsondoc.NewBuffer(`{"a": [1, true]}`))
//	for tok, err := range s.Tokens() {
//	   if err != nil {
//	      log.Fatalf("Scan failed: %v", err)
//	   }
//	   log.Printf("Token at %v: %v", s.Location(), tok)
//	}
//
// Lexical and source errors have concrete type *LexError and are sticky:
// once a scanner has failed, every subsequent request reports the same
// error. Running out of tokens is reported as ErrNoMoreTokens, and is not
// sticky.
//
// The scanner is lenient about numbers: a numeric lexeme is any run of
// digits, signs, decimal points and exponent markers, and its value is the
// longest prefix that forms a valid literal. A string may contain raw control
// bytes, and a backslash followed by any byte other than n, r, or t denotes
// that byte.
//
// # Locations
//
// Each token has a Location giving its byte offset along with a line and
// column for diagnostics. Lines are 1-based and columns 0-based. A tab between
// tokens advances the column by four and also starts a new line.
//
// Package ast builds a document tree from the tokens of a Scanner.
package jsondoc
