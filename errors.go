// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package jsondoc

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the Scanner, wrapped in a *LexError.
var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnexpectedSymbol   = errors.New("unexpected symbol")
	ErrNoMoreTokens       = errors.New("no more tokens")
)

// LexError is the concrete type of errors reported by the Scanner. It wraps
// either one of the sentinel errors of this package or a *SourceError from
// the underlying Source.
type LexError struct {
	Location Location
	Message  string

	err error
}

// Error satisfies the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Location, e.Message)
}

// Unwrap supports error wrapping.
func (e *LexError) Unwrap() error { return e.err }
