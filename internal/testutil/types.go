// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsondoc/jsondoc/ast"
)

// ValueCmp is a cmp option that compares values with ast.Equal.
var ValueCmp = cmp.Comparer(ast.Equal)

// MustParse parses text as a non-empty document and returns its root value.
// Any error, or an empty document, fails the test.
func MustParse(t testing.TB, text string) ast.Value {
	t.Helper()
	doc, err := ast.ParseText(text)
	if err != nil {
		t.Fatalf("Parse %q: unexpected error: %v", text, err)
	}
	v, ok := doc.Root()
	if !ok {
		t.Fatalf("Parse %q: empty document", text)
	}
	return v
}
