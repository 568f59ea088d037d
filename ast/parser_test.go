// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package ast_test

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsondoc/jsondoc"
	"github.com/jsondoc/jsondoc/ast"
	"github.com/jsondoc/jsondoc/internal/testutil"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Value
	}{
		{`null`, ast.Null},
		{`  true `, ast.Bool(true)},
		{`false`, ast.Bool(false)},
		{`-17.25`, ast.Number(-17.25)},
		{`"a\"b\\c\nd"`, ast.String("a\"b\\c\nd")},
		{`[]`, ast.Array{}},
		{`{}`, ast.ObjectOf()},
		{`[1, [2, [3]], {"k": []}]`, ast.Array{
			ast.Number(1),
			ast.Array{ast.Number(2), ast.Array{ast.Number(3)}},
			ast.ObjectOf(ast.Field("k", ast.Array{})),
		}},
		{`{"a": 1, "b": {"c": null}}`, ast.ObjectOf(
			ast.Field("a", 1),
			ast.Field("b", ast.ObjectOf(ast.Field("c", nil))),
		)},

		// A repeated key replaces the earlier value.
		{`{"a": 1, "a": 2}`, ast.ObjectOf(ast.Field("a", 2))},

		// Numbers are converted from their longest valid prefix.
		{`[1.2.3, 1e, --5, 3-4, 1e999, -1e999]`, ast.Array{
			ast.Number(1.2), ast.Number(1), ast.Number(0), ast.Number(3),
			ast.Number(math.Inf(1)), ast.Number(math.Inf(-1)),
		}},

		// Keywords and numbers need not be separated.
		{`[true1]`, ast.Array{ast.Bool(true), ast.Number(1)}},
	}
	for _, tc := range tests {
		doc, err := ast.ParseText(tc.input)
		if err != nil {
			t.Errorf("Parse %q: unexpected error: %v", tc.input, err)
			continue
		}
		root, ok := doc.Root()
		if !ok {
			t.Errorf("Parse %q: empty document", tc.input)
			continue
		}
		if diff := cmp.Diff(tc.want, root, testutil.ValueCmp); diff != "" {
			t.Errorf("Parse %q (-want, +got):\n%s", tc.input, diff)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", " ", "\n\t\r\n"} {
		doc, err := ast.ParseText(input)
		if err != nil {
			t.Errorf("Parse %q: unexpected error: %v", input, err)
		} else if !doc.IsEmpty() {
			t.Errorf("Parse %q: got %v, want empty document", input, doc)
		}
	}

	doc, err := ast.ParseFile("../testdata/empty.json")
	if err != nil {
		t.Fatalf("ParseFile: unexpected error: %v", err)
	} else if !doc.IsEmpty() {
		t.Errorf("ParseFile: got %v, want empty document", doc)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input  string
		want   error
		offset int64
	}{
		{`{"a": 1,}`, ast.ErrUnexpectedPunctuator, 8},
		{`{"a": }`, ast.ErrUnexpectedPunctuator, 6},
		{`:`, ast.ErrUnexpectedPunctuator, 0},
		{`[1 2]`, ast.ErrExpectedCommaOrBracket, 3},
		{`{"a" 1}`, ast.ErrExpectedColon, 5},
		{`{"a": 1 "b": 2}`, ast.ErrExpectedCommaOrBrace, 8},
		{`{1: 2}`, ast.ErrExpectedStringKey, 1},
		{`{"a": 1, [2]: 3}`, ast.ErrExpectedStringKey, 9},
		{`[1,`, ast.ErrUnexpectedEnd, 3},
		{`{"a"`, ast.ErrUnexpectedEnd, 4},
		{`[`, ast.ErrUnexpectedEnd, 1},
		{`1 2`, ast.ErrTrailingInput, 2},
		{`{} []`, ast.ErrTrailingInput, 3},

		// Lexical errors.
		{`[1, nul]`, jsondoc.ErrUnexpectedSymbol, 4},
		{`[True]`, jsondoc.ErrUnexpectedSymbol, 1},
		{`@`, jsondoc.ErrUnexpectedSymbol, 0},
		{`"abc`, jsondoc.ErrUnterminatedString, 4},
		{`1 x`, jsondoc.ErrUnexpectedSymbol, 2},
	}
	for _, tc := range tests {
		doc, err := ast.ParseText(tc.input)
		if err == nil {
			t.Errorf("Parse %q: got %v, want error", tc.input, doc)
			continue
		} else if doc != nil {
			t.Errorf("Parse %q: got document %v with error", tc.input, doc)
		}
		var pe *ast.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse %q: got %T, want *ParseError", tc.input, err)
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Errorf("Parse %q: got %v, want %v", tc.input, err, tc.want)
		}
		if pe.Location.Offset != tc.offset {
			t.Errorf("Parse %q: error at %v, want offset %d", tc.input, pe.Location, tc.offset)
		}
	}
}

func TestParseErrorLocation(t *testing.T) {
	_, err := ast.ParseText("[\n  1,\n  ]")
	var pe *ast.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse: got %v, want *ParseError", err)
	}
	want := jsondoc.Location{Line: 3, Column: 2, Offset: 9}
	if diff := cmp.Diff(want, pe.Location); diff != "" {
		t.Errorf("Location (-want, +got):\n%s", diff)
	}
	if got, want := pe.Error(), "at 3:2 (offset 9): "; !strings.HasPrefix(got, want) {
		t.Errorf("Error: got %q, want prefix %q", got, want)
	}
}

func TestParseLexError(t *testing.T) {
	_, err := ast.ParseText("[1, \"ok\", nope]")
	var le *jsondoc.LexError
	if !errors.As(err, &le) {
		t.Fatalf("Parse: got %v, want a wrapped *LexError", err)
	}
	var pe *ast.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse: got %T, want *ParseError", err)
	}
	if pe.Message != le.Message || pe.Location != le.Location {
		t.Errorf("ParseError %v does not match LexError %v", pe, le)
	}
}

func TestParseTrailing(t *testing.T) {
	p := ast.NewParser(jsondoc.NewBuffer(`{"a": 1} garbage @@`))
	p.AllowTrailingInput(true)
	doc, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	root, _ := doc.Root()
	if diff := cmp.Diff(ast.ObjectOf(ast.Field("a", 1)), root, testutil.ValueCmp); diff != "" {
		t.Errorf("Root (-want, +got):\n%s", diff)
	}
}

func TestParseDepth(t *testing.T) {
	nest := func(n int) string { return strings.Repeat("[", n) + strings.Repeat("]", n) }

	if _, err := ast.ParseText(nest(ast.DefaultMaxDepth)); err != nil {
		t.Errorf("Parse depth %d: unexpected error: %v", ast.DefaultMaxDepth, err)
	}
	if _, err := ast.ParseText(nest(ast.DefaultMaxDepth + 1)); !errors.Is(err, ast.ErrTooDeep) {
		t.Errorf("Parse depth %d: got %v, want ErrTooDeep", ast.DefaultMaxDepth+1, err)
	}

	p := ast.NewParser(jsondoc.NewBuffer(`{"a": [{"b": 1}]}`))
	p.MaxDepth(2)
	_, err := p.Parse()
	var pe *ast.ParseError
	if !errors.As(err, &pe) || !errors.Is(err, ast.ErrTooDeep) {
		t.Fatalf("Parse: got %v, want ErrTooDeep", err)
	}
	if pe.Location.Offset != 7 {
		t.Errorf("Parse: error at %v, want offset 7", pe.Location)
	}
}

func TestParseFile(t *testing.T) {
	t.Run("Fixtures", func(t *testing.T) {
		for _, name := range []string{"simple.json", "nested.json", "organisation.json"} {
			doc := mustParseFile(t, filepath.Join("../testdata", name))
			root, _ := doc.Root()
			if root.Kind() != ast.ObjectKind {
				t.Errorf("ParseFile %q: got %v, want object", name, root.Kind())
			}
		}
		doc := mustParseFile(t, "../testdata/string-only.json")
		if root, _ := doc.Root(); root != ast.String("blah-blah-blah") {
			t.Errorf("ParseFile: got %v, want string", root)
		}
	})

	t.Run("Unclosed", func(t *testing.T) {
		_, err := ast.ParseFile("../testdata/bad_unclosed_string.json")
		if !errors.Is(err, jsondoc.ErrUnterminatedString) {
			t.Errorf("ParseFile: got %v, want ErrUnterminatedString", err)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		doc, err := ast.ParseFile(filepath.Join(t.TempDir(), "nonesuch.json"))
		var pe *ast.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("ParseFile: got (%v, %v), want *ParseError", doc, err)
		}
		if !errors.Is(err, jsondoc.ErrSourceUnavailable) {
			t.Errorf("ParseFile: got %v, want ErrSourceUnavailable", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ParseFile: got %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("Written", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		doc := mustParseFile(t, orgPath)
		if err := os.WriteFile(path, []byte(doc.String()), 0600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		back := mustParseFile(t, path)
		if !doc.Equal(back) {
			t.Errorf("Reparsed file differs:\n%s", back)
		}
	})
}

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		``, `null`, `[1, 2.5e3, "x"]`, `{"a": {"b": [true, false]}}`,
		`{"a": 1,}`, `[1.2.3`, `"\q"`, "\t[\r\n]",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		doc, err := ast.ParseText(input)
		if err != nil {
			var pe *ast.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse %q: got %T, want *ParseError", input, err)
			}
			return
		}
		text := doc.String()
		back, err := ast.ParseText(text)
		if err != nil {
			t.Fatalf("Parse formatted %q: unexpected error: %v", text, err)
		}
		if again := back.String(); again != text {
			t.Fatalf("Formatting is not stable:\n%s\n%s", text, again)
		}
	})
}
