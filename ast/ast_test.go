// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package ast_test

import (
	"math"
	"strings"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
	"github.com/jsondoc/jsondoc/ast"
	"github.com/jsondoc/jsondoc/internal/testutil"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null, "null"},

		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a \t b"), `"a \t b"`},
		{ast.String(`say "hi"\`), `"say \"hi\"\\"`},

		{ast.Number(-0.00239), `-0.00239`},
		{ast.Number(0), `0`},
		{ast.Number(15), `15`},
		{ast.Number(-25), `-25`},
		{ast.Number(1e21), `1e+21`},
		{ast.Number(math.Inf(1)), `1e999`},

		{ast.Array{}, `[]`},
		{ast.Array{
			ast.Bool(false),
		}, `[false]`},
		{ast.Array{
			ast.Bool(true),
			ast.Number(199),
		}, `[true,199]`},
		{ast.Array{
			ast.String("free"),
			ast.String("your"),
			ast.String("mind"),
		}, `["free","your","mind"]`},

		{ast.ObjectOf(), `{}`},
		{ast.ObjectOf(
			ast.Field("xs", ast.Null),
		), `{"xs":null}`},
		{ast.ObjectOf(
			ast.Field("name", "Dennis"),
			ast.Field("age", 37),
			ast.Field("isOld", false),
		), `{"name":"Dennis","age":37,"isOld":false}`},

		{ast.ObjectOf(
			ast.Field("values", ast.Array{
				ast.Number(5),
				ast.Number(10),
				ast.Bool(true),
			}),
			ast.Field("page", ast.ObjectOf(
				ast.Field("token", "xyz-pdq-zvm"),
				ast.Field("count", 100),
			)),
		), `{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100}}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestKinds(t *testing.T) {
	tests := []struct {
		input   ast.Value
		kind    ast.Kind
		trivial bool
	}{
		{ast.Null, ast.NullKind, true},
		{ast.Bool(true), ast.BoolKind, true},
		{ast.Number(1), ast.NumberKind, true},
		{ast.String("x"), ast.StringKind, true},
		{ast.Array{}, ast.ArrayKind, false},
		{ast.ObjectOf(), ast.ObjectKind, false},
	}
	for _, tc := range tests {
		if got := tc.input.Kind(); got != tc.kind {
			t.Errorf("Kind(%s): got %v, want %v", tc.input.JSON(), got, tc.kind)
		}
		if got := ast.Trivial(tc.input); got != tc.trivial {
			t.Errorf("Trivial(%s): got %v, want %v", tc.input.JSON(), got, tc.trivial)
		}
		if got := ast.Compound(tc.input); got == tc.trivial {
			t.Errorf("Compound(%s): got %v, want %v", tc.input.JSON(), got, !tc.trivial)
		}
	}
}

func TestEqual(t *testing.T) {
	vals := []ast.Value{
		ast.Null,
		ast.Bool(true),
		ast.Bool(false),
		ast.Number(0),
		ast.Number(1),
		ast.String(""),
		ast.String("1"),
		ast.Array{},
		ast.Array{ast.Number(1)},
		ast.Array{ast.Number(1), ast.Number(2)},
		ast.Array{ast.Number(2), ast.Number(1)},
		ast.ObjectOf(),
		ast.ObjectOf(ast.Field("a", 1)),
		ast.ObjectOf(ast.Field("a", 2)),
		ast.ObjectOf(ast.Field("b", 1)),
		ast.ObjectOf(ast.Field("a", 1), ast.Field("b", ast.Array{ast.Null})),
	}
	for i, a := range vals {
		for j, b := range vals {
			want := i == j
			if got := ast.Equal(a, b); got != want {
				t.Errorf("Equal(%s, %s): got %v, want %v", a.JSON(), b.JSON(), got, want)
			}
			if ast.Equal(a, b) != ast.Equal(b, a) {
				t.Errorf("Equal(%s, %s) is not symmetric", a.JSON(), b.JSON())
			}
		}
	}

	t.Run("MemberOrder", func(t *testing.T) {
		a := ast.ObjectOf(ast.Field("x", 1), ast.Field("y", ast.Array{ast.Bool(true)}))
		b := ast.ObjectOf(ast.Field("y", ast.Array{ast.Bool(true)}), ast.Field("x", 1))
		if !ast.Equal(a, b) {
			t.Errorf("Equal(%s, %s): got false, want true", a.JSON(), b.JSON())
		}
	})
}

func TestClone(t *testing.T) {
	orig := ast.ObjectOf(
		ast.Field("list", ast.Array{ast.Number(1), ast.ObjectOf(ast.Field("b", "x"))}),
		ast.Field("name", "orig"),
	)
	want := ast.Clone(orig) // an independent snapshot for comparison

	cp := ast.Clone(orig).(*ast.Object)
	if diff := cmp.Diff(orig, cp, testutil.ValueCmp); diff != "" {
		t.Fatalf("Clone differs (-orig, +clone):\n%s", diff)
	}

	// Mutate the clone at every level and check the original is unaffected.
	cp.Set("name", ast.String("changed"))
	list := cp.Find("list").Value.(ast.Array)
	list[0] = ast.Null
	list[1].(*ast.Object).Set("b", ast.String("y"))
	cp.Set("extra", ast.Bool(true))

	if diff := cmp.Diff(want, orig, testutil.ValueCmp); diff != "" {
		t.Errorf("Original changed (-want, +got):\n%s", diff)
	}
	if ast.Equal(orig, cp) {
		t.Error("Original and modified clone compare equal")
	}
}

func TestObject(t *testing.T) {
	obj := ast.ObjectOf(
		ast.Field("a", 1),
		ast.Field("b", 2),
		ast.Field("a", 3), // replaces "a" in place
	)
	if diff := cmp.Diff([]string{"a", "b"}, obj.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if v, ok := obj.Get("a"); !ok || !ast.Equal(v, ast.Number(3)) {
		t.Errorf(`Get("a"): got %v, %v; want 3, true`, v, ok)
	}

	obj.Set("c", nil)
	if v, ok := obj.Get("c"); !ok || v != ast.Null {
		t.Errorf(`Get("c"): got %v, %v; want null, true`, v, ok)
	}
	if !obj.Delete("b") {
		t.Error(`Delete("b"): got false, want true`)
	}
	if obj.Delete("b") {
		t.Error(`Delete("b") again: got true, want false`)
	}
	if m := obj.Find("b"); m != nil {
		t.Errorf(`Find("b"): got %v, want nil`, m)
	}

	var keys []string
	for key, val := range obj.All() {
		keys = append(keys, key+"="+val.JSON())
	}
	if diff := cmp.Diff([]string{"a=3", "c=null"}, keys); diff != "" {
		t.Errorf("All (-want, +got):\n%s", diff)
	}
	if got := obj.Len(); got != 2 {
		t.Errorf("Len: got %d, want 2", got)
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{nil, "null"},
		{true, "true"},
		{"s", `"s"`},
		{-12, "-12"},
		{uint8(7), "7"},
		{float32(0.5), "0.5"},
		{[]any{1, "two", nil}, `[1,"two",null]`},
		{[]ast.Value{ast.Bool(false)}, `[false]`},
		{map[string]any{"z": 1, "a": []any{}}, `{"a":[],"z":1}`},
		{ast.Field("k", "v"), `{"k":"v"}`},
		{ast.Number(2.5), "2.5"},
	}
	for _, tc := range tests {
		if got := ast.ToValue(tc.input).JSON(); got != tc.want {
			t.Errorf("ToValue(%#v): got %s, want %s", tc.input, got, tc.want)
		}
	}

	mtest.MustPanic(t, func() { ast.ToValue(struct{}{}) })
	mtest.MustPanic(t, func() { ast.ToValue([]any{1, complex(1, 2)}) })
}

func TestNumberInt(t *testing.T) {
	tests := []struct {
		input ast.Number
		want  int
		ok    bool
	}{
		{0, 0, true},
		{-3, -3, true},
		{1e6, 1000000, true},
		{1.5, 0, false},
		{ast.Number(math.NaN()), 0, false},
		{ast.Number(math.Inf(-1)), 0, false},
	}
	for _, tc := range tests {
		got, ok := tc.input.Int()
		if got != tc.want || ok != tc.ok {
			t.Errorf("Int(%v): got %v, %v; want %v, %v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNilObject(t *testing.T) {
	var nilObj *ast.Object
	empty := new(ast.Object)

	if !ast.Equal(nilObj, empty) || !ast.Equal(empty, nilObj) {
		t.Error("Equal: a nil object should equal an empty object")
	}
	if ast.Equal(nilObj, ast.ObjectOf(ast.Field("a", 1))) {
		t.Error("Equal: a nil object should not equal a non-empty object")
	}
	if got := nilObj.Len(); got != 0 {
		t.Errorf("Len: got %d, want 0", got)
	}
	if got := nilObj.JSON(); got != "{}" {
		t.Errorf("JSON: got %q, want {}", got)
	}
	if _, ok := nilObj.Get("a"); ok {
		t.Error("Get: got a member from a nil object")
	}
	if nilObj.Delete("a") {
		t.Error("Delete: reported a member of a nil object")
	}
	if got := ast.Clone(nilObj); !ast.Equal(got, empty) || got.(*ast.Object) == nil {
		t.Errorf("Clone: got %v, want a non-nil empty object", got)
	}

	var sb strings.Builder
	if err := ast.Format(&sb, ast.Array{nilObj}); err != nil {
		t.Fatalf("Format: unexpected error: %v", err)
	}
	var want strings.Builder
	ast.Format(&want, ast.Array{empty})
	if got := sb.String(); got != want.String() {
		t.Errorf("Format: got %q, want %q", got, want.String())
	}
	if got := ast.SearchKey(ast.Array{nilObj}, "a"); len(got) != 0 {
		t.Errorf("SearchKey: got %v, want no matches", got)
	}
	mtest.MustPanic(t, func() { nilObj.Set("a", ast.Null) })
}
