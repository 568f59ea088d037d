// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package query

import (
	"fmt"

	"github.com/jsondoc/jsondoc/ast"
)

func wantArray(v ast.Value) (ast.Array, error) {
	if arr, ok := v.(ast.Array); ok {
		return arr, nil
	}
	return nil, fmt.Errorf("want array, got %s", v.Kind())
}

// offset maps i to an index in an array of length n, where a negative i counts
// back from n.
func offset(i, n int) (int, error) {
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, fmt.Errorf("offset %d out of range (n=%d)", i, n)
	}
	return j, nil
}

// Each returns a query that applies Path(keys...) to every element of an
// array, and yields an array of the results. It fails if its input is not an
// array, or if the path fails for any element.
func Each(keys ...any) Query { return each{Path(keys...)} }

type each struct{ q Query }

func (e each) eval(v ast.Value) (ast.Value, error) {
	arr, err := wantArray(v)
	if err != nil {
		return nil, err
	}
	out := make(ast.Array, len(arr))
	for i, elt := range arr {
		r, err := e.q.eval(elt)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// A Selection yields the elements of its input array for which it reports
// true, in their original order.
type Selection func(ast.Value) bool

func (s Selection) eval(v ast.Value) (ast.Value, error) {
	arr, err := wantArray(v)
	if err != nil {
		return nil, err
	}
	out := ast.Array{}
	for _, elt := range arr {
		if s(elt) {
			out = append(out, elt)
		}
	}
	return out, nil
}

// A Mapping yields an array with each element of its input array replaced by
// the result of the function.
type Mapping func(ast.Value) ast.Value

func (m Mapping) eval(v ast.Value) (ast.Value, error) {
	arr, err := wantArray(v)
	if err != nil {
		return nil, err
	}
	out := make(ast.Array, len(arr))
	for i, elt := range arr {
		out[i] = m(elt)
	}
	return out, nil
}

// Slice returns a query that yields the elements of an array from offset lo
// up to but not including offset hi. Negative offsets count back from the end
// of the array, and hi == 0 denotes the end.
func Slice(lo, hi int) Query { return span{lo, hi} }

type span struct{ lo, hi int }

func (s span) eval(v ast.Value) (ast.Value, error) {
	arr, err := wantArray(v)
	if err != nil {
		return nil, err
	}
	lo, err := offset(s.lo, len(arr))
	if err != nil {
		return nil, err
	}
	hi := s.hi
	if hi <= 0 {
		hi += len(arr)
	}
	if hi < lo || hi > len(arr) {
		return nil, fmt.Errorf("invalid range [%d:%d] (n=%d)", s.lo, s.hi, len(arr))
	}
	return arr[lo:hi], nil
}

// Pick returns a query that yields an array of the elements of its input at
// the given offsets, in the order given. Negative offsets count back from the
// end of the array.
func Pick(offsets ...int) Query { return pick(offsets) }

type pick []int

func (p pick) eval(v ast.Value) (ast.Value, error) {
	arr, err := wantArray(v)
	if err != nil {
		return nil, err
	}
	out := make(ast.Array, len(p))
	for i, off := range p {
		j, err := offset(off, len(arr))
		if err != nil {
			return nil, err
		}
		out[i] = arr[j]
	}
	return out, nil
}

// Glob returns a query that yields the member values of an object or the
// elements of an array, as an array. It fails for trivial values.
func Glob() Query { return glob{} }

type glob struct{}

func (glob) eval(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case ast.Array:
		return t, nil
	case *ast.Object:
		out := make(ast.Array, 0, t.Len())
		for _, val := range t.All() {
			out = append(out, val)
		}
		return out, nil
	}
	return nil, fmt.Errorf("cannot glob %s", v.Kind())
}

// Len returns a query that yields the length of its input as a number: the
// member count of an object, the element count of an array, the byte length
// of a string, or zero for null. It fails for numbers and Booleans.
func Len() Query { return length{} }

type length struct{}

func (length) eval(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case ast.Array:
		return ast.Number(len(t)), nil
	case *ast.Object:
		return ast.Number(t.Len()), nil
	case ast.String:
		return ast.Number(len(t)), nil
	case ast.NullValue:
		return ast.Number(0), nil
	}
	return nil, fmt.Errorf("%s has no length", v.Kind())
}
