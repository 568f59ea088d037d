// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package query

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jsondoc/jsondoc/ast"
)

// Object yields an object whose members are the results of its queries on
// the input, stored in lexicographic order of their keys.
type Object map[string]Query

func (o Object) eval(v ast.Value) (ast.Value, error) {
	out := new(ast.Object)
	for _, key := range slices.Sorted(maps.Keys(o)) {
		r, err := o[key].eval(v)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", key, err)
		}
		out.Set(key, r)
	}
	return out, nil
}

// Array yields an array of the results of its queries on the input.
type Array []Query

func (a Array) eval(v ast.Value) (ast.Value, error) {
	out := make(ast.Array, len(a))
	for i, q := range a {
		r, err := q.eval(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// Value returns a query that ignores its input and yields v.
func Value(v ast.Value) Query { return constant{v} }

// String returns a query that ignores its input and yields s.
func String(s string) Query { return constant{ast.String(s)} }

// Number returns a query that ignores its input and yields f.
func Number(f float64) Query { return constant{ast.Number(f)} }

// Int returns a query that ignores its input and yields z as a number.
func Int(z int64) Query { return constant{ast.Number(z)} }

// Bool returns a query that ignores its input and yields b.
func Bool(b bool) Query { return constant{ast.Bool(b)} }

// Null returns a query that ignores its input and yields null.
func Null() Query { return constant{ast.Null} }

type constant struct{ v ast.Value }

func (c constant) eval(ast.Value) (ast.Value, error) { return c.v, nil }
