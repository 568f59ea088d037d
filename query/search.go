// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package query

import (
	"errors"

	"github.com/jsondoc/jsondoc/ast"
)

// Search yields the values of all object members anywhere in its input for
// which it reports true, in the order of ast.Search. It fails if nothing
// matches.
type Search func(key string, value ast.Value) bool

func (s Search) eval(v ast.Value) (ast.Value, error) {
	if out := ast.Search(v, s); len(out) != 0 {
		return out, nil
	}
	return nil, errors.New("no members matched")
}

// Key returns a Search for members named key.
func Key(key string) Search {
	return func(k string, _ ast.Value) bool { return k == key }
}

// Recur returns a query that applies Path(keys...) to its input and to every
// value nested inside it, in document order, and yields an array of the
// results that succeed. It fails if the path succeeds nowhere.
func Recur(keys ...any) Query { return recur{Path(keys...)} }

type recur struct{ q Query }

func (r recur) eval(v ast.Value) (ast.Value, error) {
	var out ast.Array
	var visit func(ast.Value)
	visit = func(v ast.Value) {
		if res, err := r.q.eval(v); err == nil {
			out = append(out, res)
		}
		switch t := v.(type) {
		case ast.Array:
			for _, elt := range t {
				visit(elt)
			}
		case *ast.Object:
			for _, val := range t.All() {
				visit(val)
			}
		}
	}
	visit(v)
	if len(out) == 0 {
		return nil, errors.New("no values matched")
	}
	return out, nil
}
