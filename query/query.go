// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

// Package query composes structural queries over JSON value trees.
//
// A Query is evaluated against a root value and yields a single value or an
// error. The basic query follows a path of object keys and array offsets
// from the root, in the manner of ast.Follow; other queries select, project,
// and construct values from the results of their arguments. Given
//
//	{"shelf": [{"title": "Dune", "year": 1965}, {"title": "Emma"}]}
//
// the query
//
//	query.Path("shelf", -1, "title")
//
// yields the string "Emma", and
//
//	query.Path("shelf", query.Each("title"))
//
// yields the array ["Dune", "Emma"].
package query

import (
	"errors"
	"fmt"

	"github.com/jsondoc/jsondoc/ast"
)

// A Query describes a traversal of a JSON value.
type Query interface {
	eval(ast.Value) (ast.Value, error)
}

// Eval evaluates q against root, and returns the resulting value.
func Eval(root ast.Value, q Query) (ast.Value, error) { return q.eval(root) }

// EvalDocument evaluates q against the root of d. It reports
// ast.ErrEmptyDocument if d has no root.
func EvalDocument(d *ast.Document, q Query) (ast.Value, error) {
	root, ok := d.Root()
	if !ok {
		return nil, ast.ErrEmptyDocument
	}
	return q.eval(root)
}

// Path constructs a query that applies each of keys in sequence, starting from
// the root. With no keys, the query yields its input unchanged.
//
// A string key selects an object member by name. An int key selects an array
// element by offset, where a negative offset counts back from the end of the
// array. An ast.Path contributes each of its elements as a key. A Query key
// is applied to the value reached so far. Path panics for any other key.
func Path(keys ...any) Query {
	var seq Seq
	var run steps
	flush := func() {
		if len(run) != 0 {
			seq = append(seq, run)
			run = nil
		}
	}
	for _, key := range keys {
		switch t := key.(type) {
		case string:
			run = append(run, ast.String(t))
		case int:
			run = append(run, ast.Number(t))
		case ast.Path:
			run = append(run, t...)
		case Seq:
			flush()
			seq = append(seq, t...)
		case Query:
			flush()
			seq = append(seq, t)
		default:
			panic(fmt.Sprintf("invalid path key %T", key))
		}
	}
	flush()
	if len(seq) == 1 {
		return seq[0]
	}
	return seq
}

// At returns a query that follows p from its input. Unlike ast.Follow, a
// negative array index in p counts back from the end of the array.
func At(p ast.Path) Query { return steps(p) }

// Parse parses a path expression in the syntax of ast.ParsePath, and returns
// a query that follows it.
func Parse(expr string) (Query, error) {
	p, err := ast.ParsePath(expr)
	if err != nil {
		return nil, err
	}
	return steps(p), nil
}

// steps is a run of path keys resolved one at a time.
type steps ast.Path

func (s steps) eval(v ast.Value) (ast.Value, error) {
	cur := v
	for _, key := range s {
		if n, ok := key.(ast.Number); ok && n < 0 {
			if arr, ok := cur.(ast.Array); ok {
				key = n + ast.Number(len(arr))
			}
		}
		next, err := ast.Follow(cur, ast.Path{key})
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Seq applies each of its queries to the result of the one before. The first
// query is applied to the input; an empty Seq yields its input unchanged.
type Seq []Query

func (s Seq) eval(v ast.Value) (ast.Value, error) {
	for _, q := range s {
		next, err := q.eval(v)
		if err != nil {
			return nil, err
		}
		v = next
	}
	return v, nil
}

// Alt yields the result of the first of its queries that succeeds on the
// input. An empty Alt fails for every input.
type Alt []Query

func (a Alt) eval(v ast.Value) (ast.Value, error) {
	for _, q := range a {
		if out, err := q.eval(v); err == nil {
			return out, nil
		}
	}
	return nil, errors.New("no alternative matched")
}
