// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/jsondoc/jsondoc/ast"
	"github.com/scott-cotton/cli"
)

// compileWhere compiles a boolean expression over the variables key and value
// into a search predicate. The value of a member is presented as plain Go
// data (see plain). A member for which evaluation fails does not match.
func compileWhere(code string) (func(string, ast.Value) bool, error) {
	prg, err := expr.Compile(code, expr.Env(whereEnv("", nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid expression: %w", cli.ErrUsage, err)
	}
	return func(key string, v ast.Value) bool {
		res, err := expr.Run(prg, whereEnv(key, v))
		if err != nil {
			return false
		}
		ok, _ := res.(bool)
		return ok
	}, nil
}

func whereEnv(key string, v ast.Value) map[string]any {
	return map[string]any{"key": key, "value": plain(v)}
}

// plain converts v to the Go values an expression operates on: nil, bool,
// float64, string, []any, and map[string]any.
func plain(v ast.Value) any {
	switch t := v.(type) {
	case ast.Bool:
		return bool(t)
	case ast.Number:
		return float64(t)
	case ast.String:
		return string(t)
	case ast.Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = plain(elt)
		}
		return out
	case *ast.Object:
		out := make(map[string]any, t.Len())
		for key, val := range t.All() {
			out[key] = plain(val)
		}
		return out
	}
	return nil
}
