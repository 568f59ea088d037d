// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package main

import (
	"github.com/goccy/go-yaml"
	"github.com/jsondoc/jsondoc/ast"
)

// toYAML converts v to a form that the YAML encoder writes with the members
// of each object in their stored order. Integral numbers are written without
// a fraction.
func toYAML(v ast.Value) any {
	switch t := v.(type) {
	case ast.Bool:
		return bool(t)
	case ast.Number:
		if n, ok := t.Int(); ok {
			return n
		}
		return float64(t)
	case ast.String:
		return string(t)
	case ast.Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = toYAML(elt)
		}
		return out
	case *ast.Object:
		out := make(yaml.MapSlice, 0, t.Len())
		for key, val := range t.All() {
			out = append(out, yaml.MapItem{Key: key, Value: toYAML(val)})
		}
		return out
	}
	return nil
}
