// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package query

import "github.com/jsondoc/jsondoc/ast"

// Exists returns a Selection for values on which Path(keys...) succeeds.
func Exists(keys ...any) Selection {
	q := Path(keys...)
	return func(v ast.Value) bool { _, err := q.eval(v); return err == nil }
}

// Is returns a Selection for values of concrete type T.
func Is[T ast.Value]() Selection {
	return func(v ast.Value) bool { _, ok := v.(T); return ok }
}

// IsNot returns a Selection for values not of concrete type T.
func IsNot[T ast.Value]() Selection {
	return func(v ast.Value) bool { _, ok := v.(T); return !ok }
}

// Filter returns a Selection for values of type T that satisfy f.
func Filter[T ast.Value](f func(T) bool) Selection {
	return func(v ast.Value) bool {
		t, ok := v.(T)
		return ok && f(t)
	}
}

// Map returns a Mapping that applies f to values of type T, and passes other
// values through unchanged.
func Map[T, U ast.Value](f func(T) U) Mapping {
	return func(v ast.Value) ast.Value {
		if t, ok := v.(T); ok {
			return f(t)
		}
		return v
	}
}

// HasKey returns a Selection for values that contain, at any depth, an object
// with a member named key.
func HasKey(key string) Selection {
	return func(v ast.Value) bool { return ast.Contains(v, key) }
}
