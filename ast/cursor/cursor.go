// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

// Package cursor implements stateful navigation over a JSON value tree.
package cursor

import (
	"fmt"

	"github.com/jsondoc/jsondoc/ast"
)

// Path moves a new cursor from v along path, as Cursor.Down does, and returns
// the value reached as a T.
func Path[T ast.Value](v ast.Value, path ...any) (T, error) {
	var zero T
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return zero, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return zero, fmt.Errorf("value at %s is %s, not %T", c.describe(), c.Value().Kind(), zero)
	}
	return out, nil
}

// A frame is one step of a cursor below its origin. The key is the path
// element that reached value, or nil if a function reached it.
type frame struct {
	key   ast.Value
	value ast.Value
}

// A Cursor is a position in a value tree, reached from an origin value by a
// sequence of steps. The zero value is not ready for use; call New.
type Cursor struct {
	origin ast.Value
	frames []frame
	err    error
}

// New constructs a Cursor positioned at origin.
func New(origin ast.Value) *Cursor { return &Cursor{origin: origin} }

// Origin returns the value c was created with.
func (c *Cursor) Origin() ast.Value { return c.origin }

// AtOrigin reports whether c is positioned at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.frames) == 0 }

// Value returns the value at the position of c.
func (c *Cursor) Value() ast.Value {
	if n := len(c.frames); n > 0 {
		return c.frames[n-1].value
	}
	return c.origin
}

// Values returns the values from the origin down to the position of c.
func (c *Cursor) Values() []ast.Value {
	out := make([]ast.Value, 1, len(c.frames)+1)
	out[0] = c.origin
	for _, f := range c.frames {
		out = append(out, f.value)
	}
	return out
}

// Location returns the path from the origin to the position of c, with array
// offsets normalized and object offsets replaced by keys. It reports false if
// some step was taken by a function, which has no path element.
func (c *Cursor) Location() (ast.Path, bool) {
	p := make(ast.Path, len(c.frames))
	for i, f := range c.frames {
		if f.key == nil {
			return nil, false
		}
		p[i] = f.key
	}
	return p, true
}

// Err returns the error recorded by the latest call to Down, or nil.
func (c *Cursor) Err() error { return c.err }

// Up moves c to the parent of its position. At the origin it has no effect.
// It returns c.
func (c *Cursor) Up() *Cursor {
	if n := len(c.frames); n > 0 {
		c.frames = c.frames[:n-1]
	}
	return c
}

// Reset moves c to its origin and clears its error.
func (c *Cursor) Reset() {
	c.frames = c.frames[:0]
	c.err = nil
}

// Down moves c along path from its current position and returns c. If some
// element does not apply, c stops at the last value reached and records an
// error, which Err reports. Elements are handled as follows:
//
// A string selects the member of an object with that key.
//
// An int selects the element of an array, or the member of an object, at that
// offset. A negative offset counts back from the end.
//
// An ast.Path is followed element by element, with integral numbers treated
// like ints.
//
// A func(ast.Value) (ast.Value, error) is called with the current value, and
// its result becomes the next value.
//
// A nil element is skipped.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	for _, elt := range path {
		var err error
		switch t := elt.(type) {
		case nil:
		case string:
			err = c.follow(ast.String(t))
		case int:
			err = c.follow(ast.Number(t))
		case ast.Path:
			for _, key := range t {
				if err = c.follow(key); err != nil {
					break
				}
			}
		case func(ast.Value) (ast.Value, error):
			var next ast.Value
			if next, err = t(c.Value()); err == nil {
				c.frames = append(c.frames, frame{value: next})
			}
		default:
			err = fmt.Errorf("invalid path element %T", elt)
		}
		if err != nil {
			c.err = err
			break
		}
	}
	return c
}

// follow takes one keyed step from the current value.
func (c *Cursor) follow(key ast.Value) error {
	cur := c.Value()
	if n, ok := key.(ast.Number); ok {
		switch t := cur.(type) {
		case ast.Array:
			if n < 0 {
				key = n + ast.Number(len(t))
			}
		case *ast.Object:
			i, ok := n.Int()
			if ok && i < 0 {
				i += t.Len()
			}
			if !ok || i < 0 || i >= t.Len() {
				return fmt.Errorf("at %s: object offset %s out of range (n=%d)", c.describe(), n, t.Len())
			}
			key = ast.String(t.At(i).Key)
		}
	}
	next, err := ast.Follow(cur, ast.Path{key})
	if err != nil {
		return fmt.Errorf("at %s: %w", c.describe(), err)
	}
	c.frames = append(c.frames, frame{key: key, value: next})
	return nil
}

func (c *Cursor) describe() string {
	if p, ok := c.Location(); ok {
		return p.String()
	}
	return fmt.Sprintf("depth %d", len(c.frames))
}
