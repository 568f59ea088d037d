// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// ErrEmptyDocument is reported by Document methods that require a root value
// when the document is empty.
var ErrEmptyDocument = errors.New("document is empty")

// A Document holds at most one root value. An empty document, which has no
// root at all, is distinct from a document whose root is null.
//
// A Document owns its tree: every array and object in it has exactly one
// parent. Methods that store a value store a copy of it, so a value may be
// stored in several places, or inside itself, without sharing.
//
// A Document is not safe for concurrent use by multiple goroutines if any of
// them modifies it.
type Document struct {
	root Value // nil if empty
}

// NewDocument constructs a document with a copy of root. If root == nil, the
// document is empty.
func NewDocument(root Value) *Document {
	if root == nil {
		return new(Document)
	}
	return &Document{root: Clone(root)}
}

// Root returns the root value of d, and reports whether d is non-empty.
func (d *Document) Root() (Value, bool) { return d.root, d.root != nil }

// IsEmpty reports whether d has no root value.
func (d *Document) IsEmpty() bool { return d.root == nil }

// Dump writes the root of d to w in the format of Format. An empty document
// writes nothing.
func (d *Document) Dump(w io.Writer) error {
	if d.root == nil {
		return nil
	}
	return Format(w, d.root)
}

// String returns the text written by Dump.
func (d *Document) String() string {
	var sb strings.Builder
	d.Dump(&sb)
	return sb.String()
}

// Follow returns the value designated by path. An empty path designates the
// root. It reports a *PathError if the path does not resolve, or if d is
// empty.
func (d *Document) Follow(path Path) (Value, error) {
	if d.root == nil {
		return nil, d.emptyError(path)
	}
	return Follow(d.root, path)
}

// Set replaces the value designated by path with v. The path must designate
// an existing value, except that the empty path designates the root even when
// d is empty. Use Insert or Append to add new values. The document stores a
// copy of v.
func (d *Document) Set(path Path, v Value) error {
	v = Clone(v)
	if len(path) == 0 {
		d.root = v
		return nil
	}
	return d.update(path, func(Value) (Value, error) { return v, nil })
}

// Append adds a copy of v to the end of the array designated by path.
func (d *Document) Append(path Path, v Value) error {
	v = Clone(v)
	return d.update(path, func(cur Value) (Value, error) {
		arr, ok := cur.(Array)
		if !ok {
			return nil, fmt.Errorf("cannot append to %s", cur.Kind())
		}
		return append(arr, v), nil
	})
}

// Insert sets the member with the given key in the object designated by path.
// If the object already has a member with that key, its value is replaced.
// The document stores a copy of v.
func (d *Document) Insert(path Path, key string, v Value) error {
	v = Clone(v)
	return d.update(path, func(cur Value) (Value, error) {
		obj, ok := cur.(*Object)
		if !ok {
			return nil, fmt.Errorf("cannot insert into %s", cur.Kind())
		}
		obj.Set(key, v)
		return obj, nil
	})
}

// Delete removes the value designated by path from its containing object or
// array. Deleting the empty path leaves d empty.
func (d *Document) Delete(path Path) error {
	if len(path) == 0 {
		d.root = nil
		return nil
	}
	last := path[len(path)-1]
	err := d.update(path[:len(path)-1], func(cur Value) (Value, error) {
		switch t := cur.(type) {
		case *Object:
			k, ok := last.(String)
			if !ok || !t.Delete(string(k)) {
				_, err := step(cur, last)
				return nil, err
			}
			return t, nil
		case Array:
			i, err := arrayIndex(last, len(t))
			if err != nil {
				return nil, err
			}
			return slices.Delete(t, i, i+1), nil
		default:
			_, err := step(cur, last)
			return nil, err
		}
	})
	if pe, ok := err.(*PathError); ok {
		pe.Path = path
	}
	return err
}

// Move removes the value designated by src and stores it at dst. The location
// dst is resolved after src has been removed: all but the last element of dst
// must designate an existing object or array. If it is an object, the value is
// stored under the last element of dst as a key; if it is an array, the value
// is inserted at the last element of dst as an index, which may equal the
// length of the array to add it at the end.
//
// Moving a value into itself is an error. If Move fails, d is not modified.
func (d *Document) Move(dst, src Path) error {
	if d.root == nil {
		return d.emptyError(src)
	} else if len(src) == 0 {
		return &PathError{Path: src, Message: "cannot move the root"}
	} else if len(dst) == 0 {
		return &PathError{Path: dst, Message: "cannot move to the root"}
	} else if isPrefix(src, dst) {
		return &PathError{Path: dst, Step: len(src), Message: fmt.Sprintf("cannot move %s into itself", src)}
	}

	// Operate on a copy, so that a failure leaves d unchanged.
	tmp := d.Clone()
	v, err := tmp.Follow(src)
	if err != nil {
		return err
	}
	if err := tmp.Delete(src); err != nil {
		return err
	}
	last := dst[len(dst)-1]
	err = tmp.update(dst[:len(dst)-1], func(cur Value) (Value, error) {
		switch t := cur.(type) {
		case *Object:
			k, ok := last.(String)
			if !ok {
				return nil, fmt.Errorf("cannot index object with %s %s", last.Kind(), last.JSON())
			}
			t.Set(string(k), v)
			return t, nil
		case Array:
			i, err := arrayIndex(last, len(t)+1)
			if err != nil {
				return nil, err
			}
			return slices.Insert(t, i, v), nil
		default:
			_, err := step(cur, last)
			return nil, err
		}
	})
	if err != nil {
		if pe, ok := err.(*PathError); ok {
			pe.Path = dst
		}
		return err
	}
	d.root = tmp.root
	return nil
}

// Search returns the values of all object members in d that satisfy pred, in
// the order defined by the Search function. If d is empty the result is empty.
func (d *Document) Search(pred func(key string, value Value) bool) Array {
	if d.root == nil {
		return Array{}
	}
	return Search(d.root, pred)
}

// SearchKey returns the values of all object members in d with the given key.
func (d *Document) SearchKey(key string) Array {
	return d.Search(func(k string, _ Value) bool { return k == key })
}

// Contains reports whether any object in d has a member with the given key.
func (d *Document) Contains(key string) bool { return len(d.SearchKey(key)) != 0 }

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	if d.root == nil {
		return new(Document)
	}
	return &Document{root: Clone(d.root)}
}

// Equal reports whether d and o are both empty, or have structurally equal
// roots.
func (d *Document) Equal(o *Document) bool {
	if d.root == nil || o.root == nil {
		return d.root == nil && o.root == nil
	}
	return Equal(d.root, o.root)
}

// update replaces the value v designated by path with f(v). If path is
// non-empty, the result is stored back into the parent of v.
func (d *Document) update(path Path, f func(Value) (Value, error)) error {
	if d.root == nil {
		return d.emptyError(path)
	}
	if len(path) == 0 {
		nv, err := f(d.root)
		if err != nil {
			return &PathError{Path: path, Message: err.Error()}
		}
		d.root = nv
		return nil
	}

	parent, err := Follow(d.root, path[:len(path)-1])
	if err != nil {
		err.(*PathError).Path = path
		return err
	}
	last := path[len(path)-1]
	cur, err := step(parent, last)
	if err != nil {
		return &PathError{Path: path, Step: len(path) - 1, Message: err.Error()}
	}
	nv, err := f(cur)
	if err != nil {
		return &PathError{Path: path, Step: len(path), Message: err.Error()}
	}

	// The parent is known to be a container, and last to be a valid key for it.
	switch t := parent.(type) {
	case *Object:
		t.Find(string(last.(String))).Value = nv
	case Array:
		i, _ := last.(Number).Int()
		t[i] = nv
	}
	return nil
}

func (d *Document) emptyError(path Path) error {
	return &PathError{Path: path, Message: ErrEmptyDocument.Error(), err: ErrEmptyDocument}
}

// isPrefix reports whether p is a prefix of q.
func isPrefix(p, q Path) bool {
	return len(p) <= len(q) && slices.EqualFunc(p, q[:len(p)], Equal)
}
