// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package ast

import "github.com/creachadair/mds/stack"

// An entry is a pending item of a search: an object member, or an array
// element (which has no key).
type entry struct {
	key    string
	hasKey bool
	value  Value
}

// Search traverses the complete tree rooted at root, and returns an array of
// the values of all object members for which pred(key, value) is true.
//
// The traversal uses a last-in first-out worklist. The members of an object
// are pushed in stored order, and the elements of an array are pushed in index
// order. When an item is popped, its value is collected if it is a member that
// satisfies pred; then its children are pushed. Thus, for
//
//	{"id": 0, "nested": {"id": 1}, "list": [{"id": 2}]}
//
// a search for the key "id" returns [2, 1, 0].
//
// The result is never nil; if nothing matches it is an empty array.
func Search(root Value, pred func(key string, value Value) bool) Array {
	out := Array{}
	work := stack.New[entry]()
	work.Push(entry{value: root})
	for work.Len() != 0 {
		next, _ := work.Pop()
		if next.hasKey && pred(next.key, next.value) {
			out = append(out, next.value)
		}
		switch t := next.value.(type) {
		case *Object:
			for _, m := range t.list() {
				work.Push(entry{key: m.Key, hasKey: true, value: m.Value})
			}
		case Array:
			for _, elt := range t {
				work.Push(entry{value: elt})
			}
		}
	}
	return out
}

// SearchKey returns an array of the values of all object members anywhere in
// the tree rooted at root whose key equals key, in the order defined by Search.
func SearchKey(root Value, key string) Array {
	return Search(root, func(k string, _ Value) bool { return k == key })
}

// Contains reports whether any object in the tree rooted at root has a member
// with the given key.
func Contains(root Value, key string) bool {
	return len(SearchKey(root, key)) != 0
}
