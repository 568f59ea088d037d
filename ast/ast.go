// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

// Package ast defines an in-memory tree model for JSON values, and a parser
// that constructs trees from JSON source.
//
// A Value is one of the concrete types Null, Bool, Number, String, Array, or
// *Object. Null, Bool, Number, and String are trivial: they have no children.
// Array and *Object are compound: they own their children directly, so a
// value tree is always acyclic.
package ast

import (
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/jsondoc/jsondoc"
	"github.com/jsondoc/jsondoc/internal/escape"

	"go4.org/mem"
)

// Kind identifies the concrete type of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	NumberKind: "number",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Value is an arbitrary JSON value. The set of implementations is closed.
type Value interface {
	// Kind reports the concrete type of the value.
	Kind() Kind

	// JSON renders the value as compact single-line JSON text.
	JSON() string

	isValue()
}

// NullValue is the type of the JSON null constant.
type NullValue struct{}

// Null is the JSON null constant.
var Null NullValue

func (NullValue) Kind() Kind { return NullKind }
func (NullValue) JSON() string { return "null" }
func (NullValue) String() string { return "null" }
func (NullValue) Len() int { return 0 }
func (NullValue) isValue() {}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) Kind() Kind { return BoolKind }
func (b Bool) JSON() string { return b.String() }
func (Bool) isValue() {}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// A Number is a numeric value. All numbers are IEEE double precision.
type Number float64

func (Number) Kind() Kind { return NumberKind }
func (n Number) JSON() string { return jsondoc.FormatNumber(float64(n)) }
func (n Number) String() string { return n.JSON() }
func (Number) isValue() {}

// Int reports whether n has an integral value that fits in an int, and if so
// returns that value.
func (n Number) Int() (int, bool) {
	f := float64(n)
	if f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// A String is a string value. The text is stored decoded, without quotation
// marks or escapes.
type String string

func (String) Kind() Kind { return StringKind }
func (s String) JSON() string { return string(escape.Quote(mem.S(string(s)))) }
func (s String) String() string { return string(s) }
func (s String) Len() int { return len(s) }
func (String) isValue() {}

// An Array is a sequence of values.
type Array []Value

func (Array) Kind() Kind { return ArrayKind }
func (a Array) String() string { return a.JSON() }
func (a Array) Len() int { return len(a) }
func (Array) isValue() {}

func (a Array) JSON() string {
	elts := make([]string, len(a))
	for i, v := range a {
		elts[i] = v.JSON()
	}
	return "[" + strings.Join(elts, ",") + "]"
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// JSON renders the member as a compact "key":value pair.
func (m *Member) JSON() string {
	return string(escape.Quote(mem.S(m.Key))) + ":" + m.Value.JSON()
}

// Field constructs an object member with the given key and value.
// The value is converted as by ToValue.
func Field(key string, value any) *Member { return &Member{Key: key, Value: ToValue(value)} }

// An Object is a collection of key-value members with unique keys. Members
// are kept in insertion order. The zero value is an empty object ready for
// use; objects are always handled by pointer. A nil *Object reads as an empty
// object, but it cannot be modified.
type Object struct {
	members []*Member
}

// ObjectOf constructs an object from the given members, in order. If several
// members share a key, the last one wins, at the position of the first.
func ObjectOf(members ...*Member) *Object {
	o := new(Object)
	for _, m := range members {
		o.Set(m.Key, m.Value)
	}
	return o
}

func (*Object) Kind() Kind { return ObjectKind }

func (o *Object) list() []*Member {
	if o == nil {
		return nil
	}
	return o.members
}

func (o *Object) String() string { return o.JSON() }
func (*Object) isValue() {}

func (o *Object) JSON() string {
	elts := make([]string, len(o.list()))
	for i, m := range o.list() {
		elts[i] = m.JSON()
	}
	return "{" + strings.Join(elts, ",") + "}"
}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.list()) }

// Members returns the members of o in order. The caller must not modify the
// returned slice, though it may update the values of its members.
func (o *Object) Members() []*Member { return o.list() }

// At returns the member at offset i of o. It panics if i is out of range.
func (o *Object) At(i int) *Member { return o.list()[i] }

// All returns an iterator over the keys and values of o, in order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, m := range o.list() {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

// Keys returns the keys of o in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.list()))
	for i, m := range o.list() {
		keys[i] = m.Key
	}
	return keys
}

// Find returns the member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	if i := o.index(key); i >= 0 {
		return o.list()[i]
	}
	return nil
}

// Get returns the value of the member of o with the given key, and reports
// whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	if m := o.Find(key); m != nil {
		return m.Value, true
	}
	return nil, false
}

// Set sets the value of the member of o with the given key. If the key is
// already present its value is replaced in place; otherwise a new member is
// added at the end. A nil value is stored as Null.
func (o *Object) Set(key string, value Value) {
	if value == nil {
		value = Null
	}
	if m := o.Find(key); m != nil {
		m.Value = value
		return
	}
	o.members = append(o.members, &Member{Key: key, Value: value})
}

// Delete removes the member of o with the given key, and reports whether it
// was present.
func (o *Object) Delete(key string) bool {
	i := o.index(key)
	if i < 0 {
		return false
	}
	o.members = slices.Delete(o.members, i, i+1)
	return true
}

func (o *Object) index(key string) int {
	return slices.IndexFunc(o.list(), func(m *Member) bool { return m.Key == key })
}

// Trivial reports whether v is null, a Boolean, a number, or a string.
func Trivial(v Value) bool {
	switch v.(type) {
	case NullValue, Bool, Number, String:
		return true
	}
	return false
}

// Compound reports whether v is an array or an object.
func Compound(v Value) bool {
	switch v.(type) {
	case Array, *Object:
		return true
	}
	return false
}

// Clone returns a deep copy of v. The result shares no arrays or objects with
// the original.
func Clone(v Value) Value {
	switch t := v.(type) {
	case Array:
		if t == nil {
			return Array(nil)
		}
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = Clone(elt)
		}
		return out
	case *Object:
		out := &Object{members: make([]*Member, len(t.list()))}
		for i, m := range t.list() {
			out.members[i] = &Member{Key: m.Key, Value: Clone(m.Value)}
		}
		return out
	default:
		return v
	}
}

// Equal reports whether a and b are structurally equal. Values of different
// kinds are never equal. Arrays are equal if they have equal elements in the
// same order. Objects are equal if they have the same keys, with equal values,
// regardless of order.
func Equal(a, b Value) bool {
	switch t := a.(type) {
	case NullValue:
		_, ok := b.(NullValue)
		return ok
	case Bool:
		u, ok := b.(Bool)
		return ok && t == u
	case Number:
		u, ok := b.(Number)
		return ok && t == u
	case String:
		u, ok := b.(String)
		return ok && t == u
	case Array:
		u, ok := b.(Array)
		return ok && slices.EqualFunc(t, u, Equal)
	case *Object:
		u, ok := b.(*Object)
		if !ok || t.Len() != u.Len() {
			return false
		}
		for _, m := range t.list() {
			w, ok := u.Get(m.Key)
			if !ok || !Equal(m.Value, w) {
				return false
			}
		}
		return true
	}
	return false
}

// ToValue converts a Go value into a Value. It accepts nil (as Null), any
// Value, bool, string, the signed and unsigned integer types, float32 and
// float64, []any and []Value (as arrays), map[string]any (as an object with
// keys in sorted order), and *Member (as a single-member object).
//
// ToValue panics if v does not have one of these types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int8:
		return Number(t)
	case int16:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint8:
		return Number(t)
	case uint16:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case float32:
		return Number(t)
	case float64:
		return Number(t)
	case []Value:
		return Array(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := new(Object)
		for _, key := range keys {
			out.Set(key, ToValue(t[key]))
		}
		return out
	case *Member:
		return ObjectOf(t)
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}
