// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsondoc/jsondoc"
)

// A Path is a sequence of trivial values that designates a location in a value
// tree. A String selects an object member by key; a Number with an integral
// value selects an array element by index.
type Path []Value

// PathOf constructs a Path from the given elements. Each element must be a
// string, an int, or a trivial Value. PathOf panics for any other element.
func PathOf(elems ...any) Path {
	p := make(Path, len(elems))
	for i, elt := range elems {
		switch t := elt.(type) {
		case string:
			p[i] = String(t)
		case int:
			p[i] = Number(t)
		case Value:
			if !Trivial(t) {
				panic(fmt.Sprintf("invalid path element %s", t.Kind()))
			}
			p[i] = t
		default:
			panic(fmt.Sprintf("invalid path element %T", elt))
		}
	}
	return p
}

// String renders p as a path expression. If p contains only strings and
// non-negative integers, ParsePath accepts the result.
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("$")
	for _, elt := range p {
		switch t := elt.(type) {
		case String:
			if wordRE.MatchString(string(t)) {
				sb.WriteString("." + string(t))
			} else {
				sb.WriteString("[" + t.JSON() + "]")
			}
		default:
			sb.WriteString("[" + elt.JSON() + "]")
		}
	}
	return sb.String()
}

// ErrPathNotFound is the error reported when a path does not resolve.
var ErrPathNotFound = errors.New("path not found")

// PathError is the concrete type of errors reported by path navigation.
type PathError struct {
	Path    Path   // the complete path being resolved
	Step    int    // the offset in Path of the element that failed
	Message string // a description of the failure

	err error // an additional cause, or nil
}

// Error satisfies the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("path %s: at %s: %s", e.Path, e.Path[:e.Step], e.Message)
}

// Unwrap supports error wrapping. A *PathError always matches ErrPathNotFound.
func (e *PathError) Unwrap() []error {
	if e.err == nil {
		return []error{ErrPathNotFound}
	}
	return []error{ErrPathNotFound, e.err}
}

// Follow resolves path starting from root, and returns the value it
// designates. An empty path designates root itself.
//
// Follow reports a *PathError if some element of the path does not resolve:
// if an intermediate value is trivial, if an object is indexed by something
// other than a string, if an array is indexed by something other than an
// integral number, or if the key or index is not present.
func Follow(root Value, path Path) (Value, error) {
	cur := root
	for i, key := range path {
		next, err := step(cur, key)
		if err != nil {
			return nil, &PathError{Path: path, Step: i, Message: err.Error()}
		}
		cur = next
	}
	return cur, nil
}

// step resolves a single path element against v.
func step(v, key Value) (Value, error) {
	switch t := v.(type) {
	case *Object:
		k, ok := key.(String)
		if !ok {
			return nil, fmt.Errorf("cannot index object with %s %s", key.Kind(), key.JSON())
		}
		m := t.Find(string(k))
		if m == nil {
			return nil, fmt.Errorf("key %s not found", k.JSON())
		}
		return m.Value, nil
	case Array:
		i, err := arrayIndex(key, len(t))
		if err != nil {
			return nil, err
		}
		return t[i], nil
	default:
		return nil, fmt.Errorf("cannot index %s value %s", v.Kind(), v.JSON())
	}
}

// arrayIndex checks that key is a valid index for an array of length n.
func arrayIndex(key Value, n int) (int, error) {
	num, ok := key.(Number)
	if !ok {
		return 0, fmt.Errorf("cannot index array with %s %s", key.Kind(), key.JSON())
	}
	i, ok := num.Int()
	if !ok {
		return 0, fmt.Errorf("array index %s is not an integer", num)
	} else if i < 0 || i >= n {
		return 0, fmt.Errorf("array index %d out of range (n=%d)", i, n)
	}
	return i, nil
}

/*
Path expression grammar:

  expr = [ "$" ] { step }
  step = "." NAME
  step = "[" INDEX "]"
  step = "[" "'" QTEXT "'" "]"
  step = "[" STRING "]"

  NAME   = RE `[\w-]+`
  INDEX  = RE `\d+`
  QTEXT  = RE `[^']*`
  STRING = a quoted string token
*/

// ErrInvalidPath is the error reported by ParsePath for a malformed path
// expression.
var ErrInvalidPath = errors.New("invalid path expression")

// ParsePath parses a path expression such as
//
//	$.offices[1].address
//	$['first name']
//	["a\tb"][0]
//
// The leading "$" is optional, and an empty expression denotes the empty path.
func ParsePath(s string) (Path, error) {
	rest, _ := strings.CutPrefix(s, "$")
	var p Path
	for rest != "" {
		elt, next, err := parseStep(rest)
		if err != nil {
			return nil, fmt.Errorf("%w at offset %d: %v", ErrInvalidPath, len(s)-len(rest), err)
		}
		p = append(p, elt)
		rest = next
	}
	return p, nil
}

func parseStep(s string) (_ Value, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "."); ok {
		m := nameRE.FindString(t)
		if m == "" {
			return nil, s, errors.New("invalid .name")
		}
		return String(m), t[len(m):], nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		v, u, err := parseSubscript(t)
		if err != nil {
			return nil, s, err
		}
		u, ok := strings.CutPrefix(u, "]")
		if !ok {
			return nil, s, errors.New("missing close bracket")
		}
		return v, u, nil
	}
	return nil, s, errors.New("invalid path step")
}

func parseSubscript(s string) (_ Value, rest string, _ error) {
	if m := indexRE.FindString(s); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil {
			return nil, s, fmt.Errorf("invalid index: %w", err)
		}
		return Number(n), s[len(m):], nil
	}
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return String(m[1]), s[len(m[0]):], nil
	}
	if strings.HasPrefix(s, `"`) {
		end := closingQuote(s)
		if end < 0 {
			return nil, s, errors.New("unterminated string")
		}
		text, err := jsondoc.Unquote(s[:end+1])
		if err != nil {
			return nil, s, err
		}
		return String(text), s[end+1:], nil
	}
	return nil, s, fmt.Errorf("invalid subscript %q", s)
}

// closingQuote returns the offset of the quotation mark closing the string
// that begins at s[0], or -1.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

var (
	nameRE  = regexp.MustCompile(`^[\w-]+`)
	wordRE  = regexp.MustCompile(`^[\w-]+$`)
	indexRE = regexp.MustCompile(`^\d+`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
)
