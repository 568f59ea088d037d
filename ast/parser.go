// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"

	"github.com/jsondoc/jsondoc"
)

// DefaultMaxDepth is the default limit on the nesting depth of arrays and
// objects accepted by a Parser.
const DefaultMaxDepth = 1000

// Sentinel errors for grammar violations, wrapped in a *ParseError.
var (
	ErrUnexpectedPunctuator   = errors.New("unexpected punctuator")
	ErrExpectedValue          = errors.New("expected a value")
	ErrExpectedStringKey      = errors.New("expected a string key")
	ErrExpectedColon          = errors.New("expected ':'")
	ErrExpectedCommaOrBrace   = errors.New("expected ',' or '}'")
	ErrExpectedCommaOrBracket = errors.New("expected ',' or ']'")
	ErrUnexpectedEnd          = errors.New("unexpected end of input")
	ErrTrailingInput          = errors.New("unexpected input after value")
	ErrTooDeep                = errors.New("nesting too deep")
)

// ParseError is the concrete type of all errors reported by the parser. It
// wraps one of the grammar sentinels of this package, a *jsondoc.LexError for
// a lexical error, or a *jsondoc.SourceError if the input could not be read.
type ParseError struct {
	Location jsondoc.Location
	Message  string

	err error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Location, e.Message)
}

// Unwrap supports error wrapping.
func (e *ParseError) Unwrap() error { return e.err }

// A Parser constructs a Document from the tokens of a jsondoc.Source.
type Parser struct {
	src           jsondoc.Source
	maxDepth      int
	allowTrailing bool

	sc    *jsondoc.Scanner
	depth int
}

// NewParser constructs a parser that reads from src. The parser does not take
// ownership of src; the caller must close it.
func NewParser(src jsondoc.Source) *Parser {
	return &Parser{src: src, maxDepth: DefaultMaxDepth}
}

// MaxDepth sets the maximum nesting depth of arrays and objects. Deeper input
// fails with ErrTooDeep. If n <= 0, DefaultMaxDepth is used.
func (p *Parser) MaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	p.maxDepth = n
}

// AllowTrailingInput sets whether the parser accepts further tokens after
// a complete top-level value. By default such input fails with
// ErrTrailingInput; when allowed, it is not scanned at all.
func (p *Parser) AllowTrailingInput(ok bool) { p.allowTrailing = ok }

// Parse reads the complete input and returns the resulting document. If the
// input contains no tokens, the result is an empty document. In case of error
// no document is returned, and the error has concrete type *ParseError.
func (p *Parser) Parse() (*Document, error) {
	p.sc = jsondoc.NewScanner(p.src)
	p.depth = 0

	if ok, err := p.sc.More(); err != nil {
		return nil, p.lexError(err)
	} else if !ok {
		return new(Document), nil
	}
	root, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if !p.allowTrailing {
		if ok, err := p.sc.More(); err != nil {
			return nil, p.lexError(err)
		} else if ok {
			tok, _ := p.sc.Peek()
			return nil, p.failf(ErrTrailingInput, "unexpected %s after value", describe(tok))
		}
	}
	return &Document{root: root}, nil
}

// parseValue parses a single value beginning at the next token.
func (p *Parser) parseValue() (Value, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case jsondoc.Punct:
		switch tok.Punct() {
		case '[':
			return p.parseArray()
		case '{':
			return p.parseObject()
		}
		return nil, p.failf(ErrUnexpectedPunctuator, "expected a value, but found %q", tok.Punct())
	case jsondoc.String:
		p.sc.Next()
		return String(tok.Text()), nil
	case jsondoc.Number:
		p.sc.Next()
		return Number(tok.Float64()), nil
	case jsondoc.Keyword:
		p.sc.Next()
		switch tok.Keyword() {
		case jsondoc.True:
			return Bool(true), nil
		case jsondoc.False:
			return Bool(false), nil
		default:
			return Null, nil
		}
	}
	return nil, p.failf(ErrExpectedValue, "expected a value, but found %s", describe(tok))
}

// parseObject parses an object beginning at "{".
func (p *Parser) parseObject() (Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.sc.Next() // {
	obj := new(Object)
	if tok, err := p.peek(); err != nil {
		return nil, err
	} else if tok.Is('}') {
		p.sc.Next()
		return obj, nil
	}
	for {
		if _, err := p.peek(); err != nil {
			return nil, err
		}
		start := p.sc.Location()
		key, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		ks, ok := key.(String)
		if !ok {
			return nil, p.failAt(start, ErrExpectedStringKey, "object key must be a string, not %s", key.Kind())
		}

		if tok, err := p.peek(); err != nil {
			return nil, err
		} else if !tok.Is(':') {
			return nil, p.failf(ErrExpectedColon, "expected ':' after object key, but found %s", describe(tok))
		}
		p.sc.Next()

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(string(ks), val)

		tok, err := p.peek()
		if err != nil {
			return nil, err
		} else if tok.Is('}') {
			p.sc.Next()
			return obj, nil
		} else if !tok.Is(',') {
			return nil, p.failf(ErrExpectedCommaOrBrace, "expected ',' or '}' after object member, but found %s", describe(tok))
		}
		p.sc.Next()
	}
}

// parseArray parses an array beginning at "[".
func (p *Parser) parseArray() (Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.sc.Next() // [
	arr := Array{}
	if tok, err := p.peek(); err != nil {
		return nil, err
	} else if tok.Is(']') {
		p.sc.Next()
		return arr, nil
	}
	for {
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)

		tok, err := p.peek()
		if err != nil {
			return nil, err
		} else if tok.Is(']') {
			p.sc.Next()
			return arr, nil
		} else if !tok.Is(',') {
			return nil, p.failf(ErrExpectedCommaOrBracket, "expected ',' or ']' after array element, but found %s", describe(tok))
		}
		p.sc.Next()
	}
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.failf(ErrTooDeep, "nesting depth exceeds %d", p.maxDepth)
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

// peek returns the next token without consuming it. Running out of tokens is
// reported as ErrUnexpectedEnd.
func (p *Parser) peek() (jsondoc.Token, error) {
	tok, err := p.sc.Peek()
	if errors.Is(err, jsondoc.ErrNoMoreTokens) {
		return tok, p.failf(ErrUnexpectedEnd, "unexpected end of input")
	} else if err != nil {
		return tok, p.lexError(err)
	}
	return tok, nil
}

// failf reports a grammar error at the current scanner location, which is the
// start of the pending token, or the end of input.
func (p *Parser) failf(err error, msg string, args ...any) error {
	return p.failAt(p.sc.Location(), err, msg, args...)
}

func (p *Parser) failAt(loc jsondoc.Location, err error, msg string, args ...any) error {
	return &ParseError{Location: loc, Message: fmt.Sprintf(msg, args...), err: err}
}

// lexError wraps an error from the scanner, preserving its message and
// location.
func (p *Parser) lexError(err error) error {
	var le *jsondoc.LexError
	if errors.As(err, &le) {
		return &ParseError{Location: le.Location, Message: le.Message, err: le}
	}
	return &ParseError{Location: p.sc.Location(), Message: err.Error(), err: err}
}

func describe(tok jsondoc.Token) string {
	if tok.Kind() == jsondoc.Punct {
		return fmt.Sprintf("%q", tok.Punct())
	}
	return fmt.Sprintf("%s %s", tok.Kind(), tok)
}

// Parse parses the complete contents of src with default settings. The caller
// remains responsible for closing src.
func Parse(src jsondoc.Source) (*Document, error) { return NewParser(src).Parse() }

// ParseText parses the complete contents of text with default settings.
func ParseText(text string) (*Document, error) { return Parse(jsondoc.NewBuffer(text)) }

// ParseBytes parses the complete contents of data with default settings.
func ParseBytes(data []byte) (*Document, error) { return Parse(jsondoc.NewBytes(data)) }

// ParseFile parses the contents of the named file with default settings. The
// file is closed before ParseFile returns.
func ParseFile(path string) (doc *Document, err error) {
	src, err := jsondoc.OpenFile(path)
	if err != nil {
		return nil, &ParseError{Location: jsondoc.Location{Line: 1}, Message: err.Error(), err: err}
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			doc = nil
			err = &ParseError{Location: jsondoc.Location{Line: 1}, Message: cerr.Error(), err: cerr}
		}
	}()
	return Parse(src)
}
