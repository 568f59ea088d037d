// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package jsondoc

import (
	"bytes"
	"fmt"
	"iter"
	"regexp"
	"strconv"

	"github.com/jsondoc/jsondoc/internal/escape"

	"go4.org/mem"
)

// scanState is the state of the token buffer of a Scanner.
type scanState byte

const (
	pending   scanState = iota // no token buffered; the next request scans one
	buffered                   // a token is buffered and not yet consumed
	exhausted                  // the input is used up, or an error occurred
)

// A Scanner reads lexical tokens from a Source. It is a forward-only, single
// pass iterator: tokens are scanned lazily, one at a time, as they are
// requested. Peek exposes one token of lookahead without consuming it.
//
// A Scanner does not own its Source; the caller is responsible for closing
// the Source after scanning.
type Scanner struct {
	src   Source
	tr    tracker  // location of the next unread byte
	state scanState
	tok   Token    // valid when state == buffered
	loc   Location // start of tok, or the final location once exhausted
	err   error    // sticky lexical or source error
	buf   bytes.Buffer
}

// NewScanner constructs a scanner positioned at the start of src.
func NewScanner(src Source) *Scanner {
	s := &Scanner{src: src, tr: newTracker(0)}
	if err := src.Seek(0); err != nil {
		s.fail(err, "cannot rewind input: %v", err)
	}
	s.loc = s.tr.loc
	return s
}

// NewScannerAtEnd constructs a scanner positioned at the end of src. The
// resulting scanner has no tokens; it is useful as a sentinel when comparing
// scanner positions.
func NewScannerAtEnd(src Source) *Scanner {
	s := &Scanner{src: src, tr: newTracker(src.Size()), state: exhausted}
	if err := src.Seek(src.Size()); err != nil {
		s.fail(err, "cannot seek to end of input: %v", err)
	}
	s.loc = s.tr.loc
	return s
}

// Peek returns the next token without consuming it. Once the input is
// exhausted, Peek reports ErrNoMoreTokens. Any other error is a lexical or
// source error, and is reported again by every subsequent call.
func (s *Scanner) Peek() (Token, error) {
	if err := s.fill(); err != nil {
		return Token{}, err
	} else if s.state == exhausted {
		return Token{}, s.noMore()
	}
	return s.tok, nil
}

// Next consumes and returns the next token. It reports errors as Peek.
func (s *Scanner) Next() (Token, error) {
	tok, err := s.Peek()
	if err != nil {
		return tok, err
	}
	s.state = pending
	return tok, nil
}

// More reports whether a further token is available. It reports an error
// only if the input is malformed or cannot be read.
func (s *Scanner) More() (bool, error) {
	if err := s.fill(); err != nil {
		return false, err
	}
	return s.state == buffered, nil
}

// Tokens returns an iterator over the remaining tokens of s. The iteration
// ends when the input is exhausted, or after yielding an error.
func (s *Scanner) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			ok, err := s.More()
			if err != nil {
				yield(Token{}, err)
				return
			} else if !ok {
				return
			}
			tok, _ := s.Next()
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// Location returns the location of the start of the buffered token. If no
// token is buffered, it returns the location of the next unread byte.
func (s *Scanner) Location() Location {
	if s.state == buffered {
		return s.loc
	}
	return s.tr.loc
}

// Compare orders s and o by their current locations.
func (s *Scanner) Compare(o *Scanner) int { return s.Location().Compare(o.Location()) }

// Err returns the sticky error of s, if any.
func (s *Scanner) Err() error { return s.err }

// fill scans a token into the buffer if none is pending.
func (s *Scanner) fill() error {
	if s.err != nil {
		return s.err
	} else if s.state != pending {
		return nil
	}

	// Discard whitespace.
	var ch byte
	for {
		b, err := s.src.Peek()
		if err == ErrEndOfInput {
			s.state = exhausted
			s.loc = s.tr.loc
			return nil
		} else if err != nil {
			return s.fail(err, "%v", err)
		}
		if !isSpace(b) {
			ch = b
			break
		}
		s.advance()
		s.tr.space(b)
	}

	s.loc = s.tr.loc
	var err error
	switch {
	case isNumStart(ch):
		err = s.scanNumber()
	case ch == '"':
		err = s.scanString()
	case isLower(ch):
		err = s.scanKeyword()
	default:
		err = s.scanPunct()
	}
	if err != nil {
		return err
	}
	s.state = buffered
	return nil
}

func (s *Scanner) scanPunct() error {
	b, err := s.read()
	if err != nil {
		return err
	} else if !IsPunct(b) {
		return s.failAt(s.loc, ErrUnexpectedSymbol, "unexpected symbol %q", b)
	}
	s.tok = PunctToken(b)
	return nil
}

func (s *Scanner) scanNumber() error {
	s.buf.Reset()
	if err := s.readWhile(isNumRune); err != nil {
		return err
	}
	s.tok = NumberToken(atof(s.buf.String()))
	return nil
}

var (
	kwTrue  = mem.S("true")
	kwFalse = mem.S("false")
	kwNull  = mem.S("null")
)

func (s *Scanner) scanKeyword() error {
	s.buf.Reset()
	if err := s.readWhile(isAlpha); err != nil {
		return err
	}
	switch got := mem.B(s.buf.Bytes()); {
	case got.Equal(kwTrue):
		s.tok = KeywordToken(True)
	case got.Equal(kwFalse):
		s.tok = KeywordToken(False)
	case got.Equal(kwNull):
		s.tok = KeywordToken(Null)
	default:
		return s.failAt(s.loc, ErrUnexpectedSymbol, "unknown constant %q", got.StringCopy())
	}
	return nil
}

func (s *Scanner) scanString() error {
	s.buf.Reset()
	if _, err := s.read(); err != nil { // the open quote
		return err
	}
	for {
		b, err := s.readInString()
		if err != nil {
			return err
		}
		switch b {
		case '"':
			s.tok = StringToken(s.buf.String())
			return nil
		case '\\':
			e, err := s.readInString()
			if err != nil {
				return err
			}
			s.buf.WriteByte(escape.Resolve(e))
		default:
			s.buf.WriteByte(b)
		}
	}
}

// readInString reads a byte of a string body, reporting the end of input as
// an unterminated string.
func (s *Scanner) readInString() (byte, error) {
	b, err := s.src.Advance()
	if err == ErrEndOfInput {
		return 0, s.failAt(s.tr.loc, ErrUnterminatedString,
			"unterminated string starting at %d:%d", s.loc.Line, s.loc.Column)
	} else if err != nil {
		return 0, s.fail(err, "%v", err)
	}
	s.tr.step()
	return b, nil
}

// read consumes a single byte as part of a token.
func (s *Scanner) read() (byte, error) {
	b, err := s.src.Advance()
	if err != nil {
		return 0, s.fail(err, "%v", err)
	}
	s.tr.step()
	return b, nil
}

// advance consumes a byte already known to be present by a successful Peek.
func (s *Scanner) advance() { s.src.Advance() }

// readWhile consumes bytes matching f into the token buffer, stopping at the
// end of input or at the first byte not matching f.
func (s *Scanner) readWhile(f func(byte) bool) error {
	for {
		b, err := s.src.Peek()
		if err == ErrEndOfInput {
			return nil
		} else if err != nil {
			return s.fail(err, "%v", err)
		} else if !f(b) {
			return nil
		}
		s.advance()
		s.tr.step()
		s.buf.WriteByte(b)
	}
}

func (s *Scanner) noMore() error {
	return &LexError{Location: s.tr.loc, Message: "no more tokens", err: ErrNoMoreTokens}
}

// fail records a sticky error wrapping err at the current location.
func (s *Scanner) fail(err error, msg string, args ...any) error {
	return s.failAt(s.tr.loc, err, msg, args...)
}

func (s *Scanner) failAt(loc Location, err error, msg string, args ...any) error {
	s.err = &LexError{Location: loc, Message: fmt.Sprintf(msg, args...), err: err}
	s.state = exhausted
	return s.err
}

// numPrefix matches the longest prefix of a numeric lexeme that forms a
// decimal floating-point literal.
var numPrefix = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`)

// atof converts the longest valid prefix of text to a float64, in the manner
// of the C library function of the same name. If no prefix is valid, the
// result is 0; if the value is out of range, the result is an infinity or
// zero of the appropriate sign.
func atof(text string) float64 {
	lit := numPrefix.FindString(text)
	if lit == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(lit, 64) // ErrRange yields a usable value
	return v
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\r' || b == '\n' || b == '\t'
}

func isDigit(b byte) bool    { return '0' <= b && b <= '9' }
func isLower(b byte) bool    { return 'a' <= b && b <= 'z' }
func isAlpha(b byte) bool    { return isLower(b) || ('A' <= b && b <= 'Z') }
func isNumStart(b byte) bool { return b == '-' || isDigit(b) }

func isNumRune(b byte) bool {
	return isDigit(b) || b == '.' || b == '-' || b == '+' || b == 'e' || b == 'E'
}
