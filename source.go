// Copyright (C) 2026 The jsondoc Authors. All Rights Reserved.

package jsondoc

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

var (
	// ErrEndOfInput is reported by Peek and Advance when the source has no
	// more bytes. It is returned unwrapped, in the manner of io.EOF.
	ErrEndOfInput = errors.New("end of input")

	// ErrSourceUnavailable indicates that a source could not be opened or
	// read.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrOutOfRange indicates an access outside the bounds of a source.
	ErrOutOfRange = errors.New("position out of range")
)

// A Source provides byte-at-a-time access to an input, with random access
// by position. The Scanner consumes a Source without regard to its origin.
type Source interface {
	// Peek returns the current byte without consuming it, or ErrEndOfInput.
	Peek() (byte, error)

	// Advance consumes and returns the current byte, or ErrEndOfInput.
	Advance() (byte, error)

	// EOF reports whether the source is exhausted.
	EOF() bool

	// Seek moves the source to the given byte offset.
	Seek(pos int64) error

	// Position returns the byte offset of the current byte.
	Position() int64

	// Size returns the total length of the source in bytes.
	Size() int64

	// Close releases any resources held by the source.
	Close() error
}

// SourceError is the concrete type of errors reported by a Source other than
// ErrEndOfInput. It unwraps to both its kind (one of the sentinel errors of
// this package) and the underlying cause, if any.
type SourceError struct {
	Op     string // the operation that failed: "open", "read", "seek", "close"
	Path   string // the file path, or "" for in-memory sources
	Offset int64  // the position at which the failure occurred
	Kind   error  // ErrSourceUnavailable or ErrOutOfRange
	Err    error  // the underlying cause, or nil
}

// Error satisfies the error interface.
func (e *SourceError) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg = fmt.Sprintf("%s: %v", msg, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap supports error wrapping.
func (e *SourceError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// FileSource is a Source that reads a file sequentially.
// The file is opened once by OpenFile and held until Close.
type FileSource struct {
	path string
	f    *os.File
	r    *bufio.Reader
	pos  int64
	size int64
}

// OpenFile opens the named file as a Source. It reports an error of concrete
// type *SourceError if the file does not exist or cannot be read.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Op: "open", Path: path, Kind: ErrSourceUnavailable,
			Err: errors.Wrap(err, "opening file")}
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &SourceError{Op: "open", Path: path, Kind: ErrSourceUnavailable,
			Err: errors.Wrap(err, "reading file info")}
	} else if !fi.Mode().IsRegular() {
		f.Close()
		return nil, &SourceError{Op: "open", Path: path, Kind: ErrSourceUnavailable,
			Err: errors.Errorf("not a regular file (mode %v)", fi.Mode())}
	}
	fs := &FileSource{path: path, f: f, r: bufio.NewReader(f), size: fi.Size()}

	// Fail now rather than on the first read if the contents are unreadable.
	if _, err := fs.r.Peek(1); err != nil && err != io.EOF {
		f.Close()
		return nil, &SourceError{Op: "open", Path: path, Kind: ErrSourceUnavailable,
			Err: errors.Wrap(err, "reading file")}
	}
	return fs, nil
}

// Path returns the path of the file underlying s.
func (s *FileSource) Path() string { return s.path }

// Peek satisfies the Source interface.
func (s *FileSource) Peek() (byte, error) {
	if s.f == nil {
		return 0, s.closedErr("read")
	}
	buf, err := s.r.Peek(1)
	if err == io.EOF {
		return 0, ErrEndOfInput
	} else if err != nil {
		return 0, s.readErr(err)
	}
	return buf[0], nil
}

// Advance satisfies the Source interface.
func (s *FileSource) Advance() (byte, error) {
	if s.f == nil {
		return 0, s.closedErr("read")
	}
	b, err := s.r.ReadByte()
	if err == io.EOF {
		return 0, ErrEndOfInput
	} else if err != nil {
		return 0, s.readErr(err)
	}
	s.pos++
	return b, nil
}

// EOF satisfies the Source interface. A source whose next read would fail
// for any reason is considered exhausted.
func (s *FileSource) EOF() bool {
	if s.f == nil {
		return true
	}
	_, err := s.r.Peek(1)
	return err != nil
}

// Seek satisfies the Source interface. Valid positions range from 0 to the
// size of the file, inclusive.
func (s *FileSource) Seek(pos int64) error {
	if s.f == nil {
		return s.closedErr("seek")
	} else if pos < 0 || pos > s.size {
		return &SourceError{Op: "seek", Path: s.path, Offset: pos, Kind: ErrOutOfRange,
			Err: errors.Errorf("offset %d not in [0, %d]", pos, s.size)}
	}
	if _, err := s.f.Seek(pos, io.SeekStart); err != nil {
		return &SourceError{Op: "seek", Path: s.path, Offset: pos, Kind: ErrSourceUnavailable,
			Err: errors.Wrap(err, "seeking file")}
	}
	s.r.Reset(s.f)
	s.pos = pos
	return nil
}

// Position satisfies the Source interface.
func (s *FileSource) Position() int64 { return s.pos }

// Size satisfies the Source interface.
func (s *FileSource) Size() int64 { return s.size }

// Close satisfies the Source interface. It is safe to call Close more than
// once; only the first call releases the file.
func (s *FileSource) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	if err != nil {
		return &SourceError{Op: "close", Path: s.path, Offset: s.pos, Kind: ErrSourceUnavailable,
			Err: errors.Wrap(err, "closing file")}
	}
	return nil
}

func (s *FileSource) readErr(err error) error {
	return &SourceError{Op: "read", Path: s.path, Offset: s.pos, Kind: ErrSourceUnavailable,
		Err: errors.Wrap(err, "reading file")}
}

func (s *FileSource) closedErr(op string) error {
	return &SourceError{Op: op, Path: s.path, Offset: s.pos, Kind: ErrSourceUnavailable,
		Err: errors.New("file is closed")}
}

// BufferSource is a Source that reads from an in-memory buffer.
type BufferSource struct {
	data string
	pos  int64
}

// NewBuffer constructs a Source that reads the contents of text.
func NewBuffer(text string) *BufferSource { return &BufferSource{data: text} }

// NewBytes constructs a Source that reads a copy of data.
func NewBytes(data []byte) *BufferSource { return &BufferSource{data: string(data)} }

// Peek satisfies the Source interface.
func (s *BufferSource) Peek() (byte, error) {
	if s.EOF() {
		return 0, ErrEndOfInput
	}
	return s.data[s.pos], nil
}

// Advance satisfies the Source interface.
func (s *BufferSource) Advance() (byte, error) {
	if s.EOF() {
		return 0, ErrEndOfInput
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

// EOF satisfies the Source interface.
func (s *BufferSource) EOF() bool { return s.pos >= int64(len(s.data)) }

// Seek satisfies the Source interface. Valid positions range from 0 to the
// length of the buffer, inclusive.
func (s *BufferSource) Seek(pos int64) error {
	if pos < 0 || pos > int64(len(s.data)) {
		return &SourceError{Op: "seek", Offset: pos, Kind: ErrOutOfRange,
			Err: errors.Errorf("offset %d not in [0, %d]", pos, len(s.data))}
	}
	s.pos = pos
	return nil
}

// Position satisfies the Source interface.
func (s *BufferSource) Position() int64 { return s.pos }

// Size satisfies the Source interface.
func (s *BufferSource) Size() int64 { return int64(len(s.data)) }

// Close satisfies the Source interface. It is a no-op.
func (s *BufferSource) Close() error { return nil }
