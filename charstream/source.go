// SPDX-License-Identifier: MIT
package charstream

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

type (
	// Status reports the outcome of a Source read.
	Status int

	// Source defines where the bytes of a program come from.
	//
	// Get returns the byte a preceding Peek returned; reading past the end keeps returning
	// StatusEnd.
	Source interface {
		// Peek obtains the next byte without consuming it.
		Peek() (byte, Status)
		// Get consumes the next byte.
		Get() (byte, Status)
		// Opened reports whether the Source could be acquired.
		Opened() bool
		// Close releases the underlying resource.
		Close() error
	}

	// ReaderSource is a Source backed by an io.Reader, typically an opened file.
	ReaderSource struct {
		reader *bufio.Reader
		closer io.Closer
		err    error
		opened bool
	}

	// StringSource is a Source backed by an in-memory string.
	//
	// It can't fail to open.
	StringSource struct {
		text  string
		index int
	}
)

const (
	StatusEnd Status = iota
	StatusError
	StatusGood
)

var (
	_ Source = (*ReaderSource)(nil)
	_ Source = (*StringSource)(nil)
)

// String is the `fmt.Stringer` implementation for Status.
func (s Status) String() string {
	switch s {
	case StatusEnd:
		return "END"
	case StatusError:
		return "ERROR"
	case StatusGood:
		return "GOOD"
	}

	return "UNKNOWN"
}

// OpenFile creates a ReaderSource for the named file.
//
// A failure to open is reported by Opened & Err, not returned.
func OpenFile(filename string) *ReaderSource {
	fd, err := os.Open(filename)
	if err != nil {
		return &ReaderSource{err: errors.Wrapf(err, "open source %s", filename)}
	}

	s := NewReaderSource(fd)
	s.closer = fd

	return s
}

// NewReaderSource creates an opened ReaderSource reading from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{
		reader: bufio.NewReader(r),
		opened: true,
	}
}

// Opened reports whether the underlying reader was acquired.
func (s *ReaderSource) Opened() bool { return s.opened }

// Err obtains the last open or read error, io.EOF is not an error.
func (s *ReaderSource) Err() error { return s.err }

// Peek obtains the next byte without consuming it.
func (s *ReaderSource) Peek() (byte, Status) {
	if !s.opened {
		return 0, StatusError
	}

	next, err := s.reader.Peek(1)
	if err != nil {
		return 0, s.status(err)
	}

	return next[0], StatusGood
}

// Get consumes the next byte.
func (s *ReaderSource) Get() (byte, Status) {
	if !s.opened {
		return 0, StatusError
	}

	next, err := s.reader.ReadByte()
	if err != nil {
		return 0, s.status(err)
	}

	return next, StatusGood
}

// status maps a read error to a Status, retaining non-EOF errors.
func (s *ReaderSource) status(err error) Status {
	if err == io.EOF {
		return StatusEnd
	}
	s.err = errors.Wrap(err, "read source")

	return StatusError
}

// Close releases the underlying file, if any.
func (s *ReaderSource) Close() (err error) {
	if s.closer == nil {
		return
	}

	err = s.closer.Close()
	s.closer = nil

	return
}

// NewStringSource creates a StringSource over text.
func NewStringSource(text string) *StringSource { return &StringSource{text: text} }

// Opened is always true for a StringSource.
func (s *StringSource) Opened() bool { return true }

// Peek obtains the next byte without consuming it.
func (s *StringSource) Peek() (byte, Status) {
	if s.index >= len(s.text) {
		return 0, StatusEnd
	}

	return s.text[s.index], StatusGood
}

// Get consumes the next byte.
func (s *StringSource) Get() (next byte, status Status) {
	if next, status = s.Peek(); status == StatusGood {
		s.index++
	}

	return
}

// Close is a no-op for a StringSource.
func (s *StringSource) Close() error { return nil }
