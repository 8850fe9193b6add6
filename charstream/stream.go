// SPDX-License-Identifier: MIT
package charstream

import (
	"gitlab.com/fisherprime/cynophobia/types"
)

type (
	// Stream wraps a Source, tracking the position of the next byte.
	//
	// An error observed on the Source latches the Stream into a failed state; every later read
	// reports StatusError without touching the Source.
	Stream struct {
		source Source

		// next is the position the next consumed byte is recorded at.
		next types.Position

		failed bool
	}
)

const defRunSize = 16

// NewStream creates a Stream positioned at the start of source.
func NewStream(source Source) *Stream { return &Stream{source: source} }

// NextPosition obtains the position the next consumed byte will be recorded at.
func (s *Stream) NextPosition() types.Position { return s.next }

// Failed reports whether the Stream has latched an error.
func (s *Stream) Failed() bool { return s.failed }

// Next consumes a byte, advancing the position on success.
func (s *Stream) Next() (byte, Status) {
	if s.failed {
		return 0, StatusError
	}

	next, status := s.source.Get()
	switch status {
	case StatusError:
		s.failed = true
		return 0, StatusError
	case StatusEnd:
		return 0, StatusEnd
	}

	s.advance(next)

	// Resolving a '\r' may have observed an error.
	if s.failed {
		return 0, StatusError
	}

	return next, StatusGood
}

// Peek obtains the next byte without consuming it.
func (s *Stream) Peek() (byte, Status) {
	if s.failed {
		return 0, StatusError
	}

	next, status := s.source.Peek()
	if status == StatusError {
		s.failed = true
		return 0, StatusError
	}

	return next, status
}

// AcceptWhile consumes bytes while they are members of set.
//
// The accumulated run is returned together with the status that ended it: StatusGood for a
// non-member byte (left unconsumed), StatusEnd or StatusError otherwise.
func (s *Stream) AcceptWhile(set *types.Charset) (string, Status) {
	run := make([]byte, 0, defRunSize)

	for {
		peeked, status := s.Peek()
		if status != StatusGood || !set.Contains(peeked) {
			return string(run), status
		}

		taken, status := s.Next()
		if status != StatusGood || taken != peeked {
			// The source changed from under us.
			s.failed = true
			return string(run), StatusError
		}

		run = append(run, taken)
	}
}

// advance moves the position past the consumed byte.
func (s *Stream) advance(consumed byte) {
	if consumed != '\r' {
		s.next = s.next.Advance(consumed, 0, false)
		return
	}

	follow, status := s.source.Peek()
	if status == StatusError {
		s.failed = true
	}
	s.next = s.next.Advance(consumed, follow, status == StatusGood)
}
