package cdf

import (
	"bytes"
	"fmt"
)

// Scanner walks a buffer left to right yielding every offset where the marker
// occurs. Matches may overlap: a match at offset k does not exclude one at
// k+1. The scanner is restartable via Reset, and finding nothing is a normal
// outcome, not an error.
type Scanner struct {
	data   []byte
	marker []byte
	next   int
}

// NewScanner builds a scanner for marker over data. An empty marker is an
// input-contract violation.
func NewScanner(data, marker []byte) (*Scanner, error) {
	if len(marker) == 0 {
		return nil, fmt.Errorf("%w: empty marker", ErrInvalidDefinition)
	}
	return &Scanner{data: data, marker: marker}, nil
}

// Next returns the next match offset in ascending order. ok is false once the
// buffer is exhausted.
func (s *Scanner) Next() (off int, ok bool) {
	if s.next > len(s.data) {
		return 0, false
	}
	i := bytes.Index(s.data[s.next:], s.marker)
	if i < 0 {
		s.next = len(s.data) + 1
		return 0, false
	}
	off = s.next + i
	// Advance one byte only, so overlapping matches are found.
	s.next = off + 1
	return off, true
}

// Reset rewinds the scanner to the start of the buffer.
func (s *Scanner) Reset() { s.next = 0 }

// FindAll returns every match offset in ascending order. The result is empty
// (not nil-checked by callers) when the marker does not occur.
func FindAll(data, marker []byte) ([]int, error) {
	s, err := NewScanner(data, marker)
	if err != nil {
		return nil, err
	}
	var out []int
	for off, ok := s.Next(); ok; off, ok = s.Next() {
		out = append(out, off)
	}
	return out, nil
}
