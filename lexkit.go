// Package lexkit is a dialect-aware byte scanning and tokenization engine.
//
// Every primitive walks a borrowed []byte starting at an int cursor and
// returns a new cursor. The range end is len(buf); reslice to bound a scan.
// No primitive keeps or mutates the bytes it is given, and none allocates
// except to return an owned value (a de-escaped string, a value slice).
//
// Scan and skip primitives report failure with NotFound. Readers that
// cannot consume a literal return the cursor unchanged. Only the line
// tokenizer and the query-string reader return errors, as *ScanError
// carrying the byte position of the failure.
package lexkit

import (
	"errors"
	"fmt"
)

// NotFound is returned by scan and skip primitives when the target is absent
// or a quoted span is not terminated before the end of the range.
const NotFound = -1

var (
	ErrNoProgress        = errors.New("value extraction made no progress")
	ErrUnterminatedQuote = errors.New("unterminated quoted field")
	ErrMissingKey        = errors.New("value without a key")
	ErrInvalidEscape     = errors.New("invalid escape sequence")
)

// ScanError reports the byte position where tokenizing stopped.
type ScanError struct {
	Pos int
	Err error
}

func (e *ScanError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("lexkit: %v at byte %d", e.Err, e.Pos)
}

// Unwrap returns the underlying error so ScanError works with errors.Is.
func (e *ScanError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Span is an immutable sub-range [Start, End) of a borrowed buffer.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether s covers no bytes.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Valid reports whether s lies within buf.
func (s Span) Valid(buf []byte) bool {
	return s.Start >= 0 && s.Start <= s.End && s.End <= len(buf)
}

// Bytes returns the bytes of buf covered by s, or nil if s is not valid
// for buf. The result aliases buf.
func (s Span) Bytes(buf []byte) []byte {
	if !s.Valid(buf) {
		return nil
	}
	return buf[s.Start:s.End:s.End]
}
