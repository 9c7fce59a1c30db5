// Package jsonkey finds keys and reads values in JSON text without
// building a document tree. Navigation walks the buffer once, tracking
// nesting depth, and compares only the keys of the current object.
package jsonkey

import (
	"github.com/biggeezerdevelopment/lexkit"
	"github.com/biggeezerdevelopment/lexkit/internal/scanner"
)

var dialect = lexkit.DefaultJSON()

// NextKey returns the position of the opening quote of the first key
// equal to name in the object being scanned, or lexkit.NotFound. When pos
// is on a '{' the scan starts inside that object. Keys of nested objects
// and arrays are skipped. Closing the current object does not stop the
// scan: it continues with the keys of the enclosing object.
func NextKey(buf []byte, pos int, name string) int {
	return nextKey(buf, pos, name, false)
}

// NextKeyScoped is NextKey restricted to the current object: it returns
// lexkit.NotFound as soon as the scan leaves it.
func NextKeyScoped(buf []byte, pos int, name string) int {
	return nextKey(buf, pos, name, true)
}

func nextKey(buf []byte, pos int, name string, scoped bool) int {
	if pos < 0 {
		return lexkit.NotFound
	}
	if pos < len(buf) && buf[pos] == '{' {
		pos++
	}

	depth := 0
	for i := pos; i < len(buf); i++ {
		class := scanner.JSONClassOf(buf[i])
		switch {
		case class.Has(scanner.JSONObjectOpen | scanner.JSONArrayOpen):
			depth++
		case class.Has(scanner.JSONObjectClose | scanner.JSONArrayClose):
			depth--
			if depth < 0 {
				if scoped {
					return lexkit.NotFound
				}
				depth = 0
			}
		case class.Has(scanner.JSONString):
			end := lexkit.SkipEscaped(buf, i)
			if end == lexkit.NotFound {
				return lexkit.NotFound
			}
			if depth == 0 && isKey(buf, end) && string(buf[i+1:end]) == name {
				return i
			}
			i = end
		}
	}
	return lexkit.NotFound
}

// isKey reports whether the string closing at buf[end] is followed by a
// ':' divider.
func isKey(buf []byte, end int) bool {
	j := lexkit.SkipSpace(buf, end+1)
	return j < len(buf) && scanner.JSONClassOf(buf[j]).Has(scanner.JSONDivider)
}

// FindKeyValue returns the position of the first byte of the value of the
// key whose opening quote is at keyPos, or lexkit.NotFound when the key is
// not followed by a divider and a value.
func FindKeyValue(buf []byte, keyPos int) int {
	if keyPos < 0 || keyPos >= len(buf) || !dialect.IsQuote(buf[keyPos]) {
		return lexkit.NotFound
	}
	end := lexkit.SkipEscaped(buf, keyPos)
	if end == lexkit.NotFound {
		return lexkit.NotFound
	}
	j := lexkit.SkipSpace(buf, end+1)
	if j >= len(buf) || buf[j] != ':' {
		return lexkit.NotFound
	}
	j = lexkit.SkipSpace(buf, j+1)
	if j >= len(buf) {
		return lexkit.NotFound
	}
	return j
}

// Lookup returns the value of the top-level key name of the JSON object in
// buf.
func Lookup(buf []byte, name string) (lexkit.Variant, bool) {
	return LookupPath(buf, name)
}

// LookupPath follows names through nested objects and returns the value at
// the end of the path. An empty path returns the whole document value.
func LookupPath(buf []byte, names ...string) (lexkit.Variant, bool) {
	pos := lexkit.SkipSpace(buf, 0)
	for _, name := range names {
		if pos >= len(buf) || buf[pos] != '{' {
			return lexkit.Null(), false
		}
		key := NextKeyScoped(buf, pos, name)
		if key == lexkit.NotFound {
			return lexkit.Null(), false
		}
		if pos = FindKeyValue(buf, key); pos == lexkit.NotFound {
			return lexkit.Null(), false
		}
	}

	v, next := ReadValueAt(buf, pos)
	if next == pos {
		return lexkit.Null(), false
	}
	return v, true
}
