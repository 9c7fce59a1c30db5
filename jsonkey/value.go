package jsonkey

import (
	"bytes"

	"github.com/biggeezerdevelopment/lexkit"
	"github.com/biggeezerdevelopment/lexkit/internal/scanner"
)

// maxIntDigits is the longest digit run read as int64; longer integers
// read as double.
const maxIntDigits = 18

// ReadValueAt reads the JSON value starting at pos and returns it with the
// position after it. Strings without escapes borrow buf; escaped strings
// are decoded into an owned string. A number is a double when it contains
// a '.', otherwise an int64. Objects and arrays are returned as their raw
// text. When nothing can be read the position is returned unchanged.
func ReadValueAt(buf []byte, pos int) (lexkit.Variant, int) {
	if pos < 0 || pos >= len(buf) {
		return lexkit.Null(), pos
	}

	c := buf[pos]
	switch {
	case dialect.IsQuote(c):
		return readString(buf, pos)
	case c == '{' || c == '[':
		end := skipComposite(buf, pos)
		if end == lexkit.NotFound {
			return lexkit.Null(), pos
		}
		return lexkit.BytesValue(buf[pos:end:end]), end
	case c == 't' && bytes.HasPrefix(buf[pos:], []byte("true")):
		return lexkit.BoolValue(true), pos + 4
	case c == 'f' && bytes.HasPrefix(buf[pos:], []byte("false")):
		return lexkit.BoolValue(false), pos + 5
	case c == 'n' && bytes.HasPrefix(buf[pos:], []byte("null")):
		return lexkit.Null(), pos + 4
	}
	return readNumber(buf, pos)
}

func readString(buf []byte, pos int) (lexkit.Variant, int) {
	end := lexkit.SkipEscaped(buf, pos)
	if end == lexkit.NotFound {
		return lexkit.Null(), pos
	}
	inner := buf[pos+1 : end : end]
	if bytes.IndexByte(inner, '\\') < 0 {
		return lexkit.BytesValue(inner), end + 1
	}
	s, err := lexkit.UnescapeJSON(inner)
	if err != nil {
		return lexkit.Null(), pos
	}
	return lexkit.StringValue(s), end + 1
}

func readNumber(buf []byte, pos int) (lexkit.Variant, int) {
	end := lexkit.SkipDecimal(buf, pos)
	if end == pos {
		return lexkit.Null(), pos
	}
	lit := buf[pos:end]
	if bytes.IndexByte(lit, '.') >= 0 || digits(lit) > maxIntDigits {
		next, f := lexkit.ReadDouble(buf, pos)
		return lexkit.DoubleValue(f), next
	}
	next, i := lexkit.ReadInt64(buf, pos)
	return lexkit.Int64Value(i), next
}

func digits(lit []byte) int {
	n := 0
	for _, c := range lit {
		if scanner.MinimalClassOf(c) == scanner.ClassDigit {
			n++
		}
	}
	return n
}

// skipComposite returns the position after the object or array opening at
// buf[pos], or lexkit.NotFound if it is not closed.
func skipComposite(buf []byte, pos int) int {
	depth := 0
	for i := pos; i < len(buf); i++ {
		class := scanner.JSONClassOf(buf[i])
		switch {
		case class.Has(scanner.JSONObjectOpen | scanner.JSONArrayOpen):
			depth++
		case class.Has(scanner.JSONObjectClose | scanner.JSONArrayClose):
			depth--
			if depth == 0 {
				return i + 1
			}
		case class.Has(scanner.JSONString):
			end := lexkit.SkipEscaped(buf, i)
			if end == lexkit.NotFound {
				return lexkit.NotFound
			}
			i = end
		}
	}
	return lexkit.NotFound
}
