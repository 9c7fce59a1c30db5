package lexkit

import (
	"bytes"

	"github.com/biggeezerdevelopment/lexkit/internal/invariant"
	"github.com/biggeezerdevelopment/lexkit/internal/scanner"
)

// SkipQuoted skips the quoted span opening at buf[pos] using the doubling
// convention of CSV and SQL: a quote immediately followed by the same quote
// stays inside the span. It returns the position just after the closing
// quote, or NotFound if the span never closes.
//
// Precondition: buf[pos] is the opening quote.
func SkipQuoted(buf []byte, pos int) int {
	invariant.Cursor(buf, pos, "SkipQuoted")
	q := buf[pos]

	i := pos + 1
	for {
		j := scanner.IndexByte(buf[i:], q)
		if j < 0 {
			return NotFound
		}
		i += j + 1
		if i < len(buf) && buf[i] == q {
			i++
			continue
		}
		return i
	}
}

// SkipEscaped skips the string opening at buf[pos] using the backslash
// convention of JSON. Unlike SkipQuoted it returns the position of the
// closing quote itself, so callers can inspect it. NotFound if the string
// is not terminated.
//
// Precondition: buf[pos] is the opening quote.
func SkipEscaped(buf []byte, pos int) int {
	invariant.Cursor(buf, pos, "SkipEscaped")
	q := buf[pos]

	for i := pos + 1; i < len(buf); i++ {
		switch buf[i] {
		case '\\':
			i++
		case q:
			return i
		}
	}
	return NotFound
}

// FindChar returns the position of the first target byte at or after pos
// that is not inside a quoted span of d. Quoted spans are skipped as a
// unit. NotFound if no such byte exists, including when the scan runs into
// an unterminated quote.
func FindChar(buf []byte, pos int, target byte, d Dialect) int {
	if pos >= len(buf) {
		return NotFound
	}
	if _, ok := d.(QueryString); ok {
		return offset(pos, scanner.IndexByte(buf[pos:], target))
	}
	if q, ok := d.(quoter); ok {
		q1, q2 := q.quotes()
		return findCharQuoted(buf, pos, target, q1, q2, d)
	}

	for i := pos; i < len(buf); {
		c := buf[i]
		switch {
		case c == target:
			return i
		case d.IsQuote(c):
			i = d.Skip(buf, i)
			if i == NotFound {
				return NotFound
			}
		default:
			i++
		}
	}
	return NotFound
}

// findCharQuoted is FindChar for dialects whose quote bytes are known. Each
// step block-searches for the target, then for the nearest quote before it.
// A target that is also a quote byte matches as the target.
func findCharQuoted(buf []byte, pos int, target, q1, q2 byte, d Dialect) int {
	for i := pos; i < len(buf); {
		rest := buf[i:]
		hit := scanner.IndexByte(rest, target)
		limit := len(rest)
		if hit >= 0 {
			limit = hit
		}
		if j := scanner.IndexByte(rest[:limit], q1); j >= 0 {
			limit = j
		}
		if q2 != q1 {
			if j := scanner.IndexByte(rest[:limit], q2); j >= 0 {
				limit = j
			}
		}
		if limit == hit {
			return i + hit
		}
		if limit == len(rest) {
			return NotFound
		}
		if i = d.Skip(buf, i+limit); i == NotFound {
			return NotFound
		}
	}
	return NotFound
}

// FindSubstring returns the position of the first occurrence of needle at
// or after pos that does not start inside a quoted span of d.
func FindSubstring(buf []byte, pos int, needle []byte, d Dialect) int {
	if len(needle) == 0 {
		if pos <= len(buf) {
			return pos
		}
		return NotFound
	}

	for i := pos; ; i++ {
		i = FindChar(buf, i, needle[0], d)
		if i == NotFound {
			return NotFound
		}
		if bytes.HasPrefix(buf[i:], needle) {
			return i
		}
		if d.IsQuote(buf[i]) {
			if i = d.Skip(buf, i); i == NotFound {
				return NotFound
			}
			i--
		}
	}
}

// SkipSpace returns the position of the first non-whitespace byte at or
// after pos, or len(buf).
func SkipSpace(buf []byte, pos int) int {
	for pos < len(buf) && scanner.IsSpace(buf[pos]) {
		pos++
	}
	return pos
}

// SkipAlnum returns the position after the run of letters, digits and
// underscores starting at pos.
func SkipAlnum(buf []byte, pos int) int {
	for pos < len(buf) && scanner.ClassOf(buf[pos]).Has(scanner.ClassAlnum) {
		pos++
	}
	return pos
}

// Unquote strips the surrounding quotes from field if it starts with quote
// and collapses every doubled quote inside it. Fields without the leading
// quote are returned unchanged.
func Unquote(field []byte, quote byte) string {
	if len(field) < 2 || field[0] != quote || field[len(field)-1] != quote {
		return string(field)
	}
	inner := field[1 : len(field)-1]
	if bytes.IndexByte(inner, quote) < 0 {
		return string(inner)
	}

	out := make([]byte, 0, len(inner))
	for i := 0; i < len(inner); i++ {
		out = append(out, inner[i])
		if inner[i] == quote && i+1 < len(inner) && inner[i+1] == quote {
			i++
		}
	}
	return string(out)
}

func offset(base, i int) int {
	if i < 0 {
		return NotFound
	}
	return base + i
}
