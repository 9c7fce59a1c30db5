package lexkit

import (
	"strconv"
	"unsafe"

	"github.com/biggeezerdevelopment/lexkit/internal/invariant"
	"github.com/biggeezerdevelopment/lexkit/internal/scanner"
)

// maxInt64Digits bounds the literal length ReadInt64 can accumulate
// without overflow.
const maxInt64Digits = 19

// SkipInteger returns the position after the integer literal at pos: an
// optional sign followed by at least one digit. No progress returns pos.
func SkipInteger(buf []byte, pos int) int {
	i := pos
	if i < len(buf) && (buf[i] == '-' || buf[i] == '+') {
		i++
	}
	start := i
	for i < len(buf) && scanner.MinimalClassOf(buf[i]) == scanner.ClassDigit {
		i++
	}
	if i == start {
		return pos
	}
	return i
}

// SkipDecimal returns the position after the decimal literal at pos:
// sign, digits, an optional fraction and an optional exponent. At least
// one digit is required before or after the point.
func SkipDecimal(buf []byte, pos int) int {
	i := pos
	if i < len(buf) && (buf[i] == '-' || buf[i] == '+') {
		i++
	}
	digits := 0
	for i < len(buf) && scanner.MinimalClassOf(buf[i]) == scanner.ClassDigit {
		i++
		digits++
	}
	if i < len(buf) && buf[i] == '.' {
		i++
		for i < len(buf) && scanner.MinimalClassOf(buf[i]) == scanner.ClassDigit {
			i++
			digits++
		}
	}
	if digits == 0 {
		return pos
	}
	if i < len(buf) && (buf[i] == 'e' || buf[i] == 'E') {
		if exp := SkipInteger(buf, i+1); exp > i+1 {
			i = exp
		}
	}
	return i
}

// ReadBool reads the alphanumeric run at pos as a boolean. A run starting
// with '0', 'f' or 'F' is false and anything else is true, so "foo" reads
// false and "2" reads true.
func ReadBool(buf []byte, pos int) (int, bool) {
	end := SkipAlnum(buf, pos)
	if end == pos {
		return pos, false
	}
	switch buf[pos] {
	case '0', 'f', 'F':
		return end, false
	default:
		return end, true
	}
}

// ReadInt64 reads the integer literal at pos by digit accumulation. There
// is no overflow check: callers bound the literal length.
func ReadInt64(buf []byte, pos int) (int, int64) {
	end := SkipInteger(buf, pos)
	if end == pos {
		return pos, 0
	}

	i := pos
	negative := false
	switch buf[i] {
	case '-':
		negative = true
		i++
	case '+':
		i++
	}
	invariant.Precondition(end-i <= maxInt64Digits, "ReadInt64: %d-digit literal at %d overflows", end-i, pos)

	var value int64
	for ; i < end; i++ {
		value = value*10 + int64(buf[i]-'0')
	}
	if negative {
		value = -value
	}
	return end, value
}

// ReadDouble reads the decimal literal at pos.
func ReadDouble(buf []byte, pos int) (int, float64) {
	end := SkipDecimal(buf, pos)
	if end == pos {
		return pos, 0
	}
	f, err := strconv.ParseFloat(unsafeString(buf[pos:end]), 64)
	if err != nil {
		// Out of range literals still yield ±Inf; anything else is no progress.
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return pos, 0
		}
	}
	return end, f
}

// ReadQuoted reads the quoted literal at pos using the doubling convention
// and returns its contents without the surrounding quotes. Doubled quotes
// are left as they are; see Unquote.
func ReadQuoted(buf []byte, pos int) (int, []byte) {
	if pos >= len(buf) {
		return pos, nil
	}
	end := SkipQuoted(buf, pos)
	if end == NotFound {
		return pos, nil
	}
	return end, buf[pos+1 : end-1 : end-1]
}

// ReadTyped reads one value of type t at pos. String, binary and other
// non-primitive types read a quoted literal when pos is on a quote of d and
// otherwise borrow the bytes up to the next delimiter or terminator.
func ReadTyped(buf []byte, pos int, t Type, d Dialect) (int, Variant) {
	switch t.Group() {
	case GroupBoolean:
		next, b := ReadBool(buf, pos)
		return next, BoolValue(b)
	case GroupInteger:
		next, i := ReadInt64(buf, pos)
		return next, Int64Value(i)
	case GroupDecimal:
		next, f := ReadDouble(buf, pos)
		return next, DoubleValue(f)
	}

	if pos < len(buf) && d.IsQuote(buf[pos]) {
		end := d.Skip(buf, pos)
		if end == NotFound {
			return pos, Null()
		}
		return end, BytesValue(buf[pos+1 : end-1 : end-1])
	}
	end := fieldEnd(buf, pos, d)
	return end, BytesValue(buf[pos:end:end])
}

// fieldEnd returns the position of the delimiter or terminator ending the
// unquoted field at pos, or len(buf).
func fieldEnd(buf []byte, pos int, d Dialect) int {
	delim, term := d.Delimiter(), d.Terminator()
	for i := pos; i < len(buf); i++ {
		if c := buf[i]; c == delim || c == term {
			return i
		}
	}
	return len(buf)
}

// unsafeString converts b to a string without copying. The result must
// not outlive b.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
