package lexkit

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// UnescapeJSON decodes the backslash escapes of a JSON string body, the
// bytes between the quotes. A quote of either kind may be escaped. A
// malformed escape fails with ErrInvalidEscape.
func UnescapeJSON(b []byte) (string, error) {
	buf := make([]byte, 0, len(b))

	for i := 0; i < len(b); i++ {
		if b[i] != '\\' {
			buf = append(buf, b[i])
			continue
		}

		if i+1 >= len(b) {
			return "", ErrInvalidEscape
		}

		i++
		switch b[i] {
		case '"', '\'', '\\', '/':
			buf = append(buf, b[i])
		case 'b':
			buf = append(buf, '\b')
		case 'f':
			buf = append(buf, '\f')
		case 'n':
			buf = append(buf, '\n')
		case 'r':
			buf = append(buf, '\r')
		case 't':
			buf = append(buf, '\t')
		case 'u':
			r, ok := hex4(b, i+1)
			if !ok {
				return "", ErrInvalidEscape
			}
			i += 4
			if utf16.IsSurrogate(r) {
				if lo, ok := hex4(b, i+3); ok && i+2 < len(b) && b[i+1] == '\\' && b[i+2] == 'u' {
					if pair := utf16.DecodeRune(r, lo); pair != utf8.RuneError {
						r = pair
						i += 6
					}
				}
			}
			buf = utf8.AppendRune(buf, r)
		default:
			return "", ErrInvalidEscape
		}
	}

	return string(buf), nil
}

// hex4 decodes the four hex digits at b[i:i+4].
func hex4(b []byte, i int) (rune, bool) {
	if i < 0 || i+4 > len(b) {
		return 0, false
	}
	v, err := strconv.ParseUint(string(b[i:i+4]), 16, 16)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
