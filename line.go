package lexkit

// lineBounds returns the end of the line content starting at pos and the
// position of the next line. A terminator inside a quoted field does not
// end the line, and a '\r' before a '\n' terminator is not content.
func lineBounds(buf []byte, pos int, d Dialect) (content, next int) {
	term := d.Terminator()
	end := FindChar(buf, pos, term, d)
	if end == NotFound {
		return len(buf), len(buf)
	}
	content = end
	if term == '\n' && content > pos && buf[content-1] == '\r' {
		content--
	}
	return content, end + 1
}

// skipDelimiter advances past one delimiter at pos, or a run of them when
// the dialect is a CSV with Repeat set.
func skipDelimiter(buf []byte, pos int, d Dialect) int {
	delim := d.Delimiter()
	if pos >= len(buf) || buf[pos] != delim {
		return pos
	}
	pos++
	if csv, ok := d.(CSV); ok && csv.Repeat {
		for pos < len(buf) && buf[pos] == delim {
			pos++
		}
	}
	return pos
}

// readValues extracts one value per declared type from line, stopping at
// the first stall. It returns the values, the position after the last
// value and its trailing delimiter, and the stall position or NotFound.
func readValues(line []byte, pos int, types []Type, d Dialect, dst []Variant) ([]Variant, int, int) {
	for _, t := range types {
		if pos >= len(line) {
			if t.IsPrimitive() {
				return dst, pos, pos
			}
			dst = append(dst, Null())
			continue
		}

		next, v := ReadTyped(line, pos, t, d)
		if next == pos && (t.IsPrimitive() || d.IsQuote(line[pos])) {
			return dst, pos, pos
		}
		dst = append(dst, v)
		pos = skipDelimiter(line, next, d)
	}
	return dst, pos, NotFound
}

// ReadLine reads one value per entry of types from the line starting at
// pos and appends them to dst. The returned cursor is always past the
// line's terminator, even when types covers fewer columns than the line
// has, so repeated calls walk a document line by line.
//
// When a value makes no progress, ReadLine returns a *ScanError wrapping
// ErrNoProgress at the stall position together with the values read so
// far. Missing trailing string columns read as null.
func ReadLine(buf []byte, pos int, types []Type, d Dialect, dst []Variant) ([]Variant, int, error) {
	content, next := lineBounds(buf, pos, d)
	dst, _, stall := readValues(buf[:content], pos, types, d, dst)
	if stall != NotFound {
		return dst, next, &ScanError{Pos: stall, Err: ErrNoProgress}
	}
	return dst, next, nil
}

// ReadFields reads one value per entry of types starting at pos without
// discarding the rest of the line. The terminator is consumed only once
// the line's last field has been read, so three calls with a single type
// walk exactly one three-column line.
func ReadFields(buf []byte, pos int, types []Type, d Dialect, dst []Variant) ([]Variant, int, error) {
	content, next := lineBounds(buf, pos, d)
	dst, end, stall := readValues(buf[:content], pos, types, d, dst)
	if stall != NotFound {
		return dst, end, &ScanError{Pos: stall, Err: ErrNoProgress}
	}
	if end >= content && (end == pos || buf[end-1] != d.Delimiter()) {
		return dst, next, nil
	}
	return dst, end, nil
}

// ReadLineStrings splits the line starting at pos on the dialect's
// delimiter, honoring quotes, and appends every field with its quotes
// removed: doubled quotes are collapsed and JSON escapes decoded. The
// cursor is returned past the line's terminator. A malformed JSON escape
// fails with ErrInvalidEscape at the field's opening quote.
func ReadLineStrings(buf []byte, pos int, d Dialect, dst []string) ([]string, int, error) {
	content, next := lineBounds(buf, pos, d)
	line := buf[:content]
	delim := d.Delimiter()

	for {
		if pos < len(line) && d.IsQuote(line[pos]) {
			end := d.Skip(line, pos)
			if end == NotFound {
				return dst, next, &ScanError{Pos: pos, Err: ErrUnterminatedQuote}
			}
			field, err := unquoteField(line[pos:end], d)
			if err != nil {
				return dst, next, &ScanError{Pos: pos, Err: err}
			}
			dst = append(dst, field)
			pos = end
		} else {
			end := FindChar(line, pos, delim, d)
			if end == NotFound {
				end = len(line)
			}
			dst = append(dst, string(line[pos:end]))
			pos = end
		}

		if pos >= len(line) {
			return dst, next, nil
		}
		if line[pos] != delim {
			// Text after a closing quote belongs to the same field.
			end := FindChar(line, pos, delim, d)
			if end == NotFound {
				end = len(line)
			}
			dst[len(dst)-1] += string(line[pos:end])
			pos = end
			if pos >= len(line) {
				return dst, next, nil
			}
		}
		pos = skipDelimiter(line, pos, d)
		if pos >= len(line) {
			if csv, ok := d.(CSV); !ok || !csv.Repeat {
				dst = append(dst, "")
			}
			return dst, next, nil
		}
	}
}

// unquoteField strips the quotes of field. JSON fields are de-escaped,
// the doubling dialects collapse doubled quotes.
func unquoteField(field []byte, d Dialect) (string, error) {
	if d.Kind() == DialectJSON {
		return UnescapeJSON(field[1 : len(field)-1])
	}
	return Unquote(field, field[0]), nil
}

// SplitArgs splits a shell-style argument string on runs of spaces.
// Double-quoted arguments may contain spaces; "" inside them is a quote.
func SplitArgs(s string) ([]string, error) {
	buf := []byte(s)
	pos := SkipSpace(buf, 0)
	if pos == len(buf) {
		return nil, nil
	}
	d := CSV{Delim: ' ', Quote: '"', EOL: '\n', Repeat: true}
	args, _, err := ReadLineStrings(trimRightSpace(buf), pos, d, nil)
	return args, err
}

func trimRightSpace(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == ' ' {
		b = b[:len(b)-1]
	}
	return b
}
