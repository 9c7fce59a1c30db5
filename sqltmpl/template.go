// Package sqltmpl renders SQL text: literal escaping for scalar values,
// {placeholder} substitution that leaves quoted SQL constants untouched,
// and chunked bulk statements.
package sqltmpl

import (
	"reflect"
	"strconv"

	"github.com/biggeezerdevelopment/lexkit"
	"github.com/biggeezerdevelopment/lexkit/internal/scanner"
)

// Options controls Replace.
type Options struct {
	// KeepUnmatched leaves {name} in the output when name is unbound or
	// bound to null, so a template can be filled over several passes.
	KeepUnmatched bool
}

// dialect locates placeholders outside of SQL string and identifier
// quotes.
var dialect = lexkit.DefaultSQL()

// Replace substitutes the placeholders of src with values from b:
//
//	{}       the next positional value
//	{n}      the positional value at index n, counting from zero
//	{name}   the value bound to name
//	{=...}   any of the above, substituted without quoting
//
// Braces inside '...' or `...` spans are copied verbatim. A span that
// never closes fails with ErrUnterminatedQuote at the opening quote. An
// unbound name fails with a *TemplateError wrapping ErrUnbound unless
// opts.KeepUnmatched is set.
func Replace(src string, b *Bindings, opts Options) (string, error) {
	buf := []byte(src)
	e := newEncoder()
	defer e.release()

	next := 0
	pos := 0
	for pos < len(buf) {
		open := lexkit.FindChar(buf, pos, '{', dialect)
		if open == lexkit.NotFound {
			if q := openQuote(buf, pos); q != lexkit.NotFound {
				return "", &TemplateError{Pos: q, Err: ErrUnterminatedQuote}
			}
			break
		}
		e.buf = append(e.buf, buf[pos:open]...)

		end := scanner.IndexByte(buf[open+1:], '}')
		if end < 0 {
			return "", &TemplateError{Pos: open, Err: ErrUnterminatedPlaceholder}
		}
		end += open + 1

		name := src[open+1 : end]
		raw := len(name) > 0 && name[0] == '='
		if raw {
			name = name[1:]
		}

		v, ok := resolve(b, name, &next)
		if !ok || (opts.KeepUnmatched && isNull(v)) {
			if !opts.KeepUnmatched {
				return "", &TemplateError{Pos: open, Name: name, Suggestion: b.suggest(name), Err: ErrUnbound}
			}
			e.buf = append(e.buf, buf[open:end+1]...)
			pos = end + 1
			continue
		}

		var err error
		if e.buf, err = AppendValue(e.buf, v, raw); err != nil {
			return "", &TemplateError{Pos: open, Name: name, Err: err}
		}
		pos = end + 1
	}
	if pos < len(buf) {
		e.buf = append(e.buf, buf[pos:]...)
	}
	return string(e.buf), nil
}

// resolve finds the value a placeholder name refers to. An empty name takes
// the positional value at *next and advances it.
func resolve(b *Bindings, name string, next *int) (any, bool) {
	if name == "" {
		v, ok := b.At(*next)
		if ok {
			*next++
		}
		return v, ok
	}
	if isIndex(name) {
		i, err := strconv.Atoi(name)
		if err != nil {
			return nil, false
		}
		return b.At(i)
	}
	return b.Lookup(name)
}

func isIndex(name string) bool {
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

// openQuote returns the position of the first quote at or after pos whose
// span never closes, or NotFound.
func openQuote(buf []byte, pos int) int {
	for i := pos; i < len(buf); {
		if !dialect.IsQuote(buf[i]) {
			i++
			continue
		}
		end := dialect.Skip(buf, i)
		if end == lexkit.NotFound {
			return i
		}
		i = end
	}
	return lexkit.NotFound
}

// isNull reports whether v renders as NULL.
func isNull(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case lexkit.Variant:
		return x.IsNull()
	}
	rv := reflect.ValueOf(v)
	return (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && rv.IsNil()
}
