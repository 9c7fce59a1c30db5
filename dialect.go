package lexkit

// DialectKind names one of the supported textual dialects.
type DialectKind uint8

const (
	DialectCSV DialectKind = iota + 1
	DialectSQL
	DialectJSON
	DialectQueryString
)

func (k DialectKind) String() string {
	switch k {
	case DialectCSV:
		return "csv"
	case DialectSQL:
		return "sql"
	case DialectJSON:
		return "json"
	case DialectQueryString:
		return "querystring"
	default:
		return "unknown"
	}
}

// Dialect carries the delimiter, terminator and quoting rules of one
// textual dialect. Implementations are small values that are never mutated
// during a scan and may be copied freely.
type Dialect interface {
	Kind() DialectKind
	// Delimiter separates values within a record.
	Delimiter() byte
	// Terminator ends a record.
	Terminator() byte
	// IsQuote reports whether c opens a quoted span.
	IsQuote(c byte) bool
	// Skip returns the position just after the quoted span opening at
	// buf[pos], or NotFound if the span is not terminated.
	Skip(buf []byte, pos int) int
}

// quoter is implemented by the built-in quoting dialects. FindChar uses it
// to jump between candidate bytes with the block search.
type quoter interface {
	quotes() (byte, byte)
}

// CSV is the comma-separated dialect. Quotes inside a quoted field are
// escaped by doubling. Zero fields take the DefaultCSV values.
type CSV struct {
	Delim byte
	Quote byte
	EOL   byte
	// Repeat treats a run of delimiters as a single delimiter.
	Repeat bool
}

// DefaultCSV returns the RFC 4180 style dialect: ',' '"' and '\n'.
func DefaultCSV() CSV {
	return CSV{Delim: ',', Quote: '"', EOL: '\n'}
}

func (d CSV) Kind() DialectKind { return DialectCSV }

func (d CSV) Delimiter() byte {
	if d.Delim == 0 {
		return ','
	}
	return d.Delim
}

func (d CSV) Terminator() byte {
	if d.EOL == 0 {
		return '\n'
	}
	return d.EOL
}

func (d CSV) quote() byte {
	if d.Quote == 0 {
		return '"'
	}
	return d.Quote
}

func (d CSV) IsQuote(c byte) bool { return c == d.quote() }

func (d CSV) Skip(buf []byte, pos int) int { return SkipQuoted(buf, pos) }

func (d CSV) quotes() (byte, byte) { return d.quote(), d.quote() }

// SQL is the SQL dialect with two quote characters, both escaped by
// doubling. Zero fields take the DefaultSQL values.
type SQL struct {
	Quote    byte
	AltQuote byte
}

// DefaultSQL quotes strings with ' and identifiers with `.
func DefaultSQL() SQL {
	return SQL{Quote: '\'', AltQuote: '`'}
}

func (d SQL) Kind() DialectKind   { return DialectSQL }
func (d SQL) Delimiter() byte     { return ',' }
func (d SQL) Terminator() byte    { return ';' }
func (d SQL) IsQuote(c byte) bool { return c == d.quote() || c == d.altQuote() }

func (d SQL) quote() byte {
	if d.Quote == 0 {
		return '\''
	}
	return d.Quote
}

func (d SQL) altQuote() byte {
	if d.AltQuote == 0 {
		return '`'
	}
	return d.AltQuote
}

func (d SQL) Skip(buf []byte, pos int) int { return SkipQuoted(buf, pos) }

func (d SQL) quotes() (byte, byte) { return d.quote(), d.altQuote() }

// JSON is the JSON dialect: backslash escapes inside strings, with an
// optional second quote character. Zero fields take the DefaultJSON values.
type JSON struct {
	Quote    byte
	AltQuote byte
}

// DefaultJSON quotes with " and accepts ' as the alternative.
func DefaultJSON() JSON {
	return JSON{Quote: '"', AltQuote: '\''}
}

func (d JSON) Kind() DialectKind   { return DialectJSON }
func (d JSON) Delimiter() byte     { return ',' }
func (d JSON) Terminator() byte    { return '}' }
func (d JSON) IsQuote(c byte) bool { return c == d.quote() || c == d.altQuote() }

func (d JSON) quote() byte {
	if d.Quote == 0 {
		return '"'
	}
	return d.Quote
}

func (d JSON) altQuote() byte {
	if d.AltQuote == 0 {
		return '\''
	}
	return d.AltQuote
}

func (d JSON) quotes() (byte, byte) { return d.quote(), d.altQuote() }

// Skip returns the position after the closing quote. SkipEscaped stops on
// the closing quote itself.
func (d JSON) Skip(buf []byte, pos int) int {
	end := SkipEscaped(buf, pos)
	if end == NotFound {
		return NotFound
	}
	return end + 1
}

// QueryString is the k=v&k=v dialect. It has no quoting.
type QueryString struct{}

// Divider separates a key from its value.
const Divider = '='

func (QueryString) Kind() DialectKind            { return DialectQueryString }
func (QueryString) Delimiter() byte              { return '&' }
func (QueryString) Terminator() byte             { return 0 }
func (QueryString) IsQuote(byte) bool            { return false }
func (QueryString) Skip(buf []byte, pos int) int { return NotFound }

var (
	_ Dialect = CSV{}
	_ Dialect = SQL{}
	_ Dialect = JSON{}
	_ Dialect = QueryString{}
)
