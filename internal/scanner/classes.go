package scanner

// Class is a bitmask of lexical classes for a single byte.
type Class uint8

// Character classes. In the combined table the bits accumulate, so a digit
// carries every class it may appear in; in the minimal table each byte has
// at most one bit set.
const (
	ClassAlnum      Class = 1 << 0 // letters, digits, '_'
	ClassDigit      Class = 1 << 1 // 0-9
	ClassInteger    Class = 1 << 2 // may appear in an integer literal
	ClassDecimal    Class = 1 << 3 // may appear in a decimal literal
	ClassScientific Class = 1 << 4 // may appear in a scientific literal
	ClassHex        Class = 1 << 5 // 0-9, a-f, A-F
	ClassSpace      Class = 1 << 6 // space, tab, LF, CR
	ClassQuote      Class = 1 << 7 // ', ", `
)

// Has reports whether c shares any bit with mask.
func (c Class) Has(mask Class) bool {
	return c&mask != 0
}

// JSONClass classifies bytes by their structural role in JSON text.
type JSONClass uint16

const (
	JSONObjectOpen JSONClass = 1 << iota
	JSONObjectClose
	JSONArrayOpen
	JSONArrayClose
	JSONString
	JSONEscape
	JSONDivider
	JSONSeparator
	JSONValue
	JSONSpace
)

// Has reports whether c shares any bit with mask.
func (c JSONClass) Has(mask JSONClass) bool {
	return c&mask != 0
}

// BlockSize is the width of one aligned block in the accelerated search.
const BlockSize = 32

// Lookup tables, built once during package initialization and never
// written afterwards.
var (
	combinedLookup = buildCombined()
	minimalLookup  = buildMinimal()
	jsonLookup     = buildJSON()
)

// ClassOf returns the combined class bitmask for c.
func ClassOf(c byte) Class {
	return combinedLookup[c]
}

// MinimalClassOf returns the single class bit for c, or zero.
func MinimalClassOf(c byte) Class {
	return minimalLookup[c]
}

// JSONClassOf returns the JSON structural role of c.
func JSONClassOf(c byte) JSONClass {
	return jsonLookup[c]
}

// IsSpace reports whether c is one of space, tab, LF or CR.
func IsSpace(c byte) bool {
	return combinedLookup[c]&ClassSpace != 0
}

func buildCombined() (t [256]Class) {
	for c := '0'; c <= '9'; c++ {
		t[c] = ClassAlnum | ClassDigit | ClassInteger | ClassDecimal | ClassScientific | ClassHex
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = ClassAlnum
		t[c-'a'+'A'] = ClassAlnum
	}
	for c := 'a'; c <= 'f'; c++ {
		t[c] |= ClassHex
		t[c-'a'+'A'] |= ClassHex
	}
	t['e'] |= ClassScientific
	t['E'] |= ClassScientific
	t['_'] = ClassAlnum
	t['+'] = ClassInteger | ClassDecimal | ClassScientific
	t['-'] = ClassInteger | ClassDecimal | ClassScientific
	t['.'] = ClassDecimal | ClassScientific
	for _, c := range []byte{' ', '\t', '\n', '\r'} {
		t[c] = ClassSpace
	}
	for _, c := range []byte{'\'', '"', '`'} {
		t[c] = ClassQuote
	}
	return t
}

func buildMinimal() (t [256]Class) {
	for c := 'a'; c <= 'z'; c++ {
		t[c] = ClassAlnum
		t[c-'a'+'A'] = ClassAlnum
	}
	for c := 'a'; c <= 'f'; c++ {
		t[c] = ClassHex
		t[c-'a'+'A'] = ClassHex
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = ClassDigit
	}
	t['e'] = ClassScientific
	t['E'] = ClassScientific
	t['_'] = ClassAlnum
	t['+'] = ClassInteger
	t['-'] = ClassInteger
	t['.'] = ClassDecimal
	for _, c := range []byte{' ', '\t', '\n', '\r'} {
		t[c] = ClassSpace
	}
	for _, c := range []byte{'\'', '"', '`'} {
		t[c] = ClassQuote
	}
	return t
}

func buildJSON() (t [256]JSONClass) {
	t['{'] = JSONObjectOpen
	t['}'] = JSONObjectClose
	t['['] = JSONArrayOpen
	t[']'] = JSONArrayClose
	t['"'] = JSONString
	t['\''] = JSONString
	t['\\'] = JSONEscape
	t[':'] = JSONDivider
	t[','] = JSONSeparator
	for c := '0'; c <= '9'; c++ {
		t[c] = JSONValue
	}
	for _, c := range []byte{'-', 't', 'f', 'n'} {
		t[c] = JSONValue
	}
	for _, c := range []byte{' ', '\t', '\n', '\r'} {
		t[c] = JSONSpace
	}
	return t
}
