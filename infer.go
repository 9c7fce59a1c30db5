package lexkit

import (
	"bytes"

	"github.com/biggeezerdevelopment/lexkit/internal/scanner"
)

// inferLimit is the number of leading bytes InferType classifies.
const inferLimit = 20

const (
	integerShape = scanner.ClassDigit | scanner.ClassInteger
	decimalShape = integerShape | scanner.ClassDecimal | scanner.ClassScientific
	wordShape    = scanner.ClassAlnum | scanner.ClassHex | scanner.ClassScientific
)

// accepts returns the minimal classes a literal of group g may contain.
func accepts(g Group) scanner.Class {
	switch g {
	case GroupInteger:
		return integerShape
	case GroupDecimal:
		return decimalShape
	case GroupBoolean:
		return wordShape | scanner.ClassDigit
	case GroupString, GroupOther:
		return 0xFF
	default:
		return 0
	}
}

// InferType picks the most specific candidate whose group fits the shape
// of literal. It classifies at most the first 20 bytes. A byte that fits no
// candidate, or a shape no primitive candidate matches, falls back to the
// first non-primitive candidate, or TypeUnknown if there is none.
func InferType(literal []byte, candidates []Type) Type {
	var allowed scanner.Class
	for _, t := range candidates {
		allowed |= accepts(t.Group())
	}

	n := len(literal)
	if n > inferLimit {
		n = inferLimit
	}

	var shape scanner.Class
	for _, c := range literal[:n] {
		class := scanner.MinimalClassOf(c)
		if class&allowed == 0 {
			return fallback(candidates)
		}
		shape |= class
	}

	digits := shape&scanner.ClassDigit != 0
	switch {
	case digits && shape&^integerShape == 0:
		if t := first(candidates, GroupInteger); t != TypeUnknown {
			return t
		}
		if t := first(candidates, GroupDecimal); t != TypeUnknown {
			return t
		}
	case digits && shape&^decimalShape == 0:
		if t := first(candidates, GroupDecimal); t != TypeUnknown {
			return t
		}
	case shape&^wordShape == 0 && isBoolWord(literal):
		if t := first(candidates, GroupBoolean); t != TypeUnknown {
			return t
		}
	}
	return fallback(candidates)
}

func first(candidates []Type, g Group) Type {
	for _, t := range candidates {
		if t.Group() == g {
			return t
		}
	}
	return TypeUnknown
}

func fallback(candidates []Type) Type {
	for _, t := range candidates {
		if t != TypeUnknown && !t.IsPrimitive() {
			return t
		}
	}
	return TypeUnknown
}

func isBoolWord(b []byte) bool {
	return bytes.EqualFold(b, []byte("true")) || bytes.EqualFold(b, []byte("false"))
}
