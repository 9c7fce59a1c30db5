package lexkit

import (
	"strconv"
)

// Type is a semantic column type used to declare and infer values.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeBool
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint32
	TypeUint64
	TypeFloat
	TypeDouble
	TypeString
	TypeBinary
	TypeGUID
	TypeAny
)

// Group is the broad lexical family of a Type.
type Group uint8

const (
	GroupNone Group = iota
	GroupBoolean
	GroupInteger
	GroupDecimal
	GroupString
	GroupOther
)

var typeNames = [...]string{
	TypeUnknown: "unknown",
	TypeBool:    "bool",
	TypeInt8:    "int8",
	TypeInt16:   "int16",
	TypeInt32:   "int32",
	TypeInt64:   "int64",
	TypeUint32:  "uint32",
	TypeUint64:  "uint64",
	TypeFloat:   "float",
	TypeDouble:  "double",
	TypeString:  "string",
	TypeBinary:  "binary",
	TypeGUID:    "guid",
	TypeAny:     "any",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "type(" + strconv.Itoa(int(t)) + ")"
}

// ParseType returns the Type named s, as printed by Type.String.
func ParseType(s string) (Type, bool) {
	for t, name := range typeNames {
		if name == s && Type(t) != TypeUnknown {
			return Type(t), true
		}
	}
	return TypeUnknown, false
}

// Group returns the lexical family of t.
func (t Type) Group() Group {
	switch t {
	case TypeBool:
		return GroupBoolean
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64, TypeUint32, TypeUint64:
		return GroupInteger
	case TypeFloat, TypeDouble:
		return GroupDecimal
	case TypeString:
		return GroupString
	case TypeBinary, TypeGUID, TypeAny:
		return GroupOther
	default:
		return GroupNone
	}
}

// IsPrimitive reports whether t is a boolean or numeric type.
func (t Type) IsPrimitive() bool {
	switch t.Group() {
	case GroupBoolean, GroupInteger, GroupDecimal:
		return true
	default:
		return false
	}
}

// Kind identifies which case a Variant holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt64
	KindDouble
	KindBytes  // borrowed sub-range of the scanned buffer
	KindString // owned string
)

// Variant is a loosely typed view of one scanned value. Borrowed byte
// values alias the scanned buffer and are only valid while it is.
type Variant struct {
	kind Kind
	num  int64
	dbl  float64
	raw  []byte
	str  string
}

func Null() Variant                 { return Variant{} }
func BoolValue(b bool) Variant      { return Variant{kind: KindBool, num: b2i(b)} }
func Int64Value(i int64) Variant    { return Variant{kind: KindInt64, num: i} }
func DoubleValue(f float64) Variant { return Variant{kind: KindDouble, dbl: f} }
func BytesValue(b []byte) Variant   { return Variant{kind: KindBytes, raw: b} }
func StringValue(s string) Variant  { return Variant{kind: KindString, str: s} }

func (v Variant) Kind() Kind      { return v.kind }
func (v Variant) IsNull() bool    { return v.kind == KindNull }
func (v Variant) Bool() bool      { return v.num != 0 }
func (v Variant) Int64() int64    { return v.num }
func (v Variant) Double() float64 { return v.dbl }

// Bytes returns the raw bytes of a string value. Owned strings are copied.
func (v Variant) Bytes() []byte {
	switch v.kind {
	case KindBytes:
		return v.raw
	case KindString:
		return []byte(v.str)
	default:
		return nil
	}
}

// String returns the textual form of v. Numbers are formatted, null is "".
func (v Variant) String() string {
	switch v.kind {
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindInt64:
		return strconv.FormatInt(v.num, 10)
	case KindDouble:
		return strconv.FormatFloat(v.dbl, 'g', -1, 64)
	case KindBytes:
		return string(v.raw)
	case KindString:
		return v.str
	default:
		return ""
	}
}

// Owned returns v with any borrowed bytes copied, so it outlives the
// scanned buffer.
func (v Variant) Owned() Variant {
	if v.kind == KindBytes {
		return StringValue(string(v.raw))
	}
	return v
}

// Interface returns v as nil, bool, int64, float64 or string.
func (v Variant) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.Bool()
	case KindInt64:
		return v.num
	case KindDouble:
		return v.dbl
	case KindBytes, KindString:
		return v.String()
	default:
		return nil
	}
}

func b2i(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
