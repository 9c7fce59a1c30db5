package sqltmpl

import (
	"encoding/hex"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/biggeezerdevelopment/lexkit"
)

type encoder struct {
	buf []byte
}

var encoderPool = sync.Pool{
	New: func() any {
		return &encoder{
			buf: make([]byte, 0, 1024),
		}
	},
}

func newEncoder() *encoder {
	e := encoderPool.Get().(*encoder)
	e.buf = e.buf[:0]
	return e
}

func (e *encoder) release() {
	if cap(e.buf) > 64*1024 {
		e.buf = make([]byte, 0, 1024)
	}
	encoderPool.Put(e)
}

// Value returns the SQL literal for v. See AppendValue.
func Value(v any) (string, error) {
	e := newEncoder()
	defer e.release()

	var err error
	if e.buf, err = AppendValue(e.buf, v, false); err != nil {
		return "", err
	}
	return string(e.buf), nil
}

// AppendValue appends the SQL literal form of v to dst:
//
//	nil, null Variant, nil pointer   NULL
//	bool                             0 or 1
//	integers                         decimal digits
//	floats                           %.17g
//	string, string Variant           'text' with ' doubled
//	[]byte, uuid.UUID, [16]byte      hex digit pairs, no prefix
//
// With raw set, strings are appended without quotes or escaping so the
// result can be spliced into a larger expression. NaN, infinities and any
// other type fail with ErrUnsupportedValue and leave dst unchanged.
func AppendValue(dst []byte, v any, raw bool) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return appendNull(dst), nil
	case lexkit.Variant:
		return appendVariant(dst, x, raw)
	case bool:
		return appendBool(dst, x), nil
	case int:
		return strconv.AppendInt(dst, int64(x), 10), nil
	case int64:
		return strconv.AppendInt(dst, x, 10), nil
	case int32:
		return strconv.AppendInt(dst, int64(x), 10), nil
	case uint64:
		return strconv.AppendUint(dst, x, 10), nil
	case float64:
		return appendFloat(dst, x)
	case string:
		return appendString(dst, x, raw), nil
	case []byte:
		return hex.AppendEncode(dst, x), nil
	case uuid.UUID:
		return hex.AppendEncode(dst, x[:]), nil
	}
	return appendReflect(dst, reflect.ValueOf(v), raw)
}

// appendReflect handles named and pointer types by kind.
func appendReflect(dst []byte, v reflect.Value, raw bool) ([]byte, error) {
	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return appendNull(dst), nil
		}
		return appendReflect(dst, v.Elem(), raw)
	}

	switch v.Kind() {
	case reflect.Bool:
		return appendBool(dst, v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(dst, v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.AppendUint(dst, v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return appendFloat(dst, v.Float())
	case reflect.String:
		return appendString(dst, v.String(), raw), nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return hex.AppendEncode(dst, v.Bytes()), nil
		}
	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 && v.Len() == 16 {
			var guid [16]byte
			for i := range guid {
				guid[i] = byte(v.Index(i).Uint())
			}
			return hex.AppendEncode(dst, guid[:]), nil
		}
	}
	return dst, fmt.Errorf("%w: %s", ErrUnsupportedValue, v.Type())
}

func appendVariant(dst []byte, v lexkit.Variant, raw bool) ([]byte, error) {
	switch v.Kind() {
	case lexkit.KindBool:
		return appendBool(dst, v.Bool()), nil
	case lexkit.KindInt64:
		return strconv.AppendInt(dst, v.Int64(), 10), nil
	case lexkit.KindDouble:
		return appendFloat(dst, v.Double())
	case lexkit.KindBytes:
		return appendQuoted(dst, v.Bytes(), raw), nil
	case lexkit.KindString:
		return appendString(dst, v.String(), raw), nil
	default:
		return appendNull(dst), nil
	}
}

func appendNull(dst []byte) []byte {
	return append(dst, "NULL"...)
}

func appendBool(dst []byte, b bool) []byte {
	if b {
		return append(dst, '1')
	}
	return append(dst, '0')
}

func appendFloat(dst []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return dst, fmt.Errorf("%w: %v", ErrUnsupportedValue, f)
	}
	return strconv.AppendFloat(dst, f, 'g', 17, 64), nil
}

func appendString(dst []byte, s string, raw bool) []byte {
	if raw {
		return append(dst, s...)
	}
	dst = append(dst, '\'')
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			dst = append(dst, '\'')
		}
		dst = append(dst, s[i])
	}
	return append(dst, '\'')
}

func appendQuoted(dst []byte, b []byte, raw bool) []byte {
	if raw {
		return append(dst, b...)
	}
	dst = append(dst, '\'')
	for _, c := range b {
		if c == '\'' {
			dst = append(dst, '\'')
		}
		dst = append(dst, c)
	}
	return append(dst, '\'')
}
