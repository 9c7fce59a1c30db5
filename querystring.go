package lexkit

// Pair is one key/value entry of a query string. Both fields alias the
// scanned buffer.
type Pair struct {
	Key   []byte
	Value []byte
}

type qsState uint8

const (
	qsKey qsState = iota
	qsValue
)

// ReadQueryString splits k=v&k=v text into pairs appended to dst. Only the
// first '=' of a segment divides key from value; later ones are data. A
// segment without '=' yields its key with an empty value and empty segments
// are skipped. A value whose key is empty is an error. Keys and values are
// returned raw, without percent-decoding.
func ReadQueryString(buf []byte, dst []Pair) ([]Pair, error) {
	var d QueryString
	state := qsKey
	start, divider := 0, 0

	emit := func(end int) error {
		switch {
		case state == qsValue && divider == start:
			return &ScanError{Pos: start, Err: ErrMissingKey}
		case state == qsValue:
			dst = append(dst, Pair{Key: buf[start:divider:divider], Value: buf[divider+1 : end : end]})
		case end > start:
			dst = append(dst, Pair{Key: buf[start:end:end], Value: buf[end:end:end]})
		}
		return nil
	}

	for i := 0; i < len(buf); i++ {
		switch c := buf[i]; {
		case c == Divider && state == qsKey:
			state = qsValue
			divider = i
		case c == d.Delimiter():
			if err := emit(i); err != nil {
				return dst, err
			}
			state = qsKey
			start = i + 1
		}
	}
	if err := emit(len(buf)); err != nil {
		return dst, err
	}
	return dst, nil
}

// Lookup returns the value of the first pair whose key equals key.
func Lookup(pairs []Pair, key string) ([]byte, bool) {
	for _, p := range pairs {
		if string(p.Key) == key {
			return p.Value, true
		}
	}
	return nil, false
}
