package sqltmpl

import (
	"strings"
)

// Bulk is a pair of ready statements for inserting rows in chunks. Running
// Statement Count times and then Remainder, when it is not empty, covers
// every row exactly once.
type Bulk struct {
	Count     int
	Statement string
	Remainder string
}

// MakeBulk builds the statements for total rows in batches of at most batch
// rows. Each statement is prefix followed by unit repeated once per row and
// joined with commas, e.g. "INSERT INTO t VALUES" and "(?,?)".
func MakeBulk(prefix, unit string, total, batch int) (Bulk, error) {
	if batch <= 0 || total < 0 {
		return Bulk{}, ErrInvalidBatch
	}

	b := Bulk{
		Count:     total / batch,
		Statement: repeatUnit(prefix, unit, batch),
	}
	if rest := total % batch; rest > 0 {
		b.Remainder = repeatUnit(prefix, unit, rest)
	}
	return b, nil
}

// Each calls fn with every statement to run, stopping at the first error.
func (b Bulk) Each(fn func(stmt string) error) error {
	for i := 0; i < b.Count; i++ {
		if err := fn(b.Statement); err != nil {
			return err
		}
	}
	if b.Remainder != "" {
		return fn(b.Remainder)
	}
	return nil
}

func repeatUnit(prefix, unit string, n int) string {
	var sb strings.Builder
	sb.Grow(len(prefix) + n*(len(unit)+1))
	sb.WriteString(prefix)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(unit)
	}
	return sb.String()
}
