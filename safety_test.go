package lexkit

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemorySafety checks that no primitive reads past the range it is given.
func TestMemorySafety(t *testing.T) {
	t.Run("BoundaryAccess", testBoundaryAccess)
	t.Run("ZeroLengthInput", testZeroLengthInput)
	t.Run("UnalignedInput", testUnalignedInput)
	t.Run("ConcurrentAccess", testConcurrentAccess)
}

func testBoundaryAccess(t *testing.T) {
	for n := 0; n <= 100; n++ {
		body := bytes.Repeat([]byte{'a'}, n)
		closed := append(append([]byte{'\''}, body...), '\'')
		open := append([]byte{'\''}, body...)

		assert.Equal(t, len(closed), SkipQuoted(closed, 0), "closed n=%d", n)
		assert.Equal(t, NotFound, SkipQuoted(open, 0), "open n=%d", n)
		assert.Equal(t, NotFound, FindChar(open, 0, ',', DefaultSQL()), "open n=%d", n)

		// A cursor one past the end is a valid "nothing left" position.
		assert.Equal(t, NotFound, FindChar(closed, len(closed), '\'', DefaultSQL()))
		assert.Equal(t, len(closed), SkipSpace(closed, len(closed)))
	}
}

func testZeroLengthInput(t *testing.T) {
	assert.Equal(t, NotFound, FindChar(nil, 0, ',', DefaultCSV()))
	assert.Equal(t, NotFound, FindSubstring(nil, 0, []byte("x"), DefaultCSV()))
	assert.Equal(t, 0, SkipSpace(nil, 0))
	assert.Equal(t, 0, SkipAlnum(nil, 0))

	next, i := ReadInt64(nil, 0)
	assert.Equal(t, 0, next)
	assert.Zero(t, i)
	next, _ = ReadDouble(nil, 0)
	assert.Equal(t, 0, next)
	next, _ = ReadBool(nil, 0)
	assert.Equal(t, 0, next)
	next, _ = ReadQuoted(nil, 0)
	assert.Equal(t, 0, next)

	assert.Equal(t, TypeString, InferType(nil, []Type{TypeInt64, TypeString}))

	_, next, err := ReadLine(nil, 0, []Type{TypeInt64}, DefaultCSV(), nil)
	assert.ErrorIs(t, err, ErrNoProgress)
	assert.Equal(t, 0, next)

	fields, next, err := ReadLineStrings(nil, 0, DefaultCSV(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, fields)
	assert.Equal(t, 0, next)

	pairs, err := ReadQueryString(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func testUnalignedInput(t *testing.T) {
	base := []byte(`1,'it''s, here',"x,y",` + string(bytes.Repeat([]byte("z"), 80)) + ",end")
	want := FindChar(base, 0, 'e', DefaultSQL())
	require.NotEqual(t, NotFound, want)

	for offset := 0; offset < 32; offset++ {
		t.Run(fmt.Sprintf("offset_%d", offset), func(t *testing.T) {
			buf := make([]byte, len(base)+offset)
			data := buf[offset:]
			copy(data, base)

			assert.Equal(t, want, FindChar(data, 0, 'e', DefaultSQL()))
			assert.Equal(t, 15, SkipQuoted(data, 2))
		})
	}
}

func testConcurrentAccess(t *testing.T) {
	var doc []byte
	for i := 0; i < 200; i++ {
		doc = append(doc, fmt.Sprintf("%d,\"name %d, jr\",%d.5\n", i, i, i)...)
	}
	types := []Type{TypeInt64, TypeString, TypeDouble}

	readAll := func() ([]string, error) {
		var (
			out  []string
			vals []Variant
			err  error
		)
		for pos := 0; pos < len(doc); {
			vals, pos, err = ReadLine(doc, pos, types, DefaultCSV(), vals[:0])
			if err != nil {
				return nil, err
			}
			for _, v := range vals {
				out = append(out, v.String())
			}
		}
		return out, nil
	}

	want, err := readAll()
	require.NoError(t, err)
	require.Len(t, want, 600)

	const workers = 8
	results := make([][]string, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w], errs[w] = readAll()
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		assert.Equal(t, want, results[w], "worker %d", w)
	}
}
