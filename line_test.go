package lexkit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func variantStrings(vs []Variant) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

func TestReadLine(t *testing.T) {
	buf := []byte("1,abc,2.5\n7,x,3\n")
	types := []Type{TypeInt64, TypeString, TypeDouble}

	vals, next, err := ReadLine(buf, 0, types, DefaultCSV(), nil)
	require.NoError(t, err)
	assert.Equal(t, 10, next)
	require.Len(t, vals, 3)
	assert.EqualValues(t, 1, vals[0].Int64())
	assert.Equal(t, "abc", vals[1].String())
	assert.Equal(t, 2.5, vals[2].Double())

	vals, next, err = ReadLine(buf, next, types, DefaultCSV(), vals[:0])
	require.NoError(t, err)
	assert.Equal(t, len(buf), next)
	assert.Equal(t, []string{"7", "x", "3"}, variantStrings(vals))
}

func TestReadLine_FewerTypesThanColumns(t *testing.T) {
	buf := []byte("1,2,3\n4")
	vals, next, err := ReadLine(buf, 0, []Type{TypeInt64}, DefaultCSV(), nil)
	require.NoError(t, err)
	assert.Equal(t, 6, next, "cursor jumps to the next line")
	assert.Equal(t, []string{"1"}, variantStrings(vals))
}

func TestReadLine_Stall(t *testing.T) {
	buf := []byte("1,x,3\nnext")
	vals, next, err := ReadLine(buf, 0, []Type{TypeInt64, TypeInt64}, DefaultCSV(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoProgress)

	var se *ScanError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Pos)
	assert.Equal(t, 6, next)
	assert.Equal(t, []string{"1"}, variantStrings(vals))
}

func TestReadLine_MissingTrailingString(t *testing.T) {
	vals, _, err := ReadLine([]byte("1\n"), 0, []Type{TypeInt64, TypeString}, DefaultCSV(), nil)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.True(t, vals[1].IsNull())

	_, _, err = ReadLine([]byte("1\n"), 0, []Type{TypeInt64, TypeInt64}, DefaultCSV(), nil)
	assert.ErrorIs(t, err, ErrNoProgress)
}

func TestReadLine_QuotedTerminator(t *testing.T) {
	buf := []byte("\"a\nb\",2\r\nz,3")
	vals, next, err := ReadLine(buf, 0, []Type{TypeString, TypeInt64}, DefaultCSV(), nil)
	require.NoError(t, err)
	assert.Equal(t, 9, next)
	assert.Equal(t, []string{"a\nb", "2"}, variantStrings(vals))
}

func TestReadFields_OneColumnPerCall(t *testing.T) {
	buf := []byte("1,2,3\n4,5,6\n")
	one := []Type{TypeInt64}

	var got []int64
	pos, calls := 0, 0
	for pos < len(buf) {
		vals, next, err := ReadFields(buf, pos, one, DefaultCSV(), nil)
		require.NoError(t, err)
		require.Len(t, vals, 1)
		got = append(got, vals[0].Int64())
		pos = next
		calls++
		if calls == 3 {
			assert.Equal(t, 6, pos, "three calls consume exactly one line")
		}
	}
	assert.Equal(t, 6, calls)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, got)
}

func TestReadFields_TrailingEmptyField(t *testing.T) {
	buf := []byte("1,\n2")
	vals, next, err := ReadFields(buf, 0, []Type{TypeInt64}, DefaultCSV(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, next, "an empty last field is still pending")
	assert.Len(t, vals, 1)

	vals, next, err = ReadFields(buf, next, []Type{TypeString}, DefaultCSV(), vals[:0])
	require.NoError(t, err)
	assert.Equal(t, 3, next)
	require.Len(t, vals, 1)
	assert.True(t, vals[0].IsNull())
}

func TestReadLineStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		dialect  Dialect
		want     []string
		wantNext int
	}{
		{"plain", "a,b,c\nd", DefaultCSV(), []string{"a", "b", "c"}, 6},
		{"doubled quotes", `"a""b",c`, DefaultCSV(), []string{`a"b`, "c"}, 8},
		{"quoted delimiter", `"x,y",z`, DefaultCSV(), []string{"x,y", "z"}, 7},
		{"quoted newline", "\"x\ny\",z\nw", DefaultCSV(), []string{"x\ny", "z"}, 8},
		{"crlf", "a,b\r\nc", DefaultCSV(), []string{"a", "b"}, 5},
		{"empty middle", "a,,b", DefaultCSV(), []string{"a", "", "b"}, 4},
		{"empty trailing", "a,b,", DefaultCSV(), []string{"a", "b", ""}, 4},
		{"text after quote", `"a"b,c`, DefaultCSV(), []string{"ab", "c"}, 6},
		{"tab delimited", "a\tb", CSV{Delim: '\t'}, []string{"a", "b"}, 3},
		{"repeated delimiter", "a   b", CSV{Delim: ' ', Repeat: true}, []string{"a", "b"}, 5},
		{"sql quotes", "'it''s',`id`;rest", DefaultSQL(), []string{"it's", "id"}, 13},
		{"json escapes decoded", `"a\"b",'c\u00e9\n',1}`, DefaultJSON(), []string{`a"b`, "c\u00e9\n", "1"}, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, next, err := ReadLineStrings([]byte(tt.input), 0, tt.dialect, nil)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadLineStrings() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestReadLineStrings_InvalidEscape(t *testing.T) {
	got, next, err := ReadLineStrings([]byte(`1,"a\qb"}`), 0, DefaultJSON(), nil)
	assert.ErrorIs(t, err, ErrInvalidEscape)
	var se *ScanError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Pos)
	assert.Equal(t, []string{"1"}, got)
	assert.Equal(t, 9, next)
}

func TestReadLineStrings_Unterminated(t *testing.T) {
	got, next, err := ReadLineStrings([]byte(`a,"bc`), 0, DefaultCSV(), nil)
	assert.ErrorIs(t, err, ErrUnterminatedQuote)
	assert.Equal(t, []string{"a"}, got)
	assert.Equal(t, 5, next)
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		input   string
		want    []string
		wantErr bool
	}{
		{`  cp "my file.txt"  dest  `, []string{"cp", "my file.txt", "dest"}, false},
		{`a "b""c"`, []string{"a", `b"c`}, false},
		{"single", []string{"single"}, false},
		{"   ", nil, false},
		{"", nil, false},
		{`a "bc`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := SplitArgs(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
