package lexkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialectDefaults(t *testing.T) {
	var zero CSV
	assert.Equal(t, byte(','), zero.Delimiter())
	assert.Equal(t, byte('\n'), zero.Terminator())
	assert.True(t, zero.IsQuote('"'))
	assert.False(t, zero.IsQuote('\''))

	sql := SQL{}
	assert.True(t, sql.IsQuote('\''))
	assert.True(t, sql.IsQuote('`'))
	assert.False(t, sql.IsQuote('"'))
	assert.Equal(t, byte(';'), sql.Terminator())

	json := JSON{}
	assert.True(t, json.IsQuote('"'))
	assert.True(t, json.IsQuote('\''))
	assert.Equal(t, byte('}'), json.Terminator())

	var qs QueryString
	assert.Equal(t, byte('&'), qs.Delimiter())
	assert.False(t, qs.IsQuote('\''))
	assert.Equal(t, NotFound, qs.Skip([]byte("'a'"), 0))
}

func TestDialectSkip(t *testing.T) {
	assert.Equal(t, 6, DefaultCSV().Skip([]byte(`"a""b"`), 0))
	assert.Equal(t, 4, DefaultSQL().Skip([]byte("`id`,"), 0))
	assert.Equal(t, 6, DefaultJSON().Skip([]byte(`"a\"b",`), 0))
	assert.Equal(t, NotFound, DefaultJSON().Skip([]byte(`"ab`), 0))
}

func TestDialectKindString(t *testing.T) {
	assert.Equal(t, "csv", DefaultCSV().Kind().String())
	assert.Equal(t, "sql", DefaultSQL().Kind().String())
	assert.Equal(t, "json", DefaultJSON().Kind().String())
	assert.Equal(t, "querystring", QueryString{}.Kind().String())
	assert.Equal(t, "unknown", DialectKind(0).String())
}
