package benchmarks

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/biggeezerdevelopment/lexkit"
	"github.com/biggeezerdevelopment/lexkit/jsonkey"
	"github.com/biggeezerdevelopment/lexkit/sqltmpl"
)

var (
	rowTypes = []lexkit.Type{lexkit.TypeInt64, lexkit.TypeString, lexkit.TypeString, lexkit.TypeDouble, lexkit.TypeBool}

	mediumJSON = []byte(`{
		"users": [
			{"id": 1, "name": "Alice", "email": "alice@example.com", "active": true},
			{"id": 2, "name": "Bob", "email": "bob@example.com", "active": false}
		],
		"metadata": {
			"version": "1.0.0",
			"timestamp": 1234567890,
			"count": 5
		}
	}`)
)

func BenchmarkReadLine(b *testing.B) {
	b.SetBytes(int64(len(csvTable)))
	b.ReportAllocs()

	var values []lexkit.Variant
	for i := 0; i < b.N; i++ {
		for pos := 0; pos < len(csvTable); {
			var err error
			values, pos, err = lexkit.ReadLine(csvTable, pos, rowTypes, lexkit.DefaultCSV(), values[:0])
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkReadLineStrings(b *testing.B) {
	b.Run("Lexkit", func(b *testing.B) {
		b.SetBytes(int64(len(csvTable)))
		b.ReportAllocs()

		var fields []string
		for i := 0; i < b.N; i++ {
			for pos := 0; pos < len(csvTable); {
				var err error
				fields, pos, err = lexkit.ReadLineStrings(csvTable, pos, lexkit.DefaultCSV(), fields[:0])
				if err != nil {
					b.Fatal(err)
				}
			}
		}
	})

	b.Run("Stdlib", func(b *testing.B) {
		b.SetBytes(int64(len(csvTable)))
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			r := csv.NewReader(bytes.NewReader(csvTable))
			r.ReuseRecord = true
			if _, err := r.ReadAll(); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkLookupPath(b *testing.B) {
	b.Run("Jsonkey", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, ok := jsonkey.LookupPath(mediumJSON, "metadata", "count"); !ok {
				b.Fatal("not found")
			}
		}
	})

	b.Run("Stdlib", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var doc struct {
				Metadata struct {
					Count int `json:"count"`
				} `json:"metadata"`
			}
			if err := json.Unmarshal(mediumJSON, &doc); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkReplace(b *testing.B) {
	bindings := &sqltmpl.Bindings{}
	for _, kv := range []struct {
		name  string
		value any
	}{{"name", "O'Brien"}, {"id", 1042}, {"score", 42.5}} {
		if err := bindings.Set(kv.name, kv.value); err != nil {
			b.Fatal(err)
		}
	}
	const src = "UPDATE users SET name={name}, score={score} WHERE id={id} AND note <> '{skip}'"

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := sqltmpl.Replace(src, bindings, sqltmpl.Options{}); err != nil {
			b.Fatal(err)
		}
	}
}
