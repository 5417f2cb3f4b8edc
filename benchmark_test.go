package jsonval

import (
	"encoding/json"
	"io"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

const benchDoc = `{"a":{"ab":[]},"b":[0,true,{}],"c":null,"d":0,"e":"",
"n":{"bool":true,"obj":{"v":null},"values":[{"a":5,"b":"hi","c":5.8,
"d":null,"e":true},{"a":[5,6,7,8],"b":"hi2","c":5.9,"d":{
"f":"Hello there!"},"e":false}]}}`

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Parse(benchDoc); err != nil {
			b.Fatal(err)
		}
	}
}

// Baselines for BenchmarkParse. Both decode into plain interface values, so
// the comparison is indicative, not exact.
func BenchmarkParseStdlib(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var v any
		if err := json.Unmarshal([]byte(benchDoc), &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseJSONIter(b *testing.B) {
	api := jsoniter.ConfigCompatibleWithStandardLibrary
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v any
		if err := api.Unmarshal([]byte(benchDoc), &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseNumbers(b *testing.B) {
	const doc = `[0, -1, 9223372036854775807, 9223372036854775808,
	3.14159, 2.5e17, 1e-9, 123456789012345678901234567890,
	0.12345678901234567890, 1e400]`
	for i := 0; i < b.N; i++ {
		if _, err := ParseValue(doc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	v, err := Parse(benchDoc)
	if err != nil {
		b.Fatalf("benchmark setup failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.Write(io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderPretty(b *testing.B) {
	v, err := Parse(benchDoc)
	if err != nil {
		b.Fatalf("benchmark setup failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.WritePretty(io.Discard, "  "); err != nil {
			b.Fatal(err)
		}
	}
}
