package jsonval_test

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-kit/log"

	jv "github.com/d1ced/jsonval"
)

func ExampleParse() {
	v, err := jv.Parse(`{"city": "Berlin", "population": 3755251}`)
	if err != nil {
		fmt.Println(err)
		return
	}
	o, _ := v.AsObject()
	fmt.Println(o.GetString("city"), o.GetInt64("population"))
	// Output: Berlin 3755251
}

func ExampleParse_numberKinds() {
	v, _ := jv.Parse(`[9223372036854775807, 9223372036854775808, 0.5, 1e400]`)
	a, _ := v.AsArray()
	a.Visit(func(_ int, e *jv.Value) {
		fmt.Println(e.Kind())
	})
	// Output:
	// integer
	// big integer
	// float
	// big decimal
}

func ExampleParseReader() {
	v, _ := jv.ParseReader(strings.NewReader(`["streamed", true]`))
	fmt.Println(v)
	// Output: ["streamed",true]
}

func ExampleValue_String() {
	v, _ := jv.ParseValue(` [ 1 , 2.50, "three" ] `)
	fmt.Println(v)
	// Output: [1,2.5,"three"]
}

func ExampleValue_PrettyString() {
	v, _ := jv.Parse(`{"name":"svc","ports":[80,443]}`)
	fmt.Println(v.PrettyString())
	// Output:
	// {
	//   "name" : "svc",
	//   "ports" : [
	//     80,
	//     443
	//   ]
	// }
}

func ExampleNewParser() {
	p := jv.NewParser(jv.WithLogger(log.NewLogfmtLogger(os.Stdout)))
	v, _ := p.Parse(`{"a": 1, "a": 2}`)
	fmt.Println(v)
	// Output:
	// level=warn msg="object key is not unique" key=a line=1 column=16
	// {"a":2}
}

func ExampleObject() {
	o := jv.NewObject().
		Set("name", jv.NewString("gopher")).
		Set("age", jv.NewInt(13))
	o.Set("name", jv.NewString("glenda"))
	fmt.Println(o.Value())
	// Output: {"name":"glenda","age":13}
}

func ExampleNewArrayOf() {
	a, err := jv.NewArrayOf(1, "two", 2.5, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(a.Value())
	// Output: [1,"two",2.5,null]
}

func ExampleFromGo() {
	type server struct {
		Host string   `json:"host"`
		Port int      `json:"port"`
		Tags []string `json:"tags"`
	}
	v, err := jv.FromGo(server{Host: "backend", Port: 8080, Tags: []string{"a", "b"}})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	// Output: {"host":"backend","port":8080,"tags":["a","b"]}
}

func ExampleValue_UnmarshalJSON() {
	var v jv.Value
	if err := json.Unmarshal([]byte(`{"pi": 3.14159265358979323846}`), &v); err != nil {
		fmt.Println(err)
		return
	}
	o, _ := v.AsObject()
	fmt.Println(o.GetString("pi"))
	// Output: 3.14159265358979323846
}

func ExampleEscape() {
	fmt.Println(jv.Escape("tab\tand \"quotes\""))
	// Output: tab\tand \"quotes\"
}
