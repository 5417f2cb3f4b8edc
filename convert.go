package jsonval

import (
	"math"
	"math/big"
	"reflect"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// FromGo converts a plain Go value into the JSON model. Supported are the
// model's own types, nil, booleans, strings, all integer and float types,
// big.Int, decimal.Decimal, byte slices (as strings), and slices, arrays,
// string-keyed maps and structs of such values. Struct fields take their
// key from the json tag when one is set, fields tagged "-" and unexported
// fields are skipped. Map keys are emitted in sorted order so conversion
// is deterministic.
//
// Values the model cannot hold fail with ErrInvalidConstruction.
func FromGo(val any) (*Value, error) {
	switch x := val.(type) {
	case nil:
		return nullValue, nil
	case *Value:
		return orNull(x), nil
	case *Array:
		if x == nil {
			return nullValue, nil
		}
		return x.Value(), nil
	case *Object:
		if x == nil {
			return nullValue, nil
		}
		return x.Value(), nil
	case *big.Int:
		if x == nil {
			return nullValue, nil
		}
		return NewBigInt(x), nil
	case big.Int:
		return NewBigInt(&x), nil
	case decimal.Decimal:
		return NewDecimal(x), nil
	case *decimal.Decimal:
		if x == nil {
			return nullValue, nil
		}
		return NewDecimal(*x), nil
	}
	return fromGoValue(reflect.ValueOf(val))
}

func fromGoValue(v reflect.Value) (*Value, error) {
	switch v.Kind() {
	case reflect.Bool:
		return NewBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInt(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return NewBigInt(new(big.Int).SetUint64(u)), nil
		}
		return NewInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return NewFloat(v.Float()), nil
	case reflect.String:
		return NewString(v.String()), nil
	case reflect.Slice:
		if v.IsNil() {
			return nullValue, nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return NewString(string(v.Bytes())), nil
		}
		fallthrough
	case reflect.Array:
		a := &Array{items: make([]*Value, 0, v.Len())}
		for i := 0; i < v.Len(); i++ {
			el, err := FromGo(v.Index(i).Interface())
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			a.items = append(a.items, el)
		}
		return a.Value(), nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, errors.Wrapf(ErrInvalidConstruction, "unsupported map key type %s", v.Type().Key())
		}
		if v.IsNil() {
			return nullValue, nil
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		o := NewObject()
		for _, k := range keys {
			el, err := FromGo(v.MapIndex(k).Interface())
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", k.String())
			}
			o.Set(k.String(), el)
		}
		return o.Value(), nil
	case reflect.Struct:
		o := NewObject()
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if r, _ := utf8.DecodeRuneInString(f.Name); !unicode.IsUpper(r) {
				continue
			}
			tags := strings.Split(f.Tag.Get("json"), ",")
			if tags[0] == "-" {
				continue
			}
			key := tags[0]
			if key == "" {
				key = f.Name
			}
			el, err := FromGo(v.Field(i).Interface())
			if err != nil {
				return nil, errors.Wrapf(err, "field %s", f.Name)
			}
			o.Set(key, el)
		}
		return o.Value(), nil
	case reflect.Ptr:
		if v.IsNil() {
			return nullValue, nil
		}
		return FromGo(v.Elem().Interface())
	default:
		return nil, errors.Wrapf(ErrInvalidConstruction, "unsupported type %s", v.Type())
	}
}
