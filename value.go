package jsonval

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Value is one JSON value. Depending on its kind it holds a different
// payload:
//
//	Kind            payload
//	KindNull        -
//	KindBool        bool
//	KindInteger     int64
//	KindBigInteger  *big.Int
//	KindFloat       float64
//	KindBigDecimal  decimal.Decimal
//	KindString      string
//	KindArray       *Array
//	KindObject      *Object
//
// Scalar values are immutable once constructed. Containers are mutated
// through the Array and Object methods only.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	bi   *big.Int
	d    decimal.Decimal
	lit  string // source literal of a parsed big decimal
	s    string
	a    *Array
	o    *Object
}

var (
	nullValue  = &Value{kind: KindNull}
	trueValue  = &Value{kind: KindBool, b: true}
	falseValue = &Value{kind: KindBool}
)

// Null returns the JSON null value.
func Null() *Value { return nullValue }

// True returns the JSON true value.
func True() *Value { return trueValue }

// False returns the JSON false value.
func False() *Value { return falseValue }

// NewBool returns the JSON value for b.
func NewBool(b bool) *Value {
	if b {
		return trueValue
	}
	return falseValue
}

// NewInt returns a Value of kind KindInteger holding i.
func NewInt(i int64) *Value { return &Value{kind: KindInteger, i: i} }

// NewBigInt returns a Value of kind KindBigInteger holding a copy of x.
// A nil x counts as zero.
func NewBigInt(x *big.Int) *Value {
	c := new(big.Int)
	if x != nil {
		c.Set(x)
	}
	return &Value{kind: KindBigInteger, bi: c}
}

// NewFloat returns a Value of kind KindFloat holding f. Non-finite floats
// are representable in the model but fail to render.
func NewFloat(f float64) *Value { return &Value{kind: KindFloat, f: f} }

// NewDecimal returns a Value of kind KindBigDecimal holding d.
func NewDecimal(d decimal.Decimal) *Value {
	return &Value{kind: KindBigDecimal, d: d}
}

// NewString returns a Value of kind KindString holding s.
func NewString(s string) *Value { return &Value{kind: KindString, s: s} }

// parsedDecimal keeps the source literal so rendering can reproduce it
// without expanding the exponent.
func parsedDecimal(d decimal.Decimal, lit string) *Value {
	return &Value{kind: KindBigDecimal, d: d, lit: lit}
}

// Kind returns the kind of v. A nil value reports KindInvalid.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindInvalid
	}
	return v.kind
}

// IsNull reports whether v is the JSON null value.
func (v *Value) IsNull() bool { return v.Kind() == KindNull }

// Bool returns the payload of a KindBool value.
func (v *Value) Bool() (bool, error) {
	if v.Kind() != KindBool {
		return false, errors.Wrapf(ErrTypeMismatch, "want %s, got %s", KindBool, v.Kind())
	}
	return v.b, nil
}

// Int64 returns the payload of a KindInteger value.
func (v *Value) Int64() (int64, error) {
	if v.Kind() != KindInteger {
		return 0, errors.Wrapf(ErrTypeMismatch, "want %s, got %s", KindInteger, v.Kind())
	}
	return v.i, nil
}

// BigInt returns a copy of the payload of a KindBigInteger value.
func (v *Value) BigInt() (*big.Int, error) {
	if v.Kind() != KindBigInteger {
		return nil, errors.Wrapf(ErrTypeMismatch, "want %s, got %s", KindBigInteger, v.Kind())
	}
	return new(big.Int).Set(v.bi), nil
}

// Float64 returns the payload of a KindFloat value.
func (v *Value) Float64() (float64, error) {
	if v.Kind() != KindFloat {
		return 0, errors.Wrapf(ErrTypeMismatch, "want %s, got %s", KindFloat, v.Kind())
	}
	return v.f, nil
}

// Decimal returns the payload of a KindBigDecimal value.
func (v *Value) Decimal() (decimal.Decimal, error) {
	if v.Kind() != KindBigDecimal {
		return decimal.Decimal{}, errors.Wrapf(ErrTypeMismatch, "want %s, got %s", KindBigDecimal, v.Kind())
	}
	return v.d, nil
}

// StringValue returns the payload of a KindString value. It is distinct
// from String, which renders any value as JSON.
func (v *Value) StringValue() (string, error) {
	if v.Kind() != KindString {
		return "", errors.Wrapf(ErrTypeMismatch, "want %s, got %s", KindString, v.Kind())
	}
	return v.s, nil
}

// AsArray returns the container of a KindArray value.
func (v *Value) AsArray() (*Array, error) {
	if v.Kind() != KindArray {
		return nil, errors.Wrapf(ErrTypeMismatch, "want %s, got %s", KindArray, v.Kind())
	}
	return v.a, nil
}

// AsObject returns the container of a KindObject value.
func (v *Value) AsObject() (*Object, error) {
	if v.Kind() != KindObject {
		return nil, errors.Wrapf(ErrTypeMismatch, "want %s, got %s", KindObject, v.Kind())
	}
	return v.o, nil
}

// Clone returns a copy of v that shares no mutable state with the
// original. Containers are copied deeply, scalars are immutable and
// returned as is.
func (v *Value) Clone() *Value {
	switch v.Kind() {
	case KindArray:
		return v.a.Clone().Value()
	case KindObject:
		return v.o.Clone().Value()
	default:
		return v
	}
}

// Equal compares the values and all their children. Array elements must
// match in order, object key order is arbitrary. Scalars are equal only
// within the same kind, except that big decimals compare by numeric value,
// so 1.0 and 1.00 are equal.
func (v *Value) Equal(w *Value) bool {
	if v == w {
		return true
	}
	if v == nil || w == nil || v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == w.b
	case KindInteger:
		return v.i == w.i
	case KindBigInteger:
		return v.bi.Cmp(w.bi) == 0
	case KindFloat:
		return v.f == w.f
	case KindBigDecimal:
		return v.d.Equal(w.d)
	case KindString:
		return v.s == w.s
	case KindArray:
		return v.a.equal(w.a)
	case KindObject:
		return v.o.equal(w.o)
	default:
		return false
	}
}

// Interface creates the plain Go representation of a value. The possible
// underlying types of the return value are:
//
//	KindNull        nil
//	KindBool        bool
//	KindInteger     int64
//	KindBigInteger  *big.Int
//	KindFloat       float64
//	KindBigDecimal  decimal.Decimal
//	KindString      string
//	KindArray       []any
//	KindObject      map[string]any
//
// Object key order is lost in the map form.
func (v *Value) Interface() any {
	switch v.Kind() {
	case KindBool:
		return v.b
	case KindInteger:
		return v.i
	case KindBigInteger:
		return new(big.Int).Set(v.bi)
	case KindFloat:
		return v.f
	case KindBigDecimal:
		return v.d
	case KindString:
		return v.s
	case KindArray:
		s := make([]any, 0, v.a.Len())
		for _, e := range v.a.items {
			s = append(s, e.Interface())
		}
		return s
	case KindObject:
		m := make(map[string]any, v.o.Len())
		for _, f := range v.o.members {
			m[f.key] = f.val.Interface()
		}
		return m
	default:
		return nil
	}
}

// orNull maps a nil *Value to the JSON null so containers never hold Go
// nils.
func orNull(v *Value) *Value {
	if v == nil {
		return nullValue
	}
	return v
}
