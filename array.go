package jsonval

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Array is an ordered sequence of JSON values.
type Array struct {
	items []*Value
}

// NewArray returns an empty array.
func NewArray() *Array { return &Array{} }

// NewArrayOf builds an array from the given items, each converted through
// FromGo. It fails with ErrInvalidConstruction when an item has no JSON
// representation.
func NewArrayOf(items ...any) (*Array, error) {
	a := &Array{items: make([]*Value, 0, len(items))}
	for i, it := range items {
		v, err := FromGo(it)
		if err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}
		a.items = append(a.items, v)
	}
	return a, nil
}

// Value wraps a as a JSON value of kind KindArray.
func (a *Array) Value() *Value { return &Value{kind: KindArray, a: a} }

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// Push appends v and returns the array for chaining. A nil v is stored as
// the JSON null.
func (a *Array) Push(v *Value) *Array {
	a.items = append(a.items, orNull(v))
	return a
}

// Get returns the element at index i, or nil if i is out of range.
func (a *Array) Get(i int) *Value {
	if a == nil || i < 0 || i >= len(a.items) {
		return nil
	}
	return a.items[i]
}

// Set replaces the element at index i.
func (a *Array) Set(i int, v *Value) error {
	if i < 0 || i >= len(a.items) {
		return errors.Errorf("index %d out of range with length %d", i, len(a.items))
	}
	a.items[i] = orNull(v)
	return nil
}

// Insert places v at index i, shifting later elements up. Inserting at
// Len() appends.
func (a *Array) Insert(i int, v *Value) error {
	if i < 0 || i > len(a.items) {
		return errors.Errorf("index %d out of range with length %d", i, len(a.items))
	}
	a.items = append(a.items, nil)
	copy(a.items[i+1:], a.items[i:])
	a.items[i] = orNull(v)
	return nil
}

// Delete removes the element at index i, shifting later elements down.
func (a *Array) Delete(i int) error {
	if i < 0 || i >= len(a.items) {
		return errors.Errorf("index %d out of range with length %d", i, len(a.items))
	}
	a.items = append(a.items[:i], a.items[i+1:]...)
	return nil
}

// Visit calls f for each element in order.
func (a *Array) Visit(f func(i int, v *Value)) {
	if a == nil {
		return
	}
	for i, v := range a.items {
		f(i, v)
	}
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	if a == nil {
		return nil
	}
	c := &Array{items: make([]*Value, len(a.items))}
	for i, v := range a.items {
		c.items[i] = v.Clone()
	}
	return c
}

func (a *Array) equal(b *Array) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.items {
		if !a.items[i].Equal(b.items[i]) {
			return false
		}
	}
	return true
}

// GetString returns the element at index i coerced to a string. Missing
// elements and containers yield "".
func (a *Array) GetString(i int) string {
	s, _ := coerceString(a.Get(i))
	return s
}

// GetBool returns the element at index i coerced to a bool, or false.
func (a *Array) GetBool(i int) bool {
	b, _ := coerceBool(a.Get(i))
	return b
}

// GetInt64 returns the element at index i coerced to an int64, or 0.
func (a *Array) GetInt64(i int) int64 {
	n, _ := coerceInt64(a.Get(i))
	return n
}

// GetFloat64 returns the element at index i coerced to a float64, or 0.
func (a *Array) GetFloat64(i int) float64 {
	f, _ := coerceFloat64(a.Get(i))
	return f
}

// GetBigInt returns the element at index i coerced to a big integer, or
// nil.
func (a *Array) GetBigInt(i int) *big.Int {
	x, ok := coerceBigInt(a.Get(i))
	if !ok {
		return nil
	}
	return x
}

// GetDecimal returns the element at index i coerced to a decimal, or the
// zero decimal.
func (a *Array) GetDecimal(i int) decimal.Decimal {
	d, _ := coerceDecimal(a.Get(i))
	return d
}

// GetArray returns the array at index i, or nil when the element is not an
// array.
func (a *Array) GetArray(i int) *Array {
	v := a.Get(i)
	if v.Kind() != KindArray {
		return nil
	}
	return v.a
}

// GetObject returns the object at index i, or nil when the element is not
// an object.
func (a *Array) GetObject(i int) *Object {
	v := a.Get(i)
	if v.Kind() != KindObject {
		return nil
	}
	return v.o
}
