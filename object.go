package jsonval

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type member struct {
	key string
	val *Value
}

// Object is an ordered mapping from string keys to JSON values. Keys are
// unique; storing an existing key overwrites its value in place, keeping
// the position the key was first inserted at. The member slice stands in
// for a map to preserve that order.
type Object struct {
	members []member
}

// NewObject returns an empty object.
func NewObject() *Object { return &Object{} }

// NewObjectOf builds an object from a flat list of alternating keys and
// values. It fails with ErrInvalidConstruction when the list has an odd
// length, a key is not a string, or a value has no JSON representation.
func NewObjectOf(pairs ...any) (*Object, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidConstruction, "odd number of arguments: %d", len(pairs))
	}
	o := NewObject()
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidConstruction, "argument %d: key must be a string, got %T", i, pairs[i])
		}
		v, err := FromGo(pairs[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, "value for key %q", key)
		}
		o.Set(key, v)
	}
	return o, nil
}

// Value wraps o as a JSON value of kind KindObject.
func (o *Object) Value() *Value { return &Value{kind: KindObject, o: o} }

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Set stores v under key and returns the object for chaining. An existing
// key keeps its position. A nil v is stored as the JSON null.
func (o *Object) Set(key string, v *Value) *Object {
	v = orNull(v)
	for i := range o.members {
		if o.members[i].key == key {
			o.members[i].val = v
			return o
		}
	}
	o.members = append(o.members, member{key: key, val: v})
	return o
}

// Get returns the value stored under key, or nil if the key is absent.
func (o *Object) Get(key string) *Value {
	if o == nil {
		return nil
	}
	for i := range o.members {
		if o.members[i].key == key {
			return o.members[i].val
		}
	}
	return nil
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	for i := range o.members {
		if o.members[i].key == key {
			return true
		}
	}
	return false
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	for i := range o.members {
		if o.members[i].key == key {
			o.members = append(o.members[:i], o.members[i+1:]...)
			return true
		}
	}
	return false
}

// Keys returns the keys in insertion order. The slice is a fresh copy.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	ss := make([]string, len(o.members))
	for i, m := range o.members {
		ss[i] = m.key
	}
	return ss
}

// Visit calls f for each member in insertion order.
func (o *Object) Visit(f func(key string, v *Value)) {
	if o == nil {
		return
	}
	for _, m := range o.members {
		f(m.key, m.val)
	}
}

// Clone returns a deep copy of the object.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	c := &Object{members: make([]member, len(o.members))}
	for i, m := range o.members {
		c.members[i] = member{key: m.key, val: m.val.Clone()}
	}
	return c
}

func (o *Object) equal(p *Object) bool {
	if o.Len() != p.Len() {
		return false
	}
	for _, m := range o.members {
		w := p.Get(m.key)
		if w == nil || !m.val.Equal(w) {
			return false
		}
	}
	return true
}

// GetString returns the value under key coerced to a string. Missing keys
// and containers yield "".
func (o *Object) GetString(key string) string {
	s, _ := coerceString(o.Get(key))
	return s
}

// GetBool returns the value under key coerced to a bool, or false.
func (o *Object) GetBool(key string) bool {
	b, _ := coerceBool(o.Get(key))
	return b
}

// GetInt64 returns the value under key coerced to an int64, or 0.
func (o *Object) GetInt64(key string) int64 {
	n, _ := coerceInt64(o.Get(key))
	return n
}

// GetFloat64 returns the value under key coerced to a float64, or 0.
func (o *Object) GetFloat64(key string) float64 {
	f, _ := coerceFloat64(o.Get(key))
	return f
}

// GetBigInt returns the value under key coerced to a big integer, or nil.
func (o *Object) GetBigInt(key string) *big.Int {
	x, ok := coerceBigInt(o.Get(key))
	if !ok {
		return nil
	}
	return x
}

// GetDecimal returns the value under key coerced to a decimal, or the zero
// decimal.
func (o *Object) GetDecimal(key string) decimal.Decimal {
	d, _ := coerceDecimal(o.Get(key))
	return d
}

// GetArray returns the array under key, or nil when the value is not an
// array.
func (o *Object) GetArray(key string) *Array {
	v := o.Get(key)
	if v.Kind() != KindArray {
		return nil
	}
	return v.a
}

// GetObject returns the object under key, or nil when the value is not an
// object.
func (o *Object) GetObject(key string) *Object {
	v := o.Get(key)
	if v.Kind() != KindObject {
		return nil
	}
	return v.o
}
