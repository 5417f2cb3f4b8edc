package jsonval

// Kind is an enum for the JSON value kinds.
type Kind uint8

// Kinds to compare values of a tree with. The zero value signals invalid.
// Numbers keep their narrowest faithful representation, so the model
// distinguishes four numeric kinds.
const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInteger
	KindBigInteger
	KindFloat
	KindBigDecimal
	KindString
	KindArray
	KindObject
)

// String generates a readable form of a kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindBigInteger:
		return "big integer"
	case KindFloat:
		return "float"
	case KindBigDecimal:
		return "big decimal"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}
