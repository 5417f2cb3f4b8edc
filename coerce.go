package jsonval

import (
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Scalar coercions backing the container Get* helpers. Each returns the
// coerced value and whether the coercion applied. Nil values, nulls and
// containers never coerce.

func coerceString(v *Value) (string, bool) {
	switch v.Kind() {
	case KindString:
		return v.s, true
	case KindBool:
		if v.b {
			return "true", true
		}
		return "false", true
	case KindInteger:
		return strconv.FormatInt(v.i, 10), true
	case KindBigInteger:
		return v.bi.String(), true
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return "", false
		}
		return string(appendFloat(nil, v.f)), true
	case KindBigDecimal:
		return v.decimalLiteral(), true
	default:
		return "", false
	}
}

// coerceBool follows the numeric convention of the accessors in this
// package's lineage: a number is true when its integral part is nonzero.
func coerceBool(v *Value) (bool, bool) {
	switch v.Kind() {
	case KindBool:
		return v.b, true
	case KindInteger:
		return v.i != 0, true
	case KindBigInteger:
		return v.bi.Sign() != 0, true
	case KindFloat:
		if math.IsNaN(v.f) {
			return false, true
		}
		return math.Trunc(v.f) != 0, true
	case KindBigDecimal:
		return v.d.IntPart() != 0, true
	case KindString:
		switch v.s {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		n, err := strconv.ParseInt(v.s, 10, 64)
		if err != nil {
			return false, false
		}
		return n != 0, true
	default:
		return false, false
	}
}

func coerceInt64(v *Value) (int64, bool) {
	switch v.Kind() {
	case KindInteger:
		return v.i, true
	case KindBigInteger:
		if !v.bi.IsInt64() {
			return 0, false
		}
		return v.bi.Int64(), true
	case KindFloat:
		f := v.f
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	case KindBigDecimal:
		if !v.d.IsInteger() {
			return 0, false
		}
		x := v.d.BigInt()
		if !x.IsInt64() {
			return 0, false
		}
		return x.Int64(), true
	case KindString:
		n, err := strconv.ParseInt(v.s, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func coerceFloat64(v *Value) (float64, bool) {
	switch v.Kind() {
	case KindFloat:
		return v.f, true
	case KindInteger:
		return float64(v.i), true
	case KindBigInteger:
		f, _ := new(big.Float).SetInt(v.bi).Float64()
		return f, true
	case KindBigDecimal:
		return v.d.InexactFloat64(), true
	case KindString:
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func coerceBigInt(v *Value) (*big.Int, bool) {
	switch v.Kind() {
	case KindBigInteger:
		return new(big.Int).Set(v.bi), true
	case KindInteger:
		return big.NewInt(v.i), true
	case KindFloat:
		f := v.f
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return nil, false
		}
		x, _ := new(big.Float).SetFloat64(f).Int(nil)
		return x, true
	case KindBigDecimal:
		if !v.d.IsInteger() {
			return nil, false
		}
		return v.d.BigInt(), true
	case KindString:
		x, ok := new(big.Int).SetString(v.s, 10)
		if !ok {
			return nil, false
		}
		return x, true
	default:
		return nil, false
	}
}

func coerceDecimal(v *Value) (decimal.Decimal, bool) {
	switch v.Kind() {
	case KindBigDecimal:
		return v.d, true
	case KindInteger:
		return decimal.NewFromInt(v.i), true
	case KindBigInteger:
		return decimal.NewFromBigInt(v.bi, 0), true
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(v.f), true
	case KindString:
		d, err := decimal.NewFromString(v.s)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	default:
		return decimal.Decimal{}, false
	}
}
