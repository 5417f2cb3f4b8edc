package jsonval

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// maxNumberLength caps numeric literals. A literal reaching this many
// characters, counting sign, point and exponent marker, fails the parse.
const maxNumberLength = 1024

// minInt64Decile is the accumulator boundary of the running overflow check:
// one more digit appended to an accumulator above it cannot underflow
// int64.
const minInt64Decile = math.MinInt64 / 10

// parseNumber consumes a numeric literal whose first character c has
// already been read and classifies it into the narrowest faithful kind.
//
// The integral magnitude is accumulated negatively so the signed minimum is
// representable during the scan. A literal is kept as float64 only when it
// carries at most 15 mantissa and fraction digits and its exponent passes
// the digit-pattern test below; those thresholds are part of the numeric
// contract and deliberately conservative.
func (p *parser) parseNumber(c rune) (*Value, error) {
	buf := p.scratch[:0]
	digits := 0
	negative := false
	isDecimal := false
	fitsInLong := true
	fitsInDouble := true
	var negValue int64
	var n int
	var err error

	// sign
	if c == '-' {
		negative = true
		buf = append(buf, '-')
		if c, err = p.next(); err != nil {
			return nil, err
		}
		if c == eof {
			return nil, p.errorAt(ErrMalformedNumber, "malformed number")
		}
	}

	// mantissa
	if buf, n, c, err = p.readDigits(buf, c, false); err != nil {
		return nil, err
	}
	digits += n

	// fractional part
	if c == '.' {
		isDecimal = true
		if len(buf) >= maxNumberLength {
			return nil, p.errorAt(ErrMalformedNumber, "number is too long")
		}
		buf = append(buf, '.')
		if c, err = p.next(); err != nil {
			return nil, err
		}
		if c == eof {
			return nil, p.errorAt(ErrMalformedNumber, "malformed number")
		}
		if buf, n, c, err = p.readDigits(buf, c, true); err != nil {
			return nil, err
		}
		digits += n
	} else if c != 'e' && c != 'E' {
		// plain integer, check whether it fits in int64
		i := 0
		if negative {
			i = 1
		}
		negValue = -int64(buf[i] - '0')
		for i++; i < len(buf); i++ {
			newNegValue := negValue*10 - int64(buf[i]-'0')
			fitsInLong = negValue > minInt64Decile ||
				(negValue == minInt64Decile && newNegValue < negValue)
			if !fitsInLong {
				break
			}
			negValue = newNegValue
		}
	}
	if digits > 15 {
		fitsInDouble = false
	}

	// exponent
	if c == 'e' || c == 'E' {
		isDecimal = true
		if len(buf) >= maxNumberLength {
			return nil, p.errorAt(ErrMalformedNumber, "number is too long")
		}
		buf = append(buf, byte(c))
		if c, err = p.next(); err != nil {
			return nil, err
		}
		if c == eof {
			return nil, p.errorAt(ErrMalformedNumber, "malformed number")
		}
		if c == '+' || c == '-' {
			if len(buf) >= maxNumberLength {
				return nil, p.errorAt(ErrMalformedNumber, "number is too long")
			}
			buf = append(buf, byte(c))
			if c, err = p.next(); err != nil {
				return nil, err
			}
			if c == eof {
				return nil, p.errorAt(ErrMalformedNumber, "malformed number")
			}
		}
		expStart := len(buf)
		if buf, _, c, err = p.readDigits(buf, c, true); err != nil {
			return nil, err
		}
		exp := buf[expStart:]
		if fitsInDouble && len(exp) >= 3 &&
			(len(exp) > 3 || exp[0] > '3' || exp[1] > '0' || exp[2] > '7') {
			fitsInDouble = false
		}
	}

	// the scan always reads one character past the literal
	p.s.unread()

	lit := string(buf)
	p.scratch = buf[:0]
	switch {
	case !isDecimal && fitsInLong &&
		(negative || negValue != math.MinInt64) &&
		(!negative || negValue != 0):
		if negative {
			return NewInt(negValue), nil
		}
		return NewInt(-negValue), nil
	case !isDecimal:
		x, ok := new(big.Int).SetString(lit, 10)
		if !ok {
			return nil, p.errorAt(ErrMalformedNumber, "malformed number")
		}
		return &Value{kind: KindBigInteger, bi: x}, nil
	case fitsInDouble:
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, p.errorAt(ErrMalformedNumber, "malformed number")
		}
		return NewFloat(f), nil
	default:
		d, err := decimal.NewFromString(lit)
		if err != nil {
			return nil, p.errorAt(ErrMalformedNumber, "number out of range")
		}
		return parsedDecimal(d, lit), nil
	}
}

// readDigits consumes a digit run that starts with c. It returns the
// extended buffer, the run length and the first character past the run,
// which remains the current character. A run that is empty, or that starts
// with a zero followed by more digits when zeroFirstAllowed is false, is
// malformed.
func (p *parser) readDigits(buf []byte, c rune, zeroFirstAllowed bool) ([]byte, int, rune, error) {
	n := 0
	var err error
	for c >= '0' && c <= '9' {
		if len(buf) >= maxNumberLength {
			return buf, n, c, p.errorAt(ErrMalformedNumber, "number is too long")
		}
		buf = append(buf, byte(c))
		n++
		if c, err = p.next(); err != nil {
			return buf, n, c, err
		}
	}
	if n == 0 || !zeroFirstAllowed && n > 1 && buf[len(buf)-n] == '0' {
		return buf, n, c, p.errorAt(ErrMalformedNumber, "malformed number")
	}
	return buf, n, c, nil
}
