/*
Package jsonval parses and renders JSON with a lossless value model.
In contrast to encoding/json the package is centered around an explicit
value tree. A parsed document keeps the distinctions the source had:
machine integers, arbitrarily large integers, floats and high-precision
decimals are separate kinds, and object member order survives a round
trip.

Numbers pick the smallest kind that holds the literal losslessly. A
literal fitting int64 parses as Integer, larger whole numbers as
BigInteger. Decimal forms parse as Float only when float64 is known to
represent them exactly enough to reproduce their meaning, everything
else as BigDecimal with the source literal preserved for rendering.

Value fulfills the json.Marshaler and json.Unmarshaler interfaces.
*/
package jsonval // import "github.com/d1ced/jsonval"
