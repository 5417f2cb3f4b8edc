package jsonval

import (
	"errors"
	"fmt"
)

// Categories of failure reported by this package. Parse failures come
// wrapped in a *ParseError carrying the input position; errors.Is matches
// the category either way.
var (
	ErrMalformedNumber     = errors.New("malformed number")
	ErrInvalidSurrogate    = errors.New("invalid surrogate pair")
	ErrUnescapedControl    = errors.New("unescaped control character")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrInvalidKeyword      = errors.New("invalid keyword")
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnexpectedEOF       = errors.New("unexpected end of stream")
	ErrTrailingContent     = errors.New("expecting end of stream")
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrInvalidConstruction = errors.New("invalid construction")
	ErrInvalidNumber       = errors.New("invalid number")
)

// ParseError captures information on errors when parsing.
type ParseError struct {
	Line   int    // 1-based line of the offending character
	Column int    // column of the offending character, first column is 1
	Err    error  // the error category, one of the Err variables above
	Detail string // human readable description
}

func (e *ParseError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("JSON parsing error at line %d, column %d: %s",
		e.Line, e.Column, msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Where returns the line and column where the syntax error occurred.
func (e *ParseError) Where() (line, col int) {
	return e.Line, e.Column
}
