package jsonval

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// parser holds the state of a single parse run. The grammar is consumed in
// one character-level pass with at most one character of lookahead.
type parser struct {
	s       *scanner
	scratch []byte
	logger  log.Logger
}

// next wraps the scanner, turning encoding failures into positioned parse
// errors.
func (p *parser) next() (rune, error) {
	c, err := p.s.next()
	if err != nil {
		return 0, p.errorAt(ErrUnexpectedCharacter, "invalid UTF-8 encoding")
	}
	return c, nil
}

func (p *parser) errorAt(category error, format string, args ...any) error {
	return &ParseError{
		Line:   p.s.line,
		Column: p.s.col,
		Err:    category,
		Detail: fmt.Sprintf(format, args...),
	}
}

// expected builds the error for a character that does not fit the grammar,
// classifying end of stream separately from a wrong character.
func (p *parser) expected(what string, c rune) error {
	category := ErrUnexpectedCharacter
	if c == eof {
		category = ErrUnexpectedEOF
	}
	return p.errorAt(category, "expecting %s, got: '%s'", what, display(c))
}

// display renders a character for error messages.
func display(c rune) string {
	switch {
	case c == eof:
		return "end of stream"
	case c < 0x20 || c >= 0x7f && c < 0xa0:
		return fmt.Sprintf("0x%x", c)
	default:
		return string(c)
	}
}

// skipWhitespace returns the next character that is not JSON whitespace.
// Only space, tab, carriage return and line feed separate tokens.
func (p *parser) skipWhitespace() (rune, error) {
	for {
		c, err := p.next()
		if err != nil {
			return 0, err
		}
		switch c {
		case ' ', '\t', '\r', '\n':
		default:
			return c, nil
		}
	}
}

// parseDocument parses a complete document whose top level value must be an
// object or an array, then requires end of stream.
func (p *parser) parseDocument() (*Value, error) {
	c, err := p.skipWhitespace()
	if err != nil {
		return nil, err
	}
	var v *Value
	switch c {
	case '{':
		v, err = p.parseObject()
	case '[':
		v, err = p.parseArray()
	default:
		return nil, p.expected("'[' or '{'", c)
	}
	if err != nil {
		return nil, err
	}
	return v, p.expectEnd()
}

// parseSingle parses a complete document that may also be a bare scalar,
// then requires end of stream.
func (p *parser) parseSingle() (*Value, error) {
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return v, p.expectEnd()
}

func (p *parser) expectEnd() error {
	c, err := p.skipWhitespace()
	if err != nil {
		return err
	}
	if c != eof {
		return p.errorAt(ErrTrailingContent, "expecting end of stream, got: '%s'", display(c))
	}
	return nil
}

func (p *parser) parseValue() (*Value, error) {
	c, err := p.skipWhitespace()
	if err != nil {
		return nil, err
	}
	switch {
	case c == eof:
		return nil, p.errorAt(ErrUnexpectedEOF, "unexpected end of stream")
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return NewString(s), nil
	case c == '[':
		return p.parseArray()
	case c == '{':
		return p.parseObject()
	case c == 't':
		return p.parseKeyword("true", trueValue)
	case c == 'f':
		return p.parseKeyword("false", falseValue)
	case c == 'n':
		return p.parseKeyword("null", nullValue)
	case c == '-' || c >= '0' && c <= '9':
		return p.parseNumber(c)
	default:
		return nil, p.errorAt(ErrUnexpectedCharacter, "unexpected character: '%s'", display(c))
	}
}

// parseArray parses the elements after a consumed '['.
func (p *parser) parseArray() (*Value, error) {
	a := NewArray()
	c, err := p.skipWhitespace()
	if err != nil {
		return nil, err
	}
	if c != ']' {
		p.s.unread()
		for {
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			a.Push(v)
			if c, err = p.skipWhitespace(); err != nil {
				return nil, err
			}
			if c == ']' {
				break
			}
			if c != ',' {
				return nil, p.expected("',' or ']'", c)
			}
		}
	}
	return a.Value(), nil
}

// parseObject parses the members after a consumed '{'. A repeated key
// overwrites the previous value in place and is reported through the
// diagnostic logger, never as an error.
func (p *parser) parseObject() (*Value, error) {
	o := NewObject()
	c, err := p.skipWhitespace()
	if err != nil {
		return nil, err
	}
	if c != '}' {
		for {
			if c != '"' {
				return nil, p.expected("key string", c)
			}
			key, err := p.parseString()
			if err != nil {
				return nil, err
			}
			if c, err = p.skipWhitespace(); err != nil {
				return nil, err
			}
			if c != ':' {
				return nil, p.expected("':'", c)
			}
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			if o.Has(key) {
				level.Warn(p.logger).Log(
					"msg", "object key is not unique",
					"key", key,
					"line", p.s.line,
					"column", p.s.col,
				)
			}
			o.Set(key, v)
			if c, err = p.skipWhitespace(); err != nil {
				return nil, err
			}
			if c == '}' {
				break
			}
			if c != ',' {
				return nil, p.expected("',' or '}'", c)
			}
			if c, err = p.skipWhitespace(); err != nil {
				return nil, err
			}
		}
	}
	return o.Value(), nil
}

// parseKeyword matches the remainder of keyword, whose first character was
// consumed by the dispatch.
func (p *parser) parseKeyword(keyword string, v *Value) (*Value, error) {
	for _, want := range keyword[1:] {
		c, err := p.next()
		if err != nil {
			return nil, err
		}
		if c != want {
			if c == eof {
				return nil, p.errorAt(ErrInvalidKeyword, "end of stream while parsing keyword %q", keyword)
			}
			return nil, p.errorAt(ErrInvalidKeyword, "invalid character '%s' while parsing keyword %q", display(c), keyword)
		}
	}
	return v, nil
}

// parseString consumes a string literal after its opening quote and returns
// the decoded text.
func (p *parser) parseString() (string, error) {
	buf := p.scratch[:0]
	for {
		c, err := p.next()
		if err != nil {
			return "", err
		}
		switch {
		case c == '"':
			s := string(buf)
			p.scratch = buf[:0]
			return s, nil
		case c == '\\':
			r, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			if utf16.IsSurrogate(r) {
				if r, err = p.completeSurrogatePair(r); err != nil {
					return "", err
				}
			}
			buf = utf8.AppendRune(buf, r)
		case c == eof:
			return "", p.errorAt(ErrUnterminatedString, "unterminated string")
		case c < 0x20:
			return "", p.errorAt(ErrUnescapedControl, "unescaped control character 0x%02x", c)
		default:
			buf = utf8.AppendRune(buf, c)
		}
	}
}

// parseEscape decodes one escape sequence after its backslash. A \u escape
// returns the raw code unit, which may be one half of a surrogate pair.
func (p *parser) parseEscape() (rune, error) {
	c, err := p.next()
	if err != nil {
		return 0, err
	}
	switch c {
	case eof:
		return 0, p.errorAt(ErrUnterminatedString, "unterminated escape sequence")
	case 'u':
		var r rune
		for i := 0; i < 4; i++ {
			if c, err = p.next(); err != nil {
				return 0, err
			}
			if c == eof {
				return 0, p.errorAt(ErrUnterminatedString, "unterminated escape sequence")
			}
			r <<= 4
			switch {
			case c >= '0' && c <= '9':
				r += c - '0'
			case c >= 'a' && c <= 'f':
				r += c - 'a' + 10
			case c >= 'A' && c <= 'F':
				r += c - 'A' + 10
			default:
				return 0, p.errorAt(ErrUnexpectedCharacter, "malformed escape sequence")
			}
		}
		return r, nil
	case 't':
		return '\t', nil
	case 'b':
		return '\b', nil
	case 'n':
		return '\n', nil
	case 'f':
		return '\f', nil
	case 'r':
		return '\r', nil
	case '"', '\\', '/':
		return c, nil
	default:
		return 0, p.errorAt(ErrUnexpectedCharacter, "unknown escape sequence '\\%s'", display(c))
	}
}

// completeSurrogatePair reads the low half that must follow a high
// surrogate escape. hi is the code unit decoded from the previous escape.
func (p *parser) completeSurrogatePair(hi rune) (rune, error) {
	if hi >= 0xDC00 {
		return 0, p.errorAt(ErrInvalidSurrogate, "lone low surrogate escape sequence unexpected")
	}
	c, err := p.next()
	if err != nil {
		return 0, err
	}
	if c != '\\' {
		return 0, p.errorAt(ErrInvalidSurrogate, "low surrogate escape sequence expected")
	}
	lo, err := p.parseEscape()
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(lo) || lo < 0xDC00 {
		return 0, p.errorAt(ErrInvalidSurrogate, "low surrogate escape sequence expected")
	}
	return utf16.DecodeRune(hi, lo), nil
}
