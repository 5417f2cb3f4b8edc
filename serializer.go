package jsonval

import (
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// DefaultIndent is the indent step used by PrettyString.
const DefaultIndent = "  "

const hexDigits = "0123456789abcdef"

// appendEscapedString appends s to buf with every character JSON cannot
// carry verbatim replaced by its escape sequence. Runs of plain characters
// are copied in one piece. The result carries no quotes.
func appendEscapedString(buf []byte, s string) []byte {
	last := 0
	for i, c := range s {
		switch {
		case c == '"' || c == '\\':
			buf = append(buf, s[last:i]...)
			buf = append(buf, '\\', byte(c))
			last = i + 1
		case c < 0x20:
			buf = append(buf, s[last:i]...)
			switch c {
			case '\b':
				buf = append(buf, '\\', 'b')
			case '\t':
				buf = append(buf, '\\', 't')
			case '\n':
				buf = append(buf, '\\', 'n')
			case '\f':
				buf = append(buf, '\\', 'f')
			case '\r':
				buf = append(buf, '\\', 'r')
			default:
				buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			}
			last = i + 1
		case c == '\u2028' || c == '\u2029':
			// Valid JSON, but a syntax error inside JavaScript string
			// literals.
			buf = append(buf, s[last:i]...)
			buf = append(buf, '\\', 'u', '2', '0', '2', hexDigits[c&0xf])
			last = i + 3
		}
	}
	return append(buf, s[last:]...)
}

func appendQuotedString(buf []byte, s string) []byte {
	buf = append(buf, '"')
	buf = appendEscapedString(buf, s)
	return append(buf, '"')
}

// Escape returns s with all characters that JSON requires escaped replaced
// by their escape sequences. The result carries no quotes.
func Escape(s string) string {
	return string(appendEscapedString(nil, s))
}

// appendFloat renders a finite f in the shortest round-trip form, fixed
// notation for 1e-6 <= |f| < 1e21 and exponent notation outside that range.
// A fixed result without a '.' gets a ".0" suffix so the value reads back
// as a float.
func appendFloat(buf []byte, f float64) []byte {
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	n := len(buf)
	buf = strconv.AppendFloat(buf, f, format, -1, 64)
	if format == 'e' {
		// strconv pads single-digit exponents to two digits.
		if m := len(buf); m >= 4 && buf[m-4] == 'e' && buf[m-3] == '-' && buf[m-2] == '0' {
			buf[m-2] = buf[m-1]
			buf = buf[:m-1]
		}
		return buf
	}
	for _, c := range buf[n:] {
		if c == '.' {
			return buf
		}
	}
	return append(buf, ".0"...)
}

// decimalLiteral is the rendered form of a big decimal: the source literal
// when the value was parsed, its decimal string otherwise.
func (v *Value) decimalLiteral() string {
	if v.lit != "" {
		return v.lit
	}
	return v.d.String()
}

// encoder renders a value tree into a single buffer. An empty indent
// renders compact, anything else pretty.
type encoder struct {
	buf    []byte
	indent string
}

func (e *encoder) encode(v *Value, depth int) error {
	switch v.Kind() {
	case KindNull:
		e.buf = append(e.buf, "null"...)
	case KindBool:
		if v.b {
			e.buf = append(e.buf, "true"...)
		} else {
			e.buf = append(e.buf, "false"...)
		}
	case KindInteger:
		e.buf = strconv.AppendInt(e.buf, v.i, 10)
	case KindBigInteger:
		e.buf = v.bi.Append(e.buf, 10)
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return errors.Wrapf(ErrInvalidNumber, "cannot render %v", v.f)
		}
		e.buf = appendFloat(e.buf, v.f)
	case KindBigDecimal:
		e.buf = append(e.buf, v.decimalLiteral()...)
	case KindString:
		e.buf = appendQuotedString(e.buf, v.s)
	case KindArray:
		return e.encodeArray(v.a, depth)
	case KindObject:
		return e.encodeObject(v.o, depth)
	default:
		return errors.Errorf("cannot render value of kind %s", v.Kind())
	}
	return nil
}

func (e *encoder) encodeArray(a *Array, depth int) error {
	if a.Len() == 0 {
		e.buf = append(e.buf, "[]"...)
		return nil
	}
	e.buf = append(e.buf, '[')
	for i, el := range a.items {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		e.newline(depth + 1)
		if err := e.encode(el, depth+1); err != nil {
			return err
		}
	}
	e.newline(depth)
	e.buf = append(e.buf, ']')
	return nil
}

func (e *encoder) encodeObject(o *Object, depth int) error {
	if o.Len() == 0 {
		e.buf = append(e.buf, "{}"...)
		return nil
	}
	e.buf = append(e.buf, '{')
	for i, m := range o.members {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		e.newline(depth + 1)
		e.buf = appendQuotedString(e.buf, m.key)
		if e.indent == "" {
			e.buf = append(e.buf, ':')
		} else {
			e.buf = append(e.buf, " : "...)
		}
		if err := e.encode(m.val, depth+1); err != nil {
			return err
		}
	}
	e.newline(depth)
	e.buf = append(e.buf, '}')
	return nil
}

// newline starts an indented line in pretty mode and is a no-op when
// rendering compact.
func (e *encoder) newline(depth int) {
	if e.indent == "" {
		return
	}
	e.buf = append(e.buf, '\n')
	for i := 0; i < depth; i++ {
		e.buf = append(e.buf, e.indent...)
	}
}

// String renders v as compact JSON with no interstitial whitespace. Values
// that cannot be rendered yield the empty string.
func (v *Value) String() string {
	e := encoder{buf: make([]byte, 0, 64)}
	if err := e.encode(v, 0); err != nil {
		return ""
	}
	return string(e.buf)
}

// PrettyString renders v with two-space indentation and one element per
// line. Empty containers render as {} and [].
func (v *Value) PrettyString() string {
	e := encoder{buf: make([]byte, 0, 64), indent: DefaultIndent}
	if err := e.encode(v, 0); err != nil {
		return ""
	}
	return string(e.buf)
}

// AppendJSON appends the compact rendering of v to buf and returns the
// extended slice.
func (v *Value) AppendJSON(buf []byte) ([]byte, error) {
	e := encoder{buf: buf}
	if err := e.encode(v, 0); err != nil {
		return buf, err
	}
	return e.buf, nil
}

// Write writes the compact rendering of v to w in a single call.
func (v *Value) Write(w io.Writer) (int, error) {
	e := encoder{buf: make([]byte, 0, 256)}
	if err := e.encode(v, 0); err != nil {
		return 0, err
	}
	return w.Write(e.buf)
}

// WritePretty writes the indented rendering of v to w in a single call.
// An empty indent falls back to DefaultIndent.
func (v *Value) WritePretty(w io.Writer, indent string) (int, error) {
	if indent == "" {
		indent = DefaultIndent
	}
	e := encoder{buf: make([]byte, 0, 256), indent: indent}
	if err := e.encode(v, 0); err != nil {
		return 0, err
	}
	return w.Write(e.buf)
}

// MarshalJSON implements the json.Marshaler interface with the compact
// rendering.
func (v *Value) MarshalJSON() ([]byte, error) {
	return v.AppendJSON(nil)
}
