package jsonval

import (
	"io"

	"github.com/go-kit/log"
	"github.com/pkg/errors"
)

// Parser carries parse configuration. It keeps no state across runs and is
// safe for concurrent use.
type Parser struct {
	logger log.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger directs non-fatal parse diagnostics, currently only duplicate
// object keys, to logger. The default parser discards them.
func WithLogger(logger log.Logger) Option {
	return func(p *Parser) {
		if logger == nil {
			logger = log.NewNopLogger()
		}
		p.logger = logger
	}
}

// NewParser returns a Parser with the given options applied.
func NewParser(opts ...Option) *Parser {
	p := &Parser{logger: log.NewNopLogger()}
	for _, o := range opts {
		o(p)
	}
	return p
}

var defaultParser = NewParser()

func (p *Parser) run(data []byte) *parser {
	return &parser{s: newScanner(data), logger: p.logger}
}

// Parse parses a complete JSON document whose top level value is an object
// or an array.
func (p *Parser) Parse(s string) (*Value, error) {
	return p.ParseBytes([]byte(s))
}

// ParseBytes is Parse for a byte slice. The data is not retained.
func (p *Parser) ParseBytes(data []byte) (*Value, error) {
	return p.run(data).parseDocument()
}

// ParseReader reads r to its end and parses the contents like Parse.
func (p *Parser) ParseReader(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading JSON input")
	}
	return p.ParseBytes(data)
}

// ParseValue parses a single JSON value, which may also be a bare scalar
// such as a number or a string.
func (p *Parser) ParseValue(s string) (*Value, error) {
	return p.ParseValueBytes([]byte(s))
}

// ParseValueBytes is ParseValue for a byte slice. The data is not retained.
func (p *Parser) ParseValueBytes(data []byte) (*Value, error) {
	return p.run(data).parseSingle()
}

// ParseValueReader reads r to its end and parses the contents like
// ParseValue.
func (p *Parser) ParseValueReader(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading JSON input")
	}
	return p.ParseValueBytes(data)
}

// Parse parses a complete JSON document whose top level value is an object
// or an array, using the default parser.
func Parse(s string) (*Value, error) { return defaultParser.Parse(s) }

// ParseBytes is Parse for a byte slice.
func ParseBytes(data []byte) (*Value, error) { return defaultParser.ParseBytes(data) }

// ParseReader reads r to its end and parses the contents like Parse.
func ParseReader(r io.Reader) (*Value, error) { return defaultParser.ParseReader(r) }

// ParseValue parses a single JSON value, which may also be a bare scalar,
// using the default parser.
func ParseValue(s string) (*Value, error) { return defaultParser.ParseValue(s) }

// ParseValueBytes is ParseValue for a byte slice.
func ParseValueBytes(data []byte) (*Value, error) { return defaultParser.ParseValueBytes(data) }

// ParseValueReader reads r to its end and parses the contents like
// ParseValue.
func ParseValueReader(r io.Reader) (*Value, error) { return defaultParser.ParseValueReader(r) }

// Valid reports whether data is a valid JSON encoding.
func Valid(data []byte) bool {
	_, err := defaultParser.ParseValueBytes(data)
	return err == nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts any
// JSON value, scalars included, and uses the default parser.
func (v *Value) UnmarshalJSON(data []byte) error {
	m, err := defaultParser.ParseValueBytes(data)
	if err != nil {
		return err
	}
	*v = *m
	return nil
}
