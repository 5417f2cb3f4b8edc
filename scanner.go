package jsonval

import (
	"errors"
	"unicode/utf8"
)

// eof is delivered by the scanner once the input is exhausted. Like a
// character it can be pushed back and read again.
const eof rune = -1

// errInvalidEncoding reports undecodable input bytes. The offending byte is
// not consumed.
var errInvalidEncoding = errors.New("invalid UTF-8 encoding")

// scanner delivers the characters of a document one at a time with a single
// pushback slot and line/column bookkeeping. Columns count characters, not
// bytes; the first character of a line is column 1. Reading past the end
// advances the column once more, so end-of-stream errors point just past
// the final character.
type scanner struct {
	data   []byte
	pos    int
	line   int
	col    int
	last   rune
	pushed bool
}

func newScanner(data []byte) *scanner {
	return &scanner{data: data, line: 1}
}

// next returns the next character or eof. Re-delivering a pushed back
// character does not move the position.
func (s *scanner) next() (rune, error) {
	if s.pushed {
		s.pushed = false
		return s.last, nil
	}
	var r rune
	if s.pos >= len(s.data) {
		r = eof
		s.col++
	} else {
		c, size := utf8.DecodeRune(s.data[s.pos:])
		if c == utf8.RuneError && size == 1 {
			return 0, errInvalidEncoding
		}
		s.pos += size
		r = c
		if r == '\n' {
			s.line++
			s.col = 0
		} else {
			s.col++
		}
	}
	s.last = r
	return r, nil
}

// unread makes the last delivered character available again. The parser
// never holds more than one character of lookahead; a second consecutive
// unread is a bug in this package, not a malformed document.
func (s *scanner) unread() {
	if s.pushed {
		panic("jsonval: internal error: cannot go back twice")
	}
	s.pushed = true
}
