// Package reader parses Uni source text into top-level values.
//
// The syntax is deliberately thin: whitespace separates tokens, brackets
// build lists, and everything that is not a number, string, or rune literal
// is a symbol.
//
//	42 -7 123456789012345    integers, Int32 or BigInt by size
//	1/3 1.25                 exact rationals
//	3+4i -2i 1/2-i           complex numbers
//	'name                    quoted symbol, deposited rather than invoked
//	[1 2 dup]                list
//	"text"                   string, read as a list of code points
//	'x' '\n' <ESC>           rune literals, read as Int32 code points
//	\ comment                runs to the end of the line
package reader

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/jcorbin/uni/internal/fileinput"
	"github.com/jcorbin/uni/internal/runeio"
	"github.com/jcorbin/uni/uni"
)

// Interner mints symbols; an *uni.Interpreter is one.
type Interner interface {
	Intern(name string) uni.Symbol
}

// ErrIncomplete is wrapped by syntax errors caused by input ending inside a
// list or string; more input may complete it.
var ErrIncomplete = errors.New("incomplete input")

// SyntaxError reports malformed source text.
type SyntaxError struct {
	Loc string
	Err error
}

func (err *SyntaxError) Error() string { return fmt.Sprintf("%v: %v", err.Loc, err.Err) }
func (err *SyntaxError) Unwrap() error { return err.Err }

// Reader reads values from a queue of sources.
type Reader struct {
	in   *fileinput.Input
	syms Interner
}

// New creates a Reader over srcs, read in order as one stream.
func New(syms Interner, srcs ...io.Reader) *Reader {
	return &Reader{fileinput.New(srcs...), syms}
}

// ReadString reads every value in src, which is named name in errors.
func ReadString(syms Interner, name, src string) ([]uni.Value, error) {
	return New(syms, fileinput.Named(name, strings.NewReader(src))).ReadAll()
}

// ReadAll reads values until the end of input.
func (rd *Reader) ReadAll() (vals []uni.Value, err error) {
	for {
		v, err := rd.Next()
		if err == io.EOF {
			return vals, nil
		} else if err != nil {
			return vals, err
		}
		vals = append(vals, v)
	}
}

// Close closes any sources not yet fully read.
func (rd *Reader) Close() error { return rd.in.Close() }

// Next reads one top-level value, returning io.EOF at the end of input.
func (rd *Reader) Next() (uni.Value, error) {
	v, err := rd.next()
	if err == errClose {
		return nil, rd.errorf("unexpected ]")
	}
	return v, err
}

var errClose = errors.New("close bracket")

func (rd *Reader) errorf(mess string, args ...interface{}) error {
	return &SyntaxError{rd.in.Location().String(), fmt.Errorf(mess, args...)}
}

func (rd *Reader) incomplete(loc fileinput.Location, what string) error {
	return &SyntaxError{loc.String(), fmt.Errorf("unclosed %v: %w", what, ErrIncomplete)}
}

func (rd *Reader) next() (uni.Value, error) {
	r, err := rd.skipSpace()
	if err != nil {
		return nil, err
	}
	switch r {
	case '[':
		return rd.list()
	case ']':
		return nil, errClose
	case '"':
		return rd.text()
	case '\'':
		return rd.quote()
	}
	rd.in.UnreadRune()
	token, err := rd.token()
	if err != nil {
		return nil, err
	}
	return rd.atom(token)
}

func (rd *Reader) skipSpace() (rune, error) {
	for {
		r, _, err := rd.in.ReadRune()
		if err != nil {
			return 0, err
		}
		switch {
		case r == '\\':
			for r != '\n' {
				if r, _, err = rd.in.ReadRune(); err != nil {
					return 0, err
				}
			}
		case !unicode.IsSpace(r):
			return r, nil
		}
	}
}

func isDelim(r rune) bool {
	return unicode.IsSpace(r) || r == '[' || r == ']' || r == '"'
}

// token reads up to the next delimiter, which is left unread.
func (rd *Reader) token() (string, error) {
	var sb strings.Builder
	for {
		r, _, err := rd.in.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", err
		}
		if isDelim(r) {
			rd.in.UnreadRune()
			break
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

func (rd *Reader) list() (uni.Value, error) {
	start := rd.in.Location()
	list := uni.List{}
	for {
		v, err := rd.next()
		switch {
		case err == errClose:
			return list, nil
		case err == io.EOF:
			return nil, rd.incomplete(start, "[")
		case err != nil:
			return nil, err
		}
		list = append(list, v)
	}
}

func (rd *Reader) text() (uni.Value, error) {
	start := rd.in.Location()
	var sb strings.Builder
	sb.WriteByte('"')
	for escaped := false; ; {
		r, _, err := rd.in.ReadRune()
		if err == io.EOF {
			return nil, rd.incomplete(start, "string")
		} else if err != nil {
			return nil, err
		}
		if r == '\n' && !escaped {
			// strconv.Unquote rejects raw newlines; allow multi-line strings
			sb.WriteString(`\n`)
			continue
		}
		sb.WriteRune(r)
		if r == '"' && !escaped {
			break
		}
		escaped = r == '\\' && !escaped
	}
	s, err := strconv.Unquote(sb.String())
	if err != nil {
		return nil, rd.errorf("invalid string %v: %w", sb.String(), err)
	}
	return uni.Text(s), nil
}

// quote reads what follows a single quote: either a rune literal like 'x'
// or '\n', or a quoted symbol like 'name.
func (rd *Reader) quote() (uni.Value, error) {
	r, _, err := rd.in.ReadRune()
	if err == io.EOF {
		return nil, rd.errorf("expected symbol or rune after '")
	} else if err != nil {
		return nil, err
	}

	if r == '\\' {
		var sb strings.Builder
		sb.WriteString(`'\`)
		for {
			r, _, err := rd.in.ReadRune()
			if err == io.EOF || (err == nil && isDelim(r)) {
				return nil, rd.errorf("unterminated rune literal %v", sb.String())
			} else if err != nil {
				return nil, err
			}
			sb.WriteRune(r)
			if r == '\'' {
				break
			}
		}
		c, err := runeio.UnquoteRune(sb.String())
		if err != nil {
			return nil, rd.errorf("invalid rune literal %v: %w", sb.String(), err)
		}
		return uni.Int32(c), nil
	}

	r2, _, err := rd.in.ReadRune()
	if err == nil && r2 == '\'' {
		return uni.Int32(r), nil
	} else if err == nil {
		rd.in.UnreadRune()
	} else if err != io.EOF {
		return nil, err
	}
	if isDelim(r) {
		return nil, rd.errorf("expected symbol or rune after '")
	}

	token, err := rd.token()
	if err != nil {
		return nil, err
	}
	return rd.syms.Intern(string(r) + token).Quote(), nil
}

func (rd *Reader) atom(token string) (uni.Value, error) {
	if num, ok, err := parseNumber(token); err != nil {
		return nil, rd.errorf("invalid number %v: %w", token, err)
	} else if ok {
		return num, nil
	}
	if len(token) > 2 && token[0] == '<' && token[len(token)-1] == '>' {
		if r, err := runeio.UnquoteRune(token); err == nil {
			return uni.Int32(r), nil
		}
	}
	return rd.syms.Intern(token), nil
}
