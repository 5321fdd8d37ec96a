// Package runeio names control characters, parses rune literals, and
// writes runes in a form safe for 7-bit terminals.
package runeio

import (
	"errors"
	"strconv"
	"strings"
)

// C0 and C1 control mnemonics, indexed by code point offset.
var (
	c0Names = [32]string{
		"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
		"BS", "HT", "NL", "VT", "NP", "CR", "SO", "SI",
		"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
		"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
	}
	c1Names = [32]string{
		"PAD", "HOP", "BPH", "NBH", "IND", "NEL", "SSA", "ESA",
		"HTS", "HTJ", "VTS", "PLD", "PLU", "RI", "SS2", "SS3",
		"DCS", "PU1", "PU2", "STS", "CCH", "MW", "SPA", "EPA",
		"SOS", "SGCI", "SCI", "CSI", "ST", "OSC", "PM", "APC",
	}
)

// controlWords maps "<NAME>" mnemonics, in either case, and caret forms
// like ^C or ^[ to their runes.
var controlWords = make(map[string]rune, 3*(len(c0Names)+len(c1Names)+2))

func init() {
	add := func(name string, r rune) {
		word := "<" + name + ">"
		controlWords[strings.ToUpper(word)] = r
		controlWords[strings.ToLower(word)] = r
		if caret := CaretForm(r); caret != "" {
			controlWords[caret] = r
		}
	}
	for i, name := range c0Names {
		add(name, rune(i))
	}
	for i, name := range c1Names {
		add(name, rune(0x80+i))
	}
	add("SP", 0x20)
	add("DEL", 0x7f)
}

// Name returns the "<NAME>" mnemonic of a control rune, or the empty string.
func Name(r rune) string {
	switch {
	case r >= 0 && r < 0x20:
		return "<" + c0Names[r] + ">"
	case r >= 0x80 && r < 0xa0:
		return "<" + c1Names[r-0x80] + ">"
	case r == 0x20:
		return "<SP>"
	case r == 0x7f:
		return "<DEL>"
	}
	return ""
}

// CaretForm computes the ^-escaped printable form of a control rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}

// ErrInvalidRune is returned by UnquoteRune for malformed tokens.
var ErrInvalidRune = errors.New(`rune literal must be "^X" "<NAME>" or 'X'`)

// UnquoteRune parses a rune literal token: a quoted character like 'x' or
// '\n', a mnemonic like <ESC>, or a caret form like ^[ .
func UnquoteRune(token string) (rune, error) {
	if r, defined := controlWords[token]; defined {
		return r, nil
	}
	if len(token) < 3 || token[0] != '\'' || token[len(token)-1] != '\'' {
		return 0, ErrInvalidRune
	}
	r, _, tail, err := strconv.UnquoteChar(token[1:], '\'')
	if err != nil {
		return 0, err
	}
	if tail != "'" {
		return 0, ErrInvalidRune
	}
	return r, nil
}

// IsRuneLiteral returns true if token looks like a rune literal rather than
// a quoted symbol.
func IsRuneLiteral(token string) bool {
	if _, defined := controlWords[token]; defined {
		return true
	}
	_, err := UnquoteRune(token)
	return err == nil
}
