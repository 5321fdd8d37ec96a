package runeio

import (
	"io"
	"unicode/utf8"
)

// AppendANSI appends the encoding of r to b: ASCII as is, NEL as "\r\n",
// other C1 controls in their 7-bit ESC form (e.g. CSI as "\x1b["), and
// everything else as UTF-8.
func AppendANSI(b []byte, r rune) []byte {
	switch {
	case r < 0x80:
		return append(b, byte(r))
	case r == 0x85:
		return append(b, '\r', '\n')
	case r <= 0x9f:
		return append(b, 0x1b, byte(r^0xc0))
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return append(b, buf[:n]...)
}

// WriteANSIRune writes one rune to w as encoded by AppendANSI.
func WriteANSIRune(w io.Writer, r rune) (int, error) {
	var buf [utf8.UTFMax]byte
	return w.Write(AppendANSI(buf[:0], r))
}

// WriteANSIString writes s to w as encoded by AppendANSI, in a single write.
func WriteANSIString(w io.Writer, s string) (int, error) {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		b = AppendANSI(b, r)
	}
	return w.Write(b)
}
