// Package fileinput reads runes sequentially through a queue of named
// input streams, tracking the location of every rune for error reporting.
package fileinput

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a position within an input stream.
type Location struct {
	Name string
	Line int
	Col  int
}

func (loc Location) String() string {
	if loc.Col == 0 {
		return fmt.Sprintf("%v:%v", loc.Name, loc.Line)
	}
	return fmt.Sprintf("%v:%v:%v", loc.Name, loc.Line, loc.Col)
}

// Input implements io.RuneScanner over a Queue of streams, moving on to the
// next stream whenever one is exhausted. Streams that implement io.Closer
// are closed once read.
type Input struct {
	Queue []io.Reader

	rr   io.RuneReader
	cl   io.Closer
	loc  Location
	prev Location

	last     rune
	lastSize int
	unread   bool
}

// New creates an Input reading from srcs in order.
func New(srcs ...io.Reader) *Input {
	return &Input{Queue: srcs}
}

// Location returns the location of the most recently read rune.
func (in *Input) Location() Location { return in.loc }

// ReadRune reads the next rune, crossing from one stream into the next as
// needed; io.EOF is only returned after the last stream.
func (in *Input) ReadRune() (rune, int, error) {
	if in.unread {
		in.unread = false
		in.advance(in.last)
		return in.last, in.lastSize, nil
	}
	for {
		if in.rr == nil && !in.nextIn() {
			in.lastSize = 0
			return 0, 0, io.EOF
		}
		r, n, err := in.rr.ReadRune()
		if n > 0 {
			in.last, in.lastSize = r, n
			in.advance(r)
			return r, n, nil
		}
		if err == nil {
			continue
		}
		in.closeIn()
		if err != io.EOF {
			return 0, 0, err
		}
	}
}

// UnreadRune steps back one rune; only one rune may be unread at a time.
func (in *Input) UnreadRune() error {
	if in.unread || in.lastSize == 0 {
		return bufio.ErrInvalidUnreadRune
	}
	in.unread = true
	in.loc = in.prev
	return nil
}

func (in *Input) advance(r rune) {
	in.prev = in.loc
	if r == '\n' {
		in.loc.Line++
		in.loc.Col = 0
	} else {
		in.loc.Col++
	}
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	if rr, ok := r.(io.RuneReader); ok {
		in.rr = rr
	} else {
		in.rr = bufio.NewReader(r)
	}
	in.cl, _ = r.(io.Closer)
	in.loc = Location{Name: nameOf(r), Line: 1}
	in.prev = in.loc
	in.lastSize = 0
	return true
}

func (in *Input) closeIn() {
	if in.cl != nil {
		in.cl.Close()
		in.cl = nil
	}
	in.rr = nil
}

// Close closes the current stream and any still queued.
func (in *Input) Close() (err error) {
	in.closeIn()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

// Named gives a reader a name for Location reporting.
func Named(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
