// Package flushio provides writers that buffer output until explicitly
// flushed, such as before an interpreter suspends or finishes.
package flushio

import (
	"bufio"
	"io"
	"io/ioutil"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard is a WriteFlusher that drops everything written to it.
var Discard WriteFlusher = nopFlusher{ioutil.Discard}

// NewWriteFlusher returns w if it is already a WriteFlusher. Writers that
// need no flushing, like the discard writer or in-memory buffers, get a noop
// Flush; anything else is buffered by a new bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	switch impl := w.(type) {
	case nil:
		return Discard
	case WriteFlusher:
		return impl
	case buffer:
		return nopFlusher{impl}
	}
	if w == ioutil.Discard {
		return Discard
	}
	return bufio.NewWriter(w)
}

// buffer matches in memory writers like bytes.Buffer and strings.Builder.
type buffer interface {
	io.Writer
	Cap() int
	Len() int
	Grow(n int)
	Reset()
}

type nopFlusher struct{ io.Writer }

func (nopFlusher) Flush() error { return nil }

// WriteFlushers combines WriteFlushers into one that writes to, and
// flushes, all of them in order. Nested combinations are flattened.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	var all multi
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case multi:
			all = append(all, impl...)
		default:
			if wf != Discard {
				all = append(all, wf)
			}
		}
	}
	switch len(all) {
	case 0:
		return Discard
	case 1:
		return all[0]
	}
	return all
}

type multi []WriteFlusher

func (wfs multi) Write(p []byte) (int, error) {
	for _, wf := range wfs {
		n, err := wf.Write(p)
		if err == nil && n != len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return n, err
		}
	}
	return len(p), nil
}

func (wfs multi) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
