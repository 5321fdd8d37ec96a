// Package panicerr converts panics, and goroutine exits, into plain errors.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Catch runs f on the calling goroutine, returning any panic as an error.
func Catch(name string, f func() error) error {
	errch := make(chan error, 1)
	func() {
		defer recoverPanic(name, errch)
		errch <- f()
	}()
	return <-errch
}

// Go runs f on a new goroutine. The returned channel receives f's result,
// or an error describing any panic or runtime.Goexit, and is then closed.
func Go(name string, f func() error) <-chan error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExit(name, errch)
		defer recoverPanic(name, errch)
		errch <- f()
	}()
	return errch
}

// Recover is like Go, but waits for f to finish.
func Recover(name string, f func() error) error {
	return <-Go(name, f)
}

func recoverPanic(name string, errch chan<- error) {
	if e := recover(); e != nil {
		select {
		case errch <- panicError{name, e, debug.Stack()}:
		default:
		}
	}
}

func recoverExit(name string, errch chan<- error) {
	// a normal return has already filled the channel
	select {
	case errch <- exitError(name):
	default:
	}
}

type panicError struct {
	name  string
	e     interface{}
	stack []byte
}

func (pe panicError) Error() string { return fmt.Sprint(pe) }

func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.e)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.name, pe.e)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

func (pe panicError) Unwrap() error {
	err, _ := pe.e.(error)
	return err
}

type exitError string

func (name exitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

// IsPanic returns true if err is a recovered panic.
func IsPanic(err error) bool {
	var pe panicError
	return errors.As(err, &pe)
}

// IsExit returns true if err is a recovered goroutine exit.
func IsExit(err error) bool {
	var xe exitError
	return errors.As(err, &xe)
}

// PanicStack returns the stack trace captured with a recovered panic, or
// the empty string.
func PanicStack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}
