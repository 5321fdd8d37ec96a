package uni

import (
	"context"
	"time"

	"github.com/jcorbin/uni/internal/panicerr"
)

// AsyncFunc implements the start half of an asynchronous primitive. It runs
// with exclusive access to the interpreter, typically popping its arguments,
// and returns a Future for the rest of the operation.
type AsyncFunc func(ctx context.Context, in *Interpreter) (Future, error)

// Future is an in-flight asynchronous operation. Done is closed once the
// operation has finished; the evaluator then calls Complete, again with
// exclusive interpreter access, to deposit results or report failure.
type Future interface {
	Done() <-chan struct{}
	Complete(in *Interpreter) error
}

// Completion finishes an asynchronous operation on the evaluator.
type Completion func(in *Interpreter) error

var closedChan = make(chan struct{})

func init() { close(closedChan) }

// Ready returns an already finished Future; the evaluator still suspends
// once before running its completion.
func Ready(c Completion) Future { return readyFuture{c} }

type readyFuture struct{ c Completion }

func (f readyFuture) Done() <-chan struct{} { return closedChan }

func (f readyFuture) Complete(in *Interpreter) error {
	if f.c == nil {
		return nil
	}
	return f.c(in)
}

// Spawn runs f on its own goroutine. The resulting Future completes with
// f's Completion, or fails with its error; panics are recovered as errors.
func Spawn(ctx context.Context, name string, f func(ctx context.Context) (Completion, error)) Future {
	sf := &spawnFuture{done: make(chan struct{})}
	errch := panicerr.Go(name, func() (err error) {
		sf.c, err = f(ctx)
		return err
	})
	go func() {
		defer close(sf.done)
		sf.err = <-errch
	}()
	return sf
}

type spawnFuture struct {
	done chan struct{}
	c    Completion
	err  error
}

func (sf *spawnFuture) Done() <-chan struct{} { return sf.done }

func (sf *spawnFuture) Complete(in *Interpreter) error {
	if sf.err != nil {
		return sf.err
	}
	if sf.c == nil {
		return nil
	}
	return sf.c(in)
}

// After returns a Future that completes with c once d has elapsed.
func After(d time.Duration, c Completion) Future {
	tf := &timerFuture{done: make(chan struct{}), c: c}
	time.AfterFunc(d, func() { close(tf.done) })
	return tf
}

type timerFuture struct {
	done chan struct{}
	c    Completion
}

func (tf *timerFuture) Done() <-chan struct{} { return tf.done }

func (tf *timerFuture) Complete(in *Interpreter) error {
	if tf.c == nil {
		return nil
	}
	return tf.c(in)
}
