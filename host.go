package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/jcorbin/uni/internal/fileinput"
	"github.com/jcorbin/uni/internal/logio"
	"github.com/jcorbin/uni/prelude"
	"github.com/jcorbin/uni/reader"
	"github.com/jcorbin/uni/uni"
)

// host creates and drives interpreters on behalf of the command line.
type host struct {
	log     *logio.Logger
	opts    []uni.Option
	prelude bool
	timeout time.Duration
	dump    io.Writer

	// readLine backs the read-line word; nil leaves it undefined.
	readLine func() (string, error)
}

func (h *host) newInterpreter(ctx context.Context, out io.Writer) (*uni.Interpreter, error) {
	opts := append(h.opts[:len(h.opts):len(h.opts)], uni.WithOutput(out))
	in := uni.New(opts...)
	if h.readLine != nil {
		in.RegisterAsync("read-line", h.readLineWord,
			`( -- "line" true | false ) Read a line of input, or false at its end`)
	}
	if h.prelude {
		if err := prelude.Load(ctx, in); err != nil {
			return nil, err
		}
	}
	return in, nil
}

// readLineWord waits for input on its own goroutine, so that other
// interpreters, and the host, keep running meanwhile.
func (h *host) readLineWord(ctx context.Context, in *uni.Interpreter) (uni.Future, error) {
	return uni.Spawn(ctx, "read-line", func(ctx context.Context) (uni.Completion, error) {
		line, err := h.readLine()
		if err == io.EOF {
			return func(in *uni.Interpreter) error {
				return in.Push(uni.Bool(false))
			}, nil
		} else if err != nil {
			return nil, err
		}
		return func(in *uni.Interpreter) error {
			return in.Push(uni.Text(line), uni.Bool(true))
		}, nil
	}), nil
}

// scanLines returns a line source that is safe to share between
// interpreters.
func scanLines(r io.Reader) func() (string, error) {
	var mu sync.Mutex
	sc := bufio.NewScanner(r)
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
}

// eval runs forms to completion within the host's time limit. An evaluation
// still suspended when time runs out is abandoned.
func (h *host) eval(ctx context.Context, in *uni.Interpreter, forms []uni.Value) error {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	err := in.Eval(ctx, forms...)
	if in.Busy() {
		in.Abandon()
	}
	if h.dump != nil {
		if derr := in.Dump(h.dump); err == nil {
			err = derr
		}
	}
	return err
}

// runFile evaluates one whole program in a fresh interpreter; quit ends it
// early without error.
func (h *host) runFile(ctx context.Context, name string, r io.Reader, out io.Writer) error {
	in, err := h.newInterpreter(ctx, out)
	if err != nil {
		return err
	}
	forms, err := reader.New(in, fileinput.Named(name, r)).ReadAll()
	if err != nil {
		return err
	}
	if err := h.eval(ctx, in, forms); err != nil && !errors.Is(err, uni.ErrQuit) {
		return fmt.Errorf("%v: %w", name, err)
	}
	return nil
}

// runFiles runs each named file in its own interpreter, up to jobs at a
// time; the first failure cancels the rest. Output of parallel runs is
// logged line by line under each file's name, so that it cannot interleave
// within a line.
func (h *host) runFiles(ctx context.Context, names []string, jobs int, out io.Writer) error {
	if jobs < 1 {
		jobs = 1
	}
	sem := semaphore.NewWeighted(int64(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		name := name
		eg.Go(func() error {
			defer sem.Release(1)
			w := out
			if jobs > 1 && len(names) > 1 {
				lw := h.log.Writer(name)
				defer lw.Close()
				w = lw
			}
			return h.runNamed(ctx, name, w)
		})
	}
	return eg.Wait()
}

func (h *host) runNamed(ctx context.Context, name string, out io.Writer) error {
	if name == "-" {
		return h.runFile(ctx, "<stdin>", os.Stdin, out)
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return h.runFile(ctx, name, f, out)
}
