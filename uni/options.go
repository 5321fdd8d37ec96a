package uni

import (
	"io"
	"io/ioutil"

	"github.com/jcorbin/uni/internal/flushio"
)

// Option configures an Interpreter.
type Option interface{ apply(in *Interpreter) }

// Options combines any number of options into one.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(in *Interpreter) {
	for _, opt := range opts {
		opt.apply(in)
	}
}

var defaults = options{
	withOutput(ioutil.Discard),
	withDepthLimit(defaultDepthLimit),
	withStdlib(true),
}

const defaultDepthLimit = 1 << 20

// WithLogf enables step tracing through a printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithOutput sets the writer that output words like . and emit write to.
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithTee copies output to another writer.
func WithTee(w io.Writer) Option { return withTee(w) }

// WithComplex enables or disables the complex tier of the numeric tower.
func WithComplex(enabled bool) Option { return withComplex(enabled) }

// WithDepthLimit bounds the continuation stack; 0 disables the limit.
func WithDepthLimit(limit int) Option { return withDepthLimit(limit) }

// WithStackLimit bounds the data stack; 0 disables the limit.
func WithStackLimit(limit int) Option { return withStackLimit(limit) }

// WithoutStdlib creates an interpreter with an empty dictionary.
func WithoutStdlib() Option { return withStdlib(false) }

type withLogfn func(mess string, args ...interface{})
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type withComplex bool
type withDepthLimit int
type withStackLimit int
type withStdlib bool

func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }

func (logfn withLogfn) apply(in *Interpreter) {
	in.logfn = logfn
}

func (o outputOption) apply(in *Interpreter) {
	if in.out != nil {
		in.out.Flush()
	}
	in.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(in *Interpreter) {
	in.out = flushio.WriteFlushers(in.out, flushio.NewWriteFlusher(o.Writer))
}

func (enabled withComplex) apply(in *Interpreter) {
	in.tower.Complex = bool(enabled)
}

func (lim withDepthLimit) apply(in *Interpreter) {
	in.depthLimit = int(lim)
}

func (lim withStackLimit) apply(in *Interpreter) {
	in.stackLimit = int(lim)
}

func (std withStdlib) apply(in *Interpreter) {
	in.stdlib = bool(std)
}
