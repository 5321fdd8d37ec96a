package uni

import (
	"fmt"
	"strings"

	"github.com/jcorbin/uni/internal/flushio"
)

// Interpreter holds all state of one evaluation context: the data stack,
// the return stack, the dictionary, and the continuation stack. It must only
// be used by one goroutine at a time; independent tasks use independent
// interpreters.
type Interpreter struct {
	logging
	out flushio.WriteFlusher

	tower Tower
	dict  Dictionary

	stack  []Value
	rstack []Value
	conts  contStack

	stackLimit int
	depthLimit int
	maxDepth   int
	stdlib     bool

	docTarget Symbol
	pending   Future
}

// New creates an interpreter with the standard primitives installed.
func New(opts ...Option) *Interpreter {
	var in Interpreter
	defaults.apply(&in)
	Options(opts...).apply(&in)
	if in.stdlib {
		in.registerStdlib()
	}
	return &in
}

// Intern returns the interpreter's unique symbol for name.
func (in *Interpreter) Intern(name string) Symbol { return in.dict.Intern(name) }

// Dictionary provides direct access to the interpreter's bindings.
func (in *Interpreter) Dictionary() *Dictionary { return &in.dict }

// Tower returns the interpreter's numeric configuration.
func (in *Interpreter) Tower() Tower { return in.tower }

// Define binds name globally.
func (in *Interpreter) Define(name string, b Binding) {
	in.dict.DefineGlobal(in.Intern(name), b)
}

// Register installs a synchronous primitive.
func (in *Interpreter) Register(name string, fn BuiltinFunc, doc string) {
	in.Define(name, Binding{Value: Builtin{name, fn}, Executable: true, Doc: doc})
}

// RegisterAsync installs a primitive that suspends the evaluator.
func (in *Interpreter) RegisterAsync(name string, fn AsyncFunc, doc string) {
	in.Define(name, Binding{Value: AsyncBuiltin{name, fn}, Executable: true, Doc: doc})
}

// Stack returns a copy of the data stack, bottom first.
func (in *Interpreter) Stack() []Value {
	return append([]Value(nil), in.stack...)
}

// ReturnStack returns a copy of the return stack, bottom first.
func (in *Interpreter) ReturnStack() []Value {
	return append([]Value(nil), in.rstack...)
}

// Depth returns the current continuation stack depth.
func (in *Interpreter) Depth() int { return len(in.conts) }

// MaxDepth returns the deepest the continuation stack has been since the
// last Load.
func (in *Interpreter) MaxDepth() int { return in.maxDepth }

// Push pushes values onto the data stack.
func (in *Interpreter) Push(vals ...Value) error {
	if lim := in.stackLimit; lim > 0 && len(in.stack)+len(vals) > lim {
		return ErrStackOverflow
	}
	in.stack = append(in.stack, vals...)
	return nil
}

// Pop removes and returns the top of the data stack.
func (in *Interpreter) Pop() (Value, error) {
	i := len(in.stack) - 1
	if i < 0 {
		return nil, StackUnderflowError{1, 0}
	}
	v := in.stack[i]
	in.stack[i] = nil
	in.stack = in.stack[:i]
	return v, nil
}

// PopN removes and returns the top n values, in stack order. Nothing is
// removed if fewer than n values are available.
func (in *Interpreter) PopN(n int) ([]Value, error) {
	i := len(in.stack) - n
	if i < 0 {
		return nil, StackUnderflowError{n, len(in.stack)}
	}
	vals := append([]Value(nil), in.stack[i:]...)
	for j := i; j < len(in.stack); j++ {
		in.stack[j] = nil
	}
	in.stack = in.stack[:i]
	return vals, nil
}

// Peek returns the value n places below the top of the data stack.
func (in *Interpreter) Peek(n int) (Value, error) {
	i := len(in.stack) - 1 - n
	if n < 0 || i < 0 {
		return nil, StackUnderflowError{n + 1, len(in.stack)}
	}
	return in.stack[i], nil
}

// Clear empties the data stack.
func (in *Interpreter) Clear() {
	for i := range in.stack {
		in.stack[i] = nil
	}
	in.stack = in.stack[:0]
}

// PopSymbol pops a symbol, failing with a type mismatch for anything else.
func (in *Interpreter) PopSymbol(op string) (Symbol, error) {
	v, err := in.Peek(0)
	if err != nil {
		return Symbol{}, err
	}
	sym, ok := v.(Symbol)
	if !ok {
		return Symbol{}, typeMismatch(op, "symbol", v)
	}
	in.Pop()
	return sym, nil
}

// PopList pops a list, failing with a type mismatch for anything else.
func (in *Interpreter) PopList(op string) (List, error) {
	v, err := in.Peek(0)
	if err != nil {
		return nil, err
	}
	list, ok := v.(List)
	if !ok {
		return nil, typeMismatch(op, "list", v)
	}
	in.Pop()
	return list, nil
}

// PopInt pops an integer that fits in a Go int.
func (in *Interpreter) PopInt(op string) (int, error) {
	v, err := in.Peek(0)
	if err != nil {
		return 0, err
	}
	n, ok := v.(Int32)
	if !ok {
		return 0, typeMismatch(op, "int32", v)
	}
	in.Pop()
	return int(n), nil
}

// PopText pops a string literal, i.e. a list of code points.
func (in *Interpreter) PopText(op string) (string, error) {
	v, err := in.Peek(0)
	if err != nil {
		return "", err
	}
	s, ok := TextOf(v)
	if !ok {
		return "", typeMismatch(op, "string", v)
	}
	in.Pop()
	return s, nil
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
