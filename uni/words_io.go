package uni

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jcorbin/uni/internal/runeio"
)

//// Input/Output Operations

// Symbol   Name    Function
//    .     print   pop a value and write it, followed by a space
//   .s     show    write the whole stack without changing it
//  emit    emit    pop a code point and write it as a rune
//  puts    puts    pop a string and write it
var ioPrimitives = []primitive{
	{".", printValue, "( x -- ) Print a value"},
	{".s", showStack, "( -- ) Print the stack"},
	{"emit", emit, "( code -- ) Print a character"},
	{"puts", puts, "( \"text\" -- ) Print a string"},
	{"now", now, "( -- ms ) Milliseconds since the unix epoch"},
}

func printValue(in *Interpreter) error {
	v, err := in.Pop()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(in.out, "%v ", v)
	return err
}

func showStack(in *Interpreter) error {
	_, err := fmt.Fprintf(in.out, "<%v> ", len(in.stack))
	for _, v := range in.stack {
		if err == nil {
			_, err = fmt.Fprintf(in.out, "%v ", v)
		}
	}
	if err == nil {
		_, err = io.WriteString(in.out, "\n")
	}
	return err
}

func emit(in *Interpreter) error {
	v, err := in.Peek(0)
	if err != nil {
		return err
	}
	r, ok := v.(Int32)
	if !ok || r < 0 {
		return typeMismatch("emit", "code point", v)
	}
	in.Pop()
	_, err = runeio.WriteANSIRune(in.out, rune(r))
	return err
}

func puts(in *Interpreter) error {
	s, err := in.PopText("puts")
	if err != nil {
		return err
	}
	_, err = runeio.WriteANSIString(in.out, s)
	return err
}

func now(in *Interpreter) error {
	return in.Push(Int(time.Now().UnixNano() / int64(time.Millisecond)))
}

//// Asynchronous Operations

// delay pops a non-negative millisecond count and suspends the evaluator
// until that much time has passed.
func delay(ctx context.Context, in *Interpreter) (Future, error) {
	v, err := in.Peek(0)
	if err != nil {
		return nil, err
	}
	ms, err := in.milliseconds("delay", v)
	if err != nil {
		return nil, err
	}
	in.Pop()
	return After(time.Duration(ms)*time.Millisecond, nil), nil
}

// maxMilliseconds is the longest wait a time.Duration can hold.
const maxMilliseconds = math.MaxInt64 / int64(time.Millisecond)

func (in *Interpreter) milliseconds(op string, v Value) (int64, error) {
	switch n := Normalize(v).(type) {
	case Int32:
		if n >= 0 {
			return int64(n), nil
		}
	case BigInt:
		if n.i.Sign() >= 0 && n.i.IsInt64() && n.i.Int64() <= maxMilliseconds {
			return n.i.Int64(), nil
		}
	}
	return 0, typeMismatch(op, "milliseconds within the range of a duration", v)
}

// Output returns the interpreter's output writer, for host primitives.
func (in *Interpreter) Output() io.Writer { return in.out }

// Flush flushes any buffered output.
func (in *Interpreter) Flush() error { return in.out.Flush() }
