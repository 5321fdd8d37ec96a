// Package prelude provides the standard words that are written in Uni itself,
// rather than as primitives.
package prelude

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/jcorbin/uni/internal/fileinput"
	"github.com/jcorbin/uni/reader"
	"github.com/jcorbin/uni/uni"
)

// Load evaluates the prelude in the given interpreter, which must have the
// standard primitives installed. Complex constants are included only when
// the interpreter's tower enables them.
func Load(ctx context.Context, in *uni.Interpreter) error {
	src := Source{Complex: in.Tower().Complex}
	var buf bytes.Buffer
	if _, err := src.WriteTo(&buf); err != nil {
		return err
	}
	forms, err := reader.New(in, fileinput.Named(src.Name(), &buf)).ReadAll()
	if err != nil {
		return err
	}
	if err := in.Eval(ctx, forms...); err != nil {
		return fmt.Errorf("%v: %w", src.Name(), err)
	}
	return nil
}

// Source writes the prelude's Uni source text.
type Source struct {
	Complex bool
}

// Name names the source for error locations.
func (Source) Name() string { return "prelude.uni" }

// WriteTo writes one definition per line, each followed by its doc string.
func (src Source) WriteTo(w io.Writer) (n int64, err error) {
	flush := func(wto io.WriterTo) {
		if err != nil {
			return
		}
		var m int64
		m, err = wto.WriteTo(w)
		n += m
	}

	var buf bytes.Buffer
	line := func(parts ...string) {
		if err == nil {
			for _, s := range parts {
				buf.WriteString(s)
			}
			buf.WriteByte('\n')
			flush(&buf)
		}
	}
	word := func(name, body, doc string) {
		line(`'`, name, ` [`, body, `] def`)
		line(`  "`, doc, `" doc`)
	}
	constant := func(name, value, doc string) {
		line(`'`, name, ` `, value, ` val`)
		line(`  "`, doc, `" doc`)
	}

	// The stack shufflers all fall out of pick and roll, counting down from
	// the top of the stack.
	word(`swap`, `1 roll`, `( a b -- b a ) Swap top two stack items`)
	word(`dup`, `0 pick`, `( a -- a a ) Duplicate top stack item`)
	word(`over`, `1 pick`, `( a b -- a b a ) Copy second stack item to top`)
	word(`rot`, `2 roll`, `( a b c -- b c a ) Rotate third item to top`)
	word(`nip`, `swap drop`, `( a b -- b ) Remove second stack item`)
	word(`tuck`, `swap over`, `( a b -- b a b ) Copy top below second item`)
	word(`?dup`, `dup truthy? [dup] [] if`, `( x -- x x | x ) Duplicate if truthy, otherwise leave unchanged`)

	// Truth is just 1 and 0, so true and false are plain constants.
	constant(`true`, `1`, `( -- 1 ) Canonical truth`)
	constant(`false`, `0`, `( -- 0 ) Canonical falsehood`)
	word(`not`, `[false] [true] if`, `( x -- bool ) Logical negation of truthiness`)
	word(`nil?`, `[] =`, `( x -- bool ) Test if value is empty list`)

	word(`1+`, `1 +`, `( n -- n+1 ) Increment by 1`)
	word(`1-`, `1 -`, `( n -- n-1 ) Decrement by 1`)

	word(`cr`, `10 emit`, `( -- ) Print a newline character`)
	word(`space`, `32 emit`, `( -- ) Print a space character`)

	// List words recurse rather than loop; each and while recurse in tail
	// position, so they run in constant continuation depth.
	word(`length`,
		`dup nil? [drop 0] [cdr length 1 +] if`,
		`( list -- n ) Calculate list length recursively`)
	word(`list-ref`,
		`dup 0 = [drop car] [1 - swap cdr swap list-ref] if`,
		`( list index -- element ) Get nth element (0-indexed)`)
	word(`append`,
		`swap dup nil? [drop] [dup car swap cdr rot append cons] if`,
		`( list1 list2 -- list3 ) Concatenate two lists`)
	word(`each`,
		`>r dup nil? [drop r> drop] [dup car r@ exec cdr r> each] if`,
		`( list [fn] -- ) Execute fn on each element of list`)

	// The short circuit words take quotations, running the second only when
	// the first does not already decide the answer.
	word(`and`,
		`swap exec dup [drop exec] [swap drop] if`,
		`( [cond1] [cond2] -- result ) Short-circuit AND: executes cond2 only if cond1 is truthy`)
	word(`or`,
		`swap exec dup [swap drop] [drop exec] if`,
		`( [cond1] [cond2] -- result ) Short-circuit OR: executes cond2 only if cond1 is falsy`)

	// The loop state lives on the return stack while the condition runs.
	word(`while`,
		`>r >r r@ exec [r> r> dup rot swap >r >r exec r> r> while] [r> r> drop drop] if`,
		`( [condition] [body] -- ) Loop: executes body while condition returns truthy`)

	if src.Complex {
		line(`'i 0+1i def`)
		line(`  "( -- i ) Imaginary unit constant" doc`)
	}

	return n, err
}
