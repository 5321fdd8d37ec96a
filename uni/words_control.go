package uni

import (
	"fmt"
	"io"
	"strings"
)

//// Control
//
// None of these run anything themselves: they push continuations, so that
// branches and quotations run as ordinary evaluator steps, and a branch in
// tail position is a tail call.

// Name    Function
// if      pop else, then and a condition; invoke then if the condition is
//         truthy, else otherwise
// exec    pop a value and invoke it inside a fresh local frame
// quit    abort the evaluation with ErrQuit
var controlPrimitives = []primitive{
	{"if", ifElse, "( cond [then] [else] -- ... ) Run then if cond is truthy, else otherwise"},
	{"exec", exec, "( [code] -- ... ) Run a quotation, or invoke a word"},
	{"quit", quit, "( -- ) Stop evaluating"},
}

func ifElse(in *Interpreter) error {
	args, err := in.args(3)
	if err != nil {
		return err
	}
	c := IfCont{Truthy(args[0]), args[1], args[2]}
	in.drop(3)
	in.conts.push(c)
	return nil
}

func exec(in *Interpreter) error {
	v, err := in.Pop()
	if err != nil {
		return err
	}
	in.conts.push(InvokeCont{V: v, Scoped: true})
	return nil
}

func quit(in *Interpreter) error { return ErrQuit }

//// Definitions

// Name    Function
// def     bind a symbol to a body; naming the symbol runs the body
// val     bind a symbol to a value; naming the symbol pushes the value
// lval    like val, but always into the current local frame
// doc     attach text to the most recent definition
// help    print a word's documentation
// words   print every globally defined word
var definitionPrimitives = []primitive{
	{"def", def, "( 'name body -- ) Define an executable word"},
	{"val", val, "( 'name value -- ) Define a constant"},
	{"lval", lval, "( 'name value -- ) Define a constant in the current local frame"},
	{"doc", doc, "( \"text\" -- ) Document the most recent definition"},
	{"help", help, "( 'name -- ) Print a word's documentation"},
	{"words", words, "( -- ) List all defined words"},
}

func (in *Interpreter) binding(op string) (Symbol, Value, error) {
	args, err := in.args(2)
	if err != nil {
		return Symbol{}, nil, err
	}
	name, ok := args[0].(Symbol)
	if !ok {
		return Symbol{}, nil, DefinitionError(fmt.Sprintf("%v name must be a symbol, not %v %v",
			op, TypeName(args[0]), args[0]))
	}
	body := args[1]
	in.drop(2)
	return name.Unquote(), body, nil
}

func def(in *Interpreter) error {
	name, body, err := in.binding("def")
	if err != nil {
		return err
	}
	in.conts.push(DefinitionCont{name, body})
	return nil
}

func val(in *Interpreter) error {
	name, v, err := in.binding("val")
	if err != nil {
		return err
	}
	in.dict.Define(name, Binding{Value: v})
	in.docTarget = name
	return nil
}

func lval(in *Interpreter) error {
	if in.dict.Frames() == 0 {
		return ErrFrame
	}
	name, v, err := in.binding("lval")
	if err != nil {
		return err
	}
	in.docTarget = name
	return in.dict.DefineLocal(name, Binding{Value: v})
}

func doc(in *Interpreter) error {
	if in.docTarget.name == "" {
		return DefinitionError("doc must follow a definition")
	}
	text, err := in.PopText("doc")
	if err != nil {
		return err
	}
	target := in.docTarget
	in.docTarget = Symbol{}
	return in.dict.SetDoc(target, text)
}

func help(in *Interpreter) error {
	v, err := in.Peek(0)
	if err != nil {
		return err
	}
	name, ok := v.(Symbol)
	if !ok {
		return typeMismatch("help", "symbol", v)
	}
	b, err := in.dict.Lookup(name)
	if err != nil {
		return err
	}
	in.Pop()
	if b.Doc == "" {
		_, err = fmt.Fprintf(in.out, "%v has no documentation yet\n", name.name)
	} else {
		_, err = fmt.Fprintf(in.out, "%v %v\n", name.name, b.Doc)
	}
	return err
}

func words(in *Interpreter) error {
	var sb strings.Builder
	for i, sym := range in.dict.Words() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sym.name)
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(in.out, sb.String())
	return err
}
