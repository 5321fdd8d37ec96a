package uni

type primitive struct {
	name string
	fn   BuiltinFunc
	doc  string
}

func (in *Interpreter) registerStdlib() {
	for _, prims := range [][]primitive{
		stackPrimitives,
		mathPrimitives,
		controlPrimitives,
		definitionPrimitives,
		listPrimitives,
		ioPrimitives,
	} {
		for _, prim := range prims {
			in.Register(prim.name, prim.fn, prim.doc)
		}
	}
	if in.tower.Complex {
		for _, prim := range complexPrimitives {
			in.Register(prim.name, prim.fn, prim.doc)
		}
	}
	in.RegisterAsync("delay", delay, "( ms -- ) Suspend for ms milliseconds")
}

// args returns the top n stack values, bottom first, without popping them;
// primitives validate their operands before consuming any.
func (in *Interpreter) args(n int) ([]Value, error) {
	i := len(in.stack) - n
	if i < 0 {
		return nil, StackUnderflowError{n, len(in.stack)}
	}
	return in.stack[i:len(in.stack):len(in.stack)], nil
}

// drop discards the top n stack values; the caller has checked that there
// are that many.
func (in *Interpreter) drop(n int) {
	i := len(in.stack) - n
	for j := i; j < len(in.stack); j++ {
		in.stack[j] = nil
	}
	in.stack = in.stack[:i]
}

// replace drops the top n values, pushing vals in their place.
func (in *Interpreter) replace(n int, vals ...Value) error {
	in.drop(n)
	return in.Push(vals...)
}
