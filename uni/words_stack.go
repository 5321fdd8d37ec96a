package uni

//// Stack Operations

// Name    Function
// drop    discard the top of the stack
// pick    pop n, then copy the nth value (0 is the top) onto the top
// roll    pop n, then move the nth value (0 is the top) onto the top
// clear   discard every value on the stack
// depth   push the number of values on the stack
//
// Everything else, swap dup over rot and friends, is built from pick and
// roll by the prelude.
var stackPrimitives = []primitive{
	{"drop", drop, "( a -- ) Discard the top stack item"},
	{"pick", pick, "( xn ... x0 n -- xn ... x0 xn ) Copy the nth item to the top"},
	{"roll", roll, "( xn ... x0 n -- xn-1 ... x0 xn ) Move the nth item to the top"},
	{"clear", clearStack, "( ... -- ) Empty the stack"},
	{"depth", depth, "( -- n ) Push the number of stack items"},
	{">r", toR, "( x -- ) R:( -- x ) Move the top item to the return stack"},
	{"r>", fromR, "( -- x ) R:( x -- ) Move the top return stack item back"},
	{"r@", copyR, "( -- x ) R:( x -- x ) Copy the top return stack item"},
}

func drop(in *Interpreter) error {
	_, err := in.Pop()
	return err
}

func pick(in *Interpreter) error {
	n, err := in.index("pick")
	if err != nil {
		return err
	}
	x := in.stack[len(in.stack)-2-n]
	return in.replace(1, x)
}

func roll(in *Interpreter) error {
	n, err := in.index("roll")
	if err != nil {
		return err
	}
	in.drop(1)
	i := len(in.stack) - 1 - n
	x := in.stack[i]
	copy(in.stack[i:], in.stack[i+1:])
	in.stack[len(in.stack)-1] = x
	return nil
}

// index checks the operand of pick and roll: a non-negative Int32 on top,
// with at least that many more values beneath it.
func (in *Interpreter) index(op string) (int, error) {
	v, err := in.Peek(0)
	if err != nil {
		return 0, err
	}
	n, ok := v.(Int32)
	if !ok || n < 0 {
		return 0, typeMismatch(op, "non-negative int32", v)
	}
	if have := len(in.stack) - 1; int(n) >= have {
		return 0, StackUnderflowError{int(n) + 2, have + 1}
	}
	return int(n), nil
}

func clearStack(in *Interpreter) error {
	in.Clear()
	return nil
}

func depth(in *Interpreter) error {
	return in.Push(Int(int64(len(in.stack))))
}

//// Return Stack
//
// The return stack is scratch space for words like each and while to park
// values out of the way of the data stack. It is discarded when an
// evaluation aborts.

func toR(in *Interpreter) error {
	v, err := in.Pop()
	if err != nil {
		return err
	}
	in.rstack = append(in.rstack, v)
	return nil
}

func fromR(in *Interpreter) error {
	i := len(in.rstack) - 1
	if i < 0 {
		return StackUnderflowError{1, 0}
	}
	v := in.rstack[i]
	in.rstack[i] = nil
	in.rstack = in.rstack[:i]
	return in.Push(v)
}

func copyR(in *Interpreter) error {
	i := len(in.rstack) - 1
	if i < 0 {
		return StackUnderflowError{1, 0}
	}
	return in.Push(in.rstack[i])
}
