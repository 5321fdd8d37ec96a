package uni

//// Lists
//
// Lists are immutable: cons and cdr build new slices rather than sharing
// storage that a later cons could overwrite.

var listPrimitives = []primitive{
	{"cons", cons, "( x list -- list' ) Prepend x to list"},
	{"car", car, "( list -- x ) First item of a non-empty list"},
	{"cdr", cdr, "( list -- list' ) All but the first item of a non-empty list"},
	{"list", makeList, "( x1 ... xn n -- list ) Collect the top n items into a list"},
	{"type", typeOf, "( x -- \"name\" ) Name the type of a value"},
	{"truthy?", truthy, "( x -- bool ) Test whether a value counts as true"},
}

func cons(in *Interpreter) error {
	args, err := in.args(2)
	if err != nil {
		return err
	}
	tail, ok := args[1].(List)
	if !ok {
		return typeMismatch("cons", "list", args[1])
	}
	list := make(List, 0, len(tail)+1)
	list = append(list, args[0])
	list = append(list, tail...)
	return in.replace(2, list)
}

func (in *Interpreter) nonEmpty(op string) (List, error) {
	args, err := in.args(1)
	if err != nil {
		return nil, err
	}
	list, ok := args[0].(List)
	if !ok || len(list) == 0 {
		return nil, typeMismatch(op, "non-empty list", args[0])
	}
	return list, nil
}

func car(in *Interpreter) error {
	list, err := in.nonEmpty("car")
	if err != nil {
		return err
	}
	return in.replace(1, list[0])
}

func cdr(in *Interpreter) error {
	list, err := in.nonEmpty("cdr")
	if err != nil {
		return err
	}
	return in.replace(1, append(List{}, list[1:]...))
}

func makeList(in *Interpreter) error {
	v, err := in.Peek(0)
	if err != nil {
		return err
	}
	n, ok := v.(Int32)
	if !ok || n < 0 {
		return typeMismatch("list", "non-negative int32", v)
	}
	if have := len(in.stack) - 1; int(n) > have {
		return StackUnderflowError{int(n) + 1, have + 1}
	}
	in.drop(1)
	vals, err := in.PopN(int(n))
	if err != nil {
		return err
	}
	return in.Push(append(List{}, vals...))
}

func typeOf(in *Interpreter) error {
	v, err := in.Pop()
	if err != nil {
		return err
	}
	return in.Push(Text(TypeName(v)))
}

func truthy(in *Interpreter) error {
	v, err := in.Pop()
	if err != nil {
		return err
	}
	return in.Push(Bool(Truthy(v)))
}
