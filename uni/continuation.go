package uni

import "fmt"

// Continuation is one pending evaluation step. The set of implementations is
// closed; the evaluator dispatches over them with a type switch.
type Continuation interface {
	fmt.Stringer
	isContinuation()
}

// ValueCont deposits a literal onto the stack.
type ValueCont struct{ V Value }

// ListCont iterates a program; Index == len(Items) means exhausted.
type ListCont struct {
	Items List
	Index int
}

// IfCont runs one of two branches depending on an already computed
// condition.
type IfCont struct {
	Cond       bool
	Then, Else Value
}

// InvokeCont resolves and runs a value. Scoped invocations of lists run
// inside a local frame.
type InvokeCont struct {
	V      Value
	Scoped bool
}

// DefinitionCont binds Name to Body as an executable word.
type DefinitionCont struct {
	Name Symbol
	Body Value
}

// PopFrameCont marks the end of a local frame's extent.
type PopFrameCont struct{}

func (ValueCont) isContinuation()      {}
func (*ListCont) isContinuation()      {}
func (IfCont) isContinuation()         {}
func (InvokeCont) isContinuation()     {}
func (DefinitionCont) isContinuation() {}
func (PopFrameCont) isContinuation()   {}

func (c ValueCont) String() string { return fmt.Sprintf("value(%v)", c.V) }
func (c *ListCont) String() string { return fmt.Sprintf("list@%v%v", c.Index, c.Items) }
func (c IfCont) String() string {
	return fmt.Sprintf("if(%v %v %v)", c.Cond, c.Then, c.Else)
}
func (c InvokeCont) String() string {
	if c.Scoped {
		return fmt.Sprintf("exec(%v)", c.V)
	}
	return fmt.Sprintf("invoke(%v)", c.V)
}
func (c DefinitionCont) String() string { return fmt.Sprintf("def(%v %v)", c.Name, c.Body) }
func (PopFrameCont) String() string     { return "pop-frame" }

// itemCont returns the continuation for a program item: words are invoked,
// quoted symbols and every other literal, including lists, are deposited.
func itemCont(v Value) Continuation {
	switch v := v.(type) {
	case Symbol:
		if v.quoted {
			return ValueCont{v.Unquote()}
		}
		return InvokeCont{V: v}
	case Builtin, AsyncBuiltin:
		return InvokeCont{V: v}
	}
	return ValueCont{v}
}

// contStack is the explicit control stack replacing native recursion.
type contStack []Continuation

func (cs contStack) top() Continuation {
	if i := len(cs) - 1; i >= 0 {
		return cs[i]
	}
	return nil
}

func (cs *contStack) push(c Continuation) {
	*cs = append(*cs, c)
}

func (cs *contStack) pop() Continuation {
	i := len(*cs) - 1
	c := (*cs)[i]
	(*cs)[i] = nil
	*cs = (*cs)[:i]
	return c
}

func (cs *contStack) reset() {
	for i := range *cs {
		(*cs)[i] = nil
	}
	*cs = (*cs)[:0]
}
