package uni

import (
	"context"

	"github.com/jcorbin/uni/internal/panicerr"
)

// Status reports whether an evaluation has finished or is suspended.
type Status uint8

const (
	// Done means the continuation stack drained, or the evaluation failed.
	Done Status = iota
	// Pending means an asynchronous primitive is in flight; see Ready.
	Pending
)

func (st Status) String() string {
	if st == Pending {
		return "pending"
	}
	return "done"
}

// Load starts evaluating top-level forms, in order. Nothing runs until the
// host calls Resume (or Run).
func (in *Interpreter) Load(forms ...Value) error {
	if in.Busy() {
		return ErrBusy
	}
	in.maxDepth = 0
	if len(forms) > 0 {
		// forms are items, as in a list body, but run in no local frame
		in.conts.push(&ListCont{Items: List(forms)})
	}
	in.noteDepth()
	return nil
}

// Busy returns true while an evaluation has work left, including while
// suspended.
func (in *Interpreter) Busy() bool { return len(in.conts) > 0 || in.pending != nil }

// Status returns Pending while an asynchronous primitive is in flight.
func (in *Interpreter) Status() Status {
	if in.pending != nil {
		return Pending
	}
	return Done
}

// Ready returns a channel that is closed once Resume can make progress.
func (in *Interpreter) Ready() <-chan struct{} {
	if in.pending != nil {
		return in.pending.Done()
	}
	return closedChan
}

// Abandon discards a pending evaluation: its async operation, continuations
// and local frames. The data stack is left as it was when it suspended.
func (in *Interpreter) Abandon() {
	in.logf("!", "abandon %v continuations", len(in.conts))
	in.reset()
}

// Resume runs the loaded evaluation until it finishes, fails, or suspends
// at an asynchronous primitive. It never blocks: while suspended it returns
// Pending immediately until the operation's Ready channel closes.
//
// Any error aborts the whole evaluation. Stack values and definitions made
// before the failure are kept.
func (in *Interpreter) Resume(ctx context.Context) (Status, error) {
	if in.pending != nil {
		select {
		case <-in.pending.Done():
		default:
			return Pending, nil
		}
	}

	err := panicerr.Catch("uni", func() error {
		if fut := in.pending; fut != nil {
			in.pending = nil
			in.logf("<", "complete -- s:%v", in.stack)
			if err := fut.Complete(in); err != nil {
				return err
			}
		}
		return in.drain(ctx)
	})
	if ferr := in.out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		in.logf("!", "abort: %v", err)
		in.reset()
		return Done, err
	}
	if in.pending != nil {
		return Pending, nil
	}
	return Done, nil
}

// Run resumes the evaluation until it is done, waiting while suspended.
// If ctx ends while an asynchronous primitive is pending, Run returns
// ctx.Err() with the evaluation still intact.
func (in *Interpreter) Run(ctx context.Context) error {
	for {
		st, err := in.Resume(ctx)
		if err != nil || st == Done {
			return err
		}
		select {
		case <-in.Ready():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Eval loads forms and runs them to completion.
func (in *Interpreter) Eval(ctx context.Context, forms ...Value) error {
	if err := in.Load(forms...); err != nil {
		return err
	}
	return in.Run(ctx)
}

func (in *Interpreter) reset() {
	in.pending = nil
	in.conts.reset()
	in.dict.dropFrames()
	in.rstack = in.rstack[:0]
	in.docTarget = Symbol{}
}

func (in *Interpreter) noteDepth() {
	if d := len(in.conts); d > in.maxDepth {
		in.maxDepth = d
	}
}

func (in *Interpreter) drain(ctx context.Context) error {
	if in.logfn != nil {
		defer in.withLogPrefix("	")()
	}
	for len(in.conts) > 0 && in.pending == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := in.step(ctx); err != nil {
			return err
		}
		in.noteDepth()
		if lim := in.depthLimit; lim > 0 && len(in.conts) > lim {
			return ErrContinuationOverflow
		}
	}
	return nil
}

func (in *Interpreter) step(ctx context.Context) error {
	c := in.conts.top()
	if in.logfn != nil {
		in.logf(">", "%v -- c:%v s:%v", c, len(in.conts), in.stack)
	}

	switch c := c.(type) {
	case ValueCont:
		in.conts.pop()
		return in.Push(c.V)

	case *ListCont:
		if c.Index >= len(c.Items) {
			in.conts.pop()
			return nil
		}
		item := c.Items[c.Index]
		c.Index++
		if c.Index == len(c.Items) {
			// tail position: nothing left to return to
			in.conts.pop()
		}
		in.conts.push(itemCont(item))
		return nil

	case IfCont:
		in.conts.pop()
		branch := c.Else
		if c.Cond {
			branch = c.Then
		}
		in.conts.push(InvokeCont{V: branch})
		return nil

	case InvokeCont:
		in.conts.pop()
		return in.invoke(ctx, c.V, c.Scoped)

	case DefinitionCont:
		in.conts.pop()
		in.dict.Define(c.Name, Binding{Value: c.Body, Executable: true})
		in.docTarget = c.Name
		return nil

	case PopFrameCont:
		in.conts.pop()
		return in.dict.PopFrame()
	}

	in.conts.pop()
	return nil
}

// invoke runs v; the caller has already popped the invoking continuation,
// so a list body takes over its slot.
func (in *Interpreter) invoke(ctx context.Context, v Value, scoped bool) error {
	switch v := v.(type) {
	case Symbol:
		b, err := in.dict.Lookup(v)
		if err != nil {
			return err
		}
		if !b.Executable {
			return in.Push(b.Value)
		}
		if alias, ok := b.Value.(Symbol); ok {
			// a step of its own, so alias cycles cannot recurse natively
			in.conts.push(InvokeCont{V: alias.Unquote(), Scoped: true})
			return nil
		}
		return in.invoke(ctx, b.Value, true)

	case List:
		if scoped {
			in.enterFrame()
		}
		if len(v) > 0 {
			in.conts.push(&ListCont{Items: v})
		}
		return nil

	case Builtin:
		if err := v.Fn(in); err != nil {
			return WordError{v.Name, err}
		}
		return nil

	case AsyncBuiltin:
		return in.suspend(ctx, v)
	}

	return in.Push(v)
}

// enterFrame opens a local frame for a body, unless the body runs in tail
// position of another scoped body, in which case that frame is reused.
func (in *Interpreter) enterFrame() {
	if _, tail := in.conts.top().(PopFrameCont); tail {
		return
	}
	in.dict.PushFrame()
	in.conts.push(PopFrameCont{})
}

func (in *Interpreter) suspend(ctx context.Context, ab AsyncBuiltin) error {
	fut, err := ab.Fn(ctx, in)
	if err != nil {
		return WordError{ab.Name, err}
	}
	if fut == nil {
		fut = Ready(nil)
	}
	in.logf("~", "suspend %v -- s:%v", ab.Name, in.stack)
	in.pending = fut
	return nil
}
