package uni

import (
	"errors"
	"fmt"
)

var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrStackOverflow  = errors.New("stack overflow")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrUnknownWord    = errors.New("unknown word")
	ErrDivisionByZero = errors.New("division by zero")
	ErrDefinition     = errors.New("invalid definition")
	ErrFrame          = errors.New("no local frame")

	// ErrContinuationOverflow is returned when non-tail recursion exceeds
	// the configured continuation depth limit.
	ErrContinuationOverflow = errors.New("continuation stack overflow")

	// ErrQuit is returned by the quit word; hosts treat it as a normal exit.
	ErrQuit = errors.New("quit")

	// ErrBusy is returned by Load while an evaluation is still in progress.
	ErrBusy = errors.New("evaluation in progress")
)

// StackUnderflowError reports a primitive that needed more operands than
// the stack held.
type StackUnderflowError struct {
	Need, Have int
}

func (err StackUnderflowError) Error() string {
	return fmt.Sprintf("stack underflow: need %v values, have %v", err.Need, err.Have)
}

func (err StackUnderflowError) Is(target error) bool { return target == ErrStackUnderflow }

// TypeMismatchError reports an operand of the wrong kind or tier.
type TypeMismatchError struct {
	Op   string
	Want string
	Got  Value
}

func (err TypeMismatchError) Error() string {
	if err.Got == nil {
		return fmt.Sprintf("type mismatch in %v: want %v", err.Op, err.Want)
	}
	return fmt.Sprintf("type mismatch in %v: want %v, got %v %v",
		err.Op, err.Want, TypeName(err.Got), err.Got)
}

func (err TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

func typeMismatch(op, want string, got Value) error {
	return TypeMismatchError{op, want, got}
}

// UnknownWordError names a symbol that no frame or dictionary entry binds.
type UnknownWordError string

func (name UnknownWordError) Error() string        { return fmt.Sprintf("unknown word %q", string(name)) }
func (name UnknownWordError) Is(target error) bool { return target == ErrUnknownWord }

// ArithmeticError reports an arithmetic failure, such as ErrDivisionByZero.
type ArithmeticError struct {
	Op  string
	Err error
}

func (err ArithmeticError) Error() string { return fmt.Sprintf("%v: %v", err.Op, err.Err) }
func (err ArithmeticError) Unwrap() error { return err.Err }

func divisionByZero(op string) error {
	return ArithmeticError{op, ErrDivisionByZero}
}

// DefinitionError reports a malformed binding.
type DefinitionError string

func (reason DefinitionError) Error() string        { return "invalid definition: " + string(reason) }
func (reason DefinitionError) Is(target error) bool { return target == ErrDefinition }

// WordError attributes a failure to the word that raised it.
type WordError struct {
	Word string
	Err  error
}

func (err WordError) Error() string { return fmt.Sprintf("%v: %v", err.Word, err.Err) }
func (err WordError) Unwrap() error { return err.Err }
