package uni

import (
	"math/big"
	"strings"
)

// Value is any datum the interpreter can hold on its stack, in a list, or in
// a dictionary binding. The set of implementations is closed.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

// Kind enumerates the concrete Value types. Numeric kinds are ordered by
// tier, so promotion is simply max(Kind).
type Kind uint8

const (
	KindInt32 Kind = iota
	KindBigInt
	KindRational
	KindComplex
	KindSymbol
	KindList
	KindBuiltin
	KindAsyncBuiltin
)

var kindNames = [...]string{
	KindInt32:        "int32",
	KindBigInt:       "bigint",
	KindRational:     "rational",
	KindComplex:      "complex",
	KindSymbol:       "symbol",
	KindList:         "list",
	KindBuiltin:      "builtin",
	KindAsyncBuiltin: "async-builtin",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Numeric returns true for the four numeric tiers.
func (k Kind) Numeric() bool { return k <= KindComplex }

// Int32 is the machine-word integer tier.
type Int32 int32

// BigInt is the arbitrary precision integer tier; the wrapped value is
// never mutated once constructed.
type BigInt struct{ i *big.Int }

// Rational is the exact fraction tier, always held in lowest terms.
type Rational struct{ r *big.Rat }

// Complex is the exact Gaussian rational tier.
type Complex struct{ re, im *big.Rat }

// Symbol is an interned name. A quoted symbol is data: it is deposited
// rather than invoked when it appears in a program.
type Symbol struct {
	id     uint
	name   string
	quoted bool
}

// List is an ordered sequence of values; the same representation serves as
// data and as program text.
type List []Value

// BuiltinFunc implements a synchronous primitive. It may manipulate the
// stack directly and may push further continuations, but must never block.
type BuiltinFunc func(in *Interpreter) error

// Builtin is a native synchronous primitive.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

// AsyncBuiltin is a native primitive whose invocation is the evaluator's
// only suspension point; see Future.
type AsyncBuiltin struct {
	Name string
	Fn   AsyncFunc
}

func (Int32) Kind() Kind        { return KindInt32 }
func (BigInt) Kind() Kind       { return KindBigInt }
func (Rational) Kind() Kind     { return KindRational }
func (Complex) Kind() Kind      { return KindComplex }
func (Symbol) Kind() Kind       { return KindSymbol }
func (List) Kind() Kind         { return KindList }
func (Builtin) Kind() Kind      { return KindBuiltin }
func (AsyncBuiltin) Kind() Kind { return KindAsyncBuiltin }

func (Int32) isValue()        {}
func (BigInt) isValue()       {}
func (Rational) isValue()     {}
func (Complex) isValue()      {}
func (Symbol) isValue()       {}
func (List) isValue()         {}
func (Builtin) isValue()      {}
func (AsyncBuiltin) isValue() {}

// Int returns the smallest integer tier that holds n.
func Int(n int64) Value {
	if int64(int32(n)) == n {
		return Int32(n)
	}
	return BigInt{big.NewInt(n)}
}

// Integer returns the smallest integer tier that holds n; n is copied.
func Integer(n *big.Int) Value {
	return Normalize(BigInt{new(big.Int).Set(n)})
}

// Rat returns the normalized value of num/den; den must be non-zero.
func Rat(num, den int64) Value {
	return Normalize(Rational{big.NewRat(num, den)})
}

// Fraction returns the normalized value of r; r is copied.
func Fraction(r *big.Rat) Value {
	return Normalize(Rational{new(big.Rat).Set(r)})
}

// Gaussian returns the normalized value of re+im*i; both parts are copied.
func Gaussian(re, im *big.Rat) Value {
	return Normalize(Complex{new(big.Rat).Set(re), new(big.Rat).Set(im)})
}

// Big returns a copy of the integer.
func (n BigInt) Big() *big.Int { return new(big.Int).Set(n.i) }

// Rat returns a copy of the fraction.
func (r Rational) Rat() *big.Rat { return new(big.Rat).Set(r.r) }

// Real returns a copy of the real part.
func (c Complex) Real() *big.Rat { return new(big.Rat).Set(c.re) }

// Imag returns a copy of the imaginary part.
func (c Complex) Imag() *big.Rat { return new(big.Rat).Set(c.im) }

// Name returns the symbol's name, without any quote mark.
func (sym Symbol) Name() string { return sym.name }

// Quoted returns true if the symbol was written with a leading quote.
func (sym Symbol) Quoted() bool { return sym.quoted }

// Quote returns the data form of the symbol.
func (sym Symbol) Quote() Symbol {
	sym.quoted = true
	return sym
}

// Unquote returns the invocable form of the symbol.
func (sym Symbol) Unquote() Symbol {
	sym.quoted = false
	return sym
}

// Text returns a list of code points, which is how string literals are
// represented.
func Text(s string) List {
	runes := []rune(s)
	list := make(List, len(runes))
	for i, r := range runes {
		list[i] = Int32(r)
	}
	return list
}

// TextOf decodes a list of code points back into a string, returning false
// if any item is not an Int32.
func TextOf(v Value) (string, bool) {
	list, ok := v.(List)
	if !ok {
		return "", false
	}
	var sb strings.Builder
	for _, item := range list {
		r, ok := item.(Int32)
		if !ok {
			return "", false
		}
		sb.WriteRune(rune(r))
	}
	return sb.String(), true
}

// TypeName returns the name reported by the type word.
func TypeName(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}

// Truthy implements the language's truth test: numeric zero, in any tier,
// is false; every other value is true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Int32:
		return v != 0
	case BigInt:
		return v.i.Sign() != 0
	case Rational:
		return v.r.Sign() != 0
	case Complex:
		return v.re.Sign() != 0 || v.im.Sign() != 0
	}
	return true
}

// Bool converts a Go boolean into the language's truth values.
func Bool(b bool) Int32 {
	if b {
		return 1
	}
	return 0
}

// Equal reports structural equality; numbers compare after promotion to a
// common tier, symbols by name regardless of quoting.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ak, bk := a.Kind(), b.Kind()
	if ak.Numeric() && bk.Numeric() {
		k := maxKind(ak, bk)
		return numEqual(promote(a, k), promote(b, k))
	}
	if ak != bk {
		return false
	}
	switch a := a.(type) {
	case Symbol:
		return a.name == b.(Symbol).name
	case List:
		bl := b.(List)
		if len(a) != len(bl) {
			return false
		}
		for i := range a {
			if !Equal(a[i], bl[i]) {
				return false
			}
		}
		return true
	case Builtin:
		return a.Name == b.(Builtin).Name
	case AsyncBuiltin:
		return a.Name == b.(AsyncBuiltin).Name
	}
	return false
}
