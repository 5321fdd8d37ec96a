package uni

import "math/big"

//// Arithmetic
//
// All arithmetic goes through the interpreter's Tower, so operands of mixed
// tiers promote, and results normalize, the same way everywhere.

var mathPrimitives = []primitive{
	{"+", binary(Tower.Add), "( a b -- a+b ) Add"},
	{"-", binary(Tower.Sub), "( a b -- a-b ) Subtract"},
	{"*", binary(Tower.Mul), "( a b -- a*b ) Multiply"},
	{"/", binary(Tower.Div), "( a b -- a/b ) Divide exactly, yielding a rational if needed"},
	{"mod", binary(Tower.Mod), "( a b -- r ) Remainder, with the sign of a"},
	{"//", binary(Tower.FloorDiv), "( a b -- q ) Divide, rounding toward negative infinity"},
	{"div", binary(Tower.TruncDiv), "( a b -- q ) Divide, rounding toward zero"},
	{"min", binary(Tower.Min), "( a b -- min ) Lesser of two numbers"},
	{"max", binary(Tower.Max), "( a b -- max ) Greater of two numbers"},
	{"abs", unary(Tower.Abs), "( n -- |n| ) Absolute value"},
	{"negate", unary(Tower.Neg), "( n -- -n ) Negate a number"},
	{"floor", unary(Tower.Floor), "( n -- floor(n) ) Round down to an integer"},
	{"ceil", unary(Tower.Ceil), "( n -- ceil(n) ) Round up to an integer"},
	{"round", unary(Tower.Round), "( n -- round(n) ) Round to the nearest integer, halves away from zero"},
	{"pow", binary(Tower.Pow), "( base exp -- base^exp ) Raise to an integer power"},

	{"=", equal, "( a b -- bool ) Test structural equality"},
	{"!=", notEqual, "( a b -- bool ) Test structural inequality"},
	{"<", compare(func(c int) bool { return c < 0 }), "( a b -- bool ) Less than"},
	{">", compare(func(c int) bool { return c > 0 }), "( a b -- bool ) Greater than"},
	{"<=", compare(func(c int) bool { return c <= 0 }), "( a b -- bool ) Less than or equal"},
	{">=", compare(func(c int) bool { return c >= 0 }), "( a b -- bool ) Greater than or equal"},
}

var complexPrimitives = []primitive{
	{"complex", makeComplex, "( re im -- z ) Build a complex number from real parts"},
	{"re", complexPart(Complex.Real), "( z -- re ) Real part"},
	{"im", complexPart(Complex.Imag), "( z -- im ) Imaginary part"},
}

func binary(op func(t Tower, a, b Value) (Value, error)) BuiltinFunc {
	return func(in *Interpreter) error {
		args, err := in.args(2)
		if err != nil {
			return err
		}
		z, err := op(in.tower, args[0], args[1])
		if err != nil {
			return err
		}
		return in.replace(2, z)
	}
}

func unary(op func(t Tower, a Value) (Value, error)) BuiltinFunc {
	return func(in *Interpreter) error {
		args, err := in.args(1)
		if err != nil {
			return err
		}
		z, err := op(in.tower, args[0])
		if err != nil {
			return err
		}
		return in.replace(1, z)
	}
}

func compare(test func(c int) bool) BuiltinFunc {
	return func(in *Interpreter) error {
		args, err := in.args(2)
		if err != nil {
			return err
		}
		c, err := in.tower.Cmp(args[0], args[1])
		if err != nil {
			return err
		}
		return in.replace(2, Bool(test(c)))
	}
}

func equal(in *Interpreter) error {
	args, err := in.args(2)
	if err != nil {
		return err
	}
	return in.replace(2, Bool(Equal(args[0], args[1])))
}

func notEqual(in *Interpreter) error {
	args, err := in.args(2)
	if err != nil {
		return err
	}
	return in.replace(2, Bool(!Equal(args[0], args[1])))
}

func makeComplex(in *Interpreter) error {
	args, err := in.args(2)
	if err != nil {
		return err
	}
	var parts [2]*big.Rat
	for i, v := range args {
		switch v := v.(type) {
		case Int32:
			parts[i] = new(big.Rat).SetInt64(int64(v))
		case BigInt:
			parts[i] = new(big.Rat).SetInt(v.i)
		case Rational:
			parts[i] = v.r
		default:
			return typeMismatch("complex", "real number", v)
		}
	}
	return in.replace(2, Gaussian(parts[0], parts[1]))
}

func complexPart(part func(c Complex) *big.Rat) BuiltinFunc {
	return func(in *Interpreter) error {
		args, err := in.args(1)
		if err != nil {
			return err
		}
		switch v := args[0].(type) {
		case Complex:
			return in.replace(1, Fraction(part(v)))
		case Int32, BigInt, Rational:
			// reals are complex numbers with no imaginary part
			z := promote(v, KindComplex).(Complex)
			return in.replace(1, Fraction(part(z)))
		}
		return typeMismatch("complex part", "number", args[0])
	}
}
