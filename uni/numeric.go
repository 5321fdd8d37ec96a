package uni

import (
	"math"
	"math/big"
)

// Tower implements arithmetic over the numeric tiers
// Int32 < BigInt < Rational < Complex.
//
// Operands of different tiers are promoted to the higher tier before
// computing; results are normalized back down to the lowest tier that holds
// them exactly. Int32 overflow is detected and the operation re-run in
// BigInt, so arithmetic never wraps. Complex operands are only accepted when
// the Complex field is set.
type Tower struct {
	Complex bool
}

type arithOp uint8

const (
	opAdd arithOp = iota
	opSub
	opMul
	opDiv
	opMod
	opFloorDiv
	opTruncDiv
)

var arithOpNames = [...]string{
	opAdd:      "+",
	opSub:      "-",
	opMul:      "*",
	opDiv:      "/",
	opMod:      "mod",
	opFloorDiv: "//",
	opTruncDiv: "div",
}

func (op arithOp) String() string { return arithOpNames[op] }

func (t Tower) Add(a, b Value) (Value, error)      { return t.arith(opAdd, a, b) }
func (t Tower) Sub(a, b Value) (Value, error)      { return t.arith(opSub, a, b) }
func (t Tower) Mul(a, b Value) (Value, error)      { return t.arith(opMul, a, b) }
func (t Tower) Div(a, b Value) (Value, error)      { return t.arith(opDiv, a, b) }
func (t Tower) Mod(a, b Value) (Value, error)      { return t.arith(opMod, a, b) }
func (t Tower) FloorDiv(a, b Value) (Value, error) { return t.arith(opFloorDiv, a, b) }
func (t Tower) TruncDiv(a, b Value) (Value, error) { return t.arith(opTruncDiv, a, b) }

// common returns the tier both operands promote to, or a type mismatch.
func (t Tower) common(op string, a, b Value) (Kind, error) {
	if err := t.check(op, a); err != nil {
		return 0, err
	}
	if err := t.check(op, b); err != nil {
		return 0, err
	}
	return maxKind(a.Kind(), b.Kind()), nil
}

func (t Tower) check(op string, v Value) error {
	if v == nil || !v.Kind().Numeric() {
		return typeMismatch(op, "number", v)
	}
	if v.Kind() == KindComplex && !t.Complex {
		return typeMismatch(op, "real number", v)
	}
	return nil
}

func (t Tower) arith(op arithOp, a, b Value) (Value, error) {
	k, err := t.common(op.String(), a, b)
	if err != nil {
		return nil, err
	}
	a, b = promote(a, k), promote(b, k)

	switch k {
	case KindInt32:
		x, y := int64(a.(Int32)), int64(b.(Int32))
		if z, ok := int32Arith(op, x, y); ok {
			return z, nil
		}
		if op <= opMul {
			// overflow: redo exactly in the next tier
			return t.arith(op, promote(a, KindBigInt), promote(b, KindBigInt))
		}
		if y == 0 {
			return nil, divisionByZero(op.String())
		}
		return ratArith(op, promote(a, KindRational).(Rational).r, promote(b, KindRational).(Rational).r)

	case KindBigInt:
		x, y := a.(BigInt).i, b.(BigInt).i
		switch op {
		case opAdd:
			return Normalize(BigInt{new(big.Int).Add(x, y)}), nil
		case opSub:
			return Normalize(BigInt{new(big.Int).Sub(x, y)}), nil
		case opMul:
			return Normalize(BigInt{new(big.Int).Mul(x, y)}), nil
		}
		if y.Sign() == 0 {
			return nil, divisionByZero(op.String())
		}
		return ratArith(op, new(big.Rat).SetInt(x), new(big.Rat).SetInt(y))

	case KindRational:
		x, y := a.(Rational).r, b.(Rational).r
		if op > opMul && y.Sign() == 0 {
			return nil, divisionByZero(op.String())
		}
		return ratArith(op, x, y)

	case KindComplex:
		return complexArith(op, a.(Complex), b.(Complex))
	}
	return nil, typeMismatch(op.String(), "number", a)
}

// int32Arith computes op in 64 bits, reporting false when the result does
// not fit back into 32 bits or is not an integer.
func int32Arith(op arithOp, x, y int64) (Int32, bool) {
	var z int64
	switch op {
	case opAdd:
		z = x + y
	case opSub:
		z = x - y
	case opMul:
		z = x * y
	default:
		if y == 0 {
			return 0, false
		}
		switch op {
		case opDiv:
			if x%y != 0 {
				return 0, false
			}
			z = x / y
		case opMod:
			z = x % y
		case opTruncDiv:
			z = x / y
		case opFloorDiv:
			z = x / y
			if (x%y != 0) && ((x < 0) != (y < 0)) {
				z--
			}
		}
	}
	if z < math.MinInt32 || z > math.MaxInt32 {
		return 0, false
	}
	return Int32(z), true
}

func ratArith(op arithOp, x, y *big.Rat) (Value, error) {
	z := new(big.Rat)
	switch op {
	case opAdd:
		z.Add(x, y)
	case opSub:
		z.Sub(x, y)
	case opMul:
		z.Mul(x, y)
	case opDiv:
		z.Quo(x, y)
	case opFloorDiv:
		z.SetInt(ratFloor(new(big.Rat).Quo(x, y)))
	case opTruncDiv:
		z.SetInt(ratTrunc(new(big.Rat).Quo(x, y)))
	case opMod:
		// truncated remainder, taking the sign of the dividend
		q := new(big.Rat).SetInt(ratTrunc(new(big.Rat).Quo(x, y)))
		z.Sub(x, q.Mul(q, y))
	}
	return Normalize(Rational{z}), nil
}

func ratTrunc(r *big.Rat) *big.Int {
	return new(big.Int).Quo(r.Num(), r.Denom())
}

func ratFloor(r *big.Rat) *big.Int {
	// denominators are always positive, so euclidean division floors
	q, _ := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	return q
}

func complexArith(op arithOp, x, y Complex) (Value, error) {
	re, im := new(big.Rat), new(big.Rat)
	switch op {
	case opAdd:
		re.Add(x.re, y.re)
		im.Add(x.im, y.im)
	case opSub:
		re.Sub(x.re, y.re)
		im.Sub(x.im, y.im)
	case opMul:
		// (a+bi)(c+di) = (ac-bd) + (ad+bc)i
		re.Sub(new(big.Rat).Mul(x.re, y.re), new(big.Rat).Mul(x.im, y.im))
		im.Add(new(big.Rat).Mul(x.re, y.im), new(big.Rat).Mul(x.im, y.re))
	case opDiv:
		// (a+bi)/(c+di) = ((ac+bd) + (bc-ad)i) / (c^2+d^2)
		den := new(big.Rat).Add(new(big.Rat).Mul(y.re, y.re), new(big.Rat).Mul(y.im, y.im))
		if den.Sign() == 0 {
			return nil, divisionByZero(op.String())
		}
		re.Add(new(big.Rat).Mul(x.re, y.re), new(big.Rat).Mul(x.im, y.im))
		im.Sub(new(big.Rat).Mul(x.im, y.re), new(big.Rat).Mul(x.re, y.im))
		re.Quo(re, den)
		im.Quo(im, den)
	default:
		return nil, typeMismatch(op.String(), "real number", x)
	}
	return Normalize(Complex{re, im}), nil
}

// Cmp orders two real numbers after promotion; complex ordering is a type
// mismatch.
func (t Tower) Cmp(a, b Value) (int, error) {
	k, err := t.common("compare", a, b)
	if err != nil {
		return 0, err
	}
	if k == KindComplex {
		return 0, typeMismatch("compare", "real number", a)
	}
	return numCmp(promote(a, k), promote(b, k)), nil
}

// Equal compares two numbers after promotion.
func (t Tower) Equal(a, b Value) (bool, error) {
	for _, v := range []Value{a, b} {
		if v == nil || !v.Kind().Numeric() {
			return false, typeMismatch("=", "number", v)
		}
	}
	k := maxKind(a.Kind(), b.Kind())
	return numEqual(promote(a, k), promote(b, k)), nil
}

// Neg negates a number.
func (t Tower) Neg(a Value) (Value, error) {
	return t.Sub(Int32(0), a)
}

// Abs returns the magnitude of a real number.
func (t Tower) Abs(a Value) (Value, error) {
	if err := t.check("abs", a); err != nil {
		return nil, err
	}
	switch v := a.(type) {
	case Int32:
		if v < 0 {
			return Int(-int64(v)), nil
		}
		return v, nil
	case BigInt:
		return Normalize(BigInt{new(big.Int).Abs(v.i)}), nil
	case Rational:
		return Normalize(Rational{new(big.Rat).Abs(v.r)}), nil
	}
	return nil, typeMismatch("abs", "real number", a)
}

// Floor rounds a real number toward negative infinity.
func (t Tower) Floor(a Value) (Value, error) {
	return t.round("floor", a, ratFloor)
}

// Ceil rounds a real number toward positive infinity.
func (t Tower) Ceil(a Value) (Value, error) {
	return t.round("ceil", a, func(r *big.Rat) *big.Int {
		q := ratFloor(new(big.Rat).Neg(r))
		return q.Neg(q)
	})
}

// Round rounds a real number to the nearest integer, halves away from zero.
func (t Tower) Round(a Value) (Value, error) {
	return t.round("round", a, func(r *big.Rat) *big.Int {
		half := big.NewRat(1, 2)
		if r.Sign() < 0 {
			half.Neg(half)
		}
		return ratTrunc(half.Add(half, r))
	})
}

func (t Tower) round(op string, a Value, f func(r *big.Rat) *big.Int) (Value, error) {
	if err := t.check(op, a); err != nil {
		return nil, err
	}
	switch v := a.(type) {
	case Int32, BigInt:
		return v, nil
	case Rational:
		return Normalize(BigInt{f(v.r)}), nil
	}
	return nil, typeMismatch(op, "real number", a)
}

// Pow raises a number to an int32 power by repeated squaring; negative
// powers take the reciprocal, so zero to a negative power is a division by
// zero.
func (t Tower) Pow(a, b Value) (Value, error) {
	if err := t.check("pow", a); err != nil {
		return nil, err
	}
	n, ok := b.(Int32)
	if !ok {
		return nil, typeMismatch("pow", "int32 exponent", b)
	}
	e := int64(n)
	if e < 0 {
		e = -e
	}
	var z Value = Int32(1)
	for x := a; e > 0; e >>= 1 {
		var err error
		if e&1 != 0 {
			if z, err = t.Mul(z, x); err != nil {
				return nil, err
			}
		}
		if e > 1 {
			if x, err = t.Mul(x, x); err != nil {
				return nil, err
			}
		}
	}
	if n < 0 {
		if !Truthy(z) {
			return nil, divisionByZero("pow")
		}
		return t.Div(Int32(1), z)
	}
	return z, nil
}

// Min returns the lesser of two real numbers.
func (t Tower) Min(a, b Value) (Value, error) {
	c, err := t.Cmp(a, b)
	if err != nil {
		return nil, err
	}
	if c <= 0 {
		return a, nil
	}
	return b, nil
}

// Max returns the greater of two real numbers.
func (t Tower) Max(a, b Value) (Value, error) {
	c, err := t.Cmp(a, b)
	if err != nil {
		return nil, err
	}
	if c >= 0 {
		return a, nil
	}
	return b, nil
}

// Normalize collapses a number into the lowest tier that holds it exactly;
// non-numeric values are returned as is.
func Normalize(v Value) Value {
	switch v := v.(type) {
	case BigInt:
		if v.i.IsInt64() {
			if n := v.i.Int64(); int64(int32(n)) == n {
				return Int32(n)
			}
		}
	case Rational:
		if v.r.IsInt() {
			return Normalize(BigInt{new(big.Int).Set(v.r.Num())})
		}
	case Complex:
		if v.im.Sign() == 0 {
			return Normalize(Rational{v.re})
		}
	}
	return v
}

func maxKind(a, b Kind) Kind {
	if a > b {
		return a
	}
	return b
}

// promote converts a number losslessly up to the given tier.
func promote(v Value, k Kind) Value {
	if v.Kind() >= k {
		return v
	}
	switch v := v.(type) {
	case Int32:
		switch k {
		case KindBigInt:
			return BigInt{big.NewInt(int64(v))}
		case KindRational:
			return Rational{new(big.Rat).SetInt64(int64(v))}
		case KindComplex:
			return Complex{new(big.Rat).SetInt64(int64(v)), new(big.Rat)}
		}
	case BigInt:
		switch k {
		case KindRational:
			return Rational{new(big.Rat).SetInt(v.i)}
		case KindComplex:
			return Complex{new(big.Rat).SetInt(v.i), new(big.Rat)}
		}
	case Rational:
		if k == KindComplex {
			return Complex{v.r, new(big.Rat)}
		}
	}
	return v
}

// numCmp compares two reals of the same tier.
func numCmp(a, b Value) int {
	switch a := a.(type) {
	case Int32:
		switch b := b.(Int32); {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	case BigInt:
		return a.i.Cmp(b.(BigInt).i)
	case Rational:
		return a.r.Cmp(b.(Rational).r)
	}
	return 0
}

// numEqual compares two numbers of the same tier.
func numEqual(a, b Value) bool {
	if c, ok := a.(Complex); ok {
		d := b.(Complex)
		return c.re.Cmp(d.re) == 0 && c.im.Cmp(d.im) == 0
	}
	return numCmp(a, b) == 0
}
