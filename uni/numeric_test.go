package uni

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bigInt(s string) Value {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid big int " + s)
	}
	return Integer(n)
}

func TestTower_arith(t *testing.T) {
	reals := Tower{}
	cplx := Tower{Complex: true}
	i := Gaussian(new(big.Rat), big.NewRat(1, 1))

	for _, tc := range []struct {
		name  string
		tower Tower
		op    func(Tower, Value, Value) (Value, error)
		a, b  Value
		want  string
		kind  Kind
	}{
		{"int add", reals, Tower.Add, Int32(2), Int32(3), "5", KindInt32},
		{"int overflow", reals, Tower.Add, Int32(2147483647), Int32(1), "2147483648", KindBigInt},
		{"int underflow", reals, Tower.Sub, Int32(-2147483648), Int32(1), "-2147483649", KindBigInt},
		{"int mul overflow", reals, Tower.Mul, Int32(65536), Int32(65536), "4294967296", KindBigInt},
		{"min over -1", reals, Tower.Div, Int32(-2147483648), Int32(-1), "2147483648", KindBigInt},
		{"inexact div", reals, Tower.Div, Int32(1), Int32(3), "1/3", KindRational},
		{"exact div", reals, Tower.Div, Int32(-6), Int32(3), "-2", KindInt32},
		{"big demotes", reals, Tower.Sub, bigInt("2147483648"), Int32(1), "2147483647", KindInt32},
		{"big div", reals, Tower.Div, bigInt("10000000000"), bigInt("3"), "10000000000/3", KindRational},
		{"rat normalizes", reals, Tower.Mul, Rat(2, 3), Int32(3), "2", KindInt32},
		{"rat add", reals, Tower.Add, Rat(1, 2), Rat(1, 3), "5/6", KindRational},
		{"mod trunc", reals, Tower.Mod, Int32(-7), Int32(2), "-1", KindInt32},
		{"mod rat", reals, Tower.Mod, Rat(-7, 2), Int32(1), "-1/2", KindRational},
		{"floor div", reals, Tower.FloorDiv, Int32(-7), Int32(2), "-4", KindInt32},
		{"floor div rat", reals, Tower.FloorDiv, Rat(7, 2), Rat(1, 2), "7", KindInt32},
		{"floor div big", reals, Tower.FloorDiv, bigInt("-10000000001"), Int32(2), "-5000000001", KindBigInt},
		{"trunc div", reals, Tower.TruncDiv, Int32(-7), Int32(2), "-3", KindInt32},
		{"trunc div rat", reals, Tower.TruncDiv, Rat(-7, 2), Int32(1), "-3", KindInt32},
		{"pow promotes", reals, Tower.Pow, Int32(10), Int32(12), "1000000000000", KindBigInt},
		{"pow reciprocal", reals, Tower.Pow, Rat(-2, 3), Int32(-3), "-27/8", KindRational},
		{"complex mul", cplx, Tower.Mul, i, i, "-1", KindInt32},
		{"complex add", cplx, Tower.Add, i, Rat(1, 2), "1/2+i", KindComplex},
		{"complex div", cplx, Tower.Div, Int32(1), i, "-i", KindComplex},
		{"complex cancels", cplx, Tower.Sub, i, i, "0", KindInt32},
	} {
		t.Run(tc.name, func(t *testing.T) {
			z, err := tc.op(tc.tower, tc.a, tc.b)
			if assert.NoError(t, err) {
				assert.Equal(t, tc.want, z.String())
				assert.Equal(t, tc.kind, z.Kind())
			}
		})
	}
}

func TestTower_errors(t *testing.T) {
	i := Gaussian(new(big.Rat), big.NewRat(1, 1))
	for _, tc := range []struct {
		name string
		err  error
		run  func() error
	}{
		{"int div zero", ErrDivisionByZero, func() error {
			_, err := Tower{}.Div(Int32(1), Int32(0))
			return err
		}},
		{"mod zero", ErrDivisionByZero, func() error {
			_, err := Tower{}.Mod(Int32(1), Int32(0))
			return err
		}},
		{"rat div zero", ErrDivisionByZero, func() error {
			_, err := Tower{}.FloorDiv(Rat(1, 2), Int32(0))
			return err
		}},
		{"big div zero", ErrDivisionByZero, func() error {
			_, err := Tower{}.TruncDiv(bigInt("10000000000"), Int32(0))
			return err
		}},
		{"complex div zero", ErrDivisionByZero, func() error {
			_, err := Tower{Complex: true}.Div(i, Int32(0))
			return err
		}},
		{"not a number", ErrTypeMismatch, func() error {
			_, err := Tower{}.Add(Int32(1), List{})
			return err
		}},
		{"complex disabled", ErrTypeMismatch, func() error {
			_, err := Tower{}.Add(i, Int32(1))
			return err
		}},
		{"complex mod", ErrTypeMismatch, func() error {
			_, err := Tower{Complex: true}.Mod(i, Int32(1))
			return err
		}},
		{"complex order", ErrTypeMismatch, func() error {
			_, err := Tower{Complex: true}.Cmp(i, Int32(1))
			return err
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			assert.True(t, errors.Is(err, tc.err), "expected %v, got %v", tc.err, err)
		})
	}
}

func TestTower_cmp(t *testing.T) {
	for _, tc := range []struct {
		a, b Value
		want int
	}{
		{Int32(1), Int32(2), -1},
		{Rat(1, 2), Int32(0), 1},
		{bigInt("10000000000"), Rat(1, 3), 1},
		{Rat(4, 2), Int32(2), 0},
	} {
		c, err := Tower{}.Cmp(tc.a, tc.b)
		if assert.NoError(t, err) {
			assert.Equal(t, tc.want, c, "%v cmp %v", tc.a, tc.b)
		}
	}
}

func TestTower_round(t *testing.T) {
	for _, tc := range []struct {
		a                  Value
		floor, ceil, round string
	}{
		{Int32(-4), "-4", "-4", "-4"},
		{Rat(7, 2), "3", "4", "4"},
		{Rat(-7, 2), "-4", "-3", "-4"},
		{Rat(5, 3), "1", "2", "2"},
		{bigInt("10000000001"), "10000000001", "10000000001", "10000000001"},
	} {
		for _, r := range []struct {
			op   func(Tower, Value) (Value, error)
			want string
		}{
			{Tower.Floor, tc.floor},
			{Tower.Ceil, tc.ceil},
			{Tower.Round, tc.round},
		} {
			z, err := r.op(Tower{}, tc.a)
			if assert.NoError(t, err) {
				assert.Equal(t, r.want, z.String(), "rounding %v", tc.a)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Int32(7), Normalize(BigInt{big.NewInt(7)}))
	assert.Equal(t, Int32(3), Normalize(Rational{big.NewRat(6, 2)}))
	assert.Equal(t, KindBigInt, Normalize(Rational{new(big.Rat).SetFrac(big.NewInt(1<<40), big.NewInt(1))}).Kind())
	assert.Equal(t, KindRational, Normalize(Complex{big.NewRat(1, 2), new(big.Rat)}).Kind())
	assert.Equal(t, KindComplex, Normalize(Complex{new(big.Rat), big.NewRat(1, 2)}).Kind())
	assert.Equal(t, List{}, Normalize(List{}))
}

func TestEqual(t *testing.T) {
	sym := Symbol{id: 1, name: "x"}
	assert.True(t, Equal(Int32(2), Rat(4, 2)))
	assert.True(t, Equal(bigInt("2"), Int32(2)))
	assert.False(t, Equal(Int32(2), Rat(1, 2)))
	assert.True(t, Equal(sym, sym.Quote()))
	assert.True(t, Equal(List{Int32(1), List{sym}}, List{Int32(1), List{sym}}))
	assert.False(t, Equal(List{Int32(1)}, List{Int32(1), Int32(2)}))
	assert.False(t, Equal(Int32(0), List{}))
	assert.True(t, Truthy(List{}))
	assert.False(t, Truthy(Rat(0, 1)))
}

func TestFormat(t *testing.T) {
	for _, tc := range []struct {
		v    Value
		want string
	}{
		{Int32(-3), "-3"},
		{Rat(-1, 2), "-1/2"},
		{Gaussian(big.NewRat(3, 1), big.NewRat(4, 1)), "3+4i"},
		{Gaussian(new(big.Rat), big.NewRat(-2, 1)), "-2i"},
		{Gaussian(big.NewRat(1, 2), big.NewRat(-1, 1)), "1/2-i"},
		{Symbol{name: "x", quoted: true}, "'x"},
		{List{Int32(1), List{}, Symbol{name: "dup"}}, "[1 [] dup]"},
		{Builtin{Name: "+"}, "<builtin +>"},
		{AsyncBuiltin{Name: "delay"}, "<async delay>"},
	} {
		assert.Equal(t, tc.want, tc.v.String())
	}
}
