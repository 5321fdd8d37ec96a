package reader

import (
	"errors"
	"math/big"
	"regexp"
	"strings"

	"github.com/jcorbin/uni/uni"
)

const realPattern = `[0-9]+(?:/[0-9]+|\.[0-9]+)?`

var (
	realRE    = regexp.MustCompile(`^[+-]?` + realPattern + `$`)
	complexRE = regexp.MustCompile(`^(?:([+-]?` + realPattern + `)([+-])(` + realPattern + `)?|([+-]?)(` + realPattern + `))i$`)
)

var errZeroDenominator = errors.New("zero denominator")

// parseNumber returns false if token is not numeric syntax at all, and an
// error if it is but cannot be represented.
func parseNumber(token string) (uni.Value, bool, error) {
	if realRE.MatchString(token) {
		r, err := parseReal(token)
		if err != nil {
			return nil, true, err
		}
		return uni.Fraction(r), true, nil
	}
	if m := complexRE.FindStringSubmatch(token); m != nil {
		re, im := new(big.Rat), new(big.Rat)
		var err error
		if m[2] != "" {
			// re+im i, re-im i, re+i
			if re, err = parseReal(m[1]); err == nil {
				im, err = parseUnit(m[2], m[3])
			}
		} else {
			// pure imaginary
			im, err = parseUnit(m[4], m[5])
		}
		if err != nil {
			return nil, true, err
		}
		return uni.Gaussian(re, im), true, nil
	}
	return nil, false, nil
}

// parseUnit parses an imaginary coefficient, which may be omitted as in 1+i.
func parseUnit(sign, mag string) (*big.Rat, error) {
	if mag == "" {
		mag = "1"
	}
	return parseReal(sign + mag)
}

// parseReal parses decimal integers, fractions, and decimal points exactly;
// base prefixes and exponents are not accepted.
func parseReal(s string) (*big.Rat, error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg, s = true, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	var r *big.Rat
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, _ := new(big.Int).SetString(s[:i], 10)
		den, _ := new(big.Int).SetString(s[i+1:], 10)
		if den.Sign() == 0 {
			return nil, errZeroDenominator
		}
		r = new(big.Rat).SetFrac(num, den)
	} else if i := strings.IndexByte(s, '.'); i >= 0 {
		digits, _ := new(big.Int).SetString(s[:i]+s[i+1:], 10)
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(s)-i-1)), nil)
		r = new(big.Rat).SetFrac(digits, scale)
	} else {
		n, _ := new(big.Int).SetString(s, 10)
		r = new(big.Rat).SetInt(n)
	}
	if neg {
		r.Neg(r)
	}
	return r, nil
}
