package uni

import (
	"math/big"
	"strconv"
	"strings"
)

func (n Int32) String() string    { return strconv.Itoa(int(n)) }
func (n BigInt) String() string   { return n.i.String() }
func (r Rational) String() string { return r.r.RatString() }

func (c Complex) String() string {
	var sb strings.Builder
	if c.re.Sign() != 0 {
		sb.WriteString(c.re.RatString())
		if c.im.Sign() >= 0 {
			sb.WriteByte('+')
		}
	}
	writeImag(&sb, c.im)
	return sb.String()
}

func writeImag(sb *strings.Builder, im *big.Rat) {
	switch {
	case im.IsInt() && im.Num().IsInt64() && im.Num().Int64() == 1:
	case im.IsInt() && im.Num().IsInt64() && im.Num().Int64() == -1:
		sb.WriteByte('-')
	default:
		sb.WriteString(im.RatString())
	}
	sb.WriteByte('i')
}

func (sym Symbol) String() string {
	if sym.quoted {
		return "'" + sym.name
	}
	return sym.name
}

func (list List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range list {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if item == nil {
			sb.WriteString("nil")
		} else {
			sb.WriteString(item.String())
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func (b Builtin) String() string      { return "<builtin " + b.Name + ">" }
func (b AsyncBuiltin) String() string { return "<async " + b.Name + ">" }
