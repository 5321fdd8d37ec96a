package reader_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/uni/reader"
	"github.com/jcorbin/uni/uni"
)

func TestReader(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		want string
	}{
		{"ints", "1 -2 +3 0", "[1 -2 3 0]"},
		{"bigint", "2147483648 -2147483649", "[2147483648 -2147483649]"},
		{"rationals", "1/3 -2/4 6/3", "[1/3 -1/2 2]"},
		{"decimals", "1.25 -0.5 2.0", "[5/4 -1/2 2]"},
		{"complex", "3+4i -2i 1/2-i i 3+0i", "[3+4i -2i 1/2-i i 3]"},
		{"symbols", "dup + - / // 1+ <= foo-bar", "[dup + - / // 1+ <= foo-bar]"},
		{"quoted", "'swap 'x", "['swap 'x]"},
		{"lists", "[1 [2 3] [] dup]", "[[1 [2 3] [] dup]]"},
		{"adjacent brackets", "[[1]2]", "[[[1] 2]]"},
		{"runes", `'a' '\n' ' ' <ESC> <`, "[97 10 32 27 <]"},
		{"string", `"hi" ""`, "[[104 105] []]"},
		{"string escapes", `"a\"b\n"`, "[[97 34 98 10]]"},
		{"comments", "1 \\ ignored [\n2 \\\\ also ignored\n", "[1 2]"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in := uni.New()
			vals, err := reader.ReadString(in, t.Name(), tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, uni.List(vals).String())
		})
	}
}

func TestReader_types(t *testing.T) {
	in := uni.New()
	vals, err := reader.ReadString(in, t.Name(), `7 2147483648 1/3 1+2i 'q [] "s"`)
	require.NoError(t, err)
	var kinds []uni.Kind
	for _, v := range vals {
		kinds = append(kinds, v.Kind())
	}
	assert.Equal(t, []uni.Kind{
		uni.KindInt32,
		uni.KindBigInt,
		uni.KindRational,
		uni.KindComplex,
		uni.KindSymbol,
		uni.KindList,
		uni.KindList,
	}, kinds)

	sym := vals[4].(uni.Symbol)
	assert.True(t, sym.Quoted())
	assert.Equal(t, "q", sym.Name())
	assert.Equal(t, in.Intern("q"), sym.Unquote(), "expected reader symbols to be interned")
}

func TestReader_errors(t *testing.T) {
	for _, tc := range []struct {
		name       string
		src        string
		err        string
		incomplete bool
	}{
		{name: "unclosed list", src: "1 [2 [3]", err: "TestReader_errors/unclosed_list:1:3: unclosed [: incomplete input", incomplete: true},
		{name: "unclosed string", src: `"abc`, err: "TestReader_errors/unclosed_string:1:1: unclosed string: incomplete input", incomplete: true},
		{name: "stray close", src: "1 ]", err: "TestReader_errors/stray_close:1:3: unexpected ]"},
		{name: "zero denominator", src: "1/0", err: "TestReader_errors/zero_denominator:1:3: invalid number 1/0: zero denominator"},
		{name: "bare quote", src: "' x", err: "TestReader_errors/bare_quote:1:2: expected symbol or rune after '"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reader.ReadString(uni.New(), t.Name(), tc.src)
			require.Error(t, err)
			assert.EqualError(t, err, tc.err)
			assert.Equal(t, tc.incomplete, errors.Is(err, reader.ErrIncomplete))
			var se *reader.SyntaxError
			assert.True(t, errors.As(err, &se), "expected a SyntaxError")
		})
	}
}

func TestReader_streams(t *testing.T) {
	rd := reader.New(uni.New(), strings.NewReader("1 2"), strings.NewReader(" 3"))
	var got []string
	for {
		v, err := rd.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"1", "2", "3"}, got)
}
