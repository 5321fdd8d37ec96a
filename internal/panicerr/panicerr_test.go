package panicerr_test

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/uni/internal/panicerr"
)

type panicCase struct {
	name      string
	err       string
	wraps     string
	fun       func() error
	haveStack bool
	exits     bool
}

var panicCases = []panicCase{
	{
		name:      "",
		err:       "paniced: shrug",
		wraps:     "shrug",
		haveStack: true,
		fun:       func() error { panic(errors.New("shrug")) },
	},
	{
		name: "normal",
		fun:  func() error { return nil },
	},
	{
		name: "normal err",
		err:  "bang",
		fun:  func() error { return errors.New("bang") },
	},
	{
		name:      "panic err",
		err:       "panic err paniced: bang",
		wraps:     "bang",
		haveStack: true,
		fun:       func() error { panic(errors.New("bang")) },
	},
	{
		name:      "string panic",
		err:       "string panic paniced: hello",
		haveStack: true,
		fun:       func() error { panic("hello") },
	},
	{
		name:      "index panic",
		err:       "index panic paniced: runtime error: index out of range [1] with length 0",
		haveStack: true,
		fun:       func() error { _ = ([]int)(nil)[1]; return nil },
	},
	{
		name:  "exit",
		err:   "exit called runtime.Goexit",
		exits: true,
		fun:   func() error { runtime.Goexit(); return nil },
	},
}

func (tc panicCase) check(t *testing.T, err error) {
	if tc.err == "" {
		assert.NoError(t, err)
	} else {
		assert.EqualError(t, err, tc.err)
		if tc.wraps != "" {
			assert.EqualError(t, errors.Unwrap(err), tc.wraps, "expected panic(error) value")
		}
	}
	assert.Equal(t, tc.haveStack, panicerr.IsPanic(err), "expected IsPanic")
	assert.Equal(t, tc.exits, panicerr.IsExit(err), "expected IsExit")
	stack := panicerr.PanicStack(err)
	if tc.haveStack {
		assert.NotEqual(t, "", stack, "expected a stack trace")
	} else {
		assert.Equal(t, "", stack, "expected no stack trace")
	}
}

func TestRecover(t *testing.T) {
	for _, tc := range panicCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, panicerr.Recover(tc.name, tc.fun))
		})
	}
}

func TestGo(t *testing.T) {
	for _, tc := range panicCases {
		t.Run(tc.name, func(t *testing.T) {
			errch := panicerr.Go(tc.name, tc.fun)
			tc.check(t, <-errch)
			_, open := <-errch
			assert.False(t, open, "expected channel to be closed")
		})
	}
}

func TestCatch(t *testing.T) {
	for _, tc := range panicCases {
		if tc.exits {
			continue
		}
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, panicerr.Catch(tc.name, tc.fun))
		})
	}
}

func TestPanicStack(t *testing.T) {
	err := panicerr.Catch("", func() error {
		panic("nope")
	})
	require.Error(t, err, "must have a panic error")
	assert.True(t,
		strings.HasSuffix(fmt.Sprintf("%+v", err), panicerr.PanicStack(err)),
		"expected verbose format to end with a stack trace")
}
