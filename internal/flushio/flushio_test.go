package flushio_test

import (
	"bytes"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/uni/internal/flushio"
)

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	cw.writes++
	return cw.Buffer.Write(p)
}

// plainWriter hides everything but Write
type plainWriter struct{ w *countingWriter }

func (pw plainWriter) Write(p []byte) (int, error) { return pw.w.Write(p) }

func TestNewWriteFlusher(t *testing.T) {
	assert.Equal(t, flushio.Discard, flushio.NewWriteFlusher(nil))
	assert.Equal(t, flushio.Discard, flushio.NewWriteFlusher(ioutil.Discard))

	var sb strings.Builder
	wf := flushio.NewWriteFlusher(&sb)
	wf.Write([]byte("hello"))
	assert.Equal(t, "hello", sb.String(), "expected buffers to be written directly")

	// a plain writer is buffered until flushed
	cw := &countingWriter{}
	wf = flushio.NewWriteFlusher(plainWriter{cw})
	wf.Write([]byte("hello "))
	wf.Write([]byte("world"))
	assert.Equal(t, 0, cw.writes, "expected no writes before flush")
	require.NoError(t, wf.Flush())
	assert.Equal(t, 1, cw.writes, "expected one write after flush")
	assert.Equal(t, "hello world", cw.String())
}

func TestWriteFlushers(t *testing.T) {
	assert.Equal(t, flushio.Discard, flushio.WriteFlushers())
	assert.Equal(t, flushio.Discard, flushio.WriteFlushers(nil, flushio.Discard))

	var a, b strings.Builder
	wfa, wfb := flushio.NewWriteFlusher(&a), flushio.NewWriteFlusher(&b)
	assert.Equal(t, wfa, flushio.WriteFlushers(wfa, nil))

	wf := flushio.WriteFlushers(flushio.WriteFlushers(wfa, flushio.Discard), wfb)
	n, err := wf.Write([]byte("tee"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.NoError(t, wf.Flush())
	assert.Equal(t, "tee", a.String())
	assert.Equal(t, "tee", b.String())
}
