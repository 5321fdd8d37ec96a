// Package logio provides the host's leveled logger, and writers that turn
// interpreter output into log lines.
package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Logger writes lines like "level: message" to an output stream, remembering
// whether any error was logged so that the host can exit non-zero.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	buf      bytes.Buffer
	exitCode int
}

// New creates a Logger writing to out.
func New(out io.Writer) *Logger {
	return &Logger{out: out}
}

// ExitCode returns a code to pass to os.Exit: 0 unless Errorf was called, or
// the output stream failed.
func (log *Logger) ExitCode() int {
	log.mu.Lock()
	defer log.mu.Unlock()
	return log.exitCode
}

// Leveledf returns a printf-style function that logs at the given level,
// suitable for uni.WithLogf.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// Writer returns a line writer that logs each line written at the given
// level.
func (log *Logger) Writer(level string) *Writer {
	return &Writer{Logf: log.Leveledf(level)}
}

// ErrorIf logs any non-nil error through Errorf, returning true if it did.
func (log *Logger) ErrorIf(err error) bool {
	if err == nil {
		return false
	}
	log.Errorf("%v", err)
	return true
}

// Errorf is like Printf("ERROR", ...) but also makes ExitCode non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.mu.Lock()
	defer log.mu.Unlock()
	if log.exitCode == 0 {
		log.exitCode = 1
	}
	if err := log.printf("ERROR", mess, args...); err != nil {
		log.exitCode = 2
	}
}

// Printf writes one line, adding a trailing newline if needed. A failure of
// the output stream is remembered for ExitCode.
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.mu.Lock()
	defer log.mu.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.exitCode = 2
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	if level != "" {
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	_, err := log.buf.WriteTo(log.out)
	log.buf.Reset()
	return err
}
