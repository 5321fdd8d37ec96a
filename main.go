// Command uni runs Uni programs, or an interactive session when no files are
// given.
//
// Usage:
//
//	uni [flags] [file ...]
//
// A file named "-" is read from standard input.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/jcorbin/uni/internal/logio"
	"github.com/jcorbin/uni/uni"
)

func main() {
	var (
		timeout   time.Duration
		trace     bool
		cplx      bool
		dump      bool
		noPrelude bool
		jobs      int
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit for each evaluation")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&cplx, "complex", false, "enable complex numbers")
	flag.BoolVar(&dump, "dump", false, "dump interpreter state after each evaluation")
	flag.BoolVar(&noPrelude, "no-prelude", false, "do not load the standard prelude")
	flag.IntVar(&jobs, "j", 1, "run up to this many files in parallel")
	flag.Parse()

	log := logio.New(os.Stderr)
	h := host{
		log:      log,
		prelude:  !noPrelude,
		timeout:  timeout,
		readLine: scanLines(os.Stdin),
		opts:     []uni.Option{uni.WithComplex(cplx)},
	}
	if trace {
		h.opts = append(h.opts, uni.WithLogf(log.Leveledf("TRACE")))
	}
	var dw *logio.Writer
	if dump {
		dw = log.Writer("DUMP")
		h.dump = dw
	}

	ctx := context.Background()
	if args := flag.Args(); len(args) > 0 {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		log.ErrorIf(h.runFiles(ctx, args, jobs, os.Stdout))
		stop()
	} else {
		log.ErrorIf(h.repl(ctx, os.Stdout))
	}
	if dw != nil {
		dw.Close()
	}
	os.Exit(log.ExitCode())
}
