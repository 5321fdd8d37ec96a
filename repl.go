package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jcorbin/uni/reader"
	"github.com/jcorbin/uni/uni"
)

const (
	historyFile = ".uni_history"
	promptMain  = "> "
	promptCont  = ". "
)

const banner = `Uni
Type 'quit' or press Ctrl-D to exit, 'words' to list defined words,
and '<word> help to get help for a word (note the tick before the word).
`

func historyPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, historyFile)
	}
	return historyFile
}

// repl runs an interactive session on the terminal. Lines are evaluated as
// soon as they form complete values; an unclosed list or string continues
// onto the next line.
func (h *host) repl(ctx context.Context, out io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	// the terminal belongs to liner now, and only one prompt may be active
	// on it at a time
	p := newPrompter(ln.Prompt)
	defer p.close()
	h.readLine = func() (string, error) { return p.prompt("") }

	in, err := h.newInterpreter(ctx, out)
	if err != nil {
		return err
	}
	io.WriteString(out, banner)
	return h.interact(ctx, in, p.prompt, ln.AppendHistory, out)
}

// prompter serializes prompts onto one goroutine. A read-line abandoned by
// a timeout still holds the terminal until its line is entered; that line
// is discarded, and the next prompt follows it.
type prompter struct {
	reqs chan promptRequest
}

type promptRequest struct {
	prompt string
	reply  chan<- promptReply
}

type promptReply struct {
	line string
	err  error
}

func newPrompter(prompt func(string) (string, error)) *prompter {
	p := &prompter{reqs: make(chan promptRequest)}
	go func() {
		for req := range p.reqs {
			line, err := prompt(req.prompt)
			req.reply <- promptReply{line, err}
		}
	}()
	return p
}

func (p *prompter) prompt(s string) (string, error) {
	reply := make(chan promptReply, 1)
	p.reqs <- promptRequest{s, reply}
	r := <-reply
	return r.line, r.err
}

func (p *prompter) close() { close(p.reqs) }

func (h *host) interact(
	ctx context.Context,
	in *uni.Interpreter,
	prompt func(string) (string, error),
	remember func(string),
	out io.Writer,
) error {
	var src strings.Builder
	for {
		p := promptMain
		if src.Len() > 0 {
			p = promptCont
		}
		line, err := prompt(p)
		switch {
		case err == liner.ErrPromptAborted:
			src.Reset()
			continue
		case err == io.EOF:
			io.WriteString(out, "\n")
			return nil
		case err != nil:
			return err
		}

		if src.Len() > 0 {
			src.WriteByte('\n')
		}
		src.WriteString(line)
		text := src.String()
		forms, err := reader.ReadString(in, "<stdin>", text)
		if errors.Is(err, reader.ErrIncomplete) {
			continue
		}
		src.Reset()
		if strings.TrimSpace(text) == "" {
			continue
		}
		remember(text)

		if err == nil {
			err = h.interactive(ctx, in, forms)
		}
		switch {
		case errors.Is(err, uni.ErrQuit):
			return nil
		case err != nil:
			h.log.Printf("ERROR", "%v", err)
		default:
			if stack := in.Stack(); len(stack) > 0 {
				var sb strings.Builder
				sb.WriteString("Stack:")
				for _, v := range stack {
					sb.WriteByte(' ')
					sb.WriteString(v.String())
				}
				fmt.Fprintln(out, sb.String())
			}
		}
	}
}

// interactive evaluates forms until done, or until interrupted by Ctrl-C.
func (h *host) interactive(ctx context.Context, in *uni.Interpreter, forms []uni.Value) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return h.eval(ctx, in, forms)
}
