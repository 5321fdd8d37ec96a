package uni

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Dump writes a human readable description of the interpreter's state:
// stacks, continuations, local frames, and dictionary.
func (in *Interpreter) Dump(w io.Writer) error {
	dump := dumper{in: in, out: w}
	dump.dump()
	return dump.err
}

type dumper struct {
	in  *Interpreter
	out io.Writer
	buf bytes.Buffer
	err error
}

func (dump *dumper) dump() {
	dump.printf("# Interpreter Dump")
	dump.printf("  status: %v", dump.in.Status())
	dump.printf("  stack: %v", List(dump.in.stack))
	if len(dump.in.rstack) > 0 {
		dump.printf("  rstack: %v", List(dump.in.rstack))
	}
	dump.dumpConts()
	dump.dumpFrames()
	dump.dumpDict()
}

func (dump *dumper) dumpConts() {
	conts := dump.in.conts
	dump.printf("# Continuations (depth %v max %v)", len(conts), dump.in.maxDepth)
	for i := len(conts) - 1; i >= 0; i-- {
		dump.printf("  %v: %v", i, conts[i])
	}
}

func (dump *dumper) dumpFrames() {
	frames := dump.in.dict.frames
	if len(frames) == 0 {
		return
	}
	dump.printf("# Local Frames")
	for i := len(frames) - 1; i >= 0; i-- {
		dump.printf("  frame %v:", i)
		dump.dumpBindings(frames[i])
	}
}

func (dump *dumper) dumpDict() {
	dump.printf("# Dictionary")
	dump.dumpBindings(dump.in.dict.global)
}

func (dump *dumper) dumpBindings(bindings map[uint]Binding) {
	names := make([]string, 0, len(bindings))
	byName := make(map[string]Binding, len(bindings))
	for id, b := range bindings {
		name := dump.in.dict.string(id)
		names = append(names, name)
		byName[name] = b
	}
	sort.Strings(names)
	for _, name := range names {
		b := byName[name]
		switch {
		case !b.Executable:
			dump.printf("    %v = %v", name, b.Value)
		case b.Value != nil && b.Value.Kind() == KindList:
			dump.printf("    : %v %v", name, b.Value)
		default:
			dump.printf("    %v %v", name, b.Value)
		}
	}
}

func (dump *dumper) printf(mess string, args ...interface{}) {
	if dump.err != nil {
		return
	}
	fmt.Fprintf(&dump.buf, mess, args...)
	dump.buf.WriteByte('\n')
	_, dump.err = dump.buf.WriteTo(dump.out)
}
