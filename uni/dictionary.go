package uni

import "sort"

// Binding is the record a symbol is bound to.
type Binding struct {
	Value      Value
	Executable bool
	Doc        string
}

// Dictionary maps interned symbols to bindings: a global table shadowed by a
// stack of local frames.
type Dictionary struct {
	symbols
	global map[uint]Binding
	frames []map[uint]Binding
}

// Define binds sym in the innermost local frame, or in the global table when
// no frame is active.
func (dict *Dictionary) Define(sym Symbol, b Binding) {
	if i := len(dict.frames) - 1; i >= 0 {
		dict.defineIn(i, sym, b)
		return
	}
	dict.DefineGlobal(sym, b)
}

// DefineLocal binds sym in the innermost local frame, failing with
// ErrFrame if there is none.
func (dict *Dictionary) DefineLocal(sym Symbol, b Binding) error {
	i := len(dict.frames) - 1
	if i < 0 {
		return ErrFrame
	}
	dict.defineIn(i, sym, b)
	return nil
}

// DefineGlobal binds sym in the global table, ignoring any local frames.
func (dict *Dictionary) DefineGlobal(sym Symbol, b Binding) {
	if dict.global == nil {
		dict.global = make(map[uint]Binding)
	}
	dict.global[dict.resolve(sym)] = b
}

func (dict *Dictionary) defineIn(i int, sym Symbol, b Binding) {
	frame := dict.frames[i]
	if frame == nil {
		frame = make(map[uint]Binding)
		dict.frames[i] = frame
	}
	frame[dict.resolve(sym)] = b
}

// Lookup searches local frames innermost first, then the global table.
func (dict *Dictionary) Lookup(sym Symbol) (Binding, error) {
	if id := dict.known(sym); id != 0 {
		for i := len(dict.frames) - 1; i >= 0; i-- {
			if b, defined := dict.frames[i][id]; defined {
				return b, nil
			}
		}
		if b, defined := dict.global[id]; defined {
			return b, nil
		}
	}
	return Binding{}, UnknownWordError(sym.name)
}

// SetDoc attaches documentation to the visible binding of sym.
func (dict *Dictionary) SetDoc(sym Symbol, doc string) error {
	id := dict.known(sym)
	if id != 0 {
		for i := len(dict.frames) - 1; i >= 0; i-- {
			if b, defined := dict.frames[i][id]; defined {
				b.Doc = doc
				dict.frames[i][id] = b
				return nil
			}
		}
		if b, defined := dict.global[id]; defined {
			b.Doc = doc
			dict.global[id] = b
			return nil
		}
	}
	return UnknownWordError(sym.name)
}

// PushFrame enters a new, initially empty, local frame.
func (dict *Dictionary) PushFrame() {
	// frame maps are only allocated on first definition
	dict.frames = append(dict.frames, nil)
}

// PopFrame discards the innermost local frame.
func (dict *Dictionary) PopFrame() error {
	i := len(dict.frames) - 1
	if i < 0 {
		return ErrFrame
	}
	dict.frames[i] = nil
	dict.frames = dict.frames[:i]
	return nil
}

// Frames returns the number of active local frames.
func (dict *Dictionary) Frames() int { return len(dict.frames) }

func (dict *Dictionary) dropFrames() {
	for i := range dict.frames {
		dict.frames[i] = nil
	}
	dict.frames = dict.frames[:0]
}

// Words returns all globally bound symbols, sorted by name.
func (dict *Dictionary) Words() []Symbol {
	words := make([]Symbol, 0, len(dict.global))
	for id := range dict.global {
		words = append(words, Symbol{id: id, name: dict.string(id)})
	}
	sort.Slice(words, func(i, j int) bool { return words[i].name < words[j].name })
	return words
}
