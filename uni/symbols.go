package uni

// symbols interns names into small dense ids, used as dictionary keys.
type symbols struct {
	strings []string
	ids     map[string]uint
}

func (sym symbols) string(id uint) string {
	if i := int(id) - 1; i >= 0 && i < len(sym.strings) {
		return sym.strings[i]
	}
	return ""
}

func (sym symbols) lookup(s string) uint {
	return sym.ids[s]
}

func (sym *symbols) symbolicate(s string) (id uint) {
	id, defined := sym.ids[s]
	if !defined {
		if sym.ids == nil {
			sym.ids = make(map[string]uint)
		}
		id = uint(len(sym.strings)) + 1
		sym.strings = append(sym.strings, s)
		sym.ids[s] = id
	}
	return id
}

// Intern returns the unique symbol for name.
func (sym *symbols) Intern(name string) Symbol {
	return Symbol{id: sym.symbolicate(name), name: name}
}

// resolve returns the id of a symbol within this table; symbols minted by
// another table are re-interned by name.
func (sym *symbols) resolve(s Symbol) uint {
	if s.id != 0 && sym.string(s.id) == s.name {
		return s.id
	}
	return sym.symbolicate(s.name)
}

// known is like resolve, but never grows the table; 0 means the name was
// never interned.
func (sym symbols) known(s Symbol) uint {
	if s.id != 0 && sym.string(s.id) == s.name {
		return s.id
	}
	return sym.lookup(s.name)
}
