package preprocessor

import "github.com/fwessels/aqcc/internal/token"

// Defines maps macro names to their replacement tokens. Entries are never
// replaced or removed, and the stored sequences are never modified.
type Defines struct {
	table map[string][]*token.Token
}

func NewDefines() *Defines {
	return &Defines{table: map[string][]*token.Token{}}
}

// Define registers name. It fails if name is already defined.
func (d *Defines) Define(name string, toks []*token.Token) error {
	if _, ok := d.table[name]; ok {
		return &DuplicateDefineError{Name: name}
	}
	d.table[name] = toks
	return nil
}

// Lookup returns the replacement of name. The slice is shared with the table
// and must be cloned before it is changed.
func (d *Defines) Lookup(name string) ([]*token.Token, bool) {
	toks, ok := d.table[name]
	return toks, ok
}

func (d *Defines) Defined(name string) bool {
	_, ok := d.table[name]
	return ok
}

func (d *Defines) Len() int { return len(d.table) }
