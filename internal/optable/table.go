// Package optable holds the custom infix operator definitions the tokenizer
// merges and the operator extension rewrites.
package optable

import (
	"fmt"
	"sort"
)

// Assoc is the associativity of a custom operator.
type Assoc uint8

const (
	// AssocLeft folds chains as transform(transform(a, b), c).
	AssocLeft Assoc = iota
	// AssocRight folds chains as transform(a, transform(b, c)).
	AssocRight
)

func (a Assoc) String() string {
	if a == AssocRight {
		return "right"
	}
	return "left"
}

// Def describes one custom infix operator. Custom operators bind looser than
// arithmetic and tighter than assignment; Precedence orders them relative to
// each other only (higher binds tighter).
type Def struct {
	Symbol     string
	Precedence int
	Assoc      Assoc
	// Call, when non-empty, names the function the operator rewrites to:
	// a SYM b -> Call(a, b). When empty the generic form
	// __binop__(a, "SYM", b) is used.
	Call string
}

// Transform renders the call form for one application of the operator.
func (d Def) Transform(left, right string) string {
	if d.Call != "" {
		return fmt.Sprintf("%s(%s, %s)", d.Call, left, right)
	}
	return fmt.Sprintf("__binop__(%s, %q, %s)", left, d.Symbol, right)
}

// Table is a read-only-after-setup set of operator definitions.
type Table struct {
	defs   map[string]Def
	maxLen int
}

// NewTable creates an empty operator table.
func NewTable() *Table {
	return &Table{defs: make(map[string]Def)}
}

// Default returns a table with the two shipped operators: the pipeline form
// |> (left-associative) and the cons form :: (right-associative, binds
// tighter).
func Default() *Table {
	t := NewTable()
	t.Register(Def{Symbol: "|>", Precedence: 40, Assoc: AssocLeft})
	t.Register(Def{Symbol: "::", Precedence: 60, Assoc: AssocRight})
	return t
}

// Register adds or replaces an operator definition. Empty symbols are ignored.
func (t *Table) Register(d Def) {
	if d.Symbol == "" {
		return
	}
	t.defs[d.Symbol] = d
	if len(d.Symbol) > t.maxLen {
		t.maxLen = len(d.Symbol)
	}
}

// Lookup returns the definition for the given symbol.
func (t *Table) Lookup(symbol string) (Def, bool) {
	d, ok := t.defs[symbol]
	return d, ok
}

// MaxSymbolLen returns the length of the longest registered symbol, bounding
// how many adjacent tokens the merge pass needs to consider.
func (t *Table) MaxSymbolLen() int {
	return t.maxLen
}

// Len returns the number of registered operators.
func (t *Table) Len() int {
	return len(t.defs)
}

// Symbols returns the registered symbols in deterministic order.
func (t *Table) Symbols() []string {
	out := make([]string, 0, len(t.defs))
	for s := range t.defs {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
