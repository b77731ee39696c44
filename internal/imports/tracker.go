package imports

import (
	"sugarc/internal/stream"
	"sugarc/internal/token"
)

// Tracked maps local identifiers of one file to recognized symbols.
// Rebuilt per file from its own imports only; no cross-file resolution.
type Tracked struct {
	byLocal map[string]Symbol
}

// Lookup returns the symbol tracked under the given local name.
func (t *Tracked) Lookup(local string) (Symbol, bool) {
	if t == nil {
		return Symbol{}, false
	}
	sym, ok := t.byLocal[local]
	return sym, ok
}

// LookupKind returns the symbol only when it has the wanted kind.
func (t *Tracked) LookupKind(local string, kind SymbolKind) (Symbol, bool) {
	sym, ok := t.Lookup(local)
	if !ok || sym.Kind != kind {
		return Symbol{}, false
	}
	return sym, true
}

// Len returns the number of tracked local names.
func (t *Tracked) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byLocal)
}

// Track scans the file's top-level import declarations and collects local
// bindings of recognized symbols, honoring `as` aliases. Malformed imports
// are skipped without error.
func Track(st *stream.Stream, reg *Registry) *Tracked {
	tracked := &Tracked{byLocal: make(map[string]Symbol)}
	if reg == nil {
		return tracked
	}

	depth := 0
	for i := 0; i < st.Len(); i++ {
		switch st.Kind(i) {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		case token.KwImport:
			if depth == 0 {
				i = trackImport(st, i, reg, tracked)
			}
		}
	}
	return tracked
}

// trackImport parses one `import { A, B as C } from "mod"` declaration
// starting at the import keyword and returns the index to resume from.
func trackImport(st *stream.Stream, at int, reg *Registry, tracked *Tracked) int {
	i := at + 1
	// `import type { ... }` is tracked the same way
	if st.Kind(i) == token.KwType {
		i++
	}
	if st.Kind(i) != token.LBrace {
		// default or namespace import — not trackable
		return at
	}
	close := st.MatchBracket(i)
	if close < 0 {
		return at
	}

	// binding list first, module source after
	type binding struct {
		exported string
		local    string
	}
	var bindings []binding
	for j := i + 1; j < close; j++ {
		if st.Kind(j) != token.Ident {
			continue
		}
		b := binding{exported: st.At(j).Text, local: st.At(j).Text}
		if st.Kind(j+1) == token.KwAs && st.Kind(j+2) == token.Ident {
			b.local = st.At(j + 2).Text
			j += 2
		}
		bindings = append(bindings, b)
		// до следующей запятой
		for j+1 < close && st.Kind(j+1) != token.Comma {
			j++
		}
	}

	if st.Kind(close+1) != token.KwFrom || st.Kind(close+2) != token.String {
		return close
	}
	module := unquote(st.At(close + 2).Text)
	exports, ok := reg.Module(module)
	if !ok {
		return close + 2
	}

	for _, b := range bindings {
		if sym, ok := exports[b.exported]; ok {
			tracked.byLocal[b.local] = sym
		}
	}
	return close + 2
}

func unquote(text string) string {
	if len(text) >= 2 {
		q := text[0]
		if (q == '"' || q == '\'') && text[len(text)-1] == q {
			return text[1 : len(text)-1]
		}
	}
	return text
}
