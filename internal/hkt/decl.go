package hkt

import (
	"sugarc/internal/source"
	"sugarc/internal/stream"
	"sugarc/internal/token"
)

// Decl is one kind-polymorphic parameter declaration: an identifier directly
// followed by a parameter list consisting solely of underscore placeholders.
// Read-only after discovery.
type Decl struct {
	Param string
	// Ident is the span of the parameter name.
	Ident source.Span
	// Removable covers the placeholder brackets, '<' through '>'.
	Removable source.Span
	// Scope is the byte range within which the parameter is active.
	Scope source.Span
}

// activeFor reports whether the declaration covers the given offset.
func (d *Decl) activeFor(off uint32) bool {
	return d.Scope.ContainsOffset(off)
}

// discoverDecls scans for `Ident < _ (, _)* >` and computes each match's
// lexical scope.
func discoverDecls(st *stream.Stream) []Decl {
	var decls []Decl
	for i := 0; i < st.Len(); i++ {
		if st.Kind(i) != token.Ident || st.Kind(i+1) != token.Lt {
			continue
		}
		close, ok := placeholderList(st, i+1)
		if !ok {
			continue
		}
		decls = append(decls, Decl{
			Param:     st.At(i).Text,
			Ident:     st.At(i).Span,
			Removable: st.SpanBetween(i+1, close),
			Scope:     declScope(st, i, close),
		})
		i = close
	}
	return decls
}

// placeholderList reports whether the bracket group opened at open contains
// only underscore placeholders, returning the index of the closing '>'.
func placeholderList(st *stream.Stream, open int) (int, bool) {
	i := open + 1
	if st.Kind(i) != token.Underscore {
		return 0, false
	}
	for {
		if st.Kind(i) != token.Underscore {
			return 0, false
		}
		i++
		switch st.Kind(i) {
		case token.Comma:
			i++
		case token.Gt:
			return i, true
		default:
			return 0, false
		}
	}
}

// declScope computes the lexical scope of the declaration at token ident with
// placeholder brackets ending at close.
//
// Backward: delimiter-depth scan to the nearest enclosing unmatched opener;
// none means file scope (overlapping file-scope declarations are arbitrated
// by the smallest-span rule at usage time). Forward: the scope ends where the
// enclosing block closes, where the declaration's own associated block
// closes, or — for braceless forms such as arrow functions and type aliases —
// at the first depth-0 statement terminator.
func declScope(st *stream.Stream, ident, close int) source.Span {
	file := st.File()
	scope := source.Span{File: file.ID, Start: 0, End: uint32(len(file.Content))}

	// назад: ближайший незакрытый открывающий разделитель
	depth := 0
back:
	for k := ident - 1; k >= 0; k-- {
		switch st.Kind(k) {
		case token.RBrace, token.RParen, token.RBracket:
			depth++
		case token.LBrace, token.LParen, token.LBracket:
			if depth == 0 {
				scope.Start = st.At(k).Span.Start
				break back
			}
			depth--
		}
	}

	// вперёд: закрытие блока либо терминатор инструкции
	depth = 0
	blockRuleOff := false // после '='/'=>' первый {...} — не тело декларации
	for k := close + 1; k < st.Len(); k++ {
		switch st.Kind(k) {
		case token.LBrace, token.LParen, token.LBracket:
			depth++
		case token.RBrace, token.RParen, token.RBracket:
			depth--
			if depth < 0 {
				scope.End = st.At(k).Span.End
				return scope
			}
			if depth == 0 && st.Kind(k) == token.RBrace && !blockRuleOff {
				// собственный блок декларации закрылся
				scope.End = st.At(k).Span.End
				return scope
			}
		case token.Assign, token.FatArrow:
			if depth == 0 {
				blockRuleOff = true
			}
		case token.Semicolon:
			if depth == 0 {
				scope.End = st.At(k).Span.End
				return scope
			}
		case token.EOF:
			return scope
		}
	}
	return scope
}

// innermost picks, among declarations of the given name active at off, the
// one with the smallest scope span. Shadowing contract: the innermost
// declaration wins.
func innermost(decls []Decl, name string, off uint32) *Decl {
	var best *Decl
	for i := range decls {
		d := &decls[i]
		if d.Param != name || !d.activeFor(off) {
			continue
		}
		if best == nil || d.Scope.Len() < best.Scope.Len() {
			best = d
		}
	}
	return best
}

// shadowed reports whether any declaration of the given name is active at off.
func shadowed(decls []Decl, name string, off uint32) bool {
	for i := range decls {
		if decls[i].Param == name && decls[i].activeFor(off) {
			return true
		}
	}
	return false
}
