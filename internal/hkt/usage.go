package hkt

import (
	"sugarc/internal/source"
	"sugarc/internal/stream"
	"sugarc/internal/token"
)

// Usage is a reference to a declaration's parameter applied to arguments
// within its active scope.
type Usage struct {
	Decl *Decl
	// Span covers the identifier through the closing '>'.
	Span source.Span
	// Args is the byte range of the raw argument text between the brackets.
	Args source.Span
}

// discoverUsages scans for `Ident < ... >` where the identifier names an
// active declaration's parameter. Matches whose bracket contents are
// themselves only placeholders are re-declarations, not uses. A match whose
// bracket never closes is abandoned; scanning continues after it.
func discoverUsages(st *stream.Stream, decls []Decl) []Usage {
	var usages []Usage
	for i := 0; i < st.Len(); i++ {
		if st.Kind(i) != token.Ident || st.Kind(i+1) != token.Lt {
			continue
		}
		tok := st.At(i)
		decl := innermost(decls, tok.Text, tok.Span.Start)
		if decl == nil {
			continue
		}
		if tok.Span == decl.Ident {
			// сама декларация
			continue
		}
		if _, redecl := placeholderList(st, i + 1); redecl {
			continue
		}
		close := st.MatchBracket(i + 1)
		if close < 0 {
			continue
		}
		usages = append(usages, Usage{
			Decl: decl,
			Span: st.SpanBetween(i, close),
			Args: source.Span{
				File:  tok.Span.File,
				Start: st.At(i + 1).Span.End,
				End:   st.At(close).Span.Start,
			},
		})
	}
	return usages
}
