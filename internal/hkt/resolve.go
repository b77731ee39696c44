package hkt

import (
	"strings"

	"sugarc/internal/imports"
	"sugarc/internal/source"
	"sugarc/internal/stream"
	"sugarc/internal/token"
)

// candidate is one application of a tracked operator to a tracked type
// function, found outside any shadowing declaration scope:
// $<OptionF, number> or $<EitherF<string>, number>.
type candidate struct {
	span     source.Span
	concrete string
	fixed    []source.Span
	varying  source.Span
}

// collectConcrete finds operator applications; resolution happens together
// with usage normalization in resolveAll. Requires a tracked operator import;
// with none the scan is a no-op, so unrelated generic syntax is never
// reinterpreted.
func collectConcrete(st *stream.Stream, tracked *imports.Tracked, decls []Decl) []candidate {
	if tracked.Len() == 0 {
		return nil
	}

	var cands []candidate
	for i := 0; i < st.Len(); i++ {
		if st.Kind(i) != token.Ident || st.Kind(i+1) != token.Lt {
			continue
		}
		tok := st.At(i)
		if _, ok := tracked.LookupKind(tok.Text, imports.SymbolOperator); !ok {
			continue
		}
		if shadowed(decls, tok.Text, tok.Span.Start) {
			continue
		}
		if c, ok := parseCandidate(st, i, tracked, decls); ok {
			cands = append(cands, c)
		}
	}
	return cands
}

// parseCandidate validates the application opened at the operator identifier
// op. Every ill-formed shape — unbalanced brackets, untracked or shadowed
// head, misplaced comma, empty varying argument — abandons the candidate
// without an edit.
func parseCandidate(st *stream.Stream, op int, tracked *imports.Tracked, decls []Decl) (candidate, bool) {
	var c candidate

	close := st.MatchBracket(op + 1)
	if close < 0 {
		return c, false
	}

	head := op + 2
	headTok := st.At(head)
	if headTok.Kind != token.Ident {
		return c, false
	}
	sym, ok := tracked.LookupKind(headTok.Text, imports.SymbolTypeFunc)
	if !ok {
		return c, false
	}
	if shadowed(decls, headTok.Text, headTok.Span.Start) {
		// имя занято kind-параметром: это generic-применение, не резолвим
		return c, false
	}

	after := head + 1
	if st.Kind(after) == token.Lt {
		if !sym.Parameterized {
			return c, false
		}
		fclose := st.MatchBracket(after)
		if fclose < 0 || fclose >= close {
			return c, false
		}
		for _, item := range st.SplitTopLevel(after, fclose) {
			if item[1] < item[0] {
				return c, false
			}
			c.fixed = append(c.fixed, st.SpanBetween(item[0], item[1]))
		}
		after = fclose + 1
	}

	if st.Kind(after) != token.Comma || after >= close {
		return c, false
	}

	varying := source.Span{
		File:  headTok.Span.File,
		Start: st.At(after).Span.End,
		End:   st.At(close).Span.Start,
	}
	if strings.TrimSpace(st.Text(varying)) == "" {
		return c, false
	}

	c.span = st.SpanBetween(op, close)
	c.concrete = sym.Concrete
	c.varying = varying
	return c, true
}
