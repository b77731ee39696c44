// Package decorator rewrites tracked value decorators into plain calls.
//
// A decorator group before a variable statement folds into the initializer,
// first listed outermost:
//
//	@a(x) @b(y) const v = init;   ->   const v = a(x, b(y, init));
//
// A group before an interface declaration keeps the interface and appends one
// registration call per decorator after the body, the interface name passed
// as a string literal.
//
// Only identifiers tracked as decorator imports are recognized; a '@' before
// anything else is left alone, as is any group whose target statement does
// not have a rewritable shape.
package decorator

import (
	"strings"

	"sugarc/internal/edit"
	"sugarc/internal/imports"
	"sugarc/internal/source"
	"sugarc/internal/stream"
	"sugarc/internal/token"
)

// dec is one parsed decorator: its covering span, the local callee name, and
// the raw argument text (empty for a bare decorator).
type dec struct {
	span source.Span
	name string
	args string
}

// Apply scans for decorator groups and collects their rewrites into set.
func Apply(st *stream.Stream, tracked *imports.Tracked, set *edit.Set) {
	if tracked.Len() == 0 {
		return
	}
	for i := 0; i < st.Len(); i++ {
		if st.Kind(i) != token.At {
			continue
		}
		group, next, ok := parseGroup(st, tracked, i)
		if !ok {
			continue
		}
		if rewriteTarget(st, group, next, set) {
			i = next
		} else {
			// форма не распознана — группа остаётся как есть
			i = next - 1
		}
	}
}

// parseGroup parses consecutive decorators starting at the '@' at index at.
// Returns the group and the index of the first token after it. The group is
// rejected wholesale if any member is untracked: a half-recognized stack
// must not be half-rewritten.
func parseGroup(st *stream.Stream, tracked *imports.Tracked, at int) ([]dec, int, bool) {
	var group []dec
	i := at
	for st.Kind(i) == token.At {
		if st.Kind(i+1) != token.Ident {
			return nil, 0, false
		}
		name := st.At(i + 1)
		if _, ok := tracked.LookupKind(name.Text, imports.SymbolDecorator); !ok {
			return nil, 0, false
		}
		d := dec{name: name.Text}
		end := i + 1
		if st.Kind(i+2) == token.LParen {
			close := st.MatchBracket(i + 2)
			if close < 0 {
				return nil, 0, false
			}
			d.args = strings.TrimSpace(st.Text(source.Span{
				File:  name.Span.File,
				Start: st.At(i + 2).Span.End,
				End:   st.At(close).Span.Start,
			}))
			end = close
		}
		d.span = st.SpanBetween(i, end)
		group = append(group, d)
		i = end + 1
	}
	return group, i, len(group) > 0
}

// removeDecorator deletes the decorator together with the whitespace
// separating it from what follows, so the rewritten statement keeps no stray
// gap or blank line. Comments after the decorator stop the extension.
func removeDecorator(st *stream.Stream, d dec, set *edit.Set) {
	sp := d.span
	content := st.File().Content
	for sp.End < uint32(len(content)) {
		switch content[sp.End] {
		case ' ', '\t', '\r', '\n':
			sp.End++
			continue
		}
		break
	}
	set.Add(sp, "")
}

// rewriteTarget dispatches on the statement following the group. Reports
// whether edits were emitted.
func rewriteTarget(st *stream.Stream, group []dec, at int, set *edit.Set) bool {
	i := at
	if st.Kind(i) == token.KwExport {
		i++
	}
	switch st.Kind(i) {
	case token.KwConst, token.KwLet, token.KwVar:
		return rewriteVariable(st, group, i, set)
	case token.KwInterface:
		return rewriteInterface(st, group, i, set)
	}
	return false
}

// rewriteVariable folds the group into the variable initializer. The
// initializer extends from the first depth-0 '=' to the depth-0 ';' or end
// of input; strings and templates are single tokens, so the depth scan never
// misreads their contents.
func rewriteVariable(st *stream.Stream, group []dec, kw int, set *edit.Set) bool {
	if st.Kind(kw+1) != token.Ident {
		return false
	}

	assign := -1
	depth := 0
	end := -1
scan:
	for i := kw + 1; i < st.Len(); i++ {
		switch st.Kind(i) {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
			if depth < 0 {
				return false
			}
		case token.Assign:
			if depth == 0 && assign < 0 {
				assign = i
			}
		case token.Semicolon:
			if depth == 0 {
				end = i - 1
				break scan
			}
		case token.EOF:
			end = i - 1
			break scan
		}
	}
	if assign < 0 || end < assign+1 {
		return false
	}
	init := st.SpanBetween(assign+1, end)

	for _, d := range group {
		removeDecorator(st, d, set)
	}
	var prefix, suffix strings.Builder
	for _, d := range group {
		prefix.WriteString(d.name)
		prefix.WriteString("(")
		if d.args != "" {
			prefix.WriteString(d.args)
			prefix.WriteString(", ")
		}
		suffix.WriteString(")")
	}
	at := source.Span{File: init.File, Start: init.Start, End: init.Start}
	set.Add(at, prefix.String())
	at = source.Span{File: init.File, Start: init.End, End: init.End}
	set.Add(at, suffix.String())
	return true
}

// rewriteInterface keeps the interface and appends registration calls after
// its body, one per decorator in listed order.
func rewriteInterface(st *stream.Stream, group []dec, kw int, set *edit.Set) bool {
	if st.Kind(kw+1) != token.Ident {
		return false
	}
	name := st.At(kw + 1).Text

	open := kw + 2
	for ; open < st.Len(); open++ {
		switch st.Kind(open) {
		case token.LBrace:
		case token.Semicolon, token.EOF:
			return false
		default:
			continue
		}
		break
	}
	close := st.MatchBracket(open)
	if close < 0 {
		return false
	}

	for _, d := range group {
		removeDecorator(st, d, set)
	}
	var calls strings.Builder
	for _, d := range group {
		calls.WriteString("\n")
		calls.WriteString(d.name)
		calls.WriteString("(")
		if d.args != "" {
			calls.WriteString(d.args)
			calls.WriteString(", ")
		}
		calls.WriteString("\"")
		calls.WriteString(name)
		calls.WriteString("\");")
	}
	endOff := st.At(close).Span.End
	set.Add(source.Span{File: st.At(close).Span.File, Start: endOff, End: endOff}, calls.String())
	return true
}
