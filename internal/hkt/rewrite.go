package hkt

import (
	"sort"
	"strings"

	"sugarc/internal/edit"
	"sugarc/internal/source"
	"sugarc/internal/stream"
)

// normalizeHead is the always-parseable application head substituted for a
// kind-polymorphic usage: F<A> becomes Kind<F, A>.
const normalizeHead = "Kind"

// formatMarkerOpen and formatMarkerClose bracket the recoverable marker left
// in place of a placeholder list in format mode.
const (
	formatMarkerOpen  = "/*__hkt"
	formatMarkerClose = "*/"
)

// rewriteDecls removes each declaration's placeholder brackets, or replaces
// them with a recoverable marker comment in format mode.
func rewriteDecls(st *stream.Stream, decls []Decl, set *edit.Set, opts Options) {
	for i := range decls {
		d := &decls[i]
		if opts.Format {
			set.Add(d.Removable, formatMarkerOpen+st.Text(d.Removable)+formatMarkerClose)
		} else {
			set.Add(d.Removable, "")
		}
	}
}

// resolveAll folds usages and concrete applications smallest-span-first
// through one shared memo, so every outer rewrite splices the resolved text
// of whatever nests inside it, no matter which phase produced the inner span.
// Edits are emitted only for spans not contained in another resolved span:
// containment means the text is already folded into the outer rewrite.
func resolveAll(st *stream.Stream, usages []Usage, cands []candidate, set *edit.Set) {
	total := len(usages) + len(cands)
	if total == 0 {
		return
	}

	all := make([]source.Span, 0, total)
	for i := range usages {
		all = append(all, usages[i].Span)
	}
	for i := range cands {
		all = append(all, cands[i].span)
	}

	order := make([]int, total)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return all[order[a]].Len() < all[order[b]].Len()
	})

	resolved := make(map[source.Span]string, total)
	var spans []source.Span

	for _, idx := range order {
		var text string
		if idx < len(usages) {
			u := &usages[idx]
			args := spliceResolved(st, u.Args, spans, resolved)
			text = normalizeHead + "<" + u.Decl.Param + ", " + strings.TrimSpace(args) + ">"
		} else {
			c := &cands[idx-len(usages)]
			parts := make([]string, 0, len(c.fixed)+1)
			for _, f := range c.fixed {
				parts = append(parts, strings.TrimSpace(spliceResolved(st, f, spans, resolved)))
			}
			parts = append(parts, strings.TrimSpace(spliceResolved(st, c.varying, spans, resolved)))
			text = c.concrete + "<" + strings.Join(parts, ", ") + ">"
		}
		resolved[all[idx]] = text
		spans = append(spans, all[idx])
	}

	for i, sp := range all {
		contained := false
		for j, other := range all {
			if i != j && other.StrictlyContains(sp) {
				contained = true
				break
			}
		}
		if !contained {
			set.Add(sp, resolved[sp])
		}
	}
}

// spliceResolved returns the raw text of rng with every maximal resolved span
// inside it replaced by its resolution. Replacements run right to left so
// original offsets stay valid; spans contained in a larger resolved span are
// skipped, their text being part of the larger resolution already.
func spliceResolved(st *stream.Stream, rng source.Span, spans []source.Span, resolved map[source.Span]string) string {
	text := st.Text(rng)

	var inner []source.Span
	for _, sp := range spans {
		if sp.Start >= rng.Start && sp.End <= rng.End {
			inner = append(inner, sp)
		}
	}
	// только максимальные: вложенные уже учтены внешними
	maximal := make([]source.Span, 0, len(inner))
	for _, sp := range inner {
		contained := false
		for _, other := range inner {
			if other != sp && other.StrictlyContains(sp) {
				contained = true
				break
			}
		}
		if !contained {
			maximal = append(maximal, sp)
		}
	}
	sort.Slice(maximal, func(a, b int) bool {
		return maximal[a].Start > maximal[b].Start
	})

	for _, sp := range maximal {
		lo := sp.Start - rng.Start
		hi := sp.End - rng.Start
		text = text[:lo] + resolved[sp] + text[hi:]
	}
	return text
}
