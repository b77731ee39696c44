// Package infix rewrites custom infix operator expressions into explicit
// call forms by precedence climbing over merged operator tokens.
//
// Custom operators bind looser than arithmetic and tighter than assignment:
// an operand extends across arithmetic and logical operators and stops at
// assignment, commas, statement boundaries, and bracket edges.
package infix

import (
	"sort"

	"sugarc/internal/edit"
	"sugarc/internal/optable"
	"sugarc/internal/source"
	"sugarc/internal/stream"
	"sugarc/internal/token"
)

// chain is one maximal operator chain: operands[0] op[0] operands[1] ...
// Operand ranges are inclusive token index pairs.
type chain struct {
	span     source.Span
	operands [][2]int
	ops      []optable.Def
}

// Apply rewrites every custom operator chain found in expression position.
// Chains nested inside another chain's bracketed operands resolve first and
// are spliced into the outer rewrite, so one pass leaves no residual sugar.
func Apply(st *stream.Stream, table *optable.Table, set *edit.Set) {
	if table == nil || table.Len() == 0 {
		return
	}
	mask := typeContext(st)

	var chains []chain
	claimed := make(map[int]bool) // оператор уже входит в цепочку

	for i := 0; i < st.Len(); i++ {
		if st.Kind(i) != token.CustomOp || mask[i] || claimed[i] {
			continue
		}
		c, opIdxs, ok := collectChain(st, table, i)
		if !ok {
			continue
		}
		for _, idx := range opIdxs {
			claimed[idx] = true
		}
		chains = append(chains, c)
	}
	if len(chains) == 0 {
		return
	}

	// вложенные цепочки раньше внешних
	order := make([]int, len(chains))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return chains[order[a]].span.Len() < chains[order[b]].span.Len()
	})

	resolved := make(map[source.Span]string, len(chains))
	var spans []source.Span
	for _, idx := range order {
		c := &chains[idx]
		texts := make([]string, len(c.operands))
		for i, rng := range c.operands {
			texts[i] = spliceResolved(st, st.SpanBetween(rng[0], rng[1]), spans, resolved)
		}
		resolved[c.span] = fold(texts, c.ops)
		spans = append(spans, c.span)
	}

	for i := range chains {
		c := &chains[i]
		contained := false
		for j := range chains {
			if i != j && chains[j].span.StrictlyContains(c.span) {
				contained = true
				break
			}
		}
		if !contained {
			set.Add(c.span, resolved[c.span])
		}
	}
}

// isBoundary reports whether the token ends an operand at nesting depth zero.
func isBoundary(t token.Token) bool {
	switch t.Kind {
	case token.Comma, token.Semicolon, token.Colon, token.Question,
		token.FatArrow, token.Assign, token.PlusAssign, token.MinusAssign,
		token.StarAssign, token.SlashAssign, token.PercentAssign,
		token.AmpAssign, token.PipeAssign, token.CaretAssign,
		token.At, token.EOF, token.Invalid:
		return true
	}
	return t.IsKeyword()
}

func isOpener(k token.Kind) bool {
	return k == token.LParen || k == token.LBracket || k == token.LBrace
}

func isCloser(k token.Kind) bool {
	return k == token.RParen || k == token.RBracket || k == token.RBrace
}

// collectChain gathers the maximal chain containing the custom operator at
// index op. An empty operand anywhere abandons the whole chain: no partial
// rewrite is ever emitted.
func collectChain(st *stream.Stream, table *optable.Table, op int) (chain, []int, bool) {
	var c chain

	// левая граница: назад до разделителя выражения
	start := op
	depth := 0
	for k := op - 1; k >= 0; k-- {
		t := st.At(k)
		if isCloser(t.Kind) {
			depth++
		} else if isOpener(t.Kind) {
			if depth == 0 {
				break
			}
			depth--
		} else if depth == 0 && isBoundary(t) {
			break
		}
		start = k
	}
	if start == op {
		// пустой левый операнд
		return c, nil, false
	}

	// вперёд: операнды и операторы цепочки
	var opIdxs []int
	segStart := start
	depth = 0
	end := op
	for k := start; ; k++ {
		t := st.At(k)
		stop := false
		switch {
		case isOpener(t.Kind):
			depth++
		case isCloser(t.Kind):
			depth--
			if depth < 0 {
				stop = true
			}
		case t.Kind == token.CustomOp && depth == 0:
			def, ok := table.Lookup(t.Text)
			if !ok || segStart > k-1 {
				return c, nil, false
			}
			c.operands = append(c.operands, [2]int{segStart, k - 1})
			c.ops = append(c.ops, def)
			opIdxs = append(opIdxs, k)
			segStart = k + 1
		case depth == 0 && isBoundary(t):
			stop = true
		}
		if stop || k >= st.Len()-1 {
			if segStart > k-1 {
				// пустой правый операнд
				return c, nil, false
			}
			c.operands = append(c.operands, [2]int{segStart, k - 1})
			end = k - 1
			break
		}
	}
	if len(c.ops) == 0 {
		return c, nil, false
	}

	c.span = st.SpanBetween(c.operands[0][0], end)
	return c, opIdxs, true
}

// spliceResolved returns the text of rng with every maximal already-resolved
// chain span inside it replaced by its rewrite, right to left so original
// offsets stay valid.
func spliceResolved(st *stream.Stream, rng source.Span, spans []source.Span, resolved map[source.Span]string) string {
	text := st.Text(rng)

	var inner []source.Span
	for _, sp := range spans {
		if sp.Start >= rng.Start && sp.End <= rng.End {
			inner = append(inner, sp)
		}
	}
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

// fold runs precedence climbing over the operand/operator chain. Chains fold
// per declared associativity; relative precedence orders simultaneously
// active operators.
func fold(operands []string, ops []optable.Def) string {
	next := 0
	var parse func(minPrec int) string
	parse = func(minPrec int) string {
		left := operands[next]
		next++
		for next-1 < len(ops) {
			op := ops[next-1]
			if op.Precedence < minPrec {
				break
			}
			nextMin := op.Precedence + 1
			if op.Assoc == optable.AssocRight {
				nextMin = op.Precedence
			}
			right := parse(nextMin)
			left = op.Transform(left, right)
		}
		return left
	}
	return parse(0)
}
