package infix

import (
	"sugarc/internal/stream"
	"sugarc/internal/token"
)

// typeContext marks every token index that sits in a type position rather
// than an expression position: type-alias statements, interface bodies,
// extends constraints, and colon type annotations. Custom operators found in
// marked positions are never rewritten.
//
// This is a token-range heuristic, not a parse; on doubt it marks, because a
// skipped rewrite is recoverable and a wrong one is not.
func typeContext(st *stream.Stream) []bool {
	mask := make([]bool, st.Len())

	// стек открытых скобок, для классификации ':'
	var brackets []token.Kind
	// незакрытые '?' тернарников по глубине стека
	pending := map[int]int{}

	for i := 0; i < st.Len(); i++ {
		switch st.Kind(i) {
		case token.LParen, token.LBracket, token.LBrace:
			brackets = append(brackets, st.Kind(i))
		case token.RParen, token.RBracket, token.RBrace:
			if len(brackets) > 0 {
				delete(pending, len(brackets))
				brackets = brackets[:len(brackets)-1]
			}

		case token.KwType:
			// type Alias<...> = ...;
			i = markUntilSemicolon(st, mask, i)
		case token.KwInterface:
			i = markInterface(st, mask, i)
		case token.KwExtends:
			i = markConstraint(st, mask, i)

		case token.Question:
			pending[len(brackets)]++

		case token.Colon:
			if pending[len(brackets)] > 0 {
				// тернарный ':' — выражение
				pending[len(brackets)]--
				continue
			}
			if len(brackets) == 0 || brackets[len(brackets)-1] == token.LParen {
				// аннотация типа: до ',' / ')' / '=' / '=>' / '{' / ';'
				// на той же глубине
				i = markAnnotation(st, mask, i)
			}
		}
	}
	return mask
}

// markUntilSemicolon marks tokens from at through the first depth-0
// semicolon, returning the index to resume from.
func markUntilSemicolon(st *stream.Stream, mask []bool, at int) int {
	depth := 0
	for i := at; i < st.Len(); i++ {
		mask[i] = true
		switch st.Kind(i) {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
			if depth < 0 {
				return i
			}
		case token.Semicolon:
			if depth == 0 {
				return i
			}
		case token.EOF:
			return i
		}
	}
	return st.Len() - 1
}

// markInterface marks the interface header and body.
func markInterface(st *stream.Stream, mask []bool, at int) int {
	i := at
	for ; i < st.Len(); i++ {
		mask[i] = true
		if st.Kind(i) == token.LBrace {
			break
		}
		if st.Kind(i) == token.Semicolon || st.Kind(i) == token.EOF {
			return i
		}
	}
	close := st.MatchBracket(i)
	if close < 0 {
		return st.Len() - 1
	}
	for ; i <= close; i++ {
		mask[i] = true
	}
	return close
}

// markConstraint marks an extends constraint up to the enclosing ',', '>',
// '{', or '=' on the same depth.
func markConstraint(st *stream.Stream, mask []bool, at int) int {
	depth := 0
	for i := at; i < st.Len(); i++ {
		switch st.Kind(i) {
		case token.LParen, token.LBracket:
			depth++
		case token.RParen, token.RBracket:
			depth--
			if depth < 0 {
				return i - 1
			}
		case token.Comma, token.Gt, token.LBrace, token.Assign:
			if depth == 0 {
				return i - 1
			}
		case token.Semicolon, token.EOF:
			return i - 1
		}
		mask[i] = true
	}
	return st.Len() - 1
}

// markAnnotation marks a colon type annotation. A depth-0 '{' ends it: after
// a return-type annotation that brace is the function body. Braces nested in
// parens or brackets are type literals and stay inside the annotation.
func markAnnotation(st *stream.Stream, mask []bool, at int) int {
	depth := 0
	for i := at; i < st.Len(); i++ {
		switch st.Kind(i) {
		case token.LParen, token.LBracket:
			depth++
		case token.LBrace:
			if depth == 0 {
				return i - 1
			}
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
			if depth < 0 {
				return i - 1
			}
		case token.Comma, token.Assign, token.FatArrow, token.Semicolon:
			if depth == 0 {
				return i - 1
			}
		case token.EOF:
			return i - 1
		}
		mask[i] = true
	}
	return st.Len() - 1
}
