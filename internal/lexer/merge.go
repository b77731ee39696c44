package lexer

import (
	"sugarc/internal/optable"
	"sugarc/internal/source"
	"sugarc/internal/token"
)

// Merge folds runs of adjacent punctuation tokens into custom operator tokens
// wherever their concatenated text matches a definition in the table.
//
// A run merges only when every following fragment touches the previous one
// (no whitespace, no comment trivia in between). The longest matching symbol
// wins. String, template, and comment interiors are never candidates: the
// base tokenizer already scans those regions into single tokens or trivia.
func Merge(tokens []token.Token, table *optable.Table) []token.Token {
	if table == nil || table.Len() == 0 {
		return tokens
	}
	maxLen := table.MaxSymbolLen()

	out := make([]token.Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !tok.IsPunct() {
			out = append(out, tok)
			continue
		}

		// наращиваем конкатенацию, запоминая самое длинное совпадение
		concat := tok.Text
		bestEnd := -1
		var bestDef optable.Def
		if d, ok := table.Lookup(concat); ok {
			bestEnd = i
			bestDef = d
		}
		j := i
		for len(concat) < maxLen && j+1 < len(tokens) {
			next := tokens[j+1]
			if !next.IsPunct() || len(next.Leading) != 0 ||
				next.Span.Start != tokens[j].Span.End {
				break
			}
			concat += next.Text
			j++
			if d, ok := table.Lookup(concat); ok {
				bestEnd = j
				bestDef = d
			}
		}

		if bestEnd < i {
			out = append(out, tok)
			continue
		}

		out = append(out, token.Token{
			Kind: token.CustomOp,
			Span: source.Span{
				File:  tok.Span.File,
				Start: tok.Span.Start,
				End:   tokens[bestEnd].Span.End,
			},
			Text:    bestDef.Symbol,
			Leading: tok.Leading,
		})
		i = bestEnd
	}
	return out
}

// TokenizeMerged tokenizes the file and applies operator merging in one call.
func TokenizeMerged(file *source.File, table *optable.Table) []token.Token {
	return Merge(Tokenize(file), table)
}
