// Package lexer is the base tokenizer of the rewrite engine: a byte-cursor
// scanner producing position-annotated tokens with leading trivia, plus the
// merge pass that folds adjacent punctuation into custom operator tokens.
//
// The lexer never fails: unterminated strings, templates, comments, and
// markup elements are truncated at EOF and scanning continues. Diagnostics
// belong to the downstream semantic phase, not here.
package lexer

import (
	"sugarc/internal/source"
	"sugarc/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	hold   []token.Trivia // накопленные leading trivia
	last   token.Kind     // последний значимый токен, для markup-эвристики
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		last:   token.Invalid,
	}
}

// Next возвращает следующий значимый токен с уже собранным Leading.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '<' && lx.file.Kind == source.KindMarkup && lx.markupStartAllowed():
		tok = lx.scanMarkup()

	case ch == '_':
		tok = lx.scanIdentOrKeyword()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString(ch)

	case ch == '`':
		tok = lx.scanTemplate()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	lx.last = tok.Kind
	return tok
}

// Tokenize collects all tokens of the file, EOF included.
func Tokenize(file *source.File) []token.Token {
	lx := New(file)
	tokens := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(start Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
