// Package stream provides an indexed view over a token list with the bracket
// matching and range utilities the extensions share.
package stream

import (
	"sugarc/internal/source"
	"sugarc/internal/token"
)

// Stream is a read-only indexed token sequence over one file.
type Stream struct {
	file   *source.File
	tokens []token.Token
}

// New wraps a token list. The list is expected to end with an EOF token.
func New(file *source.File, tokens []token.Token) *Stream {
	return &Stream{file: file, tokens: tokens}
}

// File returns the underlying source file.
func (s *Stream) File() *source.File { return s.file }

// Len returns the number of tokens, EOF included.
func (s *Stream) Len() int { return len(s.tokens) }

// At returns the token at index i, or the zero token out of range.
func (s *Stream) At(i int) token.Token {
	if i < 0 || i >= len(s.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return s.tokens[i]
}

// Kind returns the kind of the token at index i.
func (s *Stream) Kind(i int) token.Kind {
	return s.At(i).Kind
}

// Tokens returns the underlying token slice. Callers must not mutate it.
func (s *Stream) Tokens() []token.Token { return s.tokens }

// Text returns the source text covered by the span.
func (s *Stream) Text(span source.Span) string {
	return s.file.Text(span)
}

// SpanBetween covers tokens [i, j] inclusive.
func (s *Stream) SpanBetween(i, j int) source.Span {
	return source.Span{
		File:  s.file.ID,
		Start: s.At(i).Span.Start,
		End:   s.At(j).Span.End,
	}
}

// TextBetween returns the raw source text of tokens [i, j] inclusive,
// whitespace and comments between them preserved byte-for-byte.
func (s *Stream) TextBetween(i, j int) string {
	return s.Text(s.SpanBetween(i, j))
}

// MatchBracket returns the index of the token closing the bracket opened at
// index open, or -1 when the stream ends before balance is restored.
// Supported opener kinds: LParen, LBracket, LBrace, and Lt.
//
// Angle matching counts Lt/Gt depth only and additionally aborts at a
// semicolon or brace: a '<' that is really a comparison never closes, and
// running past a statement boundary would silently swallow the rest of the
// file.
func (s *Stream) MatchBracket(open int) int {
	var openKind, closeKind token.Kind
	switch s.Kind(open) {
	case token.LParen:
		openKind, closeKind = token.LParen, token.RParen
	case token.LBracket:
		openKind, closeKind = token.LBracket, token.RBracket
	case token.LBrace:
		openKind, closeKind = token.LBrace, token.RBrace
	case token.Lt:
		return s.matchAngle(open)
	default:
		return -1
	}

	depth := 0
	for i := open; i < len(s.tokens); i++ {
		switch s.tokens[i].Kind {
		case openKind:
			depth++
		case closeKind:
			depth--
			if depth == 0 {
				return i
			}
		case token.EOF:
			return -1
		}
	}
	return -1
}

func (s *Stream) matchAngle(open int) int {
	depth := 0
	for i := open; i < len(s.tokens); i++ {
		switch s.tokens[i].Kind {
		case token.Lt:
			depth++
		case token.Gt:
			depth--
			if depth == 0 {
				return i
			}
		case token.Semicolon, token.LBrace, token.RBrace, token.EOF:
			return -1
		}
	}
	return -1
}

// SplitTopLevel returns the token index ranges of the comma-separated items
// between tokens (open, close) exclusive, splitting only at bracket-nesting
// depth zero. Empty input yields no items.
func (s *Stream) SplitTopLevel(open, close int) [][2]int {
	var items [][2]int
	if close <= open+1 {
		return items
	}
	itemStart := open + 1
	depth := 0
	for i := open + 1; i < close; i++ {
		switch s.tokens[i].Kind {
		case token.LParen, token.LBracket, token.LBrace, token.Lt:
			depth++
		case token.RParen, token.RBracket, token.RBrace, token.Gt:
			depth--
		case token.Comma:
			if depth == 0 {
				items = append(items, [2]int{itemStart, i - 1})
				itemStart = i + 1
			}
		}
	}
	items = append(items, [2]int{itemStart, close - 1})
	return items
}
