package token

import (
	"sugarc/internal/source"
)

// TriviaKind classifies non-semantic source runs attached to tokens.
type TriviaKind uint8

const (
	// TriviaSpace is a run of spaces and tabs.
	TriviaSpace TriviaKind = iota
	// TriviaNewline is a run of newlines.
	TriviaNewline
	// TriviaLineComment is a // comment up to the end of line.
	TriviaLineComment
	// TriviaBlockComment is a /* ... */ comment.
	TriviaBlockComment
)

// Trivia is a single non-semantic run preceding a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
