package token

import (
	"sugarc/internal/source"
)

// Token represents a single source token with its location and trivia.
// Tokens are immutable once produced for a pass.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a string, template, number, or
// markup literal. Extensions never rewrite inside literal tokens.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, Template, Markup:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a host-language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwImport, KwExport, KwFrom, KwAs, KwConst, KwLet, KwVar,
		KwType, KwInterface, KwExtends, KwFunction, KwClass, KwReturn, KwNew:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is punctuation or an operator, i.e. a
// candidate fragment for custom-operator merging.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Assign, PlusAssign, MinusAssign,
		StarAssign, SlashAssign, PercentAssign, AmpAssign, PipeAssign,
		CaretAssign, EqEq, EqEqEq, Bang, BangEq, BangEqEq, Lt, LtEq, Gt, GtEq,
		Amp, AmpAmp, Pipe, PipePipe, Caret, Tilde, Question, QuestionQuestion,
		Colon, Semicolon, Comma, Dot, DotDotDot, FatArrow, LParen, RParen,
		LBrace, RBrace, LBracket, RBracket, At:
		return true
	default:
		return false
	}
}

// IsCustomOperator reports whether the token is a merged custom operator.
func (t Token) IsCustomOperator() bool { return t.Kind == CustomOp }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
