package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Underscore represents a lone '_' placeholder.
	Underscore

	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwType represents the 'type' keyword.
	KwType // type
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwNew represents the 'new' keyword.
	KwNew // new

	// Number represents a numeric literal.
	Number
	// String represents a single- or double-quoted string literal.
	String
	// Template represents a backtick template literal, including any
	// interpolations, as one opaque token.
	Template
	// Markup represents a balanced markup element scanned in markup mode.
	Markup

	// Plus represents the '+' token.
	Plus // +
	// Minus represents the '-' token.
	Minus // -
	// Star represents the '*' token.
	Star // *
	// Slash represents the '/' token.
	Slash // /
	// Percent represents the '%' token.
	Percent // %
	// Assign represents the '=' token.
	Assign // =
	// PlusAssign represents the '+=' token.
	PlusAssign // +=
	// MinusAssign represents the '-=' token.
	MinusAssign // -=
	// StarAssign represents the '*=' token.
	StarAssign // *=
	// SlashAssign represents the '/=' token.
	SlashAssign // /=
	// PercentAssign represents the '%=' token.
	PercentAssign // %=
	// AmpAssign represents the '&=' token.
	AmpAssign // &=
	// PipeAssign represents the '|=' token.
	PipeAssign // |=
	// CaretAssign represents the '^=' token.
	CaretAssign // ^=
	// EqEq represents the '==' token.
	EqEq // ==
	// EqEqEq represents the '===' token.
	EqEqEq // ===
	// Bang represents the '!' token.
	Bang // !
	// BangEq represents the '!=' token.
	BangEq // !=
	// BangEqEq represents the '!==' token.
	BangEqEq // !==
	// Lt represents the '<' token. Never merged with a following '<'.
	Lt // <
	// LtEq represents the '<=' token.
	LtEq // <=
	// Gt represents the '>' token. Never merged with a following '>', so
	// bracket matching does not fight shift operators.
	Gt // >
	// GtEq represents the '>=' token.
	GtEq // >=
	// Amp represents the '&' token.
	Amp // &
	// AmpAmp represents the '&&' token.
	AmpAmp // &&
	// Pipe represents the '|' token.
	Pipe // |
	// PipePipe represents the '||' token.
	PipePipe // ||
	// Caret represents the '^' token.
	Caret // ^
	// Tilde represents the '~' token.
	Tilde // ~
	// Question represents the '?' token.
	Question // ?
	// QuestionQuestion represents the '??' token.
	QuestionQuestion // ??
	// Colon represents the ':' token.
	Colon // :
	// Semicolon represents the ';' token.
	Semicolon // ;
	// Comma represents the ',' token.
	Comma // ,
	// Dot represents the '.' token.
	Dot // .
	// DotDotDot represents the '...' token.
	DotDotDot // ...
	// FatArrow represents the '=>' token.
	FatArrow // =>
	// LParen represents the '(' token.
	LParen // (
	// RParen represents the ')' token.
	RParen // )
	// LBrace represents the '{' token.
	LBrace // {
	// RBrace represents the '}' token.
	RBrace // }
	// LBracket represents the '[' token.
	LBracket // [
	// RBracket represents the ']' token.
	RBracket // ]
	// At represents the '@' token.
	At // @
	// CustomOp represents a merged custom operator token; Text carries the
	// operator symbol exactly as configured in the operator table.
	CustomOp
)

var kindNames = map[Kind]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Ident:            "Ident",
	Underscore:       "Underscore",
	KwImport:         "import",
	KwExport:         "export",
	KwFrom:           "from",
	KwAs:             "as",
	KwConst:          "const",
	KwLet:            "let",
	KwVar:            "var",
	KwType:           "type",
	KwInterface:      "interface",
	KwExtends:        "extends",
	KwFunction:       "function",
	KwClass:          "class",
	KwReturn:         "return",
	KwNew:            "new",
	Number:           "Number",
	String:           "String",
	Template:         "Template",
	Markup:           "Markup",
	Plus:             "+",
	Minus:            "-",
	Star:             "*",
	Slash:            "/",
	Percent:          "%",
	Assign:           "=",
	PlusAssign:       "+=",
	MinusAssign:      "-=",
	StarAssign:       "*=",
	SlashAssign:      "/=",
	PercentAssign:    "%=",
	AmpAssign:        "&=",
	PipeAssign:       "|=",
	CaretAssign:      "^=",
	EqEq:             "==",
	EqEqEq:           "===",
	Bang:             "!",
	BangEq:           "!=",
	BangEqEq:         "!==",
	Lt:               "<",
	LtEq:             "<=",
	Gt:               ">",
	GtEq:             ">=",
	Amp:              "&",
	AmpAmp:           "&&",
	Pipe:             "|",
	PipePipe:         "||",
	Caret:            "^",
	Tilde:            "~",
	Question:         "?",
	QuestionQuestion: "??",
	Colon:            ":",
	Semicolon:        ";",
	Comma:            ",",
	Dot:              ".",
	DotDotDot:        "...",
	FatArrow:         "=>",
	LParen:           "(",
	RParen:           ")",
	LBrace:           "{",
	RBrace:           "}",
	LBracket:         "[",
	RBracket:         "]",
	At:               "@",
	CustomOp:         "CustomOp",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}
