package lexer

import (
	"sugarc/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
// '<' и '>' никогда не склеиваются между собой: сопоставление скобок в
// токен-стриме не должно бороться со сдвигами.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	switch {
	case lx.try3('=', '=', '='):
		return lx.emit(start, token.EqEqEq)
	case lx.try3('!', '=', '='):
		return lx.emit(start, token.BangEqEq)
	case lx.try3('.', '.', '.'):
		return lx.emit(start, token.DotDotDot)
	case lx.try2('=', '>'):
		return lx.emit(start, token.FatArrow)
	case lx.try2('=', '='):
		return lx.emit(start, token.EqEq)
	case lx.try2('!', '='):
		return lx.emit(start, token.BangEq)
	case lx.try2('<', '='):
		return lx.emit(start, token.LtEq)
	case lx.try2('>', '='):
		return lx.emit(start, token.GtEq)
	case lx.try2('&', '&'):
		return lx.emit(start, token.AmpAmp)
	case lx.try2('|', '|'):
		return lx.emit(start, token.PipePipe)
	case lx.try2('?', '?'):
		return lx.emit(start, token.QuestionQuestion)
	case lx.try2('+', '='):
		return lx.emit(start, token.PlusAssign)
	case lx.try2('-', '='):
		return lx.emit(start, token.MinusAssign)
	case lx.try2('*', '='):
		return lx.emit(start, token.StarAssign)
	case lx.try2('/', '='):
		return lx.emit(start, token.SlashAssign)
	case lx.try2('%', '='):
		return lx.emit(start, token.PercentAssign)
	case lx.try2('&', '='):
		return lx.emit(start, token.AmpAssign)
	case lx.try2('|', '='):
		return lx.emit(start, token.PipeAssign)
	case lx.try2('^', '='):
		return lx.emit(start, token.CaretAssign)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return lx.emit(start, token.Plus)
	case '-':
		return lx.emit(start, token.Minus)
	case '*':
		return lx.emit(start, token.Star)
	case '/':
		return lx.emit(start, token.Slash)
	case '%':
		return lx.emit(start, token.Percent)
	case '=':
		return lx.emit(start, token.Assign)
	case '!':
		return lx.emit(start, token.Bang)
	case '<':
		return lx.emit(start, token.Lt)
	case '>':
		return lx.emit(start, token.Gt)
	case '&':
		return lx.emit(start, token.Amp)
	case '|':
		return lx.emit(start, token.Pipe)
	case '^':
		return lx.emit(start, token.Caret)
	case '~':
		return lx.emit(start, token.Tilde)
	case '?':
		return lx.emit(start, token.Question)
	case ':':
		return lx.emit(start, token.Colon)
	case ';':
		return lx.emit(start, token.Semicolon)
	case ',':
		return lx.emit(start, token.Comma)
	case '.':
		return lx.emit(start, token.Dot)
	case '(':
		return lx.emit(start, token.LParen)
	case ')':
		return lx.emit(start, token.RParen)
	case '{':
		return lx.emit(start, token.LBrace)
	case '}':
		return lx.emit(start, token.RBrace)
	case '[':
		return lx.emit(start, token.LBracket)
	case ']':
		return lx.emit(start, token.RBracket)
	case '@':
		return lx.emit(start, token.At)
	default:
		// неизвестный символ — Invalid токен, без диагностики
		return lx.emit(start, token.Invalid)
	}
}

func (lx *Lexer) try2(b0, b1 byte) bool {
	if c0, c1, ok := lx.cursor.Peek2(); ok && c0 == b0 && c1 == b1 {
		lx.cursor.Bump()
		lx.cursor.Bump()
		return true
	}
	return false
}

func (lx *Lexer) try3(b0, b1, b2 byte) bool {
	if lx.cursor.Peek() == b0 && lx.cursor.PeekAt(1) == b1 && lx.cursor.PeekAt(2) == b2 {
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cursor.Bump()
		return true
	}
	return false
}
