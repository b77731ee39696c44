package lexer

import (
	"sugarc/internal/token"
)

// markupStartAllowed решает, может ли '<' в markup-файле начинать элемент.
// Элемент возможен только в позиции выражения: после открывающей скобки,
// запятой, присваивания, стрелки, return или в начале файла. После
// идентификатора или литерала '<' — сравнение либо список типовых аргументов.
func (lx *Lexer) markupStartAllowed() bool {
	_, b1, ok := lx.cursor.Peek2()
	if !ok {
		return false
	}
	if !isIdentStartByte(b1) && b1 != '>' {
		return false
	}
	switch lx.last {
	case token.Invalid, token.LParen, token.LBracket, token.LBrace, token.Comma,
		token.Assign, token.FatArrow, token.KwReturn, token.Colon, token.Question,
		token.AmpAmp, token.PipePipe, token.QuestionQuestion:
		return true
	default:
		return false
	}
}

// scanMarkup сканирует сбалансированный markup-элемент целиком в один
// непрозрачный токен: теги, текст, {выражения}, вложенные элементы.
// Несбалансированный элемент обрезается на EOF.
func (lx *Lexer) scanMarkup() token.Token {
	start := lx.cursor.Mark()
	depth := 0
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case '<':
			if lx.cursor.PeekAt(1) == '/' {
				// закрывающий тег
				lx.skipTag()
				depth--
			} else {
				selfClosed := lx.skipTag()
				if !selfClosed {
					depth++
				}
			}
			if depth <= 0 {
				return lx.emit(start, token.Markup)
			}
		case '{':
			lx.skipMarkupExpr()
		default:
			lx.cursor.Bump()
		}
	}
	return lx.emit(start, token.Markup)
}

// skipTag съедает '<...>' одного тега, пропуская строковые атрибуты и
// {выражения}; возвращает true для самозакрывающегося тега '/>'.
func (lx *Lexer) skipTag() bool {
	lx.cursor.Bump() // '<'
	selfClosed := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case '>':
			lx.cursor.Bump()
			return selfClosed
		case '/':
			lx.cursor.Bump()
			if lx.cursor.Peek() == '>' {
				lx.cursor.Bump()
				return true
			}
		case '"', '\'':
			lx.scanString(b)
		case '{':
			lx.skipMarkupExpr()
		default:
			lx.cursor.Bump()
		}
	}
	return selfClosed
}

// skipMarkupExpr съедает сбалансированный блок {...} внутри markup.
func (lx *Lexer) skipMarkupExpr() {
	depth := 0
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); b {
		case '{':
			depth++
			lx.cursor.Bump()
		case '}':
			depth--
			lx.cursor.Bump()
			if depth <= 0 {
				return
			}
		case '"', '\'':
			lx.scanString(b)
		case '`':
			lx.scanTemplate()
		default:
			lx.cursor.Bump()
		}
	}
}
