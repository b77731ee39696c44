package lexer

import (
	"sugarc/internal/token"
)

// scanString сканирует "..." или '...' с escape-последовательностями.
// Перевод строки или EOF без закрывающей кавычки обрезает литерал на месте:
// токен всё равно выдаётся, пропуск правок внутри — единственное следствие.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			return lx.emit(start, token.String)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(start, token.String)
}

// scanTemplate сканирует `...` целиком, включая ${...} интерполяции и
// вложенные шаблоны внутри них. Выдаётся один непрозрачный токен.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening backtick
	lx.scanTemplateBody()
	return lx.emit(start, token.Template)
}

func (lx *Lexer) scanTemplateBody() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '`' {
			lx.cursor.Bump()
			return
		}
		if b == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '$' && b1 == '{' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.scanInterpolation()
			continue
		}
		lx.cursor.Bump()
	}
}

// scanInterpolation съедает сбалансированное тело ${...}, включая строки и
// вложенные шаблоны.
func (lx *Lexer) scanInterpolation() {
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		switch b := lx.cursor.Peek(); b {
		case '{':
			depth++
			lx.cursor.Bump()
		case '}':
			depth--
			lx.cursor.Bump()
		case '"', '\'':
			lx.scanString(b)
		case '`':
			lx.cursor.Bump()
			lx.scanTemplateBody()
		default:
			lx.cursor.Bump()
		}
	}
}
