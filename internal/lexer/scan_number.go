package lexer

import (
	"sugarc/internal/token"
)

// scanNumber сканирует числовой литерал: десятичный (с точкой/экспонентой),
// 0x/0o/0b, разделители '_'. Валидация значения — не наша забота, только
// границы токена.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		if _, b1, ok := lx.cursor.Peek2(); ok {
			switch b1 {
			case 'x', 'X':
				lx.cursor.Bump()
				lx.cursor.Bump()
				for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
					lx.cursor.Bump()
				}
				return lx.emit(start, token.Number)
			case 'o', 'O', 'b', 'B':
				lx.cursor.Bump()
				lx.cursor.Bump()
				for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
					lx.cursor.Bump()
				}
				return lx.emit(start, token.Number)
			}
		}
	}

	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	// дробная часть
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	// экспонента
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		} else {
			lx.cursor.Reset(mark)
		}
	}

	// bigint suffix
	lx.cursor.Eat('n')

	return lx.emit(start, token.Number)
}
