package lexer

import (
	"clex/internal/diag"
	"clex/internal/token"
)

// Поддержка: 0x1F (HEX), 017 (OCT), 42 (INT), 3.14 / .5 / 1e-3 / 1.5E+2 (FLOAT).
//
// Порядок разбора:
//  1. префикс выбирает систему счисления (0x → hex, 0<digit> → octal, иначе decimal);
//  2. octal с ".<digit>" продолжается как дробное десятичное (07.5 → FLOAT);
//  3. буква или '_' сразу после структурно полного литерала - ILLEGAL_NUMBER.
//
// Неверные формы - репорт, токен не создаётся.
func (lx *Lexer) scanNumber() (token.Token, bool) {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		switch next := lx.cursor.PeekAt(1); {
		case next == 'x' || next == 'X':
			return lx.scanHex(start)
		case isDec(next):
			return lx.scanOctal(start)
		}
	}

	intDigits := lx.bumpDigits(isDec)
	return lx.scanDecimalPart(start, intDigits)
}

func (lx *Lexer) scanHex(start Mark) (token.Token, bool) {
	lx.cursor.Bump() // '0'
	lx.cursor.Bump() // 'x' / 'X'

	if lx.bumpDigits(isHex) == 0 {
		if isLetter(lx.cursor.Peek()) {
			lx.bumpIdentRun()
			lx.errLex(diag.LexIllegalHex, start, lx.cursor.TextFrom(start), "contains illegal characters")
		} else {
			lx.errLex(diag.LexIllegalHex, start, lx.cursor.TextFrom(start), "missing hex digits")
		}
		return token.Token{}, false
	}

	if lx.rejectLetterSuffix(start) {
		return token.Token{}, false
	}
	return lx.literal(token.HexLit, start), true
}

func (lx *Lexer) scanOctal(start Mark) (token.Token, bool) {
	lx.cursor.Bump() // ведущий '0'

	digits := 1
	for isDec(lx.cursor.Peek()) {
		if !isOct(lx.cursor.Peek()) {
			// 8 или 9: дочитываем весь цифровой хвост и репортим целиком
			lx.bumpDigits(isDec)
			lx.errLex(diag.LexIllegalOctal, start, lx.cursor.TextFrom(start), "octal literal cannot contain 8 or 9")
			return token.Token{}, false
		}
		lx.cursor.Bump()
		digits++
	}

	if isIdentStartRune(lx.cursor.Peek()) {
		lx.bumpIdentRun()
		lx.errLex(diag.LexIllegalNumber, start, lx.cursor.TextFrom(start), "")
		return token.Token{}, false
	}

	// 07.5 - это FLOAT, а не ошибка восьмеричного
	if lx.isNumberAfterDot() {
		return lx.scanDecimalPart(start, digits)
	}

	return lx.literal(token.OctLit, start), true
}

// scanDecimalPart продолжает число после целой части (возможно пустой, для ".5"):
// дробь, экспонента, проверка хвоста из букв.
func (lx *Lexer) scanDecimalPart(start Mark, intDigits int) (token.Token, bool) {
	isFloat := false

	if lx.cursor.Peek() == '.' {
		if lx.cursor.PeekAt(1) == '.' {
			// ".." - не десятичная точка, оставляем вызывающему
			if intDigits == 0 {
				return token.Token{}, false
			}
			return lx.literal(token.IntLit, start), true
		}

		isFloat = true
		lx.cursor.Bump() // '.'
		fracDigits := lx.bumpDigits(isDec)
		if fracDigits == 0 && intDigits == 0 {
			lx.errLex(diag.LexIllegalFloat, start, lx.cursor.TextFrom(start), "missing digits")
			return token.Token{}, false
		}

		if lx.cursor.Peek() == '.' {
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '.' {
				lx.cursor.Bump()
			}
			lx.errLex(diag.LexIllegalFloat, start, lx.cursor.TextFrom(start), "multiple decimal points")
			return token.Token{}, false
		}
	}

	if r := lx.cursor.Peek(); r == 'e' || r == 'E' {
		isFloat = true
		lx.cursor.Bump()
		if r := lx.cursor.Peek(); r == '+' || r == '-' {
			lx.cursor.Bump()
		}
		if lx.bumpDigits(isDec) == 0 {
			lx.errLex(diag.LexIllegalFloat, start, lx.cursor.TextFrom(start), "missing exponent digits")
			return token.Token{}, false
		}
	}

	if lx.rejectLetterSuffix(start) {
		return token.Token{}, false
	}

	if lx.cursor.Off == start.Off {
		return token.Token{}, false
	}
	if isFloat {
		return lx.literal(token.FloatLit, start), true
	}
	return lx.literal(token.IntLit, start), true
}

// rejectLetterSuffix consumes a letter/digit/underscore run glued to a finished
// literal ("12abc", "1.5f", "0x1Fg") and reports it as ILLEGAL_NUMBER.
func (lx *Lexer) rejectLetterSuffix(start Mark) bool {
	if !isIdentStartRune(lx.cursor.Peek()) {
		return false
	}
	lx.bumpIdentRun()
	lx.errLex(diag.LexIllegalNumber, start, lx.cursor.TextFrom(start), "letter directly following a number")
	return true
}
