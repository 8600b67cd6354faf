package lexer

import (
	"unicode"
	"unicode/utf8"
)

// ===== Классификаторы =====

// Буквы - по unicode.IsLetter, цифры в числах - только ASCII 0-9.
func isIdentStartRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= utf8.RuneSelf && unicode.IsLetter(r))
}

func isIdentContinueRune(r rune) bool {
	return isIdentStartRune(r) || isDec(r) || (r >= utf8.RuneSelf && unicode.IsDigit(r))
}

func isLetter(r rune) bool {
	return r != '_' && isIdentStartRune(r)
}

func isDec(r rune) bool { return r >= '0' && r <= '9' }

func isOct(r rune) bool { return r >= '0' && r <= '7' }

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'f') ||
		(r >= 'A' && r <= 'F')
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func hexVal(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r - '0'
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10
	default:
		return r - 'A' + 10
	}
}

// Проверка для кейса ".5": текущая точка, дальше цифра?
func (lx *Lexer) isNumberAfterDot() bool {
	return lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1))
}

// bumpIdentRun consumes letters, digits and underscores.
func (lx *Lexer) bumpIdentRun() {
	for isIdentContinueRune(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// bumpDigits consumes ASCII digits and returns how many were consumed.
func (lx *Lexer) bumpDigits(pred func(rune) bool) int {
	n := 0
	for pred(lx.cursor.Peek()) {
		lx.cursor.Bump()
		n++
	}
	return n
}
