package lexer

import (
	"clex/internal/diag"
	"clex/internal/token"
)

// scanChar сканирует 'a', '\n', '\x41', '\101'.
// Token.Text - исходная форма с кавычками, Token.Value - декодированный символ.
func (lx *Lexer) scanChar() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '

	switch lx.cursor.Peek() {
	case eof, '\n':
		lx.errLex(diag.LexUnclosedChar, start, lx.cursor.TextFrom(start), "")
		return token.Token{}, false
	case '\'':
		lx.cursor.Bump()
		lx.errLex(diag.LexEmptyChar, start, lx.cursor.TextFrom(start), "")
		return token.Token{}, false
	}

	var value rune
	if lx.cursor.Peek() == '\\' {
		bs := lx.cursor.Mark()
		lx.cursor.Bump()
		if r := lx.cursor.Peek(); r == eof || r == '\n' {
			lx.errLex(diag.LexUnclosedChar, start, lx.cursor.TextFrom(start), "")
			return token.Token{}, false
		}
		v, status := lx.scanEscape(start, bs)
		if status == escNoHexDigits {
			lx.errLex(diag.LexIllegalEscape, start, lx.cursor.TextFrom(start), "missing hex digits")
			// литерал брошен: пропускаем до ' или конца строки
			for r := lx.cursor.Peek(); r != eof && r != '\'' && r != '\n'; r = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
			lx.cursor.Eat('\'')
			return token.Token{}, false
		}
		value = v
	} else {
		value = lx.cursor.Bump()
	}

	extra := false
	for r := lx.cursor.Peek(); r != eof && r != '\'' && r != '\n'; r = lx.cursor.Peek() {
		lx.cursor.Bump()
		extra = true
	}

	if !lx.cursor.Eat('\'') {
		lx.errLex(diag.LexUnclosedChar, start, lx.cursor.TextFrom(start), "")
		return token.Token{}, false
	}
	if extra {
		lx.errLex(diag.LexMultiChar, start, lx.cursor.TextFrom(start), "")
		return token.Token{}, false
	}

	tok := lx.literal(token.CharLit, start)
	tok.Value = string(value)
	return tok, true
}
