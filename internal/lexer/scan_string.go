package lexer

import (
	"strings"

	"clex/internal/diag"
	"clex/internal/token"
)

// scanString сканирует "..." в пределах одной строки.
// Token.Text - сырой исходный текст с кавычками и escape-последовательностями,
// Token.Value - декодированное содержимое. Незакрытая строка - ошибка без токена.
func (lx *Lexer) scanString() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var decoded strings.Builder
	for r := lx.cursor.Peek(); r != eof && r != '"' && r != '\n'; r = lx.cursor.Peek() {
		if r != '\\' {
			decoded.WriteRune(lx.cursor.Bump())
			continue
		}

		bs := lx.cursor.Mark()
		lx.cursor.Bump()
		if next := lx.cursor.Peek(); next == eof || next == '\n' {
			break
		}
		v, status := lx.scanEscape(start, bs)
		if status == escNoHexDigits {
			lx.errLex(diag.LexIllegalEscape, start, lx.cursor.TextFrom(bs), "missing hex digits")
			continue
		}
		decoded.WriteRune(v)
	}

	if !lx.cursor.Eat('"') {
		lx.errLex(diag.LexUnclosedString, start, lx.cursor.TextFrom(start), "")
		return token.Token{}, false
	}

	tok := lx.literal(token.StringLit, start)
	tok.Value = decoded.String()
	return tok, true
}
