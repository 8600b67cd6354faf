package lexer

import (
	"clex/internal/diag"
)

var simpleEscapes = map[rune]rune{
	'n':  '\n',
	'0':  0,
	't':  '\t',
	'r':  '\r',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'v':  '\v',
}

type escapeStatus uint8

const (
	escOK escapeStatus = iota
	// escIllegal: reported, the escaped character stands for itself.
	escIllegal
	// escNoHexDigits: "\x" without digits; reported, nothing decoded.
	escNoHexDigits
)

// scanEscape decodes the escape whose backslash starts at mark bs. The cursor
// sits on the character after the backslash, which must exist and not be a
// newline. Illegal escapes are reported at lit, the start of the enclosing
// literal, with the raw escape as text. A "\x" without digits is left to the
// caller: a char literal reports it differently from a string.
//
//	\n \t \r \0 \\ \' \" \a \b \f \v   - таблица, проверяется первой
//	\xH, \xHH                          - hex, 1-2 цифры
//	\1 … \777                          - octal, цифра 1-7 плюс до двух [0-7]
func (lx *Lexer) scanEscape(lit, bs Mark) (rune, escapeStatus) {
	c := lx.cursor.Bump()

	if v, ok := simpleEscapes[c]; ok {
		return v, escOK
	}

	switch {
	case c == 'x':
		var v rune
		n := 0
		for n < 2 && isHex(lx.cursor.Peek()) {
			v = v*16 + hexVal(lx.cursor.Bump())
			n++
		}
		if n == 0 {
			return 0, escNoHexDigits
		}
		return v, escOK

	case isOct(c):
		v := c - '0'
		for n := 0; n < 2 && isOct(lx.cursor.Peek()); n++ {
			v = v*8 + (lx.cursor.Bump() - '0')
		}
		return v, escOK
	}

	lx.errLex(diag.LexIllegalEscape, lit, lx.cursor.TextFrom(bs), "")
	return c, escIllegal
}
