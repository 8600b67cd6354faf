package lexer

import (
	"unicode/utf8"

	"clex/internal/diag"
	"clex/internal/token"
)

// scanIdentOrKeyword сканирует [A-Za-z_][A-Za-z0-9_]* (плюс Unicode-буквы).
// Ключевые слова регистронезависимые; Token.Text - ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.bumpIdentRun()

	text := lx.cursor.TextFrom(start)
	if k, ok := token.LookupKeyword(text); ok {
		return lx.makeToken(k, start, token.AttrNone), true
	}

	idx := lx.idents.Intern(text)
	return lx.makeToken(token.Ident, start, token.SymAttr(idx)), true
}

// digitLedIdent reports whether the digits at the cursor run straight into a
// letter or '_' that cannot continue a number: not the 'x'/'X' of a "0x"
// prefix and not an exponent 'e'/'E'. An 'e' counts as an exponent unless a
// letter or '_' follows it, so "1e5", "1e+" and "1e" stay numbers while
// "1ebc" is one illegal identifier like "1abc".
func (lx *Lexer) digitLedIdent() bool {
	content := lx.file.Content[lx.cursor.Off:lx.cursor.Limit]
	n := 0
	for n < len(content) && content[n] >= '0' && content[n] <= '9' {
		n++
	}
	if n == len(content) {
		return false
	}

	r, _ := utf8.DecodeRune(content[n:])
	if !isIdentStartRune(r) {
		return false
	}
	switch r {
	case 'e', 'E':
		next, _ := utf8.DecodeRune(content[n+1:])
		return isIdentStartRune(next)
	case 'x', 'X':
		return !(n == 1 && content[0] == '0')
	}
	return true
}

// scanIllegalIdent consumes a digit-led identifier run and reports it.
// No token is produced.
func (lx *Lexer) scanIllegalIdent() {
	start := lx.cursor.Mark()
	lx.bumpIdentRun()
	lx.errLex(diag.LexIllegalIdent, start, lx.cursor.TextFrom(start), "identifiers cannot start with a digit")
}
