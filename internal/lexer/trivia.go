package lexer

import (
	"clex/internal/diag"
)

// skipTrivia пропускает пробелы и комментарии, пока они идут подряд.
func (lx *Lexer) skipTrivia() {
	for {
		lx.skipWhitespace()
		if !lx.skipComment() {
			return
		}
	}
}

// skipWhitespace consumes spaces, tabs, CR and LF.
func (lx *Lexer) skipWhitespace() {
	for isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// skipComment consumes one "//" or "/* */" comment and reports whether it did.
// "//" stops before the newline. An unterminated "/*" swallows the rest of
// the input and is reported at its opening position.
func (lx *Lexer) skipComment() bool {
	if lx.cursor.Peek() != '/' {
		return false
	}

	switch lx.cursor.PeekAt(1) {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return true

	case '*':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				return true
			}
			lx.cursor.Bump()
		}
		lx.errLex(diag.LexUnclosedBlock, start, "/*", "")
		return true
	}
	return false
}
