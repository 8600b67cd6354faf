package lexer

import (
	"unicode/utf8"

	"clex/internal/token"
)

// scanOperator - жадность: сначала 3-символьные, затем 2-символьные,
// затем 1-символьные. Более короткая форма не пробуется, если длинная совпала.
func (lx *Lexer) scanOperator() (token.Token, bool) {
	start := lx.cursor.Mark()

	var buf [3]byte
	n := 0
	for ; n < len(buf); n++ {
		r := lx.cursor.PeekAt(n)
		if r == eof || r >= utf8.RuneSelf {
			break
		}
		buf[n] = byte(r)
	}

	if n == 3 {
		if k, ok := token.LookupOperator3(string(buf[:3])); ok {
			return lx.bumpOperator(k, start, 3), true
		}
	}
	if n >= 2 {
		if k, ok := token.LookupOperator2(string(buf[:2])); ok {
			return lx.bumpOperator(k, start, 2), true
		}
	}
	if n >= 1 {
		if k, ok := token.LookupOperator1(buf[0]); ok {
			return lx.bumpOperator(k, start, 1), true
		}
	}
	return token.Token{}, false
}

func (lx *Lexer) bumpOperator(k token.Kind, start Mark, width int) token.Token {
	for range width {
		lx.cursor.Bump()
	}
	return lx.makeToken(k, start, token.AttrNone)
}

func isDelimiter(b byte) bool {
	_, ok := token.LookupDelimiter(b)
	return ok
}

// scanDelimiter matches one of ( ) [ ] { } ; # , : .
func (lx *Lexer) scanDelimiter() (token.Token, bool) {
	start := lx.cursor.Mark()
	r := lx.cursor.Peek()
	if r == eof || r >= utf8.RuneSelf {
		return token.Token{}, false
	}
	k, ok := token.LookupDelimiter(byte(r))
	if !ok {
		return token.Token{}, false
	}
	lx.cursor.Bump()
	return lx.makeToken(k, start, token.AttrNone), true
}
