package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"clex/internal/source"
)

// eof is returned by Peek/PeekAt past the end of input.
const eof rune = -1

// Cursor представляет собой позицию в файле вместе с текущими строкой и колонкой.
// Колонка считается в символах (рунах), а не в байтах.
type Cursor struct {
	File *source.File
	Off  uint32
	Line uint32
	Col  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Line:  1,
		Col:   1,
		Limit: limit,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

func (c *Cursor) decodeAt(off uint32) (rune, uint32) {
	if off >= c.Limit {
		return eof, 0
	}
	b := c.File.Content[off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(c.File.Content[off:c.Limit])
	return r, uint32(sz) // #nosec G115 -- sz <= utf8.UTFMax
}

// Peek returns the current character without consuming it, or eof.
func (c *Cursor) Peek() rune {
	r, _ := c.decodeAt(c.Off)
	return r
}

// PeekAt returns the character k positions ahead (PeekAt(0) == Peek()).
func (c *Cursor) PeekAt(k int) rune {
	off := c.Off
	for ; k > 0; k-- {
		_, sz := c.decodeAt(off)
		if sz == 0 {
			return eof
		}
		off += sz
	}
	r, _ := c.decodeAt(off)
	return r
}

// Bump consumes the current character, updates line/column and returns it.
// At EOF it returns eof and does not move.
func (c *Cursor) Bump() rune {
	r, sz := c.decodeAt(c.Off)
	if sz == 0 {
		return eof
	}
	c.Off += sz
	if r == '\n' {
		c.Line++
		c.Col = 1
	} else {
		c.Col++
	}
	return r
}

// Eat consumes the next character if it matches r.
func (c *Cursor) Eat(r rune) bool {
	if c.Peek() == r && r != eof {
		c.Bump()
		return true
	}
	return false
}

// Mark это снимок позиции, чтобы получить Span и начало конструкции
type Mark struct {
	Off  uint32
	Line uint32
	Col  uint32
}

// Pos returns the 1-based line/column of the mark.
func (m Mark) Pos() source.LineCol {
	return source.LineCol{Line: m.Line, Col: m.Col}
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Line: c.Line, Col: c.Col}
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: m.Off,
		End:   c.Off,
	}
}

// TextFrom returns the source text consumed since m.
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.File.Content[m.Off:c.Off])
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off, c.Line, c.Col = m.Off, m.Line, m.Col
}
