package token

import (
	"fmt"

	"clex/internal/source"
)

// Table identifies which symbol table an Attr points into.
type Table uint8

const (
	// TableNone marks tokens without an attribute.
	TableNone Table = iota
	// TableSym is the identifier table.
	TableSym
	// TableConst is the constant table.
	TableConst
)

// Attr is the token attribute: nothing, or an index into one of the tables.
type Attr struct {
	Table Table
	Index int
}

// AttrNone is the attribute of keywords, operators and delimiters.
var AttrNone = Attr{}

// SymAttr references entry idx of the identifier table.
func SymAttr(idx int) Attr { return Attr{Table: TableSym, Index: idx} }

// ConstAttr references entry idx of the constant table.
func ConstAttr(idx int) Attr { return Attr{Table: TableConst, Index: idx} }

// IsNone reports whether the attribute is empty.
func (a Attr) IsNone() bool { return a.Table == TableNone }

// String renders the attribute the way reports print it: "-", "SYM:i", "CONST:i".
func (a Attr) String() string {
	switch a.Table {
	case TableSym:
		return fmt.Sprintf("SYM:%d", a.Index)
	case TableConst:
		return fmt.Sprintf("CONST:%d", a.Index)
	default:
		return "-"
	}
}

// Token is a classified lexeme. Tokens are produced once and never mutated.
type Token struct {
	Kind  Kind
	Text  string
	Value string // декодированное значение CHAR/STRING, для остальных пусто
	Attr  Attr
	Pos   source.LineCol // позиция первого символа
	Span  source.Span
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsLiteral reports whether the token is a constant-table literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// String renders the token the way the text report lists it: (code, 'lexeme', attr).
func (t Token) String() string {
	return fmt.Sprintf("(%d, '%s', %s)", t.Kind.Code(), t.Text, t.Attr)
}
