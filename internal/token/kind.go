package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero Kind; the lexer never emits it.
	Invalid Kind = iota

	KwIf       // if
	KwThen     // then
	KwElse     // else
	KwBegin    // begin
	KwEnd      // end
	KwInt      // int
	KwFloat    // float
	KwChar     // char
	KwWhile    // while
	KwDo       // do
	KwReturn   // return
	KwFor      // for
	KwVoid     // void
	KwBreak    // break
	KwContinue // continue
	KwSwitch   // switch
	KwCase     // case
	KwDefault  // default
	KwStruct   // struct
	KwConst    // const
	KwTypedef  // typedef

	// Ident represents an identifier token.
	Ident
	// IntLit represents a decimal integer literal.
	IntLit
	// FloatLit represents a literal with a fraction and/or an exponent.
	FloatLit
	// CharLit represents a character literal.
	CharLit
	// StringLit represents a string literal.
	StringLit
	// HexLit represents a 0x-prefixed integer literal.
	HexLit
	// OctLit represents a 0-prefixed octal integer literal.
	OctLit

	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	Assign        // =
	PlusPlus      // ++
	MinusMinus    // --
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=

	Amp         // &
	Pipe        // |
	Caret       // ^
	Tilde       // ~
	Shl         // <<
	Shr         // >>
	AmpAssign   // &=
	PipeAssign  // |=
	CaretAssign // ^=
	ShlAssign   // <<=
	ShrAssign   // >>=

	AndAnd // &&
	OrOr   // ||
	Bang   // !

	Lt     // <
	Gt     // >
	LtEq   // <=
	GtEq   // >=
	LtGt   // <>
	EqEq   // ==
	BangEq // !=

	Arrow // ->

	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Semicolon // ;
	Hash      // #
	Comma     // ,
	Colon     // :
	Dot       // .

	kindCount
)

type kindInfo struct {
	name string
	code uint16
}

var kinds = [kindCount]kindInfo{
	Invalid: {"invalid", 0},

	KwIf: {"if", 1}, KwThen: {"then", 2}, KwElse: {"else", 3}, KwBegin: {"begin", 4},
	KwEnd: {"end", 5}, KwInt: {"int", 6}, KwFloat: {"float", 7}, KwChar: {"char", 8},
	KwWhile: {"while", 9}, KwDo: {"do", 10}, KwReturn: {"return", 11}, KwFor: {"for", 12},
	KwVoid: {"void", 13}, KwBreak: {"break", 14}, KwContinue: {"continue", 15},
	KwSwitch: {"switch", 16}, KwCase: {"case", 17}, KwDefault: {"default", 18},
	KwStruct: {"struct", 19}, KwConst: {"const", 20}, KwTypedef: {"typedef", 21},

	Ident: {"ID", 50}, IntLit: {"INT", 51}, FloatLit: {"FLOAT", 52}, CharLit: {"CHAR", 53},
	StringLit: {"STRING", 54}, HexLit: {"HEX", 55}, OctLit: {"OCT", 56},

	Plus: {"+", 60}, Minus: {"-", 61}, Star: {"*", 62}, Slash: {"/", 63}, Percent: {"%", 64},
	Assign: {"=", 65}, PlusPlus: {"++", 66}, MinusMinus: {"--", 67}, PlusAssign: {"+=", 68},
	MinusAssign: {"-=", 69}, StarAssign: {"*=", 70}, SlashAssign: {"/=", 71}, PercentAssign: {"%=", 72},

	Amp: {"&", 80}, Pipe: {"|", 81}, Caret: {"^", 82}, Tilde: {"~", 83}, Shl: {"<<", 84},
	Shr: {">>", 85}, AmpAssign: {"&=", 86}, PipeAssign: {"|=", 87}, CaretAssign: {"^=", 88},
	ShlAssign: {"<<=", 89}, ShrAssign: {">>=", 90},

	AndAnd: {"&&", 100}, OrOr: {"||", 101}, Bang: {"!", 102},

	Lt: {"<", 110}, Gt: {">", 111}, LtEq: {"<=", 112}, GtEq: {">=", 113}, LtGt: {"<>", 114},
	EqEq: {"==", 115}, BangEq: {"!=", 116},

	Arrow: {"->", 120},

	LParen: {"(", 130}, RParen: {")", 131}, LBracket: {"[", 132}, RBracket: {"]", 133},
	LBrace: {"{", 134}, RBrace: {"}", 135}, Semicolon: {";", 136}, Hash: {"#", 137},
	Comma: {",", 138}, Colon: {":", 139}, Dot: {".", 140},
}

// String returns the keyword/operator spelling, or the class name (ID, INT, ...)
// for identifiers and literals.
func (k Kind) String() string {
	if k < kindCount {
		return kinds[k].name
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Code returns the numeric token code used in reports. Invalid and out-of-range
// kinds return 0.
func (k Kind) Code() uint16 {
	if k < kindCount {
		return kinds[k].code
	}
	return 0
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k >= KwIf && k <= KwTypedef }

// IsLiteral reports whether k is a constant-table literal class.
func (k Kind) IsLiteral() bool { return k >= IntLit && k <= OctLit }

// IsOperator reports whether k is an operator.
func (k Kind) IsOperator() bool { return k >= Plus && k <= Arrow }

// IsDelimiter reports whether k is a delimiter.
func (k Kind) IsDelimiter() bool { return k >= LParen && k <= Dot }

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KwIf; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
