package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexIllegalChar    Code = 1001
	LexIllegalIdent   Code = 1002
	LexIllegalNumber  Code = 1003
	LexIllegalHex     Code = 1004
	LexIllegalOctal   Code = 1005
	LexIllegalFloat   Code = 1006
	LexUnclosedString Code = 1007
	LexUnclosedChar   Code = 1008
	LexUnclosedBlock  Code = 1009
	LexEmptyChar      Code = 1010
	LexMultiChar      Code = 1011
	LexIllegalEscape  Code = 1012
	// LexLeadingZero is reserved for a stricter integer policy; the lexer
	// does not raise it today.
	LexLeadingZero Code = 1013

	IOLoadFileError Code = 4001
)

// LexCodes lists every lexical code in ID order.
var LexCodes = []Code{
	LexIllegalChar, LexIllegalIdent, LexIllegalNumber, LexIllegalHex,
	LexIllegalOctal, LexIllegalFloat, LexUnclosedString, LexUnclosedChar,
	LexUnclosedBlock, LexEmptyChar, LexMultiChar, LexIllegalEscape,
	LexLeadingZero,
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Name returns the upper-case symbolic name (ILLEGAL_CHAR, …).
func (c Code) Name() string {
	switch c {
	case LexIllegalChar:
		return "ILLEGAL_CHAR"
	case LexIllegalIdent:
		return "ILLEGAL_ID"
	case LexIllegalNumber:
		return "ILLEGAL_NUMBER"
	case LexIllegalHex:
		return "ILLEGAL_HEX"
	case LexIllegalOctal:
		return "ILLEGAL_OCT"
	case LexIllegalFloat:
		return "ILLEGAL_FLOAT"
	case LexUnclosedString:
		return "UNCLOSED_STRING"
	case LexUnclosedChar:
		return "UNCLOSED_CHAR"
	case LexUnclosedBlock:
		return "UNCLOSED_COMMENT"
	case LexEmptyChar:
		return "EMPTY_CHAR"
	case LexMultiChar:
		return "MULTI_CHAR"
	case LexIllegalEscape:
		return "ILLEGAL_ESCAPE"
	case LexLeadingZero:
		return "LEADING_ZERO"
	case IOLoadFileError:
		return "IO_LOAD_FILE"
	case UnknownCode:
		return "UNKNOWN"
	}
	return "UNKNOWN"
}

func (c Code) Title() string {
	switch c {
	case LexIllegalChar:
		return "illegal character"
	case LexIllegalIdent:
		return "illegal identifier"
	case LexIllegalNumber:
		return "illegal number"
	case LexIllegalHex:
		return "illegal hexadecimal literal"
	case LexIllegalOctal:
		return "illegal octal literal"
	case LexIllegalFloat:
		return "illegal float literal"
	case LexUnclosedString:
		return "unclosed string literal"
	case LexUnclosedChar:
		return "unclosed character literal"
	case LexUnclosedBlock:
		return "unclosed block comment"
	case LexEmptyChar:
		return "empty character literal"
	case LexMultiChar:
		return "character literal contains more than one character"
	case LexIllegalEscape:
		return "illegal escape sequence"
	case LexLeadingZero:
		return "integer literal has a leading zero"
	case IOLoadFileError:
		return "I/O load file error"
	case UnknownCode:
		return "unknown error"
	}
	return "unknown error"
}

// IsLexical reports whether c is one of the lexical codes.
func (c Code) IsLexical() bool {
	return c >= LexIllegalChar && c <= LexLeadingZero
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
