package diag

import (
	"fmt"

	"clex/internal/source"
)

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string // уточнение, может быть пустым
	Primary  source.Span
	Pos      source.LineCol // начало конструкции, а не место обнаружения
	Text     string         // исходный текст конструкции
}

func New(sev Severity, code Code, primary source.Span, pos source.LineCol, text, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Pos:      pos,
		Text:     text,
	}
}

func NewError(code Code, primary source.Span, pos source.LineCol, text, msg string) Diagnostic {
	return New(SevError, code, primary, pos, text, msg)
}

// Short renders the diagnostic on one line:
//
//	[3:7] illegal octal literal: '089' (octal literal cannot contain 8 or 9)
func (d Diagnostic) Short() string {
	s := fmt.Sprintf("[%d:%d] %s: '%s'", d.Pos.Line, d.Pos.Col, d.Code.Title(), d.Text)
	if d.Message != "" {
		s += " (" + d.Message + ")"
	}
	return s
}
