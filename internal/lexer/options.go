package lexer

import (
	"clex/internal/diag"
)

type Options struct {
	// Reporter получает копию каждой диагностики сразу при обнаружении.
	// Может быть nil - Result.Errors заполняется в любом случае.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, start Mark, text, msg string) {
	d := diag.NewError(code, lx.cursor.SpanFrom(start), start.Pos(), text, msg)
	lx.errs.Add(d)
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(d)
	}
}
