package diagfmt

import (
	"encoding/json"
	"io"

	"clex/internal/diag"
	"clex/internal/lexer"
	"clex/internal/source"
)

// TokenJSON is one token in machine-readable output.
type TokenJSON struct {
	Code      uint16 `json:"code" msgpack:"code"`
	Kind      string `json:"kind" msgpack:"kind"`
	Lexeme    string `json:"lexeme" msgpack:"lexeme"`
	Value     string `json:"value,omitempty" msgpack:"value,omitempty"`
	Attr      string `json:"attr" msgpack:"attr"`
	Line      uint32 `json:"line" msgpack:"line"`
	Col       uint32 `json:"col" msgpack:"col"`
	StartByte uint32 `json:"start_byte,omitempty" msgpack:"start_byte,omitempty"`
	EndByte   uint32 `json:"end_byte,omitempty" msgpack:"end_byte,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity  string `json:"severity" msgpack:"severity"`
	Code      string `json:"code" msgpack:"code"`
	Name      string `json:"name" msgpack:"name"`
	Title     string `json:"title" msgpack:"title"`
	Text      string `json:"text" msgpack:"text"`
	Message   string `json:"message,omitempty" msgpack:"message,omitempty"`
	Line      uint32 `json:"line" msgpack:"line"`
	Col       uint32 `json:"col" msgpack:"col"`
	StartByte uint32 `json:"start_byte,omitempty" msgpack:"start_byte,omitempty"`
	EndByte   uint32 `json:"end_byte,omitempty" msgpack:"end_byte,omitempty"`
}

// ResultOutput is the full scan result of one file.
type ResultOutput struct {
	File        string           `json:"file" msgpack:"file"`
	Tokens      []TokenJSON      `json:"tokens" msgpack:"tokens"`
	Identifiers []string         `json:"identifiers" msgpack:"identifiers"`
	Constants   []string         `json:"constants" msgpack:"constants"`
	Errors      []DiagnosticJSON `json:"errors" msgpack:"errors"`
}

// BuildResultOutput формирует структуру вывода без сериализации.
func BuildResultOutput(file *source.File, res lexer.Result, opts JSONOpts) ResultOutput {
	out := ResultOutput{
		File:        displayPath(file, opts.PathMode, opts.BaseDir),
		Tokens:      make([]TokenJSON, 0, len(res.Tokens)),
		Identifiers: nonNil(res.Identifiers),
		Constants:   nonNil(res.Constants),
		Errors:      make([]DiagnosticJSON, 0, len(res.Errors)),
	}

	for _, tok := range res.Tokens {
		tj := TokenJSON{
			Code:   tok.Kind.Code(),
			Kind:   tok.Kind.String(),
			Lexeme: tok.Text,
			Value:  tok.Value,
			Attr:   tok.Attr.String(),
			Line:   tok.Pos.Line,
			Col:    tok.Pos.Col,
		}
		if opts.IncludeSpans {
			tj.StartByte, tj.EndByte = tok.Span.Start, tok.Span.End
		}
		out.Tokens = append(out.Tokens, tj)
	}

	for _, d := range res.Errors {
		out.Errors = append(out.Errors, diagnosticJSON(d, opts))
	}
	return out
}

func diagnosticJSON(d diag.Diagnostic, opts JSONOpts) DiagnosticJSON {
	dj := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Name:     d.Code.Name(),
		Title:    d.Code.Title(),
		Text:     d.Text,
		Message:  d.Message,
		Line:     d.Pos.Line,
		Col:      d.Pos.Col,
	}
	if opts.IncludeSpans {
		dj.StartByte, dj.EndByte = d.Primary.Start, d.Primary.End
	}
	return dj
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// JSON пишет результаты с отступами. Один файл - объект, несколько - массив.
func JSON(w io.Writer, outputs ...ResultOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if len(outputs) == 1 {
		return enc.Encode(outputs[0])
	}
	if outputs == nil {
		outputs = []ResultOutput{}
	}
	return enc.Encode(outputs)
}
