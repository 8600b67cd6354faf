// Package diag defines the diagnostic model produced by the lexer.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity: SevWarning or SevError, defined in severity.go; only SevError fails a file.
//   - Code: closed set of lexical error kinds (see codes.go) with a stable
//     string ID (LEX1001…) and title.
//   - Primary span and Pos: where the offending construct starts.
//   - Text: the raw offending source text.
//   - Message: optional qualifier ("missing hex digits", …).
//
// Lexical problems are data, never Go errors: the lexer reports them through a
// Reporter and keeps going. Bag stores them in detection order.
//
// Package diag does not perform formatting beyond the one-line Short form;
// rendering lives in internal/diagfmt.
package diag
