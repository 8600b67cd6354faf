// Package token defines lexical token kinds for clex.
// Invariants:
//   - Token.Text is the exact source text of the token. For char and string
//     literals that is the display form: quotes and raw escapes kept.
//   - Token.Span matches Text exactly (Start..End).
//   - Keywords are matched case-insensitively; Text keeps the source spelling.
//   - Only Ident and literal kinds carry an Attr; everything else has AttrNone.
//   - Kind.Code() is the stable numeric code used in reports.
package token
