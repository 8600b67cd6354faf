package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto shows the path as it was given.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	BaseDir  string // для PathModeRelative, "" - текущий каталог
	// ShowSource prints the offending line with a caret marker under it.
	ShowSource bool
}

// TableOpts configures the boxed token and symbol tables.
type TableOpts struct {
	Color bool
	// MaxLexeme truncates lexemes wider than this many terminal cells; 0 = 15.
	MaxLexeme int
}

// JSONOpts configures JSON and msgpack output.
type JSONOpts struct {
	PathMode PathMode
	BaseDir  string
	// IncludeSpans adds byte offsets to tokens and diagnostics.
	IncludeSpans bool
}
