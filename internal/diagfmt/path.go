package diagfmt

import (
	"path/filepath"

	"clex/internal/source"
)

func displayPath(f *source.File, mode PathMode, baseDir string) string {
	if f == nil {
		return ""
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
		return f.Path
	case PathModeRelative:
		return f.FormatPath("relative", baseDir)
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.Path
	}
}
