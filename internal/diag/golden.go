package diag

import (
	"strings"
)

// FormatShortDiagnostics renders diagnostics one per line in the given order
// using Diagnostic.Short. Returns "" for an empty slice.
func FormatShortDiagnostics(diags []Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := range diags {
		sb.WriteString(diags[i].Short())
		sb.WriteByte('\n')
	}
	return sb.String()
}
