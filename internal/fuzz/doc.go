// Package fuzztests holds go test fuzz targets for the lexer.
//
// Run with: go test ./internal/fuzz -fuzz=FuzzTokenize
package fuzztests
