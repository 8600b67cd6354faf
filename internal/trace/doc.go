// Package trace records where clex spends its time.
//
// Tracing is off by default. The CLI turns it on with:
//
//	clex tokenize --trace=- --trace-level=phase main.c
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is disabled
//   - StreamTracer: writes each event immediately (text or NDJSON)
//
// # Levels and scopes
//
// A level selects how deep events go:
//
//   - LevelPhase: the command and each file
//   - LevelDetail: load/scan/render phases inside a file
//   - LevelDebug: everything, including per-batch worker events
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "tokenize", 0)
//	defer span.End("")
package trace
