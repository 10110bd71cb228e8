// Package trace records where quill spends its time.
//
// Tracing is off by default and costs nothing then. Enable it from the CLI:
//
//	quill tokenize --trace=- --trace-level=detail src/
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is disabled
//   - StreamTracer: writes each event immediately (file or stderr)
//   - RingTracer: keeps the last N events in memory for a dump on failure
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// LevelPhase emits driver and pass boundaries (load, lex, cache), LevelDetail
// adds one span per file, LevelDebug emits everything.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lex", 0)
//	defer span.End("")
package trace
