// Package diag defines the diagnostic model shared by the lexer and the
// phases built on top of it.
//
// # Purpose
//
//   - Provide deterministic data structures that capture recoverable findings
//     (malformed literals, unknown characters, unreadable files).
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// Package diag does not format for terminals and performs no IO. Rendering
// lives in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error).
//   - Code – compact numeric identifier with a stable string form (LEX1001).
//   - Message – short human text. Diagnostic.String() prefixes it with the
//     severity: "ERROR: bad character input: '$'".
//   - Primary – the source.Span of the token being produced when the problem
//     was found.
//   - Notes – optional secondary spans/messages.
//
// Fatal conditions (out-of-range spans, wrong value accessors) are not
// diagnostics: they are programmer errors and panic at the call site.
//
// # Emitting diagnostics
//
// Producers hold a Reporter. ReportError/ReportWarning return a ReportBuilder
// that can collect notes before Emit. BagReporter stores into a Bag,
// MultiReporter fans out.
package diag
