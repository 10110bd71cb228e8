package lexer

import (
	"quill/internal/diag"
	"quill/internal/source"
)

type Options struct {
	// Reporter получает копию каждой диагностики; может быть nil.
	Reporter diag.Reporter
	// MaxDiagnostics ограничивает собственный Bag лексера; 0 означает без ограничения.
	MaxDiagnostics int
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(lx.reporter, code, sp, msg).Emit()
}
