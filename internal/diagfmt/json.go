package diagfmt

import (
	"io"

	"quill/internal/diag"
	"quill/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON/YAML
type LocationJSON struct {
	File        string `json:"file" yaml:"file"`
	StartOffset uint32 `json:"start_offset" yaml:"start_offset"`
	EndOffset   uint32 `json:"end_offset" yaml:"end_offset"`
	StartLine   uint32 `json:"start_line,omitempty" yaml:"start_line,omitempty"`
	StartCol    uint32 `json:"start_col,omitempty" yaml:"start_col,omitempty"`
	EndLine     uint32 `json:"end_line,omitempty" yaml:"end_line,omitempty"`
	EndCol      uint32 `json:"end_col,omitempty" yaml:"end_col,omitempty"`
}

// NoteJSON представляет дополнительную заметку
type NoteJSON struct {
	Message  string       `json:"message" yaml:"message"`
	Location LocationJSON `json:"location" yaml:"location"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity" yaml:"severity"`
	Code     string       `json:"code" yaml:"code"`
	Message  string       `json:"message" yaml:"message"`
	Location LocationJSON `json:"location" yaml:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics" yaml:"diagnostics"`
	Count       int              `json:"count" yaml:"count"`
}

// makeLocation создаёт LocationJSON из Span
func makeLocation(span source.Span, file *source.File, path string, includePositions bool) LocationJSON {
	loc := LocationJSON{
		File:        path,
		StartOffset: span.Start,
		EndOffset:   span.End(),
	}

	// Добавляем позиции строк/колонок если требуется
	if includePositions {
		start := file.Text.Position(span.Start)
		end := file.Text.Position(span.End())
		loc.StartLine = start.Line
		loc.StartCol = start.Col
		loc.EndLine = end.Line
		loc.EndCol = end.Col
	}

	return loc
}

// BuildDiagnosticsOutput формирует структуру вывода без сериализации.
// Все диагностики в bag относятся к file.
func BuildDiagnosticsOutput(bag *diag.Bag, file *source.File, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}
	path := file.FormatPath(opts.PathMode.String(), opts.BaseDir)

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := range maxItems {
		d := items[i]

		diagJSON := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, file, path, opts.IncludePositions),
		}

		if opts.IncludeNotes && len(d.Notes) > 0 {
			diagJSON.Notes = make([]NoteJSON, len(d.Notes))
			for j, note := range d.Notes {
				diagJSON.Notes[j] = NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span, file, path, opts.IncludePositions),
				}
			}
		}

		diagnostics = append(diagnostics, diagJSON)
	}

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
	}
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, bag *diag.Bag, file *source.File, opts JSONOpts) error {
	return encodeJSON(w, BuildDiagnosticsOutput(bag, file, opts))
}

// YAML форматирует диагностики в YAML с той же структурой, что и JSON.
func YAML(w io.Writer, bag *diag.Bag, file *source.File, opts JSONOpts) error {
	return encodeYAML(w, BuildDiagnosticsOutput(bag, file, opts))
}
