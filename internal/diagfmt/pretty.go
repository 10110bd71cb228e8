package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"quill/internal/diag"
	"quill/internal/source"
)

type palette struct {
	err, warn, info, note, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan),
		note:   color.New(color.FgBlue),
		gutter: color.New(color.FgHiBlack),
		caret:  color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, file *source.File, opts PrettyOpts) {
	p := newPalette(opts.Color)
	path := file.FormatPath(opts.PathMode.String(), opts.BaseDir)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeDiagnostic(w, p, d, file.Text, path, opts)
	}
}

func writeDiagnostic(w io.Writer, p palette, d diag.Diagnostic, text *source.Text, path string, opts PrettyOpts) {
	pos := text.Position(d.Primary.Start)
	msg := d.Message
	if opts.Width > 0 {
		msg = runewidth.Truncate(msg, opts.Width, "…")
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, pos.Line, pos.Col,
		p.severity(d.Severity).Sprint(d.Severity.String()),
		d.Code.ID(), msg)

	writeContext(w, p, text, d.Primary, opts.Context)

	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		np := text.Position(note.Span.Start)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"), path, np.Line, np.Col, note.Msg)
	}
}

// writeContext печатает строку со Span и context строк вокруг неё.
func writeContext(w io.Writer, p palette, text *source.Text, span source.Span, context int) {
	primary := text.LineIndex(span.Start)
	first := max(primary-context, 0)
	last := min(primary+context, text.LineCount()-1)
	gutterWidth := len(fmt.Sprint(last + 1))

	for idx := first; idx <= last; idx++ {
		line := text.Line(idx)
		content := text.LineString(line)
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, idx+1), content)
		if idx != primary {
			continue
		}
		fmt.Fprintf(w, "%s %s\n",
			p.gutter.Sprintf("%*s |", gutterWidth, ""),
			p.caret.Sprint(underline(text, line, span)))
	}
}

// underline строит "   ^~~" по ширине символов на экране, табы сохраняются.
func underline(text *source.Text, line source.Line, span source.Span) string {
	start := max(span.Start, line.Start)
	end := min(span.End(), line.End())

	var sb strings.Builder
	for _, r := range text.StringBounded(line.Start, start-line.Start) {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	width := 0
	if end > start {
		width = runewidth.StringWidth(text.StringBounded(start, end-start))
	}
	sb.WriteByte('^')
	if width > 1 {
		sb.WriteString(strings.Repeat("~", width-1))
	}
	return sb.String()
}
