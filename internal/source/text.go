package source

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// Line describes one line of a Text. Length excludes the line break,
// LengthWithBreak includes it (0, 1 or 2 characters more).
type Line struct {
	Start           uint32
	Length          uint32
	LengthWithBreak uint32
}

// End returns the offset just past the line content.
func (l Line) End() uint32 { return l.Start + l.Length }

// EndWithBreak returns the offset where the next line starts.
func (l Line) EndWithBreak() uint32 { return l.Start + l.LengthWithBreak }

// Span covers the line content without its break.
func (l Line) Span() Span { return NewSpan(l.Start, l.Length) }

// SpanWithBreak covers the line content and its break.
func (l Line) SpanWithBreak() Span { return NewSpan(l.Start, l.LengthWithBreak) }

// Text is an immutable sequence of characters plus its line index.
// Both are computed once by FromRunes/FromString and never change, so a
// *Text may be shared freely between readers.
type Text struct {
	chars []rune
	lines []Line
}

// FromRunes copies chars and builds the line index.
func FromRunes(chars []rune) *Text {
	own := slices.Clone(chars)
	return &Text{chars: own, lines: parseLines(own)}
}

// FromString decodes s (UTF-8) into characters and builds the line index.
func FromString(s string) *Text {
	chars := []rune(s)
	return &Text{chars: chars, lines: parseLines(chars)}
}

// Len returns the number of characters.
func (t *Text) Len() uint32 {
	return toU32(len(t.chars))
}

// At returns the character at pos; ok is false past the end.
func (t *Text) At(pos uint32) (r rune, ok bool) {
	if uint64(pos) >= uint64(len(t.chars)) {
		return 0, false
	}
	return t.chars[pos], true
}

// Runes exposes the underlying characters. READONLY.
func (t *Text) Runes() []rune {
	return t.chars
}

// Lines returns the line index. READONLY: the slice is shared.
func (t *Text) Lines() []Line {
	return t.lines
}

// Line returns the line with the given 0-based index.
func (t *Text) Line(index int) Line {
	return t.lines[index]
}

// LineCount is always at least 1.
func (t *Text) LineCount() int {
	return len(t.lines)
}

// LineIndex returns the index of the line containing pos: the line with the
// greatest Start <= pos. Positions past the end map to the last line.
func (t *Text) LineIndex(pos uint32) int {
	lower, upper := 0, len(t.lines)-1
	for lower <= upper {
		mid := lower + (upper-lower)/2
		start := t.lines[mid].Start
		switch {
		case start == pos:
			return mid
		case start < pos:
			lower = mid + 1
		default:
			upper = mid - 1
		}
	}
	return lower - 1
}

// Position converts an offset into a 1-based line/column pair.
func (t *Text) Position(pos uint32) LineCol {
	idx := t.LineIndex(pos)
	line := t.lines[idx]
	return LineCol{Line: toU32(idx + 1), Col: pos - line.Start + 1}
}

// StringBounded returns characters [start, start+length).
// Out-of-range requests are caller bugs and panic.
func (t *Text) StringBounded(start, length uint32) string {
	end := uint64(start) + uint64(length)
	if end > uint64(len(t.chars)) {
		panic(fmt.Sprintf("source: span %d+%d out of range [0, %d]", start, length, len(t.chars)))
	}
	return string(t.chars[start:end])
}

// StringSpan returns the characters covered by span.
func (t *Text) StringSpan(span Span) string {
	return t.StringBounded(span.Start, span.Length)
}

// LineString returns the line content without its break.
func (t *Text) LineString(line Line) string {
	return t.StringSpan(line.Span())
}

// LineStringWithBreak returns the line content including its break.
func (t *Text) LineStringWithBreak(line Line) string {
	return t.StringSpan(line.SpanWithBreak())
}

func (t *Text) String() string {
	return string(t.chars)
}

// parseLines делает один проход вперёд и закрывает строку на каждом переводе.
// Последняя строка добавляется всегда, даже пустая.
func parseLines(text []rune) []Line {
	lines := make([]Line, 0, 1)
	lineStart, pos := 0, 0
	for pos < len(text) {
		width := lineBreakWidth(text, pos)
		if width == 0 {
			pos++
			continue
		}
		lines = append(lines, newLine(lineStart, pos, width))
		pos += width
		lineStart = pos
	}
	return append(lines, newLine(lineStart, pos, 0))
}

// lineBreakWidth classifies text[i:i+2]: 2 for "\r\n", 1 for a lone '\r' or
// '\n', 0 otherwise.
func lineBreakWidth(text []rune, i int) int {
	c := text[i]
	var next rune
	if i+1 < len(text) {
		next = text[i+1]
	}
	switch {
	case c == '\r' && next == '\n':
		return 2
	case c == '\r' || c == '\n':
		return 1
	default:
		return 0
	}
}

func newLine(lineStart, pos, breakWidth int) Line {
	return Line{
		Start:           toU32(lineStart),
		Length:          toU32(pos - lineStart),
		LengthWithBreak: toU32(pos - lineStart + breakWidth),
	}
}

func toU32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("source offset overflow: %w", err))
	}
	return v
}
