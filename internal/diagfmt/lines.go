package diagfmt

import (
	"fmt"
	"io"

	"quill/internal/source"
)

type LineOutput struct {
	Index           int    `json:"index" yaml:"index"`
	Start           uint32 `json:"start" yaml:"start"`
	Length          uint32 `json:"length" yaml:"length"`
	LengthWithBreak uint32 `json:"length_with_break" yaml:"length_with_break"`
	Text            string `json:"text" yaml:"text"`
}

// BuildLinesOutput lists every line descriptor of text, the trailing empty
// line included.
func BuildLinesOutput(text *source.Text) []LineOutput {
	output := make([]LineOutput, 0, text.LineCount())
	for i, line := range text.Lines() {
		output = append(output, LineOutput{
			Index:           i,
			Start:           line.Start,
			Length:          line.Length,
			LengthWithBreak: line.LengthWithBreak,
			Text:            text.LineString(line),
		})
	}
	return output
}

// FormatLinesPretty печатает таблицу строк: индекс, начало, длина, длина с переводом, текст.
func FormatLinesPretty(w io.Writer, text *source.Text) error {
	if _, err := fmt.Fprintf(w, "%5s %7s %6s %6s  %s\n", "LINE", "START", "LEN", "FULL", "TEXT"); err != nil {
		return err
	}
	for _, line := range BuildLinesOutput(text) {
		if _, err := fmt.Fprintf(w, "%5d %7d %6d %6d  %q\n",
			line.Index, line.Start, line.Length, line.LengthWithBreak, line.Text); err != nil {
			return err
		}
	}
	return nil
}

func FormatLinesJSON(w io.Writer, text *source.Text) error {
	return encodeJSON(w, BuildLinesOutput(text))
}

func FormatLinesYAML(w io.Writer, text *source.Text) error {
	return encodeYAML(w, BuildLinesOutput(text))
}
