package diagfmt

import (
	"fmt"
	"io"

	"quill/internal/source"
	"quill/internal/syntax"
)

type TokenOutput struct {
	Kind   string `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
	Offset uint32 `json:"offset" yaml:"offset"`
	Length uint32 `json:"length" yaml:"length"`
	Line   uint32 `json:"line" yaml:"line"`
	Col    uint32 `json:"col" yaml:"col"`
	Value  *int64 `json:"value,omitempty" yaml:"value,omitempty"`
}

// BuildTokensOutput формирует структуру вывода токенов без сериализации.
// Вывод заканчивается на первом EOF.
func BuildTokensOutput(tokens []syntax.Token, text *source.Text, opts TokenOpts) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		if opts.SkipWhitespace && tok.Kind() == syntax.Whitespace {
			continue
		}
		pos := text.Position(tok.Position())
		out := TokenOutput{
			Kind:   tok.Kind().String(),
			Text:   tok.Text(),
			Offset: tok.Position(),
			Length: tok.Len(),
			Line:   pos.Line,
			Col:    pos.Col,
		}
		if tok.Kind() == syntax.Number {
			n := tok.Value().AsNumber()
			out.Value = &n
		}
		output = append(output, out)

		if tok.Kind() == syntax.EOF {
			break
		}
	}
	return output
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []syntax.Token, text *source.Text, opts TokenOpts) error {
	for i, tok := range BuildTokensOutput(tokens, text, opts) {
		fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind)

		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}

		end := text.Position(tok.Offset + tok.Length)
		fmt.Fprintf(w, " at %d:%d-%d:%d", tok.Line, tok.Col, end.Line, end.Col)

		if tok.Value != nil {
			fmt.Fprintf(w, " = %d", *tok.Value)
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []syntax.Token, text *source.Text, opts TokenOpts) error {
	return encodeJSON(w, BuildTokensOutput(tokens, text, opts))
}

// FormatTokensYAML выводит токены в YAML формате
func FormatTokensYAML(w io.Writer, tokens []syntax.Token, text *source.Text, opts TokenOpts) error {
	return encodeYAML(w, BuildTokensOutput(tokens, text, opts))
}

// FileTokensOutput groups the token dump of one file in directory mode.
type FileTokensOutput struct {
	Path        string           `json:"path" yaml:"path"`
	Tokens      []TokenOutput    `json:"tokens" yaml:"tokens"`
	Diagnostics []DiagnosticJSON `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// FormatFileTokensJSON выводит токены нескольких файлов одним JSON массивом.
func FormatFileTokensJSON(w io.Writer, files []FileTokensOutput) error {
	return encodeJSON(w, files)
}

// FormatFileTokensYAML is the YAML counterpart of FormatFileTokensJSON.
func FormatFileTokensYAML(w io.Writer, files []FileTokensOutput) error {
	return encodeYAML(w, files)
}
