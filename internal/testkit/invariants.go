// Package testkit collects invariant checkers shared by package tests and
// fuzz harnesses. Each checker returns the first violation as an error.
package testkit

import (
	"fmt"
	"math/rand"
	"strings"

	"fortio.org/safecast"

	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/value"
)

// CheckTokenStream verifies a complete token stream for text:
// 1) tokens are contiguous and their texts concatenate to the input
// 2) every token but the final EOF is non-empty
// 3) the stream ends with exactly one zero-length EOF at text.Len()
// 4) only Number tokens carry a non-null value
// 5) there are at most text.Len()+1 tokens
func CheckTokenStream(text *source.Text, tokens []syntax.Token) error {
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	n, err := safecast.Conv[uint32](len(tokens))
	if err != nil {
		return fmt.Errorf("token count overflow: %w", err)
	}
	if n > text.Len()+1 {
		return fmt.Errorf("too many tokens: %d for %d characters", n, text.Len())
	}

	var sb strings.Builder
	var pos uint32
	for i, tok := range tokens {
		if tok.Position() != pos {
			return fmt.Errorf("token %d (%s) starts at %d, want %d", i, tok.Kind(), tok.Position(), pos)
		}
		last := i == len(tokens)-1
		if (tok.Kind() == syntax.EOF) != last {
			return fmt.Errorf("token %d: EOF must be last and only last, got %s", i, tok.Kind())
		}
		if !last && tok.Len() == 0 {
			return fmt.Errorf("token %d (%s) is empty", i, tok.Kind())
		}
		if tok.Kind() == syntax.Number {
			if tok.Value().Kind() != value.KindNumber {
				return fmt.Errorf("token %d: number without numeric value", i)
			}
		} else if !tok.Value().IsNull() {
			return fmt.Errorf("token %d (%s) carries value %s", i, tok.Kind(), tok.Value())
		}
		sb.WriteString(tok.Text())
		pos += tok.Len()
	}

	eof := tokens[len(tokens)-1]
	if eof.Position() != text.Len() || eof.Len() != 0 {
		return fmt.Errorf("EOF at %d len %d, want %d len 0", eof.Position(), eof.Len(), text.Len())
	}
	if got := sb.String(); got != text.String() {
		return fmt.Errorf("token texts do not reproduce the input: %q != %q", got, text.String())
	}
	return nil
}

// CheckLineTable verifies that lines tile the text without gaps or overlap,
// that only the last line lacks a break and that the breaks are real.
func CheckLineTable(text *source.Text) error {
	lines := text.Lines()
	if len(lines) == 0 {
		return fmt.Errorf("no lines")
	}
	var pos uint32
	for i, line := range lines {
		if line.Start != pos {
			return fmt.Errorf("line %d starts at %d, want %d", i, line.Start, pos)
		}
		if line.LengthWithBreak < line.Length || line.LengthWithBreak-line.Length > 2 {
			return fmt.Errorf("line %d: bad break width %d", i, line.LengthWithBreak-line.Length)
		}
		last := i == len(lines)-1
		if brk := line.LengthWithBreak - line.Length; last != (brk == 0) {
			return fmt.Errorf("line %d: break width %d (last=%v)", i, brk, last)
		}
		if brk := text.StringBounded(line.End(), line.LengthWithBreak-line.Length); brk != "" && brk != "\n" && brk != "\r" && brk != "\r\n" {
			return fmt.Errorf("line %d: break is %q", i, brk)
		}
		if strings.ContainsAny(text.LineString(line), "\r\n") {
			return fmt.Errorf("line %d content contains a break", i)
		}
		pos = line.EndWithBreak()
	}
	if pos != text.Len() {
		return fmt.Errorf("lines cover %d characters, text has %d", pos, text.Len())
	}
	return nil
}

// LinearLineIndex is the reference answer for Text.LineIndex: the last line
// whose start is <= pos.
func LinearLineIndex(text *source.Text, pos uint32) int {
	idx := 0
	for i, line := range text.Lines() {
		if line.Start <= pos {
			idx = i
		}
	}
	return idx
}

// CheckLineIndex compares Text.LineIndex with LinearLineIndex at every
// position, the end of text included.
func CheckLineIndex(text *source.Text) error {
	for pos := uint32(0); pos <= text.Len(); pos++ {
		if got, want := text.LineIndex(pos), LinearLineIndex(text, pos); got != want {
			return fmt.Errorf("LineIndex(%d) = %d, want %d", pos, got, want)
		}
	}
	return nil
}

var lineSourcePieces = []string{"\n", "\r", "\r\n", "a", "b", " ", "12", "\r\n\r\n"}

// RandomLineSource builds a source of up to n pieces mixing text with every
// kind of line break.
func RandomLineSource(r *rand.Rand, n int) string {
	var sb strings.Builder
	count := r.Intn(n + 1)
	for range count {
		sb.WriteString(lineSourcePieces[r.Intn(len(lineSourcePieces))])
	}
	return sb.String()
}
