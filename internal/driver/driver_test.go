package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/internal/diag"
	"quill/internal/observ"
	"quill/internal/progress"
	"quill/internal/syntax"
	"quill/internal/trace"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func joinText(tokens []syntax.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text())
	}
	return sb.String()
}

func TestTokenizeFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.ql", "let x = 12+3\n")

	res, err := Tokenize(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, "let x = 12+3\n", joinText(res.Tokens))
	assert.Equal(t, syntax.EOF, res.Tokens[len(res.Tokens)-1].Kind())
	assert.Zero(t, res.Bag.Len())
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := Tokenize(context.Background(), filepath.Join(t.TempDir(), "nope.ql"), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTokenizeSourceReportsDiagnostics(t *testing.T) {
	res := TokenizeSource(context.Background(), "<stdin>", []byte("1 $ 99999999999999999999"), Options{})
	require.Equal(t, 2, res.Bag.Len())
	assert.Equal(t, []string{
		"ERROR: bad character input: '$'",
		"ERROR: invalid i64: 99999999999999999999",
	}, res.Bag.Messages())
	assert.Equal(t, "<stdin>", res.File.Path)
}

func TestTokenizeSourceRespectsMaxDiagnostics(t *testing.T) {
	res := TokenizeSource(context.Background(), "x", []byte("$$$$"), Options{MaxDiagnostics: 2})
	assert.Equal(t, 2, res.Bag.Len())
}

func TestTokenizeDirOrderAndLoadErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.ql", "while x {}")
	writeFile(t, dir, "a.ql", "var y = 1")
	writeFile(t, dir, "nested/c.ql", "$")
	writeFile(t, dir, "notes.txt", "ignored")

	var rec progress.Recorder
	timer := observ.NewTimer()
	fs, results, err := TokenizeDir(context.Background(), dir, Options{Jobs: 2, Progress: &rec, Timer: timer})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, filepath.Join(dir, "a.ql"), results[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.ql"), results[1].Path)
	assert.Equal(t, filepath.Join(dir, "nested", "c.ql"), results[2].Path)

	for _, r := range results {
		require.True(t, r.Loaded)
		file := fs.Get(r.FileID)
		assert.Equal(t, file.Text.String(), joinText(r.Tokens))
	}
	assert.True(t, results[2].Bag.HasErrors())
	assert.NotEmpty(t, rec.Events())
	assert.NotEmpty(t, timer.Report().Phases)
}

func TestTokenizeDirEmpty(t *testing.T) {
	fs, results, err := TokenizeDir(context.Background(), t.TempDir(), Options{})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, fs.Len())
}

func TestTokenizeDirUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any file")
	}
	dir := t.TempDir()
	path := writeFile(t, dir, "locked.ql", "1")
	require.NoError(t, os.Chmod(path, 0))

	_, results, err := TokenizeDir(context.Background(), dir, Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Loaded)
	require.Equal(t, 1, results[0].Bag.Len())
	assert.Equal(t, diag.IOLoadFileError, results[0].Bag.Items()[0].Code)
}

func TestTokenizeDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ql", "1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := TokenizeDir(ctx, dir, Options{Jobs: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokenizeTraced(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.ql", "1+2")
	ring := trace.NewRingTracer(32, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)

	_, err := Tokenize(ctx, path, Options{})
	require.NoError(t, err)

	var names []string
	for _, ev := range ring.Snapshot() {
		names = append(names, ev.Name)
	}
	assert.Contains(t, names, "tokenize")
	assert.Contains(t, names, "lex")
}
