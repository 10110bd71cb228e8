package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/internal/diag"
	"quill/internal/source"
)

func TestReadOutputFormat(t *testing.T) {
	for in, want := range map[string]outputFormat{"": formatPretty, "JSON": formatJSON, "yml": formatYAML} {
		got, err := readOutputFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := readOutputFormat("csv")
	assert.Error(t, err)
}

func TestReadUIMode(t *testing.T) {
	mode, err := readUIMode(" ON ")
	require.NoError(t, err)
	assert.Equal(t, uiModeOn, mode)
	assert.True(t, shouldUseTUI(uiModeOn))
	assert.False(t, shouldUseTUI(uiModeOff))

	_, err = readUIMode("sometimes")
	assert.Error(t, err)
}

func TestColorEnabled(t *testing.T) {
	on, err := colorEnabled("on", nil)
	require.NoError(t, err)
	assert.True(t, on)

	auto, err := colorEnabled("auto", nil)
	require.NoError(t, err)
	assert.False(t, auto)

	_, err = colorEnabled("rainbow", nil)
	assert.Error(t, err)
}

func TestLoadProjectManifest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, manifestName),
		[]byte("[tokenize]\njobs = 3\ncache = true\n"), 0o600))

	m, ok, err := loadProjectManifest(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, root, m.Root)
	assert.Equal(t, 3, m.Config.Tokenize.Jobs)
	assert.True(t, m.defines("cache"))
	assert.False(t, m.defines("format"))
}

func TestLoadProjectManifestRejectsUnknownKeys(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, manifestName),
		[]byte("[tokenize]\nformat = \"json\"\ncolour = true\n"), 0o600))

	_, ok, err := loadProjectManifest(root)
	assert.True(t, ok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tokenize.colour")
}

func TestNilManifestDefinesNothing(t *testing.T) {
	var m *projectManifest
	assert.False(t, m.defines("format"))
}

func TestReadDiagFormat(t *testing.T) {
	got, err := readDiagFormat("Short")
	require.NoError(t, err)
	assert.Equal(t, diagShort, got)
	_, err = readDiagFormat("sarif")
	assert.Error(t, err)
}

func TestWarningsAsErrors(t *testing.T) {
	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{}, "failed to write token cache"))

	assert.False(t, tokenizeSettings{}.failed(bag))
	assert.True(t, tokenizeSettings{strict: true}.failed(bag))
}

func TestPrintDiagnosticsSorted(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x.ql", []byte("1 $ 2")))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.NewSpan(2, 1), "bad character input: '$'"))
	bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{}, "failed to write token cache"))

	var buf bytes.Buffer
	printDiagnostics(&buf, bag, file, "", tokenizeSettings{diagFormat: diagShort})
	assert.Equal(t, "warning IO4002 x.ql:1:1 failed to write token cache\n"+
		"error LEX1001 x.ql:1:3 bad character input: '$'\n", buf.String())
}
