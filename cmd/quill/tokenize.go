package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"quill/internal/diag"
	"quill/internal/diagfmt"
	"quill/internal/driver"
	"quill/internal/observ"
	"quill/internal/progress"
	"quill/internal/source"
)

type outputFormat string

const (
	formatPretty outputFormat = "pretty"
	formatJSON   outputFormat = "json"
	formatYAML   outputFormat = "yaml"
)

func readOutputFormat(value string) (outputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "pretty":
		return formatPretty, nil
	case "json":
		return formatJSON, nil
	case "yaml", "yml":
		return formatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (expected pretty|json|yaml)", value)
}

type diagFormat string

const (
	diagPretty diagFormat = "pretty"
	diagShort  diagFormat = "short"
)

func readDiagFormat(value string) (diagFormat, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "pretty":
		return diagPretty, nil
	case "short":
		return diagShort, nil
	}
	return "", fmt.Errorf("unknown diagnostics format %q (expected pretty|short)", value)
}

// errHasErrors makes the process exit non-zero once diagnostics are printed.
var errHasErrors = errors.New("tokenize reported errors")

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.ql|dir|-",
		Short: "Tokenize a quill source file",
		Long: `Tokenize breaks a quill source file into its tokens. A directory argument
tokenizes every .ql file below it in parallel; "-" reads standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
	cmd.Flags().Bool("skip-whitespace", false, "omit whitespace tokens from the output")
	cmd.Flags().Bool("cache", false, "reuse token streams from the disk cache")
	cmd.Flags().Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
	cmd.Flags().String("ui", "off", "progress view for directories (auto|on|off)")
	cmd.Flags().String("path-mode", "auto", "diagnostic path display (auto|absolute|relative|basename)")
	cmd.Flags().String("diag-format", "pretty", "diagnostics format on stderr (pretty|short)")
	cmd.Flags().Bool("with-notes", false, "include diagnostic notes in short output")
	cmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	return cmd
}

type tokenizeSettings struct {
	format         outputFormat
	skipWhitespace bool
	cache          bool
	jobs           int
	ui             uiMode
	pathMode       diagfmt.PathMode
	diagFormat     diagFormat
	withNotes      bool
	strict         bool
	maxDiagnostics int
	color          bool
	timings        bool
}

// resolveTokenizeSettings merges quill.toml with the command line. A flag set
// explicitly always wins over the manifest.
func resolveTokenizeSettings(cmd *cobra.Command, manifest *projectManifest) (tokenizeSettings, error) {
	var s tokenizeSettings
	flags := cmd.Flags()

	formatStr, err := flags.GetString("format")
	if err != nil {
		return s, err
	}
	if manifest.defines("format") && !flags.Changed("format") {
		formatStr = manifest.Config.Tokenize.Format
	}
	if s.format, err = readOutputFormat(formatStr); err != nil {
		return s, err
	}

	if s.skipWhitespace, err = flags.GetBool("skip-whitespace"); err != nil {
		return s, err
	}
	if manifest.defines("skip_whitespace") && !flags.Changed("skip-whitespace") {
		s.skipWhitespace = manifest.Config.Tokenize.SkipWhitespace
	}

	if s.cache, err = flags.GetBool("cache"); err != nil {
		return s, err
	}
	if manifest.defines("cache") && !flags.Changed("cache") {
		s.cache = manifest.Config.Tokenize.Cache
	}

	if s.jobs, err = flags.GetInt("jobs"); err != nil {
		return s, err
	}
	if manifest.defines("jobs") && !flags.Changed("jobs") {
		s.jobs = manifest.Config.Tokenize.Jobs
	}
	if s.jobs < 0 {
		return s, fmt.Errorf("--jobs must not be negative")
	}

	uiStr, err := flags.GetString("ui")
	if err != nil {
		return s, err
	}
	if s.ui, err = readUIMode(uiStr); err != nil {
		return s, err
	}

	pathStr, err := flags.GetString("path-mode")
	if err != nil {
		return s, err
	}
	if s.pathMode, err = diagfmt.ParsePathMode(pathStr); err != nil {
		return s, err
	}

	diagStr, err := flags.GetString("diag-format")
	if err != nil {
		return s, err
	}
	if s.diagFormat, err = readDiagFormat(diagStr); err != nil {
		return s, err
	}
	if s.withNotes, err = flags.GetBool("with-notes"); err != nil {
		return s, err
	}
	if s.strict, err = flags.GetBool("warnings-as-errors"); err != nil {
		return s, err
	}

	root := cmd.Root().PersistentFlags()
	if s.maxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
		return s, err
	}
	if s.timings, err = root.GetBool("timings"); err != nil {
		return s, err
	}
	colorStr, err := root.GetString("color")
	if err != nil {
		return s, err
	}
	if s.color, err = colorEnabled(colorStr, os.Stderr); err != nil {
		return s, err
	}
	return s, nil
}

func runTokenize(cmd *cobra.Command, args []string) error {
	target := args[0]

	manifest, _, err := loadProjectManifest(".")
	if err != nil {
		return err
	}
	settings, err := resolveTokenizeSettings(cmd, manifest)
	if err != nil {
		return err
	}

	opts := driver.Options{MaxDiagnostics: settings.maxDiagnostics, Jobs: settings.jobs}
	if settings.timings {
		opts.Timer = observ.NewTimer()
	}
	if settings.cache {
		cache, err := driver.OpenDiskCache(cacheApp)
		if err != nil {
			return fmt.Errorf("open token cache: %w", err)
		}
		opts.Cache = cache
	}

	if target != "-" {
		info, err := os.Stat(target)
		if err != nil {
			return err
		}
		if info.IsDir() {
			return tokenizeDir(cmd, target, settings, opts)
		}
	}

	var res *driver.TokenizeResult
	if target == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		res = driver.TokenizeSource(cmd.Context(), "<stdin>", data, opts)
	} else {
		res, err = driver.Tokenize(cmd.Context(), target, opts)
		if err != nil {
			return err
		}
	}

	printDiagnostics(cmd.ErrOrStderr(), res.Bag, res.File, res.FileSet.BaseDir(), settings)

	tokOpts := diagfmt.TokenOpts{SkipWhitespace: settings.skipWhitespace}
	out := cmd.OutOrStdout()
	switch settings.format {
	case formatJSON:
		err = diagfmt.FormatTokensJSON(out, res.Tokens, res.File.Text, tokOpts)
	case formatYAML:
		err = diagfmt.FormatTokensYAML(out, res.Tokens, res.File.Text, tokOpts)
	default:
		err = diagfmt.FormatTokensPretty(out, res.Tokens, res.File.Text, tokOpts)
	}
	if err != nil {
		return err
	}
	printTimings(cmd.ErrOrStderr(), opts.Timer, nil)
	if settings.failed(res.Bag) {
		return errHasErrors
	}
	return nil
}

// failed reports whether bag should make the command exit non-zero.
func (s tokenizeSettings) failed(bag *diag.Bag) bool {
	return bag.HasErrors() || (s.strict && bag.HasWarnings())
}

func tokenizeDir(cmd *cobra.Command, dir string, settings tokenizeSettings, opts driver.Options) error {
	var rec progress.Recorder
	opts.Progress = &rec

	var (
		fileSet *source.FileSet
		results []driver.TokenizeDirResult
		err     error
	)
	if shouldUseTUI(settings.ui) {
		files, listErr := driver.ListSourceFiles(dir)
		if listErr != nil {
			return listErr
		}
		fileSet, results, err = runTokenizeDirWithUI(cmd.Context(), dir, files, opts)
	} else {
		fileSet, results, err = driver.TokenizeDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	tokOpts := diagfmt.TokenOpts{SkipWhitespace: settings.skipWhitespace}
	hasErrors := false
	var structured []diagfmt.FileTokensOutput

	for _, r := range results {
		hasErrors = hasErrors || settings.failed(r.Bag)
		if !r.Loaded {
			// файла нет в FileSet: печатаем диагностику без контекста
			for _, d := range r.Bag.Items() {
				fmt.Fprintf(errOut, "%s: %s %s: %s\n", r.Path, d.Severity, d.Code.ID(), d.Message)
			}
			continue
		}
		file := fileSet.Get(r.FileID)
		if settings.format == formatPretty {
			printDiagnostics(errOut, r.Bag, file, dir, settings)
			fmt.Fprintf(out, "== %s ==\n", file.FormatPath(settings.pathMode.String(), dir))
			if err := diagfmt.FormatTokensPretty(out, r.Tokens, file.Text, tokOpts); err != nil {
				return err
			}
			continue
		}
		structured = append(structured, diagfmt.FileTokensOutput{
			Path:        file.FormatPath(settings.pathMode.String(), dir),
			Tokens:      diagfmt.BuildTokensOutput(r.Tokens, file.Text, tokOpts),
			Diagnostics: diagfmt.BuildDiagnosticsOutput(r.Bag, file, diagfmt.JSONOpts{IncludePositions: true, PathMode: settings.pathMode, BaseDir: dir}).Diagnostics,
		})
	}

	switch settings.format {
	case formatJSON:
		err = diagfmt.FormatFileTokensJSON(out, structured)
	case formatYAML:
		err = diagfmt.FormatFileTokensYAML(out, structured)
	}
	if err != nil {
		return err
	}

	timings := rec.Timings()
	printTimings(errOut, opts.Timer, &timings)
	if hasErrors {
		return errHasErrors
	}
	return nil
}

func printDiagnostics(w io.Writer, bag *diag.Bag, file *source.File, baseDir string, settings tokenizeSettings) {
	if bag.Len() == 0 {
		return
	}
	bag.Sort()
	if settings.diagFormat == diagShort {
		path := file.FormatPath(settings.pathMode.String(), baseDir)
		if out := diag.FormatGoldenDiagnostics(bag.Items(), path, file.Text, settings.withNotes); out != "" {
			fmt.Fprintln(w, out)
		}
		return
	}
	diagfmt.Pretty(w, bag, file, diagfmt.PrettyOpts{
		Color:     settings.color,
		Context:   1,
		PathMode:  settings.pathMode,
		BaseDir:   baseDir,
		ShowNotes: true,
	})
}
