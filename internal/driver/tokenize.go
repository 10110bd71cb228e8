package driver

import (
	"context"
	"fmt"
	"time"

	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/observ"
	"quill/internal/progress"
	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/trace"
)

// Options configures the tokenize entry points. The zero value lexes without
// a cache, progress reporting or diagnostic cap.
type Options struct {
	MaxDiagnostics int
	Jobs           int // 0: GOMAXPROCS
	Cache          *DiskCache
	Progress       progress.Sink
	Timer          *observ.Timer
}

// TokenizeResult is the outcome of tokenizing one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []syntax.Token
	Bag     *diag.Bag
	Cached  bool // tokens came from the disk cache
}

// Tokenize loads path and returns its full token stream, EOF included.
// Load failures are returned as errors; lexical problems land in the Bag.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "tokenize")
	defer span.End(path)

	fs := source.NewFileSet()
	idx := opts.Timer.Begin("load")
	fileID, err := fs.Load(path)
	opts.Timer.End(idx, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	res := &TokenizeResult{FileSet: fs, File: file}
	res.Tokens, res.Bag, res.Cached = lexFile(ctx, file, opts)
	return res, nil
}

// TokenizeSource tokenizes in-memory content registered under name, for
// stdin and tests.
func TokenizeSource(ctx context.Context, name string, content []byte, opts Options) *TokenizeResult {
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "tokenize")
	defer span.End(name)

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, content))

	res := &TokenizeResult{FileSet: fs, File: file}
	res.Tokens, res.Bag, res.Cached = lexFile(ctx, file, opts)
	return res
}

// lexFile produces the token stream for one loaded file, consulting the
// cache first when one is configured.
func lexFile(ctx context.Context, file *source.File, opts Options) ([]syntax.Token, *diag.Bag, bool) {
	if opts.Cache != nil {
		began := time.Now()
		progress.Emit(opts.Progress, progress.Event{File: file.Path, Stage: progress.StageCache, Status: progress.StatusWorking})
		tokens, bag, hit, err := opts.Cache.Lookup(file, opts.MaxDiagnostics)
		switch {
		case err != nil:
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-error", err.Error())
		case hit:
			elapsed := time.Since(began)
			opts.Timer.Add("cache", elapsed, file.Path)
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-hit", file.Path)
			progress.Emit(opts.Progress, progress.Event{File: file.Path, Stage: progress.StageCache, Status: progress.StatusDone, Elapsed: elapsed})
			return tokens, bag, true
		}
	}

	span, _ := trace.StartSpan(ctx, trace.ScopeFile, "lex")
	began := time.Now()
	progress.Emit(opts.Progress, progress.Event{File: file.Path, Stage: progress.StageLex, Status: progress.StatusWorking})

	// кэш хранит полный список, лимит применяется только к возвращаемому Bag
	bag := diag.NewBag(opts.MaxDiagnostics)
	tokens, full := lexer.Tokenize(file.Text, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	elapsed := time.Since(began)
	span.WithExtra("tokens", fmt.Sprint(len(tokens))).End(file.Path)
	opts.Timer.Add("lex", elapsed, file.Path)

	if opts.Cache != nil {
		if err := opts.Cache.Store(file, tokens, full); err != nil {
			diag.ReportWarning(diag.BagReporter{Bag: bag}, diag.IOCacheError, source.Span{},
				"failed to write token cache: "+err.Error()).Emit()
			bag.Sort()
		}
	}

	status := progress.StatusDone
	if bag.HasErrors() {
		status = progress.StatusError
	}
	progress.Emit(opts.Progress, progress.Event{File: file.Path, Stage: progress.StageLex, Status: status, Elapsed: elapsed})
	return tokens, bag, false
}
