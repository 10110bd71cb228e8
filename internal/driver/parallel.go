package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"quill/internal/diag"
	"quill/internal/progress"
	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/trace"
)

// SourceExt is the extension of quill source files.
const SourceExt = ".ql"

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string         // путь, как его нашёл обход каталога
	FileID source.FileID  // ID файла в FileSet; не задан, если Loaded == false
	Loaded bool           // файл прочитан
	Tokens []syntax.Token // токены файла
	Bag    *diag.Bag      // диагностики
	Cached bool           // токены взяты из дискового кэша
}

// ListSourceFiles возвращает отсортированный список всех *.ql файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.ql файлы в директории параллельно.
// Results follow the sorted file order regardless of scheduling.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "tokenize-dir")
	defer span.End(dir)

	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	for _, path := range files {
		progress.Emit(opts.Progress, progress.Event{File: path, Stage: progress.StageLoad, Status: progress.StatusQueued})
	}

	// Предзагрузка идёт последовательно: FileSet не потокобезопасен
	loadSpan, _ := trace.StartSpan(ctx, trace.ScopePass, "load")
	progress.Emit(opts.Progress, progress.Event{Stage: progress.StageLoad, Status: progress.StatusWorking})
	loadStart := time.Now()
	timerIdx := opts.Timer.Begin("load")
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		if _, err := fileSet.Load(path); err != nil {
			loadErrors[path] = err
		}
	}
	opts.Timer.End(timerIdx, "")
	loadSpan.End("")
	progress.Emit(opts.Progress, progress.Event{Stage: progress.StageLoad, Status: progress.StatusDone, Elapsed: time.Since(loadStart)})

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]TokenizeDirResult, len(files))

	lexSpan, lexCtx := trace.StartSpan(ctx, trace.ScopePass, "lex")
	progress.Emit(opts.Progress, progress.Event{Stage: progress.StageLex, Status: progress.StatusWorking})

	g, gctx := errgroup.WithContext(lexCtx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.MaxDiagnostics)
				diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()).Emit()
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				progress.Emit(opts.Progress, progress.Event{File: path, Stage: progress.StageLoad, Status: progress.StatusError, Err: loadErr})
				return nil
			}

			fileID, _ := fileSet.GetLatest(path)
			tokens, bag, cached := lexFile(gctx, fileSet.Get(fileID), opts)
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Loaded: true,
				Tokens: tokens,
				Bag:    bag,
				Cached: cached,
			}
			return nil
		})
	}

	err = g.Wait()
	lexSpan.End("")
	status := progress.StatusDone
	if err != nil {
		status = progress.StatusError
	}
	progress.Emit(opts.Progress, progress.Event{Stage: progress.StageLex, Status: status, Err: err})
	return fileSet, results, err
}
