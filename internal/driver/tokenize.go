package driver

import (
	"context"
	"fmt"
	"strconv"

	"clex/internal/diag"
	"clex/internal/lexer"
	"clex/internal/observ"
	"clex/internal/source"
	"clex/internal/trace"
)

// Options configures a single-file run.
type Options struct {
	// MaxDiagnostics caps the display bag; 0 means no cap.
	// Result.Errors always holds every error.
	MaxDiagnostics int
	// Reporter receives every lexical diagnostic as it is found.
	Reporter diag.Reporter
	// Cache, when set, is consulted by content hash before scanning.
	Cache *DiskCache
}

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Result  lexer.Result
	Bag     *diag.Bag // первые MaxDiagnostics ошибок, для вывода
	Timer   *observ.Timer
	Cached  bool
}

// HasErrors reports whether the file had any lexical error.
func (r *TokenizeResult) HasErrors() bool {
	return r != nil && r.Result.HasErrors()
}

// Tokenize loads path from disk and scans it.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "file:"+path, trace.ParentID(ctx))
	defer span.End("")
	ctx = trace.WithSpan(ctx, span)

	timer := observ.NewTimer()
	fs := source.NewFileSet()

	idx := timer.Begin("load")
	load := trace.Begin(tracer, trace.ScopePhase, "load", span.ID())
	fileID, err := fs.Load(path)
	load.End("")
	if err != nil {
		timer.End(idx, "failed")
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)
	timer.End(idx, fmt.Sprintf("%d bytes", len(file.Content)))

	res, err := scanFile(ctx, fs, file, timer, opts)
	if err != nil {
		return nil, err
	}
	span.WithExtra("tokens", strconv.Itoa(len(res.Result.Tokens))).
		WithExtra("errors", strconv.Itoa(len(res.Result.Errors)))
	return res, nil
}

// TokenizeSource scans an in-memory source under the given display name.
func TokenizeSource(ctx context.Context, name string, src []byte, opts Options) (*TokenizeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "file:"+name, trace.ParentID(ctx))
	defer span.End("")
	ctx = trace.WithSpan(ctx, span)

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, src))
	return scanFile(ctx, fs, file, observ.NewTimer(), opts)
}

func scanFile(ctx context.Context, fs *source.FileSet, file *source.File, timer *observ.Timer, opts Options) (*TokenizeResult, error) {
	tracer := trace.FromContext(ctx)
	scan := trace.Begin(tracer, trace.ScopePhase, "scan", trace.ParentID(ctx))

	idx := timer.Begin("scan")
	result, cached, err := scanOrLoad(file, opts)
	if err != nil {
		timer.End(idx, "failed")
		scan.End(err.Error())
		return nil, err
	}
	note := fmt.Sprintf("%d tokens, %d errors", len(result.Tokens), len(result.Errors))
	if cached {
		note += ", cached"
	}
	timer.End(idx, note)
	scan.WithExtra("cached", strconv.FormatBool(cached)).End(note)

	bag := diag.NewBag(opts.MaxDiagnostics)
	for _, d := range result.Errors {
		bag.Add(d)
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Result:  result,
		Bag:     bag,
		Timer:   timer,
		Cached:  cached,
	}, nil
}

func scanOrLoad(file *source.File, opts Options) (lexer.Result, bool, error) {
	if opts.Cache != nil {
		var payload DiskPayload
		hit, err := opts.Cache.Get(file.Hash, &payload)
		if err != nil {
			return lexer.Result{}, false, err
		}
		if hit {
			if res, ok := payload.restore(file.ID); ok {
				// репортер должен увидеть то же, что и при реальном сканировании
				if opts.Reporter != nil {
					for _, d := range res.Errors {
						opts.Reporter.Report(d)
					}
				}
				return res, true, nil
			}
		}
	}

	res := lexer.New(file, lexer.Options{Reporter: opts.Reporter}).Tokenize()

	if opts.Cache != nil {
		if err := opts.Cache.Put(file.Hash, newDiskPayload(res)); err != nil {
			return lexer.Result{}, false, fmt.Errorf("cache put: %w", err)
		}
	}
	return res, false, nil
}
