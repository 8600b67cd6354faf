package driver

import (
	"context"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"clex/internal/trace"
)

// BatchOptions configures TokenizeBatch.
type BatchOptions struct {
	Options
	// Jobs bounds concurrency; <= 0 means GOMAXPROCS.
	Jobs int
	// Progress receives queued/working/done/error events per file.
	Progress ProgressSink
}

// FileResult is the outcome for one path. Exactly one of Result and Err is set.
type FileResult struct {
	Path   string
	Result *TokenizeResult
	Err    error
}

// TokenizeBatch tokenizes every path on its own Lexer, concurrently.
// Results come back in input order. A file that cannot be loaded gets Err
// and does not stop the others; the returned error is only ctx's.
func TokenizeBatch(ctx context.Context, paths []string, opts BatchOptions) ([]FileResult, error) {
	results := make([]FileResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "batch", trace.ParentID(ctx))
	span.WithExtra("files", strconv.Itoa(len(paths)))
	defer span.End("")
	ctx = trace.WithSpan(ctx, span)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	jobs = min(jobs, len(paths))
	trace.Point(tracer, trace.ScopeWorker, "workers", strconv.Itoa(jobs), span.ID())

	for _, path := range paths {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// Результаты пишутся по уникальным индексам, мьютекс не нужен
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			began := time.Now()
			emit(opts.Progress, Event{File: path, Stage: StageScan, Status: StatusWorking})

			res, err := Tokenize(gctx, path, opts.Options)
			results[i] = FileResult{Path: path, Result: res, Err: err}

			evt := Event{File: path, Stage: StageScan, Elapsed: time.Since(began)}
			if err != nil {
				evt.Status = StatusError
				evt.Err = err
			} else {
				evt.Status = StatusDone
				evt.Tokens = len(res.Result.Tokens)
				evt.Errors = len(res.Result.Errors)
			}
			emit(opts.Progress, evt)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
