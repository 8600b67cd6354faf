package driver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clex/internal/diag"
	"clex/internal/token"
	"clex/internal/trace"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.c", "\ufeffint x;\r\nx = 089;\r\n")

	res, err := Tokenize(context.Background(), path, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"x"}, res.Result.Identifiers)
	require.Len(t, res.Result.Errors, 1)
	assert.Equal(t, diag.LexIllegalOctal, res.Result.Errors[0].Code)
	assert.Equal(t, uint32(2), res.Result.Errors[0].Pos.Line)
	assert.True(t, res.HasErrors())
	assert.False(t, res.Cached)

	kinds := make([]token.Kind, 0, len(res.Result.Tokens))
	for _, tok := range res.Result.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{token.KwInt, token.Ident, token.Semicolon, token.Ident, token.Assign, token.Semicolon}, kinds)

	rep := res.Timer.Report()
	require.Len(t, rep.Phases, 2)
	assert.Equal(t, "load", rep.Phases[0].Name)
	assert.Equal(t, "scan", rep.Phases[1].Name)
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := Tokenize(context.Background(), filepath.Join(t.TempDir(), "nope.c"), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTokenizeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := TokenizeSource(ctx, "x", []byte("x"), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMaxDiagnosticsCapsOnlyTheBag(t *testing.T) {
	res, err := TokenizeSource(context.Background(), "mem", []byte("@ @ @ @"), Options{MaxDiagnostics: 2})
	require.NoError(t, err)
	assert.Len(t, res.Result.Errors, 4)
	assert.Equal(t, 2, res.Bag.Len())
	assert.Equal(t, 2, res.Bag.Dropped())
}

func TestReporterReceivesDiagnostics(t *testing.T) {
	var got []diag.Diagnostic
	rep := diag.ReporterFunc(func(d diag.Diagnostic) { got = append(got, d) })
	res, err := TokenizeSource(context.Background(), "mem", []byte("'' 0x"), Options{Reporter: rep})
	require.NoError(t, err)
	assert.Equal(t, res.Result.Errors, got)
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCache("clex", t.TempDir())
	require.NoError(t, err)

	src := []byte("while (i < 10) { s = s + \"a\\tb\"; i++; } 1abc")
	first, err := TokenizeSource(context.Background(), "one", src, Options{Cache: cache})
	require.NoError(t, err)
	assert.False(t, first.Cached)

	var reported int
	second, err := TokenizeSource(context.Background(), "two", src, Options{
		Cache:    cache,
		Reporter: diag.ReporterFunc(func(diag.Diagnostic) { reported++ }),
	})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Result, second.Result)
	assert.Equal(t, 1, reported)

	require.NoError(t, cache.DropAll())
	third, err := TokenizeSource(context.Background(), "three", src, Options{Cache: cache})
	require.NoError(t, err)
	assert.False(t, third.Cached)
}

func TestDiskCacheIgnoresOtherSchema(t *testing.T) {
	cache, err := OpenDiskCache("clex", t.TempDir())
	require.NoError(t, err)

	var key [32]byte
	key[0] = 1
	require.NoError(t, cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion + 1}))

	var payload DiskPayload
	hit, err := cache.Get(key, &payload)
	require.NoError(t, err)
	require.True(t, hit)
	_, ok := payload.restore(0)
	assert.False(t, ok)

	var nilCache *DiskCache
	hit, err = nilCache.Get(key, &payload)
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestTokenizeBatch(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.c", "int a;"),
		filepath.Join(dir, "missing.c"),
		writeFile(t, dir, "b.c", "b = 0x;"),
		writeFile(t, dir, "c.c", "c # ignored @"),
	}

	var mu sync.Mutex
	events := map[string][]Status{}
	sink := SinkFunc(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		events[e.File] = append(events[e.File], e.Status)
	})

	results, err := TokenizeBatch(context.Background(), paths, BatchOptions{Jobs: 2, Progress: sink})
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, r := range results {
		assert.Equal(t, paths[i], r.Path, "order preserved")
	}
	require.NoError(t, results[0].Err)
	assert.False(t, results[0].Result.HasErrors())
	require.Error(t, results[1].Err)
	assert.Nil(t, results[1].Result)
	require.NoError(t, results[2].Err)
	assert.True(t, results[2].Result.HasErrors())
	assert.Equal(t, []string{"c"}, results[3].Result.Result.Identifiers)

	assert.Equal(t, []Status{StatusQueued, StatusWorking, StatusDone}, events[paths[0]])
	assert.Equal(t, []Status{StatusQueued, StatusWorking, StatusError}, events[paths[1]])
}

func TestTokenizeBatchEmpty(t *testing.T) {
	results, err := TokenizeBatch(context.Background(), nil, BatchOptions{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestTokenizeBatchCancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.c", "a")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := TokenizeBatch(ctx, []string{path, path}, BatchOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokenizeEmitsTrace(t *testing.T) {
	var buf syncBuffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)

	_, err := TokenizeSource(ctx, "mem.c", []byte("a b"), Options{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "file:mem.c")
	assert.Contains(t, out, "scan (2 tokens, 0 errors)")
}

type syncBuffer struct {
	mu  sync.Mutex
	buf []byte
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}
