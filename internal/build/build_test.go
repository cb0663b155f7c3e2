package build

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nalgeon/be"

	"github.com/seam-lang/seam/internal/cli"
	cerrors "github.com/seam-lang/seam/internal/errors"
)

func writeTempFile(t *testing.T, dir, name, contents string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	return p
}

func testConfig(jobs int) *cli.Config {
	cfg := cli.DefaultConfig()
	cfg.Jobs = jobs
	return cfg
}

func TestCompileKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeTempFile(t, dir, "ok.seam", "type Meters = f64\nfn main(d: Meters) { let x = d }"),
		writeTempFile(t, dir, "syntax.seam", "let x = 1"),
		writeTempFile(t, dir, "semantic.seam", "fn f(p: Point) {}"),
		writeTempFile(t, dir, "ok2.seam", "extern fn puts(s: string)"),
	}

	results, err := Compile(context.Background(), testConfig(2), nil, paths)
	be.Err(t, err, nil)
	be.Equal(t, len(results), len(paths))

	for i, r := range results {
		be.Equal(t, r.Path, paths[i])
		be.True(t, r.Source != nil)
	}

	be.Err(t, results[0].Err, nil)
	be.True(t, results[0].Root != nil)
	_, ok := results[0].Module.Lookup("Meters")
	be.True(t, ok)

	be.Equal(t, cerrors.CategoryOf(results[1].Err), cerrors.CategorySyntax)
	be.True(t, results[1].Root == nil)

	be.Equal(t, cerrors.CategoryOf(results[2].Err), cerrors.CategorySemantic)
	be.True(t, results[2].Root == nil)

	be.Err(t, results[3].Err, nil)
}

func TestCompileGivesEachUnitItsOwnModule(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeTempFile(t, dir, "a.seam", "type T {}"),
		writeTempFile(t, dir, "b.seam", "type T = i32"),
	}

	results, err := Compile(context.Background(), testConfig(4), nil, paths)
	be.Err(t, err, nil)
	be.Err(t, results[0].Err, nil)
	be.Err(t, results[1].Err, nil)
	be.True(t, results[0].Module != results[1].Module)
	be.Equal(t, results[0].Module.Name, "main")
}

func TestCompileReadError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.seam")

	results, err := Compile(context.Background(), testConfig(1), nil, []string{missing})
	be.Err(t, err, nil)
	be.Err(t, results[0].Err, fs.ErrNotExist)
	be.True(t, results[0].Source == nil)
	be.True(t, !strings.Contains(results[0].Err.Error(), "syntax"))
}

func TestCompileCancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "a.seam", "fn main() {}")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Compile(ctx, testConfig(1), nil, []string{path})
	be.Err(t, err, context.Canceled)
}

func TestCompileReusesUnchangedFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "a.seam", "fn main() {}")

	var buf bytes.Buffer
	c := NewCompiler(testConfig(1), cli.NewLoggerTo(&buf, true, true))

	first, err := c.Compile(context.Background(), []string{path})
	be.Err(t, err, nil)
	second, err := c.Compile(context.Background(), []string{path})
	be.Err(t, err, nil)
	be.True(t, first[0].Root == second[0].Root)
	be.Equal(t, c.Cache().Stats().Hits, int64(1))
	be.True(t, strings.Contains(buf.String(), "[INFO]"))
	be.True(t, strings.Contains(buf.String(), "unchanged, reusing previous result"))

	writeTempFile(t, dir, "a.seam", "fn main() { return }")
	third, err := c.Compile(context.Background(), []string{path})
	be.Err(t, err, nil)
	be.True(t, third[0].Root != first[0].Root)
	be.Equal(t, c.Cache().Stats().Misses, int64(2))
}

func TestInvalidModuleVersion(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "a.seam", "fn main() {}")

	cfg := testConfig(1)
	cfg.Module.Version = "not-a-version"
	results, err := Compile(context.Background(), cfg, nil, []string{path})
	be.Err(t, err, nil)
	be.True(t, results[0].Err != nil)
	be.True(t, strings.Contains(results[0].Err.Error(), "invalid version"))
}

func TestResultCacheEvictsLeastRecent(t *testing.T) {
	c := NewResultCache(2)
	c.Put("k1", Result{Path: "one"})
	c.Put("k2", Result{Path: "two"})
	_, ok := c.Get("k1")
	be.True(t, ok)

	c.Put("k3", Result{Path: "three"}) // evicts k2
	_, ok = c.Get("k2")
	be.True(t, !ok)
	r, ok := c.Get("k1")
	be.True(t, ok)
	be.Equal(t, r.Path, "one")

	stats := c.Stats()
	be.Equal(t, stats.Entries, int64(2))
	be.Equal(t, stats.Evictions, int64(1))
}

func TestSnapshotChanged(t *testing.T) {
	dir := t.TempDir()
	a := writeTempFile(t, dir, "a.seam", "fn a() {}")
	b := writeTempFile(t, dir, "b.seam", "fn b() {}")
	c := filepath.Join(dir, "c.seam")
	paths := []string{a, b, c}

	snap1, err := TakeSnapshot(paths)
	be.Err(t, err, nil)
	be.Equal(t, len(snap1), 2)

	// No changes.
	snap2, err := TakeSnapshot(paths)
	be.Err(t, err, nil)
	be.Equal(t, len(snap1.Changed(snap2)), 0)

	// Touch without a content change.
	later := time.Now().Add(time.Hour)
	be.Err(t, os.Chtimes(a, later, later), nil)
	snap3, err := TakeSnapshot(paths)
	be.Err(t, err, nil)
	be.Equal(t, len(snap2.Changed(snap3)), 0)

	// Modify, add and remove.
	writeTempFile(t, dir, "a.seam", "fn a() { return }")
	writeTempFile(t, dir, "c.seam", "fn c() {}")
	be.Err(t, os.Remove(b), nil)
	snap4, err := TakeSnapshot(paths)
	be.Err(t, err, nil)
	be.Equal(t, snap3.Changed(snap4), []string{a, b, c})
}

func TestWatchRecompilesChangedFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "a.seam", "fn main() {}")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batches := make(chan []Result, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, testConfig(1), nil, []string{path}, func(rs []Result) { batches <- rs })
	}()

	next := func() []Result {
		t.Helper()
		select {
		case rs := <-batches:
			return rs
		case err := <-done:
			t.Skip("watcher unavailable: ", err)
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for compile results")
		}
		return nil
	}

	first := next()
	be.Equal(t, len(first), 1)
	be.Err(t, first[0].Err, nil)

	// replace the file atomically so no half-written state is seen
	tmp := writeTempFile(t, dir, "a.seam.tmp", "let x = 1")
	be.Err(t, os.Rename(tmp, path), nil)
	second := next()
	be.Equal(t, len(second), 1)
	be.Equal(t, second[0].Path, path)
	be.Equal(t, cerrors.CategoryOf(second[0].Err), cerrors.CategorySyntax)

	cancel()
	select {
	case err := <-done:
		be.Err(t, err, nil)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
