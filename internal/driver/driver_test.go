package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sugarc/internal/driver"
	"sugarc/internal/imports"
	"sugarc/internal/rewrite"
)

// writeTree раскладывает файлы по относительным путям в каталоге
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func TestRewriteFile(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.ts": "const r = a |> f;\n",
	})
	res, err := driver.RewriteFile(filepath.Join(dir, "a.ts"), rewrite.Options{})
	if err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if !res.Changed || !strings.Contains(res.Code, "__binop__") {
		t.Fatalf("rewrite failed: %q", res.Code)
	}
}

func TestRewriteFileMissing(t *testing.T) {
	if _, err := driver.RewriteFile(filepath.Join(t.TempDir(), "nope.ts"), rewrite.Options{}); err == nil {
		t.Fatalf("missing file must error")
	}
}

func TestRewriteDir(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"b.ts":                "const r = a |> f;\n",
		"a.ts":                "const x = 1;\n",
		"sub/c.tsx":           "const v = <div>x</div>;\n",
		"notes.md":            "not host code |> at all\n",
		"node_modules/dep.ts": "const skipped = a |> f;\n",
	})

	_, results, err := driver.RewriteDir(context.Background(), dir, rewrite.Options{}, nil, 2)
	if err != nil {
		t.Fatalf("rewrite dir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 host files, got %d", len(results))
	}
	// детерминированный порядок — сортировка по пути
	if filepath.Base(results[0].Path) != "a.ts" || filepath.Base(results[1].Path) != "b.ts" {
		t.Fatalf("results not sorted: %v, %v", results[0].Path, results[1].Path)
	}
	if results[0].Result.Changed {
		t.Fatalf("plain file must be unchanged")
	}
	if !results[1].Result.Changed || !strings.Contains(results[1].Result.Code, "__binop__") {
		t.Fatalf("operator file not rewritten: %q", results[1].Result.Code)
	}
	if results[2].Result.Changed {
		t.Fatalf("markup-only file must be unchanged")
	}
}

func TestRewriteDirEmpty(t *testing.T) {
	_, results, err := driver.RewriteDir(context.Background(), t.TempDir(), rewrite.Options{}, nil, 0)
	if err != nil || len(results) != 0 {
		t.Fatalf("empty dir: err=%v results=%v", err, results)
	}
}

func TestRewriteDirUsesCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("sugarc-test")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.ts": "const r = a |> f;\n",
	})

	_, first, err := driver.RewriteDir(context.Background(), dir, rewrite.Options{}, cache, 1)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first[0].Cached {
		t.Fatalf("first run must not hit the cache")
	}

	_, second, err := driver.RewriteDir(context.Background(), dir, rewrite.Options{}, cache, 1)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second[0].Cached {
		t.Fatalf("second run must hit the cache")
	}
	if second[0].Result.Code != first[0].Result.Code || second[0].Result.Changed != first[0].Result.Changed {
		t.Fatalf("cached result differs from fresh one")
	}

	// изменение содержимого меняет ключ
	writeTree(t, dir, map[string]string{
		"a.ts": "const r = b |> g;\n",
	})
	_, third, err := driver.RewriteDir(context.Background(), dir, rewrite.Options{}, cache, 1)
	if err != nil {
		t.Fatalf("third run: %v", err)
	}
	if third[0].Cached {
		t.Fatalf("changed content must miss the cache")
	}
}

func TestRewriteDirCacheKeyTracksRegistry(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("sugarc-test")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.ts": "import { $ } from \"sugar/hkt\";\nimport { MyF } from \"my/mod\";\ntype A = $<MyF, number>;\n",
	})

	_, first, err := driver.RewriteDir(context.Background(), dir, rewrite.Options{}, cache, 1)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	// со встроенным реестром MyF не отслеживается
	if first[0].Result.Changed {
		t.Fatalf("untracked type function must not resolve: %q", first[0].Result.Code)
	}

	reg := imports.DefaultRegistry()
	reg.Add("my/mod", "MyF", imports.Symbol{Kind: imports.SymbolTypeFunc, Canonical: "MyF", Concrete: "My"})
	_, second, err := driver.RewriteDir(context.Background(), dir, rewrite.Options{Registry: reg}, cache, 1)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second[0].Cached {
		t.Fatalf("extended registry must change the cache key")
	}
	if !second[0].Result.Changed || !strings.Contains(second[0].Result.Code, "My<number>") {
		t.Fatalf("tracked type function not resolved: %q", second[0].Result.Code)
	}
}

func TestDiskCacheRoundtrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("sugarc-test")
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	var key driver.Digest
	key[0] = 0x42

	var missed driver.DiskPayload
	if hit, err := cache.Get(key, &missed); err != nil || hit {
		t.Fatalf("empty cache must miss: hit=%v err=%v", hit, err)
	}

	payload := &driver.DiskPayload{Schema: 1, Code: "rewritten", Changed: true, Map: []byte(`{"version":3}`)}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got driver.DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil || !hit {
		t.Fatalf("get: hit=%v err=%v", hit, err)
	}
	if got.Code != "rewritten" || !got.Changed || string(got.Map) != `{"version":3}` {
		t.Fatalf("payload mismatch: %+v", got)
	}
}

func TestDiskCacheNilSafe(t *testing.T) {
	var cache *driver.DiskCache
	var key driver.Digest
	if err := cache.Put(key, &driver.DiskPayload{}); err != nil {
		t.Fatalf("nil cache Put must be a no-op: %v", err)
	}
	if hit, err := cache.Get(key, &driver.DiskPayload{}); err != nil || hit {
		t.Fatalf("nil cache Get must miss: hit=%v err=%v", hit, err)
	}
}

func TestTokenize(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.ts": "a |> b",
	})
	result, err := driver.Tokenize(filepath.Join(dir, "a.ts"), nil)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	var sawCustom bool
	for _, tok := range result.Tokens {
		if tok.IsCustomOperator() && tok.Text == "|>" {
			sawCustom = true
		}
	}
	if !sawCustom {
		t.Fatalf("merged operator missing from token dump")
	}
}
