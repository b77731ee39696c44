package edit_test

import (
	"encoding/json"
	"strings"
	"testing"

	"sugarc/internal/edit"
	"sugarc/internal/source"
)

// makeSet создаёт набор правок над виртуальным файлом
func makeSet(input string) (*edit.Set, *source.File) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ts", []byte(input))
	file := fs.Get(fileID)
	return edit.NewSet(file), file
}

func span(file *source.File, start, end uint32) source.Span {
	return source.Span{File: file.ID, Start: start, End: end}
}

func TestApplyNoEdits(t *testing.T) {
	set, _ := makeSet("const x = 1;")
	code, changed := set.Apply()
	if changed || code != "const x = 1;" {
		t.Fatalf("empty set must pass through: %q changed=%v", code, changed)
	}
}

func TestApplySingleReplacement(t *testing.T) {
	input := "let value = old;"
	set, file := makeSet(input)
	set.Add(span(file, 12, 15), "new")
	code, changed := set.Apply()
	if !changed || code != "let value = new;" {
		t.Fatalf("got %q changed=%v", code, changed)
	}
}

func TestApplyDisjointReplacements(t *testing.T) {
	input := "aa bb cc"
	set, file := makeSet(input)
	set.Add(span(file, 6, 8), "CC")
	set.Add(span(file, 0, 2), "AA")
	code, changed := set.Apply()
	if !changed || code != "AA bb CC" {
		t.Fatalf("got %q changed=%v", code, changed)
	}
}

func TestApplyNestedInnerDropped(t *testing.T) {
	input := "wrap(inner)"
	set, file := makeSet(input)
	// внешняя правка уже включает переписанный внутренний текст
	set.Add(span(file, 0, 11), "OUTER")
	set.Add(span(file, 5, 10), "INNER")
	code, _ := set.Apply()
	if code != "OUTER" {
		t.Fatalf("nested inner edit must be dropped: %q", code)
	}
}

func TestApplyPartialOverlapLaterDropped(t *testing.T) {
	input := "abcdef"
	set, file := makeSet(input)
	set.Add(span(file, 0, 4), "X")
	set.Add(span(file, 2, 6), "Y")
	code, _ := set.Apply()
	if code != "Xef" {
		t.Fatalf("later-starting overlap must lose: %q", code)
	}
}

func TestApplyDeletion(t *testing.T) {
	input := "keep<_>rest"
	set, file := makeSet(input)
	set.Add(span(file, 4, 7), "")
	code, changed := set.Apply()
	if !changed || code != "keeprest" {
		t.Fatalf("got %q changed=%v", code, changed)
	}
}

func TestApplyInsertion(t *testing.T) {
	input := "ab"
	set, file := makeSet(input)
	set.Add(span(file, 1, 1), "X")
	code, changed := set.Apply()
	if !changed || code != "aXb" {
		t.Fatalf("got %q changed=%v", code, changed)
	}
}

func TestApplyInsertionBeforeReplacementAtSameStart(t *testing.T) {
	// вставка нулевой ширины в той же позиции, что и замена: вставка первой,
	// замена не поглощает её
	input := "f(x)"
	set, file := makeSet(input)
	set.Add(span(file, 2, 3), "y")    // x -> y
	set.Add(span(file, 2, 2), "pre(") // вставка перед x
	set.Add(span(file, 3, 3), ")")    // вставка после x
	code, _ := set.Apply()
	if code != "f(pre(y))" {
		t.Fatalf("got %q", code)
	}
}

func TestApplyIdenticalReplacementNotChanged(t *testing.T) {
	input := "same text"
	set, file := makeSet(input)
	set.Add(span(file, 0, 4), "same")
	code, changed := set.Apply()
	if changed {
		t.Fatalf("no-op replacement must report changed=false")
	}
	if code != input {
		t.Fatalf("pass-through must be byte-identical: %q", code)
	}
}

func TestApplyOutOfRangeDropped(t *testing.T) {
	input := "abc"
	set, file := makeSet(input)
	set.Add(span(file, 10, 20), "X")
	code, changed := set.Apply()
	if changed || code != input {
		t.Fatalf("out-of-range edit must be dropped: %q changed=%v", code, changed)
	}
}

func TestApplyWithMapEmitsSourceMap(t *testing.T) {
	input := "line one\nlet v = old;\n"
	set, file := makeSet(input)
	set.Add(span(file, 17, 20), "replacement")
	code, changed, srcMap := set.ApplyWithMap()
	if !changed || !strings.Contains(code, "replacement") {
		t.Fatalf("rewrite failed: %q", code)
	}
	if srcMap == nil {
		t.Fatalf("source map missing for a changed file")
	}

	var doc struct {
		Version  int      `json:"version"`
		Sources  []string `json:"sources"`
		Names    []string `json:"names"`
		Mappings string   `json:"mappings"`
	}
	if err := json.Unmarshal(srcMap, &doc); err != nil {
		t.Fatalf("source map is not valid JSON: %v", err)
	}
	if doc.Version != 3 {
		t.Fatalf("source map version wrong: %d", doc.Version)
	}
	if len(doc.Sources) != 1 || doc.Sources[0] != "test.ts" {
		t.Fatalf("sources wrong: %v", doc.Sources)
	}
	if doc.Mappings == "" {
		t.Fatalf("mappings must not be empty")
	}
	// две строки вывода — хотя бы один разделитель ';'
	if !strings.Contains(doc.Mappings, ";") {
		t.Fatalf("expected line separator in mappings: %q", doc.Mappings)
	}
}

func TestApplyWithMapUnchangedHasNoMap(t *testing.T) {
	set, _ := makeSet("plain")
	code, changed, srcMap := set.ApplyWithMap()
	if changed || srcMap != nil || code != "plain" {
		t.Fatalf("unchanged file must not produce a map")
	}
}
