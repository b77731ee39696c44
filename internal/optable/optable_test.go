package optable_test

import (
	"os"
	"path/filepath"
	"testing"

	"sugarc/internal/optable"
)

func TestDefaultTable(t *testing.T) {
	table := optable.Default()
	pipe, ok := table.Lookup("|>")
	if !ok || pipe.Precedence != 40 || pipe.Assoc != optable.AssocLeft {
		t.Fatalf("|> definition wrong: %+v ok=%v", pipe, ok)
	}
	cons, ok := table.Lookup("::")
	if !ok || cons.Precedence != 60 || cons.Assoc != optable.AssocRight {
		t.Fatalf(":: definition wrong: %+v ok=%v", cons, ok)
	}
	if table.MaxSymbolLen() != 2 {
		t.Fatalf("max symbol len wrong: %d", table.MaxSymbolLen())
	}
}

func TestTransformGenericForm(t *testing.T) {
	d := optable.Def{Symbol: "|>"}
	got := d.Transform("a", "f")
	if got != `__binop__(a, "|>", f)` {
		t.Fatalf("generic transform wrong: %q", got)
	}
}

func TestTransformCallForm(t *testing.T) {
	d := optable.Def{Symbol: "<+>", Call: "combine"}
	got := d.Transform("a", "b")
	if got != "combine(a, b)" {
		t.Fatalf("call transform wrong: %q", got)
	}
}

func TestRegisterReplacesAndIgnoresEmpty(t *testing.T) {
	table := optable.NewTable()
	table.Register(optable.Def{Symbol: "|>", Precedence: 10})
	table.Register(optable.Def{Symbol: "|>", Precedence: 99})
	table.Register(optable.Def{Symbol: ""})
	if table.Len() != 1 {
		t.Fatalf("expected one definition, got %d", table.Len())
	}
	d, _ := table.Lookup("|>")
	if d.Precedence != 99 {
		t.Fatalf("re-registration must replace, got %d", d.Precedence)
	}
}

func TestSymbolsDeterministic(t *testing.T) {
	table := optable.Default()
	syms := table.Symbols()
	if len(syms) != 2 || syms[0] != "::" || syms[1] != "|>" {
		t.Fatalf("symbols not sorted: %v", syms)
	}
}

// writeManifest пишет sugar.toml в каталог и возвращает его путь
func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "sugar.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[[operators]]
symbol = "<+>"
precedence = 50
assoc = "left"
call = "combine"

[[modules]]
name = "my/hkt"

[[modules.symbols]]
name = "TreeF"
kind = "typefunc"
concrete = "Tree"
`)
	cfg, err := optable.LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Operators) != 1 || cfg.Operators[0].Symbol != "<+>" || cfg.Operators[0].Call != "combine" {
		t.Fatalf("operators wrong: %+v", cfg.Operators)
	}
	if len(cfg.Modules) != 1 || cfg.Modules[0].Symbols[0].Concrete != "Tree" {
		t.Fatalf("modules wrong: %+v", cfg.Modules)
	}

	table := optable.Default()
	table.Apply(cfg)
	d, ok := table.Lookup("<+>")
	if !ok || d.Precedence != 50 || d.Assoc != optable.AssocLeft || d.Call != "combine" {
		t.Fatalf("applied operator wrong: %+v ok=%v", d, ok)
	}
}

func TestLoadConfigRejectsBadAssoc(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[[operators]]
symbol = "<+>"
assoc = "sideways"
`)
	if _, err := optable.LoadConfig(path); err == nil {
		t.Fatalf("bad assoc must be rejected")
	}
}

func TestLoadConfigRejectsEmptySymbol(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[[operators]]
precedence = 10
`)
	if _, err := optable.LoadConfig(path); err == nil {
		t.Fatalf("missing symbol must be rejected")
	}
}

func TestLoadConfigRejectsUnknownSymbolKind(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[[modules]]
name = "m"

[[modules.symbols]]
name = "X"
kind = "wizard"
`)
	if _, err := optable.LoadConfig(path); err == nil {
		t.Fatalf("unknown symbol kind must be rejected")
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, found, err := optable.FindManifest(nested)
	if err != nil || !found {
		t.Fatalf("manifest not found: %v found=%v", err, found)
	}
	if path != filepath.Join(root, "sugar.toml") {
		t.Fatalf("wrong manifest path: %q", path)
	}
}

func TestFindManifestMiss(t *testing.T) {
	_, found, err := optable.FindManifest(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatalf("manifest must not be found in an empty tree")
	}
}
