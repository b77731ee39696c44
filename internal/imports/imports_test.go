package imports_test

import (
	"testing"

	"sugarc/internal/imports"
	"sugarc/internal/lexer"
	"sugarc/internal/optable"
	"sugarc/internal/source"
	"sugarc/internal/stream"
)

// trackSource прогоняет трекер по исходной строке с реестром по умолчанию
func trackSource(input string) *imports.Tracked {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ts", []byte(input))
	file := fs.Get(fileID)
	st := stream.New(file, lexer.Tokenize(file))
	return imports.Track(st, imports.DefaultRegistry())
}

func TestTrackOperatorImport(t *testing.T) {
	tracked := trackSource(`import { $ } from "sugar/hkt";`)
	sym, ok := tracked.LookupKind("$", imports.SymbolOperator)
	if !ok {
		t.Fatalf("$ not tracked as operator")
	}
	if sym.Canonical != "Kind" {
		t.Fatalf("canonical name wrong: %q", sym.Canonical)
	}
}

func TestTrackTypeFuncImport(t *testing.T) {
	tracked := trackSource(`import { OptionF } from "sugar/hkt/option";`)
	sym, ok := tracked.LookupKind("OptionF", imports.SymbolTypeFunc)
	if !ok || sym.Concrete != "Option" {
		t.Fatalf("OptionF not tracked: %+v ok=%v", sym, ok)
	}
	if sym.Parameterized {
		t.Fatalf("OptionF must not be parameterized")
	}
}

func TestTrackParameterizedTypeFunc(t *testing.T) {
	tracked := trackSource(`import { EitherF } from "sugar/hkt/either";`)
	sym, ok := tracked.LookupKind("EitherF", imports.SymbolTypeFunc)
	if !ok || !sym.Parameterized || sym.Concrete != "Either" {
		t.Fatalf("EitherF tracking wrong: %+v ok=%v", sym, ok)
	}
}

func TestTrackAlias(t *testing.T) {
	tracked := trackSource(`import { OptionF as OF } from "sugar/hkt/option";`)
	if _, ok := tracked.Lookup("OptionF"); ok {
		t.Fatalf("original name must not be tracked when aliased")
	}
	sym, ok := tracked.Lookup("OF")
	if !ok || sym.Concrete != "Option" {
		t.Fatalf("alias OF not tracked: %+v ok=%v", sym, ok)
	}
}

func TestTrackTypeOnlyImport(t *testing.T) {
	tracked := trackSource(`import type { ListF } from "sugar/hkt/list";`)
	if _, ok := tracked.LookupKind("ListF", imports.SymbolTypeFunc); !ok {
		t.Fatalf("type-only import must still be tracked")
	}
}

func TestTrackDecorators(t *testing.T) {
	tracked := trackSource(`import { instance, derive } from "sugar/macros";`)
	if _, ok := tracked.LookupKind("instance", imports.SymbolDecorator); !ok {
		t.Fatalf("instance not tracked")
	}
	if _, ok := tracked.LookupKind("derive", imports.SymbolDecorator); !ok {
		t.Fatalf("derive not tracked")
	}
}

func TestTrackUnknownModuleIgnored(t *testing.T) {
	tracked := trackSource(`import { OptionF } from "somewhere/else";`)
	if tracked.Len() != 0 {
		t.Fatalf("unknown module must not contribute symbols")
	}
}

func TestTrackUnknownSymbolIgnored(t *testing.T) {
	tracked := trackSource(`import { Missing } from "sugar/hkt/option";`)
	if tracked.Len() != 0 {
		t.Fatalf("unknown export must not be tracked")
	}
}

func TestTrackDefaultImportIgnored(t *testing.T) {
	tracked := trackSource(`import hkt from "sugar/hkt";`)
	if tracked.Len() != 0 {
		t.Fatalf("default imports are not trackable")
	}
}

func TestTrackNestedImportIgnored(t *testing.T) {
	// import внутри блока — не top-level
	tracked := trackSource(`function f() { import { $ } from "sugar/hkt"; }`)
	if tracked.Len() != 0 {
		t.Fatalf("non-top-level import must be ignored")
	}
}

func TestTrackKindMismatch(t *testing.T) {
	tracked := trackSource(`import { $ } from "sugar/hkt";`)
	if _, ok := tracked.LookupKind("$", imports.SymbolTypeFunc); ok {
		t.Fatalf("kind-filtered lookup must miss on wrong kind")
	}
}

func TestRegistryApplyConfig(t *testing.T) {
	reg := imports.DefaultRegistry()
	reg.Apply(optable.Config{
		Modules: []optable.ModuleConfig{{
			Name: "my/hkt",
			Symbols: []optable.SymbolConfig{
				{Name: "TreeF", Kind: "typefunc", Concrete: "Tree"},
				{Name: "memo", Kind: "decorator"},
			},
		}},
	})
	exports, ok := reg.Module("my/hkt")
	if !ok {
		t.Fatalf("configured module missing")
	}
	if exports["TreeF"].Concrete != "Tree" || exports["TreeF"].Kind != imports.SymbolTypeFunc {
		t.Fatalf("configured typefunc wrong: %+v", exports["TreeF"])
	}
	if exports["memo"].Kind != imports.SymbolDecorator {
		t.Fatalf("configured decorator wrong: %+v", exports["memo"])
	}
}
