package decorator_test

import (
	"testing"

	"sugarc/internal/decorator"
	"sugarc/internal/edit"
	"sugarc/internal/imports"
	"sugarc/internal/lexer"
	"sugarc/internal/optable"
	"sugarc/internal/source"
	"sugarc/internal/stream"
)

const macroImport = "import { instance, derive } from \"sugar/macros\";\n"

// applyDecorators прогоняет фазу декораторов над исходной строкой
func applyDecorators(t *testing.T, input string) (string, bool) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ts", []byte(input))
	file := fs.Get(fileID)

	st := stream.New(file, lexer.TokenizeMerged(file, optable.Default()))
	tracked := imports.Track(st, imports.DefaultRegistry())
	set := edit.NewSet(file)
	decorator.Apply(st, tracked, set)
	return set.Apply()
}

func expectDecorators(t *testing.T, input, want string) {
	t.Helper()
	got, _ := applyDecorators(t, input)
	if got != want {
		t.Fatalf("decorator mismatch:\n  input %q\n  got   %q\n  want  %q", input, got, want)
	}
}

func TestVariableDecorator(t *testing.T) {
	expectDecorators(t,
		macroImport+"@instance(Functor) const fmap = impl;",
		macroImport+"const fmap = instance(Functor, impl);")
}

func TestVariableDecoratorBare(t *testing.T) {
	expectDecorators(t,
		macroImport+"@derive const v = init;",
		macroImport+"const v = derive(init);")
}

func TestStackedDecoratorsFirstListedOutermost(t *testing.T) {
	expectDecorators(t,
		macroImport+"@instance(A) @derive(B) const v = init;",
		macroImport+"const v = instance(A, derive(B, init));")
}

func TestDecoratorOnOwnLine(t *testing.T) {
	// перевод строки после декоратора не оставляет пустую строку
	expectDecorators(t,
		macroImport+"@derive\nconst v = init;",
		macroImport+"const v = derive(init);")
}

func TestDecoratorOnExportedVariable(t *testing.T) {
	expectDecorators(t,
		macroImport+"@instance(Monad) export const bind = impl;",
		macroImport+"export const bind = instance(Monad, impl);")
}

func TestDecoratorMultiArg(t *testing.T) {
	expectDecorators(t,
		macroImport+"@instance(Functor, opts) const fmap = impl;",
		macroImport+"const fmap = instance(Functor, opts, impl);")
}

func TestDecoratorComplexInitializer(t *testing.T) {
	expectDecorators(t,
		macroImport+"@derive const v = { a: f(1), b: [2, 3] };",
		macroImport+"const v = derive({ a: f(1), b: [2, 3] });")
}

func TestDecoratorInitializerWithStringSemicolon(t *testing.T) {
	// ';' внутри строки не завершает инициализатор
	expectDecorators(t,
		macroImport+"@derive const v = f(\"a;b\");",
		macroImport+"const v = derive(f(\"a;b\"));")
}

func TestDecoratorInitializerToEOF(t *testing.T) {
	expectDecorators(t,
		macroImport+"@derive const v = init",
		macroImport+"const v = derive(init)")
}

func TestInterfaceDecorator(t *testing.T) {
	expectDecorators(t,
		macroImport+"@derive(Eq) interface P { x: number; }",
		macroImport+"interface P { x: number; }\nderive(Eq, \"P\");")
}

func TestInterfaceDecoratorStacked(t *testing.T) {
	expectDecorators(t,
		macroImport+"@derive(Eq) @instance(Show) interface P { x: number; }",
		macroImport+"interface P { x: number; }\nderive(Eq, \"P\");\ninstance(Show, \"P\");")
}

func TestUntrackedDecoratorUntouched(t *testing.T) {
	input := macroImport + "@unknown const v = init;"
	expectDecorators(t, input, input)
}

func TestDecoratorWithoutImportUntouched(t *testing.T) {
	input := "@instance(Functor) const fmap = impl;"
	expectDecorators(t, input, input)
}

func TestDecoratorOnUnsupportedTargetUntouched(t *testing.T) {
	input := macroImport + "@derive class C {}"
	expectDecorators(t, input, input)
}

func TestHalfTrackedStackUntouched(t *testing.T) {
	// смешанная группа не переписывается наполовину
	input := macroImport + "@derive @unknown const v = init;"
	expectDecorators(t, input, input)
}

func TestDecoratorMissingInitializerUntouched(t *testing.T) {
	input := macroImport + "@derive const v;"
	expectDecorators(t, input, input)
}

func TestAtInStringUntouched(t *testing.T) {
	input := macroImport + "const s = \"@derive\";"
	expectDecorators(t, input, input)
}
