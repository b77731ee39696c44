package infix_test

import (
	"testing"

	"sugarc/internal/edit"
	"sugarc/internal/infix"
	"sugarc/internal/lexer"
	"sugarc/internal/optable"
	"sugarc/internal/source"
	"sugarc/internal/stream"
)

// applyInfix прогоняет инфиксную фазу над исходной строкой
func applyInfix(t *testing.T, input string, table *optable.Table) (string, bool) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ts", []byte(input))
	file := fs.Get(fileID)

	st := stream.New(file, lexer.TokenizeMerged(file, table))
	set := edit.NewSet(file)
	infix.Apply(st, table, set)
	return set.Apply()
}

func expectInfix(t *testing.T, input, want string) {
	t.Helper()
	got, _ := applyInfix(t, input, optable.Default())
	if got != want {
		t.Fatalf("infix mismatch:\n  input %q\n  got   %q\n  want  %q", input, got, want)
	}
}

func TestSingleApplication(t *testing.T) {
	expectInfix(t,
		"const r = a |> f;",
		`const r = __binop__(a, "|>", f);`)
}

func TestLeftAssociativeChain(t *testing.T) {
	expectInfix(t,
		"const r = a |> f |> g;",
		`const r = __binop__(__binop__(a, "|>", f), "|>", g);`)
}

func TestRightAssociativeChain(t *testing.T) {
	expectInfix(t,
		"const r = a :: b :: c;",
		`const r = __binop__(a, "::", __binop__(b, "::", c));`)
}

func TestRelativePrecedence(t *testing.T) {
	// '::' (60) связывает сильнее '|>' (40)
	expectInfix(t,
		"const r = a |> b :: c |> d;",
		`const r = __binop__(__binop__(a, "|>", __binop__(b, "::", c)), "|>", d);`)
}

func TestCallFormOperator(t *testing.T) {
	table := optable.Default()
	table.Register(optable.Def{Symbol: "<+>", Precedence: 50, Assoc: optable.AssocLeft, Call: "combine"})
	got, _ := applyInfix(t, "const r = a <+> b;", table)
	want := "const r = combine(a, b);"
	if got != want {
		t.Fatalf("call form mismatch:\n  got  %q\n  want %q", got, want)
	}
}

func TestOperandExtendsAcrossArithmetic(t *testing.T) {
	expectInfix(t,
		"const r = a + 1 |> f;",
		`const r = __binop__(a + 1, "|>", f);`)
}

func TestOperandStopsAtComma(t *testing.T) {
	expectInfix(t,
		"h(a |> f, b);",
		`h(__binop__(a, "|>", f), b);`)
}

func TestCallOperand(t *testing.T) {
	expectInfix(t,
		"const r = xs |> map(f) |> filter(g);",
		`const r = __binop__(__binop__(xs, "|>", map(f)), "|>", filter(g));`)
}

func TestNestedChainInsideOperand(t *testing.T) {
	// вложенная цепочка в скобках операнда переписывается за тот же проход
	expectInfix(t,
		"const r = x |> f(a :: b);",
		`const r = __binop__(x, "|>", f(__binop__(a, "::", b)));`)
}

func TestStringOperandPreserved(t *testing.T) {
	expectInfix(t,
		`const r = "a" |> f;`,
		`const r = __binop__("a", "|>", f);`)
}

func TestOperatorInsideStringUntouched(t *testing.T) {
	input := `const s = "a |> b";`
	expectInfix(t, input, input)
}

func TestOperatorInTypeAliasUntouched(t *testing.T) {
	input := "type P = A |> B;"
	expectInfix(t, input, input)
}

func TestOperatorInInterfaceUntouched(t *testing.T) {
	input := "interface I { p: A |> B; }"
	expectInfix(t, input, input)
}

func TestOperatorInAnnotationUntouched(t *testing.T) {
	expectInfix(t,
		"const v: A |> B = a |> f;",
		`const v: A |> B = __binop__(a, "|>", f);`)
}

func TestOperatorAfterReturnTypeAnnotation(t *testing.T) {
	expectInfix(t,
		"function h(x: number): R { return x |> f; }",
		`function h(x: number): R { return __binop__(x, "|>", f); }`)
}

func TestEmptyLeftOperandAborts(t *testing.T) {
	input := "const r = (|> f);"
	expectInfix(t, input, input)
}

func TestEmptyRightOperandAborts(t *testing.T) {
	input := "const r = a |> ;"
	expectInfix(t, input, input)
}

func TestTernaryColonIsExpression(t *testing.T) {
	expectInfix(t,
		"const r = c ? a |> f : b;",
		`const r = c ? __binop__(a, "|>", f) : b;`)
}

func TestEmptyTableNoop(t *testing.T) {
	got, changed := applyInfix(t, "const r = a |> f;", optable.NewTable())
	if changed || got != "const r = a |> f;" {
		t.Fatalf("empty table must be a no-op: %q changed=%v", got, changed)
	}
}
