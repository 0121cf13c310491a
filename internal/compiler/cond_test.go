package compiler_test

import (
	"strings"
	"testing"

	"cppemit/internal/ast"
	"cppemit/internal/compiler"
	"cppemit/internal/sample"
)

func calls(names ...string) []ast.Expr {
	out := make([]ast.Expr, len(names))
	for i, name := range names {
		out[i] = ast.Call(ast.Ident(name))
	}
	return out
}

func TestLoweredIfWithPlaceholder(t *testing.T) {
	ctx := newCtx()
	got := compiler.EmitExpr(ctx, ast.If(ast.Ident("c"), calls("a", "b"), calls("d")))
	if got != "(_1 ? nullptr : nullptr)" {
		t.Fatalf("unexpected value %q", got)
	}
	want := []string{
		"bool _1 = false;",
		"if (c) {",
		"  _1 = true;",
		"  a();",
		"  b();",
		"} else {",
		"  d();",
		"}",
	}
	lines := ctx.Pending()
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Fatalf("pending mismatch:\n%s", strings.Join(lines, "\n"))
	}
	if len(ctx.Pending()) != 0 {
		t.Fatalf("Pending should drain the queue")
	}
}

func TestLoweredIfWithoutElse(t *testing.T) {
	ctx := newCtx()
	compiler.EmitExpr(ctx, ast.If(ast.Ident("c"), calls("a", "b"), nil))
	lines := ctx.Pending()
	if lines[len(lines)-1] != "}" {
		t.Fatalf("unexpected last line %q", lines[len(lines)-1])
	}
	for _, line := range lines {
		if strings.Contains(line, "else") {
			t.Fatalf("else block emitted for empty else list:\n%s", strings.Join(lines, "\n"))
		}
	}
}

func TestLoweredIfKeepsBranchOrder(t *testing.T) {
	ctx := newCtx()
	compiler.EmitExpr(ctx, ast.If(ast.Ident("c"), calls("t1", "t2", "t3"), calls("e1", "e2")))
	text := strings.Join(ctx.Pending(), "\n")
	order := []string{"t1()", "t2()", "t3()", "} else {", "e1()", "e2()"}
	last := -1
	for _, s := range order {
		idx := strings.Index(text, s)
		if idx <= last {
			t.Fatalf("%q out of order:\n%s", s, text)
		}
		last = idx
	}
	if strings.Count(text, ";") != 1+1+3+2 {
		t.Fatalf("unexpected statement count:\n%s", text)
	}
}

func TestStepBindsResults(t *testing.T) {
	out := emitFunc(t, compiler.DefaultOptions(), sample.Step())
	want := "int64_t step(int64_t n, std::vector< int64_t > trace) {\n" +
		"  bool _1 = false;\n" +
		"  int64_t _2{};\n" +
		"  int64_t _3{};\n" +
		"  if (n % 2 == 0) {\n" +
		"    _1 = true;\n" +
		"    trace.push_back(n);\n" +
		"    _2 = n / 2;\n" +
		"  } else {\n" +
		"    trace.push_back(-n);\n" +
		"    _3 = 3 * n + 1;\n" +
		"  }\n" +
		"  return (_1 ? _2 : _3);\n" +
		"}\n"
	if out != want {
		t.Fatalf("output mismatch:\n%s", out)
	}
}

func TestBindResultsFallbackType(t *testing.T) {
	opts := compiler.DefaultOptions()
	opts.BindResults = true
	opts.ResultType = ast.Int32Type
	ctx := compiler.NewContext(opts)
	got := compiler.EmitExpr(ctx, ast.If(ast.Ident("c"), []ast.Expr{ast.Call(ast.Ident("a")), ast.Int(1)}, []ast.Expr{ast.Int(2)}))
	if got != "(_1 ? _2 : _3)" {
		t.Fatalf("unexpected value %q", got)
	}
	text := strings.Join(ctx.Pending(), "\n")
	for _, s := range []string{"int32_t _2{};", "int32_t _3{};", "  _2 = 1;", "  _3 = 2;"} {
		if !strings.Contains(text, s) {
			t.Fatalf("missing %q:\n%s", s, text)
		}
	}
}

func TestBoundResultsAreValueInitialized(t *testing.T) {
	opts := compiler.DefaultOptions()
	opts.BindResults = true
	opts.ResultType = ast.Int32Type
	tests := []struct {
		name   string
		then   []ast.Expr
		els    []ast.Expr
		unset  string
		assign string
	}{
		{"empty else", []ast.Expr{ast.Call(ast.Ident("a")), ast.Int(1)}, nil, "_3", "_2 = 1;"},
		{"empty then", nil, []ast.Expr{ast.Call(ast.Ident("d")), ast.Int(2)}, "_2", "_3 = 2;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := compiler.NewContext(opts)
			got := compiler.EmitExpr(ctx, ast.If(ast.Ident("c"), tt.then, tt.els))
			if got != "(_1 ? _2 : _3)" {
				t.Fatalf("unexpected value %q", got)
			}
			text := strings.Join(ctx.Pending(), "\n")
			if !strings.Contains(text, "int32_t "+tt.unset+"{};") {
				t.Fatalf("%s not value-initialized:\n%s", tt.unset, text)
			}
			if strings.Contains(text, tt.unset+" = ") {
				t.Fatalf("%s should never be assigned:\n%s", tt.unset, text)
			}
			if !strings.Contains(text, tt.assign) {
				t.Fatalf("missing %q:\n%s", tt.assign, text)
			}
		})
	}
}

func TestLogicalAndKeepsLoweredRightSideConditional(t *testing.T) {
	guarded := ast.If(ast.Ident("c"), calls("launch", "ok"), nil)
	fn := &ast.FunDef{
		Name: "f",
		Ret:  ast.VoidType,
		Body: []ast.Expr{ast.Bin(ast.Ident("guard"), ast.LogicalAnd, guarded)},
	}
	out := emitFunc(t, compiler.DefaultOptions(), fn)
	want := "void f() {\n" +
		"  bool _1 = guard;\n" +
		"  if (_1) {\n" +
		"    bool _2 = false;\n" +
		"    if (c) {\n" +
		"      _2 = true;\n" +
		"      launch();\n" +
		"      ok();\n" +
		"    }\n" +
		"    _1 = (_2 ? nullptr : nullptr);\n" +
		"  }\n" +
		"  return _1;\n" +
		"}\n"
	if out != want {
		t.Fatalf("output mismatch:\n%s", out)
	}
}

func TestLogicalOrRunsLoweredRightSideOnlyWhenFalse(t *testing.T) {
	ctx := newCtx()
	expr := ast.Bin(ast.Ident("done"), ast.LogicalOr, ast.If(ast.Ident("c"), calls("retry"), nil))
	if got := compiler.EmitExpr(ctx, expr); got != "_1" {
		t.Fatalf("unexpected value %q", got)
	}
	lines := ctx.Pending()
	if lines[0] != "bool _1 = done;" || lines[1] != "if (!_1) {" || lines[len(lines)-1] != "}" {
		t.Fatalf("unexpected lowering:\n%s", strings.Join(lines, "\n"))
	}
	for _, line := range lines[2 : len(lines)-1] {
		if !strings.HasPrefix(line, "  ") {
			t.Fatalf("%q escaped the guard:\n%s", line, strings.Join(lines, "\n"))
		}
	}
}

func TestNestedLoweringStaysInsideBlock(t *testing.T) {
	inner := ast.If(ast.Ident("c2"), calls("a", "b"), calls("d"))
	fn := &ast.FunDef{
		Name: "f",
		Ret:  ast.VoidType,
		Body: []ast.Expr{
			ast.If(ast.Ident("c1"), []ast.Expr{inner, ast.Call(ast.Ident("e"))}, calls("g")),
		},
	}
	out := emitFunc(t, compiler.DefaultOptions(), fn)
	want := "void f() {\n" +
		"  bool _1 = false;\n" +
		"  if (c1) {\n" +
		"    _1 = true;\n" +
		"    bool _2 = false;\n" +
		"    if (c2) {\n" +
		"      _2 = true;\n" +
		"      a();\n" +
		"      b();\n" +
		"    } else {\n" +
		"      d();\n" +
		"    }\n" +
		"    (_2 ? nullptr : nullptr);\n" +
		"    e();\n" +
		"  } else {\n" +
		"    g();\n" +
		"  }\n" +
		"  return (_1 ? nullptr : nullptr);\n" +
		"}\n"
	if out != want {
		t.Fatalf("output mismatch:\n%s", out)
	}
}

func TestSingleBranchWithLoweredChildIsLowered(t *testing.T) {
	ctx := newCtx()
	inner := ast.If(ast.Ident("d"), calls("x", "y"), calls("z"))
	got := compiler.EmitExpr(ctx, ast.If(ast.Ident("c"), []ast.Expr{inner}, calls("w")))
	if got != "(_1 ? nullptr : nullptr)" {
		t.Fatalf("outer conditional should be lowered, got %q", got)
	}
	text := strings.Join(ctx.Pending(), "\n")
	if strings.Index(text, "if (c) {") > strings.Index(text, "if (d) {") {
		t.Fatalf("inner conditional escaped its branch:\n%s", text)
	}
}

func TestTempsStrictlyIncrease(t *testing.T) {
	unit := &ast.Unit{Funcs: []*ast.FunDef{
		{Name: "f", Ret: ast.VoidType, Body: []ast.Expr{ast.If(ast.Ident("a"), calls("x", "y"), nil)}},
		{Name: "g", Ret: ast.VoidType, Body: []ast.Expr{
			ast.If(ast.Ident("b"), calls("x", "y"), nil),
			ast.If(ast.Ident("c"), calls("x", "y"), nil),
		}},
	}}
	out, err := compiler.NewGenerator(compiler.DefaultOptions()).Generate(unit)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	last := -1
	for _, name := range []string{"bool _1 ", "bool _2 ", "bool _3 "} {
		idx := strings.Index(out, name)
		if idx <= last {
			t.Fatalf("%q missing or out of order:\n%s", name, out)
		}
		last = idx
	}
	if strings.Contains(out, "_4") {
		t.Fatalf("unexpected extra temporary:\n%s", out)
	}
}

func TestContextTemps(t *testing.T) {
	ctx := newCtx()
	seen := map[string]bool{}
	for i := 1; i <= 5; i++ {
		name := ctx.NextTemp()
		if seen[name] {
			t.Fatalf("temporary %s reused", name)
		}
		seen[name] = true
	}
	if ctx.Temps() != 5 || ctx.NextTemp() != "_6" {
		t.Fatalf("counter out of step")
	}
}

func TestCalleeStackBalanced(t *testing.T) {
	ctx := newCtx()
	if ctx.Depth() != 0 {
		t.Fatalf("fresh context has callees")
	}
	compiler.EmitFunDef(ctx, sample.Fib())
	compiler.EmitFunDef(ctx, sample.Step())
	if ctx.Depth() != 0 {
		t.Fatalf("stack not balanced: depth %d", ctx.Depth())
	}
	expectViolation(t, func() { ctx.PopCallee() })
}
