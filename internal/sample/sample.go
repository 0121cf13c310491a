// Package sample holds hand-built IR used by the CLI and tests.
package sample

import "cppemit/internal/ast"

// Fib is the recursive Fibonacci function, written with self calls.
func Fib() *ast.FunDef {
	n := func() ast.Expr { return ast.Ident("n") }
	return &ast.FunDef{
		Name: "fib",
		Ret:  ast.Int32Type,
		Args: ast.Params(ast.P("n", ast.Int32Type)),
		Body: []ast.Expr{
			ast.If(
				ast.Bin(n(), ast.LessEq, ast.Int(1)),
				[]ast.Expr{n()},
				[]ast.Expr{ast.Bin(
					ast.Call(ast.Self(), ast.Bin(n(), ast.Sub, ast.Int(2))),
					ast.Add,
					ast.Call(ast.Self(), ast.Bin(n(), ast.Sub, ast.Int(1))),
				)},
			),
		},
	}
}

// Main calls fib(42).
func Main() *ast.FunDef {
	return &ast.FunDef{
		Name: "main",
		Ret:  ast.Int32Type,
		Body: []ast.Expr{ast.Call(ast.Ident("fib"), ast.Int(42))},
	}
}

// Step is one step of the Collatz sequence. Both branches run a statement
// before producing their value, so the conditional is lowered to an if/else
// block with typed result temporaries.
func Step() *ast.FunDef {
	n := func() ast.Expr { return ast.Ident("n") }
	return &ast.FunDef{
		Name: "step",
		Ret:  ast.Int64Type,
		Args: ast.Params(ast.P("n", ast.Int64Type), ast.P("trace", ast.Vector(ast.Int64Type))),
		Body: []ast.Expr{
			&ast.IfExpr{
				Cond: ast.Bin(ast.Bin(n(), ast.Mod, ast.Int(2)), ast.Equal, ast.Int(0)),
				Then: []ast.Expr{
					ast.Call(ast.Ident("trace.push_back"), n()),
					ast.Bin(n(), ast.Div, ast.Int(2)),
				},
				Else: []ast.Expr{
					ast.Call(ast.Ident("trace.push_back"), ast.Negate(n())),
					ast.Bin(ast.Bin(ast.Int(3), ast.Mul, n()), ast.Add, ast.Int(1)),
				},
				ResultType: ast.Int64Type,
			},
		},
	}
}

// Apply passes a literal squaring function to a call.
func Apply() *ast.FunDef {
	x := func() ast.Expr { return ast.Ident("x") }
	return &ast.FunDef{
		Name: "apply",
		Ret:  ast.Float64Type,
		Args: ast.Params(ast.P("x", ast.Float64Type)),
		Body: []ast.Expr{
			ast.Call(
				ast.Lambda(ast.Params(ast.P("v", ast.Float64Type)), ast.Bin(ast.Ident("v"), ast.Mul, ast.Ident("v"))),
				ast.Bin(x(), ast.Add, ast.Float(0.5)),
			),
		},
	}
}

// Unit is the demonstration program.
func Unit() *ast.Unit {
	return &ast.Unit{
		Name:  "demo",
		Funcs: []*ast.FunDef{Fib(), Step(), Apply(), Main()},
	}
}
