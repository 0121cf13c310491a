package compiler

import (
	"strings"

	"cppemit/internal/ast"
)

// EmitExpr renders an expression. Statements the expression depends on are
// queued on ctx and surface before the enclosing statement.
func EmitExpr(ctx *Context, expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.BinOpExpr:
		if (e.Op == ast.LogicalAnd || e.Op == ast.LogicalOr) && needsLowering(e.Right) {
			return emitShortCircuit(ctx, e)
		}
		return EmitExpr(ctx, e.Left) + " " + BinarySymbol(e.Op) + " " + EmitExpr(ctx, e.Right)
	case *ast.PostOpExpr:
		return EmitExpr(ctx, e.Expr) + emitPostfix(ctx, e.Op)
	case *ast.PreOpExpr:
		sym := PrefixSymbol(e.Op)
		operand := EmitExpr(ctx, e.Expr)
		if strings.HasPrefix(operand, sym) {
			// "--x" would read as a decrement.
			return sym + "(" + operand + ")"
		}
		return sym + operand
	case *ast.FunTree:
		return emitLambda(ctx, e)
	case *ast.ConstantExpr:
		return EmitConstant(ctx, e.Value)
	case *ast.Identifier:
		return ctx.identName(e.Name)
	case *ast.CalleeExpr:
		return ctx.Callee()
	case *ast.IfExpr:
		return emitIf(ctx, e)
	case nil:
		violate("expression", "nil expression")
	}
	violate("expression", "unsupported expression %T", expr)
	return ""
}

// emitShortCircuit renders `l && r` or `l || r` whose right operand queues
// statements. The statements only run when r would have been evaluated.
func emitShortCircuit(ctx *Context, e *ast.BinOpExpr) string {
	tmp := ctx.NextTemp()
	ctx.queue("bool " + tmp + " = " + EmitExpr(ctx, e.Left) + ";")
	guard := tmp
	if e.Op == ast.LogicalOr {
		guard = "!" + tmp
	}
	lines := []string{"if (" + guard + ") {"}
	lines = append(lines, ctx.indent(emitStatement(ctx, e.Right, tmp+" = "))...)
	lines = append(lines, "}")
	ctx.queue(lines...)
	return tmp
}

func emitPostfix(ctx *Context, op ast.Postfix) string {
	switch p := op.(type) {
	case *ast.FunCall:
		return "(" + emitList(ctx, p.Args) + ")"
	case *ast.Index:
		return "[" + EmitExpr(ctx, p.Expr) + "]"
	case nil:
		violate("postfix", "nil postfix operation")
	}
	violate("postfix", "unsupported postfix %T", op)
	return ""
}

func emitList(ctx *Context, exprs []ast.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = EmitExpr(ctx, e)
	}
	return strings.Join(parts, ", ")
}

// emitLambda renders a function literal as a by-reference capturing lambda.
// The body follows the same rules as a function body.
func emitLambda(ctx *Context, fn *ast.FunTree) string {
	var b strings.Builder
	b.WriteString("[&]")
	b.WriteString(EmitArgs(fn.Args))
	b.WriteString(" {\n")
	for _, line := range ctx.indent(emitBody(ctx, fn.Body)) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}
