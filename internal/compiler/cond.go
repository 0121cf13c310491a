package compiler

import (
	"cppemit/internal/ast"
)

const placeholder = "nullptr"

// emitIf renders a conditional expression. Single-expression branches become
// a ternary. Anything else is lowered to an if/else statement ahead of the
// current statement, with a flag temporary recording the branch taken.
func emitIf(ctx *Context, e *ast.IfExpr) string {
	if e.Cond == nil {
		violate("if", "nil condition")
	}
	if !lowered(e) {
		cond := EmitExpr(ctx, e.Cond)
		then := EmitExpr(ctx, e.Then[0])
		els := EmitExpr(ctx, e.Else[0])
		return "(" + cond + " ? " + then + " : " + els + ")"
	}

	flag := ctx.NextTemp()
	ctx.queue("bool " + flag + " = false;")

	resultType := e.ResultType
	if resultType == nil && ctx.opts.BindResults {
		resultType = ctx.opts.ResultType
	}
	thenVar, elseVar := placeholder, placeholder
	if resultType != nil {
		typ := EmitType(resultType)
		thenVar = ctx.NextTemp()
		elseVar = ctx.NextTemp()
		ctx.queue(typ+" "+thenVar+"{};", typ+" "+elseVar+"{};")
	}

	cond := EmitExpr(ctx, e.Cond)
	var lines []string
	lines = append(lines, "if ("+cond+") {")
	block := []string{flag + " = true;"}
	block = append(block, emitBranch(ctx, e.Then, thenVar)...)
	lines = append(lines, ctx.indent(block)...)
	if len(e.Else) > 0 {
		lines = append(lines, "} else {")
		lines = append(lines, ctx.indent(emitBranch(ctx, e.Else, elseVar))...)
	}
	lines = append(lines, "}")
	ctx.queue(lines...)

	return "(" + flag + " ? " + thenVar + " : " + elseVar + ")"
}

// emitBranch renders each expression of a branch as a statement, in order.
// When result is a temporary the last expression is assigned to it.
func emitBranch(ctx *Context, exprs []ast.Expr, result string) []string {
	var lines []string
	for i, expr := range exprs {
		prefix := ""
		if i == len(exprs)-1 && result != placeholder {
			prefix = result + " = "
		}
		lines = append(lines, emitStatement(ctx, expr, prefix)...)
	}
	return lines
}

// lowered reports whether e takes the statement form rather than a ternary.
func lowered(e *ast.IfExpr) bool {
	if len(e.Then) != 1 || len(e.Else) != 1 {
		return true
	}
	return needsLowering(e.Then[0]) || needsLowering(e.Else[0])
}

// needsLowering reports whether rendering expr queues statements. Function
// literals keep their statements inside their own body.
func needsLowering(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.IfExpr:
		return lowered(e) || needsLowering(e.Cond)
	case *ast.BinOpExpr:
		return needsLowering(e.Left) || needsLowering(e.Right)
	case *ast.PreOpExpr:
		return needsLowering(e.Expr)
	case *ast.PostOpExpr:
		if needsLowering(e.Expr) {
			return true
		}
		switch p := e.Op.(type) {
		case *ast.FunCall:
			for _, arg := range p.Args {
				if needsLowering(arg) {
					return true
				}
			}
		case *ast.Index:
			return needsLowering(p.Expr)
		}
	}
	return false
}
