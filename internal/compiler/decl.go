package compiler

import (
	"strings"

	"cppemit/internal/ast"
)

// EmitArgs renders a parameter list as `(T a, U b)`.
func EmitArgs(args ast.Args) string {
	parts := make([]string, len(args.Params))
	for i, p := range args.Params {
		parts[i] = EmitType(p.Type) + " " + p.Name
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// EmitFunDef renders a complete function definition. The function's emitted
// name is on the enclosing-function stack while its body is rendered.
func EmitFunDef(ctx *Context, fn *ast.FunDef) string {
	if fn == nil {
		violate("function", "nil function")
	}
	name := ctx.opts.FuncPrefix + fn.Name
	w := &cppBuilder{pad: strings.Repeat(" ", ctx.opts.Indent)}
	w.line(EmitType(fn.Ret) + " " + name + EmitArgs(fn.Args) + " {")
	w.indent++
	depth := ctx.Depth()
	ctx.PushCallee(name)
	for _, line := range emitBody(ctx, fn.Body) {
		w.line(line)
	}
	ctx.PopCallee()
	if ctx.Depth() != depth {
		violate("function "+fn.Name, "unbalanced enclosing-function stack")
	}
	w.indent--
	w.line("}")
	return w.String()
}

// emitBody renders a sequence of expressions as statements. The last one is
// returned; earlier values are discarded.
func emitBody(ctx *Context, body []ast.Expr) []string {
	var lines []string
	for i, expr := range body {
		prefix := ""
		if i == len(body)-1 {
			prefix = "return "
		}
		lines = append(lines, emitStatement(ctx, expr, prefix)...)
	}
	return lines
}

// emitStatement renders expr as `prefix expr;` preceded by any statements
// queued while rendering it.
func emitStatement(ctx *Context, expr ast.Expr, prefix string) []string {
	ctx.pushFrame()
	text := EmitExpr(ctx, expr)
	lines := ctx.popFrame()
	return append(lines, strings.Split(prefix+text+";", "\n")...)
}

type cppBuilder struct {
	sb     strings.Builder
	pad    string
	indent int
}

// line writes s at the current indentation. Each line of a multi-line s is
// indented by the same amount.
func (w *cppBuilder) line(s string) {
	for _, part := range strings.Split(s, "\n") {
		if part != "" {
			w.sb.WriteString(strings.Repeat(w.pad, w.indent))
			w.sb.WriteString(part)
		}
		w.sb.WriteString("\n")
	}
}

func (w *cppBuilder) blank() {
	w.sb.WriteString("\n")
}

func (w *cppBuilder) String() string {
	return w.sb.String()
}
