package formatter

import (
	"fmt"
	"strings"

	"cppemit/internal/ast"
	"cppemit/internal/compiler"
)

// Formatter prints an IR tree one node per line, children indented below
// their parent. Constants, types and operators use their C++ spelling.
type Formatter struct {
	indent int
	buf    strings.Builder
	ctx    *compiler.Context
}

// New creates a new Formatter
func New() *Formatter {
	return &Formatter{ctx: compiler.NewContext(compiler.DefaultOptions())}
}

// FormatUnit formats every function of a unit
func (f *Formatter) FormatUnit(unit *ast.Unit) string {
	f.buf.Reset()
	f.indent = 0
	f.line("unit %s", unit.Name)
	f.indent++
	for _, fn := range unit.Funcs {
		f.formatFunDef(fn)
	}
	return f.buf.String()
}

// FormatFunDef formats a single function
func (f *Formatter) FormatFunDef(fn *ast.FunDef) string {
	f.buf.Reset()
	f.indent = 0
	f.formatFunDef(fn)
	return f.buf.String()
}

// FormatExpr formats a single expression
func (f *Formatter) FormatExpr(expr ast.Expr) string {
	f.buf.Reset()
	f.indent = 0
	f.formatExpr(expr)
	return f.buf.String()
}

func (f *Formatter) writeIndent() {
	for i := 0; i < f.indent; i++ {
		f.buf.WriteString("  ")
	}
}

func (f *Formatter) line(format string, args ...any) {
	f.writeIndent()
	f.buf.WriteString(fmt.Sprintf(format, args...))
	f.buf.WriteString("\n")
}

func (f *Formatter) formatFunDef(fn *ast.FunDef) {
	f.line("fun %s %s -> %s", fn.Name, compiler.EmitArgs(fn.Args), compiler.EmitType(fn.Ret))
	f.indent++
	for _, e := range fn.Body {
		f.formatExpr(e)
	}
	f.indent--
}

func (f *Formatter) formatExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.BinOpExpr:
		f.line("binop %s", compiler.BinarySymbol(e.Op))
		f.children(e.Left, e.Right)
	case *ast.PreOpExpr:
		f.line("prefix %s", compiler.PrefixSymbol(e.Op))
		f.children(e.Expr)
	case *ast.PostOpExpr:
		switch p := e.Op.(type) {
		case *ast.FunCall:
			f.line("call")
			f.children(append([]ast.Expr{e.Expr}, p.Args...)...)
		case *ast.Index:
			f.line("index")
			f.children(e.Expr, p.Expr)
		}
	case *ast.FunTree:
		f.line("lambda %s", compiler.EmitArgs(e.Args))
		f.children(e.Body...)
	case *ast.ConstantExpr:
		f.line("const %s", compiler.EmitConstant(f.ctx, e.Value))
	case *ast.Identifier:
		f.line("ident %s", e.Name)
	case *ast.CalleeExpr:
		f.line("self")
	case *ast.IfExpr:
		if e.ResultType != nil {
			f.line("if -> %s", compiler.EmitType(e.ResultType))
		} else {
			f.line("if")
		}
		f.indent++
		f.formatExpr(e.Cond)
		f.line("then")
		f.children(e.Then...)
		if len(e.Else) > 0 {
			f.line("else")
			f.children(e.Else...)
		}
		f.indent--
	case nil:
		f.line("<nil>")
	}
}

func (f *Formatter) children(exprs ...ast.Expr) {
	f.indent++
	for _, e := range exprs {
		f.formatExpr(e)
	}
	f.indent--
}
