package compiler

import (
	"fmt"
	"sort"

	"cppemit/internal/ast"
)

// Emit renders any IR node with ctx. It is the single entry point shared by
// every node kind; unknown node kinds violate a precondition.
func Emit(ctx *Context, node any) string {
	switch n := node.(type) {
	case ast.Expr:
		return EmitExpr(ctx, n)
	case ast.Constant:
		return EmitConstant(ctx, n)
	case ast.TypeDef:
		return EmitType(n)
	case ast.Binary:
		return BinarySymbol(n)
	case ast.Prefix:
		return PrefixSymbol(n)
	case ast.Postfix:
		return emitPostfix(ctx, n)
	case ast.Args:
		return EmitArgs(n)
	case *ast.FunDef:
		return EmitFunDef(ctx, n)
	}
	violate("emit", "unsupported node %T", node)
	return ""
}

// Generator renders whole functions and units. Each call runs with a fresh
// Context and either returns the complete text or an error.
type Generator struct {
	opts Options
}

func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Generate renders every function of unit in order, sharing one Context so
// temporaries are unique across the unit.
func (g *Generator) Generate(unit *ast.Unit) (out string, err error) {
	defer abortOnViolation(&err)
	if unit == nil {
		return "", fmt.Errorf("nil unit")
	}
	ctx := NewContext(g.opts)
	for _, fn := range unit.Funcs {
		if fn != nil {
			ctx.DeclareFunc(fn.Name)
		}
	}
	w := &cppBuilder{}
	if includes := g.Includes(unit); len(includes) > 0 {
		for _, inc := range includes {
			w.line("#include <" + inc + ">")
		}
		w.blank()
	}
	for i, fn := range unit.Funcs {
		if ctx.Depth() != 0 {
			violate("unit "+unit.Name, "enclosing-function stack not empty before %s", fn.Name)
		}
		if i > 0 {
			w.blank()
		}
		w.sb.WriteString(EmitFunDef(ctx, fn))
	}
	if ctx.Depth() != 0 {
		violate("unit "+unit.Name, "enclosing-function stack not empty")
	}
	return w.String(), nil
}

// GenerateFunc renders a single function with a fresh Context.
func (g *Generator) GenerateFunc(fn *ast.FunDef) (out string, err error) {
	defer abortOnViolation(&err)
	return EmitFunDef(NewContext(g.opts), fn), nil
}

// Includes lists the standard headers needed by the types used in unit.
func (g *Generator) Includes(unit *ast.Unit) []string {
	seen := map[string]bool{}
	var visitType func(t ast.TypeDef)
	visitType = func(t ast.TypeDef) {
		switch v := t.(type) {
		case *ast.PrimType:
			switch v.Kind {
			case ast.Int32, ast.Int64:
				seen["cstdint"] = true
			case ast.String:
				seen["string"] = true
			}
		case *ast.ArrayType:
			visitType(v.Elem)
		case *ast.VectorType:
			seen["vector"] = true
			visitType(v.Elem)
		case *ast.TupleType:
			seen["tuple"] = true
			for _, elem := range v.Elems {
				visitType(elem)
			}
		}
	}
	visitArgs := func(args ast.Args) {
		for _, p := range args.Params {
			visitType(p.Type)
		}
	}
	var visitExpr func(e ast.Expr)
	visitExpr = func(e ast.Expr) {
		switch v := e.(type) {
		case *ast.BinOpExpr:
			visitExpr(v.Left)
			visitExpr(v.Right)
		case *ast.PreOpExpr:
			visitExpr(v.Expr)
		case *ast.PostOpExpr:
			visitExpr(v.Expr)
			switch p := v.Op.(type) {
			case *ast.FunCall:
				for _, arg := range p.Args {
					visitExpr(arg)
				}
			case *ast.Index:
				visitExpr(p.Expr)
			}
		case *ast.FunTree:
			visitArgs(v.Args)
			for _, b := range v.Body {
				visitExpr(b)
			}
		case *ast.IfExpr:
			visitExpr(v.Cond)
			for _, b := range v.Then {
				visitExpr(b)
			}
			for _, b := range v.Else {
				visitExpr(b)
			}
			if !lowered(v) {
				return
			}
			if v.ResultType != nil {
				visitType(v.ResultType)
			} else if g.opts.BindResults && g.opts.ResultType != nil {
				visitType(g.opts.ResultType)
			}
		}
	}
	for _, fn := range unit.Funcs {
		if fn == nil {
			continue
		}
		visitType(fn.Ret)
		visitArgs(fn.Args)
		for _, e := range fn.Body {
			visitExpr(e)
		}
	}
	includes := make([]string, 0, len(seen))
	for inc := range seen {
		includes = append(includes, inc)
	}
	sort.Strings(includes)
	return includes
}
