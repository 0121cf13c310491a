package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"cppemit/internal/ast"
)

var binarySymbols = map[ast.Binary]string{
	ast.Add:        "+",
	ast.Sub:        "-",
	ast.Mul:        "*",
	ast.Div:        "/",
	ast.Mod:        "%",
	ast.Equal:      "==",
	ast.NotEqual:   "!=",
	ast.Greater:    ">",
	ast.GreaterEq:  ">=",
	ast.Less:       "<",
	ast.LessEq:     "<=",
	ast.ShiftLeft:  "<<",
	ast.ShiftRight: ">>",
	ast.BitAnd:     "&",
	ast.BitOr:      "|",
	ast.BitXor:     "^",
	ast.LogicalAnd: "&&",
	ast.LogicalOr:  "||",
}

var prefixSymbols = map[ast.Prefix]string{
	ast.Neg:    "-",
	ast.Not:    "!",
	ast.BitNot: "~",
}

var primNames = map[ast.PrimKind]string{
	ast.Void:    "void",
	ast.Int32:   "int32_t",
	ast.Int64:   "int64_t",
	ast.Float32: "float",
	ast.Float64: "double",
	ast.Char:    "char",
	ast.String:  "std::string",
	ast.Boolean: "bool",
}

func BinarySymbol(op ast.Binary) string {
	sym, ok := binarySymbols[op]
	if !ok {
		violate("binary operator", "unknown operator %d", op)
	}
	return sym
}

func PrefixSymbol(op ast.Prefix) string {
	sym, ok := prefixSymbols[op]
	if !ok {
		violate("prefix operator", "unknown operator %d", op)
	}
	return sym
}

// EmitConstant renders a literal. The result depends only on c and the
// RawChars option.
func EmitConstant(ctx *Context, c ast.Constant) string {
	switch v := c.(type) {
	case *ast.IntegerConst:
		return strconv.FormatInt(v.Value, 10)
	case *ast.FloatingConst:
		return strconv.FormatFloat(v.Value, 'f', -1, 64)
	case *ast.StringConst:
		return `"` + v.Value + `"`
	case *ast.BooleanConst:
		if v.Value {
			return "true"
		}
		return "false"
	case *ast.CharConst:
		if ctx.opts.RawChars {
			return string(v.Value)
		}
		return "'" + string(v.Value) + "'"
	case *ast.ArrayConst:
		parts := make([]string, len(v.Elems))
		for i, elem := range v.Elems {
			parts[i] = EmitConstant(ctx, elem)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case nil:
		violate("constant", "nil constant")
	}
	violate("constant", "unsupported constant %T", c)
	return ""
}

func EmitType(t ast.TypeDef) string {
	switch v := t.(type) {
	case *ast.PrimType:
		name, ok := primNames[v.Kind]
		if !ok {
			violate("type", "unknown primitive kind %d", v.Kind)
		}
		return name
	case *ast.ArrayType:
		return fmt.Sprintf("%s[%d]", EmitType(v.Elem), v.Size)
	case *ast.VectorType:
		return fmt.Sprintf("std::vector< %s >", EmitType(v.Elem))
	case *ast.TupleType:
		parts := make([]string, len(v.Elems))
		for i, elem := range v.Elems {
			parts[i] = EmitType(elem)
		}
		return "std::tuple< " + strings.Join(parts, ", ") + " >"
	case nil:
		violate("type", "nil type")
	}
	violate("type", "unsupported type %T", t)
	return ""
}
