package ast

// Helpers for building trees by hand.

var (
	VoidType    TypeDef = &PrimType{Kind: Void}
	Int32Type   TypeDef = &PrimType{Kind: Int32}
	Int64Type   TypeDef = &PrimType{Kind: Int64}
	Float32Type TypeDef = &PrimType{Kind: Float32}
	Float64Type TypeDef = &PrimType{Kind: Float64}
	CharType    TypeDef = &PrimType{Kind: Char}
	StringType  TypeDef = &PrimType{Kind: String}
	BoolType    TypeDef = &PrimType{Kind: Boolean}
)

func Ident(name string) Expr {
	return &Identifier{Name: name}
}

func Int(v int64) Expr {
	return &ConstantExpr{Value: &IntegerConst{Value: v}}
}

func Float(v float64) Expr {
	return &ConstantExpr{Value: &FloatingConst{Value: v}}
}

func Str(v string) Expr {
	return &ConstantExpr{Value: &StringConst{Value: v}}
}

func Bool(v bool) Expr {
	return &ConstantExpr{Value: &BooleanConst{Value: v}}
}

func Const(c Constant) Expr {
	return &ConstantExpr{Value: c}
}

func Bin(left Expr, op Binary, right Expr) Expr {
	return &BinOpExpr{Left: left, Op: op, Right: right}
}

// Call applies a function-call postfix to fn.
func Call(fn Expr, args ...Expr) Expr {
	return &PostOpExpr{Expr: fn, Op: &FunCall{Args: args}}
}

// At indexes e with i.
func At(e, i Expr) Expr {
	return &PostOpExpr{Expr: e, Op: &Index{Expr: i}}
}

func Negate(e Expr) Expr {
	return &PreOpExpr{Expr: e, Op: Neg}
}

// Self is a reference to the enclosing function.
func Self() Expr {
	return &CalleeExpr{}
}

func If(cond Expr, then, els []Expr) Expr {
	return &IfExpr{Cond: cond, Then: then, Else: els}
}

func Lambda(args Args, body ...Expr) Expr {
	return &FunTree{Args: args, Body: body}
}

func Params(params ...Param) Args {
	return Args{Params: params}
}

func P(name string, t TypeDef) Param {
	return Param{Name: name, Type: t}
}

func Array(elem TypeDef, size int) TypeDef {
	return &ArrayType{Elem: elem, Size: size}
}

func Vector(elem TypeDef) TypeDef {
	return &VectorType{Elem: elem}
}

func Tuple(elems ...TypeDef) TypeDef {
	return &TupleType{Elems: elems}
}
