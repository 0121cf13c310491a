package ast

// Expr is a node of the expression tree. Every composite variant owns its
// children exclusively; the tree has no sharing and no cycles.
type Expr interface {
	exprNode()
}

// BinOpExpr is `Left Op Right`.
type BinOpExpr struct {
	Left  Expr
	Op    Binary
	Right Expr
}

func (*BinOpExpr) exprNode() {}

// PostOpExpr applies a postfix operation (call or index) to Expr.
type PostOpExpr struct {
	Expr Expr
	Op   Postfix
}

func (*PostOpExpr) exprNode() {}

// PreOpExpr applies a prefix operator to Expr.
type PreOpExpr struct {
	Expr Expr
	Op   Prefix
}

func (*PreOpExpr) exprNode() {}

// FunTree is an anonymous function literal.
type FunTree struct {
	Args Args
	Body []Expr
}

func (*FunTree) exprNode() {}

// ConstantExpr wraps a literal value.
type ConstantExpr struct {
	Value Constant
}

func (*ConstantExpr) exprNode() {}

// Identifier references a name verbatim.
type Identifier struct {
	Name string
}

func (*Identifier) exprNode() {}

// IfExpr is a conditional expression. Then and Else are ordered; the last
// element of each list is the branch's value. ResultType is optional and
// only consulted when a branch has more than one element.
type IfExpr struct {
	Cond       Expr
	Then       []Expr
	Else       []Expr
	ResultType TypeDef
}

func (*IfExpr) exprNode() {}

// CalleeExpr refers to the innermost function being emitted.
type CalleeExpr struct{}

func (*CalleeExpr) exprNode() {}

type Postfix interface {
	postfixNode()
}

// FunCall is `(Args...)`.
type FunCall struct {
	Args []Expr
}

func (*FunCall) postfixNode() {}

// Index is `[Expr]`.
type Index struct {
	Expr Expr
}

func (*Index) postfixNode() {}

// Param is one entry of a parameter list.
type Param struct {
	Name string
	Type TypeDef
}

// Args is an ordered parameter list.
type Args struct {
	Params []Param
}

// FunDef is a named function. The last element of Body is its result.
type FunDef struct {
	Name string
	Ret  TypeDef
	Args Args
	Body []Expr
}

// Unit is an ordered group of functions emitted together.
type Unit struct {
	Name  string
	Funcs []*FunDef
}
