package ast

// Binary is an infix operator.
type Binary int

const (
	Add Binary = iota
	Sub
	Mul
	Div
	Mod
	Equal
	NotEqual
	Greater
	GreaterEq
	Less
	LessEq
	ShiftLeft
	ShiftRight
	BitAnd
	BitOr
	BitXor
	LogicalAnd
	LogicalOr
)

// Prefix is a unary operator written before its operand.
type Prefix int

const (
	Neg Prefix = iota
	Not
	BitNot
)
