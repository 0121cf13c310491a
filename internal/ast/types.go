package ast

// TypeDef describes a target type. It is only ever rendered, never checked.
type TypeDef interface {
	typeNode()
}

// PrimKind enumerates the scalar types.
type PrimKind int

const (
	Void PrimKind = iota
	Int32
	Int64
	Float32
	Float64
	Char
	String
	Boolean
)

type PrimType struct {
	Kind PrimKind
}

func (*PrimType) typeNode() {}

// ArrayType is a fixed-size array of Elem.
type ArrayType struct {
	Elem TypeDef
	Size int
}

func (*ArrayType) typeNode() {}

// VectorType is a growable sequence of Elem.
type VectorType struct {
	Elem TypeDef
}

func (*VectorType) typeNode() {}

type TupleType struct {
	Elems []TypeDef
}

func (*TupleType) typeNode() {}
