package ast

type Constant interface {
	constantNode()
}

type IntegerConst struct {
	Value int64
}

func (*IntegerConst) constantNode() {}

type FloatingConst struct {
	Value float64
}

func (*FloatingConst) constantNode() {}

// StringConst is emitted between double quotes without escaping.
type StringConst struct {
	Value string
}

func (*StringConst) constantNode() {}

type BooleanConst struct {
	Value bool
}

func (*BooleanConst) constantNode() {}

type CharConst struct {
	Value rune
}

func (*CharConst) constantNode() {}

// ArrayConst holds elements of a single constant kind.
type ArrayConst struct {
	Elems []Constant
}

func (*ArrayConst) constantNode() {}
