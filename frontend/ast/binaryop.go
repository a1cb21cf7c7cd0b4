package ast

type BinaryOp int

const (
	BinaryOpInvalid BinaryOp = iota
	// BinaryOpLogicalOr is `||`
	BinaryOpLogicalOr
	// BinaryOpLogicalAnd is `&&`
	BinaryOpLogicalAnd

	// BinaryOpEqual is `==`
	BinaryOpEqual
	// BinaryOpNotEqual is `!=`
	BinaryOpNotEqual
	// BinaryOpLess is `<`
	BinaryOpLess
	// BinaryOpGreater is `>`
	BinaryOpGreater
	// BinaryOpLessEqual is `<=`
	BinaryOpLessEqual
	// BinaryOpGreaterEqual is `>=`
	BinaryOpGreaterEqual

	// BinaryOpAdd is `+`
	BinaryOpAdd
	// BinaryOpSub is `-`
	BinaryOpSub
	// BinaryOpMul is `*`
	BinaryOpMul
	// BinaryOpDiv is `/`
	BinaryOpDiv
	// BinaryOpMod is `%`
	BinaryOpMod
)

func (op BinaryOp) String() string {
	switch op {
	case BinaryOpLogicalOr:
		return "||"
	case BinaryOpLogicalAnd:
		return "&&"
	case BinaryOpEqual:
		return "=="
	case BinaryOpNotEqual:
		return "!="
	case BinaryOpLess:
		return "<"
	case BinaryOpGreater:
		return ">"
	case BinaryOpLessEqual:
		return "<="
	case BinaryOpGreaterEqual:
		return ">="
	case BinaryOpAdd:
		return "+"
	case BinaryOpSub:
		return "-"
	case BinaryOpMul:
		return "*"
	case BinaryOpDiv:
		return "/"
	case BinaryOpMod:
		return "%"
	default:
		return "?"
	}
}

func (op BinaryOp) IsLogical() bool {
	return op == BinaryOpLogicalOr || op == BinaryOpLogicalAnd
}

func (op BinaryOp) IsComparison() bool {
	return op >= BinaryOpEqual && op <= BinaryOpGreaterEqual
}

func (op BinaryOp) IsArithmetic() bool {
	return op >= BinaryOpAdd && op <= BinaryOpMod
}
