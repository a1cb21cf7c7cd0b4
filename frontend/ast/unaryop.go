package ast

type UnaryOp int

const (
	UnaryOpInvalid UnaryOp = iota
	// UnaryOpNot is `!`
	UnaryOpNot
	// UnaryOpPlus is `+`
	UnaryOpPlus
	// UnaryOpNeg is `-`
	UnaryOpNeg
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryOpNot:
		return "!"
	case UnaryOpPlus:
		return "+"
	case UnaryOpNeg:
		return "-"
	default:
		return "?"
	}
}
