package ast

type Kind uint8

const (
	KindInvalid Kind = iota

	// KindProgram: Kids = items (FunctionDecl or statements).
	KindProgram
	// KindFunctionDecl: Value = name, Kids = Params, Type = return type, Body = Block.
	KindFunctionDecl
	// KindParam: Value = name, Type = optional annotation.
	KindParam
	// KindBlock: Kids = statements.
	KindBlock

	// KindLetDecl: Mut, Kids[0] = pattern, Type = annotation, Expr = initializer.
	KindLetDecl
	// KindVarPattern: Value = name.
	KindVarPattern
	// KindTuplePattern: Kids = VarPatterns.
	KindTuplePattern
	// KindAssignStmt: Kids[0] = target (Id or Index), Expr = value.
	KindAssignStmt
	// KindIfStmt: Expr = condition, Body = then Block, Else = Block or IfStmt.
	KindIfStmt
	// KindLoopStmt: Body = Block.
	KindLoopStmt
	KindBreakStmt
	KindContinueStmt
	// KindReturnStmt: Expr = optional value.
	KindReturnStmt
	// KindPrintStmt: Value = raw format string, Kids = expressions or NamedArgs.
	KindPrintStmt
	// KindNamedArg: Value = name, Expr = value.
	KindNamedArg
	// KindExprStmt: Expr = expression.
	KindExprStmt

	KindTypeI32
	KindTypeBool
	// KindTypeArray: Type = element type, Value = size lexeme or "".
	KindTypeArray
	// KindTypeTuple: Kids = element types.
	KindTypeTuple

	// KindBinary: BinOp, Kids = [lhs, rhs].
	KindBinary
	// KindUnary: UnOp, Expr = operand.
	KindUnary
	// KindId: Value = name.
	KindId
	// KindNumber: Value = lexeme.
	KindNumber
	// KindBool: Value = "true" or "false".
	KindBool
	// KindString: Value = raw contents.
	KindString
	// KindCall: Value = callee, Kids = arguments.
	KindCall
	// KindIndex: Kids = [base, index]; base is an Id or another Index.
	KindIndex
	// KindArrayLiteral: Kids = elements.
	KindArrayLiteral
	// KindArrayRepeat: Kids = [value, count].
	KindArrayRepeat
	// KindTupleLiteral: Kids = elements.
	KindTupleLiteral

	// KindError stands in for a construct that failed to parse.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindProgram:
		return "Program"
	case KindFunctionDecl:
		return "FunctionDecl"
	case KindParam:
		return "Param"
	case KindBlock:
		return "Block"
	case KindLetDecl:
		return "LetDecl"
	case KindVarPattern:
		return "VarPattern"
	case KindTuplePattern:
		return "TuplePattern"
	case KindAssignStmt:
		return "AssignStmt"
	case KindIfStmt:
		return "IfStmt"
	case KindLoopStmt:
		return "LoopStmt"
	case KindBreakStmt:
		return "BreakStmt"
	case KindContinueStmt:
		return "ContinueStmt"
	case KindReturnStmt:
		return "ReturnStmt"
	case KindPrintStmt:
		return "PrintStmt"
	case KindNamedArg:
		return "NamedArg"
	case KindExprStmt:
		return "ExprStmt"
	case KindTypeI32:
		return "TypeI32"
	case KindTypeBool:
		return "TypeBool"
	case KindTypeArray:
		return "ArrayType"
	case KindTypeTuple:
		return "TypeTuple"
	case KindBinary:
		return "BinaryOp"
	case KindUnary:
		return "UnaryOp"
	case KindId:
		return "Id"
	case KindNumber:
		return "Number"
	case KindBool:
		return "BoolLiteral"
	case KindString:
		return "String"
	case KindCall:
		return "Call"
	case KindIndex:
		return "ArrayIndex"
	case KindArrayLiteral:
		return "ArrayLiteral"
	case KindArrayRepeat:
		return "ArrayRepeat"
	case KindTupleLiteral:
		return "TupleLiteral"
	case KindError:
		return "Error"
	default:
		panic("unreachable")
	}
}

// IsStmt reports whether k may appear directly in a Block.
func (k Kind) IsStmt() bool {
	switch k {
	case KindLetDecl, KindAssignStmt, KindIfStmt, KindLoopStmt, KindBreakStmt,
		KindContinueStmt, KindReturnStmt, KindPrintStmt, KindExprStmt, KindBlock, KindError:
		return true
	}
	return false
}
