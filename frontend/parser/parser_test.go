package parser

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/trust-lang/trustc/frontend/ast"
	"github.com/trust-lang/trustc/frontend/lexer"
)

func parse(t *testing.T, code string) (*ast.Ast, []Diagnostic) {
	t.Helper()
	tokens, diag := lexer.Lex("test.trust", code)
	be.True(t, diag == nil)
	return Parse(tokens)
}

func messages(diags []Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Message
	}
	return out
}

// sexp renders an expression as an s-expression.
func sexp(tree *ast.Ast, id ast.NodeID) string {
	n := tree.Node(id)
	list := func(head string, kids []ast.NodeID) string {
		parts := []string{head}
		for _, kid := range kids {
			parts = append(parts, sexp(tree, kid))
		}
		return "(" + strings.Join(parts, " ") + ")"
	}

	switch n.Kind {
	case ast.KindNumber, ast.KindBool, ast.KindId:
		return n.Value
	case ast.KindString:
		return `"` + n.Value + `"`
	case ast.KindBinary:
		return list(n.BinOp.String(), n.Kids)
	case ast.KindUnary:
		return list(n.UnOp.String(), []ast.NodeID{n.Expr})
	case ast.KindCall:
		return list("call "+n.Value, n.Kids)
	case ast.KindIndex:
		return list("index", n.Kids)
	case ast.KindArrayLiteral:
		return list("array", n.Kids)
	case ast.KindArrayRepeat:
		return list("repeat", n.Kids)
	case ast.KindTupleLiteral:
		return list("tuple", n.Kids)
	default:
		return "<" + n.Kind.String() + ">"
	}
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"a - b - c", "(- (- a b) c)"},
		{"a / b / c", "(/ (/ a b) c)"},
		{"a + b * c", "(+ a (* b c))"},
		{"a * b + c", "(+ (* a b) c)"},
		{"a || b && c", "(|| a (&& b c))"},
		{"a == b < c", "(== a (< b c))"},
		{"a < b == c < d", "(== (< a b) (< c d))"},
		{"-a * b", "(* (- a) b)"},
		{"!!x", "(! (! x))"},
		{"a - -b", "(- a (- b))"},
		{"(a + b) * c", "(* (+ a b) c)"},
		{"(a)", "a"},
		{"(a, b)", "(tuple a b)"},
		{"(a,)", "(tuple a)"},
		{"()", "(tuple)"},
		{"((1, 2), [3, 4])", "(tuple (tuple 1 2) (array 3 4))"},
		{"[1, 2, 3]", "(array 1 2 3)"},
		{"[1, 2,]", "(array 1 2)"},
		{"[0; 4]", "(repeat 0 4)"},
		{"[[1, 2]; 2]", "(repeat (array 1 2) 2)"},
		{"[f(1, 2); 3]", "(repeat (call f 1 2) 3)"},
		{"f()", "(call f)"},
		{"f(g(1), [2; 3])", "(call f (call g 1) (repeat 2 3))"},
		{"a[1][2]", "(index (index a 1) 2)"},
		{"a[i + 1] * 2", "(* (index a (+ i 1)) 2)"},
		{"true && !false", "(&& true (! false))"},
		{"0x10 % 3", "(% 0x10 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tree, diags := parse(t, "let v = "+tt.code+";")
			be.Equal(t, messages(diags), []string{})
			let := tree.Node(tree.Node(tree.Root).Kids[0])
			be.Equal(t, sexp(tree, let.Expr), tt.want)
		})
	}
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		code string
		want ast.Kind
	}{
		{"x = 1;", ast.KindAssignStmt},
		{"a[1][2] = 3;", ast.KindAssignStmt},
		{"x == 1;", ast.KindExprStmt},
		{"f(1);", ast.KindExprStmt},
		{"a[1];", ast.KindExprStmt},
		{"let x;", ast.KindLetDecl},
		{"let (a, b) = (1, 2);", ast.KindLetDecl},
		{"if x { }", ast.KindIfStmt},
		{"loop { break; }", ast.KindLoopStmt},
		{"{ }", ast.KindBlock},
		{"return 1;", ast.KindReturnStmt},
		{`println!("{}", x);`, ast.KindPrintStmt},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tree, diags := parse(t, "fn main() { "+tt.code+" }")
			be.Equal(t, messages(diags), []string{})
			fn := tree.Node(tree.Node(tree.Root).Kids[0])
			body := tree.Node(fn.Body)
			be.Equal(t, len(body.Kids), 1)
			be.Equal(t, tree.Kind(body.Kids[0]), tt.want)
		})
	}
}

func TestParseFunction(t *testing.T) {
	tree, diags := parse(t, "fn add(a: i32, b, c: [i32; 3],) -> (i32, bool) { return (a, true); }")
	be.Equal(t, messages(diags), []string{})

	fn := tree.Node(tree.Node(tree.Root).Kids[0])
	be.Equal(t, fn.Kind, ast.KindFunctionDecl)
	be.Equal(t, fn.Value, "add")
	be.Equal(t, len(fn.Kids), 3)

	a, b, c := tree.Node(fn.Kids[0]), tree.Node(fn.Kids[1]), tree.Node(fn.Kids[2])
	be.Equal(t, a.Value, "a")
	be.Equal(t, tree.Kind(a.Type), ast.KindTypeI32)
	be.Equal(t, b.Type, ast.NoNode)

	arr := tree.Node(c.Type)
	be.Equal(t, arr.Kind, ast.KindTypeArray)
	be.Equal(t, arr.Value, "3")
	be.Equal(t, tree.Kind(arr.Type), ast.KindTypeI32)

	ret := tree.Node(fn.Type)
	be.Equal(t, ret.Kind, ast.KindTypeTuple)
	be.Equal(t, len(ret.Kids), 2)
	be.Equal(t, a.Parent, tree.Node(tree.Root).Kids[0])
}

func TestParseLet(t *testing.T) {
	tree, diags := parse(t, "let mut (x, y): (i32, bool) = (1, false)")
	be.Equal(t, messages(diags), []string{})

	let := tree.Node(tree.Node(tree.Root).Kids[0])
	be.True(t, let.Mut)
	pat := tree.Node(let.Kids[0])
	be.Equal(t, pat.Kind, ast.KindTuplePattern)
	be.Equal(t, len(pat.Kids), 2)
	be.Equal(t, tree.Node(pat.Kids[1]).Value, "y")
	be.Equal(t, tree.Kind(let.Type), ast.KindTypeTuple)
	be.Equal(t, sexp(tree, let.Expr), "(tuple 1 false)")
}

func TestParsePrint(t *testing.T) {
	tree, diags := parse(t, `println!("{} and {name}", a + 1, name = b,);`)
	be.Equal(t, messages(diags), []string{})

	stmt := tree.Node(tree.Node(tree.Root).Kids[0])
	be.Equal(t, stmt.Kind, ast.KindPrintStmt)
	be.Equal(t, stmt.Value, "{} and {name}")
	be.Equal(t, len(stmt.Kids), 2)
	be.Equal(t, sexp(tree, stmt.Kids[0]), "(+ a 1)")

	named := tree.Node(stmt.Kids[1])
	be.Equal(t, named.Kind, ast.KindNamedArg)
	be.Equal(t, named.Value, "name")
	be.Equal(t, sexp(tree, named.Expr), "b")
}

func TestParseIfElseChain(t *testing.T) {
	tree, diags := parse(t, "fn main() { if a { } else if b { } else { } }")
	be.Equal(t, messages(diags), []string{})

	fn := tree.Node(tree.Node(tree.Root).Kids[0])
	first := tree.Node(tree.Node(fn.Body).Kids[0])
	be.Equal(t, first.Kind, ast.KindIfStmt)
	second := tree.Node(first.Else)
	be.Equal(t, second.Kind, ast.KindIfStmt)
	be.Equal(t, tree.Kind(second.Else), ast.KindBlock)
}

func TestParseParents(t *testing.T) {
	tree, _ := parse(t, `fn main() { println!("{}", x + 1); }`)

	binary := ast.NoNode
	tree.Walk(tree.Root, func(id ast.NodeID) bool {
		if tree.Kind(id) == ast.KindBinary {
			binary = id
		}
		return true
	})
	be.True(t, binary.Valid())
	be.True(t, tree.EnclosedBy(binary, ast.KindPrintStmt))
	be.True(t, tree.EnclosedBy(binary, ast.KindFunctionDecl))
	be.True(t, !tree.EnclosedBy(binary, ast.KindLoopStmt))
}

func TestParseTopLevelSemicolons(t *testing.T) {
	tree, diags := parse(t, "let a = 1\nlet b = 2;\nfn main() {}")
	be.Equal(t, messages(diags), []string{})
	be.Equal(t, len(tree.Node(tree.Root).Kids), 3)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []string
	}{
		{
			"missing semicolon",
			"fn main() { let x = 5 }",
			[]string{"Expected ';' at 1:23, got '}'"},
		},
		{
			"reserved word as name",
			"fn main() { let int = 1; }",
			[]string{"Expected pattern at 1:17, got reserved word 'int'"},
		},
		{
			"missing expression",
			"fn main() { let x = ; }",
			[]string{"Expected expression at 1:21, got ';'"},
		},
		{
			"nested function",
			"fn main() { fn inner() {} }",
			[]string{
				"Expected statement at 1:13, got 'fn'",
				"Expected expression at 1:27, got '}'",
			},
		},
		{
			"unclosed block",
			"fn main() { let x = 1;",
			[]string{"Expected '}' at 1:23, got end of input"},
		},
		{
			"println without string",
			"fn main() { println!(x); }",
			[]string{"Expected string literal at 1:22, got identifier"},
		},
		{
			"array size",
			"fn main() { let a: [i32; n] = [1]; }",
			[]string{"Expected array size at 1:26, got identifier"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := parse(t, tt.code)
			be.Equal(t, messages(diags), tt.want)
		})
	}
}

func TestParseRecoveryTerminates(t *testing.T) {
	inputs := []string{
		") ) ) ] ] ;; } }",
		"fn",
		"fn (",
		"fn main( { let",
		"let (a, = [1; ;",
		"fn f() -> { } }}} ((( [[[",
		"x = = = ;",
		"println!(",
	}
	for _, code := range inputs {
		t.Run(code, func(t *testing.T) {
			tree, diags := parse(t, code)
			be.True(t, len(diags) > 0)
			be.True(t, tree.Root.Valid())
		})
	}
}
