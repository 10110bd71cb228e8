package syntax

import "quill/internal/value"

// LiteralExpr is a number or boolean literal.
type LiteralExpr struct {
	Literal Token
	Value   value.Value
}

// NewLiteralExpr derives the literal value from the token: the scanned
// payload for numbers, the keyword meaning for true/false.
func NewLiteralExpr(tok Token) *LiteralExpr {
	v := tok.Value()
	switch tok.Kind() {
	case KwTrue:
		v = value.Boolean(true)
	case KwFalse:
		v = value.Boolean(false)
	}
	return &LiteralExpr{Literal: tok, Value: v}
}

// NameExpr references a variable.
type NameExpr struct {
	Identifier Token
}

// AssignExpr is `<ident> = <expr>`.
type AssignExpr struct {
	Identifier Token
	Equals     Token
	Expression Expr
}

// UnaryExpr is a prefix operator applied to an operand.
type UnaryExpr struct {
	Operator Token
	Operand  Expr
}

// BinaryExpr is `<left> <op> <right>`.
type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// ParenExpr is `( <expr> )`.
type ParenExpr struct {
	OpenParen  Token
	Expression Expr
	CloseParen Token
}

func (*LiteralExpr) Kind() Kind { return ExprLiteral }
func (*NameExpr) Kind() Kind    { return ExprName }
func (*AssignExpr) Kind() Kind  { return ExprAssign }
func (*UnaryExpr) Kind() Kind   { return ExprUnary }
func (*BinaryExpr) Kind() Kind  { return ExprBinary }
func (*ParenExpr) Kind() Kind   { return ExprParen }

func (*LiteralExpr) exprNode() {}
func (*NameExpr) exprNode()    {}
func (*AssignExpr) exprNode()  {}
func (*UnaryExpr) exprNode()   {}
func (*BinaryExpr) exprNode()  {}
func (*ParenExpr) exprNode()   {}

func (e *LiteralExpr) Children() []Node { return []Node{e.Literal} }
func (e *NameExpr) Children() []Node    { return []Node{e.Identifier} }

func (e *AssignExpr) Children() []Node {
	return []Node{e.Identifier, e.Equals, e.Expression}
}

func (e *UnaryExpr) Children() []Node {
	return []Node{e.Operator, e.Operand}
}

func (e *BinaryExpr) Children() []Node {
	return []Node{e.Left, e.Operator, e.Right}
}

func (e *ParenExpr) Children() []Node {
	return []Node{e.OpenParen, e.Expression, e.CloseParen}
}
