package syntax

// Node is anything that can appear in a syntax tree. Children are returned in
// source order and are exactly one level deep, so a walker needs nothing
// beyond Kind and Children to visit the whole tree.
type Node interface {
	Kind() Kind
	Children() []Node
}

// Stmt is the closed family of statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is the closed family of expression nodes.
type Expr interface {
	Node
	exprNode()
}

// CompilationUnit is the root produced for one source: a single statement
// followed by the end-of-file token.
type CompilationUnit struct {
	Statement Stmt
	EOF       Token
}

func (*CompilationUnit) Kind() Kind { return NodeCompilationUnit }

func (u *CompilationUnit) Children() []Node {
	return []Node{u.Statement, u.EOF}
}

// ElseClause is the `else <stmt>` tail of an IfStmt.
type ElseClause struct {
	ElseKeyword Token
	Statement   Stmt
}

func (*ElseClause) Kind() Kind { return NodeElseClause }

func (c *ElseClause) Children() []Node {
	return []Node{c.ElseKeyword, c.Statement}
}
