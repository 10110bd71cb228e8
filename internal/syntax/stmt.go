package syntax

// BlockStmt is `{ stmt* }`.
type BlockStmt struct {
	OpenBrace  Token
	Statements []Stmt
	CloseBrace Token
}

// ExprStmt wraps an expression evaluated for its effect.
type ExprStmt struct {
	Expression Expr
}

// ForStmt is `for <ident> = <lower> to <upper> <body>`.
type ForStmt struct {
	Keyword    Token
	Identifier Token
	Equals     Token
	LowerBound Expr
	ToKeyword  Token
	UpperBound Expr
	Body       Stmt
}

// IfStmt is `if <cond> <then> [else <stmt>]`. Else is nil when absent.
type IfStmt struct {
	Keyword   Token
	Condition Expr
	Then      Stmt
	Else      *ElseClause
}

// VarDeclStmt is `let|var <ident> = <init>`.
type VarDeclStmt struct {
	Keyword     Token
	Identifier  Token
	Equals      Token
	Initializer Expr
}

// WhileStmt is `while <cond> <body>`.
type WhileStmt struct {
	Keyword   Token
	Condition Expr
	Body      Stmt
}

func (*BlockStmt) Kind() Kind   { return StmtBlock }
func (*ExprStmt) Kind() Kind    { return StmtExpr }
func (*ForStmt) Kind() Kind     { return StmtFor }
func (*IfStmt) Kind() Kind      { return StmtIf }
func (*VarDeclStmt) Kind() Kind { return StmtVarDecl }
func (*WhileStmt) Kind() Kind   { return StmtWhile }

func (*BlockStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()    {}
func (*ForStmt) stmtNode()     {}
func (*IfStmt) stmtNode()      {}
func (*VarDeclStmt) stmtNode() {}
func (*WhileStmt) stmtNode()   {}

// Children lists the open brace, each statement as a single node, then the
// close brace. Nested statements are not flattened.
func (s *BlockStmt) Children() []Node {
	out := make([]Node, 0, len(s.Statements)+2)
	out = append(out, s.OpenBrace)
	for _, st := range s.Statements {
		out = append(out, st)
	}
	return append(out, s.CloseBrace)
}

func (s *ExprStmt) Children() []Node {
	return []Node{s.Expression}
}

func (s *ForStmt) Children() []Node {
	return []Node{s.Keyword, s.Identifier, s.Equals, s.LowerBound, s.ToKeyword, s.UpperBound, s.Body}
}

func (s *IfStmt) Children() []Node {
	if s.Else == nil {
		return []Node{s.Keyword, s.Condition, s.Then}
	}
	return []Node{s.Keyword, s.Condition, s.Then, s.Else}
}

func (s *VarDeclStmt) Children() []Node {
	return []Node{s.Keyword, s.Identifier, s.Equals, s.Initializer}
}

func (s *WhileStmt) Children() []Node {
	return []Node{s.Keyword, s.Condition, s.Body}
}

// IsReadOnly reports whether the declaration used `let`.
func (s *VarDeclStmt) IsReadOnly() bool {
	return s.Keyword.Kind() == KwLet
}
