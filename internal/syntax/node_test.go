package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/internal/source"
	"quill/internal/value"
)

func tok(kind Kind, pos uint32, text string) Token {
	return NewToken(kind, pos, text, value.Null())
}

func num(pos uint32, text string, n int64) Token {
	return NewToken(Number, pos, text, value.Number(n))
}

func kinds(nodes []Node) []Kind {
	out := make([]Kind, len(nodes))
	for i, n := range nodes {
		out[i] = n.Kind()
	}
	return out
}

func TestBlockChildrenAreOneLevelDeep(t *testing.T) {
	// {1}
	inner := &ExprStmt{Expression: NewLiteralExpr(num(1, "1", 1))}
	block := &BlockStmt{
		OpenBrace:  tok(LBrace, 0, "{"),
		Statements: []Stmt{inner},
		CloseBrace: tok(RBrace, 2, "}"),
	}

	children := block.Children()
	require.Len(t, children, 3)
	assert.Equal(t, []Kind{LBrace, StmtExpr, RBrace}, kinds(children))
	assert.Same(t, inner, children[1])
}

func TestStatementChildOrder(t *testing.T) {
	x := tok(Ident, 4, "x")
	one := NewLiteralExpr(num(8, "1", 1))
	ten := NewLiteralExpr(num(13, "10", 10))
	body := &BlockStmt{OpenBrace: tok(LBrace, 16, "{"), CloseBrace: tok(RBrace, 17, "}")}
	cond := &NameExpr{Identifier: tok(Ident, 3, "c")}

	tests := []struct {
		name string
		node Stmt
		want []Kind
	}{
		{
			name: "for",
			node: &ForStmt{
				Keyword: tok(KwFor, 0, "for"), Identifier: x, Equals: tok(Assign, 6, "="),
				LowerBound: one, ToKeyword: tok(KwTo, 10, "to"), UpperBound: ten, Body: body,
			},
			want: []Kind{KwFor, Ident, Assign, ExprLiteral, KwTo, ExprLiteral, StmtBlock},
		},
		{
			name: "if without else",
			node: &IfStmt{Keyword: tok(KwIf, 0, "if"), Condition: cond, Then: body},
			want: []Kind{KwIf, ExprName, StmtBlock},
		},
		{
			name: "if with else",
			node: &IfStmt{
				Keyword: tok(KwIf, 0, "if"), Condition: cond, Then: body,
				Else: &ElseClause{ElseKeyword: tok(KwElse, 18, "else"), Statement: body},
			},
			want: []Kind{KwIf, ExprName, StmtBlock, NodeElseClause},
		},
		{
			name: "var decl",
			node: &VarDeclStmt{
				Keyword: tok(KwVar, 0, "var"), Identifier: x, Equals: tok(Assign, 6, "="), Initializer: one,
			},
			want: []Kind{KwVar, Ident, Assign, ExprLiteral},
		},
		{
			name: "while",
			node: &WhileStmt{Keyword: tok(KwWhile, 0, "while"), Condition: cond, Body: body},
			want: []Kind{KwWhile, ExprName, StmtBlock},
		},
		{
			name: "expression",
			node: &ExprStmt{Expression: cond},
			want: []Kind{ExprName},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.node.Kind().IsStatement())
			assert.Equal(t, tt.want, kinds(tt.node.Children()))
		})
	}
}

func TestTokenIsLeaf(t *testing.T) {
	tk := num(3, "42", 42)
	assert.Empty(t, tk.Children())
	assert.Equal(t, source.NewSpan(3, 2), tk.Span())
	assert.Equal(t, int64(42), tk.Value().AsNumber())
	assert.True(t, tok(Whitespace, 0, "  ").Value().IsNull())
}

func TestNewLiteralExprBooleans(t *testing.T) {
	assert.Equal(t, value.Boolean(true), NewLiteralExpr(tok(KwTrue, 0, "true")).Value)
	assert.Equal(t, value.Boolean(false), NewLiteralExpr(tok(KwFalse, 0, "false")).Value)
	assert.Equal(t, value.Number(7), NewLiteralExpr(num(0, "7", 7)).Value)
}

// while x != 0 { x = x - 1 }
func sampleTree() *CompilationUnit {
	x := func(pos uint32) Token { return tok(Ident, pos, "x") }
	return &CompilationUnit{
		Statement: &WhileStmt{
			Keyword: tok(KwWhile, 0, "while"),
			Condition: &BinaryExpr{
				Left:     &NameExpr{Identifier: x(6)},
				Operator: tok(BangEq, 8, "!="),
				Right:    NewLiteralExpr(num(11, "0", 0)),
			},
			Body: &BlockStmt{
				OpenBrace: tok(LBrace, 13, "{"),
				Statements: []Stmt{&ExprStmt{Expression: &AssignExpr{
					Identifier: x(15),
					Equals:     tok(Assign, 17, "="),
					Expression: &BinaryExpr{
						Left:     &NameExpr{Identifier: x(19)},
						Operator: tok(Minus, 21, "-"),
						Right:    NewLiteralExpr(num(23, "1", 1)),
					},
				}}},
				CloseBrace: tok(RBrace, 25, "}"),
			},
		},
		EOF: tok(EOF, 26, ""),
	}
}

func TestTokensInSourceOrder(t *testing.T) {
	toks := Tokens(sampleTree())
	texts := make([]string, len(toks))
	for i, tk := range toks {
		texts[i] = tk.Text()
	}
	assert.Equal(t, "while x != 0 { x = x - 1 }", strings.Join(texts[:len(texts)-1], " "))
	for i := 1; i < len(toks); i++ {
		assert.Less(t, toks[i-1].Position(), toks[i].Position())
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	var seen []Kind
	Walk(sampleTree(), func(n Node) bool {
		seen = append(seen, n.Kind())
		return n.Kind() != StmtBlock
	})
	assert.Contains(t, seen, StmtBlock)
	assert.NotContains(t, seen, ExprAssign)
	assert.Equal(t, NodeCompilationUnit, seen[0])
}

func TestWalkIgnoresNilChildren(t *testing.T) {
	stmt := &IfStmt{Keyword: tok(KwIf, 0, "if")}
	count := 0
	Walk(stmt, func(Node) bool { count++; return true })
	assert.Equal(t, 2, count)
}

func TestSpanOf(t *testing.T) {
	tree := sampleTree()
	sp, ok := SpanOf(tree.Statement)
	require.True(t, ok)
	assert.Equal(t, source.NewSpan(0, 26), sp)

	_, ok = SpanOf(&ExprStmt{})
	assert.False(t, ok)
}

func TestWalkSkipsTypedNilChildren(t *testing.T) {
	// 1 + <missing>
	expr := &BinaryExpr{
		Left:     NewLiteralExpr(num(0, "1", 1)),
		Operator: tok(Plus, 2, "+"),
		Right:    (*BinaryExpr)(nil),
	}
	assert.True(t, IsNil((*BinaryExpr)(nil)))
	assert.True(t, IsNil(nil))
	assert.False(t, IsNil(expr))
	assert.False(t, IsNil(tok(Plus, 0, "+")))

	var visited []Kind
	require.NotPanics(t, func() {
		Walk(expr, func(n Node) bool {
			visited = append(visited, n.Kind())
			return true
		})
	})
	assert.Equal(t, []Kind{ExprBinary, ExprLiteral, Number, Plus}, visited)

	sp, ok := SpanOf(expr)
	require.True(t, ok)
	assert.Equal(t, source.NewSpan(0, 3), sp)
}

func TestTokenLenCountsCharacters(t *testing.T) {
	tk := tok(Ident, 4, "ünï")
	assert.Equal(t, uint32(3), tk.Len())
	assert.Equal(t, source.NewSpan(4, 3), tk.Span())
}
