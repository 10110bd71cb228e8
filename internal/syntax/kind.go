package syntax

// Kind tags every token and every tree node.
type Kind uint8

const (
	// BadToken is a single character the lexer could not classify.
	BadToken Kind = iota
	// EOF marks the end of the source input. It is always zero-length.
	EOF

	// Whitespace is a maximal run of whitespace characters.
	Whitespace
	// Number is a decimal integer literal.
	Number
	// Ident represents an identifier token.
	Ident

	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Bang      // !
	Assign    // =
	EqEq      // ==
	BangEq    // !=
	Lt        // <
	LtEq      // <=
	Gt        // >
	GtEq      // >=
	Amp       // &
	AndAnd    // &&
	Pipe      // |
	OrOr      // ||
	Caret     // ^
	Tilde     // ~
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }

	KwTrue  // true
	KwFalse // false
	KwLet   // let
	KwVar   // var
	KwIf    // if
	KwElse  // else
	KwWhile // while
	KwFor   // for
	KwTo    // to

	// NodeCompilationUnit is the root of a parsed source.
	NodeCompilationUnit
	// NodeElseClause is the optional tail of an if statement.
	NodeElseClause

	StmtBlock
	StmtExpr
	StmtFor
	StmtIf
	StmtVarDecl
	StmtWhile

	ExprLiteral
	ExprName
	ExprAssign
	ExprUnary
	ExprBinary
	ExprParen

	kindCount
)

var kindNames = [kindCount]string{
	BadToken:            "BadToken",
	EOF:                 "EOF",
	Whitespace:          "Whitespace",
	Number:              "Number",
	Ident:               "Ident",
	Plus:                "Plus",
	Minus:               "Minus",
	Star:                "Star",
	Slash:               "Slash",
	Bang:                "Bang",
	Assign:              "Assign",
	EqEq:                "EqEq",
	BangEq:              "BangEq",
	Lt:                  "Lt",
	LtEq:                "LtEq",
	Gt:                  "Gt",
	GtEq:                "GtEq",
	Amp:                 "Amp",
	AndAnd:              "AndAnd",
	Pipe:                "Pipe",
	OrOr:                "OrOr",
	Caret:               "Caret",
	Tilde:               "Tilde",
	LParen:              "LParen",
	RParen:              "RParen",
	LBrace:              "LBrace",
	RBrace:              "RBrace",
	KwTrue:              "KwTrue",
	KwFalse:             "KwFalse",
	KwLet:               "KwLet",
	KwVar:               "KwVar",
	KwIf:                "KwIf",
	KwElse:              "KwElse",
	KwWhile:             "KwWhile",
	KwFor:               "KwFor",
	KwTo:                "KwTo",
	NodeCompilationUnit: "CompilationUnit",
	NodeElseClause:      "ElseClause",
	StmtBlock:           "BlockStmt",
	StmtExpr:            "ExprStmt",
	StmtFor:             "ForStmt",
	StmtIf:              "IfStmt",
	StmtVarDecl:         "VarDeclStmt",
	StmtWhile:           "WhileStmt",
	ExprLiteral:         "LiteralExpr",
	ExprName:            "NameExpr",
	ExprAssign:          "AssignExpr",
	ExprUnary:           "UnaryExpr",
	ExprBinary:          "BinaryExpr",
	ExprParen:           "ParenExpr",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsToken reports whether k tags a leaf token (keywords included).
func (k Kind) IsToken() bool { return k <= KwTo }

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k >= KwTrue && k <= KwTo }

// IsTrivia reports whether parsers normally skip tokens of this kind.
// The lexer still emits them so the token stream stays lossless.
func (k Kind) IsTrivia() bool { return k == Whitespace || k == BadToken }

// IsStatement reports whether k tags a statement node.
func (k Kind) IsStatement() bool { return k >= StmtBlock && k <= StmtWhile }

// IsExpression reports whether k tags an expression node.
func (k Kind) IsExpression() bool { return k >= ExprLiteral && k <= ExprParen }
