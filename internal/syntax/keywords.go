package syntax

var keywords = map[string]Kind{
	"true":  KwTrue,
	"false": KwFalse,
	"let":   KwLet,
	"var":   KwVar,
	"if":    KwIf,
	"else":  KwElse,
	"while": KwWhile,
	"for":   KwFor,
	"to":    KwTo,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые: распознаются только lowercase версии.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}

// WordKind maps a scanned alphabetic run to its keyword kind or Ident.
func WordKind(word string) Kind {
	if k, ok := keywords[word]; ok {
		return k
	}
	return Ident
}

var fixedText = map[Kind]string{
	Plus:    "+",
	Minus:   "-",
	Star:    "*",
	Slash:   "/",
	Bang:    "!",
	Assign:  "=",
	EqEq:    "==",
	BangEq:  "!=",
	Lt:      "<",
	LtEq:    "<=",
	Gt:      ">",
	GtEq:    ">=",
	Amp:     "&",
	AndAnd:  "&&",
	Pipe:    "|",
	OrOr:    "||",
	Caret:   "^",
	Tilde:   "~",
	LParen:  "(",
	RParen:  ")",
	LBrace:  "{",
	RBrace:  "}",
	KwTrue:  "true",
	KwFalse: "false",
	KwLet:   "let",
	KwVar:   "var",
	KwIf:    "if",
	KwElse:  "else",
	KwWhile: "while",
	KwFor:   "for",
	KwTo:    "to",
}

// FixedText returns the only spelling of punctuation and keyword kinds, or ""
// for kinds whose text varies (numbers, identifiers, whitespace, nodes).
func FixedText(k Kind) string {
	return fixedText[k]
}

// UnaryPrecedence returns the binding power of k as a prefix operator, 0 if
// k is not one.
func UnaryPrecedence(k Kind) int {
	switch k {
	case Plus, Minus, Bang, Tilde:
		return 6
	default:
		return 0
	}
}

// BinaryPrecedence returns the binding power of k as an infix operator, 0 if
// k is not one. Higher binds tighter.
func BinaryPrecedence(k Kind) int {
	switch k {
	case Star, Slash:
		return 5
	case Plus, Minus:
		return 4
	case EqEq, BangEq, Lt, LtEq, Gt, GtEq:
		return 3
	case Amp, AndAnd:
		return 2
	case Pipe, OrOr, Caret:
		return 1
	default:
		return 0
	}
}
