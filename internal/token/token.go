package token

// Type identifies the kind of a token attached to an AST node. The analyzer
// never lexes; tokens arrive on nodes from the parsing stage and are kept for
// error reporting and for the identifier re-tagging transition.
type Type string

const (
	ILLEGAL Type = "ILLEGAL"

	// Identifiers. ARRAY_ID is not produced by the lexer: the semantic pass
	// rewrites ID tokens to ARRAY_ID when the name resolves to an array
	// binding, and later stages dispatch on that distinction.
	ID       Type = "ID"
	ARRAY_ID Type = "ARRAY_ID"
	CID      Type = "CID" // context identifier, bound by the VM at run time

	// Literals
	INT_LIT  Type = "INT_LIT"
	FELT_LIT Type = "FELT_LIT"

	// Builtin type names used in annotations
	FELT Type = "FELT"
	I32  Type = "I32"

	// Operators
	PLUS     Type = "+"
	MINUS    Type = "-"
	ASTERISK Type = "*"
	SLASH    Type = "/"
	EQ       Type = "=="
	NOT_EQ   Type = "!="
	LT       Type = "<"
	GT       Type = ">"
	ASSIGN   Type = "="

	// Keywords
	ENTRY    Type = "ENTRY"
	FUNCTION Type = "FUNCTION"
	RETURN   Type = "RETURN"
	IF       Type = "IF"
	WHILE    Type = "WHILE"
	MALLOC   Type = "MALLOC"
	PRINTF   Type = "PRINTF"
	SQRT     Type = "SQRT"
)

// Token is a lexeme with its source position.
type Token struct {
	Type   Type
	Lexeme string
	Line   int
	Column int
}

// New builds a token; a convenience for the parser and for tests.
func New(t Type, lexeme string, line, column int) Token {
	return Token{Type: t, Lexeme: lexeme, Line: line, Column: column}
}

// BuiltinName reports whether the token names a builtin scalar type.
func (t Token) BuiltinName() bool {
	return t.Type == FELT || t.Type == I32
}
