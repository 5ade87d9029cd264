package ast

import (
	"github.com/olalang/olac/internal/symbols"
	"github.com/olalang/olac/internal/token"
	"github.com/olalang/olac/internal/types"
)

// IdentKind distinguishes a scalar identifier reference from one the
// semantic pass has re-tagged as referring to an array binding. Downstream
// stages switch on this variant instead of consulting a type side-table.
type IdentKind int

const (
	ScalarIdent IdentKind = iota
	ArrayIdent
)

// Ident is a reference to a declared name.
type Ident struct {
	Token token.Token
	Value string
	Kind  IdentKind
}

func (i *Ident) Accept(v Visitor) (types.Result, error) { return v.VisitIdent(i) }
func (i *Ident) expressionNode()                        {}
func (i *Ident) TokenLiteral() string                   { return i.Token.Lexeme }
func (i *Ident) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// MarkArray re-tags the reference as an array identifier. The transition is
// idempotent and one-way: nothing ever turns an array reference back into a
// scalar one. The token type moves with the variant so that stages keyed on
// tokens see the same distinction.
func (i *Ident) MarkArray() {
	i.Kind = ArrayIdent
	i.Token.Type = token.ARRAY_ID
}

// ContextIdent references a name bound by the VM execution context rather
// than declared and typed by the program.
type ContextIdent struct {
	Token token.Token
	Value string
}

func (ci *ContextIdent) Accept(v Visitor) (types.Result, error) { return v.VisitContextIdent(ci) }
func (ci *ContextIdent) expressionNode()                        {}
func (ci *ContextIdent) TokenLiteral() string                   { return ci.Token.Lexeme }
func (ci *ContextIdent) GetToken() token.Token {
	if ci == nil {
		return token.Token{}
	}
	return ci.Token
}

// IdentIndex is an indexed access `name[index]`.
type IdentIndex struct {
	Token token.Token // the base identifier token
	Name  string
	Index Expression
}

func (ii *IdentIndex) Accept(v Visitor) (types.Result, error) { return v.VisitIdentIndex(ii) }
func (ii *IdentIndex) expressionNode()                        {}
func (ii *IdentIndex) TokenLiteral() string                   { return ii.Token.Lexeme }
func (ii *IdentIndex) GetToken() token.Token {
	if ii == nil {
		return token.Token{}
	}
	return ii.Token
}

// IntegerLit is a 32-bit integer literal.
type IntegerLit struct {
	Token token.Token
	Value int64
}

func (il *IntegerLit) Accept(v Visitor) (types.Result, error) { return v.VisitIntegerLit(il) }
func (il *IntegerLit) expressionNode()                        {}
func (il *IntegerLit) TokenLiteral() string                   { return il.Token.Lexeme }
func (il *IntegerLit) GetToken() token.Token {
	if il == nil {
		return token.Token{}
	}
	return il.Token
}

// FeltLit is a field-element literal.
type FeltLit struct {
	Token token.Token
	Value uint64
}

func (fl *FeltLit) Accept(v Visitor) (types.Result, error) { return v.VisitFeltLit(fl) }
func (fl *FeltLit) expressionNode()                        {}
func (fl *FeltLit) TokenLiteral() string                   { return fl.Token.Lexeme }
func (fl *FeltLit) GetToken() token.Token {
	if fl == nil {
		return token.Token{}
	}
	return fl.Token
}

// ArrayLit is a literal array of scalar literals. The grammar guarantees at
// least one element; the pass takes the literal's type from the first.
type ArrayLit struct {
	Token    token.Token
	Elements []Expression
}

func (al *ArrayLit) Accept(v Visitor) (types.Result, error) { return v.VisitArrayLit(al) }
func (al *ArrayLit) expressionNode()                        {}
func (al *ArrayLit) TokenLiteral() string                   { return al.Token.Lexeme }
func (al *ArrayLit) GetToken() token.Token {
	if al == nil {
		return token.Token{}
	}
	return al.Token
}

// BinaryOp is a binary operator application. The operator is the token.
type BinaryOp struct {
	Token token.Token // the operator token
	Left  Expression
	Right Expression
}

func (bo *BinaryOp) Accept(v Visitor) (types.Result, error) { return v.VisitBinaryOp(bo) }
func (bo *BinaryOp) expressionNode()                        {}
func (bo *BinaryOp) TokenLiteral() string                   { return bo.Token.Lexeme }
func (bo *BinaryOp) GetToken() token.Token {
	if bo == nil {
		return token.Token{}
	}
	return bo.Token
}

// UnaryOp is a unary operator application.
type UnaryOp struct {
	Token   token.Token // the operator token
	Operand Expression
}

func (uo *UnaryOp) Accept(v Visitor) (types.Result, error) { return v.VisitUnaryOp(uo) }
func (uo *UnaryOp) expressionNode()                        {}
func (uo *UnaryOp) TokenLiteral() string                   { return uo.Token.Lexeme }
func (uo *UnaryOp) GetToken() token.Token {
	if uo == nil {
		return token.Token{}
	}
	return uo.Token
}

// Call invokes a declared function. After a successful pass Resolved holds
// the function symbol, so later stages need not repeat the lookup. A call
// may stand alone as a statement or appear as an expression.
type Call struct {
	Token    token.Token // the callee identifier token
	Name     string
	Args     []Expression
	Resolved *symbols.Symbol
}

func (c *Call) Accept(v Visitor) (types.Result, error) { return v.VisitCall(c) }
func (c *Call) expressionNode()                        {}
func (c *Call) statementNode()                         {}
func (c *Call) TokenLiteral() string                   { return c.Token.Lexeme }
func (c *Call) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// Malloc reserves memory for the given number of bytes and evaluates to its
// address.
type Malloc struct {
	Token token.Token
	Size  Expression
}

func (m *Malloc) Accept(v Visitor) (types.Result, error) { return v.VisitMalloc(m) }
func (m *Malloc) expressionNode()                        {}
func (m *Malloc) TokenLiteral() string                   { return m.Token.Lexeme }
func (m *Malloc) GetToken() token.Token {
	if m == nil {
		return token.Token{}
	}
	return m.Token
}

// Sqrt computes the square root of its operand.
type Sqrt struct {
	Token   token.Token
	Operand Expression
}

func (s *Sqrt) Accept(v Visitor) (types.Result, error) { return v.VisitSqrt(s) }
func (s *Sqrt) expressionNode()                        {}
func (s *Sqrt) TokenLiteral() string                   { return s.Token.Lexeme }
func (s *Sqrt) GetToken() token.Token {
	if s == nil {
		return token.Token{}
	}
	return s.Token
}
