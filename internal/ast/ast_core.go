package ast

import (
	"github.com/olalang/olac/internal/token"
	"github.com/olalang/olac/internal/types"
)

// Node is the base interface for all AST nodes. Accept dispatches to the
// visitor method for the node's kind; a visit yields the node's computed
// type value, or the semantic error that aborts the pass.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor) (types.Result, error)
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node the parser hands to the analyzer: the program's
// top-level declarations followed by the synthetic entry block.
type Program struct {
	Declarations []Statement
	Entry        *EntryBlock
}

func (p *Program) Accept(v Visitor) (types.Result, error) { return v.VisitProgram(p) }
func (p *Program) TokenLiteral() string {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].TokenLiteral()
	}
	if p.Entry != nil {
		return p.Entry.TokenLiteral()
	}
	return ""
}

// EntryBlock is the program's synthetic entry point: its own declarations
// plus the statement list executed on invocation. The analyzer gives it a
// scope of its own, one level below the global scope.
type EntryBlock struct {
	Token        token.Token // the 'entry' token
	Declarations []Statement
	Body         *Compound
}

func (eb *EntryBlock) Accept(v Visitor) (types.Result, error) { return v.VisitEntryBlock(eb) }
func (eb *EntryBlock) TokenLiteral() string                   { return eb.Token.Lexeme }
func (eb *EntryBlock) GetToken() token.Token {
	if eb == nil {
		return token.Token{}
	}
	return eb.Token
}

// Block is a function body: declarations plus a statement list. Blocks do
// not open a scope themselves; the scope is created when the enclosing
// function is entered.
type Block struct {
	Token        token.Token
	Declarations []Statement
	Body         *Compound
}

func (b *Block) Accept(v Visitor) (types.Result, error) { return v.VisitBlock(b) }
func (b *Block) TokenLiteral() string                   { return b.Token.Lexeme }
func (b *Block) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// TypeSpec is a type annotation: a builtin type name, optionally with a
// fixed array length. ArrayLen 0 denotes a plain scalar annotation.
type TypeSpec struct {
	Token    token.Token // the builtin type-name token
	ArrayLen int
}

func (ts *TypeSpec) Accept(v Visitor) (types.Result, error) { return v.VisitTypeSpec(ts) }
func (ts *TypeSpec) TokenLiteral() string                   { return ts.Token.Lexeme }
func (ts *TypeSpec) GetToken() token.Token {
	if ts == nil {
		return token.Token{}
	}
	return ts.Token
}

// IsArray reports whether the annotation denotes an array type.
func (ts *TypeSpec) IsArray() bool { return ts.ArrayLen > 0 }

// Declaration is a `name : type` binding introduction.
type Declaration struct {
	Token token.Token // the identifier token
	Name  *Ident
	Type  *TypeSpec
}

func (d *Declaration) Accept(v Visitor) (types.Result, error) { return v.VisitDeclaration(d) }
func (d *Declaration) statementNode()                         {}
func (d *Declaration) TokenLiteral() string                   { return d.Token.Lexeme }
func (d *Declaration) GetToken() token.Token {
	if d == nil {
		return token.Token{}
	}
	return d.Token
}
