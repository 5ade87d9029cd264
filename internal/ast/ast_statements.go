package ast

import (
	"github.com/olalang/olac/internal/token"
	"github.com/olalang/olac/internal/types"
)

// Compound is an ordered statement list.
type Compound struct {
	Token      token.Token
	Statements []Statement
}

func (c *Compound) Accept(v Visitor) (types.Result, error) { return v.VisitCompound(c) }
func (c *Compound) statementNode()                         {}
func (c *Compound) TokenLiteral() string                   { return c.Token.Lexeme }
func (c *Compound) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// Assign is a single assignment `target = value`. The target is a plain
// identifier or a context identifier.
type Assign struct {
	Token  token.Token // the '=' token
	Target Expression
	Value  Expression
}

func (a *Assign) Accept(v Visitor) (types.Result, error) { return v.VisitAssign(a) }
func (a *Assign) statementNode()                         {}
func (a *Assign) TokenLiteral() string                   { return a.Token.Lexeme }
func (a *Assign) GetToken() token.Token {
	if a == nil {
		return token.Token{}
	}
	return a.Token
}

// MultiAssign binds the multiple return values of a call, as in
// `a, b = f(...)`.
type MultiAssign struct {
	Token   token.Token // the '=' token
	Targets []Expression
	Call    Expression
}

func (ma *MultiAssign) Accept(v Visitor) (types.Result, error) { return v.VisitMultiAssign(ma) }
func (ma *MultiAssign) statementNode()                         {}
func (ma *MultiAssign) TokenLiteral() string                   { return ma.Token.Lexeme }
func (ma *MultiAssign) GetToken() token.Token {
	if ma == nil {
		return token.Token{}
	}
	return ma.Token
}

// Cond is a conditional statement. Its branches share the enclosing scope.
type Cond struct {
	Token       token.Token // the 'if' token
	Condition   Expression
	Consequence []Statement
	Alternative []Statement
}

func (c *Cond) Accept(v Visitor) (types.Result, error) { return v.VisitCond(c) }
func (c *Cond) statementNode()                         {}
func (c *Cond) TokenLiteral() string                   { return c.Token.Lexeme }
func (c *Cond) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// Loop is a while-style loop. Its body shares the enclosing scope.
type Loop struct {
	Token     token.Token // the 'while' token
	Condition Expression
	Body      []Statement
}

func (l *Loop) Accept(v Visitor) (types.Result, error) { return v.VisitLoop(l) }
func (l *Loop) statementNode()                         {}
func (l *Loop) TokenLiteral() string                   { return l.Token.Lexeme }
func (l *Loop) GetToken() token.Token {
	if l == nil {
		return token.Token{}
	}
	return l.Token
}

// Function is a function definition. Params reuse the Declaration shape:
// each is a `name : type` pair whose identifier is re-tagged when the
// declared type is an array.
type Function struct {
	Token  token.Token // the function-name token
	Name   string
	Params []*Declaration
	Body   *Block
}

func (f *Function) Accept(v Visitor) (types.Result, error) { return v.VisitFunction(f) }
func (f *Function) statementNode()                         {}
func (f *Function) TokenLiteral() string                   { return f.Token.Lexeme }
func (f *Function) GetToken() token.Token {
	if f == nil {
		return token.Token{}
	}
	return f.Token
}

// Return hands zero or more values back from a function or the entry block.
type Return struct {
	Token  token.Token // the 'return' token
	Values []Expression
}

func (r *Return) Accept(v Visitor) (types.Result, error) { return v.VisitReturn(r) }
func (r *Return) statementNode()                         {}
func (r *Return) TokenLiteral() string                   { return r.Token.Lexeme }
func (r *Return) GetToken() token.Token {
	if r == nil {
		return token.Token{}
	}
	return r.Token
}

// Printf emits a value during proving, for debugging: a format flag and the
// address of the value to print.
type Printf struct {
	Token token.Token
	Flag  Expression
	Addr  Expression
}

func (p *Printf) Accept(v Visitor) (types.Result, error) { return v.VisitPrintf(p) }
func (p *Printf) statementNode()                         {}
func (p *Printf) TokenLiteral() string                   { return p.Token.Lexeme }
func (p *Printf) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}
