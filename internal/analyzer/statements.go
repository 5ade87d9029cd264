package analyzer

import (
	"github.com/olalang/olac/internal/ast"
	"github.com/olalang/olac/internal/diagnostics"
	"github.com/olalang/olac/internal/symbols"
	"github.com/olalang/olac/internal/types"
)

// VisitDeclaration introduces a `name : type` binding into the current
// scope. A name that already resolves anywhere up the enclosing chain is a
// duplicate: the language permits no shadowing.
func (a *Analyzer) VisitDeclaration(node *ast.Declaration) (types.Result, error) {
	name := node.Name.Value
	if _, ok := a.current.Lookup(name); ok {
		return types.Single(types.NilValue), diagnostics.NewError(diagnostics.ErrA001, node.Name.GetToken(), name)
	}

	builtin, err := a.current.ResolveBuiltin(node.Type.TokenLiteral())
	if err != nil {
		return types.Single(types.NilValue), err
	}

	variable := symbols.Symbol{
		Name:    name,
		Kind:    symbols.VariableSymbol,
		Builtin: builtin.Builtin,
	}
	if node.Type.IsArray() {
		variable.ArrayLen = node.Type.ArrayLen
	}
	a.current.Insert(variable)
	return types.Single(types.NilValue), nil
}

// VisitCompound walks the statement list in order, stopping at the first
// error.
func (a *Analyzer) VisitCompound(node *ast.Compound) (types.Result, error) {
	for _, stmt := range node.Statements {
		if _, err := stmt.Accept(a); err != nil {
			return types.Single(types.NilValue), err
		}
	}
	return types.Single(types.NilValue), nil
}

// VisitAssign checks the assignment target, re-tags an array-typed plain
// identifier target, then types the right-hand side. The right-hand type is
// not compared against the target's declared type.
func (a *Analyzer) VisitAssign(node *ast.Assign) (types.Result, error) {
	switch target := node.Target.(type) {
	case *ast.Ident:
		sym, ok := a.current.Lookup(target.Value)
		if !ok {
			return types.Single(types.NilValue), diagnostics.NewError(diagnostics.ErrA002, target.GetToken(), target.Value)
		}
		if sym.IsArray() {
			target.MarkArray()
		}
	case *ast.ContextIdent:
		if _, ok := a.current.Lookup(target.Value); !ok {
			return types.Single(types.NilValue), diagnostics.NewError(diagnostics.ErrA002, target.GetToken(), target.Value)
		}
	default:
		return types.Single(types.NilValue), diagnostics.Internalf("unsupported assignment target %T", node.Target)
	}
	return node.Value.Accept(a)
}

// VisitMultiAssign verifies bare identifier and context-identifier targets
// by direct lookup: they are binding targets, not value-producing
// expressions, so they bypass the general typing path (and are not
// re-tagged). Other target shapes go through the ordinary traversal. The
// right-hand call is traversed last, triggering full call resolution.
func (a *Analyzer) VisitMultiAssign(node *ast.MultiAssign) (types.Result, error) {
	for _, target := range node.Targets {
		switch t := target.(type) {
		case *ast.Ident:
			if _, ok := a.current.Lookup(t.Value); !ok {
				return types.Single(types.NilValue), diagnostics.NewError(diagnostics.ErrA002, t.GetToken(), t.Value)
			}
		case *ast.ContextIdent:
			if _, ok := a.current.Lookup(t.Value); !ok {
				return types.Single(types.NilValue), diagnostics.NewError(diagnostics.ErrA002, t.GetToken(), t.Value)
			}
		default:
			if _, err := target.Accept(a); err != nil {
				return types.Single(types.NilValue), err
			}
		}
	}
	if _, err := node.Call.Accept(a); err != nil {
		return types.Single(types.NilValue), err
	}
	return types.Single(types.NilValue), nil
}

// VisitCond types the condition, then both branch statement lists. Branches
// share the enclosing scope.
func (a *Analyzer) VisitCond(node *ast.Cond) (types.Result, error) {
	if _, err := node.Condition.Accept(a); err != nil {
		return types.Single(types.NilValue), err
	}
	for _, stmt := range node.Consequence {
		if _, err := stmt.Accept(a); err != nil {
			return types.Single(types.NilValue), err
		}
	}
	for _, stmt := range node.Alternative {
		if _, err := stmt.Accept(a); err != nil {
			return types.Single(types.NilValue), err
		}
	}
	return types.Single(types.NilValue), nil
}

// VisitLoop types the condition, then the body. The body shares the
// enclosing scope.
func (a *Analyzer) VisitLoop(node *ast.Loop) (types.Result, error) {
	if _, err := node.Condition.Accept(a); err != nil {
		return types.Single(types.NilValue), err
	}
	for _, stmt := range node.Body {
		if _, err := stmt.Accept(a); err != nil {
			return types.Single(types.NilValue), err
		}
	}
	return types.Single(types.NilValue), nil
}

// VisitReturn checks every returned bare identifier and re-tags it when it
// names an array binding, exactly as a plain reference would be. Other
// return-expression shapes are left to later stages.
func (a *Analyzer) VisitReturn(node *ast.Return) (types.Result, error) {
	for _, val := range node.Values {
		ident, ok := val.(*ast.Ident)
		if !ok {
			continue
		}
		sym, found := a.current.Lookup(ident.Value)
		if !found {
			return types.Single(types.NilValue), diagnostics.NewError(diagnostics.ErrA002, ident.GetToken(), ident.Value)
		}
		if sym.IsArray() {
			ident.MarkArray()
		}
	}
	return types.Single(types.NilValue), nil
}

// VisitPrintf validates the flag and value-address expressions.
func (a *Analyzer) VisitPrintf(node *ast.Printf) (types.Result, error) {
	if _, err := node.Flag.Accept(a); err != nil {
		return types.Single(types.NilValue), err
	}
	return node.Addr.Accept(a)
}
