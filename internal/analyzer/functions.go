package analyzer

import (
	"github.com/olalang/olac/internal/ast"
	"github.com/olalang/olac/internal/diagnostics"
	"github.com/olalang/olac/internal/symbols"
	"github.com/olalang/olac/internal/types"
)

// VisitFunction registers the function's signature in the scope active at
// the point of definition, then checks the body under a fresh scope holding
// exactly the parameter bindings. Registering before the scope swap is what
// makes direct self-recursion resolve; keeping the enclosing reference is
// what makes names from outer function scopes visible to nested functions.
func (a *Analyzer) VisitFunction(node *ast.Function) (types.Result, error) {
	params := make([]symbols.Param, 0, len(node.Params))
	paramScope := make(map[string]symbols.Symbol, len(node.Params))

	for _, p := range node.Params {
		builtin, err := a.current.ResolveBuiltin(p.Type.TokenLiteral())
		if err != nil {
			return types.Single(types.NilValue), err
		}

		sym := symbols.Symbol{
			Name:    p.Name.Value,
			Kind:    symbols.VariableSymbol,
			Builtin: builtin.Builtin,
		}
		declared := builtin.Builtin
		if p.Type.IsArray() {
			sym.ArrayLen = p.Type.ArrayLen
			declared = types.Array(builtin.Builtin.Prim, p.Type.ArrayLen)
			p.Name.MarkArray()
		}

		params = append(params, symbols.Param{Name: p.Name.Value, Type: declared})
		paramScope[p.Name.Value] = sym
	}

	a.current.Insert(symbols.Symbol{
		Name:   node.Name,
		Kind:   symbols.FunctionSymbol,
		Params: params,
		Body:   node.Body,
	})

	leave := a.enterScope(node.Name)
	defer leave()
	a.current.Replace(paramScope)

	if _, err := node.Body.Accept(a); err != nil {
		return types.Single(types.NilValue), err
	}
	return types.Single(types.NilValue), nil
}

// VisitCall resolves the callee through the scope chain, types every actual
// argument, and matches each against the declared parameter type with
// structural equality. On success the resolved symbol is attached to the
// call node so later stages need not repeat the lookup.
func (a *Analyzer) VisitCall(node *ast.Call) (types.Result, error) {
	sym, found := a.current.Lookup(node.Name)

	actuals := make([]types.Value, 0, len(node.Args))
	for _, arg := range node.Args {
		res, err := arg.Accept(a)
		if err != nil {
			return types.Single(types.NilValue), err
		}
		actuals = append(actuals, res.Representative())
	}

	if !found {
		return types.Single(types.NilValue), diagnostics.NewError(diagnostics.ErrA003, node.GetToken(), node.Name)
	}
	if sym.Kind != symbols.FunctionSymbol {
		return types.Single(types.NilValue), diagnostics.Internalf("'%s' resolves to a %s, expected a function", node.Name, sym.Kind)
	}
	if len(sym.Params) != len(actuals) {
		return types.Single(types.NilValue), diagnostics.NewError(
			diagnostics.ErrA005, node.GetToken(), node.Name, len(sym.Params), len(actuals))
	}
	for i, param := range sym.Params {
		want := types.ValueOf(param.Type)
		if !types.Equal(want, actuals[i]) {
			return types.Single(types.NilValue), diagnostics.NewError(
				diagnostics.ErrA004, node.GetToken(), i+1, node.Name, want, actuals[i])
		}
	}

	resolved := sym
	node.Resolved = &resolved
	return types.Single(types.NilValue), nil
}
