package analyzer

import (
	"github.com/olalang/olac/internal/ast"
	"github.com/olalang/olac/internal/diagnostics"
	"github.com/olalang/olac/internal/symbols"
	"github.com/olalang/olac/internal/types"
)

// VisitIdent resolves a bare identifier reference. A reference to an array
// binding is re-tagged in place so later stages see the array-ness on the
// node itself, and its value is array-shaped at the declared length.
func (a *Analyzer) VisitIdent(node *ast.Ident) (types.Result, error) {
	sym, ok := a.current.Lookup(node.Value)
	if !ok {
		return types.Single(types.NilValue), diagnostics.NewError(diagnostics.ErrA002, node.GetToken(), node.Value)
	}
	if sym.Kind != symbols.VariableSymbol {
		return types.Single(types.NilValue), diagnostics.Internalf("'%s' resolves to a %s, expected a variable", node.Value, sym.Kind)
	}
	if sym.IsArray() {
		node.MarkArray()
		return types.Single(types.Value{Prim: sym.Builtin.Prim, Len: sym.ArrayLen}), nil
	}
	return types.Single(types.ValueOf(sym.Builtin)), nil
}

// VisitContextIdent checks that a context identifier is in scope. Its value
// is supplied by the VM at execution time, so it carries no static type.
func (a *Analyzer) VisitContextIdent(node *ast.ContextIdent) (types.Result, error) {
	if _, ok := a.current.Lookup(node.Value); !ok {
		return types.Single(types.NilValue), diagnostics.NewError(diagnostics.ErrA002, node.GetToken(), node.Value)
	}
	return types.Single(types.NilValue), nil
}

// VisitIdentIndex checks the base name is declared and types the index
// expression; the access itself takes the index expression's type.
func (a *Analyzer) VisitIdentIndex(node *ast.IdentIndex) (types.Result, error) {
	if _, ok := a.current.Lookup(node.Name); !ok {
		return types.Single(types.NilValue), diagnostics.NewError(diagnostics.ErrA002, node.GetToken(), node.Name)
	}
	return node.Index.Accept(a)
}

func (a *Analyzer) VisitIntegerLit(node *ast.IntegerLit) (types.Result, error) {
	return types.Single(types.Value{Prim: types.I32}), nil
}

func (a *Analyzer) VisitFeltLit(node *ast.FeltLit) (types.Result, error) {
	return types.Single(types.Value{Prim: types.Felt}), nil
}

// VisitArrayLit types a literal array from its first element. Element
// homogeneity is assumed, not verified at this layer.
func (a *Analyzer) VisitArrayLit(node *ast.ArrayLit) (types.Result, error) {
	if len(node.Elements) == 0 {
		return types.Single(types.NilValue), diagnostics.Internalf("empty array literal")
	}
	first, err := node.Elements[0].Accept(a)
	if err != nil {
		return types.Single(types.NilValue), err
	}
	return types.Single(types.Value{Prim: first.First().Prim}), nil
}

// VisitBinaryOp types both operands, reduces each to its representative
// value, and promotes.
func (a *Analyzer) VisitBinaryOp(node *ast.BinaryOp) (types.Result, error) {
	left, err := node.Left.Accept(a)
	if err != nil {
		return types.Single(types.NilValue), err
	}
	right, err := node.Right.Accept(a)
	if err != nil {
		return types.Single(types.NilValue), err
	}
	return types.Single(types.Promote(left.First(), right.First())), nil
}

// VisitUnaryOp passes the operand's type through.
func (a *Analyzer) VisitUnaryOp(node *ast.UnaryOp) (types.Result, error) {
	return node.Operand.Accept(a)
}

// VisitMalloc validates the size expression.
func (a *Analyzer) VisitMalloc(node *ast.Malloc) (types.Result, error) {
	return node.Size.Accept(a)
}

// VisitSqrt validates the operand; the result has the operand's type.
func (a *Analyzer) VisitSqrt(node *ast.Sqrt) (types.Result, error) {
	return node.Operand.Accept(a)
}
