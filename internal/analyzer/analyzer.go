// Package analyzer implements the semantic pass of the front end: a single
// depth-first walk over the AST that resolves every name against a tree of
// lexical scopes, computes a type for every expression, re-tags identifier
// references that resolve to array bindings, and attaches resolved function
// symbols to call sites. The first semantic error aborts the pass.
package analyzer

import (
	"github.com/olalang/olac/internal/ast"
	"github.com/olalang/olac/internal/diagnostics"
	"github.com/olalang/olac/internal/manifest"
	"github.com/olalang/olac/internal/symbols"
	"github.com/olalang/olac/internal/token"
	"github.com/olalang/olac/internal/types"
)

const (
	globalScopeLabel = "global"
	entryScopeLabel  = "entry"
)

// Analyzer walks the AST once, threading a current-scope cursor through the
// traversal. It implements ast.Visitor.
type Analyzer struct {
	current *symbols.SymbolTable
	global  *symbols.SymbolTable
}

var _ ast.Visitor = (*Analyzer)(nil)

// New builds an analyzer whose global scope is seeded from the invocation
// manifest: the builtin type names, then every input, context variable, and
// output. A binding of length 1 becomes a scalar felt variable, a longer one
// a felt array of that length; context variables are scalar felts.
func New(m *manifest.Manifest) *Analyzer {
	global := symbols.New(globalScopeLabel, 1, nil)
	registerBuiltins(global)

	for _, in := range m.Inputs {
		insertFeltBinding(global, in.Name, in.Length)
	}
	for _, name := range m.Context {
		global.Insert(symbols.Symbol{
			Name:    name,
			Kind:    symbols.VariableSymbol,
			Builtin: types.Scalar(types.Felt),
		})
	}
	for _, out := range m.Outputs {
		insertFeltBinding(global, out.Name, out.Length)
	}

	return &Analyzer{current: global, global: global}
}

func registerBuiltins(scope *symbols.SymbolTable) {
	scope.Insert(symbols.Symbol{Name: "felt", Kind: symbols.BuiltinSymbol, Builtin: types.Scalar(types.Felt)})
	scope.Insert(symbols.Symbol{Name: "i32", Kind: symbols.BuiltinSymbol, Builtin: types.Scalar(types.I32)})
}

func insertFeltBinding(scope *symbols.SymbolTable, name string, length int) {
	sym := symbols.Symbol{
		Name:    name,
		Kind:    symbols.VariableSymbol,
		Builtin: types.Scalar(types.Felt),
	}
	if length > 1 {
		sym.ArrayLen = length
	}
	scope.Insert(sym)
}

// Analyze runs the pass over prog. On success the tree has been annotated in
// place and the scope tree is reachable through GlobalScope; on error the
// pass stops at the first violation and partial annotations are not usable.
func (a *Analyzer) Analyze(prog *ast.Program) error {
	if prog == nil {
		return diagnostics.Internalf("no program to analyze")
	}
	_, err := prog.Accept(a)
	return err
}

// GlobalScope returns the root scope, for downstream name and type lookups.
func (a *Analyzer) GlobalScope() *symbols.SymbolTable {
	return a.global
}

// CurrentScope returns the scope the cursor points at. Outside a running
// traversal this is the global scope: every scope entry restores the cursor
// on exit, including on the error path.
func (a *Analyzer) CurrentScope() *symbols.SymbolTable {
	return a.current
}

// enterScope swaps the cursor to a fresh child scope and returns the restore
// function, which the caller must defer.
func (a *Analyzer) enterScope(label string) func() {
	saved := a.current
	a.current = symbols.New(label, saved.Depth()+1, saved)
	return func() { a.current = saved }
}

// primOf maps a builtin-type token to its scalar prim.
func primOf(tok token.Token) (types.Prim, error) {
	switch tok.Type {
	case token.FELT:
		return types.Felt, nil
	case token.I32:
		return types.I32, nil
	default:
		return types.Nil, diagnostics.Internalf("token '%s' does not name a builtin type", tok.Lexeme)
	}
}

// VisitProgram walks the top-level declarations, then the entry block.
func (a *Analyzer) VisitProgram(node *ast.Program) (types.Result, error) {
	for _, decl := range node.Declarations {
		if _, err := decl.Accept(a); err != nil {
			return types.Single(types.NilValue), err
		}
	}
	if node.Entry == nil {
		return types.Single(types.NilValue), diagnostics.Internalf("program has no entry block")
	}
	return node.Entry.Accept(a)
}

// VisitEntryBlock opens the entry scope one level below the scope of the
// top-level declarations, then walks the block's own declarations and body.
func (a *Analyzer) VisitEntryBlock(node *ast.EntryBlock) (types.Result, error) {
	leave := a.enterScope(entryScopeLabel)
	defer leave()

	for _, decl := range node.Declarations {
		if _, err := decl.Accept(a); err != nil {
			return types.Single(types.NilValue), err
		}
	}
	return node.Body.Accept(a)
}

// VisitBlock walks a function body. Blocks do not open a scope: the function
// scope created at function entry covers the body.
func (a *Analyzer) VisitBlock(node *ast.Block) (types.Result, error) {
	for _, decl := range node.Declarations {
		if _, err := decl.Accept(a); err != nil {
			return types.Single(types.NilValue), err
		}
	}
	return node.Body.Accept(a)
}

// VisitTypeSpec computes the value a type annotation denotes.
func (a *Analyzer) VisitTypeSpec(node *ast.TypeSpec) (types.Result, error) {
	prim, err := primOf(node.Token)
	if err != nil {
		return types.Single(types.NilValue), err
	}
	if node.IsArray() {
		return types.Single(types.Value{Prim: prim, Len: node.ArrayLen}), nil
	}
	return types.Single(types.Value{Prim: prim}), nil
}
