package symbols

import (
	"github.com/olalang/olac/internal/diagnostics"
	"github.com/olalang/olac/internal/types"
)

// Kind distinguishes the three symbol variants a scope can hold.
type Kind int

const (
	// BuiltinSymbol names a language builtin type ("felt", "i32"). These are
	// pre-registered in the global scope, never user-declared.
	BuiltinSymbol Kind = iota
	// VariableSymbol is a declared value binding.
	VariableSymbol
	// FunctionSymbol is a function signature plus a handle to its body.
	FunctionSymbol
)

func (k Kind) String() string {
	switch k {
	case BuiltinSymbol:
		return "builtin"
	case VariableSymbol:
		return "variable"
	default:
		return "function"
	}
}

// Param is one formal parameter of a function signature, in declaration
// order. Type carries the full declared type, including array length.
type Param struct {
	Name string
	Type types.Builtin
}

// FuncBody is the opaque handle to a function's body subtree stored with a
// FunctionSymbol. It is satisfied by *ast.Block; keeping it an interface here
// lets later stages retrieve the body without this package depending on the
// tree shape.
type FuncBody interface {
	TokenLiteral() string
}

// Symbol is a named entity recorded in a scope. It is a value type: Lookup
// hands out copies, so holders can never mutate a scope's store through one.
type Symbol struct {
	Name string
	Kind Kind

	// Builtin is the named type for BuiltinSymbol, or the element type for
	// VariableSymbol (always scalar; ArrayLen carries the array-ness).
	Builtin types.Builtin
	// ArrayLen is the declared array length of a variable, 0 for scalars.
	// It is set once at declaration or parameter binding and never changes.
	ArrayLen int

	// Params and Body are set only for FunctionSymbol.
	Params []Param
	Body   FuncBody
}

// IsArray reports whether the symbol is an array-typed variable.
func (s Symbol) IsArray() bool {
	return s.ArrayLen > 0
}

// Type returns the full declared type of a variable symbol, folding the
// array length back into the builtin descriptor.
func (s Symbol) Type() types.Builtin {
	if s.IsArray() {
		return types.Array(s.Builtin.Prim, s.ArrayLen)
	}
	return s.Builtin
}

// SymbolTable is one lexical scope: a name-to-symbol store plus a reference
// to the enclosing scope. Scopes form a parent-linked tree; every child
// keeps its parent alive, and a scope is dropped once traversal of the
// subtree it covers has finished.
type SymbolTable struct {
	label string
	depth int
	outer *SymbolTable
	store map[string]Symbol
}

// New creates a scope. depth must be outer's depth plus one, or 1 when outer
// is nil (the global scope). The label is only for diagnostics and dumps.
func New(label string, depth int, outer *SymbolTable) *SymbolTable {
	return &SymbolTable{
		label: label,
		depth: depth,
		outer: outer,
		store: make(map[string]Symbol),
	}
}

// Label returns the human-readable scope label.
func (s *SymbolTable) Label() string { return s.label }

// Depth returns the nesting depth (global scope = 1).
func (s *SymbolTable) Depth() int { return s.depth }

// Outer returns the enclosing scope, nil at the root.
func (s *SymbolTable) Outer() *SymbolTable { return s.outer }

// Len returns the number of symbols stored in this scope alone.
func (s *SymbolTable) Len() int { return len(s.store) }

// Insert records sym under its name in this scope only. A second insert for
// the same name overwrites silently: duplicate detection is the analyzer's
// responsibility and happens before insertion.
func (s *SymbolTable) Insert(sym Symbol) {
	s.store[sym.Name] = sym
}

// Replace discards this scope's store and installs the given symbols. The
// analyzer uses it to populate a fresh function scope with exactly the
// parameter bindings.
func (s *SymbolTable) Replace(syms map[string]Symbol) {
	s.store = make(map[string]Symbol, len(syms))
	for name, sym := range syms {
		s.store[name] = sym
	}
}

// Lookup resolves name in this scope, then up the enclosing chain. This is
// the sole name-resolution mechanism of the language; there is no local-only
// or global-only query. The returned symbol is a copy.
func (s *SymbolTable) Lookup(name string) (Symbol, bool) {
	if sym, ok := s.store[name]; ok {
		return sym, true
	}
	if s.outer != nil {
		return s.outer.Lookup(name)
	}
	return Symbol{}, false
}

// ResolveBuiltin resolves a builtin-type name through the chain. The grammar
// guarantees type-annotation tokens are always pre-registered, so a miss or
// a non-builtin hit is an invariant violation, not a user diagnostic.
func (s *SymbolTable) ResolveBuiltin(name string) (Symbol, error) {
	sym, ok := s.Lookup(name)
	if !ok {
		return Symbol{}, diagnostics.Internalf("builtin type '%s' is not registered", name)
	}
	if sym.Kind != BuiltinSymbol {
		return Symbol{}, diagnostics.Internalf("'%s' resolves to a %s, expected a builtin type", name, sym.Kind)
	}
	return sym, nil
}
