package ast

import "github.com/olalang/olac/internal/types"

// Visitor is the traversal contract of the semantic pass: one method per
// node kind. A method receives the node it visits and may mutate it; it
// returns the node's computed type value, or the semantic error that unwinds
// the whole pass. Nodes that stand for no value yield Single(NilValue).
type Visitor interface {
	VisitProgram(node *Program) (types.Result, error)
	VisitEntryBlock(node *EntryBlock) (types.Result, error)
	VisitBlock(node *Block) (types.Result, error)
	VisitDeclaration(node *Declaration) (types.Result, error)
	VisitTypeSpec(node *TypeSpec) (types.Result, error)

	VisitIdent(node *Ident) (types.Result, error)
	VisitContextIdent(node *ContextIdent) (types.Result, error)
	VisitIdentIndex(node *IdentIndex) (types.Result, error)
	VisitIntegerLit(node *IntegerLit) (types.Result, error)
	VisitFeltLit(node *FeltLit) (types.Result, error)
	VisitArrayLit(node *ArrayLit) (types.Result, error)
	VisitBinaryOp(node *BinaryOp) (types.Result, error)
	VisitUnaryOp(node *UnaryOp) (types.Result, error)
	VisitCall(node *Call) (types.Result, error)
	VisitMalloc(node *Malloc) (types.Result, error)
	VisitSqrt(node *Sqrt) (types.Result, error)

	VisitCompound(node *Compound) (types.Result, error)
	VisitAssign(node *Assign) (types.Result, error)
	VisitMultiAssign(node *MultiAssign) (types.Result, error)
	VisitCond(node *Cond) (types.Result, error)
	VisitLoop(node *Loop) (types.Result, error)
	VisitFunction(node *Function) (types.Result, error)
	VisitReturn(node *Return) (types.Result, error)
	VisitPrintf(node *Printf) (types.Result, error)
}
