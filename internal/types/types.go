package types

import "strconv"

// Prim is a scalar builtin of the language. The set is closed: the field
// element of the proving system's native field and a 32-bit integer. Nil is
// the type of statements and of expressions that carry no value.
type Prim int

const (
	Nil Prim = iota
	I32
	Felt
)

func (p Prim) String() string {
	switch p {
	case Felt:
		return "felt"
	case I32:
		return "i32"
	default:
		return "nil"
	}
}

// Builtin is the declared type of a binding: a scalar Prim, or a fixed-length
// array of a scalar Prim when Len > 0. The grammar has no arrays of arrays.
// Builtin is an immutable value type.
type Builtin struct {
	Prim Prim
	Len  int
}

// Scalar returns the scalar builtin of the given prim.
func Scalar(p Prim) Builtin {
	return Builtin{Prim: p}
}

// Array returns the fixed-length array builtin with scalar element type elem.
func Array(elem Prim, n int) Builtin {
	return Builtin{Prim: elem, Len: n}
}

func (b Builtin) IsArray() bool {
	return b.Len > 0
}

func (b Builtin) String() string {
	if b.IsArray() {
		return b.Prim.String() + "[" + strconv.Itoa(b.Len) + "]"
	}
	return b.Prim.String()
}

// Value is the compile-time tag for what an expression evaluates to during
// the semantic pass. Like Builtin it is a prim plus an optional array length,
// but its prim may be Nil and it only ever exists while the pass runs.
type Value struct {
	Prim Prim
	Len  int
}

// NilValue is the value of statements and other non-value-producing forms.
var NilValue = Value{Prim: Nil}

// ValueOf converts a declared builtin type into its compile-time tag.
func ValueOf(b Builtin) Value {
	return Value{Prim: b.Prim, Len: b.Len}
}

func (v Value) IsArray() bool {
	return v.Len > 0
}

func (v Value) String() string {
	if v.IsArray() {
		return v.Prim.String() + "[" + strconv.Itoa(v.Len) + "]"
	}
	return v.Prim.String()
}

// Promote computes the result type of a binary operation over two operand
// values. It is total and deterministic over the finite type domain: the
// result is always scalar, and the prim is the wider operand prim under the
// order Nil < I32 < Felt. Array-shaped operands contribute their element
// prim, matching the representative-type reduction used at binop sites.
func Promote(a, b Value) Value {
	p := a.Prim
	if b.Prim > p {
		p = b.Prim
	}
	return Value{Prim: p}
}

// Equal is the structural equality used for call-argument matching: exact
// prim and length match, no implicit widening across call boundaries.
func Equal(a, b Value) bool {
	return a == b
}

// Result is what a node visit yields: a single value for ordinary
// expressions, or a sequence for array literals and multi-value call
// returns. Scalar contexts reduce a Multiple to its first element.
type Result struct {
	multi  bool
	values []Value
}

// Single wraps one value as a traversal result.
func Single(v Value) Result {
	return Result{values: []Value{v}}
}

// Multiple wraps a value sequence as a traversal result. The sequence must
// be non-empty; reductions take the first element as the representative.
func Multiple(vs []Value) Result {
	if len(vs) == 0 {
		panic("types: empty Multiple result")
	}
	return Result{multi: true, values: vs}
}

func (r Result) IsMultiple() bool {
	return r.multi
}

// Values returns the underlying value sequence.
func (r Result) Values() []Value {
	return r.values
}

// First reduces the result to its representative value: the value itself for
// a Single, the first element for a Multiple.
func (r Result) First() Value {
	if len(r.values) == 0 {
		return NilValue
	}
	return r.values[0]
}

// Representative reduces the result to the scalar-context value used when a
// call argument is matched against a formal parameter: a Single is taken
// as-is, a Multiple of n values collapses to an array of its first element's
// prim with length n.
func (r Result) Representative() Value {
	if !r.multi {
		return r.First()
	}
	return Value{Prim: r.values[0].Prim, Len: len(r.values)}
}
