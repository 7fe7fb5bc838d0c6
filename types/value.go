package types

import (
	"math"
)

// An AtomValue holds a single scalar.
type AtomValue interface {
	Value
	// Elem returns the scalar, typed as one of the element types of this package.
	Elem() any
}

// A VectorValue holds an ordered, homogeneous sequence of scalars.
type VectorValue interface {
	Value
	// Index returns the i-th element, typed as one of the element types of this package.
	Index(i int) any
}

var (
	_ AtomValue   = Atom[Long]{}
	_ VectorValue = Vector[Long]{}
)

// Atom is a single scalar of kind T.
type Atom[T Scalar] struct {
	V T
}

// NewAtom returns an atom holding x.
func NewAtom[T Scalar](x T) Atom[T] {
	return Atom[T]{V: x}
}

// Null returns the generic null atom: a null float.
func Null() Atom[Float] {
	return Atom[Float]{V: Float(math.NaN())}
}

func (a Atom[T]) Kind() Kind {
	return a.V.Kind()
}

func (a Atom[T]) Len() int {
	return 1
}

func (a Atom[T]) Elem() any {
	return a.V
}

// IsNull returns whether the atom holds the null sentinel of its kind.
func (a Atom[T]) IsNull() bool {
	return a.V.IsNull()
}

func (a Atom[T]) String() string {
	return formatScalar(a.V, true)
}

func (a Atom[T]) collapse(l List) Value {
	return collapseAtoms[T](l)
}

func (Atom[T]) value() {}

// Vector is an ordered sequence of scalars of kind T.
type Vector[T Scalar] struct {
	Elems []T
}

// NewVector returns a vector holding xs. The slice is not copied.
func NewVector[T Scalar](xs ...T) Vector[T] {
	if xs == nil {
		xs = []T{}
	}
	return Vector[T]{Elems: xs}
}

// NewString returns a char vector holding the bytes of s.
func NewString(s string) Vector[Char] {
	cs := make([]Char, len(s))
	for i := 0; i < len(s); i++ {
		cs[i] = Char(s[i])
	}
	return Vector[Char]{Elems: cs}
}

// NewSymbols returns a symbol vector.
func NewSymbols(ss ...string) Vector[Symbol] {
	syms := make([]Symbol, len(ss))
	for i, s := range ss {
		syms[i] = Symbol(s)
	}
	return Vector[Symbol]{Elems: syms}
}

func (v Vector[T]) Kind() Kind {
	var z T
	return z.Kind()
}

func (v Vector[T]) Len() int {
	return len(v.Elems)
}

func (v Vector[T]) Index(i int) any {
	return v.Elems[i]
}

// At returns the i-th element as an atom.
func (v Vector[T]) At(i int) Atom[T] {
	return Atom[T]{V: v.Elems[i]}
}

func (v Vector[T]) String() string {
	return formatVector(v)
}

func (Vector[T]) value() {}

// AsString returns the content of a char vector as a Go string.
func AsString(v Vector[Char]) string {
	b := make([]byte, len(v.Elems))
	for i, c := range v.Elems {
		b[i] = byte(c)
	}
	return string(b)
}

// DefaultDomain is the name of the symbol domain used by enumerations
// that don't name one.
const DefaultDomain = "sym"

// EnumAtom is an index into a named symbol domain.
type EnumAtom struct {
	Domain string
	Index  Enum
}

func (EnumAtom) Kind() Kind { return KindEnum }
func (EnumAtom) Len() int   { return 1 }
func (e EnumAtom) Elem() any {
	return e.Index
}

// DomainName returns the domain of e, or DefaultDomain if not set.
func (e EnumAtom) DomainName() string {
	if e.Domain == "" {
		return DefaultDomain
	}
	return e.Domain
}

func (e EnumAtom) String() string {
	return "`" + e.DomainName() + "$" + formatEnumIndex(e.Index)
}

func (e EnumAtom) collapse(l List) Value {
	out := make([]Enum, len(l.Elems))
	for i, x := range l.Elems {
		a, ok := x.(EnumAtom)
		if !ok || a.DomainName() != e.DomainName() {
			return l
		}
		out[i] = a.Index
	}
	return EnumVector{Domain: e.Domain, Indices: out}
}

func (EnumAtom) value() {}

// EnumVector is a sequence of indexes into a named symbol domain.
type EnumVector struct {
	Domain  string
	Indices []Enum
}

func (EnumVector) Kind() Kind { return KindEnum }
func (e EnumVector) Len() int { return len(e.Indices) }
func (e EnumVector) Index(i int) any {
	return e.Indices[i]
}

// DomainName returns the domain of e, or DefaultDomain if not set.
func (e EnumVector) DomainName() string {
	if e.Domain == "" {
		return DefaultDomain
	}
	return e.Domain
}

func (e EnumVector) String() string {
	return formatEnumVector(e)
}

func (EnumVector) value() {}
