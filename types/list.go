package types

// List is a general list: its elements may be of any kind.
type List struct {
	Elems []Value
}

// NewList returns a general list holding vs. The slice is not copied.
func NewList(vs ...Value) List {
	if vs == nil {
		vs = []Value{}
	}
	return List{Elems: vs}
}

func (List) Kind() Kind {
	return KindList
}

func (l List) Len() int {
	return len(l.Elems)
}

// At returns the i-th element of the list.
func (l List) At(i int) Value {
	return l.Elems[i]
}

func (l List) String() string {
	return formatList(l)
}

func (List) value() {}

type collapser interface {
	collapse(l List) Value
}

// Collapse rewrites l into a single vector if every element of l
// is an atom of the same kind. Otherwise l is returned unchanged.
func Collapse(l List) Value {
	if len(l.Elems) == 0 {
		return l
	}

	c, ok := l.Elems[0].(collapser)
	if !ok {
		return l
	}

	return c.collapse(l)
}

func collapseAtoms[T Scalar](l List) Value {
	out := make([]T, len(l.Elems))
	for i, x := range l.Elems {
		a, ok := x.(Atom[T])
		if !ok {
			return l
		}
		out[i] = a.V
	}

	return Vector[T]{Elems: out}
}
