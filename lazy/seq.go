package lazy

// Cell is a suspension cell: a zero-argument computation standing for the
// rest of a sequence. Invoking it advances the sequence by exactly one
// element, returning the element and the cell for the remainder, or reports
// exhaustion with ok == false.
//
// Cells returned by this package are pure values: invoking the same cell
// twice yields the same outcome, and the tail returned on exhaustion keeps
// reporting exhaustion. Suspending is just returning a Cell; resuming is
// invoking it. There is no hidden execution context.
type Cell[T any] func() (value T, next Cell[T], ok bool)

// Seq is an immutable handle over a (possibly unbounded) sequence of T.
// The zero value is a valid empty sequence.
//
// Every combinator returns a new Seq and never mutates its input, so a
// handle may be kept, shared, and re-driven from the same point by multiple
// independent consumers. See the package documentation for the one purity
// caveat.
type Seq[T any] struct {
	cell Cell[T]
}

// FromCell wraps a raw suspension cell in a handle. The cell must follow the
// Cell contract; most callers want a producer such as Unfold instead.
func FromCell[T any](cell Cell[T]) Seq[T] {
	return Seq[T]{cell: cell}
}

// Next exposes one step of laziness: it returns the head element and a handle
// for the remainder, or ok == false when the sequence is exhausted. The
// receiver is unchanged and may be stepped again.
func (s Seq[T]) Next() (T, Seq[T], bool) {
	v, next, ok := force(s.cell)
	if !ok {
		var zero T
		return zero, Seq[T]{}, false
	}
	return v, Seq[T]{cell: next}, true
}

// force invokes a cell, treating nil as exhausted. All internal pulls go
// through here so the zero Seq behaves as empty.
func force[T any](c Cell[T]) (T, Cell[T], bool) {
	if c == nil {
		var zero T
		return zero, nil, false
	}
	return c()
}

// terminal returns a cell that reports exhaustion forever.
func terminal[T any]() Cell[T] {
	var c Cell[T]
	c = func() (T, Cell[T], bool) {
		var zero T
		return zero, c, false
	}
	return c
}

// stop is the conventional exhausted return for cell bodies.
func stop[T any]() (T, Cell[T], bool) {
	var zero T
	return zero, terminal[T](), false
}

// cons prepends an already-produced element onto a tail cell.
func cons[T any](v T, next Cell[T]) Cell[T] {
	return func() (T, Cell[T], bool) {
		return v, next, true
	}
}
