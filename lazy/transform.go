package lazy

// Map applies transform to each element of s, preserving length and
// termination point.
func Map[T, R any](s Seq[T], transform func(T) R) Seq[R] {
	return FromCell(mapCell(s.cell, transform))
}

func mapCell[T, R any](c Cell[T], transform func(T) R) Cell[R] {
	return func() (R, Cell[R], bool) {
		v, next, ok := force(c)
		if !ok {
			return stop[R]()
		}
		return transform(v), mapCell(next, transform), true
	}
}

// Filter yields only the elements of s that satisfy the predicate. A single
// pull may drive several upstream elements before one passes.
func Filter[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return FromCell(filterCell(s.cell, predicate))
}

func filterCell[T any](c Cell[T], predicate func(T) bool) Cell[T] {
	return func() (T, Cell[T], bool) {
		cur := c
		for {
			v, next, ok := force(cur)
			if !ok {
				return stop[T]()
			}
			if predicate(v) {
				return v, filterCell(next, predicate), true
			}
			cur = next
		}
	}
}

// Take yields at most n elements of s, stopping early regardless of upstream
// length. n <= 0 yields nothing.
func Take[T any](s Seq[T], n int) Seq[T] {
	return FromCell(takeCell(s.cell, n))
}

func takeCell[T any](c Cell[T], n int) Cell[T] {
	return func() (T, Cell[T], bool) {
		if n <= 0 {
			return stop[T]()
		}
		v, next, ok := force(c)
		if !ok {
			return stop[T]()
		}
		return v, takeCell(next, n-1), true
	}
}

// Skip discards the first n elements of s, then passes the rest through.
// The discarding happens on the first pull, not at construction. If s has
// fewer than n elements the result is empty.
func Skip[T any](s Seq[T], n int) Seq[T] {
	return FromCell(skipCell(s.cell, n))
}

func skipCell[T any](c Cell[T], n int) Cell[T] {
	return func() (T, Cell[T], bool) {
		cur := c
		for i := 0; i < n; i++ {
			_, next, ok := force(cur)
			if !ok {
				return stop[T]()
			}
			cur = next
		}
		return force(cur)
	}
}

// TakeWhile yields elements of s until the first one failing the predicate,
// then terminates for good: elements past the first failure are never
// yielded, even if they would pass.
func TakeWhile[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return FromCell(takeWhileCell(s.cell, predicate))
}

func takeWhileCell[T any](c Cell[T], predicate func(T) bool) Cell[T] {
	return func() (T, Cell[T], bool) {
		v, next, ok := force(c)
		if !ok || !predicate(v) {
			return stop[T]()
		}
		return v, takeWhileCell(next, predicate), true
	}
}

// DropWhile discards the leading run of elements satisfying the predicate,
// then yields everything from the first failing element onward unchanged.
func DropWhile[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return FromCell(dropWhileCell(s.cell, predicate))
}

func dropWhileCell[T any](c Cell[T], predicate func(T) bool) Cell[T] {
	return func() (T, Cell[T], bool) {
		cur := c
		for {
			v, next, ok := force(cur)
			if !ok {
				return stop[T]()
			}
			if !predicate(v) {
				return v, next, true
			}
			cur = next
		}
	}
}

// Scan is the lazy counterpart of Reduce: it yields the running accumulator
// after folding in each element. One output per input; the first output is
// reducer(initial, first), not initial itself.
func Scan[T, R any](s Seq[T], initial R, reducer func(R, T) R) Seq[R] {
	return FromCell(scanCell(s.cell, initial, reducer))
}

func scanCell[T, R any](c Cell[T], acc R, reducer func(R, T) R) Cell[R] {
	return func() (R, Cell[R], bool) {
		v, next, ok := force(c)
		if !ok {
			return stop[R]()
		}
		res := reducer(acc, v)
		return res, scanCell(next, res, reducer), true
	}
}

// Enumerate pairs each element with its zero-based position.
func Enumerate[T any](s Seq[T]) Seq[Pair[int, T]] {
	return FromCell(enumerateCell(s.cell, 0))
}

func enumerateCell[T any](c Cell[T], index int) Cell[Pair[int, T]] {
	return func() (Pair[int, T], Cell[Pair[int, T]], bool) {
		v, next, ok := force(c)
		if !ok {
			return stop[Pair[int, T]]()
		}
		return Pair[int, T]{V1: index, V2: v}, enumerateCell(next, index+1), true
	}
}

// Intersperse inserts sep between consecutive elements of s, never before the
// first or after the last. A sequence of length <= 1 is unchanged.
func Intersperse[T any](s Seq[T], sep T) Seq[T] {
	return FromCell(intersperseCell(s.cell, sep))
}

func intersperseCell[T any](c Cell[T], sep T) Cell[T] {
	return func() (T, Cell[T], bool) {
		v, next, ok := force(c)
		if !ok {
			return stop[T]()
		}
		return v, sepCell(next, sep), true
	}
}

// sepCell peeks one element ahead: sep is emitted only when another element
// actually follows, which the lookahead element is then re-prepended before.
func sepCell[T any](c Cell[T], sep T) Cell[T] {
	return func() (T, Cell[T], bool) {
		v, next, ok := force(c)
		if !ok {
			return stop[T]()
		}
		return sep, cons(v, sepCell(next, sep)), true
	}
}
