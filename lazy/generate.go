package lazy

import "strand/lists"

// Unfold builds a sequence from a seed accumulator and a step function.
// Each pull applies step to the current accumulator; step returns the element
// to yield and the next accumulator, or ok == false to terminate.
//
// Unfold is the universal producer; every other producer in this package is a
// special case of it.
func Unfold[A, T any](seed A, step func(A) (T, A, bool)) Seq[T] {
	return FromCell(unfoldCell(seed, step))
}

func unfoldCell[A, T any](acc A, step func(A) (T, A, bool)) Cell[T] {
	return func() (T, Cell[T], bool) {
		v, next, ok := step(acc)
		if !ok {
			return stop[T]()
		}
		return v, unfoldCell(next, step), true
	}
}

// FromSlice yields the elements of values in order, one per pull.
// The slice is not copied; mutating it after construction forfeits replay
// determinism.
func FromSlice[T any](values []T) Seq[T] {
	return Unfold(0, func(i int) (T, int, bool) {
		if i >= len(values) {
			var zero T
			return zero, i, false
		}
		return values[i], i + 1, true
	})
}

// Of yields the given elements in order.
func Of[T any](values ...T) Seq[T] {
	return FromSlice(values)
}

// FromList yields the elements of an eager list in stored order.
func FromList[T any](l lists.List[T]) Seq[T] {
	return Unfold(0, func(i int) (T, int, bool) {
		v, err := l.Get(i)
		if err != nil {
			var zero T
			return zero, i, false
		}
		return v, i + 1, true
	})
}

// Repeat yields value forever. Draining consumers never return; bound the
// result with Take or TakeWhile, or use a short-circuiting consumer.
func Repeat[T any](value T) Seq[T] {
	var c Cell[T]
	c = func() (T, Cell[T], bool) {
		return value, c, true
	}
	return FromCell(c)
}

// RepeatFunc yields a fresh f() result on every pull, forever. An impure f
// makes the sequence non-replayable (each traversal re-invokes f).
func RepeatFunc[T any](f func() T) Seq[T] {
	var c Cell[T]
	c = func() (T, Cell[T], bool) {
		return f(), c, true
	}
	return FromCell(c)
}

// Range yields the integers from start toward end, excluding end, stepping by
// +1 when start < end and by -1 otherwise. Range(n, n) yields nothing.
func Range(start, end int) Seq[int] {
	step := 1
	if start > end {
		step = -1
	}
	return Unfold(start, func(i int) (int, int, bool) {
		if i == end {
			return 0, i, false
		}
		return i, i + step, true
	})
}

// Iterate yields initial, f(initial), f(f(initial)), ... forever.
func Iterate[T any](initial T, f func(T) T) Seq[T] {
	return Unfold(initial, func(cur T) (T, T, bool) {
		return cur, f(cur), true
	})
}

// Once yields the result of a single f() call, computed on first pull.
func Once[T any](f func() T) Seq[T] {
	return FromCell(func() (T, Cell[T], bool) {
		return f(), terminal[T](), true
	})
}

// Single yields exactly one element.
func Single[T any](value T) Seq[T] {
	return FromCell(cons(value, terminal[T]()))
}

// Empty yields nothing. Equivalent to the zero Seq.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}
