package lazy

// Pair groups two values of independent types, as produced by Zip and
// Enumerate.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Concat yields all elements of the given sequences, in argument order.
// If an earlier sequence is infinite, the later ones are never reached.
func Concat[T any](seqs ...Seq[T]) Seq[T] {
	cells := make([]Cell[T], len(seqs))
	for i, s := range seqs {
		cells[i] = s.cell
	}
	return FromCell(concatCell(nil, cells))
}

func concatCell[T any](cur Cell[T], rest []Cell[T]) Cell[T] {
	return func() (T, Cell[T], bool) {
		c, rem := cur, rest
		for {
			v, next, ok := force(c)
			if ok {
				return v, concatCell(next, rem), true
			}
			if len(rem) == 0 {
				return stop[T]()
			}
			c, rem = rem[0], rem[1:]
		}
	}
}

// Flatten concatenates a sequence of sequences in order. Only the currently
// active inner sequence and the lazy tail of outer sequences are held; inner
// sequences past the current one are not touched.
func Flatten[T any](s Seq[Seq[T]]) Seq[T] {
	return FromCell(flattenCell(nil, s.cell))
}

func flattenCell[T any](inner Cell[T], outer Cell[Seq[T]]) Cell[T] {
	return func() (T, Cell[T], bool) {
		in, out := inner, outer
		for {
			v, next, ok := force(in)
			if ok {
				return v, flattenCell(next, out), true
			}
			s, outNext, ok := force(out)
			if !ok {
				return stop[T]()
			}
			in, out = s.cell, outNext
		}
	}
}

// FlatMap maps each element of s to a sequence and concatenates the results.
func FlatMap[T, R any](s Seq[T], f func(T) Seq[R]) Seq[R] {
	return Flatten(Map(s, f))
}

// Zip pairs up two sequences element-wise, pulling one element from each side
// per output pair. It terminates as soon as either side does: the longer
// side's surplus is dropped, not padded.
func Zip[T1, T2 any](a Seq[T1], b Seq[T2]) Seq[Pair[T1, T2]] {
	return FromCell(zipCell(a.cell, b.cell))
}

func zipCell[T1, T2 any](a Cell[T1], b Cell[T2]) Cell[Pair[T1, T2]] {
	return func() (Pair[T1, T2], Cell[Pair[T1, T2]], bool) {
		v1, next1, ok := force(a)
		if !ok {
			return stop[Pair[T1, T2]]()
		}
		v2, next2, ok := force(b)
		if !ok {
			return stop[Pair[T1, T2]]()
		}
		return Pair[T1, T2]{V1: v1, V2: v2}, zipCell(next1, next2), true
	}
}

// Interleave alternates elements of a and b, starting with a. Once one side
// is exhausted the remainder of the other is yielded uninterrupted, unlike
// Zip which truncates.
func Interleave[T any](a, b Seq[T]) Seq[T] {
	return FromCell(interleaveCell(a.cell, b.cell))
}

func interleaveCell[T any](turn, other Cell[T]) Cell[T] {
	return func() (T, Cell[T], bool) {
		v, next, ok := force(turn)
		if !ok {
			return force(other)
		}
		return v, interleaveCell(other, next), true
	}
}

// Cycle repeats the entire sequence forever. Each pass re-drives the original
// handle from its first cell, so stateful combinators in s behave identically
// on every pass.
//
// Cycle of an empty sequence spins forever without yielding: the wrap-around
// keeps finding no elements. Guard with a known-nonempty input or bound the
// consumer.
func Cycle[T any](s Seq[T]) Seq[T] {
	return FromCell(cycleCell(s.cell, s.cell))
}

func cycleCell[T any](cur, start Cell[T]) Cell[T] {
	return func() (T, Cell[T], bool) {
		c := cur
		for {
			v, next, ok := force(c)
			if ok {
				return v, cycleCell(next, start), true
			}
			c = start
		}
	}
}

// ChunkBy groups consecutive elements of s sharing the same key into eager
// slices, one slice per maximal run, preserving input order within and across
// runs. Detecting a run boundary needs one element of lookahead; the
// lookahead element becomes the first member of the next group.
func ChunkBy[T any, K comparable](s Seq[T], keyOf func(T) K) Seq[[]T] {
	return FromCell(chunkByCell(s.cell, keyOf))
}

func chunkByCell[T any, K comparable](c Cell[T], keyOf func(T) K) Cell[[]T] {
	return func() ([]T, Cell[[]T], bool) {
		v, next, ok := force(c)
		if !ok {
			return stop[[]T]()
		}
		key := keyOf(v)
		run := []T{v}
		for {
			v2, next2, ok := force(next)
			if !ok {
				return run, chunkByCell(next2, keyOf), true
			}
			if keyOf(v2) != key {
				return run, chunkByCell(cons(v2, next2), keyOf), true
			}
			run = append(run, v2)
			next = next2
		}
	}
}

// Chunk groups elements of s into runs of the given size. The final run may
// be shorter when the input length is not a multiple of size, and an empty
// input yields no runs at all. A size below 1 is clamped to 1.
func Chunk[T any](s Seq[T], size int) Seq[[]T] {
	if size < 1 {
		size = 1
	}
	return FromCell(chunkCell(s.cell, size))
}

func chunkCell[T any](c Cell[T], size int) Cell[[]T] {
	return func() ([]T, Cell[[]T], bool) {
		cur := c
		batch := make([]T, 0, size)
		for len(batch) < size {
			v, next, ok := force(cur)
			if !ok {
				break
			}
			batch = append(batch, v)
			cur = next
		}
		if len(batch) == 0 {
			return stop[[]T]()
		}
		return batch, chunkCell(cur, size), true
	}
}
