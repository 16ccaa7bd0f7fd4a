package lazy

import (
	"strand/dicts"
	"strand/lists"
)

// Reduce is a strict left fold: it drives the entire sequence, folding each
// element into the accumulator. It never returns on infinite input; use
// ReduceWhile or TryReduce there.
func Reduce[T, R any](s Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	c := s.cell
	for {
		v, next, ok := force(c)
		if !ok {
			return acc
		}
		acc = reducer(acc, v)
		c = next
	}
}

// ReduceWhile folds like Reduce, but the reducer also returns a continuation
// flag: returning false stops the traversal immediately and the accumulator
// returned alongside it becomes the result. Safe on infinite input as long as
// the reducer eventually stops.
func ReduceWhile[T, R any](s Seq[T], initial R, reducer func(R, T) (R, bool)) R {
	acc := initial
	c := s.cell
	for {
		v, next, ok := force(c)
		if !ok {
			return acc
		}
		var cont bool
		acc, cont = reducer(acc, v)
		if !cont {
			return acc
		}
		c = next
	}
}

// TryReduce folds like Reduce, but the reducer may fail. The first error
// aborts the traversal — elements past the failing one are never pulled —
// and is returned unchanged along with the accumulator so far.
func TryReduce[T, R any](s Seq[T], initial R, reducer func(R, T) (R, error)) (R, error) {
	acc := initial
	c := s.cell
	for {
		v, next, ok := force(c)
		if !ok {
			return acc, nil
		}
		var err error
		acc, err = reducer(acc, v)
		if err != nil {
			return acc, err
		}
		c = next
	}
}

// ReduceFirst folds the sequence seeded from its first element. Returns
// false on an empty sequence; a singleton reduces to its only element.
func ReduceFirst[T any](s Seq[T], reducer func(T, T) T) (T, bool) {
	v, rest, ok := s.Next()
	if !ok {
		var zero T
		return zero, false
	}
	return Reduce(rest, v, reducer), true
}

// First returns the head of the sequence, pulling exactly one element.
func First[T any](s Seq[T]) (T, bool) {
	v, _, ok := s.Next()
	return v, ok
}

// Last drives the whole sequence and returns its final element. Linear time,
// constant space; false on empty input.
func Last[T any](s Seq[T]) (T, bool) {
	return ReduceFirst(s, func(_, cur T) T { return cur })
}

// Find returns the first element satisfying the predicate, short-circuiting
// the rest of the sequence. False when no element matches.
func Find[T any](s Seq[T], predicate func(T) bool) (T, bool) {
	c := s.cell
	for {
		v, next, ok := force(c)
		if !ok {
			var zero T
			return zero, false
		}
		if predicate(v) {
			return v, true
		}
		c = next
	}
}

// Any reports whether any element satisfies the predicate, stopping at the
// first match. Any over an empty sequence is false.
func Any[T any](s Seq[T], predicate func(T) bool) bool {
	_, ok := Find(s, predicate)
	return ok
}

// All reports whether every element satisfies the predicate, stopping at the
// first failure. All over an empty sequence is true.
func All[T any](s Seq[T], predicate func(T) bool) bool {
	return !Any(s, func(v T) bool { return !predicate(v) })
}

// ForEach drives the whole sequence, applying action to each element.
func ForEach[T any](s Seq[T], action func(T)) {
	c := s.cell
	for {
		v, next, ok := force(c)
		if !ok {
			return
		}
		action(v)
		c = next
	}
}

// Drain drives the whole sequence purely for its side effects, discarding
// every element.
func Drain[T any](s Seq[T]) {
	ForEach(s, func(T) {})
}

// Count drives the whole sequence and returns its length.
func Count[T any](s Seq[T]) int {
	n := 0
	ForEach(s, func(T) { n++ })
	return n
}

// Collect materializes the sequence into a slice, preserving order.
func Collect[T any](s Seq[T]) []T {
	var result []T
	ForEach(s, func(v T) { result = append(result, v) })
	return result
}

// ToList materializes the sequence into an eager list, preserving order.
func ToList[T any](s Seq[T]) lists.List[T] {
	l := lists.NewArrayList[T](0)
	ForEach(s, func(v T) { l.Add(v) })
	return l
}

// GroupBy builds a dictionary from key to the elements sharing that key, in
// input order: keys appear in first-seen order and each group preserves the
// relative order of its members. Groups are appended to, never overwritten.
func GroupBy[T any, K comparable](s Seq[T], keyOf func(T) K) *dicts.Dict[K, []T] {
	groups := dicts.New[K, []T]()
	ForEach(s, func(v T) {
		groups.Update(keyOf(v), func(members []T, _ bool) []T {
			return append(members, v)
		})
	})
	return groups
}
