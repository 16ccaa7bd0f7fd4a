package sliceutil

// Filter returns the elements of collection that satisfy the predicate,
// preserving order.
func Filter[T any](collection []T, predicate func(T) bool) []T {
	res := make([]T, 0, len(collection))
	for _, v := range collection {
		if predicate(v) {
			res = append(res, v)
		}
	}
	return res
}

// Map transforms a slice of type T to a slice of type R.
func Map[T any, R any](collection []T, transform func(T) R) []R {
	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = transform(v)
	}
	return res
}

// Reduce folds a slice of type T into a single value of type R.
func Reduce[T any, R any](collection []T, initial R, accumulator func(R, T) R) R {
	result := initial
	for _, item := range collection {
		result = accumulator(result, item)
	}
	return result
}

// TryReduce is Reduce with a fallible accumulator. The first error aborts the
// fold and is returned along with the accumulator so far.
func TryReduce[T any, R any](collection []T, initial R, accumulator func(R, T) (R, error)) (R, error) {
	result := initial
	for _, item := range collection {
		var err error
		result, err = accumulator(result, item)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

// ChunkCopy splits a slice into chunks of the given size, copying each chunk
// into a fresh slice. The last chunk may be shorter. A size below 1 is
// clamped to 1.
func ChunkCopy[T any](collection []T, size int) [][]T {
	if size < 1 {
		size = 1
	}
	res := make([][]T, 0, (len(collection)+size-1)/size)
	for i := 0; i < len(collection); i += size {
		end := min(i+size, len(collection))
		chunk := make([]T, end-i)
		copy(chunk, collection[i:end])
		res = append(res, chunk)
	}
	return res
}

// GroupBy buckets the elements of collection by key, preserving element order
// within each bucket.
func GroupBy[T any, K comparable](collection []T, keyOf func(T) K) map[K][]T {
	res := make(map[K][]T)
	for _, v := range collection {
		k := keyOf(v)
		res[k] = append(res[k], v)
	}
	return res
}
