package sliceutil

// Contains checks if the target element exists in the collection.
// Works for comparable types.
func Contains[T comparable](collection []T, target T) bool {
	for _, v := range collection {
		if v == target {
			return true
		}
	}
	return false
}

// ContainsFunc checks if any element satisfies the predicate.
// Useful for non-comparable types or custom matching logic.
func ContainsFunc[T any](collection []T, predicate func(T) bool) bool {
	for _, item := range collection {
		if predicate(item) {
			return true
		}
	}
	return false
}

// Find searches for the first element that satisfies the predicate.
// Returns the element and true if found, otherwise the zero value and false.
func Find[T any](collection []T, predicate func(T) bool) (T, bool) {
	for _, v := range collection {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// FindIndex searches for the index of the first element that satisfies the
// predicate. Returns -1 if no element matches.
func FindIndex[T any](collection []T, predicate func(T) bool) int {
	for i, item := range collection {
		if predicate(item) {
			return i
		}
	}
	return -1
}
