package lists

import "iter"

// List defines a generic eager ordered collection.
// It is the materialization target for lazy pipelines and supplies the
// ordered primitives they rely on: O(1) append, O(1) prepend on the linked
// implementation, O(n) reverse.
type List[T any] interface {
	// Add appends one or more elements to the end of the list.
	Add(values ...T)

	// Prepend inserts an element at the front of the list.
	// O(1) on LinkedList, O(n) on ArrayList.
	Prepend(value T)

	// Get retrieves the element at the specified index.
	// Returns ErrIndexOutOfBounds if index is out of bounds.
	Get(index int) (T, error)

	// Size returns the current number of elements in the list.
	Size() int

	// IsEmpty checks if the list is empty.
	IsEmpty() bool

	// Reverse reverses the element order in place.
	Reverse()

	// Values returns an iterator over the elements in stored order.
	Values() iter.Seq[T]

	// ToSlice converts the list to a native slice.
	// This is an "escape hatch" for users to fall back to standard library operations.
	ToSlice() []T
}
