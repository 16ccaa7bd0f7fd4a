package lists

import (
	"fmt"
	"iter"
	"slices"
)

// ArrayList is a slice-backed List. Appends are amortized O(1); prepends
// shift the whole slice and cost O(n).
type ArrayList[T any] struct {
	data []T
}

var (
	ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")
)

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

// NewArrayListOf builds an ArrayList holding the given elements.
func NewArrayListOf[T any](values ...T) *ArrayList[T] {
	al := NewArrayList[T](len(values))
	al.Add(values...)
	return al
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Prepend(value T) {
	var zero T
	al.data = append(al.data, zero)
	copy(al.data[1:], al.data)
	al.data[0] = value
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Reverse() {
	slices.Reverse(al.data)
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

// ToSlice returns a copy of the underlying slice.
// Note: If T is a pointer or reference type, the referenced data is shared.
func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}
