package lists

import (
	"fmt"
	"iter"
	"strings"

	list "github.com/bahlo/generic-list-go"
)

// LinkedList is a doubly linked List with O(1) append and prepend, built on
// generic-list-go. Indexed access walks the chain and costs O(n); prefer
// ArrayList when random access dominates.
type LinkedList[T any] struct {
	inner *list.List[T]
}

func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{inner: list.New[T]()}
}

// NewLinkedListOf builds a LinkedList holding the given elements.
func NewLinkedListOf[T any](values ...T) *LinkedList[T] {
	ll := NewLinkedList[T]()
	ll.Add(values...)
	return ll
}

func (ll *LinkedList[T]) Add(values ...T) {
	for _, v := range values {
		ll.inner.PushBack(v)
	}
}

func (ll *LinkedList[T]) Prepend(value T) {
	ll.inner.PushFront(value)
}

func (ll *LinkedList[T]) Get(index int) (T, error) {
	if index < 0 || index >= ll.inner.Len() {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	e := ll.inner.Front()
	for i := 0; i < index; i++ {
		e = e.Next()
	}
	return e.Value, nil
}

func (ll *LinkedList[T]) Size() int {
	return ll.inner.Len()
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.inner.Len() == 0
}

// Reverse relinks the chain back to front by re-pushing each element at the
// front of a fresh list. O(n) time, O(n) new nodes.
func (ll *LinkedList[T]) Reverse() {
	reversed := list.New[T]()
	for e := ll.inner.Front(); e != nil; e = e.Next() {
		reversed.PushFront(e.Value)
	}
	ll.inner = reversed
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := ll.inner.Front(); e != nil; e = e.Next() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) ToSlice() []T {
	res := make([]T, 0, ll.inner.Len())
	for e := ll.inner.Front(); e != nil; e = e.Next() {
		res = append(res, e.Value)
	}
	return res
}

// String implements fmt.Stringer for easier debugging.
func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for e := ll.inner.Front(); e != nil; e = e.Next() {
		if e != ll.inner.Front() {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", e.Value)
	}
	sb.WriteByte(']')
	return sb.String()
}
