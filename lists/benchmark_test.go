package lists_test

import (
	"testing"

	"strand/lists"
)

// BenchmarkPrepend compares front insertion, the operation the two
// implementations differ most on: O(1) per element on LinkedList, O(n) on
// ArrayList.
func BenchmarkPrepend(b *testing.B) {
	const n = 1024

	b.Run("ArrayList", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l := lists.NewArrayList[int](n)
			for j := 0; j < n; j++ {
				l.Prepend(j)
			}
		}
	})

	b.Run("LinkedList", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l := lists.NewLinkedList[int]()
			for j := 0; j < n; j++ {
				l.Prepend(j)
			}
		}
	})
}

func BenchmarkAppend(b *testing.B) {
	const n = 1024

	b.Run("ArrayList", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l := lists.NewArrayList[int](0)
			for j := 0; j < n; j++ {
				l.Add(j)
			}
		}
	})

	b.Run("LinkedList", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l := lists.NewLinkedList[int]()
			for j := 0; j < n; j++ {
				l.Add(j)
			}
		}
	})
}
