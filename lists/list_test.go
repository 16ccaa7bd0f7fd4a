package lists_test

import (
	"slices"
	"testing"

	"strand/lists"
)

// RunListTests is a reusable test suite for the List interface.
// It can be used to test any implementation of lists.List[T].
func RunListTests(t *testing.T, name string, factory func(vals ...int) lists.List[int]) {
	t.Helper()

	t.Run(name+"/Basic", func(t *testing.T) {
		l := factory()
		if !l.IsEmpty() {
			t.Error("New list should be empty")
		}
		if l.Size() != 0 {
			t.Errorf("New list size should be 0, got %d", l.Size())
		}

		l.Add(10, 20, 30)
		if l.IsEmpty() {
			t.Error("List should not be empty after Add")
		}
		if l.Size() != 3 {
			t.Errorf("Size should be 3, got %d", l.Size())
		}
		if !slices.Equal(l.ToSlice(), []int{10, 20, 30}) {
			t.Errorf("ToSlice mismatch: got %v", l.ToSlice())
		}
	})

	t.Run(name+"/Prepend", func(t *testing.T) {
		l := factory(2, 3)
		l.Prepend(1)
		if !slices.Equal(l.ToSlice(), []int{1, 2, 3}) {
			t.Errorf("Prepend mismatch: got %v", l.ToSlice())
		}

		empty := factory()
		empty.Prepend(9)
		if !slices.Equal(empty.ToSlice(), []int{9}) {
			t.Errorf("Prepend on empty mismatch: got %v", empty.ToSlice())
		}
	})

	t.Run(name+"/Get", func(t *testing.T) {
		l := factory(10, 20, 30)

		v, err := l.Get(1)
		if err != nil {
			t.Fatalf("Get(1) unexpected error: %v", err)
		}
		if v != 20 {
			t.Errorf("Get(1) = %d, want 20", v)
		}

		if _, err := l.Get(-1); err != lists.ErrIndexOutOfBounds {
			t.Errorf("Get(-1) should return ErrIndexOutOfBounds, got %v", err)
		}
		if _, err := l.Get(3); err != lists.ErrIndexOutOfBounds {
			t.Errorf("Get(3) should return ErrIndexOutOfBounds, got %v", err)
		}
	})

	t.Run(name+"/Reverse", func(t *testing.T) {
		l := factory(1, 2, 3, 4)
		l.Reverse()
		if !slices.Equal(l.ToSlice(), []int{4, 3, 2, 1}) {
			t.Errorf("Reverse mismatch: got %v", l.ToSlice())
		}

		empty := factory()
		empty.Reverse()
		if !empty.IsEmpty() {
			t.Error("Reverse of empty list should stay empty")
		}
	})

	t.Run(name+"/Values", func(t *testing.T) {
		l := factory(1, 2, 3)
		var got []int
		for v := range l.Values() {
			got = append(got, v)
		}
		if !slices.Equal(got, []int{1, 2, 3}) {
			t.Errorf("Values mismatch: got %v", got)
		}

		// Early break must not panic or over-consume.
		got = got[:0]
		for v := range l.Values() {
			got = append(got, v)
			break
		}
		if !slices.Equal(got, []int{1}) {
			t.Errorf("Values early-break mismatch: got %v", got)
		}
	})

	t.Run(name+"/ToSliceIsACopy", func(t *testing.T) {
		l := factory(1, 2, 3)
		s := l.ToSlice()
		s[0] = 99
		v, _ := l.Get(0)
		if v != 1 {
			t.Errorf("mutating ToSlice result must not affect the list, got %d", v)
		}
	})
}

func TestArrayList(t *testing.T) {
	RunListTests(t, "ArrayList", func(vals ...int) lists.List[int] {
		return lists.NewArrayListOf(vals...)
	})
}

func TestLinkedList(t *testing.T) {
	RunListTests(t, "LinkedList", func(vals ...int) lists.List[int] {
		return lists.NewLinkedListOf(vals...)
	})
}
