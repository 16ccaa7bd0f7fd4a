package dicts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"strand/dicts"
)

func TestDictSetGet(t *testing.T) {
	d := dicts.New[string, int]()

	_, ok := d.Get("a")
	require.False(t, ok)

	d.Set("a", 1)
	d.Set("b", 2)

	v, ok := d.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 2, d.Len())

	// Later Set for the same key wins but keeps the key's position.
	d.Set("a", 10)
	v, _ = d.Get("a")
	require.Equal(t, 10, v)
	require.Equal(t, []string{"a", "b"}, d.Keys())
}

func TestDictUpdate(t *testing.T) {
	d := dicts.New[string, []int]()

	appendValue := func(v int) func([]int, bool) []int {
		return func(cur []int, ok bool) []int {
			return append(cur, v)
		}
	}

	d.Update("k", appendValue(1))
	d.Update("k", appendValue(2))

	v, ok := d.Get("k")
	require.True(t, ok)
	require.Equal(t, []int{1, 2}, v)

	t.Run("ReportsPresence", func(t *testing.T) {
		var sawPresent []bool
		record := func(cur []int, ok bool) []int {
			sawPresent = append(sawPresent, ok)
			return cur
		}
		d.Update("fresh", record)
		d.Update("fresh", record)
		require.Equal(t, []bool{false, true}, sawPresent)
	})
}

func TestDictDelete(t *testing.T) {
	d := dicts.New[string, int]()
	d.Set("a", 1)

	require.True(t, d.Delete("a"))
	require.False(t, d.Delete("a"))
	require.Zero(t, d.Len())
}

func TestDictOrder(t *testing.T) {
	d := dicts.New[int, string]()
	for _, k := range []int{3, 1, 2} {
		d.Set(k, "")
	}
	require.Equal(t, []int{3, 1, 2}, d.Keys(), "keys keep first-insertion order")

	var order []int
	for k := range d.Pairs() {
		order = append(order, k)
	}
	require.Equal(t, []int{3, 1, 2}, order)
}
