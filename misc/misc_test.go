package misc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeSorted(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 2}

	var keys []string
	var values []int
	for k, v := range Range(m) {
		keys = append(keys, k)
		values = append(values, v)
	}

	require.Equal(t, []string{"a", "b", "c"}, keys)
	require.Equal(t, []int{1, 2, 3}, values)
}

func TestRangeStops(t *testing.T) {
	m := map[int]string{3: "c", 1: "a", 2: "b"}

	var seen []int
	Range(m)(func(k int, v string) bool {
		seen = append(seen, k)
		return k < 2
	})

	require.Equal(t, []int{1, 2}, seen)
}

func TestCopyBytes(t *testing.T) {
	require.Nil(t, CopyBytes(nil))

	a := []byte{1, 2, 3}
	b := CopyBytes(a)
	a[0] = 9
	require.Equal(t, []byte{1, 2, 3}, b)
}
