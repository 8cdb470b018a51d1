package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	require.Equal(t, -1, FindIndex[int](nil, 0))
}

func TestFindIndexFunc(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	require.Equal(t, 2, FindIndexFunc([]int{1, 3, 4, 6}, even))
	require.Equal(t, -1, FindIndexFunc([]int{1, 3}, even))
}

func TestMap(t *testing.T) {
	require.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))
	require.Empty(t, Map([]int{}, strconv.Itoa))
}
