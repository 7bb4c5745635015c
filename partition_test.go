package ppqsort

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// partitionRight is only ever called after choosePivot has placed a pivot at
// data[begin] with at least one later element that's >= the pivot
// (median-of-3 leaves the largest sample at data[end-1]; the ninther leaves
// the largest median at its last-step slot), so these tests route through
// choosePivot first, exactly as seqLoop does.
func TestPartitionRight_invariant(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	for _, n := range []int{2, 3, 4, 12, 50, 500} {
		data := make([]int, n)
		for i := range data {
			data[i] = r.IntN(1000)
		}
		before := append([]int(nil), data...)
		sort.Ints(before)

		choosePivot(data, intLess, 0, n, false)
		pivotPos, _ := partitionRight(data, intLess, 0, n)

		require.GreaterOrEqual(t, pivotPos, 0)
		require.Less(t, pivotPos, n)

		pivot := data[pivotPos]
		for i := 0; i < pivotPos; i++ {
			assert.False(t, intLess(pivot, data[i]), "left element at %d should be <= pivot", i)
		}
		for i := pivotPos + 1; i < n; i++ {
			assert.False(t, intLess(data[i], pivot), "right element at %d should be >= pivot", i)
		}

		after := append([]int(nil), data...)
		sort.Ints(after)
		assert.Equal(t, before, after, "partitioning must be a permutation")
	}
}

func TestPartitionRight_alreadyPartitionedDetected(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7, 8}
	_, alreadyPartitioned := partitionRight(data, intLess, 0, len(data))
	assert.True(t, alreadyPartitioned)
}

func TestPartitionLeft_invariant(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 14))
	for _, n := range []int{2, 3, 4, 12, 50, 500} {
		data := make([]int, n)
		for i := range data {
			data[i] = r.IntN(5) // small range to force duplicate pivots
		}
		before := append([]int(nil), data...)
		sort.Ints(before)

		choosePivot(data, intLess, 0, n, false)
		pivotPos := partitionLeft(data, intLess, 0, n)

		pivot := data[pivotPos]
		for i := 0; i < pivotPos; i++ {
			assert.False(t, intLess(pivot, data[i]), "left element at %d should be <= pivot", i)
		}
		for i := pivotPos + 1; i < n; i++ {
			assert.True(t, intLess(pivot, data[i]), "right element at %d should be strictly > pivot", i)
		}

		after := append([]int(nil), data...)
		sort.Ints(after)
		assert.Equal(t, before, after)
	}
}
