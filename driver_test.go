package ppqsort

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeapsort(t *testing.T) {
	r := rand.New(rand.NewPCG(31, 32))
	for _, n := range []int{0, 1, 2, 3, 10, 100, 1000} {
		data := make([]int, n)
		for i := range data {
			data[i] = r.IntN(10000)
		}
		want := append([]int{}, data...)
		sort.Ints(want)

		heapsort(data, intLess, 0, n)
		assert.Equal(t, want, data, "n=%d", n)
	}
}

func TestHeapsort_subrange(t *testing.T) {
	data := []int{-1, 5, 3, 1, 4, 2, -2}
	heapsort(data, intLess, 1, 6)
	assert.Equal(t, []int{-1, 1, 2, 3, 4, 5, -2}, data)
}

func TestDeterministicShuffle_smallNoop(t *testing.T) {
	data := []int{1, 2, 3}
	cp := append([]int(nil), data...)
	deterministicShuffle(data, 0, 3)
	assert.Equal(t, cp, data)
}

func TestDeterministicShuffle_permutes(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5, 6, 7}
	before := append([]int(nil), data...)
	deterministicShuffle(data, 0, 8)
	assert.NotEqual(t, before, data, "shuffle of 8 distinct elements should change positions")

	sortedAfter := append([]int(nil), data...)
	sort.Ints(sortedAfter)
	sortedBefore := append([]int(nil), before...)
	sort.Ints(sortedBefore)
	assert.Equal(t, sortedBefore, sortedAfter, "shuffle must be a permutation")
}

func TestInitialBadAllowed(t *testing.T) {
	assert.Equal(t, 0, initialBadAllowed(0))
	assert.Equal(t, 0, initialBadAllowed(1))
	assert.Equal(t, 1, initialBadAllowed(2))
	assert.Equal(t, 1, initialBadAllowed(3))
	assert.Equal(t, 2, initialBadAllowed(4))
	assert.Equal(t, 3, initialBadAllowed(8))
	assert.Equal(t, 10, initialBadAllowed(1024))
}

func TestSeqLoop_sortsAndIsPermutation(t *testing.T) {
	r := rand.New(rand.NewPCG(33, 34))
	for _, branchless := range []bool{false, true} {
		for _, n := range []int{0, 1, 2, 11, 12, 13, 33, 1000, 5000} {
			data := make([]int, n)
			for i := range data {
				data[i] = r.IntN(200)
			}
			before := append([]int{}, data...)
			sort.Ints(before)

			seqLoop(data, intLess, 0, n, initialBadAllowed(n), true, branchless)

			assert.Equal(t, before, data, "n=%d branchless=%v", n, branchless)
		}
	}
}

func TestSeqLoop_heapsortFallback(t *testing.T) {
	// badAllowed=1 forces the very first highly-unbalanced split straight
	// into heapsort; still must produce a correctly sorted result.
	n := 1000
	data := make([]int, n)
	for i := range data {
		data[i] = n - i
	}
	before := append([]int(nil), data...)
	sort.Ints(before)

	seqLoop(data, intLess, 0, n, 1, true, false)
	assert.Equal(t, before, data)
}
