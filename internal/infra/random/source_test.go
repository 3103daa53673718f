package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func permutation(src *Source, n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	src.Shuffle(n, func(i, j int) { values[i], values[j] = values[j], values[i] })

	return values
}

func TestSource_SeededIsRepeatable(t *testing.T) {
	a := New(42)
	b := New(42)

	for range 5 {
		assert.Equal(t, permutation(a, 10), permutation(b, 10))
	}
}

func TestSource_ShuffleKeepsElements(t *testing.T) {
	got := permutation(New(7), 20)

	assert.ElementsMatch(t, permutation(New(1), 20), got)
}

func TestSource_ConcurrentUse(t *testing.T) {
	src := New(0)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				permutation(src, 8)
			}
		}()
	}
	wg.Wait()
}
