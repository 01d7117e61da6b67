package pipeline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequenceCounter_StartsAtOne(t *testing.T) {
	var c SequenceCounter
	require.Equal(t, uint64(1), c.Next())
	require.Equal(t, uint64(2), c.Next())
}

func TestSequenceCounter_ConcurrentNextIsUnique(t *testing.T) {
	var c SequenceCounter
	const n = 1000

	seen := make(chan uint64, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			seen <- c.Next()
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[uint64]bool, n)
	for v := range seen {
		require.False(t, unique[v], "seq id %d issued twice", v)
		unique[v] = true
	}
	require.Len(t, unique, n)
}
