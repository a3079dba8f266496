package scan

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScratchNamerProducesUniqueSuffixes(t *testing.T) {
	n := NewScratchNamer(42)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		s := n.Next()
		assert.False(t, seen[s], "duplicate scratch suffix %q", s)
		seen[s] = true
	}
}

func TestScratchNamerConcurrentUse(t *testing.T) {
	n := NewScratchNamer(7)
	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := n.Next()
			mu.Lock()
			seen[s] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 50)
}
