package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFO_GetPut(t *testing.T) {
	c := NewFIFO[string](10)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Put("a", "alpha")
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "alpha", v)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, 10, stats.MaxSize)
}

func TestFIFO_DefaultMaxSize(t *testing.T) {
	assert.Equal(t, DefaultMaxSize, NewFIFO[int](0).MaxSize())
	assert.Equal(t, DefaultMaxSize, NewFIFO[int](-5).MaxSize())
}

func TestFIFO_EvictsOldestHalf(t *testing.T) {
	c := NewFIFO[int](10)
	for i := 0; i < 10; i++ {
		c.Put(fmt.Sprintf("k%d", i), i)
	}
	assert.Equal(t, 10, c.Len(), "at capacity is not over capacity")

	c.Put("k10", 10)

	// 11개 > 10: 먼저 넣은 5개 제거
	assert.Equal(t, 6, c.Len())
	for i := 0; i < 5; i++ {
		_, ok := c.Get(fmt.Sprintf("k%d", i))
		assert.False(t, ok, "k%d should be evicted", i)
	}
	for i := 5; i <= 10; i++ {
		_, ok := c.Get(fmt.Sprintf("k%d", i))
		assert.True(t, ok, "k%d should remain", i)
	}
	assert.Equal(t, []string{"k5", "k6", "k7", "k8", "k9", "k10"}, c.Keys())
	assert.Equal(t, int64(5), c.Stats().Evictions)
}

func TestFIFO_AccessDoesNotRefreshOrder(t *testing.T) {
	c := NewFIFO[int](4)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	c.Put("d", 4)

	// 조회가 많아도 제거 순서는 바뀌지 않는다 (LRU 아님)
	for i := 0; i < 5; i++ {
		_, _ = c.Get("a")
	}
	c.Put("e", 5)

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestFIFO_OverwriteKeepsPosition(t *testing.T) {
	c := NewFIFO[int](4)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 10)

	assert.Equal(t, []string{"a", "b"}, c.Keys())
	v, _ := c.Get("a")
	assert.Equal(t, 10, v)
}

func TestFIFO_PutIfAbsent(t *testing.T) {
	c := NewFIFO[string](4)

	v, existed := c.PutIfAbsent("k", "first")
	assert.False(t, existed)
	assert.Equal(t, "first", v)

	v, existed = c.PutIfAbsent("k", "second")
	assert.True(t, existed)
	assert.Equal(t, "first", v)
}

func TestFIFO_Clear(t *testing.T) {
	c := NewFIFO[int](4)
	c.Put("a", 1)
	c.Put("b", 2)

	assert.Equal(t, 2, c.Clear())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Keys())
}

func TestFIFO_OnEvictHook(t *testing.T) {
	c := NewFIFO[int](2)
	var evicted []int
	c.OnEvict(func(n int) { evicted = append(evicted, n) })

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	assert.Equal(t, []int{1}, evicted)
	assert.Equal(t, 2, c.Len())
}

func TestFIFO_OnLookupHookMatchesStats(t *testing.T) {
	c := NewFIFO[int](10)
	var hits, misses int64
	c.OnLookup(func(hit bool) {
		if hit {
			hits++
		} else {
			misses++
		}
	})

	_, _ = c.Get("a")
	c.PutIfAbsent("a", 1)
	_, existed := c.PutIfAbsent("a", 2)
	require.True(t, existed)
	_, _ = c.Get("a")

	stats := c.Stats()
	assert.Equal(t, stats.Hits, hits)
	assert.Equal(t, stats.Misses, misses)
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestFIFO_ConcurrentAccess(t *testing.T) {
	c := NewFIFO[int](100)
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("g%d-%d", g, i%50)
				c.PutIfAbsent(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 100)
}
