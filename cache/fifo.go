// Package cache 서비스에서 사용하는 크기 제한 인메모리 캐시
package cache

import (
	"sync"
)

// DefaultMaxSize 캐시 기본 최대 항목 수
const DefaultMaxSize = 1000

// Stats 캐시 통계
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	MaxSize   int
}

// EvictionHook 한 번의 제거에서 삭제된 항목 수를 받는 콜백
type EvictionHook func(evicted int)

// LookupHook Get 결과(적중 여부)를 받는 콜백
type LookupHook func(hit bool)

// FIFO 삽입 순서 기준으로 제거하는 동시성 안전 캐시.
// 삽입 후 maxSize 를 넘으면 가장 오래된 maxSize/2 개를 제거한다. 조회는 순서를 바꾸지 않는다
type FIFO[V any] struct {
	mu       sync.Mutex
	entries  map[string]V
	order    []string
	maxSize  int
	onEvict  EvictionHook
	onLookup LookupHook

	hits      int64
	misses    int64
	evictions int64
}

// NewFIFO FIFO 캐시 생성 (maxSize <= 0 이면 DefaultMaxSize 사용)
func NewFIFO[V any](maxSize int) *FIFO[V] {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &FIFO[V]{
		entries: make(map[string]V),
		order:   make([]string, 0, maxSize+1),
		maxSize: maxSize,
	}
}

// OnEvict 제거가 일어날 때마다 호출할 콜백 등록 (캐시 잠금 상태에서 호출)
func (c *FIFO[V]) OnEvict(hook EvictionHook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = hook
}

// OnLookup Get 마다 호출할 콜백 등록. 적중/실패 집계는 Stats 와 같은 기준이다
func (c *FIFO[V]) OnLookup(hook LookupHook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onLookup = hook
}

// Get 키에 저장된 값 조회
func (c *FIFO[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	if c.onLookup != nil {
		c.onLookup(ok)
	}
	return v, ok
}

// Put 값 저장. 이미 있는 키를 덮어쓰면 기존 순서를 유지한다
func (c *FIFO[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = value
		return
	}
	c.insert(key, value)
}

// PutIfAbsent 키가 없을 때만 저장하고, 저장 후의 값과 기존 존재 여부를 반환
func (c *FIFO[V]) PutIfAbsent(key string, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, exists := c.entries[key]; exists {
		return existing, true
	}
	c.insert(key, value)
	return value, false
}

func (c *FIFO[V]) insert(key string, value V) {
	c.entries[key] = value
	c.order = append(c.order, key)
	c.evictIfOverCapacity()
}

// evictIfOverCapacity maxSize 초과 시 오래된 절반 제거. c.mu 를 잡은 상태에서 호출
func (c *FIFO[V]) evictIfOverCapacity() {
	if len(c.entries) <= c.maxSize {
		return
	}

	n := c.maxSize / 2
	if n == 0 {
		n = 1
	}
	for _, key := range c.order[:n] {
		delete(c.entries, key)
	}
	remaining := make([]string, len(c.order)-n, c.maxSize+1)
	copy(remaining, c.order[n:])
	c.order = remaining
	c.evictions += int64(n)

	if c.onEvict != nil {
		c.onEvict(n)
	}
}

// Len 현재 항목 수
func (c *FIFO[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// MaxSize 최대 항목 수
func (c *FIFO[V]) MaxSize() int {
	return c.maxSize
}

// Clear 전체 삭제 후 삭제된 항목 수 반환
func (c *FIFO[V]) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string]V)
	c.order = make([]string, 0, c.maxSize+1)
	return n
}

// Keys 삽입 순서대로 키 목록
func (c *FIFO[V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Stats 통계 스냅샷
func (c *FIFO[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.entries),
		MaxSize:   c.maxSize,
	}
}
