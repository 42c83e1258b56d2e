// Package image provides scratch buffer management for drawing operations.
//
// Primitives that need temporary pixel storage (pattern masks, converted
// sources, ternary raster-operation staging) take it from a Pool and return
// it on every exit path. Each request is checked against a byte limit so a
// single oversized operation fails cleanly instead of exhausting memory.
package image

import (
	"errors"
	"fmt"
	"math/bits"
	"sync"
)

// ErrLimit is returned when a request exceeds the caller's scratch limit.
var ErrLimit = errors.New("image: scratch limit exceeded")

// minClass is the smallest bucket size in bytes.
const minClass = 64

// Pool is a thread-safe pool for reusing scratch byte buffers.
//
// Pool groups buffers by power-of-two size class, allowing reuse across
// requests of similar size. This reduces GC pressure for callers that draw
// many small primitives.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
}

// NewPool creates a new scratch pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// sizeClass rounds n up to a power of two, at least minClass.
func sizeClass(n int) int {
	if n <= minClass {
		return minClass
	}
	return 1 << bits.Len(uint(n-1))
}

// Get returns a zeroed buffer of length n. A positive limit caps n;
// requests above it fail with ErrLimit.
func (p *Pool) Get(n, limit int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("image: negative scratch size %d", n)
	}
	if limit > 0 && n > limit {
		return nil, fmt.Errorf("%w: %d bytes requested, limit %d", ErrLimit, n, limit)
	}
	class := sizeClass(n)

	p.mu.Lock()
	bucket := p.buckets[class]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[class] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf = buf[:n]
		clear(buf)
		return buf, nil
	}
	p.mu.Unlock()

	return make([]byte, n, class), nil
}

// Put returns a buffer to the pool for reuse. Buffers that did not come
// from Get, or that would overflow their bucket, are discarded.
func (p *Pool) Put(buf []byte) {
	if buf == nil {
		return
	}
	class := cap(buf)
	if class < minClass || class&(class-1) != 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[class]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[class] = append(bucket, buf[:0])
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = NewPool(8)

// Get retrieves a scratch buffer from the default pool.
func Get(n, limit int) ([]byte, error) {
	return defaultPool.Get(n, limit)
}

// Put returns a scratch buffer to the default pool.
func Put(buf []byte) {
	defaultPool.Put(buf)
}
