// Package arena pools node-array allocations and tracks the size class a
// given compressed-run length actually reserves, mirroring the allocator
// this engine's HOP/SKIP encoding was designed against.
package arena

import (
	"sync"
	"sync/atomic"
)

// SizeClass returns the number of bytes actually reserved for an n-byte
// compressed run: runs up to 24 bytes round up to the next multiple of 4,
// longer runs round up to the next multiple of 16. Reserving by size class
// instead of exactly n bytes lets a run grow by a few bytes in place
// before its backing words must be rebuilt from scratch.
func SizeClass(n int) int {
	if n <= 24 {
		return (n + 3) &^ 3
	}
	return (n + 15) &^ 15
}

// Pool is a type-safe wrapper around sync.Pool for *T instances, tracking
// allocation and live-use statistics.
type Pool[T any] struct {
	sync.Pool

	// TODO: drop once steady-state fragmentation behaviour is understood.
	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

// New returns a Pool whose backing sync.Pool allocates a fresh zero T on
// demand.
func New[T any]() *Pool[T] {
	p := &Pool[T]{}
	p.Pool.New = func() any {
		p.totalAllocated.Add(1)
		return new(T)
	}
	return p
}

// Get retrieves a *T from the pool, or allocates one if empty. A nil Pool
// allocates directly without tracking, so callers may leave pooling turned
// off by simply not constructing one.
func (p *Pool[T]) Get() *T {
	if p == nil {
		return new(T)
	}
	p.currentLive.Add(1)
	return p.Pool.Get().(*T)
}

// Put returns v to the pool for reuse, resetting it to its zero value
// first. A nil Pool discards v.
func (p *Pool[T]) Put(v *T) {
	if p == nil {
		return
	}
	p.currentLive.Add(-1)
	*v = *new(T)
	p.Pool.Put(v)
}

// Stats returns the number of currently live (checked-out) values and the
// total number ever allocated by this pool.
func (p *Pool[T]) Stats() (live, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}
