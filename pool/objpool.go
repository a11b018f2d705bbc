// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import (
	"sync"
	"sync/atomic"
)

// SyncPool wraps sync.Pool for generic usage.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}

// BoundedPool hands out at most limit objects at a time. A limit of 0 means
// unbounded. Objects are recycled through a SyncPool.
type BoundedPool[T any] struct {
	objects *SyncPool[T]
	limit   atomic.Int64
	inUse   atomic.Int64
}

// NewBoundedPool creates a pool capped at limit outstanding objects.
func NewBoundedPool[T any](limit int, creator func() T) *BoundedPool[T] {
	bp := &BoundedPool[T]{objects: NewSyncPool(creator)}
	bp.SetLimit(limit)
	return bp
}

// TryGet returns an object, or ok=false when the limit is reached.
func (bp *BoundedPool[T]) TryGet() (obj T, ok bool) {
	for {
		used := bp.inUse.Load()
		if limit := bp.limit.Load(); limit > 0 && used >= limit {
			return obj, false
		}
		if bp.inUse.CompareAndSwap(used, used+1) {
			return bp.objects.Get(), true
		}
	}
}

// Put returns an object obtained from TryGet. Each object must be put back
// exactly once.
func (bp *BoundedPool[T]) Put(obj T) {
	bp.objects.Put(obj)
	bp.inUse.Add(-1)
}

// SetLimit changes the cap. Lowering it below InUse only blocks new gets.
func (bp *BoundedPool[T]) SetLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	bp.limit.Store(int64(limit))
}

// Limit returns the current cap, 0 when unbounded.
func (bp *BoundedPool[T]) Limit() int {
	return int(bp.limit.Load())
}

// InUse returns the number of objects currently handed out.
func (bp *BoundedPool[T]) InUse() int {
	return int(bp.inUse.Load())
}
