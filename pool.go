package flatrb

import (
	"sync"
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"
)

// scratchPool is a type-safe wrapper around sync.Pool, specialized for
// reusing *bitset.BitSet scratch buffers across calls to ConditionalDelete.
// A bitset has no dependency on a tree's K or V, so one pool is shared by
// every instantiation of Tree rather than carried per-tree.
type scratchPool struct {
	sync.Pool

	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

func newScratchPool() *scratchPool {
	p := &scratchPool{}
	p.New = func() any {
		p.totalAllocated.Add(1)
		return &bitset.BitSet{}
	}
	return p
}

// Get retrieves a cleared *bitset.BitSet from the pool, or creates one if
// needed.
func (p *scratchPool) Get() *bitset.BitSet {
	if p == nil {
		return &bitset.BitSet{}
	}
	p.currentLive.Add(1)
	b := p.Pool.Get().(*bitset.BitSet)
	b.ClearAll()
	return b
}

// Put returns b to the pool for reuse.
func (p *scratchPool) Put(b *bitset.BitSet) {
	if p == nil {
		return
	}
	p.currentLive.Add(-1)
	p.Pool.Put(b)
}

// Stats returns the number of currently checked-out buffers and the total
// number ever allocated by this pool.
func (p *scratchPool) Stats() (live, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}

var scratchBitsetPool = newScratchPool()
