package ppqsort

import "sync"

// barrier is a reusable cyclic barrier for a fixed number of parties, used
// by the parallel block partitioner to join every worker before dirty-block
// repair begins. golang.org/x/sync has no barrier type, so this is built
// directly on sync.Cond; see DESIGN.md for why the stdlib, not an ecosystem
// package, backs this one concern.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	gen     uint64
}

func newBarrier(parties int) *barrier {
	b := &barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// wait blocks until parties goroutines have called wait on this generation,
// then releases them all together.
func (b *barrier) wait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	gen := b.gen
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.gen++
		b.cond.Broadcast()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
}
