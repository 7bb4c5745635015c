package ppqsort

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// pool is a fixed-size work-stealing thread pool: each worker owns a LIFO
// taskStack and a binary semaphore; pushing a task to a worker's queue
// wakes it if it was idle, and an idle worker that finds its own queue
// empty steals from the others round-robin.
type pool struct {
	queues []*taskStack
	sems   []*semaphore.Weighted
	idle   []atomic.Bool

	index    atomic.Uint64
	pending  atomic.Int64
	handling atomic.Int64
	stop     atomic.Bool

	wg sync.WaitGroup
}

// newPool starts workers goroutines, each blocked on its own semaphore
// until a task is pushed to it.
func newPool(workers int) *pool {
	p := &pool{
		queues: make([]*taskStack, workers),
		sems:   make([]*semaphore.Weighted, workers),
		idle:   make([]atomic.Bool, workers),
	}
	for i := range p.queues {
		p.queues[i] = &taskStack{}
		p.sems[i] = semaphore.NewWeighted(1)
		_ = p.sems[i].Acquire(context.Background(), 1) // consume the single permit: workers start blocked
		p.idle[i].Store(true)
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

// pushTask enqueues a task onto the next worker in round-robin order and
// wakes that worker if it was idle.
func (p *pool) pushTask(task func()) {
	p.pending.Add(1)
	idx := int(p.index.Add(1)-1) % len(p.queues)
	p.queues[idx].push(task)
	if p.idle[idx].CompareAndSwap(true, false) {
		p.sems[idx].Release(1)
	}
}

func (p *pool) getNextTask(id int) (func(), bool) {
	if t, ok := p.queues[id].tryPop(); ok {
		return t, true
	}
	n := len(p.queues)
	for i := 1; i < n; i++ {
		j := (id + i) % n
		if t, ok := p.queues[j].tryPop(); ok {
			return t, true
		}
	}
	return nil, false
}

func (p *pool) worker(id int) {
	defer p.wg.Done()
	ctx := context.Background()
	for {
		_ = p.sems[id].Acquire(ctx, 1)
		for {
			task, ok := p.getNextTask(id)
			if !ok {
				break
			}
			p.handling.Add(1)
			task()
			p.handling.Add(-1)
			p.pending.Add(-1)
		}
		p.idle[id].Store(true)
		if p.stop.Load() {
			return
		}
		// A task pushed after the drain above but before idle was set saw
		// this worker as busy and did not wake it; wake it here instead.
		if !p.queues[id].empty() && p.idle[id].CompareAndSwap(true, false) {
			p.sems[id].Release(1)
		}
	}
}

// waitAndStop blocks until every pushed task (including tasks pushed by
// other tasks) has finished running, then signals every worker to exit and
// waits for them to do so.
func (p *pool) waitAndStop() {
	for p.pending.Load() > 0 || p.handling.Load() > 0 {
		runtime.Gosched()
	}
	p.stop.Store(true)
	for i := range p.sems {
		if p.idle[i].CompareAndSwap(true, false) {
			p.sems[i].Release(1)
		}
	}
	p.wg.Wait()
}
