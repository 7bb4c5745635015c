package ppqsort

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPool_runsAllPushedTasks(t *testing.T) {
	p := newPool(4)
	var counter atomic.Int64
	const k = 500
	for i := 0; i < k; i++ {
		p.pushTask(func() { counter.Add(1) })
	}
	waitWithTimeout(t, p)
	assert.EqualValues(t, k, counter.Load())
}

func TestPool_emptyStartStop(t *testing.T) {
	p := newPool(3)
	waitWithTimeout(t, p)
}

func TestPool_taskPushesMoreTasks(t *testing.T) {
	p := newPool(4)
	var counter atomic.Int64
	const depth = 50

	var spawn func(remaining int)
	spawn = func(remaining int) {
		counter.Add(1)
		if remaining > 0 {
			p.pushTask(func() { spawn(remaining - 1) })
		}
	}
	p.pushTask(func() { spawn(depth) })

	waitWithTimeout(t, p)
	assert.EqualValues(t, depth+1, counter.Load())
}

func TestPool_singleWorker(t *testing.T) {
	p := newPool(1)
	var counter atomic.Int64
	for i := 0; i < 100; i++ {
		p.pushTask(func() { counter.Add(1) })
	}
	waitWithTimeout(t, p)
	assert.EqualValues(t, 100, counter.Load())
}

func waitWithTimeout(t *testing.T, p *pool) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		p.waitAndStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("pool.waitAndStop did not return in time")
	}
}
