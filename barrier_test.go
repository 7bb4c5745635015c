package ppqsort

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBarrier_releasesAllPartiesTogether(t *testing.T) {
	const parties = 5
	b := newBarrier(parties)

	var arrived atomic.Int32
	var releasedBeforeLast atomic.Bool
	var wg sync.WaitGroup
	wg.Add(parties)
	for i := 0; i < parties; i++ {
		go func() {
			defer wg.Done()
			arrived.Add(1)
			b.wait()
			if arrived.Load() < parties {
				releasedBeforeLast.Store(true)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("barrier never released all parties")
	}
	assert.False(t, releasedBeforeLast.Load())
}

func TestBarrier_reusableAcrossGenerations(t *testing.T) {
	const parties = 3
	b := newBarrier(parties)

	for gen := 0; gen < 3; gen++ {
		var wg sync.WaitGroup
		wg.Add(parties)
		for i := 0; i < parties; i++ {
			go func() {
				defer wg.Done()
				b.wait()
			}()
		}
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("barrier generation %d never released", gen)
		}
	}
}
