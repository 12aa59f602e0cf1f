package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLock_SerializesSameKey(t *testing.T) {
	t.Parallel()

	km := New()

	const workers = 16
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("emp-1:2025-03-10")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestLock_DifferentKeysDoNotBlock(t *testing.T) {
	t.Parallel()

	km := New()

	unlockA := km.Lock("emp-1:2025-03-10")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("emp-2:2025-03-10")
		unlockB()
		close(done)
	}()

	// Must complete while the first key is still held.
	<-done
}

func TestLock_EntriesReleased(t *testing.T) {
	t.Parallel()

	km := New()

	unlock := km.Lock("emp-1:2025-03-10")
	unlock()

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks)
}

func TestLock_Reentry(t *testing.T) {
	t.Parallel()

	km := New()

	for i := 0; i < 3; i++ {
		unlock := km.Lock("emp-1:2025-03-10")
		unlock()
	}
}
