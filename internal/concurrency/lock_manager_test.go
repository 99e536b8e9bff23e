package concurrency

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SameKeySerializes(t *testing.T) {
	lm := NewLockManager()
	unlock := lm.Lock("u1")

	acquired := make(chan struct{})
	go func() {
		release := lm.Lock("u1")
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("second Lock should wait")
	case <-time.After(30 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second Lock never acquired")
	}
}

func TestLockManager_KeysAreIndependent(t *testing.T) {
	lm := NewLockManager()
	unlock := lm.Lock("u1")
	defer unlock()

	done := make(chan struct{})
	go func() {
		lm.Lock("u2")()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("u2 blocked on u1")
	}
}

func TestLockManager_DropsIdleKeys(t *testing.T) {
	lm := NewLockManager()

	var wg sync.WaitGroup
	var counter int
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := lm.Lock("shared")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Zero(t, lm.Len())
}
