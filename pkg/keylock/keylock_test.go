package keylock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLock_MutualExclusion(t *testing.T) {
	l := New()

	var (
		inside  int32
		maxSeen int32
		wg      sync.WaitGroup
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), "center:CenterA:2026-10-20")
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				old := atomic.LoadInt32(&maxSeen)
				if n <= old || atomic.CompareAndSwapInt32(&maxSeen, old, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen)
	assert.Equal(t, 0, l.Len())
}

func TestLock_OverlappingKeySetsDoNotDeadlock(t *testing.T) {
	l := New()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), "a", "b")
			if assert.NoError(t, err) {
				unlock()
			}
		}()
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), "b", "a")
			if assert.NoError(t, err) {
				unlock()
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
		t.Fatal("deadlock between overlapping key sets")
	}
}

func TestLock_ContextCancelled(t *testing.T) {
	l := New()

	unlock, err := l.Lock(context.Background(), "beneficiary:1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = l.Lock(ctx, "beneficiary:2", "beneficiary:1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	again, err := l.Lock(context.Background(), "beneficiary:2")
	require.NoError(t, err)
	again()

	unlock()
	unlock()
	assert.Equal(t, 0, l.Len())
}

func TestLock_DuplicateKeys(t *testing.T) {
	l := New()

	unlock, err := l.Lock(context.Background(), "k", "k")
	require.NoError(t, err)
	unlock()

	assert.Equal(t, 0, l.Len())
}
