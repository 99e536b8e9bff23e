package event

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyPublisher fails according to failOn and records every attempt
type flakyPublisher struct {
	mu       sync.Mutex
	attempts []time.Time
	events   []Event
	failOn   func(attempt int) bool
	delay    time.Duration
}

func (f *flakyPublisher) Publish(_ context.Context, evt Event) error {
	f.mu.Lock()
	f.attempts = append(f.attempts, time.Now())
	f.events = append(f.events, evt)
	n := len(f.attempts)
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.failOn != nil && f.failOn(n) {
		return errors.New("broker unavailable")
	}
	return nil
}

func (f *flakyPublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.attempts)
}

func (f *flakyPublisher) times() []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Time(nil), f.attempts...)
}

func deadLetterPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "deadletter.jsonl")
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out []DeadLetterEntry
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		var e DeadLetterEntry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		out = append(out, e)
	}
	return out
}

func testEvent(n int) Event {
	return NewBalanceDepositedEvent("user-1", int64(n), int64(n))
}

func TestResilientPublisher_DeliversFirstTime(t *testing.T) {
	path := deadLetterPath(t)
	pub := &flakyPublisher{}

	rp, err := NewResilientPublisher(pub, 3, 50*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), testEvent(1))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, pub.count())
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetriesUntilDelivered(t *testing.T) {
	path := deadLetterPath(t)
	pub := &flakyPublisher{failOn: func(n int) bool { return n == 1 }}

	rp, err := NewResilientPublisher(pub, 3, 50*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), testEvent(1))

	assert.Eventually(t, func() bool { return pub.count() == 2 }, time.Second, 10*time.Millisecond)
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_DeadLettersAfterMaxRetries(t *testing.T) {
	path := deadLetterPath(t)
	pub := &flakyPublisher{failOn: func(int) bool { return true }}

	rp, err := NewResilientPublisher(pub, 3, 20*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), testEvent(7))

	// initial attempt plus three retries at 20ms, 40ms and 80ms
	require.Eventually(t, func() bool { return len(readDeadLetters(t, path)) == 1 }, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, 4, pub.count())

	entry := readDeadLetters(t, path)[0]
	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, BalanceDeposited, entry.Event.Type)
	assert.Equal(t, 4, entry.Attempts)
	assert.Equal(t, "broker unavailable", entry.LastError)
}

func TestResilientPublisher_FullQueueGoesStraightToDeadLetter(t *testing.T) {
	path := deadLetterPath(t)
	pub := &flakyPublisher{failOn: func(int) bool { return true }}

	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	// No worker is started, so the queue never drains
	rp := &ResilientPublisher{
		bus:        pub,
		retryQueue: make(chan retryEntry, 2),
		maxRetries: 3,
		retryDelay: time.Hour,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	for i := 0; i < 5; i++ {
		rp.PublishWithRetry(context.Background(), testEvent(i))
	}

	assert.Len(t, readDeadLetters(t, path), 3)
	assert.Len(t, rp.retryQueue, 2)
}

func TestResilientPublisher_ShutdownFlushesQueue(t *testing.T) {
	path := deadLetterPath(t)
	pub := &flakyPublisher{failOn: func(n int) bool { return n <= 2 }}

	// Long delay: queued events only get their final attempt from Shutdown
	rp, err := NewResilientPublisher(pub, 5, time.Hour, path)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		rp.PublishWithRetry(context.Background(), testEvent(i))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	// 3 first attempts, then one final attempt for each of the 2 queued failures
	assert.Equal(t, 5, pub.count())
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_BackoffDoubles(t *testing.T) {
	path := deadLetterPath(t)
	pub := &flakyPublisher{failOn: func(n int) bool { return n < 3 }}

	base := 100 * time.Millisecond
	rp, err := NewResilientPublisher(pub, 5, base, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), testEvent(1))

	require.Eventually(t, func() bool { return pub.count() == 3 }, 2*time.Second, 10*time.Millisecond)
	at := pub.times()

	assert.InDelta(t, base.Milliseconds(), at[1].Sub(at[0]).Milliseconds(), 80)
	assert.InDelta(t, (2 * base).Milliseconds(), at[2].Sub(at[1]).Milliseconds(), 80)
}

func TestResilientPublisher_ConcurrentPublishes(t *testing.T) {
	pub := &flakyPublisher{}
	rp, err := NewResilientPublisher(pub, 3, 50*time.Millisecond, deadLetterPath(t))
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	const workers, perWorker = 10, 5
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				rp.PublishWithRetry(context.Background(), testEvent(w*perWorker+j))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, pub.count())
}

func TestCalculateRetryDelay(t *testing.T) {
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(RetryInitialDelay, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(RetryInitialDelay, 2))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(RetryInitialDelay, 5))
}
