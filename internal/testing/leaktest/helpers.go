// Package leaktest holds test helpers that flag goroutine and heap growth
// across a block of work.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 500 * time.Millisecond
	pollInterval  = 10 * time.Millisecond
	bytesPerMB    = 1024 * 1024
)

// GoroutineChecker records the goroutine count at creation
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker snapshots the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test if, after giving stragglers time to exit, more than
// tolerance goroutines remain above the snapshot
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settle(func() bool { return runtime.NumGoroutine()-g.before <= tolerance })
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// settle polls until ok reports true or the timeout passes, and returns the
// final goroutine count
func settle(ok func() bool) int {
	deadline := time.Now().Add(settleTimeout)
	for time.Now().Before(deadline) {
		if ok() {
			break
		}
		runtime.Gosched()
		time.Sleep(pollInterval)
	}
	return runtime.NumGoroutine()
}

func heapAllocMB() float64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.HeapAlloc) / bytesPerMB
}

// CheckNoMemoryLeak runs fn and fails the test if live heap grew by more than
// maxGrowthMB once garbage is collected
func CheckNoMemoryLeak(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()

	before := heapAllocMB()
	fn()
	after := heapAllocMB()

	if growth := after - before; growth > maxGrowthMB {
		t.Errorf("Potential memory leak: before=%.2fMB, after=%.2fMB, growth=%.2fMB (max=%.2fMB)",
			before, after, growth, maxGrowthMB)
	}
}
