// Package leaktest catches goroutines left running by hubs, listeners and
// subscriptions once a test has torn them down.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettle is how long Check waits for goroutines to exit.
const DefaultSettle = time.Second

// GoroutineChecker records a baseline goroutine count.
type GoroutineChecker struct {
	before int
	settle time.Duration
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	// let goroutines from earlier setup settle
	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		settle: DefaultSettle,
		t:      t,
	}
}

// Check fails the test if more than tolerance goroutines are still running
// once the settle period has passed.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := count(g.before+tolerance, g.settle)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// VerifyNone records a baseline now and checks it when the test finishes.
func VerifyNone(t testing.TB) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	t.Cleanup(func() { checker.Check(0) })
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// count polls until the goroutine count drops to target or timeout expires.
func count(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(10 * time.Millisecond)
	}
}
