package testkit

import (
	"sync"
	"testing"
)

// seamMu is held by Serial tests until cleanup
var seamMu sync.Mutex

// Swap points target at replacement until the test ends, e.g. a doc reader or clock var
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial runs the rest of the test under the seam lock; pair it with Swap on shared vars
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(func() { seamMu.Unlock() })
}
