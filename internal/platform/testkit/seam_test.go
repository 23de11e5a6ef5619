package testkit

import (
	"sync"
	"testing"
	"time"
)

var (
	addFn       = func(a, b int) int { return a + b }
	swapTargetI = 10
)

func TestSwap_Restores(t *testing.T) {
	t.Run("func", func(t *testing.T) {
		Swap(t, &addFn, func(a, b int) int { return 99 })
		if got := addFn(1, 2); got != 99 {
			t.Fatalf("swap did not take effect, got %d", got)
		}
	})
	if got := addFn(1, 2); got != 3 {
		t.Fatalf("swap did not restore, got %d", got)
	}

	t.Run("int", func(t *testing.T) {
		Swap(t, &swapTargetI, 42)
		if swapTargetI != 42 {
			t.Fatalf("swap failed, got %d", swapTargetI)
		}
	})
	if swapTargetI != 10 {
		t.Fatalf("swap did not restore, got %d", swapTargetI)
	}
}

func TestSerial_GroupsSubtests(t *testing.T) {
	var mu sync.Mutex
	var seq []string
	record := func(s string) {
		mu.Lock()
		seq = append(seq, s)
		mu.Unlock()
	}

	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"A", "B"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)
				record(name + "-start")
				time.Sleep(20 * time.Millisecond)
				record(name + "-end")
			})
		}
	})

	if len(seq) != 4 {
		t.Fatalf("seq = %v", seq)
	}
	if seq[0][0] != seq[1][0] || seq[2][0] != seq[3][0] {
		t.Fatalf("subtests interleaved: %v", seq)
	}
}
