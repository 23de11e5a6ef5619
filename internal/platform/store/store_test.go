package store

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type row struct {
	ID   string
	Seat string
}

func TestTableOrderAndReplace(t *testing.T) {
	m := Open()
	ctx := context.Background()

	err := m.Tx(ctx, func(q *Tx) error {
		tbl := Table[row](q, "bookings")
		tbl.Put("b", row{ID: "b", Seat: "1A"})
		tbl.Put("a", row{ID: "a", Seat: "2B"})
		tbl.Put("b", row{ID: "b", Seat: "3C"})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	_ = m.Tx(ctx, func(q *Tx) error {
		tbl := Table[row](q, "bookings")
		all := tbl.All()
		if len(all) != 2 || all[0].ID != "b" || all[1].ID != "a" {
			t.Fatalf("All = %+v", all)
		}
		if got, ok := tbl.Get("b"); !ok || got.Seat != "3C" {
			t.Fatalf("Get(b) = %+v %v", got, ok)
		}
		if _, ok := tbl.Get("zzz"); ok {
			t.Fatal("missing key reported present")
		}
		return nil
	})
}

func TestNextSeq(t *testing.T) {
	m := Open()
	var got []int
	for i := 0; i < 3; i++ {
		_ = m.Tx(context.Background(), func(q *Tx) error {
			got = append(got, q.NextSeq("booking", 1000))
			return nil
		})
	}
	if got[0] != 1000 || got[1] != 1001 || got[2] != 1002 {
		t.Fatalf("seq = %v", got)
	}
}

func TestRollback(t *testing.T) {
	m := Open()
	ctx := context.Background()
	boom := errors.New("boom")

	_ = m.Tx(ctx, func(q *Tx) error {
		q.NextSeq("order", 5000)
		Table[row](q, "orders").Put("x", row{ID: "x", Seat: "old"})
		return nil
	})

	err := m.Tx(ctx, func(q *Tx) error {
		q.NextSeq("order", 5000)
		tbl := Table[row](q, "orders")
		tbl.Put("x", row{ID: "x", Seat: "new"})
		tbl.Put("y", row{ID: "y"})
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}

	_ = m.Tx(ctx, func(q *Tx) error {
		if n := q.NextSeq("order", 5000); n != 5001 {
			t.Fatalf("seq after rollback = %d", n)
		}
		tbl := Table[row](q, "orders")
		if tbl.Len() != 1 {
			t.Fatalf("len after rollback = %d", tbl.Len())
		}
		if r, _ := tbl.Get("x"); r.Seat != "old" {
			t.Fatalf("x after rollback = %+v", r)
		}
		return nil
	})
}

func TestConcurrentSeqIsUnique(t *testing.T) {
	m := Open()
	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := map[int]bool{}
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Tx(context.Background(), func(q *Tx) error {
				n := q.NextSeq("booking", 1000)
				mu.Lock()
				seen[n] = true
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()
	if len(seen) != 64 {
		t.Fatalf("unique ids = %d", len(seen))
	}
}

func TestCanceledAndClosed(t *testing.T) {
	m := Open()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := m.Tx(ctx, func(*Tx) error { return nil }); !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled ctx err = %v", err)
	}

	if err := m.Guard(context.Background()); err != nil {
		t.Fatal(err)
	}
	_ = m.Close(context.Background())
	if err := m.Tx(context.Background(), func(*Tx) error { return nil }); !errors.Is(err, ErrClosed) {
		t.Fatalf("closed err = %v", err)
	}
	if err := m.Guard(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("guard after close = %v", err)
	}
}

func TestTxEscapePanics(t *testing.T) {
	m := Open()
	var leaked *Tx
	_ = m.Tx(context.Background(), func(q *Tx) error { leaked = q; return nil })
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic using Tx after commit")
		}
	}()
	leaked.NextSeq("x", 1)
}
