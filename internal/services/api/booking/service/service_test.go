package service

import (
	"context"
	"sync"
	"testing"
	"time"

	perr "voicebooking/internal/platform/errors"
	"voicebooking/internal/platform/store"
	"voicebooking/internal/platform/testkit"
	ptime "voicebooking/internal/platform/time"
	"voicebooking/internal/services/api/booking/domain"
	"voicebooking/internal/services/api/booking/repo"
)

func newSvc(t *testing.T) (*Svc, *ptime.Manual) {
	t.Helper()
	clk := ptime.NewManual(time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC))
	return New(store.Open(), repo.NewMem(), Options{Clock: clk.Now}), clk
}

func TestCreate_DefaultsAndSequence(t *testing.T) {
	s, _ := newSvc(t)
	ctx := context.Background()

	b, err := s.Create(ctx, domain.CreateInput{PassengerName: "John Smith", SeatNumber: "12A"})
	if err != nil {
		t.Fatal(err)
	}
	want := domain.Booking{
		BookingID:         "BK1000",
		PassengerName:     "John Smith",
		SeatNumber:        "12A",
		SpecialAssistance: []string{},
		FlightNumber:      "AI101",
		Departure:         "New Delhi (DEL)",
		Destination:       "Mumbai (BOM)",
		Date:              "2024-05-01",
		Price:             5999,
		Status:            domain.StatusPending,
	}
	if b.BookingID != want.BookingID || b.FlightNumber != want.FlightNumber || b.Departure != want.Departure ||
		b.Destination != want.Destination || b.Date != want.Date || b.Price != want.Price ||
		b.Status != want.Status || len(b.SpecialAssistance) != 0 || b.SpecialAssistance == nil {
		t.Fatalf("booking = %+v", b)
	}
	if b.UpdatedAt != nil {
		t.Fatal("updatedAt should be unset on creation")
	}

	b2, err := s.Create(ctx, domain.CreateInput{
		PassengerName: "Jane Doe", SeatNumber: "1C", Price: 7200, FlightNumber: "AI202",
		SpecialAssistance: []string{"wheelchair"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if b2.BookingID != "BK1001" || b2.Price != 7200 || b2.FlightNumber != "AI202" || b2.SpecialAssistance[0] != "wheelchair" {
		t.Fatalf("second booking = %+v", b2)
	}
}

func TestCreate_Validation(t *testing.T) {
	s, _ := newSvc(t)
	cases := []struct {
		name  string
		in    domain.CreateInput
		field string
	}{
		{"no name", domain.CreateInput{SeatNumber: "1A"}, "passengerName"},
		{"blank name", domain.CreateInput{PassengerName: "  ", SeatNumber: "1A"}, "passengerName"},
		{"no seat", domain.CreateInput{PassengerName: "John"}, "seatNumber"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), tc.in)
			if !perr.IsCode(err, perr.ErrorCodeValidation) {
				t.Fatalf("err = %v", err)
			}
			if w := perr.WireFrom(err); w.Field != tc.field || w.Message != "Passenger name and seat number are required" {
				t.Fatalf("wire = %+v", w)
			}
		})
	}
	// failed creates must not consume ids
	b, err := s.Create(context.Background(), domain.CreateInput{PassengerName: "A", SeatNumber: "2B"})
	if err != nil || b.BookingID != "BK1000" {
		t.Fatalf("got %q, %v", b.BookingID, err)
	}
}

func TestGetListUpdate(t *testing.T) {
	s, clk := newSvc(t)
	ctx := context.Background()

	if _, err := s.Get(ctx, "BK9999"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing booking err = %v", err)
	}
	for _, name := range []string{"A", "B", "C"} {
		if _, err := s.Create(ctx, domain.CreateInput{PassengerName: name, SeatNumber: "3A"}); err != nil {
			t.Fatal(err)
		}
	}
	all, err := s.List(ctx)
	if err != nil || len(all) != 3 || all[0].PassengerName != "A" || all[2].BookingID != "BK1002" {
		t.Fatalf("list = %+v, %v", all, err)
	}

	clk.Advance(time.Minute)
	b, err := s.UpdateStatus(ctx, "BK1001", domain.StatusConfirmed)
	if err != nil {
		t.Fatal(err)
	}
	if b.Status != domain.StatusConfirmed || b.UpdatedAt == nil || !b.UpdatedAt.Equal(clk.Now()) {
		t.Fatalf("updated = %+v", b)
	}
	got, _ := s.Get(ctx, "BK1001")
	if got.Status != domain.StatusConfirmed {
		t.Fatalf("stored status = %q", got.Status)
	}

	if _, err := s.UpdateStatus(ctx, "BK1001", "cancelled"); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("bad status err = %v", err)
	}
	if _, err := s.UpdateStatus(ctx, "BK4242", domain.StatusConfirmed); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing booking err = %v", err)
	}
}

func TestReturnedBookingsAreDetached(t *testing.T) {
	s, _ := newSvc(t)
	ctx := context.Background()
	in := domain.CreateInput{PassengerName: "A", SeatNumber: "1A", SpecialAssistance: []string{"visual"}}
	b, _ := s.Create(ctx, in)
	in.SpecialAssistance[0] = "changed"
	b.SpecialAssistance[0] = "changed"

	got, _ := s.Get(ctx, b.BookingID)
	if got.SpecialAssistance[0] != "visual" {
		t.Fatalf("stored row was mutated: %v", got.SpecialAssistance)
	}
}

func TestCreate_ConcurrentIDsAreUnique(t *testing.T) {
	s, _ := newSvc(t)
	const n = 50
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := s.Create(context.Background(), domain.CreateInput{PassengerName: "P", SeatNumber: "1A"})
			if err != nil {
				t.Error(err)
				return
			}
			ids <- b.BookingID
		}()
	}
	wg.Wait()
	close(ids)
	seen := map[string]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
	if len(seen) != n || !seen["BK1000"] || !seen["BK1049"] {
		t.Fatalf("ids = %v", seen)
	}
}

func TestNewPanicsOnNilDeps(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, repo.NewMem(), Options{}) })
	testkit.MustPanic(t, func() { New(store.Open(), nil, Options{}) })
}
