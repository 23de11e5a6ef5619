// Package repo provides the booking repository over the process local store
package repo

import (
	"slices"
	"strconv"

	"voicebooking/internal/modkit/repokit"
	perr "voicebooking/internal/platform/errors"
	"voicebooking/internal/platform/store"
	"voicebooking/internal/services/api/booking/domain"
)

const (
	table    = "bookings"
	sequence = "booking_id"
	firstID  = 1000
)

// Repo is the booking persistence surface used by the service layer
type Repo interface {
	NextID() string
	Insert(b domain.Booking)
	Get(id string) (domain.Booking, error)
	Update(b domain.Booking) error
	All() []domain.Booking
}

type (
	// Mem is the store backed implementation of the booking repo
	Mem     struct{}
	queries struct {
		q    repokit.Queryer
		rows store.Keyed[domain.Booking]
	}
)

// NewMem returns a binder for the store implementation
func NewMem() repokit.Binder[Repo] { return Mem{} }

// Bind attaches a transaction to the store implementation
func (Mem) Bind(q repokit.Queryer) Repo {
	return &queries{q: q, rows: store.Table[domain.Booking](q, table)}
}

// NextID draws BK1000, BK1001, ...; a rolled back transaction returns its id
func (r *queries) NextID() string {
	return "BK" + strconv.Itoa(r.q.NextSeq(sequence, firstID))
}

func (r *queries) Insert(b domain.Booking) { r.rows.Put(b.BookingID, detach(b)) }

func (r *queries) Get(id string) (domain.Booking, error) {
	b, ok := r.rows.Get(id)
	if !ok {
		return domain.Booking{}, perr.NotFoundf("Booking not found")
	}
	return detach(b), nil
}

// Update replaces an existing row
func (r *queries) Update(b domain.Booking) error {
	if _, ok := r.rows.Get(b.BookingID); !ok {
		return perr.NotFoundf("Booking not found")
	}
	r.rows.Put(b.BookingID, detach(b))
	return nil
}

// All returns bookings in creation order
func (r *queries) All() []domain.Booking {
	out := r.rows.All()
	for i := range out {
		out[i] = detach(out[i])
	}
	return out
}

// detach copies the slice field so callers never share backing arrays with stored rows
func detach(b domain.Booking) domain.Booking {
	b.SpecialAssistance = slices.Clone(b.SpecialAssistance)
	if b.SpecialAssistance == nil {
		b.SpecialAssistance = []string{}
	}
	if b.UpdatedAt != nil {
		t := *b.UpdatedAt
		b.UpdatedAt = &t
	}
	return b
}
