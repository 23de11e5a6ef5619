// Package service contains booking workflows
package service

import (
	"context"
	"strings"

	"voicebooking/internal/modkit/repokit"
	perr "voicebooking/internal/platform/errors"
	"voicebooking/internal/platform/logger"
	"voicebooking/internal/platform/metrics"
	ptime "voicebooking/internal/platform/time"
	"voicebooking/internal/services/api/booking/domain"
	"voicebooking/internal/services/api/booking/repo"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Svc implements the service port
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	clock  ptime.Clock
	met    *metrics.Metrics
	log    *logger.Logger
}

// Options control service behavior; zero values fall back to the system clock and no-op metrics
type Options struct {
	Clock   ptime.Clock
	Metrics *metrics.Metrics
}

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if db == nil {
		panic("booking.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("booking.Service requires a non nil Repo binder")
	}
	return &Svc{
		db:     db,
		binder: binder,
		clock:  ptime.OrSystem(opt.Clock),
		met:    metrics.OrNop(opt.Metrics),
		log:    logger.Named("booking"),
	}
}

// Create validates in, applies the flight defaults and stores a pending booking
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Booking, error) {
	name := strings.TrimSpace(in.PassengerName)
	seat := strings.TrimSpace(in.SeatNumber)
	if name == "" || seat == "" {
		field := "passengerName"
		if name != "" {
			field = "seatNumber"
		}
		return domain.Booking{}, perr.WithField(perr.Validationf("Passenger name and seat number are required"), field)
	}

	now := s.clock()
	b := domain.Booking{
		PassengerName:     name,
		SeatNumber:        seat,
		SpecialAssistance: in.SpecialAssistance,
		FlightNumber:      or(in.FlightNumber, domain.DefaultFlight),
		Departure:         or(in.Departure, domain.DefaultDeparture),
		Destination:       or(in.Destination, domain.DefaultDestination),
		Date:              or(in.Date, now.Format(domain.DateLayout)),
		Price:             in.Price,
		Status:            domain.StatusPending,
		CreatedAt:         now,
	}
	if b.Price <= 0 {
		b.Price = domain.DefaultPrice
	}

	out, err := repokit.Read(ctx, s.db, s.binder, func(r repo.Repo) (domain.Booking, error) {
		b.BookingID = r.NextID()
		r.Insert(b)
		return r.Get(b.BookingID)
	})
	if err != nil {
		return domain.Booking{}, perr.WithOp(err, "booking.create")
	}

	s.met.RecordBooking(ctx)
	logger.C(ctx).Info().Str("booking_id", out.BookingID).Str("passenger", out.PassengerName).
		Str("seat", out.SeatNumber).Msg("booking created")
	return out, nil
}

// Get returns one booking or a not found error
func (s *Svc) Get(ctx context.Context, id string) (domain.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Booking{}, perr.NotFoundf("Booking not found")
	}
	return repokit.Read(ctx, s.db, s.binder, func(r repo.Repo) (domain.Booking, error) {
		return r.Get(id)
	})
}

// List returns every booking in creation order
func (s *Svc) List(ctx context.Context) ([]domain.Booking, error) {
	return repokit.Read(ctx, s.db, s.binder, func(r repo.Repo) ([]domain.Booking, error) {
		return r.All(), nil
	})
}

// UpdateStatus moves a booking to status and stamps updatedAt
func (s *Svc) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Booking, error) {
	if !status.Valid() {
		return domain.Booking{}, perr.WithField(perr.Validationf("unknown booking status %q", status), "status")
	}
	now := s.clock()
	out, err := repokit.Read(ctx, s.db, s.binder, func(r repo.Repo) (domain.Booking, error) {
		b, err := r.Get(id)
		if err != nil {
			return domain.Booking{}, err
		}
		b.Status = status
		b.UpdatedAt = &now
		if err := r.Update(b); err != nil {
			return domain.Booking{}, err
		}
		return b, nil
	})
	if err != nil {
		return domain.Booking{}, err
	}
	s.log.Debug().Str("booking_id", id).Str("status", string(status)).Msg("booking status updated")
	return out, nil
}

func or(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
