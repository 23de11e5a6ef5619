// Package service contains payment order and OTP workflows
package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"voicebooking/internal/modkit/repokit"
	perr "voicebooking/internal/platform/errors"
	"voicebooking/internal/platform/logger"
	"voicebooking/internal/platform/metrics"
	ptime "voicebooking/internal/platform/time"
	"voicebooking/internal/services/api/payment/domain"
	"voicebooking/internal/services/api/payment/repo"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Svc implements the service port
type Svc struct {
	db       repokit.TxRunner
	binder   repokit.Binder[repo.Repo]
	bookings domain.BookingConfirmer
	otp      string
	ttl      time.Duration
	clock    ptime.Clock
	met      *metrics.Metrics
	log      *logger.Logger
}

// Options control service behavior
type Options struct {
	MockOTP string        // the code every order accepts, "123456" when empty
	OTPTTL  time.Duration // order lifetime, 5m when zero
	Clock   ptime.Clock
	Metrics *metrics.Metrics

	// Bookings is required; verified payments confirm their booking through it
	Bookings domain.BookingConfirmer
}

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if db == nil {
		panic("payment.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("payment.Service requires a non nil Repo binder")
	}
	if opt.Bookings == nil {
		panic("payment.Service requires a non nil BookingConfirmer (booking module port)")
	}
	if opt.MockOTP == "" {
		opt.MockOTP = "123456"
	}
	if opt.OTPTTL <= 0 {
		opt.OTPTTL = 5 * time.Minute
	}
	return &Svc{
		db:       db,
		binder:   binder,
		bookings: opt.Bookings,
		otp:      opt.MockOTP,
		ttl:      opt.OTPTTL,
		clock:    ptime.OrSystem(opt.Clock),
		met:      metrics.OrNop(opt.Metrics),
		log:      logger.Named("payment"),
	}
}

// CreateOrder opens a pending order that accepts the mock OTP until it expires
func (s *Svc) CreateOrder(ctx context.Context, in domain.CreateOrderInput) (domain.Order, error) {
	bookingID := strings.TrimSpace(in.BookingID)
	if bookingID == "" || in.Amount <= 0 {
		field := "bookingId"
		if bookingID != "" {
			field = "amount"
		}
		return domain.Order{}, perr.WithField(perr.Validationf("Booking ID and amount are required"), field)
	}
	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" {
		method = domain.DefaultMethod
	}

	now := s.clock()
	o, err := repokit.Read(ctx, s.db, s.binder, func(r repo.Repo) (domain.Order, error) {
		o := domain.Order{
			OrderID:       r.NextID(),
			BookingID:     bookingID,
			Amount:        in.Amount,
			PaymentMethod: method,
			OTP:           s.otp,
			Status:        domain.StatusPending,
			CreatedAt:     now,
			ExpiresAt:     now.Add(s.ttl),
		}
		r.Put(o)
		return o, nil
	})
	if err != nil {
		return domain.Order{}, perr.WithOp(err, "payment.create_order")
	}
	logger.C(ctx).Info().Str("order_id", o.OrderID).Str("booking_id", o.BookingID).
		Time("expires_at", o.ExpiresAt).Msg("payment order created")
	return o, nil
}

// VerifyOTP checks expiry, then the latch, then the code. The latch is read and set in
// one transaction so concurrent verifies of one order succeed at most once
func (s *Svc) VerifyOTP(ctx context.Context, in domain.VerifyInput) (domain.Verified, error) {
	orderID := strings.TrimSpace(in.OrderID)
	if orderID == "" || in.OTP == "" {
		field := "orderId"
		if orderID != "" {
			field = "otp"
		}
		return domain.Verified{}, perr.WithField(perr.Validationf("Order ID and OTP are required"), field)
	}

	now := s.clock()
	o, err := repokit.Read(ctx, s.db, s.binder, func(r repo.Repo) (domain.Order, error) {
		o, err := r.Get(orderID)
		if err != nil {
			return domain.Order{}, err
		}
		switch {
		case now.After(o.ExpiresAt):
			return domain.Order{}, domain.ErrExpired
		case o.OTPVerified:
			return domain.Order{}, domain.ErrAlreadyVerified
		case strings.TrimSpace(in.OTP) != o.OTP:
			return domain.Order{}, domain.ErrInvalidOTP
		}
		o.OTPVerified = true
		o.Status = domain.StatusCompleted
		o.VerifiedAt = &now
		r.Put(o)
		return o, nil
	})
	s.met.RecordOTP(ctx, outcome(err))
	if err != nil {
		return domain.Verified{}, err
	}

	// the order stays completed even when the booking is gone
	if err := s.bookings.ConfirmBooking(ctx, o.BookingID); err != nil {
		s.log.Warn().Err(err).Str("order_id", o.OrderID).Str("booking_id", o.BookingID).
			Msg("payment verified but booking could not be confirmed")
	}

	logger.C(ctx).Info().Str("order_id", o.OrderID).Str("booking_id", o.BookingID).Msg("payment verified")
	return domain.Verified{
		OrderID:       o.OrderID,
		BookingID:     o.BookingID,
		TransactionID: "TXN" + strconv.FormatInt(now.UnixMilli(), 10),
	}, nil
}

// GetOrder returns one order or a not found error
func (s *Svc) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	return repokit.Read(ctx, s.db, s.binder, func(r repo.Repo) (domain.Order, error) {
		return r.Get(strings.TrimSpace(id))
	})
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeVerified
	case errors.Is(err, domain.ErrExpired):
		return metrics.OutcomeExpired
	case errors.Is(err, domain.ErrAlreadyVerified):
		return metrics.OutcomeAlreadyVerified
	case errors.Is(err, domain.ErrInvalidOTP):
		return metrics.OutcomeInvalid
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		return metrics.OutcomeNotFound
	default:
		return "error"
	}
}
