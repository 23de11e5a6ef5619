package module

import (
	"context"

	"voicebooking/internal/services/api/booking/domain"
	bsvc "voicebooking/internal/services/api/booking/service"
)

// Ports is what the booking module exposes to other modules
type Ports struct {
	Bookings BookingPort
}

// BookingPort is the booking service plus the payment callback
type BookingPort interface {
	domain.ServicePort
	ConfirmBooking(ctx context.Context, id string) error
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptBookingPort exposes service methods as module ports for cross-module usage
type adaptBookingPort struct{ svc bsvc.Service }

func (a adaptBookingPort) Create(ctx context.Context, in domain.CreateInput) (domain.Booking, error) {
	return a.svc.Create(ctx, in)
}

func (a adaptBookingPort) Get(ctx context.Context, id string) (domain.Booking, error) {
	return a.svc.Get(ctx, id)
}

func (a adaptBookingPort) List(ctx context.Context) ([]domain.Booking, error) {
	return a.svc.List(ctx)
}

func (a adaptBookingPort) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Booking, error) {
	return a.svc.UpdateStatus(ctx, id, status)
}

// ConfirmBooking marks a booking confirmed after its payment clears
func (a adaptBookingPort) ConfirmBooking(ctx context.Context, id string) error {
	_, err := a.svc.UpdateStatus(ctx, id, domain.StatusConfirmed)
	return err
}
