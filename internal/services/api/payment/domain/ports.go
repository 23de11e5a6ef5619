package domain

import "context"

// ServicePort is the interface implemented by the payment service
type ServicePort interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (Order, error)
	VerifyOTP(ctx context.Context, in VerifyInput) (Verified, error)
	GetOrder(ctx context.Context, id string) (Order, error)
}

// BookingConfirmer is injected from the booking module
type BookingConfirmer interface {
	ConfirmBooking(ctx context.Context, bookingID string) error
}
