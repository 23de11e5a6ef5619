package domain

import "context"

// ServicePort is the interface implemented by the booking service
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Booking, error)
	Get(ctx context.Context, id string) (Booking, error)
	List(ctx context.Context) ([]Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Booking, error)
}
