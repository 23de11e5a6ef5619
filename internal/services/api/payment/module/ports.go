package module

import (
	"context"

	"voicebooking/internal/services/api/payment/domain"
	psvc "voicebooking/internal/services/api/payment/service"
)

// Ports returns the payment service port for the conversation orchestrator
func (m *Module) Ports() any { return adaptPaymentPort{svc: m.svc} }

type adaptPaymentPort struct{ svc psvc.Service }

func (a adaptPaymentPort) CreateOrder(ctx context.Context, in domain.CreateOrderInput) (domain.Order, error) {
	return a.svc.CreateOrder(ctx, in)
}

func (a adaptPaymentPort) VerifyOTP(ctx context.Context, in domain.VerifyInput) (domain.Verified, error) {
	return a.svc.VerifyOTP(ctx, in)
}

func (a adaptPaymentPort) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	return a.svc.GetOrder(ctx, id)
}
