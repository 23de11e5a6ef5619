// Package http provides http transport for payment orders
package http

import (
	stdhttp "net/http"

	"voicebooking/internal/modkit/httpkit"
	"voicebooking/internal/services/api/payment/domain"
	svc "voicebooking/internal/services/api/payment/service"
)

// Register mounts the payment routes
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateOrderInput](r, "/create-order", h.createOrder)
	httpkit.PostJSON[domain.VerifyInput](r, "/verify-otp", h.verifyOTP)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /create-order Payment createOrder
// @Summary Open a payment order and issue the mock OTP
// @Tags payment
// @Accept json
// @Produce json
// @Param payload body domain.CreateOrderInput true "Order"
// @Success 201 {object} domain.OrderCreated "created"
// @Failure 400 {object} pnet.Failure "missing booking id or amount"
// @Router /create-order [post]
func (h *handlers) createOrder(r *stdhttp.Request, in domain.CreateOrderInput) (any, error) {
	o, err := h.svc.CreateOrder(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(domain.OrderCreated{
		Success: true,
		OrderID: o.OrderID,
		Amount:  o.Amount,
		Message: "Payment order created. OTP sent successfully.",
		MockOTP: o.OTP,
	}), nil
}

// swagger:route POST /verify-otp Payment verifyOTP
// @Summary Verify the OTP and complete the payment
// @Tags payment
// @Accept json
// @Produce json
// @Param payload body domain.VerifyInput true "OTP"
// @Success 200 {object} domain.OTPVerified "ok"
// @Failure 400 {object} pnet.Failure "expired, already verified or invalid"
// @Failure 404 {object} pnet.Failure "unknown order"
// @Router /verify-otp [post]
func (h *handlers) verifyOTP(r *stdhttp.Request, in domain.VerifyInput) (any, error) {
	v, err := h.svc.VerifyOTP(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return domain.OTPVerified{
		Success:       true,
		OrderID:       v.OrderID,
		BookingID:     v.BookingID,
		Message:       "Payment completed successfully",
		TransactionID: v.TransactionID,
	}, nil
}
