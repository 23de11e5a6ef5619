// Package http provides http transport for bookings
package http

import (
	stdhttp "net/http"

	"voicebooking/internal/modkit/httpkit"
	"voicebooking/internal/services/api/booking/domain"
	svc "voicebooking/internal/services/api/booking/service"
)

// Register mounts the booking routes
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/booking", h.create)
	httpkit.Get(r, "/booking/{bookingId}", h.get)
	httpkit.Get(r, "/bookings", h.list)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /booking Booking create
// @Summary Create a booking
// @Tags booking
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Booking"
// @Success 201 {object} domain.Created "created"
// @Failure 400 {object} pnet.Failure "missing passenger name or seat"
// @Router /booking [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	b, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(domain.Created{Success: true, Booking: b, Message: "Booking created successfully"}), nil
}

// swagger:route GET /booking/{bookingId} Booking get
// @Summary Fetch one booking
// @Tags booking
// @Produce json
// @Param bookingId path string true "Booking id"
// @Success 200 {object} domain.Found "ok"
// @Failure 404 {object} pnet.Failure "not found"
// @Router /booking/{bookingId} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	b, err := h.svc.Get(r.Context(), httpkit.Param(r, "bookingId"))
	if err != nil {
		return nil, err
	}
	return domain.Found{Success: true, Booking: b}, nil
}

// swagger:route GET /bookings Booking list
// @Summary List bookings in creation order
// @Tags booking
// @Produce json
// @Success 200 {object} domain.List "ok"
// @Router /bookings [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	all, err := h.svc.List(r.Context())
	if err != nil {
		return nil, err
	}
	return domain.List{Success: true, Count: len(all), Bookings: all}, nil
}
