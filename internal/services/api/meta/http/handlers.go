// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"voicebooking/internal/core/version"
	"voicebooking/internal/modkit/httpkit"
	perr "voicebooking/internal/platform/errors"
	ptime "voicebooking/internal/platform/time"
)

// Guarder is satisfied by stores that can report whether they still serve
type Guarder interface {
	Guard(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Store       any
	Clock       ptime.Clock
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	d.Clock = ptime.OrSystem(d.Clock)
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status  string `json:"status"  example:"ok"`
	Message string `json:"message" example:"Voice Airline Booking API is running"`
}

// ReadyResponse reports the store check
type ReadyResponse struct {
	Status string `json:"status" example:"ok"` // ok or fail
	Store  string `json:"store"  example:"ok"` // ok fail skipped
	Now    string `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"voicebooking-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// swagger:route GET /health Meta health
// @Summary Liveness
// @Tags meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{Status: "ok", Message: "Voice Airline Booking API is running"}, nil
}

// swagger:route GET /ready Meta ready
// @Summary Readiness probe over the booking store
// @Tags meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Failure 503 {object} pnet.Failure "store closed"
// @Router /ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	out := ReadyResponse{Status: "ok", Store: "skipped", Now: h.deps.Clock().Format(time.RFC3339)}
	if g, ok := h.deps.Store.(Guarder); ok {
		if err := g.Guard(ctx); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "store unavailable")
		}
		out.Store = "ok"
	}
	return out, nil
}

// swagger:route GET /version Meta version
// @Summary Build and version info
// @Tags meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /service Meta service
// @Summary Service info and uptime
// @Tags meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.deps.Clock().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}
