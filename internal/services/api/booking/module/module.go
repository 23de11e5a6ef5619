// Package module wires bookings into the API using modkit
package module

import (
	"net/http"

	modkit "voicebooking/internal/modkit"
	"voicebooking/internal/modkit/httpkit"

	bhttp "voicebooking/internal/services/api/booking/http"
	brepo "voicebooking/internal/services/api/booking/repo"
	bsvc "voicebooking/internal/services/api/booking/service"
)

// Module implements the booking API module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)

	svc   bsvc.Service
	ports Ports
}

// New constructs the booking module. Routes mount at the parent (/api) by default
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("booking"),
	}, opts...)...)

	if deps.Store == nil {
		panic("booking module requires deps.Store")
	}

	svc := bsvc.New(deps.Store, brepo.NewMem(), bsvc.Options{
		Clock:   deps.Clock,
		Metrics: deps.Metrics,
	})

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{Bookings: adaptBookingPort{svc: svc}}
	m.register = func(r httpkit.Router) { bhttp.Register(r, m.svc) }
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, m.register)
}

// Name returns the module name
func (m *Module) Name() string { return m.name }
