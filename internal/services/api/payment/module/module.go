// Package module wires payment orders into the API using modkit
package module

import (
	"net/http"

	modkit "voicebooking/internal/modkit"
	"voicebooking/internal/modkit/httpkit"

	pdom "voicebooking/internal/services/api/payment/domain"
	payhttp "voicebooking/internal/services/api/payment/http"
	prepo "voicebooking/internal/services/api/payment/repo"
	psvc "voicebooking/internal/services/api/payment/service"
)

// Module implements the payment API module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)

	svc psvc.Service
}

// Ports declares the port this module needs injected
type Ports struct {
	Bookings pdom.BookingConfirmer
}

// New constructs the payment module. It needs the booking module's confirmer:
//
//	payment.New(deps, modkit.WithPorts(payment.Ports{Bookings: bookingPort}))
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("payment"),
	}, opts...)...)

	injected, _ := modkit.InjectedPorts[Ports](b)
	if injected.Bookings == nil {
		panic("payment API module requires the Bookings port (from the booking module)")
	}
	if deps.Store == nil {
		panic("payment module requires deps.Store")
	}

	cfg := FromConfig(deps.Cfg)
	svc := psvc.New(deps.Store, prepo.NewMem(), psvc.Options{
		MockOTP:  cfg.MockOTP,
		OTPTTL:   cfg.OTPTTL,
		Clock:    deps.Clock,
		Metrics:  deps.Metrics,
		Bookings: injected.Bookings,
	})

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.register = func(r httpkit.Router) { payhttp.Register(r, m.svc) }
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, m.register)
}

// Name returns the module name
func (m *Module) Name() string { return m.name }
