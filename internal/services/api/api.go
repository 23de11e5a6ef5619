// Package api provides the HTTP API for the application
package api

import (
	"net/http"

	"voicebooking/internal/modkit"
	"voicebooking/internal/modkit/httpkit"
	"voicebooking/internal/modkit/module"
	"voicebooking/internal/modkit/swaggerkit"
	"voicebooking/internal/platform/config"
	"voicebooking/internal/platform/logger"
	"voicebooking/internal/platform/metrics"
	phttp "voicebooking/internal/platform/net/http"
	"voicebooking/internal/platform/store"
	ptime "voicebooking/internal/platform/time"

	bookingmod "voicebooking/internal/services/api/booking/module"
	metamod "voicebooking/internal/services/api/meta/module"
	nlpmod "voicebooking/internal/services/api/nlp/module"
	pdom "voicebooking/internal/services/api/payment/domain"
	paymentmod "voicebooking/internal/services/api/payment/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Memory
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler // served at /metrics when set
	Clock          ptime.Clock
	EnableSwagger  bool
	EnableProfiler bool
}

// Modules is the wired module set plus the ports other front ends drive directly
type Modules struct {
	All      []module.Module
	Bookings bookingmod.BookingPort
	Payments pdom.ServicePort
}

// Build constructs every API module over shared deps
func Build(opt Options) Modules {
	if opt.Store == nil {
		opt.Store = store.Open()
	}
	deps := modkit.Deps{
		Log:     *logger.Named("api"),
		Cfg:     opt.Config,
		Store:   opt.Store,
		Metrics: opt.Metrics,
		Clock:   opt.Clock,
	}

	// booking owns the confirm port the payment module needs
	booking := bookingmod.New(deps)
	bookings := module.MustPortsOf[bookingmod.BookingPort](booking)

	payment := paymentmod.New(deps, modkit.WithPorts(paymentmod.Ports{Bookings: bookings}))

	return Modules{
		All: []module.Module{
			metamod.New(deps),
			booking,
			payment,
			nlpmod.New(deps),
		},
		Bookings: bookings,
		Payments: module.MustPortsOf[pdom.ServicePort](payment),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) Modules {
	mods := Build(opt)

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.Config.MayCSV("CORS_ORIGINS", nil),
		Metrics:     opt.Metrics,
	})
	httpkit.MountAPI(r, stack, func(api httpkit.Router) {
		for _, m := range mods.All {
			m.MountRoutes(api)
		}
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.MetricsHandler != nil {
		r.Handle("/metrics", opt.MetricsHandler)
	}

	log := logger.Named("api")
	for _, m := range mods.All {
		log.Debug().Str("module", m.Name()).Msg("module mounted")
	}
	return mods
}
