// Package module wires the conversational engine into the API using modkit
package module

import (
	"context"
	"net/http"

	"voicebooking/internal/core/catalogue"
	"voicebooking/internal/core/intent"
	modkit "voicebooking/internal/modkit"
	"voicebooking/internal/modkit/httpkit"
	"voicebooking/internal/platform/logger"
	"voicebooking/internal/platform/net/middleware"

	nhttp "voicebooking/internal/services/api/nlp/http"
	nrepo "voicebooking/internal/services/api/nlp/repo"
	nsvc "voicebooking/internal/services/api/nlp/service"
)

// Module implements the nlp API module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)

	svc nsvc.Service
}

// New constructs the nlp module under /nlp. A catalogue override that fails to load
// panics, like any other start-up misconfiguration
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("nlp"),
		modkit.WithPrefix("/nlp"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	engine := mustEngine(cfg.Catalogue, deps)

	met := deps.Instruments()
	sessions := nrepo.NewSessions(nrepo.Options{
		TTL:      cfg.SessionTTL,
		MaxTurns: cfg.MaxTurns,
		OnOpen:   func() { met.ActiveSessions.Add(context.Background(), 1) },
		OnClose:  func() { met.ActiveSessions.Add(context.Background(), -1) },
	})
	svc := nsvc.New(engine, sessions, nsvc.Options{Metrics: met})

	limit := middleware.RateLimit(middleware.RateLimitOptions{
		PerMinute: cfg.RatePerMin,
		Burst:     cfg.RateBurst,
	})

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    append([]func(http.Handler) http.Handler{limit}, b.Mw...),
		svc:    svc,
	}
	m.register = func(r httpkit.Router) { nhttp.Register(r, m.svc) }
	return m
}

func mustEngine(path string, deps modkit.Deps) *intent.Engine {
	pack := catalogue.MustLoad()
	if path != "" {
		p, err := catalogue.LoadFile(path)
		if err != nil {
			logger.Get().Panic().Err(err).Str("path", path).Msg("loading intent catalogue")
		}
		pack = p
	}
	e, err := intent.New(pack, intent.WithClock(deps.Now()))
	if err != nil {
		logger.Get().Panic().Err(err).Msg("building intent engine")
	}
	logger.Named("nlp").Info().Int("intents", len(pack.Intents)).Str("source", sourceName(path)).Msg("intent catalogue loaded")
	return e
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, m.register)
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Ports exposes the nlp service
func (m *Module) Ports() any { return m.svc }
