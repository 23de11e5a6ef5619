// @title         Voice Airline Booking API
// @version       0.1.0
// @description   Bookings, mock payments with OTP, and the intent engine over HTTP

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voicebooking/internal/core/version"
	"voicebooking/internal/modkit/repokit"
	"voicebooking/internal/platform/config"
	"voicebooking/internal/platform/logger"
	"voicebooking/internal/platform/metrics"
	phttp "voicebooking/internal/platform/net/http"
	"voicebooking/internal/platform/store"

	"voicebooking/internal/services/api"

	"golang.org/x/sync/errgroup"
)

func main() {
	// bring up logging early
	logger.Init(logger.FromEnv())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, config.New().Prefix("VB_API_"))
	stop()
	if err != nil {
		logger.Get().Error().Err(err).Msg("voice booking api stopped")
		os.Exit(1)
	}
}

func run(ctx context.Context, apiCfg config.Conf) error {
	l := logger.Get()
	info := version.Info()

	// in memory store; contents do not survive a restart
	st := store.Open(store.WithLogger(*logger.Named("store")))
	repokit.MustGuard(ctx, st)
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	opts := api.Options{
		Config:         apiCfg,
		Store:          st,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	}
	if apiCfg.MayBool("METRICS", true) {
		mp, err := metrics.InitProvider(info.Service, info.Version)
		if err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := mp.Shutdown(sctx); err != nil {
				l.Error().Err(err).Msg("metrics provider shutdown failed")
			}
		}()
		opts.Metrics = mp.Metrics
		opts.MetricsHandler = mp.Handler
	}

	// http server (reads VB_API_PORT / VB_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)
	api.Mount(srv.Router(), opts)

	l.Info().
		Str("version", info.Version).
		Str("commit", info.Commit).
		Str("addr", srv.Addr()).
		Msg("voice booking api starting")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		l.Info().Msg("shutdown requested")
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	l.Info().Msg("voice booking api stopped")
	return nil
}
