package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/zlog"

	"github.com/notiboard/notiboard/internal/api/handlers/board"
	"github.com/notiboard/notiboard/internal/api/router"
	"github.com/notiboard/notiboard/internal/api/server"
	"github.com/notiboard/notiboard/internal/config"
	"github.com/notiboard/notiboard/internal/metrics"
	"github.com/notiboard/notiboard/internal/remote"
	"github.com/notiboard/notiboard/internal/scheduler"
	"github.com/notiboard/notiboard/internal/store"
	"github.com/notiboard/notiboard/internal/view"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	client := remote.NewClient(cfg.Remote.Endpoint(), cfg.Remote.Timeout)

	zlog.Logger.Info().Str("endpoint", cfg.Remote.Endpoint()).Msg("waiting for notifier service")
	if err := client.WaitReady(ctx, cfg.Retry); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("notifier service not reachable")
	}

	st := store.New(client)

	m := metrics.New("notiboard")
	st.Subscribe(func() {
		m.Observe(view.Collect(st.Snapshot()))
	})

	if err := st.Refresh(ctx); err != nil {
		zlog.Logger.Error().Err(err).Msg("initial refresh failed, starting with an empty cache")
	}

	sched := scheduler.New(st, m, cfg.Sync.Interval)
	go sched.Run(ctx)

	handler := board.NewHandler(st, client, val)

	r := router.New(handler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("starting server")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}
}
