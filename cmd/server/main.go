package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"skyclaim/internal/airports"
	"skyclaim/internal/appr"
	apprhandler "skyclaim/internal/appr/handler"
	apprmetrics "skyclaim/internal/appr/metrics"
	"skyclaim/internal/appr/store/memory"
	"skyclaim/internal/platform/config"
	"skyclaim/internal/platform/httpserver"
	"skyclaim/internal/platform/logger"
	httptransport "skyclaim/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Rule logic lives in internal/appr.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	registry := airports.NewRegistry()
	engine := appr.NewEngine(registry, appr.DefaultLargeCarrierRates())
	store := memory.NewStore(cfg.AuditDepth)

	svc, err := appr.NewService(engine, store,
		appr.WithLogger(log),
		appr.WithMetrics(apprmetrics.New()),
	)
	if err != nil {
		log.Error("service init failed", "error", err)
		os.Exit(1)
	}

	handler := apprhandler.New(svc, registry, log)
	router := httptransport.NewRouter(handler, log, cfg)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting skyclaim", "addr", cfg.Addr, "airports", registry.Count())

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
