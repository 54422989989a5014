// Command server runs the couplespace HTTP API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pairspace/backend/internal/config"
	"github.com/pairspace/backend/internal/httpapi"
	"github.com/pairspace/backend/internal/logging"
	"github.com/pairspace/backend/internal/metrics"
	"github.com/pairspace/backend/internal/middleware"
	"github.com/pairspace/backend/internal/storage"
	redisstore "github.com/pairspace/backend/internal/storage/redis"
	"github.com/pairspace/backend/internal/token"
)

func main() {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.New("couplespace", "info", "json").WithError(err).Fatal("load configuration")
	}

	logger := logging.New("couplespace", cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store storage.Store
	if cfg.StoreConfigured() {
		rs, err := redisstore.New(ctx, redisstore.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.WithError(err).Fatal("connect document store")
		}
		defer rs.Close()
		store = rs
		logger.WithField("addr", cfg.RedisAddr).Info("document store connected")
	} else {
		// The server still comes up; every data operation fails with a
		// server-error condition until a store is configured.
		store = storage.Disabled{}
		logger.Warn("REDIS_ADDR not set; data operations will fail until a store is configured")
	}

	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	if !tokens.Enabled() {
		logger.Warn("JWT_SECRET not set; session tokens degrade to the raw couple key")
	}

	m := metrics.New("couplespace")
	api := httpapi.New(store, tokens, logger)
	authGate := middleware.NewAuthMiddleware(store, tokens, logger)
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst, logger)
	limiter.StartCleanup(ctx, 10*time.Minute, time.Hour)

	router := api.Router(authGate.Handler, limiter.Handler)
	router.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	router.Use(middleware.MetricsMiddleware(m))

	var handler http.Handler = router
	handler = middleware.Timeout(cfg.RequestTimeout)(handler)
	handler = middleware.NewCORSMiddleware(cfg.CORSOrigins).Handler(handler)
	handler = middleware.NewTracingMiddleware(logger).Handler(handler)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.HTTPAddr).Info("server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		logger.WithError(err).Fatal("server failed")
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}
