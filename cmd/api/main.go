package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookswap/internal/auth"
	"bookswap/internal/book"
	"bookswap/internal/config"
	"bookswap/internal/exchange"
	"bookswap/internal/httpx"
	"bookswap/internal/platform/openlibrary"
	"bookswap/internal/platform/postgres"
	"bookswap/internal/user"

	"go.uber.org/zap"
)

const maxBodyBytes = 32 << 10

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	logger := mustLogger(cfg)
	defer func() { _ = logger.Sync() }()

	dbPool, err := postgres.Open(context.Background(), cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("database unavailable", zap.Error(err))
	}
	defer dbPool.Close()
	logger.Info("database connection OK", zap.String("dsn", postgres.RedactDSN(cfg.DatabaseDSN)))

	var lookup book.MetadataLookup
	if cfg.OpenLibraryEnabled {
		lookup = book.OpenLibraryLookup{Client: openlibrary.NewClient(cfg.OpenLibraryUserAgent, 2, 2)}
	}

	userService := user.NewService(user.NewPostgresRepo(dbPool, cfg.DBTimeout))
	authService := auth.NewService(cfg.JWTSecret, cfg.JWTTTL, userService)
	bookService := book.NewService(book.NewPostgresRepo(dbPool, cfg.DBTimeout), lookup, logger)
	exchangeService := exchange.NewService(exchange.NewPostgresRepo(dbPool, cfg.DBTimeout), logger)

	authLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	router := newRouter(handlers{
		auth:        auth.NewHTTPHandler(authService),
		users:       user.NewHTTPHandler(userService),
		books:       book.NewHTTPHandler(bookService),
		exchange:    exchange.NewHTTPHandler(exchangeService),
		requireAuth: httpx.AuthMiddleware(cfg.JWTSecret, userService),
		authLimit:   authLimiter.Middleware,
		ready:       dbPool.Ping,
	})

	handler := httpx.Chain(router,
		httpx.RecoveryMiddleware(logger),
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.DebugMiddleware(cfg.IsDevelopment()),
		httpx.SecurityHeadersMiddleware(!cfg.IsDevelopment()),
		httpx.CORSMiddleware([]string{cfg.FrontendURL}),
		httpx.RequestSizeLimitMiddleware(maxBodyBytes),
	)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Addr), zap.String("env", cfg.Env))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

func mustLogger(cfg config.Config) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		_, _ = os.Stderr.WriteString("cannot build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	return logger
}
