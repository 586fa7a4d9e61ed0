// Package server exposes the rotation engine over a JSON HTTP API and
// manages the daemon's serve/shutdown lifecycle.
package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	rot "github.com/harrycraft44/rotnode"
	"github.com/harrycraft44/rotnode/internal/ctxlog"
)

type Server struct {
	addr            string
	handler         http.Handler
	shutdownTimeout time.Duration
	tls             *tlsLoader
}

func New(config Config) *Server {
	if config.Port == 0 {
		panic("server: port is required")
	}
	if config.RateBuckets == 0 {
		panic("server: rateBuckets is required")
	}
	if config.RatePeriod == 0 {
		panic("server: ratePeriod is required")
	}
	if config.RateMaxConcurrent == 0 {
		panic("server: rateMaxConcurrent is required")
	}
	if config.AdminKey == "" {
		panic("server: adminKey is required")
	}
	if config.ShutdownTimeout == 0 {
		panic("server: shutdownTimeout is required")
	}

	var loader *tlsLoader
	if config.TLS != nil {
		loader = newTLSLoader(*config.TLS)
	}

	limit := newRateLimiter(config.RateBuckets, config.RatePeriod, config.RateMaxConcurrent,
		errorHandler(http.StatusTooManyRequests, "rate limit exceeded"))
	guard := newAdmin(config.AdminKey, errorHandler(http.StatusNotFound, "not found"))

	mux := http.NewServeMux()

	routes := []struct {
		pattern string
		handler http.Handler
	}{
		{"POST /rotate", limit.middleware(rotationHandler("rotate", rot.Rotate))},
		{"POST /encode", limit.middleware(rotationHandler("encode", rot.Encode))},
		{"POST /decode", limit.middleware(rotationHandler("decode", rot.Decode))},
		{"GET /alphabets", limit.middleware(alphabetsHandler())},
		{"GET /stats", guard.middleware(statsHandler())},
		{"/", limit.middleware(errorHandler(http.StatusNotFound, "not found"))},
	}
	for _, route := range routes {
		slog.Info("registering handler", "pattern", route.pattern)
		mux.Handle(route.pattern, route.handler)
	}

	handler := http.Handler(mux)
	handler = recoverMiddleware(handler, errorHandler(http.StatusInternalServerError, "internal server error"))
	handler = logMiddleware(handler)

	return &Server{
		addr:            fmt.Sprintf("0.0.0.0:%d", config.Port),
		handler:         handler,
		shutdownTimeout: config.ShutdownTimeout,
		tls:             loader,
	}
}

func (s *Server) Run(ctx context.Context) error {
	logger := ctxlog.Get(ctx)

	srv := &http.Server{
		Addr:        s.addr,
		Handler:     s.handler,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	listen := srv.ListenAndServe
	if s.tls != nil {
		srv.TLSConfig = &tls.Config{GetCertificate: s.tls.getCertificate}
		listen = func() error { return srv.ListenAndServeTLS("", "") }
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer cancel()
		logger.Info("server is running", "addr", s.addr, "tls", s.tls != nil)
		err := listen()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	if s.tls != nil {
		group.Go(func() error {
			s.tls.reloadLoop(ctx)
			return nil
		})
	}

	group.Go(func() error {
		<-ctx.Done()

		logger.Info("server is shutting down")

		stopCtx, stopCancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer stopCancel()

		err := srv.Shutdown(stopCtx)
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Error("server shutdown timeout exceeded")
		} else {
			logger.Info("all clients closed successfully")
		}
		return err
	})

	return group.Wait()
}
