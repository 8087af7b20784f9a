package echo

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Path is where the echo handler is mounted.
const Path = "/api/logs"

// NewMux routes Path to the echo handler and /metrics to the registry.
func NewMux(logger zerolog.Logger, reg *prometheus.Registry) *http.ServeMux {
	var metrics Metrics = noopMetrics{}
	if reg != nil {
		metrics = NewMetrics(reg)
	}
	mux := http.NewServeMux()
	mux.Handle(Path, Instrument(metrics, Path, &Handler{Logger: logger}))
	if reg != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	return mux
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger zerolog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("echo server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info().Msg("echo server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
