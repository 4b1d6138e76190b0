package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/navbuilder/internal/logfields"
	"git.home.luguber.info/inful/navbuilder/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

// MetricsServer exposes a Prometheus registry over HTTP while watching.
type MetricsServer struct {
	server   *http.Server
	listener net.Listener
}

// NewMetricsServer binds addr and serves reg at path.
func NewMetricsServer(addr, path string, reg *prom.Registry) (*MetricsServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle(path, metrics.HTTPHandler(reg))
	return &MetricsServer{
		server: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		listener: ln,
	}, nil
}

// Addr returns the bound address.
func (m *MetricsServer) Addr() string { return m.listener.Addr().String() }

// Serve blocks until ctx is canceled, then shuts the server down.
func (m *MetricsServer) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Serving metrics", slog.String("addr", m.Addr()))
		errCh <- m.server.Serve(m.listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := m.server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Metrics server shutdown failed", logfields.Error(err))
			return err
		}
		return nil
	}
}
