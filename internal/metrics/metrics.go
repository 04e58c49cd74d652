// Package metrics exports game activity to Prometheus.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/skyfall/internal/game"
)

// Collector counts world events and live sessions. It implements
// game.Observer and is safe for concurrent use by many worlds.
type Collector struct {
	registry *prometheus.Registry
	events   *prometheus.CounterVec
	sessions prometheus.Gauge
}

// NewCollector creates a collector with its own registry, so several
// collectors can coexist in one process (and in tests).
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skyfall",
			Name:      "events_total",
			Help:      "World events by kind and entity category.",
		}, []string{"event", "category"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "skyfall",
			Name:      "sessions_active",
			Help:      "Games currently running.",
		}),
	}
	c.registry.MustRegister(c.events, c.sessions)
	return c
}

// Observe records a world event.
func (c *Collector) Observe(ev game.Event) {
	c.events.WithLabelValues(ev.Kind.String(), ev.Category.String()).Inc()
}

// SessionStarted marks a new running game.
func (c *Collector) SessionStarted() {
	c.sessions.Inc()
}

// SessionEnded marks a game as finished.
func (c *Collector) SessionEnded() {
	c.sessions.Dec()
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collected metrics in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics: listen %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics: shutdown: %w", err)
		}
		return nil
	}
}
