package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/naijatax/paye/internal/calculation"
	"github.com/naijatax/paye/internal/compare"
	"github.com/naijatax/paye/internal/domain"
	"github.com/naijatax/paye/internal/grossup"
	"github.com/naijatax/paye/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	maxBodyBytes    = 1 << 20
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server exposes the tax engine over HTTP
type Server struct {
	engine   *calculation.CalculationEngine
	solver   *grossup.Solver
	compare  *compare.CompareEngine
	rules    domain.PAYERules
	logger   *zap.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

type Option func(*Server)

// WithLogger sets the request and error logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics sets the collectors and the gatherer served on /metrics
func WithMetrics(m *metrics.Metrics, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = gatherer
	}
}

// WithRules sets the rules reported by the bands endpoint and builds the
// engine from them
func WithRules(rules domain.PAYERules) Option {
	return func(s *Server) {
		s.rules = rules
		s.engine = calculation.NewCalculationEngineWithRules(rules)
	}
}

// New creates a server for the 2026 regime unless WithRules overrides it
func New(opts ...Option) *Server {
	s := &Server{
		rules:    domain.DefaultPAYERules(),
		engine:   calculation.NewCalculationEngine(),
		logger:   zap.NewNop(),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine.SetLogger(s.logger.Sugar())
	s.solver = grossup.NewDefaultSolver(s.engine)
	s.compare = compare.NewCompareEngine(s.engine)
	return s
}

// Routes wires every endpoint
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(s.latency)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1/paye", func(r chi.Router) {
		r.Use(chimw.Timeout(requestTimeout))
		r.Use(chimw.AllowContentType("application/json"))
		r.Get("/bands", s.handleBands)
		r.Post("/calculate", s.handleCalculate)
		r.Post("/gross-up", s.handleGrossUp)
		r.Post("/compare", s.handleCompare)
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
