package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra/metrics"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/ratelimit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	ghSecret types.GitHubAppSecret
	limiter  *ratelimit.Limiter
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

type Option func(*config)

func WithGitHubSecret(secret types.GitHubAppSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

// WithRateLimiter limits webhook requests per client address.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(cfg *config) {
		cfg.limiter = limiter
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(cfg *config) {
		cfg.metrics = m
	}
}

// WithMetricsGatherer exposes the gatherer on GET /metrics.
func WithMetricsGatherer(g prometheus.Gatherer) Option {
	return func(cfg *config) {
		cfg.gatherer = g
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	if cfg.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.gatherer, promhttp.HandlerOpts{}))
	}
	r.Route("/webhook", func(r chi.Router) {
		r.Use(rateLimit(cfg.limiter, cfg.metrics))
		r.Route("/github", func(r chi.Router) {
			r.Post("/app", handleGitHubAppEvent(uc, cfg))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
