package metrics

import (
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "codediff"

// Metrics holds the pipeline collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	webhookRequests  *prometheus.CounterVec
	admissions       *prometheus.CounterVec
	rateLimited      prometheus.Counter
	transitions      *prometheus.CounterVec
	analyses         *prometheus.CounterVec
	detectorFailures *prometheus.CounterVec
	findings         *prometheus.CounterVec
	persistRetries   prometheus.Counter
	analysisDuration *prometheus.HistogramVec
}

// New registers all collectors to reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Labels: event, result (accepted, duplicate, ignored, unauthorized, error)
		webhookRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "requests_total",
			Help:      "Total webhook requests by event and result",
		}, []string{"event", "result"}),

		admissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gate",
			Name:      "admissions_total",
			Help:      "Total delivery admissions by decision",
		}, []string{"decision"}),

		rateLimited: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "rate_limited_total",
			Help:      "Total requests rejected by the rate limiter",
		}),

		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "transitions_total",
			Help:      "Total pipeline state transitions by target state",
		}, []string{"state"}),

		analyses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "analyses_total",
			Help:      "Total stored analyses by status",
		}, []string{"status"}),

		// Labels: detector (oracle, pci, attack)
		detectorFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "detector",
			Name:      "failures_total",
			Help:      "Total detector failures, including oracle timeouts",
		}, []string{"detector"}),

		findings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "detector",
			Name:      "findings_total",
			Help:      "Total findings by source and severity",
		}, []string{"source", "severity"}),

		persistRetries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "persist_retries_total",
			Help:      "Total retried persistence attempts",
		}),

		analysisDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "duration_seconds",
			Help:      "Time from RECEIVED to a terminal state",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		}, []string{"state"}),
	}
}

func (x *Metrics) WebhookRequest(event, result string) {
	if x == nil {
		return
	}
	x.webhookRequests.WithLabelValues(event, result).Inc()
}

func (x *Metrics) Admission(decision types.Admission) {
	if x == nil {
		return
	}
	x.admissions.WithLabelValues(string(decision)).Inc()
}

func (x *Metrics) RateLimited() {
	if x == nil {
		return
	}
	x.rateLimited.Inc()
}

func (x *Metrics) Transition(state types.PipelineState) {
	if x == nil {
		return
	}
	x.transitions.WithLabelValues(string(state)).Inc()
}

func (x *Metrics) Analysis(status types.AnalysisStatus) {
	if x == nil {
		return
	}
	x.analyses.WithLabelValues(string(status)).Inc()
}

func (x *Metrics) DetectorFailure(detector types.FindingSource) {
	if x == nil {
		return
	}
	x.detectorFailures.WithLabelValues(string(detector)).Inc()
}

func (x *Metrics) Finding(source types.FindingSource, severity types.Severity) {
	if x == nil {
		return
	}
	x.findings.WithLabelValues(string(source), string(severity)).Inc()
}

func (x *Metrics) PersistRetry() {
	if x == nil {
		return
	}
	x.persistRetries.Inc()
}

func (x *Metrics) AnalysisDuration(state types.PipelineState, d time.Duration) {
	if x == nil {
		return
	}
	x.analysisDuration.WithLabelValues(string(state)).Observe(d.Seconds())
}
