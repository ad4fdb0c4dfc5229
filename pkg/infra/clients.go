package infra

import (
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra/metrics"
)

type Clients struct {
	githubApp    interfaces.GitHubApp
	bqClient     interfaces.BigQuery
	oracle       interfaces.BugOracle
	diffArchive  interfaces.DiffArchive
	analysisRepo interfaces.AnalysisRepository
	deliveryRepo interfaces.DeliveryRepository
	metrics      *metrics.Metrics
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) BugOracle() interfaces.BugOracle {
	return x.oracle
}
func (x *Clients) DiffArchive() interfaces.DiffArchive {
	return x.diffArchive
}
func (x *Clients) AnalysisRepository() interfaces.AnalysisRepository {
	return x.analysisRepo
}
func (x *Clients) DeliveryRepository() interfaces.DeliveryRepository {
	return x.deliveryRepo
}

// Metrics may return nil; *metrics.Metrics methods are nil-safe.
func (x *Clients) Metrics() *metrics.Metrics {
	return x.metrics
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithBugOracle(client interfaces.BugOracle) Option {
	return func(x *Clients) {
		x.oracle = client
	}
}

func WithDiffArchive(archive interfaces.DiffArchive) Option {
	return func(x *Clients) {
		x.diffArchive = archive
	}
}

func WithAnalysisRepository(repo interfaces.AnalysisRepository) Option {
	return func(x *Clients) {
		x.analysisRepo = repo
	}
}

func WithDeliveryRepository(repo interfaces.DeliveryRepository) Option {
	return func(x *Clients) {
		x.deliveryRepo = repo
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(x *Clients) {
		x.metrics = m
	}
}
