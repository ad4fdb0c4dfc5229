package usecase

import (
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra"
)

const (
	DefaultOracleTimeout          = 30 * time.Second
	DefaultOracleInputLimit       = 15000
	DefaultPersistMaxRetries      = 3
	DefaultPersistInitialInterval = 200 * time.Millisecond
)

type UseCase struct {
	clients *infra.Clients

	oracleTimeout          time.Duration
	oracleInputLimit       int
	persistMaxRetries      uint64
	persistInitialInterval time.Duration
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithOracleTimeout bounds a single bug oracle call.
func WithOracleTimeout(d time.Duration) Option {
	return func(x *UseCase) {
		x.oracleTimeout = d
	}
}

// WithOracleInputLimit sets how many characters of the diff are sent to the bug oracle.
func WithOracleInputLimit(n int) Option {
	return func(x *UseCase) {
		x.oracleInputLimit = n
	}
}

// WithPersistRetry configures the backoff used when creating an analysis record.
func WithPersistRetry(maxRetries uint64, initialInterval time.Duration) Option {
	return func(x *UseCase) {
		x.persistMaxRetries = maxRetries
		x.persistInitialInterval = initialInterval
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:                clients,
		oracleTimeout:          DefaultOracleTimeout,
		oracleInputLimit:       DefaultOracleInputLimit,
		persistMaxRetries:      DefaultPersistMaxRetries,
		persistInitialInterval: DefaultPersistInitialInterval,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
