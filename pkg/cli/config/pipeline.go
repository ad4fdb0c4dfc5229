package config

import (
	"log/slog"
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type Pipeline struct {
	oracleTimeout     time.Duration
	oracleInputLimit  int64
	persistRetries    int64
	persistRetryDelay time.Duration
}

func (x *Pipeline) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "oracle-timeout",
			Usage:       "Deadline of a single bug oracle call",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("CODEDIFF_ORACLE_TIMEOUT"),
			Value:       usecase.DefaultOracleTimeout,
			Destination: &x.oracleTimeout,
		},
		&cli.Int64Flag{
			Name:        "oracle-input-limit",
			Usage:       "Maximum number of diff characters sent to the bug oracle",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("CODEDIFF_ORACLE_INPUT_LIMIT"),
			Value:       usecase.DefaultOracleInputLimit,
			Destination: &x.oracleInputLimit,
		},
		&cli.Int64Flag{
			Name:        "persist-retries",
			Usage:       "Number of retries when storing an analysis fails",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("CODEDIFF_PERSIST_RETRIES"),
			Value:       usecase.DefaultPersistMaxRetries,
			Destination: &x.persistRetries,
		},
		&cli.DurationFlag{
			Name:        "persist-retry-interval",
			Usage:       "Initial backoff interval of persistence retries",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("CODEDIFF_PERSIST_RETRY_INTERVAL"),
			Value:       usecase.DefaultPersistInitialInterval,
			Destination: &x.persistRetryDelay,
		},
	}
}

func (x *Pipeline) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("OracleTimeout", x.oracleTimeout),
		slog.Int64("OracleInputLimit", x.oracleInputLimit),
		slog.Int64("PersistRetries", x.persistRetries),
		slog.Duration("PersistRetryInterval", x.persistRetryDelay),
	)
}

func (x *Pipeline) Options() []usecase.Option {
	retries := x.persistRetries
	if retries < 0 {
		retries = 0
	}

	return []usecase.Option{
		usecase.WithOracleTimeout(x.oracleTimeout),
		usecase.WithOracleInputLimit(int(x.oracleInputLimit)),
		usecase.WithPersistRetry(uint64(retries), x.persistRetryDelay),
	}
}
