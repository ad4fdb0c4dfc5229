package config

import (
	"log/slog"
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/ratelimit"
	"github.com/urfave/cli/v3"
)

type RateLimit struct {
	limit         int64
	window        time.Duration
	sweepInterval time.Duration
}

func (x *RateLimit) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "rate-limit",
			Usage:       "Maximum webhook requests per client address in a window. 0 disables limiting",
			Category:    "Rate Limit",
			Sources:     cli.EnvVars("CODEDIFF_RATE_LIMIT"),
			Value:       100,
			Destination: &x.limit,
		},
		&cli.DurationFlag{
			Name:        "rate-limit-window",
			Usage:       "Length of the rate limit window",
			Category:    "Rate Limit",
			Sources:     cli.EnvVars("CODEDIFF_RATE_LIMIT_WINDOW"),
			Value:       time.Minute,
			Destination: &x.window,
		},
		&cli.DurationFlag{
			Name:        "rate-limit-sweep-interval",
			Usage:       "Interval of expired entry cleanup",
			Category:    "Rate Limit",
			Sources:     cli.EnvVars("CODEDIFF_RATE_LIMIT_SWEEP_INTERVAL"),
			Value:       5 * time.Minute,
			Destination: &x.sweepInterval,
		},
	}
}

func (x *RateLimit) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("Limit", x.limit),
		slog.Duration("Window", x.window),
		slog.Duration("SweepInterval", x.sweepInterval),
	)
}

// New returns nil when limiting is disabled.
func (x *RateLimit) New() *ratelimit.Limiter {
	if x.limit <= 0 {
		return nil
	}
	return ratelimit.New(int(x.limit), x.window)
}

func (x *RateLimit) SweepInterval() time.Duration {
	return x.sweepInterval
}
