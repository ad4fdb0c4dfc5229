package config

import (
	"context"
	"log/slog"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository/postgres"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Postgres struct {
	url     types.DatabaseURL `masq:"secret"`
	migrate bool
}

func (x *Postgres) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "database-url",
			Usage:       "PostgreSQL connection URL. Takes precedence over Firestore",
			Category:    "PostgreSQL",
			Sources:     cli.EnvVars("CODEDIFF_DATABASE_URL", "DATABASE_URL"),
			Destination: (*string)(&x.url),
		},
		&cli.BoolFlag{
			Name:        "database-migrate",
			Usage:       "Create tables and indexes on startup",
			Category:    "PostgreSQL",
			Sources:     cli.EnvVars("CODEDIFF_DATABASE_MIGRATE"),
			Value:       true,
			Destination: &x.migrate,
		},
	}
}

func (x *Postgres) Enabled() bool {
	return x.url != ""
}

func (x *Postgres) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("URL", x.url),
		slog.Bool("Migrate", x.migrate),
	)
}

func (x *Postgres) NewRepository(ctx context.Context) (*postgres.Repository, error) {
	repo, err := postgres.Connect(ctx, x.url)
	if err != nil {
		return nil, err
	}

	if x.migrate {
		if err := repo.Migrate(ctx); err != nil {
			repo.Close()
			return nil, goerr.Wrap(err, "failed to migrate database")
		}
	}

	return repo, nil
}
