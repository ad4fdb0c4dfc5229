package postgres

import (
	"context"
	"errors"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/safe"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m-mizutani/goerr/v2"
)

// codeUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const codeUniqueViolation = "23505"

// DBPool abstracts pgxpool.Pool so that it can be replaced with pgxmock in tests.
type DBPool interface {
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Repository stores repositories, analyses and webhook deliveries in PostgreSQL.
type Repository struct {
	pool DBPool
}

var (
	_ interfaces.AnalysisRepository = (*Repository)(nil)
	_ interfaces.DeliveryRepository = (*Repository)(nil)
)

// Connect opens a pgx pool for dbURL and wraps it with New.
func Connect(ctx context.Context, dbURL types.DatabaseURL) (*Repository, error) {
	pool, err := pgxpool.New(ctx, string(dbURL))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create PostgreSQL pool")
	}

	repo, err := New(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return repo, nil
}

// New verifies the connection and returns a Repository backed by pool.
func New(ctx context.Context, pool DBPool) (*Repository, error) {
	if err := pool.Ping(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to ping PostgreSQL")
	}

	return &Repository{pool: pool}, nil
}

func (r *Repository) Close() {
	r.pool.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS repositories (
		id TEXT PRIMARY KEY,
		owner TEXT NOT NULL,
		name TEXT NOT NULL,
		name_key TEXT NOT NULL UNIQUE,
		installation_id BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS analyses (
		id TEXT PRIMARY KEY,
		repository_id TEXT NOT NULL REFERENCES repositories(id),
		repository_ref TEXT NOT NULL,
		pr_number INTEGER NOT NULL,
		risk_score INTEGER NOT NULL,
		status TEXT NOT NULL,
		issues_found INTEGER NOT NULL,
		findings JSONB NOT NULL,
		attack_proof JSONB,
		estimated_fine BIGINT NOT NULL,
		delivery_id TEXT NOT NULL DEFAULT '',
		diff_archive TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS analyses_repository_created_idx ON analyses (repository_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS webhook_deliveries (
		delivery_id TEXT PRIMARY KEY,
		event_kind TEXT NOT NULL,
		payload TEXT NOT NULL DEFAULT '',
		processed BOOLEAN NOT NULL DEFAULT FALSE,
		processed_at TIMESTAMPTZ,
		error TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate creates the tables if they do not exist yet.
func (r *Repository) Migrate(ctx context.Context) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to begin migration")
	}
	defer safe.Rollback(ctx, tx)

	for _, stmt := range schema {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return goerr.Wrap(err, "failed to apply schema", goerr.V("stmt", stmt))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return goerr.Wrap(err, "failed to commit migration")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
