package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/cli/config"
	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

// parse runs a command with flags and returns after Action, so Destination fields are filled.
func parse(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  flags,
		Action: func(ctx context.Context, c *cli.Command) error { return nil },
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestPipelineOptions(t *testing.T) {
	var cfg config.Pipeline
	parse(t, cfg.Flags(),
		"--oracle-timeout", "5s",
		"--oracle-input-limit", "2000",
		"--persist-retries", "5",
	)

	v := cfg.LogValue()
	gt.V(t, v.Kind().String()).Equal("Group")
	gt.V(t, len(cfg.Options())).Equal(3)

	attrs := map[string]any{}
	for _, a := range v.Group() {
		attrs[a.Key] = a.Value.Any()
	}
	gt.V(t, attrs["OracleTimeout"]).Equal(any(5 * time.Second))
	gt.V(t, attrs["OracleInputLimit"]).Equal(any(int64(2000)))
	gt.V(t, attrs["PersistRetries"]).Equal(any(int64(5)))
	gt.V(t, attrs["PersistRetryInterval"]).Equal(any(200 * time.Millisecond))
}

func TestRateLimit(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		var cfg config.RateLimit
		parse(t, cfg.Flags())

		limiter := cfg.New()
		gt.V(t, limiter).NotEqual(nil)
		gt.V(t, cfg.SweepInterval()).Equal(5 * time.Minute)
	})

	t.Run("disabled", func(t *testing.T) {
		var cfg config.RateLimit
		parse(t, cfg.Flags(), "--rate-limit", "0")

		gt.True(t, cfg.New() == nil)
	})

	t.Run("limit applies", func(t *testing.T) {
		var cfg config.RateLimit
		parse(t, cfg.Flags(), "--rate-limit", "2", "--rate-limit-window", "1h")

		limiter := cfg.New()
		gt.True(t, limiter.Allow("10.0.0.1"))
		gt.True(t, limiter.Allow("10.0.0.1"))
		gt.False(t, limiter.Allow("10.0.0.1"))
		gt.True(t, limiter.Allow("10.0.0.2"))
	})
}

func TestOracle(t *testing.T) {
	t.Setenv("CODEDIFF_ORACLE_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	t.Run("disabled without API key", func(t *testing.T) {
		var cfg config.Oracle
		parse(t, cfg.Flags())

		gt.False(t, cfg.Enabled())
		client, err := cfg.NewOracle(context.Background())
		gt.NoError(t, err)
		gt.True(t, client == nil)
	})

	t.Run("disabled by provider none", func(t *testing.T) {
		var cfg config.Oracle
		parse(t, cfg.Flags(), "--oracle-provider", "none", "--oracle-api-key", "key")

		gt.False(t, cfg.Enabled())
	})

	t.Run("openrouter", func(t *testing.T) {
		var cfg config.Oracle
		parse(t, cfg.Flags(), "--oracle-api-key", "key", "--oracle-model", "openai/gpt-4o-mini")

		client, err := cfg.NewOracle(context.Background())
		gt.NoError(t, err)
		gt.True(t, client != nil)
	})

	t.Run("unsupported provider", func(t *testing.T) {
		var cfg config.Oracle
		parse(t, cfg.Flags(), "--oracle-provider", "unknown", "--oracle-api-key", "key")

		_, err := cfg.NewOracle(context.Background())
		gt.Error(t, err)
	})
}

func TestOptionalBackends(t *testing.T) {
	for _, key := range []string{
		"CODEDIFF_DATABASE_URL", "DATABASE_URL",
		"CODEDIFF_FIRESTORE_PROJECT_ID",
		"CODEDIFF_BIGQUERY_PROJECT_ID", "CODEDIFF_BIGQUERY_DATASET_ID",
		"CODEDIFF_DIFF_ARCHIVE_BUCKET",
	} {
		t.Setenv(key, "")
	}

	var (
		pg  config.Postgres
		fs  config.Firestore
		bq  config.BigQuery
		gcs config.Storage
	)

	t.Run("all disabled by default", func(t *testing.T) {
		parse(t, append(append(append(pg.Flags(), fs.Flags()...), bq.Flags()...), gcs.Flags()...))

		gt.False(t, pg.Enabled())
		gt.False(t, fs.Enabled())
		gt.False(t, bq.Enabled())
		gt.False(t, gcs.Enabled())

		client, err := bq.NewClient(context.Background())
		gt.NoError(t, err)
		gt.True(t, client == nil)
	})

	t.Run("enabled by flags", func(t *testing.T) {
		parse(t, append(append(append(pg.Flags(), fs.Flags()...), bq.Flags()...), gcs.Flags()...),
			"--database-url", "postgres://localhost/codediff",
			"--firestore-project-id", "my-project",
			"--bigquery-project-id", "my-project",
			"--bigquery-dataset-id", "security",
			"--diff-archive-bucket", "diffs-bucket",
		)

		gt.True(t, pg.Enabled())
		gt.True(t, fs.Enabled())
		gt.True(t, bq.Enabled())
		gt.True(t, gcs.Enabled())
	})
}

func TestGitHubAppLogValue(t *testing.T) {
	var cfg config.GitHubApp
	parse(t, cfg.Flags(),
		"--github-app-id", "1234",
		"--github-app-private-key", "private",
		"--github-app-secret", "secret",
	)

	gt.V(t, cfg.Secret()).Equal("secret")
	for _, a := range cfg.LogValue().Group() {
		gt.V(t, a.Value.String()).NotEqual("secret")
		gt.V(t, a.Value.String()).NotEqual("private")
	}

	client, err := cfg.New()
	gt.NoError(t, err)
	gt.True(t, client != nil)
}
