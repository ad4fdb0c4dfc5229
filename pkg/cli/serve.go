package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/cli/config"
	"github.com/ikshantshukla123/Codediff.ai/pkg/controller/server"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra/metrics"
	"github.com/ikshantshukla123/Codediff.ai/pkg/usecase"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		githubApp config.GitHubApp
		postgres  config.Postgres
		firestore config.Firestore
		bigQuery  config.BigQuery
		storage   config.Storage
		oracle    config.Oracle
		pipeline  config.Pipeline
		rateLimit config.RateLimit
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("CODEDIFF_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode. Receives GitHub App webhooks and analyzes pull requests",
		Flags: slice.Flatten(
			serveFlags,
			githubApp.Flags(),
			postgres.Flags(),
			firestore.Flags(),
			bigQuery.Flags(),
			storage.Flags(),
			oracle.Flags(),
			pipeline.Flags(),
			rateLimit.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHubApp", githubApp),
				slog.Any("Postgres", &postgres),
				slog.Any("Firestore", &firestore),
				slog.Any("BigQuery", &bigQuery),
				slog.Any("Storage", &storage),
				slog.Any("Oracle", &oracle),
				slog.Any("Pipeline", &pipeline),
				slog.Any("RateLimit", &rateLimit),
				slog.Any("Sentry", sentry),
			)
			ctx = logging.With(ctx, logging.Default())

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghApp, err := githubApp.New()
			if err != nil {
				return err
			}

			repo, closeRepo, err := openStore(ctx, &postgres, &firestore, true)
			if err != nil {
				return err
			}
			defer closeRepo()

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			m := metrics.New(registry)

			infraOptions := []infra.Option{
				infra.WithGitHubApp(ghApp),
				infra.WithAnalysisRepository(repo),
				infra.WithDeliveryRepository(repo),
				infra.WithMetrics(m),
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			if storage.Enabled() {
				archive, err := storage.NewArchive(ctx)
				if err != nil {
					return err
				}
				defer safe.Close(archive)
				infraOptions = append(infraOptions, infra.WithDiffArchive(archive))
			}

			if bugOracle, err := oracle.NewOracle(ctx); err != nil {
				return err
			} else if bugOracle != nil {
				infraOptions = append(infraOptions, infra.WithBugOracle(bugOracle))
			} else {
				logging.Default().Warn("bug oracle is disabled, analyses rely on PCI audit and attack simulation only")
			}

			clients := infra.New(infraOptions...)
			uc := usecase.New(clients, pipeline.Options()...)

			serverOptions := []server.Option{
				server.WithGitHubSecret(githubApp.Secret()),
				server.WithMetrics(m),
				server.WithMetricsGatherer(registry),
			}

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			if limiter := rateLimit.New(); limiter != nil {
				go limiter.Run(ctx, rateLimit.SweepInterval())
				serverOptions = append(serverOptions, server.WithRateLimiter(limiter))
			}

			s := server.New(uc, serverOptions...)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
