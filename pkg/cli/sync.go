package cli

import (
	"context"
	"log/slog"

	"github.com/ikshantshukla123/Codediff.ai/pkg/cli/config"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra"
	"github.com/ikshantshukla123/Codediff.ai/pkg/usecase"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func syncCommand() *cli.Command {
	var (
		register bool

		githubApp config.GitHubApp
		postgres  config.Postgres
		firestore config.Firestore
	)

	syncFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "register",
			Usage:       "Register installed repositories that are not stored yet",
			Sources:     cli.EnvVars("CODEDIFF_SYNC_REGISTER"),
			Destination: &register,
		},
	}

	return &cli.Command{
		Name:  "sync",
		Usage: "Refresh installation IDs of registered repositories from the GitHub App installations",
		Flags: slice.Flatten(
			syncFlags,
			githubApp.Flags(),
			postgres.Flags(),
			firestore.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.With(ctx, logging.Default())
			logging.From(ctx).Info("starting sync",
				slog.Bool("Register", register),
				slog.Any("GitHubApp", githubApp),
				slog.Any("Postgres", &postgres),
				slog.Any("Firestore", &firestore),
			)

			ghApp, err := githubApp.New()
			if err != nil {
				return err
			}

			repo, closeRepo, err := openStore(ctx, &postgres, &firestore, false)
			if err != nil {
				return err
			}
			defer closeRepo()

			uc := usecase.New(infra.New(
				infra.WithGitHubApp(ghApp),
				infra.WithAnalysisRepository(repo),
			))

			result, err := uc.SyncInstallations(ctx, &model.SyncInstallationsInput{
				Register: register,
			})
			if err != nil {
				return err
			}

			logging.From(ctx).Info("sync completed",
				slog.Int("installations", result.Installations),
				slog.Int("repositories", result.Repositories),
				slog.Int("updated", result.Updated),
				slog.Int("registered", result.Registered),
				slog.Int("skipped", result.Skipped),
			)
			return nil
		},
	}
}
