package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/mock"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository/memory"
	"github.com/ikshantshukla123/Codediff.ai/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestReconcileInstallation(t *testing.T) {
	t.Run("registered repositories get the new installation ID", func(t *testing.T) {
		ctx := newTestContext()
		repo := memory.New()
		registerPayments(t, repo, 111)
		uc := usecase.New(infra.New(infra.WithAnalysisRepository(repo)))

		gt.NoError(t, uc.ReconcileInstallation(ctx, &model.ReconcileInstallationInput{
			InstallID: 222,
			Repositories: []*model.GitHubAPIRepository{
				{Owner: "Acme", Name: "PAYMENTS"},
				{Owner: "acme", Name: "not-registered"},
			},
		}))

		stored := gt.R1(repo.FindRepositoryByName(ctx, "acme", "payments")).NoError(t)
		gt.V(t, stored.InstallationID).Equal(types.GitHubAppInstallID(222))

		_, err := repo.FindRepositoryByName(ctx, "acme", "not-registered")
		gt.Error(t, err)
	})

	t.Run("install ID is required", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithAnalysisRepository(memory.New())))
		err := uc.ReconcileInstallation(newTestContext(), &model.ReconcileInstallationInput{})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("lookup failure does not stop other repositories", func(t *testing.T) {
		ctx := newTestContext()
		store := &mock.AnalysisRepositoryMock{
			FindRepositoryByNameFunc: func(ctx context.Context, owner, name string) (*model.Repository, error) {
				if name == "broken" {
					return nil, errors.New("unavailable")
				}
				return &model.Repository{ID: testRepoID, Owner: owner, Name: name, InstallationID: 1}, nil
			},
			UpdateInstallationIDFunc: func(ctx context.Context, repoID types.RepositoryID, installID types.GitHubAppInstallID, updatedAt time.Time) error {
				return nil
			},
		}
		uc := usecase.New(infra.New(infra.WithAnalysisRepository(store)))

		err := uc.ReconcileInstallation(ctx, &model.ReconcileInstallationInput{
			InstallID: 2,
			Repositories: []*model.GitHubAPIRepository{
				{Owner: "acme", Name: "broken"},
				{Owner: "acme", Name: "payments"},
			},
		})
		gt.Error(t, err)
		gt.V(t, len(store.UpdateInstallationIDCalls())).Equal(1)
	})
}

func TestSyncInstallations(t *testing.T) {
	newGitHub := func() *mock.GitHubAppMock {
		return &mock.GitHubAppMock{
			ListInstallationsFunc: func(ctx context.Context) ([]*model.GitHubInstallation, error) {
				return []*model.GitHubInstallation{{ID: 10, Account: "acme"}, {ID: 20, Account: "globex"}}, nil
			},
			ListInstallationReposFunc: func(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubAPIRepository, error) {
				switch installID {
				case 10:
					return []*model.GitHubAPIRepository{
						{Owner: "acme", Name: "payments"},
						{Owner: "acme", Name: "legacy", Archived: true},
					}, nil
				case 20:
					return []*model.GitHubAPIRepository{
						{Owner: "globex", Name: "billing"},
					}, nil
				}
				return nil, nil
			},
		}
	}

	t.Run("stale installation IDs are fixed", func(t *testing.T) {
		ctx := newTestContext()
		repo := memory.New()
		registerPayments(t, repo, 1)
		uc := usecase.New(infra.New(
			infra.WithGitHubApp(newGitHub()),
			infra.WithAnalysisRepository(repo),
		))

		result := gt.R1(uc.SyncInstallations(ctx, &model.SyncInstallationsInput{})).NoError(t)
		gt.V(t, result.Installations).Equal(2)
		gt.V(t, result.Repositories).Equal(3)
		gt.V(t, result.Updated).Equal(1)
		gt.V(t, result.Registered).Equal(0)
		gt.V(t, result.Skipped).Equal(2)

		stored := gt.R1(repo.FindRepositoryByName(ctx, "acme", "payments")).NoError(t)
		gt.V(t, stored.InstallationID).Equal(types.GitHubAppInstallID(10))

		all := gt.R1(repo.ListRepositories(ctx)).NoError(t)
		gt.V(t, len(all)).Equal(1)
	})

	t.Run("register creates missing repositories", func(t *testing.T) {
		ctx := newTestContext()
		repo := memory.New()
		registerPayments(t, repo, 10)
		uc := usecase.New(infra.New(
			infra.WithGitHubApp(newGitHub()),
			infra.WithAnalysisRepository(repo),
		))

		result := gt.R1(uc.SyncInstallations(ctx, &model.SyncInstallationsInput{Register: true})).NoError(t)
		gt.V(t, result.Updated).Equal(0)
		gt.V(t, result.Registered).Equal(1)
		gt.V(t, result.Skipped).Equal(1)

		billing := gt.R1(repo.FindRepositoryByName(ctx, "globex", "billing")).NoError(t)
		gt.V(t, billing.InstallationID).Equal(types.GitHubAppInstallID(20))
		gt.V(t, billing.CreatedAt).Equal(fixedNow)
	})

	t.Run("listing failure is returned", func(t *testing.T) {
		gh := &mock.GitHubAppMock{
			ListInstallationsFunc: func(ctx context.Context) ([]*model.GitHubInstallation, error) {
				return nil, errors.New("bad credentials")
			},
		}
		uc := usecase.New(infra.New(
			infra.WithGitHubApp(gh),
			infra.WithAnalysisRepository(memory.New()),
		))

		_, err := uc.SyncInstallations(newTestContext(), nil)
		gt.Error(t, err)
	})
}
