package usecase

import (
	"context"
	"errors"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository"
	"github.com/ikshantshukla123/Codediff.ai/pkg/security/validator"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// reconcileRepository stores installID when it differs from the recorded one. repo is updated in place.
func (x *UseCase) reconcileRepository(ctx context.Context, repo *model.Repository, installID types.GitHubAppInstallID) (bool, error) {
	if installID == 0 || repo.InstallationID == installID {
		return false, nil
	}

	now := logging.CtxTime(ctx).UTC()
	if err := x.clients.AnalysisRepository().UpdateInstallationID(ctx, repo.ID, installID, now); err != nil {
		return false, goerr.Wrap(err, "failed to update installation ID",
			goerr.V("repository_id", repo.ID),
			goerr.V("install_id", installID),
		)
	}

	logging.From(ctx).Info("Installation ID updated",
		"repo", repo.FullName(),
		"old", repo.InstallationID,
		"new", installID,
	)
	repo.InstallationID = installID
	repo.UpdatedAt = now
	return true, nil
}

// ReconcileInstallation applies an installation event to registered repositories. Unregistered
// repositories are ignored, and a failure on one repository does not stop the others.
func (x *UseCase) ReconcileInstallation(ctx context.Context, input *model.ReconcileInstallationInput) error {
	if input == nil || input.InstallID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "install ID is required")
	}
	if x.clients.AnalysisRepository() == nil {
		return goerr.Wrap(types.ErrInvalidOption, "analysis repository is not configured")
	}

	var errs []error
	for _, r := range input.Repositories {
		repo, err := x.clients.AnalysisRepository().FindRepositoryByName(ctx, r.Owner, r.Name)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			errs = append(errs, goerr.Wrap(err, "failed to look up repository", goerr.V("repo", r.Owner+"/"+r.Name)))
			continue
		}

		if _, err := x.reconcileRepository(ctx, repo, input.InstallID); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// SyncInstallations walks every installation of the app and fixes stale installation IDs of registered
// repositories. With Register, installed repositories that are not registered yet are created.
func (x *UseCase) SyncInstallations(ctx context.Context, input *model.SyncInstallationsInput) (*model.SyncInstallationsResult, error) {
	gh := x.clients.GitHubApp()
	store := x.clients.AnalysisRepository()
	if gh == nil || store == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App and analysis repository are required")
	}
	if input == nil {
		input = &model.SyncInstallationsInput{}
	}

	installs, err := gh.ListInstallations(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list installations")
	}

	stored, err := store.ListRepositories(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories")
	}
	index := make(map[string]*model.Repository, len(stored))
	for _, repo := range stored {
		index[model.RepositoryKey(repo.Owner, repo.Name)] = repo
	}

	result := &model.SyncInstallationsResult{Installations: len(installs)}
	for _, inst := range installs {
		repos, err := gh.ListInstallationRepos(ctx, inst.ID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list installation repositories", goerr.V("install_id", inst.ID))
		}

		for _, r := range repos {
			result.Repositories++
			if r.Archived || r.Disabled {
				result.Skipped++
				continue
			}

			key := model.RepositoryKey(r.Owner, r.Name)
			if repo, ok := index[key]; ok {
				updated, err := x.reconcileRepository(ctx, repo, inst.ID)
				if err != nil {
					return nil, err
				}
				if updated {
					result.Updated++
				}
				continue
			}

			if !input.Register {
				result.Skipped++
				continue
			}
			if err := validator.ValidateRepository(r.Owner, r.Name); err != nil {
				logging.From(ctx).Warn("Skip repository with invalid name", "error", err)
				result.Skipped++
				continue
			}

			now := logging.CtxTime(ctx).UTC()
			repo := &model.Repository{
				ID:             types.NewRepositoryID(),
				Owner:          r.Owner,
				Name:           r.Name,
				InstallationID: inst.ID,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := store.PutRepository(ctx, repo); err != nil {
				return nil, goerr.Wrap(err, "failed to register repository", goerr.V("repo", repo.FullName()))
			}
			index[key] = repo
			result.Registered++
		}
	}

	logging.From(ctx).Info("Installations synced",
		"installations", result.Installations,
		"repositories", result.Repositories,
		"updated", result.Updated,
		"registered", result.Registered,
		"skipped", result.Skipped,
	)
	return result, nil
}
