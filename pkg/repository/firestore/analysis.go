package firestore

import (
	"context"
	"errors"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Repository operations

func (r *Repository) PutRepository(ctx context.Context, repo *model.Repository) error {
	if repo.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "repository ID is required")
	}

	firestoreID, err := ToFirestoreID(repo.Owner, repo.Name)
	if err != nil {
		return err
	}

	docRef := r.client.Collection(collectionRepository).Doc(firestoreID)

	// The name document is the uniqueness constraint: another ID may not take it over.
	err = r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if snap != nil && snap.Exists() {
			var current model.Repository
			if err := snap.DataTo(&current); err != nil {
				return err
			}
			if current.ID != repo.ID {
				return goerr.Wrap(repository.ErrAlreadyExists, "repository name is already registered",
					goerr.V("name", repo.FullName()),
					goerr.V("registeredID", current.ID),
				)
			}
		}
		return tx.Set(docRef, repo)
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return err
		}
		return goerr.Wrap(err, "failed to put repository",
			goerr.V("repoID", repo.ID),
		)
	}

	return nil
}

func (r *Repository) FindRepositoryByName(ctx context.Context, owner, name string) (*model.Repository, error) {
	firestoreID, err := ToFirestoreID(owner, name)
	if err != nil {
		return nil, err
	}

	snap, err := r.client.Collection(collectionRepository).Doc(firestoreID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
				goerr.V("owner", owner),
				goerr.V("name", name),
			)
		}
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("owner", owner),
			goerr.V("name", name),
		)
	}

	var repo model.Repository
	if err := snap.DataTo(&repo); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository",
			goerr.V("firestoreID", firestoreID),
		)
	}

	return &repo, nil
}

func (r *Repository) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	iter := r.client.Collection(collectionRepository).Documents(ctx)
	defer iter.Stop()

	var repos []*model.Repository
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate repositories")
		}

		var repo model.Repository
		if err := snap.DataTo(&repo); err != nil {
			return nil, goerr.Wrap(err, "failed to decode repository",
				goerr.V("docID", snap.Ref.ID),
			)
		}

		repos = append(repos, &repo)
	}

	return repos, nil
}

func (r *Repository) UpdateInstallationID(ctx context.Context, repoID types.RepositoryID, installID types.GitHubAppInstallID, updatedAt time.Time) error {
	iter := r.client.Collection(collectionRepository).Where("id", "==", repoID.String()).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("repoID", repoID),
		)
	}
	if err != nil {
		return goerr.Wrap(err, "failed to query repository",
			goerr.V("repoID", repoID),
		)
	}

	_, err = snap.Ref.Update(ctx, []firestore.Update{
		{Path: "installation_id", Value: int64(installID)},
		{Path: "updated_at", Value: updatedAt},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to update installation ID",
			goerr.V("repoID", repoID),
			goerr.V("installID", installID),
		)
	}

	return nil
}

// Analysis operations

func (r *Repository) CreateAnalysis(ctx context.Context, analysis *model.Analysis) error {
	if analysis.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "analysis ID is required")
	}

	docRef := r.client.Collection(collectionAnalysis).Doc(analysis.ID.String())
	if _, err := docRef.Create(ctx, analysis); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "analysis already exists",
				goerr.V("analysisID", analysis.ID),
			)
		}
		return goerr.Wrap(err, "failed to create analysis",
			goerr.V("analysisID", analysis.ID),
		)
	}

	return nil
}

func (r *Repository) GetAnalysis(ctx context.Context, id types.AnalysisID) (*model.Analysis, error) {
	snap, err := r.client.Collection(collectionAnalysis).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "analysis not found",
				goerr.V("analysisID", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get analysis",
			goerr.V("analysisID", id),
		)
	}

	var analysis model.Analysis
	if err := snap.DataTo(&analysis); err != nil {
		return nil, goerr.Wrap(err, "failed to decode analysis",
			goerr.V("analysisID", id),
		)
	}

	return &analysis, nil
}

// ListAnalyses sorts in memory so that no composite index is required.
func (r *Repository) ListAnalyses(ctx context.Context, repoID types.RepositoryID, limit int) ([]*model.Analysis, error) {
	iter := r.client.Collection(collectionAnalysis).Where("repository_id", "==", repoID.String()).Documents(ctx)
	defer iter.Stop()

	var analyses []*model.Analysis
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate analyses",
				goerr.V("repoID", repoID),
			)
		}

		var analysis model.Analysis
		if err := snap.DataTo(&analysis); err != nil {
			return nil, goerr.Wrap(err, "failed to decode analysis",
				goerr.V("docID", snap.Ref.ID),
			)
		}
		analyses = append(analyses, &analysis)
	}

	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].CreatedAt.After(analyses[j].CreatedAt)
	})
	if limit > 0 && len(analyses) > limit {
		analyses = analyses[:limit]
	}

	return analyses, nil
}
