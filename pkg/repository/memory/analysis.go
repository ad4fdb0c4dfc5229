package memory

import (
	"context"
	"sort"
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

// Repository operations

func (r *Repository) PutRepository(ctx context.Context, repo *model.Repository) error {
	if repo.ID == "" || repo.Owner == "" || repo.Name == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "repository ID, owner and name are required",
			goerr.V("repo", repo),
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := model.RepositoryKey(repo.Owner, repo.Name)
	if id, exists := r.nameIndex[key]; exists && id != repo.ID {
		return goerr.Wrap(repository.ErrAlreadyExists, "repository name is already registered",
			goerr.V("name", repo.FullName()),
			goerr.V("registeredID", id),
		)
	}

	if old, exists := r.repos[repo.ID]; exists {
		delete(r.nameIndex, model.RepositoryKey(old.Owner, old.Name))
	}
	r.repos[repo.ID] = copyRepository(repo)
	r.nameIndex[key] = repo.ID

	return nil
}

func (r *Repository) FindRepositoryByName(ctx context.Context, owner, name string) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.nameIndex[model.RepositoryKey(owner, name)]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("owner", owner),
			goerr.V("name", name),
		)
	}

	return copyRepository(r.repos[id]), nil
}

func (r *Repository) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repos := make([]*model.Repository, 0, len(r.repos))
	for _, repo := range r.repos {
		repos = append(repos, copyRepository(repo))
	}
	sort.Slice(repos, func(i, j int) bool {
		return model.RepositoryKey(repos[i].Owner, repos[i].Name) < model.RepositoryKey(repos[j].Owner, repos[j].Name)
	})

	return repos, nil
}

func (r *Repository) UpdateInstallationID(ctx context.Context, repoID types.RepositoryID, installID types.GitHubAppInstallID, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	repo, exists := r.repos[repoID]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("repoID", repoID),
		)
	}

	repo.InstallationID = installID
	repo.UpdatedAt = updatedAt
	return nil
}

// Analysis operations

func (r *Repository) CreateAnalysis(ctx context.Context, analysis *model.Analysis) error {
	if analysis.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "analysis ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.analyses[analysis.ID]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "analysis already exists",
			goerr.V("analysisID", analysis.ID),
		)
	}

	r.analyses[analysis.ID] = copyAnalysis(analysis)
	return nil
}

func (r *Repository) GetAnalysis(ctx context.Context, id types.AnalysisID) (*model.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	analysis, exists := r.analyses[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "analysis not found",
			goerr.V("analysisID", id),
		)
	}

	return copyAnalysis(analysis), nil
}

func (r *Repository) ListAnalyses(ctx context.Context, repoID types.RepositoryID, limit int) ([]*model.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var analyses []*model.Analysis
	for _, analysis := range r.analyses {
		if analysis.RepositoryID == repoID {
			analyses = append(analyses, copyAnalysis(analysis))
		}
	}

	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].CreatedAt.After(analyses[j].CreatedAt)
	})
	if limit > 0 && len(analyses) > limit {
		analyses = analyses[:limit]
	}

	return analyses, nil
}

// Helper functions for deep copy

func copyRepository(repo *model.Repository) *model.Repository {
	if repo == nil {
		return nil
	}
	cpy := *repo
	return &cpy
}

func copyAnalysis(analysis *model.Analysis) *model.Analysis {
	if analysis == nil {
		return nil
	}
	cpy := *analysis

	if analysis.Findings != nil {
		cpy.Findings = make([]model.Finding, len(analysis.Findings))
		copy(cpy.Findings, analysis.Findings)
	}

	if analysis.AttackProof != nil {
		proof := *analysis.AttackProof
		cpy.AttackProof = &proof
	}

	return &cpy
}
