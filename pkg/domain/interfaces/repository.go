package interfaces

import (
	"context"
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
)

//go:generate moq -out ../mock/repository.go -pkg mock . AnalysisRepository DeliveryRepository

// AnalysisRepository stores registered repositories and their analyses.
type AnalysisRepository interface {
	PutRepository(ctx context.Context, repo *model.Repository) error
	// FindRepositoryByName matches owner and name case-insensitively. Returns repository.ErrNotFound if absent.
	FindRepositoryByName(ctx context.Context, owner, name string) (*model.Repository, error)
	ListRepositories(ctx context.Context) ([]*model.Repository, error)
	UpdateInstallationID(ctx context.Context, repoID types.RepositoryID, installID types.GitHubAppInstallID, updatedAt time.Time) error

	// CreateAnalysis returns repository.ErrAlreadyExists if the ID is taken. Analyses are never updated.
	CreateAnalysis(ctx context.Context, analysis *model.Analysis) error
	GetAnalysis(ctx context.Context, id types.AnalysisID) (*model.Analysis, error)
	ListAnalyses(ctx context.Context, repoID types.RepositoryID, limit int) ([]*model.Analysis, error)
}

// DeliveryRepository stores webhook deliveries. CreateDelivery must be atomic on DeliveryID.
type DeliveryRepository interface {
	CreateDelivery(ctx context.Context, delivery *model.WebhookDelivery) error
	GetDelivery(ctx context.Context, id types.DeliveryID) (*model.WebhookDelivery, error)
	UpdateDelivery(ctx context.Context, id types.DeliveryID, result *model.DeliveryResult) error
}
