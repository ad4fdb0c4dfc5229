package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
)

type UseCase interface {
	AdmitDelivery(ctx context.Context, delivery *model.WebhookDelivery) (types.Admission, error)
	AnalyzePullRequest(ctx context.Context, input *model.AnalyzePullRequestInput) (*model.Analysis, error)
	AnalyzeDiff(ctx context.Context, input *model.AnalyzeDiffInput) (*model.Analysis, error)
	ReconcileInstallation(ctx context.Context, input *model.ReconcileInstallationInput) error
	SyncInstallations(ctx context.Context, input *model.SyncInstallationsInput) (*model.SyncInstallationsResult, error)
}
