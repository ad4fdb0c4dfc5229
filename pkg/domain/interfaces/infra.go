package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHubApp BugOracle DiffArchive

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any, insertID string) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

type GitHubApp interface {
	GetDiff(ctx context.Context, input *GetDiffInput) (string, error)
	CreateComment(ctx context.Context, input *CreateCommentInput) error
	ListInstallations(ctx context.Context) ([]*model.GitHubInstallation, error)
	ListInstallationRepos(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubAPIRepository, error)
}

type GetDiffInput struct {
	Owner     string
	Repo      string
	PRNumber  int
	DiffURL   string
	InstallID types.GitHubAppInstallID
}

type CreateCommentInput struct {
	Owner     string
	Repo      string
	PRNumber  int
	Body      string
	InstallID types.GitHubAppInstallID
}

// BugOracle is an external bug finding service. Its output is not trusted to be complete or well-formed.
type BugOracle interface {
	FindBugs(ctx context.Context, diff string) ([]model.Finding, error)
}

// DiffArchive stores raw diffs and returns an URI of the stored object.
type DiffArchive interface {
	Put(ctx context.Context, key string, data []byte) (string, error)
}
