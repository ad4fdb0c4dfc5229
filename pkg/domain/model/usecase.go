package model

import (
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// AnalyzePullRequestInput is the trigger event of the analysis pipeline.
type AnalyzePullRequestInput struct {
	DeliveryID types.DeliveryID
	Owner      string
	Repo       string
	PRNumber   int
	InstallID  types.GitHubAppInstallID
	DiffURL    string
}

func (x *AnalyzePullRequestInput) Validate() error {
	if x.Owner == "" || x.Repo == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner and repo are required",
			goerr.V("owner", x.Owner),
			goerr.V("repo", x.Repo),
		)
	}
	if x.InstallID == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "install ID is empty")
	}
	return nil
}

func (x *AnalyzePullRequestInput) RepoRef() string {
	return x.Owner + "/" + x.Repo
}

// AnalyzeDiffInput runs detection and aggregation only. Nothing is persisted or posted.
type AnalyzeDiffInput struct {
	Owner    string
	Repo     string
	PRNumber int
	Diff     string
}

type SyncInstallationsInput struct {
	// Register creates records for repositories that are installed but not registered yet.
	Register bool
}

type SyncInstallationsResult struct {
	Installations int
	Repositories  int
	Updated       int
	Registered    int
	Skipped       int
}

// ReconcileInstallationInput carries repositories reported by an installation event.
type ReconcileInstallationInput struct {
	InstallID    types.GitHubAppInstallID
	Repositories []*GitHubAPIRepository
}
