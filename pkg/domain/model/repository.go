package model

import (
	"strings"
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
)

// Repository is a registered source repository. Owner and Name keep the casing they were registered with.
type Repository struct {
	ID             types.RepositoryID       `json:"id" firestore:"id"`
	Owner          string                   `json:"owner" firestore:"owner"`
	Name           string                   `json:"name" firestore:"name"`
	InstallationID types.GitHubAppInstallID `json:"installation_id" firestore:"installation_id"`
	CreatedAt      time.Time                `json:"created_at" firestore:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at" firestore:"updated_at"`
}

func (x *Repository) FullName() string {
	return x.Owner + "/" + x.Name
}

// RepositoryKey is the case-insensitive lookup key of owner/name.
func RepositoryKey(owner, name string) string {
	return strings.ToLower(owner) + "/" + strings.ToLower(name)
}

// GitHubAPIRepository is a repository as reported by the GitHub API.
type GitHubAPIRepository struct {
	Owner    string
	Name     string
	Archived bool
	Disabled bool
}

type GitHubInstallation struct {
	ID      types.GitHubAppInstallID
	Account string
}
