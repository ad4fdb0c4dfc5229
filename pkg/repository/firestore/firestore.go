package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/interfaces"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

const (
	collectionRepository = "repository"
	collectionAnalysis   = "analysis"
	collectionDelivery   = "webhook_delivery"
)

// Repository stores repositories, analyses and webhook deliveries in Firestore.
type Repository struct {
	client *firestore.Client
}

var (
	_ interfaces.AnalysisRepository = (*Repository)(nil)
	_ interfaces.DeliveryRepository = (*Repository)(nil)
)

// New creates a new Firestore-based repository
func New(ctx context.Context, projectID, databaseID string) (*Repository, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Repository{
		client: client,
	}, nil
}

func (r *Repository) Close() error {
	return r.client.Close()
}

// ToFirestoreID converts owner and repo to a Firestore-safe document ID.
// The ID is lowercased so that lookups are case-insensitive. Colon is the
// separator since GitHub owner names cannot contain colons.
func ToFirestoreID(owner, repo string) (string, error) {
	if owner == "" || repo == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo is empty",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	if strings.Contains(owner, ":") || strings.Contains(repo, ":") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo contains invalid character ':'",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return strings.ToLower(owner) + ":" + strings.ToLower(repo), nil
}
