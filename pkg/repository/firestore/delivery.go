package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CreateDelivery relies on Firestore's create-if-absent semantics, so concurrent
// creates of the same delivery ID have exactly one winner.
func (r *Repository) CreateDelivery(ctx context.Context, delivery *model.WebhookDelivery) error {
	if delivery.DeliveryID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "delivery ID is required")
	}

	docRef := r.client.Collection(collectionDelivery).Doc(delivery.DeliveryID.String())
	if _, err := docRef.Create(ctx, delivery); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "delivery already recorded",
				goerr.V("deliveryID", delivery.DeliveryID),
			)
		}
		return goerr.Wrap(err, "failed to create delivery",
			goerr.V("deliveryID", delivery.DeliveryID),
		)
	}

	return nil
}

func (r *Repository) GetDelivery(ctx context.Context, id types.DeliveryID) (*model.WebhookDelivery, error) {
	snap, err := r.client.Collection(collectionDelivery).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "delivery not found",
				goerr.V("deliveryID", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get delivery",
			goerr.V("deliveryID", id),
		)
	}

	var delivery model.WebhookDelivery
	if err := snap.DataTo(&delivery); err != nil {
		return nil, goerr.Wrap(err, "failed to decode delivery",
			goerr.V("deliveryID", id),
		)
	}

	return &delivery, nil
}

func (r *Repository) UpdateDelivery(ctx context.Context, id types.DeliveryID, result *model.DeliveryResult) error {
	_, err := r.client.Collection(collectionDelivery).Doc(id.String()).Update(ctx, []firestore.Update{
		{Path: "processed", Value: result.Processed},
		{Path: "processed_at", Value: result.ProcessedAt},
		{Path: "error", Value: result.Error},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "delivery not found",
				goerr.V("deliveryID", id),
			)
		}
		return goerr.Wrap(err, "failed to update delivery",
			goerr.V("deliveryID", id),
		)
	}

	return nil
}
