package memory

import (
	"context"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

func (r *Repository) CreateDelivery(ctx context.Context, delivery *model.WebhookDelivery) error {
	if delivery.DeliveryID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "delivery ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.deliveries[delivery.DeliveryID]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "delivery already recorded",
			goerr.V("deliveryID", delivery.DeliveryID),
		)
	}

	r.deliveries[delivery.DeliveryID] = copyDelivery(delivery)
	return nil
}

func (r *Repository) GetDelivery(ctx context.Context, id types.DeliveryID) (*model.WebhookDelivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	delivery, exists := r.deliveries[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "delivery not found",
			goerr.V("deliveryID", id),
		)
	}

	return copyDelivery(delivery), nil
}

func (r *Repository) UpdateDelivery(ctx context.Context, id types.DeliveryID, result *model.DeliveryResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delivery, exists := r.deliveries[id]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "delivery not found",
			goerr.V("deliveryID", id),
		)
	}

	processedAt := result.ProcessedAt
	delivery.Processed = result.Processed
	delivery.ProcessedAt = &processedAt
	delivery.Error = result.Error
	return nil
}

func copyDelivery(delivery *model.WebhookDelivery) *model.WebhookDelivery {
	if delivery == nil {
		return nil
	}
	cpy := *delivery
	if delivery.ProcessedAt != nil {
		t := *delivery.ProcessedAt
		cpy.ProcessedAt = &t
	}
	return &cpy
}
