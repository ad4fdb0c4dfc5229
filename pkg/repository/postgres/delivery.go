package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository"
	"github.com/jackc/pgx/v5"
	"github.com/m-mizutani/goerr/v2"
)

const (
	sqlInsertDelivery = `INSERT INTO webhook_deliveries (delivery_id, event_kind, payload, processed, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	sqlSelectDelivery = `SELECT delivery_id, event_kind, payload, processed, processed_at, error, created_at
		FROM webhook_deliveries WHERE delivery_id = $1`

	sqlUpdateDelivery = `UPDATE webhook_deliveries SET processed = $2, processed_at = $3, error = $4
		WHERE delivery_id = $1`
)

// CreateDelivery relies on the primary key, so concurrent creates of the same
// delivery ID have exactly one winner.
func (r *Repository) CreateDelivery(ctx context.Context, delivery *model.WebhookDelivery) error {
	if delivery.DeliveryID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "delivery ID is required")
	}

	_, err := r.pool.Exec(ctx, sqlInsertDelivery,
		delivery.DeliveryID.String(),
		delivery.EventKind,
		delivery.Payload,
		delivery.Processed,
		delivery.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
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
	var (
		deliveryID, eventKind, payload, errMsg string
		processed                              bool
		processedAt                            *time.Time
		createdAt                              time.Time
	)

	err := r.pool.QueryRow(ctx, sqlSelectDelivery, id.String()).
		Scan(&deliveryID, &eventKind, &payload, &processed, &processedAt, &errMsg, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "delivery not found",
				goerr.V("deliveryID", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get delivery",
			goerr.V("deliveryID", id),
		)
	}

	return &model.WebhookDelivery{
		DeliveryID:  types.DeliveryID(deliveryID),
		EventKind:   eventKind,
		Payload:     payload,
		Processed:   processed,
		ProcessedAt: processedAt,
		Error:       errMsg,
		CreatedAt:   createdAt,
	}, nil
}

func (r *Repository) UpdateDelivery(ctx context.Context, id types.DeliveryID, result *model.DeliveryResult) error {
	tag, err := r.pool.Exec(ctx, sqlUpdateDelivery, id.String(), result.Processed, result.ProcessedAt, result.Error)
	if err != nil {
		return goerr.Wrap(err, "failed to update delivery",
			goerr.V("deliveryID", id),
		)
	}
	if tag.RowsAffected() == 0 {
		return goerr.Wrap(repository.ErrNotFound, "delivery not found",
			goerr.V("deliveryID", id),
		)
	}

	return nil
}
