package usecase

import (
	"context"
	"errors"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/errutil"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// AdmitDelivery records the delivery before any work starts. A delivery ID that was already recorded is a
// DUPLICATE. Deliveries without an ID are always admitted and nothing is written.
func (x *UseCase) AdmitDelivery(ctx context.Context, delivery *model.WebhookDelivery) (types.Admission, error) {
	store := x.clients.DeliveryRepository()
	if delivery == nil || delivery.DeliveryID == "" || store == nil {
		x.clients.Metrics().Admission(types.AdmissionAdmitted)
		return types.AdmissionAdmitted, nil
	}

	record := &model.WebhookDelivery{
		DeliveryID: delivery.DeliveryID,
		EventKind:  delivery.EventKind,
		Payload:    delivery.Payload,
		CreatedAt:  delivery.CreatedAt,
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = logging.CtxTime(ctx)
	}

	if err := store.CreateDelivery(ctx, record); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			logging.From(ctx).Info("Duplicate webhook delivery", "delivery_id", delivery.DeliveryID)
			x.clients.Metrics().Admission(types.AdmissionDuplicate)
			return types.AdmissionDuplicate, nil
		}

		return "", goerr.Wrap(err, "failed to record webhook delivery",
			goerr.V("delivery_id", delivery.DeliveryID),
		)
	}

	x.clients.Metrics().Admission(types.AdmissionAdmitted)
	return types.AdmissionAdmitted, nil
}

// markProcessed writes the terminal outcome of a delivery. cause is nil on success.
func (x *UseCase) markProcessed(ctx context.Context, id types.DeliveryID, cause error) {
	store := x.clients.DeliveryRepository()
	if id == "" || store == nil {
		return
	}

	result := &model.DeliveryResult{
		Processed:   cause == nil,
		ProcessedAt: logging.CtxTime(ctx),
	}
	if cause != nil {
		result.Error = cause.Error()
	}

	if err := store.UpdateDelivery(ctx, id, result); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logging.From(ctx).Warn("Delivery was not admitted, skip marking", "delivery_id", id)
			return
		}
		errutil.HandleError(ctx, "failed to mark delivery processed", goerr.Wrap(err, "update delivery",
			goerr.V("delivery_id", id),
		))
	}
}
