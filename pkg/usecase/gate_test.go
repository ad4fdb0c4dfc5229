package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/mock"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra"
	"github.com/ikshantshukla123/Codediff.ai/pkg/repository/memory"
	"github.com/ikshantshukla123/Codediff.ai/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestAdmitDelivery(t *testing.T) {
	ctx := newTestContext()

	t.Run("first delivery is admitted and recorded as unprocessed", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(infra.New(infra.WithDeliveryRepository(repo)))

		admission := gt.R1(uc.AdmitDelivery(ctx, &model.WebhookDelivery{
			DeliveryID: "d-1",
			EventKind:  "pull_request",
		})).NoError(t)
		gt.V(t, admission).Equal(types.AdmissionAdmitted)

		stored := gt.R1(repo.GetDelivery(ctx, "d-1")).NoError(t)
		gt.False(t, stored.Processed)
		gt.V(t, stored.CreatedAt).Equal(fixedNow)
	})

	t.Run("redelivery is a duplicate", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(infra.New(infra.WithDeliveryRepository(repo)))

		d := &model.WebhookDelivery{DeliveryID: "d-2"}
		gt.V(t, gt.R1(uc.AdmitDelivery(ctx, d)).NoError(t)).Equal(types.AdmissionAdmitted)
		gt.V(t, gt.R1(uc.AdmitDelivery(ctx, d)).NoError(t)).Equal(types.AdmissionDuplicate)
	})

	t.Run("delivery without ID is admitted without a record", func(t *testing.T) {
		deliveries := &mock.DeliveryRepositoryMock{}
		uc := usecase.New(infra.New(infra.WithDeliveryRepository(deliveries)))

		admission := gt.R1(uc.AdmitDelivery(ctx, &model.WebhookDelivery{})).NoError(t)
		gt.V(t, admission).Equal(types.AdmissionAdmitted)
		gt.V(t, len(deliveries.CreateDeliveryCalls())).Equal(0)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		errStore := errors.New("connection reset")
		deliveries := &mock.DeliveryRepositoryMock{
			CreateDeliveryFunc: func(ctx context.Context, delivery *model.WebhookDelivery) error {
				return errStore
			},
		}
		uc := usecase.New(infra.New(infra.WithDeliveryRepository(deliveries)))

		_, err := uc.AdmitDelivery(ctx, &model.WebhookDelivery{DeliveryID: "d-3"})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, errStore))
	})

	t.Run("concurrent admissions admit exactly one", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(infra.New(infra.WithDeliveryRepository(repo)))

		const n = 10
		results := make([]types.Admission, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = uc.AdmitDelivery(ctx, &model.WebhookDelivery{DeliveryID: "d-concurrent"})
			}(i)
		}
		wg.Wait()

		admitted := 0
		for _, r := range results {
			if r == types.AdmissionAdmitted {
				admitted++
			} else {
				gt.V(t, r).Equal(types.AdmissionDuplicate)
			}
		}
		gt.V(t, admitted).Equal(1)
	})
}
