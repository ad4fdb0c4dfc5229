package usecase

import (
	"context"
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra/metrics"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// pipeline tracks the state of one analysis run. It is not safe for concurrent use.
type pipeline struct {
	state     types.PipelineState
	startedAt time.Time
	metrics   *metrics.Metrics
}

func newPipeline(ctx context.Context, m *metrics.Metrics) *pipeline {
	return &pipeline{
		state:     types.PipelineReceived,
		startedAt: logging.CtxTime(ctx),
		metrics:   m,
	}
}

func (x *pipeline) advance(ctx context.Context, next types.PipelineState) {
	if !x.state.CanTransitionTo(next) {
		logging.From(ctx).Error("Invalid pipeline transition", "from", x.state, "to", next)
		return
	}

	logging.From(ctx).Debug("Pipeline transition", "from", x.state, "to", next)
	x.state = next
	x.metrics.Transition(next)

	if next.Terminal() {
		x.metrics.AnalysisDuration(next, logging.CtxTime(ctx).Sub(x.startedAt))
	}
}

// fail moves the pipeline to FAILED and returns err annotated with the state it failed in.
func (x *pipeline) fail(ctx context.Context, err error) error {
	failedAt := x.state
	x.advance(ctx, types.PipelineFailed)
	return goerr.Wrap(err, "analysis pipeline failed", goerr.V("state", failedAt))
}
