package types_test

import (
	"testing"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestParseSeverity(t *testing.T) {
	testCases := map[string]types.Severity{
		"HIGH":      types.SeverityHigh,
		"high":      types.SeverityHigh,
		" Critical": types.SeverityHigh,
		"low":       types.SeverityLow,
		"medium":    types.SeverityMedium,
		"":          types.SeverityMedium,
		"whatever":  types.SeverityMedium,
	}

	for input, expected := range testCases {
		t.Run(input, func(t *testing.T) {
			gt.V(t, types.ParseSeverity(input)).Equal(expected)
		})
	}
}

func TestPipelineStateTransition(t *testing.T) {
	t.Run("forward path", func(t *testing.T) {
		path := []types.PipelineState{
			types.PipelineReceived,
			types.PipelineValidating,
			types.PipelineDetecting,
			types.PipelineAggregating,
			types.PipelinePersisting,
			types.PipelineNotifying,
			types.PipelineDone,
		}
		for i := 0; i < len(path)-1; i++ {
			gt.True(t, path[i].CanTransitionTo(path[i+1]))
		}
	})

	t.Run("skipping a state is not allowed", func(t *testing.T) {
		gt.False(t, types.PipelineReceived.CanTransitionTo(types.PipelineDetecting))
		gt.False(t, types.PipelineValidating.CanTransitionTo(types.PipelineDone))
	})

	t.Run("any running state can fail", func(t *testing.T) {
		gt.True(t, types.PipelineReceived.CanTransitionTo(types.PipelineFailed))
		gt.True(t, types.PipelinePersisting.CanTransitionTo(types.PipelineFailed))
	})

	t.Run("terminal states are final", func(t *testing.T) {
		gt.False(t, types.PipelineDone.CanTransitionTo(types.PipelineFailed))
		gt.False(t, types.PipelineFailed.CanTransitionTo(types.PipelineReceived))
	})
}
