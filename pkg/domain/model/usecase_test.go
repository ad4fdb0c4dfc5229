package model_test

import (
	"errors"
	"testing"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestAnalyzePullRequestInputValidate(t *testing.T) {
	t.Run("valid input passes validation", func(t *testing.T) {
		input := &model.AnalyzePullRequestInput{
			Owner:     "acme",
			Repo:      "payments",
			PRNumber:  42,
			InstallID: 1234,
		}
		gt.NoError(t, input.Validate())
		gt.V(t, input.RepoRef()).Equal("acme/payments")
	})

	t.Run("missing owner fails validation", func(t *testing.T) {
		input := &model.AnalyzePullRequestInput{
			Repo:      "payments",
			InstallID: 1234,
		}
		err := input.Validate()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("missing install ID fails validation", func(t *testing.T) {
		input := &model.AnalyzePullRequestInput{
			Owner: "acme",
			Repo:  "payments",
		}
		err := input.Validate()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestFindingNormalize(t *testing.T) {
	t.Run("empty finding gets safe defaults", func(t *testing.T) {
		f := model.Finding{Line: -3}.Normalize()
		gt.V(t, f.Kind).Equal(model.FindingKindUnknown)
		gt.V(t, f.Title).Equal(model.FindingKindUnknown)
		gt.V(t, f.Severity).Equal(types.SeverityMedium)
		gt.V(t, f.File).Equal(model.UnknownFile)
		gt.V(t, f.Line).Equal(0)
		gt.V(t, f.Description).NotEqual("")
		gt.V(t, f.Recommendation).NotEqual("")
	})

	t.Run("complete finding is kept", func(t *testing.T) {
		src := model.Finding{
			Kind:           "SQL_INJECTION",
			Severity:       "high",
			Title:          "Raw query",
			Description:    "query built from input",
			File:           "db.ts",
			Line:           12,
			Recommendation: "use placeholders",
		}
		f := src.Normalize()
		gt.V(t, f.Severity).Equal(types.SeverityHigh)
		gt.V(t, f.File).Equal("db.ts")
		gt.V(t, f.Line).Equal(12)
		// source value is untouched
		gt.V(t, src.Severity).Equal(types.Severity("high"))
	})
}

func TestAnalysisToRecord(t *testing.T) {
	analysis := &model.Analysis{
		ID:            "a1",
		RepositoryRef: "acme/payments",
		PRNumber:      42,
		RiskScore:     100,
		Status:        types.AnalysisStatusVulnerable,
		AttackProof:   &model.AttackProof{Kind: model.AttackProofKindSQLInjection, Payload: "OR 1=1"},
	}

	record := analysis.ToRecord()
	gt.V(t, record.ID).Equal("a1")
	gt.V(t, record.PRNumber).Equal(int64(42))
	gt.True(t, record.Proven)
	gt.V(t, record.AttackProof.Payload).Equal("OR 1=1")

	analysis.AttackProof = nil
	gt.False(t, analysis.ToRecord().Proven)
}
