package usecase

import (
	"context"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/security/risk"
	"github.com/ikshantshukla123/Codediff.ai/pkg/security/validator"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// AnalyzeDiff validates a local diff, runs the detectors and aggregates their findings. Nothing is stored
// or posted. Owner, Repo and PRNumber are optional and only used to label the result.
func (x *UseCase) AnalyzeDiff(ctx context.Context, input *model.AnalyzeDiffInput) (*model.Analysis, error) {
	if input == nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "input is required")
	}

	ref := ""
	if input.Owner != "" || input.Repo != "" {
		if err := validator.ValidateRepository(input.Owner, input.Repo); err != nil {
			return nil, err
		}
		ref = input.Owner + "/" + input.Repo
	}
	if input.PRNumber != 0 {
		if err := validator.ValidatePRNumber(input.PRNumber); err != nil {
			return nil, err
		}
	}

	diff, err := validator.Validate(input.Diff)
	if err != nil {
		return nil, err
	}

	det := x.detect(ctx, diff)
	return x.aggregate(ctx, ref, input.PRNumber, det), nil
}

// aggregate normalizes detector output into a new Analysis with a fresh ID.
func (x *UseCase) aggregate(ctx context.Context, ref string, prNumber int, det *detection) *model.Analysis {
	findings := model.NormalizeFindings(det.findings)
	verdict := risk.Aggregate(findings, det.proof)

	for _, f := range findings {
		x.clients.Metrics().Finding(f.Source, f.Severity)
	}

	logging.From(ctx).Info("Risk aggregated",
		"risk_score", verdict.RiskScore,
		"status", verdict.Status,
		"issues", len(findings),
		"proven", det.proof != nil,
		"failed_detectors", det.failed,
	)

	return &model.Analysis{
		ID:            types.NewAnalysisID(),
		RepositoryRef: ref,
		PRNumber:      prNumber,
		RiskScore:     verdict.RiskScore,
		Status:        verdict.Status,
		IssuesFound:   len(findings),
		Findings:      findings,
		AttackProof:   det.proof,
		EstimatedFine: risk.EstimatedFine(findings),
		CreatedAt:     logging.CtxTime(ctx).UTC(),
	}
}
