package risk_test

import (
	"testing"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/security/risk"
	"github.com/m-mizutani/gt"
)

func findings(high, other int) []model.Finding {
	var resp []model.Finding
	for i := 0; i < high; i++ {
		resp = append(resp, model.Finding{Severity: types.SeverityHigh})
	}
	for i := 0; i < other; i++ {
		resp = append(resp, model.Finding{Severity: types.SeverityLow})
	}
	return resp
}

func TestAggregate(t *testing.T) {
	testCases := []struct {
		name   string
		high   int
		other  int
		score  int
		status types.AnalysisStatus
	}{
		{name: "no findings", score: 0, status: types.AnalysisStatusSecure},
		{name: "one high", high: 1, score: 30, status: types.AnalysisStatusSecure},
		{name: "two high", high: 2, score: 60, status: types.AnalysisStatusWarning},
		{name: "three high", high: 3, score: 90, status: types.AnalysisStatusVulnerable},
		{name: "four high is capped", high: 4, score: 100, status: types.AnalysisStatusVulnerable},
		{name: "four low", other: 4, score: 40, status: types.AnalysisStatusSecure},
		{name: "five low", other: 5, score: 50, status: types.AnalysisStatusWarning},
		{name: "seven low", other: 7, score: 70, status: types.AnalysisStatusWarning},
		{name: "mixed", high: 1, other: 5, score: 80, status: types.AnalysisStatusVulnerable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := risk.Aggregate(findings(tc.high, tc.other), nil)
			gt.V(t, v.RiskScore).Equal(tc.score)
			gt.V(t, v.Status).Equal(tc.status)
		})
	}

	t.Run("attack proof forces maximum score", func(t *testing.T) {
		v := risk.Aggregate(nil, &model.AttackProof{Kind: model.AttackProofKindSQLInjection})
		gt.V(t, v.RiskScore).Equal(100)
		gt.V(t, v.Status).Equal(types.AnalysisStatusVulnerable)
	})

	t.Run("score is always within range", func(t *testing.T) {
		for high := 0; high < 10; high++ {
			for other := 0; other < 10; other++ {
				v := risk.Aggregate(findings(high, other), nil)
				gt.True(t, v.RiskScore >= 0 && v.RiskScore <= 100)
				gt.V(t, v.Status).Equal(risk.Classify(v.RiskScore))
			}
		}
	})
}

func TestClassify(t *testing.T) {
	gt.V(t, risk.Classify(0)).Equal(types.AnalysisStatusSecure)
	gt.V(t, risk.Classify(40)).Equal(types.AnalysisStatusSecure)
	gt.V(t, risk.Classify(41)).Equal(types.AnalysisStatusWarning)
	gt.V(t, risk.Classify(70)).Equal(types.AnalysisStatusWarning)
	gt.V(t, risk.Classify(71)).Equal(types.AnalysisStatusVulnerable)
	gt.V(t, risk.Classify(100)).Equal(types.AnalysisStatusVulnerable)
}

func TestEstimatedFine(t *testing.T) {
	gt.V(t, risk.EstimatedFine(nil)).Equal(int64(0))
	gt.V(t, risk.EstimatedFine([]model.Finding{{FineRisk: 50000}, {FineRisk: 25000}, {}})).Equal(int64(75000))
}
