// Package risk turns detector output into a score and a status.
package risk

import (
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
)

const (
	MaxScore = 100

	pointsPerFinding  = 10
	pointsPerHighRisk = 20

	vulnerableAbove = 70
	warningAbove    = 40
)

// Aggregate computes min(100, n*10 + high*20). A proven attack always scores 100.
func Aggregate(findings []model.Finding, proof *model.AttackProof) model.Verdict {
	score := MaxScore
	if proof == nil {
		score = Score(findings)
	}

	return model.Verdict{
		RiskScore: score,
		Status:    Classify(score),
	}
}

func Score(findings []model.Finding) int {
	high := 0
	for _, f := range findings {
		if f.Severity == types.SeverityHigh {
			high++
		}
	}

	return min(MaxScore, len(findings)*pointsPerFinding+high*pointsPerHighRisk)
}

func Classify(score int) types.AnalysisStatus {
	switch {
	case score > vulnerableAbove:
		return types.AnalysisStatusVulnerable
	case score > warningAbove:
		return types.AnalysisStatusWarning
	default:
		return types.AnalysisStatusSecure
	}
}

// EstimatedFine sums the fine risk of every finding. It does not affect the score.
func EstimatedFine(findings []model.Finding) int64 {
	var total int64
	for _, f := range findings {
		total += f.FineRisk
	}
	return total
}
