package usecase_test

import (
	"strings"
	"testing"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestRenderReport(t *testing.T) {
	analysis := &model.Analysis{
		ID:          "a-1",
		RiskScore:   100,
		Status:      types.AnalysisStatusVulnerable,
		IssuesFound: 1,
		Findings: []model.Finding{{
			Kind:           "PCI_LOGGING_FAIL",
			Severity:       types.SeverityHigh,
			Description:    "Logging of sensitive data | detected: cvv",
			File:           "src/payments.js",
			Line:           3,
			Recommendation: "Mask the value",
		}},
		AttackProof: &model.AttackProof{
			Target:         "SELECT * FROM users WHERE id = 1",
			Payload:        "OR 1=1",
			ResultingQuery: "SELECT * FROM users WHERE id = 1 OR 1=1",
			Impact:         "Logic Bypass / Authentication Broken",
		},
		EstimatedFine: 1250000,
	}

	t.Run("saved report", func(t *testing.T) {
		body := usecase.RenderReport(analysis, true)

		gt.True(t, strings.Contains(body, "🔴 VULNERABLE"))
		gt.True(t, strings.Contains(body, "**Risk Score:** 100/100"))
		gt.True(t, strings.Contains(body, "$1,250,000"))
		gt.True(t, strings.Contains(body, "`src/payments.js:3`"))
		gt.True(t, strings.Contains(body, `sensitive data \| detected`))
		gt.True(t, strings.Contains(body, "SELECT * FROM users WHERE id = 1 OR 1=1"))
		gt.True(t, strings.Contains(body, "Analysis ID: a-1"))
		gt.False(t, strings.Contains(body, "could not be saved"))
	})

	t.Run("unsaved report is marked", func(t *testing.T) {
		body := usecase.RenderReport(analysis, false)

		gt.True(t, strings.Contains(body, "could not be saved"))
		gt.False(t, strings.Contains(body, "Analysis ID"))
	})

	t.Run("no findings", func(t *testing.T) {
		body := usecase.RenderReport(&model.Analysis{Status: types.AnalysisStatusSecure}, true)

		gt.True(t, strings.Contains(body, "🟢 SECURE"))
		gt.True(t, strings.Contains(body, "No issues found."))
		gt.False(t, strings.Contains(body, "Attack Proof"))
		gt.False(t, strings.Contains(body, "fine exposure"))
	})

	t.Run("local report", func(t *testing.T) {
		body := usecase.RenderLocalReport(&model.Analysis{
			ID:        "local-id",
			Status:    types.AnalysisStatusSecure,
			RiskScore: 0,
		})

		gt.True(t, strings.HasPrefix(body, "## CodeDiff Security Analysis"))
		gt.False(t, strings.Contains(body, "could not be saved"))
		gt.False(t, strings.Contains(body, "local-id"))
	})
}

func TestFormatUSD(t *testing.T) {
	testCases := map[int64]string{
		0:       "$0",
		999:     "$999",
		1000:    "$1,000",
		25000:   "$25,000",
		1234567: "$1,234,567",
		-50000:  "-$50,000",
	}

	for v, expected := range testCases {
		gt.V(t, usecase.FormatUSDForTest(v)).Equal(expected)
	}
}
