package oracle

import (
	"encoding/json"
	"strings"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const systemPrompt = `You are a senior fintech security auditor. Analyze the code diff for strict logical issues:
1. Race conditions (double spending risk)
2. Data leaks (logging unencrypted secrets or PII)
3. SQL injection and insecure endpoints

Use the file path from the diff headers (lines like "diff --git a/... b/...") and report the line number
of the new file. Return a JSON object ONLY, in this format:
{
  "bugs": [
    {"type": "Race Condition", "file": "src/payment-service.ts", "line": 42, "description": "Update without lock", "severity": "HIGH", "recommendation": "Lock the row before updating"}
  ]
}
Return {"bugs": []} when nothing is found.`

// bug is one entry of the oracle JSON contract. Every field is optional.
type bug struct {
	Type           string `json:"type"`
	File           string `json:"file"`
	Line           int    `json:"line"`
	Description    string `json:"description"`
	Severity       string `json:"severity"`
	Recommendation string `json:"recommendation"`
}

type bugReport struct {
	Bugs []bug `json:"bugs"`
}

// ParseReport decodes an oracle reply into normalized findings. Markdown code fences around the JSON are tolerated.
func ParseReport(text string) ([]model.Finding, error) {
	body := stripCodeFence(text)
	if body == "" {
		return nil, nil
	}

	var report bugReport
	if err := json.Unmarshal([]byte(body), &report); err != nil {
		return nil, goerr.Wrap(err, "oracle reply is not a bug report",
			goerr.V("reply", truncate(text, 512)),
		)
	}

	findings := make([]model.Finding, 0, len(report.Bugs))
	for _, b := range report.Bugs {
		findings = append(findings, model.Finding{
			Kind:           b.Type,
			Severity:       types.Severity(b.Severity),
			Description:    b.Description,
			File:           b.File,
			Line:           b.Line,
			Recommendation: b.Recommendation,
			Source:         types.FindingSourceOracle,
		}.Normalize())
	}

	return findings, nil
}

func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Drop the opening fence line, which may carry a language tag.
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Truncate cuts s to at most limit runes. A non-positive limit keeps s unchanged.
func Truncate(s string, limit int) string {
	return truncate(s, limit)
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
