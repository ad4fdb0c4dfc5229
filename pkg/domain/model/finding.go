package model

import (
	"strings"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
)

const (
	FindingKindUnknown = "UNKNOWN"
	UnknownFile        = "unknown"
)

// Finding is a single issue reported by a detector. It is never mutated after creation; Normalize returns a copy.
type Finding struct {
	Kind           string              `json:"kind" firestore:"kind" bigquery:"kind"`
	Severity       types.Severity      `json:"severity" firestore:"severity" bigquery:"severity"`
	Title          string              `json:"title" firestore:"title" bigquery:"title"`
	Description    string              `json:"description" firestore:"description" bigquery:"description"`
	File           string              `json:"file" firestore:"file" bigquery:"file"`
	Line           int                 `json:"line" firestore:"line" bigquery:"line"`
	Recommendation string              `json:"recommendation" firestore:"recommendation" bigquery:"recommendation"`
	Source         types.FindingSource `json:"source" firestore:"source" bigquery:"source"`
	FineRisk       int64               `json:"fine_risk" firestore:"fine_risk" bigquery:"fine_risk"`
}

// Normalize fills missing fields with safe defaults.
func (x Finding) Normalize() Finding {
	x.Kind = strings.TrimSpace(x.Kind)
	if x.Kind == "" {
		x.Kind = FindingKindUnknown
	}
	x.Severity = types.ParseSeverity(string(x.Severity))
	if strings.TrimSpace(x.Title) == "" {
		x.Title = x.Kind
	}
	if strings.TrimSpace(x.Description) == "" {
		x.Description = "No description provided"
	}
	if strings.TrimSpace(x.File) == "" {
		x.File = UnknownFile
	}
	if x.Line < 0 {
		x.Line = 0
	}
	if strings.TrimSpace(x.Recommendation) == "" {
		x.Recommendation = "Review the change manually"
	}
	if x.FineRisk < 0 {
		x.FineRisk = 0
	}
	return x
}

func NormalizeFindings(findings []Finding) []Finding {
	resp := make([]Finding, len(findings))
	for i := range findings {
		resp[i] = findings[i].Normalize()
	}
	return resp
}

const AttackProofKindSQLInjection = "SQL_INJECTION_PROOF"

// AttackProof is evidence that an injected payload yields a syntactically valid query.
type AttackProof struct {
	Kind           string `json:"kind" firestore:"kind" bigquery:"kind"`
	Target         string `json:"target" firestore:"target" bigquery:"target"`
	Payload        string `json:"payload" firestore:"payload" bigquery:"payload"`
	ResultingQuery string `json:"resulting_query" firestore:"resulting_query" bigquery:"resulting_query"`
	Impact         string `json:"impact" firestore:"impact" bigquery:"impact"`
}
