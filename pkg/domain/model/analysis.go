package model

import (
	"time"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
)

// Verdict is the output of risk aggregation.
type Verdict struct {
	RiskScore int
	Status    types.AnalysisStatus
}

// Analysis is the persisted result of one pull request event. Risk fields are write-once.
type Analysis struct {
	ID            types.AnalysisID     `json:"id" firestore:"id"`
	RepositoryID  types.RepositoryID   `json:"repository_id" firestore:"repository_id"`
	RepositoryRef string               `json:"repository_ref" firestore:"repository_ref"`
	PRNumber      int                  `json:"pr_number" firestore:"pr_number"`
	RiskScore     int                  `json:"risk_score" firestore:"risk_score"`
	Status        types.AnalysisStatus `json:"status" firestore:"status"`
	IssuesFound   int                  `json:"issues_found" firestore:"issues_found"`
	Findings      []Finding            `json:"findings" firestore:"findings"`
	AttackProof   *AttackProof         `json:"attack_proof,omitempty" firestore:"attack_proof,omitempty"`
	EstimatedFine int64                `json:"estimated_fine" firestore:"estimated_fine"`
	DeliveryID    types.DeliveryID     `json:"delivery_id,omitempty" firestore:"delivery_id"`
	DiffArchive   string               `json:"diff_archive,omitempty" firestore:"diff_archive"`
	CreatedAt     time.Time            `json:"created_at" firestore:"created_at"`
}

// AnalysisRecord is the flattened row exported to BigQuery.
type AnalysisRecord struct {
	ID            string      `bigquery:"id" json:"id"`
	Timestamp     time.Time   `bigquery:"timestamp" json:"timestamp"`
	RepositoryID  string      `bigquery:"repository_id" json:"repository_id"`
	RepositoryRef string      `bigquery:"repository_ref" json:"repository_ref"`
	PRNumber      int64       `bigquery:"pr_number" json:"pr_number"`
	RiskScore     int64       `bigquery:"risk_score" json:"risk_score"`
	Status        string      `bigquery:"status" json:"status"`
	IssuesFound   int64       `bigquery:"issues_found" json:"issues_found"`
	EstimatedFine int64       `bigquery:"estimated_fine" json:"estimated_fine"`
	Findings      []Finding   `bigquery:"findings" json:"findings"`
	Proven        bool        `bigquery:"proven" json:"proven"`
	AttackProof   AttackProof `bigquery:"attack_proof" json:"attack_proof"`
	DeliveryID    string      `bigquery:"delivery_id" json:"delivery_id"`
}

func (x *Analysis) ToRecord() *AnalysisRecord {
	record := &AnalysisRecord{
		ID:            x.ID.String(),
		Timestamp:     x.CreatedAt,
		RepositoryID:  x.RepositoryID.String(),
		RepositoryRef: x.RepositoryRef,
		PRNumber:      int64(x.PRNumber),
		RiskScore:     int64(x.RiskScore),
		Status:        string(x.Status),
		IssuesFound:   int64(x.IssuesFound),
		EstimatedFine: x.EstimatedFine,
		Findings:      x.Findings,
		DeliveryID:    x.DeliveryID.String(),
	}
	if x.AttackProof != nil {
		record.Proven = true
		record.AttackProof = *x.AttackProof
	}
	return record
}
