package types

import "strings"

type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// ParseSeverity maps free-form severity text to a known level. Unknown or empty values become MEDIUM.
func ParseSeverity(s string) Severity {
	switch Severity(strings.ToUpper(strings.TrimSpace(s))) {
	case SeverityHigh, "CRITICAL":
		return SeverityHigh
	case SeverityLow, "INFO":
		return SeverityLow
	default:
		return SeverityMedium
	}
}

type AnalysisStatus string

const (
	AnalysisStatusSecure     AnalysisStatus = "SECURE"
	AnalysisStatusWarning    AnalysisStatus = "WARNING"
	AnalysisStatusVulnerable AnalysisStatus = "VULNERABLE"
)

// FindingSource names the detector that produced a finding.
type FindingSource string

const (
	FindingSourceOracle FindingSource = "oracle"
	FindingSourcePCI    FindingSource = "pci"
	FindingSourceAttack FindingSource = "attack"
)

type Admission string

const (
	AdmissionAdmitted  Admission = "ADMITTED"
	AdmissionDuplicate Admission = "DUPLICATE"
)

type PipelineState string

const (
	PipelineReceived    PipelineState = "RECEIVED"
	PipelineValidating  PipelineState = "VALIDATING"
	PipelineDetecting   PipelineState = "DETECTING"
	PipelineAggregating PipelineState = "AGGREGATING"
	PipelinePersisting  PipelineState = "PERSISTING"
	PipelineNotifying   PipelineState = "NOTIFYING"
	PipelineDone        PipelineState = "DONE"
	PipelineFailed      PipelineState = "FAILED"
)

var pipelineTransitions = map[PipelineState]PipelineState{
	PipelineReceived:    PipelineValidating,
	PipelineValidating:  PipelineDetecting,
	PipelineDetecting:   PipelineAggregating,
	PipelineAggregating: PipelinePersisting,
	PipelinePersisting:  PipelineNotifying,
	PipelineNotifying:   PipelineDone,
}

// CanTransitionTo reports whether next directly follows x. Any non-terminal state may fail.
func (x PipelineState) CanTransitionTo(next PipelineState) bool {
	if x.Terminal() {
		return false
	}
	if next == PipelineFailed {
		return true
	}
	return pipelineTransitions[x] == next
}

func (x PipelineState) Terminal() bool {
	return x == PipelineDone || x == PipelineFailed
}
