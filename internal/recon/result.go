package recon

import "github.com/google/uuid"

// Status is the terminal outcome of one VM's reconciliation.
type Status string

const (
	// StatusSuccess means the VM is in (or was driven to) the desired state.
	StatusSuccess Status = "Success"
	// StatusFailed means the VM could not be reconciled.
	StatusFailed Status = "Failed"
	// StatusSkipped means dry-run mode suppressed a required change.
	StatusSkipped Status = "Skipped"
)

// OperationResult is the per-VM outcome.
type OperationResult struct {
	Name   string `json:"name" yaml:"name"`
	Status Status `json:"status" yaml:"status"`
	Detail string `json:"detail" yaml:"detail"`

	// Warning carries non-fatal conditions on a successful result, such as
	// a failed power restore after an applied mutation or a verification
	// re-read that does not yet match.
	Warning string `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// BatchSummary aggregates per-VM outcomes in input order.
type BatchSummary struct {
	// RunID uniquely identifies one reconciliation invocation in logs and
	// machine-readable output.
	RunID string `json:"runId" yaml:"runId"`

	Results []OperationResult `json:"results" yaml:"results"`

	Succeeded int `json:"succeeded" yaml:"succeeded"`
	Failed    int `json:"failed" yaml:"failed"`
	Skipped   int `json:"skipped" yaml:"skipped"`
}

// NewBatchSummary creates an empty summary with a fresh run ID.
func NewBatchSummary() *BatchSummary {
	return &BatchSummary{RunID: uuid.NewString()}
}

// Record appends a result, preserving the order results were produced in.
func (s *BatchSummary) Record(r OperationResult) {
	s.Results = append(s.Results, r)
	switch r.Status {
	case StatusSuccess:
		s.Succeeded++
	case StatusFailed:
		s.Failed++
	case StatusSkipped:
		s.Skipped++
	}
}

// Total returns the number of VMs processed.
func (s *BatchSummary) Total() int {
	return len(s.Results)
}

// ExitCode maps the summary onto the process exit-code contract:
// 0 when nothing failed, 1 when every VM failed, 2 on partial failure.
// A restore warning on a successful mutation does not affect the code.
func (s *BatchSummary) ExitCode() int {
	switch {
	case s.Failed == 0:
		return 0
	case s.Failed == s.Total():
		return 1
	default:
		return 2
	}
}
