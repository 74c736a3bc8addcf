package model

import (
	"time"
)

const (
	// StatusPending indicates a step has not started yet.
	StatusPending = "pending"
	// StatusRunning indicates a step is actively executing.
	StatusRunning = "running"
	// StatusSuccess marks a step that completed.
	StatusSuccess = "success"
	// StatusSkipped indicates the step had nothing to do.
	StatusSkipped = "skipped"
	// StatusWarning marks a best-effort step that failed without aborting the command.
	StatusWarning = "warning"
	// StatusFailed marks a failure that aborted the command.
	StatusFailed = "failed"
)

// StepResult captures the outcome of executing a single step.
type StepResult struct {
	StepID    string
	Status    string
	Message   string
	Error     error
	Duration  time.Duration
	Timestamp time.Time
}

// Warned reports whether the step finished with a downgraded failure.
func (r StepResult) Warned() bool {
	return r.Status == StatusWarning
}

// Warnings filters results down to the steps that warned, preserving order.
func Warnings(results []StepResult) []StepResult {
	var out []StepResult
	for _, r := range results {
		if r.Warned() {
			out = append(out, r)
		}
	}
	return out
}

// Done reports whether the step reached a terminal status.
func (r StepResult) Done() bool {
	switch r.Status {
	case StatusSuccess, StatusSkipped, StatusWarning, StatusFailed:
		return true
	default:
		return false
	}
}
