package orchestrator

import "time"

type Outcome string

const (
	OutcomePending   Outcome = "pending"
	OutcomeRunning   Outcome = "running"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
	OutcomeSkipped   Outcome = "skipped"
)

type EnvironmentResult struct {
	Environment Environment
	Outcome     Outcome
	Message     string
}

// RunReport tracks one outcome per declared environment for the whole
// run, including environments that were never attempted.
type RunReport struct {
	Trigger    Trigger
	StartedAt  time.Time
	FinishedAt time.Time
	results    []*EnvironmentResult
}

func NewRunReport(environments []Environment, trigger Trigger, startedAt time.Time) *RunReport {
	report := &RunReport{Trigger: trigger, StartedAt: startedAt}
	for _, environment := range environments {
		report.results = append(report.results, &EnvironmentResult{
			Environment: environment,
			Outcome:     OutcomePending,
		})
	}
	return report
}

func (r *RunReport) Results() []*EnvironmentResult {
	return r.results
}

func (r *RunReport) ResultFor(environmentName string) *EnvironmentResult {
	for _, result := range r.results {
		if result.Environment.Name == environmentName {
			return result
		}
	}
	return nil
}

func (r *RunReport) MarkPendingSkipped(message string) {
	for _, result := range r.results {
		if result.Outcome == OutcomePending {
			result.Outcome = OutcomeSkipped
			result.Message = message
		}
	}
}

func (r *RunReport) Succeeded() bool {
	for _, result := range r.results {
		if result.Outcome != OutcomeSucceeded {
			return false
		}
	}
	return true
}
