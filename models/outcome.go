package models

import "time"

// OutcomeStatus is the terminal state of one scenario run.
type OutcomeStatus string

const (
	StatusPassed OutcomeStatus = "PASSED"
	StatusFailed OutcomeStatus = "FAILED"
	// StatusSkipped means the upstream rate limit aborted the scenario.
	StatusSkipped OutcomeStatus = "SKIPPED"
	// StatusErrored means a non-200 upstream response; data-dependent
	// assertions were not evaluated.
	StatusErrored OutcomeStatus = "ERRORED"
)

// Assertion is one named pass/fail check inside a scenario.
type Assertion struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// Outcome collects everything a scenario run produced.
type Outcome struct {
	Scenario   string        `json:"scenario"`
	Status     OutcomeStatus `json:"status"`
	Reason     string        `json:"reason,omitempty"`
	Assertions []Assertion   `json:"assertions,omitempty"`
	Violations []Violation   `json:"violations,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration"`
}

// NewOutcome starts an outcome for the named scenario.
func NewOutcome(scenario string) *Outcome {
	return &Outcome{Scenario: scenario, StartedAt: time.Now()}
}

// Check records one assertion and returns whether it passed.
func (o *Outcome) Check(name string, passed bool, detail string) bool {
	o.Assertions = append(o.Assertions, Assertion{Name: name, Passed: passed, Detail: detail})
	return passed
}

// Finish stamps the duration and derives the final status from the
// recorded assertions, unless a skip/error status was already set.
func (o *Outcome) Finish() *Outcome {
	o.Duration = time.Since(o.StartedAt)
	if o.Status != "" {
		return o
	}
	o.Status = StatusPassed
	for _, a := range o.Assertions {
		if !a.Passed {
			o.Status = StatusFailed
			break
		}
	}
	if o.Status == StatusPassed && len(o.Violations) > 0 {
		o.Status = StatusFailed
	}
	return o
}

// Skip marks the scenario as rate-limit aborted.
func (o *Outcome) Skip(reason string) *Outcome {
	o.Status = StatusSkipped
	o.Reason = reason
	return o.Finish()
}

// Errored marks the scenario as aborted by an upstream failure.
func (o *Outcome) Errored(reason string) *Outcome {
	o.Status = StatusErrored
	o.Reason = reason
	return o.Finish()
}
