package models

import (
	"errors"
	"testing"
)

func TestOutcomeFinishDerivesStatus(t *testing.T) {
	o := NewOutcome("demo")
	o.Check("a", true, "")
	o.Check("b", true, "")
	if o.Finish().Status != StatusPassed {
		t.Errorf("status = %s, want PASSED", o.Status)
	}

	o = NewOutcome("demo")
	o.Check("a", true, "")
	o.Check("b", false, "boom")
	if o.Finish().Status != StatusFailed {
		t.Errorf("status = %s, want FAILED", o.Status)
	}
}

func TestOutcomeViolationsFail(t *testing.T) {
	o := NewOutcome("demo")
	o.Check("a", true, "")
	o.Violations = []Violation{{Rule: "price_positive"}}
	if o.Finish().Status != StatusFailed {
		t.Errorf("status = %s, want FAILED", o.Status)
	}
}

func TestOutcomeSkipAndErrorStick(t *testing.T) {
	o := NewOutcome("demo").Skip("rate limit exceeded")
	if o.Status != StatusSkipped || o.Reason == "" {
		t.Errorf("skip not recorded: %+v", o)
	}

	o = NewOutcome("demo").Errored("upstream returned status 500")
	if o.Status != StatusErrored {
		t.Errorf("status = %s, want ERRORED", o.Status)
	}
	// Finish must not overwrite a terminal status.
	if o.Finish().Status != StatusErrored {
		t.Errorf("Finish overwrote terminal status: %s", o.Status)
	}
}

func TestMissingFieldWraps(t *testing.T) {
	err := MissingField("amazon-api", "asin")
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("err = %v does not wrap ErrMissingField", err)
	}
	if err.Error() != "amazon-api: required field missing: asin" {
		t.Errorf("message = %q", err.Error())
	}
}
