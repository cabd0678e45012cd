package helper

import (
	"errors"
	"testing"
)

func TestRunStepsStopOnError(t *testing.T) {
	ran := []string{}
	steps := []Step{
		{Name: "delete teachers", Run: func() error {
			ran = append(ran, "teachers")
			return errors.New("store unavailable")
		}},
		{Name: "delete classes", Run: func() error {
			ran = append(ran, "classes")
			return nil
		}},
		{Name: "delete school", Run: func() error {
			ran = append(ran, "school")
			return nil
		}},
	}

	results, ok := RunSteps(steps, true)
	if ok {
		t.Fatal("expected ok=false after a failed step")
	}
	if len(ran) != 1 || ran[0] != "teachers" {
		t.Fatalf("steps after a failure must not run, got %v", ran)
	}
	if results[0].Success || results[0].Error == "" {
		t.Fatalf("first result should record the failure: %+v", results[0])
	}
	if !results[1].Skipped || !results[2].Skipped {
		t.Fatalf("remaining steps should be reported skipped: %+v", results[1:])
	}
}

func TestRunStepsContinueOnError(t *testing.T) {
	calls := 0
	steps := []Step{
		{Name: "ranks", Run: func() error { calls++; return errors.New("proc failed") }},
		{Name: "exam averages", Run: func() error { calls++; return nil }},
		{Name: "grade averages", Run: func() error { calls++; return errors.New("proc failed") }},
	}

	results, ok := RunSteps(steps, false)
	if ok {
		t.Fatal("expected ok=false when any step fails")
	}
	if calls != 3 {
		t.Fatalf("all steps must run, got %d calls", calls)
	}
	if !results[1].Success {
		t.Fatalf("middle step should succeed independently: %+v", results[1])
	}
	if results[0].Success || results[2].Success {
		t.Fatalf("failed steps recorded as success: %+v", results)
	}
}

func TestRunStepsAllSuccess(t *testing.T) {
	steps := []Step{
		{Name: "a", Run: func() error { return nil }},
		{Name: "b", Run: func() error { return nil }},
	}
	results, ok := RunSteps(steps, true)
	if !ok {
		t.Fatal("expected ok=true")
	}
	for _, r := range results {
		if !r.Success || r.Skipped {
			t.Fatalf("unexpected result %+v", r)
		}
	}
}
